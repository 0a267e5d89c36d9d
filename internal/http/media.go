package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/storage"
)

// maxUploadSize caps media uploads at 32 MiB.
const maxUploadSize = 32 << 20

// allowedUploadKinds are the media categories entity blob fields refer to.
var allowedUploadKinds = map[string]bool{
	"covers":     true,
	"portraits":  true,
	"thumbnails": true,
	"avatars":    true,
	"chapters":   true,
}

// MediaController stores uploaded media blobs and serves them back by
// reference. Entities hold the returned reference in their blob fields.
type MediaController struct {
	store storage.Client
}

func NewMediaController(store storage.Client) *MediaController {
	return &MediaController{store: store}
}

// Upload accepts a multipart file under the "file" field and stores it
// under the kind named in the URL. Responds with the blob reference.
func (controller *MediaController) Upload(c *gin.Context) {
	kind := c.Param("kind")
	if !allowedUploadKinds[kind] {
		respondBadRequest(c, "unknown media kind")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "a file upload is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, err, "open upload")
		return
	}
	defer file.Close()

	reference, err := controller.store.Store(c.Request.Context(), kind, fileHeader.Filename, file)
	if err != nil {
		respondInternalError(c, err, "store upload")
		return
	}

	respondCreated(c, gin.H{
		"reference": reference,
		"size":      fileHeader.Size,
	})
}

// Serve streams a stored blob back to the client.
func (controller *MediaController) Serve(c *gin.Context) {
	reference := strings.TrimPrefix(c.Param("reference"), "/")
	if !storage.ValidReference(reference) {
		respondBadRequest(c, "invalid media reference")
		return
	}

	reader, err := controller.store.Open(c.Request.Context(), reference)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondNotFound(c, "media")
			return
		}
		respondInternalError(c, err, "open media")
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(path.Ext(reference))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

// Delete removes a stored blob. Intended for cleanup after an entity stops
// referring to it.
func (controller *MediaController) Delete(c *gin.Context) {
	reference := strings.TrimPrefix(c.Param("reference"), "/")
	if !storage.ValidReference(reference) {
		respondBadRequest(c, "invalid media reference")
		return
	}

	if err := controller.store.Delete(c.Request.Context(), reference); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondNotFound(c, "media")
			return
		}
		respondInternalError(c, err, "delete media")
		return
	}

	respondSuccess(c, "media deleted")
}
