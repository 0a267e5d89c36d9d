package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/library"
)

// ProgressController tracks per-chapter reading progress for the
// authenticated user.
type ProgressController struct {
	service *library.ProgressService
}

func NewProgressController(service *library.ProgressService) *ProgressController {
	return &ProgressController{service: service}
}

type progressRequest struct {
	BookID     uint `json:"book_id"`
	ChapterID  uint `json:"chapter_id"`
	Percentage int  `json:"percentage"`
}

// progressResponse decorates a progress row with its completion flag.
type progressResponse struct {
	*entities.ReadingProgress
	IsComplete bool `json:"is_complete"`
}

func newProgressResponse(p *entities.ReadingProgress) progressResponse {
	return progressResponse{ReadingProgress: p, IsComplete: p.IsComplete()}
}

func (controller *ProgressController) Create(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	progress, err := controller.service.Create(library.ProgressPayload{
		BookID:     req.BookID,
		ChapterID:  req.ChapterID,
		Percentage: req.Percentage,
	}, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "create progress")
		return
	}

	respondCreated(c, newProgressResponse(progress))
}

func (controller *ProgressController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := controller.service.Get(id)
	if err != nil {
		respondServiceError(c, err, "get progress")
		return
	}

	c.JSON(http.StatusOK, newProgressResponse(progress))
}

func (controller *ProgressController) List(c *gin.Context) {
	list, err := controller.service.List(GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "list progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": newProgressResponses(list), "count": len(list)})
}

// ListInProgress returns only unfinished rows, so a reader can pick up
// where they left off.
func (controller *ProgressController) ListInProgress(c *gin.Context) {
	list, err := controller.service.ListInProgress(GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "list in-progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": newProgressResponses(list), "count": len(list)})
}

func newProgressResponses(list []entities.ReadingProgress) []progressResponse {
	responses := make([]progressResponse, len(list))
	for i := range list {
		responses[i] = newProgressResponse(&list[i])
	}
	return responses
}
