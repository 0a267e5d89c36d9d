package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/library"
)

// ChaptersController manages chapters nested under books. Only the parent
// book's uploader may mutate them.
type ChaptersController struct {
	service *library.ChapterService
}

func NewChaptersController(service *library.ChapterService) *ChaptersController {
	return &ChaptersController{service: service}
}

type chapterRequest struct {
	Title   string `json:"title"`
	Number  int    `json:"number"`
	Content string `json:"content"`
}

func (r chapterRequest) toPayload() library.ChapterPayload {
	return library.ChapterPayload{
		Title:   r.Title,
		Number:  r.Number,
		Content: r.Content,
	}
}

func (controller *ChaptersController) Create(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req chapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	chapter, err := controller.service.Create(bookID, req.toPayload(), GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "create chapter")
		return
	}

	respondCreated(c, chapter)
}

func (controller *ChaptersController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	chapter, err := controller.service.Get(id)
	if err != nil {
		respondServiceError(c, err, "get chapter")
		return
	}

	c.JSON(http.StatusOK, chapter)
}

func (controller *ChaptersController) ListForBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	chapters, err := controller.service.ListForBook(bookID)
	if err != nil {
		respondServiceError(c, err, "list chapters")
		return
	}

	c.JSON(http.StatusOK, gin.H{"chapters": chapters, "count": len(chapters)})
}

// SelectableBooks lists the books a chapter may be attached to, which is
// the authenticated user's own uploads.
func (controller *ChaptersController) SelectableBooks(c *gin.Context) {
	list, err := controller.service.SelectableBooks(GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "list selectable books")
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": newBookResponses(list), "count": len(list)})
}

func (controller *ChaptersController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req chapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	chapter, err := controller.service.Update(id, req.toPayload(), GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "update chapter")
		return
	}

	c.JSON(http.StatusOK, chapter)
}

func (controller *ChaptersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Delete(id, GetUserID(c)); err != nil {
		respondServiceError(c, err, "delete chapter")
		return
	}

	respondSuccess(c, "chapter deleted")
}
