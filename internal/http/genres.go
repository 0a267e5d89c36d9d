package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/library"
)

// GenresController exposes the flat genre catalogue.
type GenresController struct {
	service *library.GenreService
}

func NewGenresController(service *library.GenreService) *GenresController {
	return &GenresController{service: service}
}

type genreRequest struct {
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
}

func (controller *GenresController) Create(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	genre, err := controller.service.Create(library.GenrePayload{
		Name:      req.Name,
		Thumbnail: req.Thumbnail,
	}, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "create genre")
		return
	}

	respondCreated(c, genre)
}

func (controller *GenresController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	genre, err := controller.service.Get(id)
	if err != nil {
		respondServiceError(c, err, "get genre")
		return
	}

	c.JSON(http.StatusOK, genre)
}

func (controller *GenresController) List(c *gin.Context) {
	genres, err := controller.service.List()
	if err != nil {
		respondServiceError(c, err, "list genres")
		return
	}

	c.JSON(http.StatusOK, gin.H{"genres": genres, "count": len(genres)})
}

func (controller *GenresController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Delete(id, GetUserID(c)); err != nil {
		respondServiceError(c, err, "delete genre")
		return
	}

	respondSuccess(c, "genre deleted")
}
