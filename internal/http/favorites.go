package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/library"
)

// FavoritesController manages the authenticated user's favorite books.
type FavoritesController struct {
	service *library.FavoriteService
}

func NewFavoritesController(service *library.FavoriteService) *FavoritesController {
	return &FavoritesController{service: service}
}

func (controller *FavoritesController) Add(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	favorite, err := controller.service.Add(bookID, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "add favorite")
		return
	}

	respondCreated(c, favorite)
}

func (controller *FavoritesController) Remove(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Remove(bookID, GetUserID(c)); err != nil {
		respondServiceError(c, err, "remove favorite")
		return
	}

	respondSuccess(c, "favorite removed")
}

// favoriteResponse surfaces the favorited book, which the entity's JSON
// shape hides.
type favoriteResponse struct {
	ID        uint         `json:"id"`
	BookID    uint         `json:"book_id"`
	Book      bookResponse `json:"book"`
	CreatedAt string       `json:"created_at"`
}

func (controller *FavoritesController) List(c *gin.Context) {
	favorites, err := controller.service.List(GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "list favorites")
		return
	}

	responses := make([]favoriteResponse, len(favorites))
	for i := range favorites {
		responses[i] = favoriteResponse{
			ID:        favorites[i].ID,
			BookID:    favorites[i].BookID,
			Book:      newBookResponse(&favorites[i].Book),
			CreatedAt: favorites[i].CreatedAt.Format(timeLayout),
		}
	}

	c.JSON(http.StatusOK, gin.H{"favorites": responses, "count": len(responses)})
}

func (controller *FavoritesController) Status(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	isFavorite, err := controller.service.IsFavorite(bookID, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "check favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}
