package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/library"
)

// AuthorsController exposes CRUD endpoints for the author catalogue.
type AuthorsController struct {
	service *library.AuthorService
}

func NewAuthorsController(service *library.AuthorService) *AuthorsController {
	return &AuthorsController{service: service}
}

// authorRequest is the wire shape for author create/update payloads.
// Dates use the YYYY-MM-DD format.
type authorRequest struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Bio        string `json:"bio"`
	Portrait   string `json:"portrait"`
	BirthDate  string `json:"birth_date"`
	DeathDate  string `json:"death_date"`
}

func (r authorRequest) toPayload() (library.AuthorPayload, error) {
	birth, err := parseDate(r.BirthDate)
	if err != nil {
		return library.AuthorPayload{}, err
	}
	death, err := parseDate(r.DeathDate)
	if err != nil {
		return library.AuthorPayload{}, err
	}
	return library.AuthorPayload{
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		Bio:        r.Bio,
		Portrait:   r.Portrait,
		BirthDate:  birth,
		DeathDate:  death,
	}, nil
}

// authorResponse decorates an author with its derived values.
type authorResponse struct {
	*entities.Author
	FullName string `json:"full_name"`
	Age      *int   `json:"age"`
	IsAlive  bool   `json:"is_alive"`
}

func newAuthorResponse(author *entities.Author) authorResponse {
	return authorResponse{
		Author:   author,
		FullName: author.FullName(),
		Age:      author.Age(),
		IsAlive:  author.IsAlive(),
	}
}

func (controller *AuthorsController) Create(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	payload, err := req.toPayload()
	if err != nil {
		respondBadRequest(c, "dates must use the YYYY-MM-DD format")
		return
	}

	author, err := controller.service.Create(payload, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "create author")
		return
	}

	respondCreated(c, newAuthorResponse(author))
}

func (controller *AuthorsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := controller.service.Get(id)
	if err != nil {
		respondServiceError(c, err, "get author")
		return
	}

	c.JSON(http.StatusOK, newAuthorResponse(author))
}

func (controller *AuthorsController) List(c *gin.Context) {
	authors, err := controller.service.List()
	if err != nil {
		respondServiceError(c, err, "list authors")
		return
	}

	responses := make([]authorResponse, len(authors))
	for i := range authors {
		responses[i] = newAuthorResponse(&authors[i])
	}

	c.JSON(http.StatusOK, gin.H{"authors": responses, "count": len(responses)})
}

func (controller *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	payload, err := req.toPayload()
	if err != nil {
		respondBadRequest(c, "dates must use the YYYY-MM-DD format")
		return
	}

	author, err := controller.service.Update(id, payload, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "update author")
		return
	}

	c.JSON(http.StatusOK, newAuthorResponse(author))
}

func (controller *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Delete(id, GetUserID(c)); err != nil {
		respondServiceError(c, err, "delete author")
		return
	}

	respondSuccess(c, "author deleted")
}
