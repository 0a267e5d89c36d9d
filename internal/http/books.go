package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/database/books"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/library"
)

// BooksController exposes the book catalogue: filtered listings, CRUD with
// ownership and owner-scoped bulk deletion.
type BooksController struct {
	service *library.BookService
}

func NewBooksController(service *library.BookService) *BooksController {
	return &BooksController{service: service}
}

// bookRequest is the wire shape for book create/update payloads.
type bookRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	CoverImage    string `json:"cover_image"`
	PublishedDate string `json:"published_date"`
	AuthorID      uint   `json:"author_id"`
	BookType      string `json:"book_type"`
	FileFormat    string `json:"file_format"`
	GenreIDs      []uint `json:"genre_ids"`
}

func (r bookRequest) toPayload() (library.BookPayload, error) {
	published, err := parseDate(r.PublishedDate)
	if err != nil {
		return library.BookPayload{}, err
	}
	return library.BookPayload{
		Title:         r.Title,
		Description:   r.Description,
		CoverImage:    r.CoverImage,
		PublishedDate: published,
		AuthorID:      r.AuthorID,
		BookType:      entities.BookType(r.BookType),
		FileFormat:    entities.FileFormat(r.FileFormat),
		GenreIDs:      r.GenreIDs,
	}, nil
}

// bookResponse decorates a book with its average rate.
type bookResponse struct {
	*entities.Book
	AverageRate float64 `json:"average_rate"`
}

func newBookResponse(book *entities.Book) bookResponse {
	return bookResponse{Book: book, AverageRate: book.Rate()}
}

func newBookResponses(list []entities.Book) []bookResponse {
	responses := make([]bookResponse, len(list))
	for i := range list {
		responses[i] = newBookResponse(&list[i])
	}
	return responses
}

// parseFilters reads the list/bulk-delete filters from query parameters:
// author_id, genre_id, published_year and search.
func parseFilters(c *gin.Context) (books.Filters, bool) {
	var filters books.Filters

	for param, target := range map[string]*uint{
		"author_id": &filters.AuthorID,
		"genre_id":  &filters.GenreID,
	} {
		if value := c.Query(param); value != "" {
			id, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				respondBadRequest(c, "invalid "+param)
				return filters, false
			}
			*target = uint(id)
		}
	}

	if value := c.Query("published_year"); value != "" {
		year, err := strconv.Atoi(value)
		if err != nil {
			respondBadRequest(c, "invalid published_year")
			return filters, false
		}
		filters.PublishedYear = year
	}

	filters.Search = c.Query("search")

	return filters, true
}

func (controller *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	payload, err := req.toPayload()
	if err != nil {
		respondBadRequest(c, "published_date must use the YYYY-MM-DD format")
		return
	}

	book, err := controller.service.Create(payload, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "create book")
		return
	}

	respondCreated(c, newBookResponse(book))
}

func (controller *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.service.Get(id)
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, newBookResponse(book))
}

// List returns the whole catalogue narrowed by the query filters.
func (controller *BooksController) List(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	list, err := controller.service.List(filters, library.ScopeAll, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": newBookResponses(list), "count": len(list)})
}

// ListMine returns only the authenticated user's uploads.
func (controller *BooksController) ListMine(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	list, err := controller.service.List(filters, library.ScopeOwned, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "list own books")
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": newBookResponses(list), "count": len(list)})
}

// ListByType returns the user's ebooks or audiobooks.
func (controller *BooksController) ListByType(c *gin.Context) {
	bookType := entities.BookType(c.Param("type"))
	if bookType != entities.BookTypeEBook && bookType != entities.BookTypeAudiobook {
		respondBadRequest(c, "invalid book type")
		return
	}

	list, err := controller.service.ListByType(GetUserID(c), bookType)
	if err != nil {
		respondServiceError(c, err, "list books by type")
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": newBookResponses(list), "count": len(list)})
}

func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	payload, err := req.toPayload()
	if err != nil {
		respondBadRequest(c, "published_date must use the YYYY-MM-DD format")
		return
	}

	book, err := controller.service.Update(id, payload, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, newBookResponse(book))
}

func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Delete(id, GetUserID(c)); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}

	respondSuccess(c, "book deleted")
}

// BulkDelete removes every book of the user matching the query filters.
// The response flags whether the filters were empty, meaning the user's
// entire collection was wiped.
func (controller *BooksController) BulkDelete(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	deleted, wasUnrestricted, err := controller.service.BulkDelete(filters, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "bulk delete books")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted":          deleted,
		"was_unrestricted": wasUnrestricted,
	})
}
