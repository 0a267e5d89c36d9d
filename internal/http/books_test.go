package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookhive/bookhive/internal/auth"
	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/library"
)

// booksTestEnv hosts the book routes behind a stub auth middleware whose
// acting user can be swapped per request.
type booksTestEnv struct {
	router *gin.Engine
	db     *gorm.DB
	lib    *library.Library
	userID uint
}

func setupBooksTest(t *testing.T) *booksTestEnv {
	dbPath := "./test_http_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	})

	env := &booksTestEnv{db: db, lib: library.New(db)}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, env.userID)
		c.Set(auth.ContextKeyAuthType, auth.AuthTypeSession)
		c.Next()
	})

	controller := NewBooksController(env.lib.Books)
	router.GET("/api/books", controller.List)
	router.POST("/api/books", controller.Create)
	router.DELETE("/api/books", controller.BulkDelete)
	router.GET("/api/my-books", controller.ListMine)
	router.GET("/api/my-books/type/:type", controller.ListByType)
	router.GET("/api/books/:id", controller.Get)
	router.PUT("/api/books/:id", controller.Update)
	router.DELETE("/api/books/:id", controller.Delete)

	env.router = router
	return env
}

func (env *booksTestEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func (env *booksTestEnv) seedUser(t *testing.T, username string) *entities.User {
	user := &entities.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *booksTestEnv) seedAuthor(t *testing.T) *entities.Author {
	author := &entities.Author{FirstName: "Frank", LastName: "Herbert"}
	require.NoError(t, env.db.Create(author).Error)
	return author
}

func TestBooksAPI_CreateAndGet(t *testing.T) {
	env := setupBooksTest(t)
	owner := env.seedUser(t, "owner")
	author := env.seedAuthor(t)
	env.userID = owner.ID

	rr := env.request(t, http.MethodPost, "/api/books", gin.H{
		"title":          "Dune",
		"author_id":      author.ID,
		"file_format":    "EPUB",
		"published_date": "1965-08-01",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created bookResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Dune", created.Title)
	assert.Equal(t, owner.ID, created.UploadByID)
	assert.Equal(t, entities.BookTypeEBook, created.BookType)
	assert.Zero(t, created.AverageRate)

	rr = env.request(t, http.MethodGet, "/api/books/1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dune")
}

func TestBooksAPI_Create_ValidationDetails(t *testing.T) {
	env := setupBooksTest(t)
	env.userID = env.seedUser(t, "owner").ID

	rr := env.request(t, http.MethodPost, "/api/books", gin.H{
		"file_format": "GIF",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"validation_error"`)
	assert.Contains(t, rr.Body.String(), `"field":"title"`)
	assert.Contains(t, rr.Body.String(), `"field":"file_format"`)
}

func TestBooksAPI_Create_MalformedDate(t *testing.T) {
	env := setupBooksTest(t)
	env.userID = env.seedUser(t, "owner").ID

	rr := env.request(t, http.MethodPost, "/api/books", gin.H{
		"title":          "Dune",
		"author_id":      1,
		"file_format":    "EPUB",
		"published_date": "08/01/1965",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "YYYY-MM-DD")
}

func TestBooksAPI_Create_Unauthenticated(t *testing.T) {
	env := setupBooksTest(t)
	author := env.seedAuthor(t)

	rr := env.request(t, http.MethodPost, "/api/books", gin.H{
		"title":       "Dune",
		"author_id":   author.ID,
		"file_format": "EPUB",
	})

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestBooksAPI_Get_NotFound(t *testing.T) {
	env := setupBooksTest(t)

	rr := env.request(t, http.MethodGet, "/api/books/999", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"not_found"`)
}

func TestBooksAPI_List_Filtered(t *testing.T) {
	env := setupBooksTest(t)
	owner := env.seedUser(t, "owner")
	author := env.seedAuthor(t)
	env.userID = owner.ID

	for _, title := range []string{"Dune", "Dune Messiah"} {
		rr := env.request(t, http.MethodPost, "/api/books", gin.H{
			"title":       title,
			"author_id":   author.ID,
			"file_format": "EPUB",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := env.request(t, http.MethodGet, "/api/books?search=Messiah", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Books []bookResponse `json:"books"`
		Count int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "Dune Messiah", body.Books[0].Title)

	rr = env.request(t, http.MethodGet, "/api/books?author_id=notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBooksAPI_ListMine_ExcludesOthers(t *testing.T) {
	env := setupBooksTest(t)
	owner := env.seedUser(t, "owner")
	other := env.seedUser(t, "other")
	author := env.seedAuthor(t)

	env.userID = other.ID
	rr := env.request(t, http.MethodPost, "/api/books", gin.H{
		"title":       "Hyperion",
		"author_id":   author.ID,
		"file_format": "EPUB",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	env.userID = owner.ID
	rr = env.request(t, http.MethodPost, "/api/books", gin.H{
		"title":       "Dune",
		"author_id":   author.ID,
		"file_format": "EPUB",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = env.request(t, http.MethodGet, "/api/my-books", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dune")
	assert.NotContains(t, rr.Body.String(), "Hyperion")
}

func TestBooksAPI_ListByType_RejectsUnknownType(t *testing.T) {
	env := setupBooksTest(t)
	env.userID = env.seedUser(t, "owner").ID

	rr := env.request(t, http.MethodGet, "/api/my-books/type/PAPERBACK", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBooksAPI_Update_OwnershipGuard(t *testing.T) {
	env := setupBooksTest(t)
	owner := env.seedUser(t, "owner")
	stranger := env.seedUser(t, "stranger")
	author := env.seedAuthor(t)

	env.userID = owner.ID
	rr := env.request(t, http.MethodPost, "/api/books", gin.H{
		"title":       "Dune",
		"author_id":   author.ID,
		"file_format": "EPUB",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	update := gin.H{
		"title":       "Dune Messiah",
		"author_id":   author.ID,
		"file_format": "EPUB",
	}

	env.userID = stranger.ID
	rr = env.request(t, http.MethodPut, "/api/books/1", update)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"permission_denied"`)

	env.userID = owner.ID
	rr = env.request(t, http.MethodPut, "/api/books/1", update)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dune Messiah")
}

func TestBooksAPI_DeleteAndBulkDelete(t *testing.T) {
	env := setupBooksTest(t)
	owner := env.seedUser(t, "owner")
	author := env.seedAuthor(t)
	env.userID = owner.ID

	for _, title := range []string{"Dune", "Dune Messiah", "Hyperion"} {
		rr := env.request(t, http.MethodPost, "/api/books", gin.H{
			"title":       title,
			"author_id":   author.ID,
			"file_format": "EPUB",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := env.request(t, http.MethodDelete, "/api/books/3", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.request(t, http.MethodGet, "/api/books/3", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.request(t, http.MethodDelete, "/api/books?search=Messiah", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"deleted":1`)
	assert.Contains(t, rr.Body.String(), `"was_unrestricted":false`)

	rr = env.request(t, http.MethodDelete, "/api/books", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"was_unrestricted":true`)
}
