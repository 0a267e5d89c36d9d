package http

import (
	"html/template"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// Apply CSRF protection if auth is enabled
	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Apply session middleware if enabled
	// Session runs after CSRF so session context isn't overwritten by CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	// Apply auth middleware if enabled
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	} else {
		// No auth - inject default user ID
		router.Use(func(c *gin.Context) {
			c.Set(auth.ContextKeyUserID, auth.DefaultUserID)
			c.Set(auth.ContextKeyAuthType, auth.AuthTypeNone)
			c.Next()
		})
	}

	// Inject auth data for templates
	router.Use(AuthContextMiddleware(cfg.AuthConfig.Mode))

	// Load HTML templates when a template directory is configured
	if cfg.TemplatesPath != "" {
		if matches, _ := filepath.Glob(cfg.TemplatesPath + "/*.html"); len(matches) > 0 {
			tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
			router.SetHTMLTemplate(tmpl)
		}
	}

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	// Register auth routes if auth service is available
	if cfg.AuthService != nil && cfg.AuthService.IsAuthEnabled() {
		authController, err := auth.NewAuthController(cfg.AuthService, cfg.SessionManager, cfg.TemplatesPath, cfg.AuthConfig)
		if err == nil {
			authController.RegisterRoutes(router)
		}
	}

	// Create controllers
	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.Library.Authors)
	genresController := NewGenresController(cfg.Library.Genres)
	booksController := NewBooksController(cfg.Library.Books)
	chaptersController := NewChaptersController(cfg.Library.Chapters)
	reviewsController := NewReviewsController(cfg.Library.Reviews)
	favoritesController := NewFavoritesController(cfg.Library.Favorites)
	progressController := NewProgressController(cfg.Library.Progress)
	usersController := NewUsersController(cfg.Library.Users, cfg.AuthService)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Author endpoints
	router.GET("/api/authors", authorsController.List)
	router.POST("/api/authors", authorsController.Create)
	router.GET("/api/authors/:id", authorsController.Get)
	router.PUT("/api/authors/:id", authorsController.Update)
	router.DELETE("/api/authors/:id", authorsController.Delete)

	// Genre endpoints
	router.GET("/api/genres", genresController.List)
	router.POST("/api/genres", genresController.Create)
	router.GET("/api/genres/:id", genresController.Get)
	router.DELETE("/api/genres/:id", genresController.Delete)

	// Book endpoints
	router.GET("/api/books", booksController.List)
	router.POST("/api/books", booksController.Create)
	router.DELETE("/api/books", booksController.BulkDelete)
	router.GET("/api/my-books", booksController.ListMine)
	router.GET("/api/my-books/type/:type", booksController.ListByType)
	router.GET("/api/books/:id", booksController.Get)
	router.PUT("/api/books/:id", booksController.Update)
	router.DELETE("/api/books/:id", booksController.Delete)

	// Chapter endpoints, nested under the parent book
	router.GET("/api/books/:id/chapters", chaptersController.ListForBook)
	router.POST("/api/books/:id/chapters", chaptersController.Create)
	router.GET("/api/chapters/selectable-books", chaptersController.SelectableBooks)
	router.GET("/api/chapters/:id", chaptersController.Get)
	router.PUT("/api/chapters/:id", chaptersController.Update)
	router.DELETE("/api/chapters/:id", chaptersController.Delete)

	// Review and like endpoints
	router.GET("/api/books/:id/reviews", reviewsController.ListForBook)
	router.POST("/api/books/:id/reviews", reviewsController.Create)
	router.GET("/api/reviews/:id", reviewsController.Get)
	router.DELETE("/api/reviews/:id", reviewsController.Delete)
	router.POST("/api/reviews/:id/like", reviewsController.Like)
	router.DELETE("/api/reviews/:id/like", reviewsController.Unlike)

	// Favorite endpoints
	router.GET("/api/favorites", favoritesController.List)
	router.POST("/api/books/:id/favorite", favoritesController.Add)
	router.DELETE("/api/books/:id/favorite", favoritesController.Remove)
	router.GET("/api/books/:id/favorite", favoritesController.Status)

	// Reading progress endpoints
	router.GET("/api/progress", progressController.List)
	router.GET("/api/progress/active", progressController.ListInProgress)
	router.POST("/api/progress", progressController.Create)
	router.GET("/api/progress/:id", progressController.Get)

	// Profile endpoints
	router.GET("/api/profile", usersController.Profile)
	router.PUT("/api/profile", usersController.UpdateProfile)
	router.POST("/api/profile/password", usersController.ChangePassword)
	router.DELETE("/api/users/:id", usersController.Delete)

	// Media endpoints
	if cfg.Media != nil {
		mediaController := NewMediaController(cfg.Media)
		router.POST("/api/media/:kind", mediaController.Upload)
		router.DELETE("/media/*reference", mediaController.Delete)
		router.GET("/media/*reference", mediaController.Serve)
	}

	return router
}
