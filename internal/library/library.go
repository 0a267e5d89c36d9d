package library

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database/authors"
	"github.com/bookhive/bookhive/internal/database/books"
	"github.com/bookhive/bookhive/internal/database/chapters"
	"github.com/bookhive/bookhive/internal/database/favorites"
	"github.com/bookhive/bookhive/internal/database/genres"
	"github.com/bookhive/bookhive/internal/database/progress"
	"github.com/bookhive/bookhive/internal/database/reviews"
	"github.com/bookhive/bookhive/internal/database/users"
)

// Library bundles every aggregate service over a single database handle.
type Library struct {
	Authors   *AuthorService
	Genres    *GenreService
	Books     *BookService
	Chapters  *ChapterService
	Reviews   *ReviewService
	Favorites *FavoriteService
	Progress  *ProgressService
	Users     *UserService
}

// New wires the repositories and services together.
func New(db *gorm.DB) *Library {
	authorsRepo := authors.NewRepository(db)
	genresRepo := genres.NewRepository(db)
	booksRepo := books.NewRepository(db)
	chaptersRepo := chapters.NewRepository(db)
	reviewsRepo := reviews.NewRepository(db)
	favoritesRepo := favorites.NewRepository(db)
	progressRepo := progress.NewRepository(db)
	usersRepo := users.NewRepository(db)

	return &Library{
		Authors:   NewAuthorService(authorsRepo),
		Genres:    NewGenreService(genresRepo),
		Books:     NewBookService(booksRepo, authorsRepo, genresRepo),
		Chapters:  NewChapterService(chaptersRepo, booksRepo),
		Reviews:   NewReviewService(reviewsRepo, booksRepo),
		Favorites: NewFavoriteService(favoritesRepo, booksRepo),
		Progress:  NewProgressService(progressRepo, chaptersRepo),
		Users:     NewUserService(usersRepo),
	}
}
