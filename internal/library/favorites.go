package library

import (
	"github.com/bookhive/bookhive/internal/database/books"
	"github.com/bookhive/bookhive/internal/database/favorites"
	"github.com/bookhive/bookhive/internal/entities"
)

// FavoriteService manages per-user favorite books.
type FavoriteService struct {
	favorites *favorites.Repository
	books     *books.Repository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoritesRepo *favorites.Repository, booksRepo *books.Repository) *FavoriteService {
	return &FavoriteService{favorites: favoritesRepo, books: booksRepo}
}

// Add marks a book as the actor's favorite. One favorite per (user, book).
func (s *FavoriteService) Add(bookID uint, actor uint) (*entities.Favorite, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if _, err := s.books.GetByID(bookID); err != nil {
		return nil, err
	}
	return s.favorites.Add(actor, bookID)
}

// Remove deletes the actor's favorite for a book. Favorites can only ever be
// removed by their own user, since the pair is keyed on the actor.
func (s *FavoriteService) Remove(bookID uint, actor uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	return s.favorites.Remove(actor, bookID)
}

// List returns the actor's favorites, newest first.
func (s *FavoriteService) List(actor uint) ([]entities.Favorite, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.favorites.ListForUser(actor)
}

// IsFavorite reports whether the actor has favorited the book.
func (s *FavoriteService) IsFavorite(bookID uint, actor uint) (bool, error) {
	if err := requireActor(actor); err != nil {
		return false, err
	}
	return s.favorites.IsFavorite(actor, bookID)
}
