// Package favorites provides database operations for favorite book tracking.
package favorites

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// Repository handles all favorite database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favorites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add marks a book as a user's favorite. At most one favorite per
// (user, book) pair survives; a second attempt fails with a DuplicateError
// and the first row stays intact.
func (r *Repository) Add(userID, bookID uint) (*entities.Favorite, error) {
	favorite := &entities.Favorite{UserID: userID, BookID: bookID}
	if err := r.db.Omit("User", "Book").Create(favorite).Error; err != nil {
		return nil, database.Translate(err, "favorite", "(user, book)")
	}
	return favorite, nil
}

// Remove deletes a user's favorite for a book.
func (r *Repository) Remove(userID, bookID uint) error {
	res := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).Delete(&entities.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.Translate(gorm.ErrRecordNotFound, "favorite", "")
	}
	return nil
}

// ListForUser returns a user's favorites, newest first, with the books.
func (r *Repository) ListForUser(userID uint) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := r.db.Where("user_id = ?", userID).
		Preload("Book").Preload("Book.Author").Preload("Book.Reviews").
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

// IsFavorite reports whether the user has favorited the book.
func (r *Repository) IsFavorite(userID, bookID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	return count > 0, err
}
