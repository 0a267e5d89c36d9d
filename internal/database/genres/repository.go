// Package genres provides database operations for genre management.
package genres

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new genre. The name is unique across the catalogue.
func (r *Repository) Create(genre *entities.Genre) error {
	return database.Translate(r.db.Create(genre).Error, "genre", "name")
}

// GetByID retrieves a genre with its books.
func (r *Repository) GetByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).Preload("Books.Author").First(&genre, id).Error
	if err != nil {
		return nil, database.Translate(err, "genre", "")
	}
	return &genre, nil
}

// GetByName retrieves a genre by its unique name.
func (r *Repository) GetByName(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Where("name = ?", name).First(&genre).Error
	if err != nil {
		return nil, database.Translate(err, "genre", "")
	}
	return &genre, nil
}

// List returns all genres ordered by name.
func (r *Repository) List() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}

// GetByIDs loads the genres for the given IDs. Used to resolve a book's
// genre selection; a missing ID surfaces as a shorter result slice.
func (r *Repository) GetByIDs(ids []uint) ([]entities.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var genres []entities.Genre
	err := r.db.Where("id IN ?", ids).Find(&genres).Error
	return genres, err
}

// Delete removes a genre and its book links.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if database.PolicyFor("genres", "book_genres") == database.Cascade {
			if err := tx.Exec("DELETE FROM book_genres WHERE genre_id = ?", id).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&entities.Genre{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return database.Translate(gorm.ErrRecordNotFound, "genre", "")
		}
		return nil
	})
}
