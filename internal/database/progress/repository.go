// Package progress provides database operations for per-user reading
// progress tracking.
package progress

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// Repository handles all reading progress database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reading progress repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new progress row. The (user, book, chapter) triple is
// unique.
func (r *Repository) Create(p *entities.ReadingProgress) error {
	return database.Translate(
		r.db.Omit("User", "Book", "Chapter").Create(p).Error,
		"reading progress", "(user, book, chapter)",
	)
}

// GetByID retrieves a progress row with its chapter and book.
func (r *Repository) GetByID(id uint) (*entities.ReadingProgress, error) {
	var p entities.ReadingProgress
	err := r.db.Preload("Chapter").Preload("Book").First(&p, id).Error
	if err != nil {
		return nil, database.Translate(err, "reading progress", "")
	}
	return &p, nil
}

// ListForUser returns all of a user's progress rows, newest first.
func (r *Repository) ListForUser(userID uint) ([]entities.ReadingProgress, error) {
	var list []entities.ReadingProgress
	err := r.db.Where("user_id = ?", userID).
		Preload("Chapter").Preload("Book").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ListInProgress returns the user's unfinished rows (percentage below 100),
// newest first.
func (r *Repository) ListInProgress(userID uint) ([]entities.ReadingProgress, error) {
	var list []entities.ReadingProgress
	err := r.db.Where("user_id = ? AND percentage < ?", userID, 100).
		Preload("Chapter").Preload("Book").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
