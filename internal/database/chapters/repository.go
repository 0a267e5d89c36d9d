// Package chapters provides database operations for chapter management.
package chapters

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// Repository handles all chapter database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new chapters repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new chapter. The (book, number) pair is unique.
func (r *Repository) Create(chapter *entities.Chapter) error {
	return database.Translate(r.db.Omit("Book").Create(chapter).Error, "chapter", "(book, number)")
}

// GetByID retrieves a chapter with its owning book.
func (r *Repository) GetByID(id uint) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.Preload("Book").First(&chapter, id).Error
	if err != nil {
		return nil, database.Translate(err, "chapter", "")
	}
	return &chapter, nil
}

// ListForBook returns a book's chapters ordered by number.
func (r *Repository) ListForBook(bookID uint) ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	err := r.db.Where("book_id = ?", bookID).Order("number ASC").Find(&chapters).Error
	return chapters, err
}

// Update saves changes to an existing chapter.
func (r *Repository) Update(chapter *entities.Chapter) error {
	return database.Translate(r.db.Omit("Book").Save(chapter).Error, "chapter", "(book, number)")
}

// Delete removes a chapter and cascades to reading progress rows.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return database.CascadeDeleteChapter(tx, id)
	})
}
