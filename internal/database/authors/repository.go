// Package authors provides database operations for author management.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.GetByID(123)
package authors

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new author.
func (r *Repository) Create(author *entities.Author) error {
	return database.Translate(r.db.Create(author).Error, "author", "")
}

// GetByID retrieves an author with their books.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&author, id).Error
	if err != nil {
		return nil, database.Translate(err, "author", "")
	}
	return &author, nil
}

// List returns all authors, newest first.
func (r *Repository) List() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("created_at DESC").Find(&authors).Error
	return authors, err
}

// Update saves changes to an existing author.
func (r *Repository) Update(author *entities.Author) error {
	return database.Translate(r.db.Omit("Books").Save(author).Error, "author", "")
}

// Delete removes an author. Fails with a ReferentialIntegrityError while any
// book still references the author.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return database.DeleteAuthor(tx, id)
	})
}

// BookCount returns the number of books referencing the author.
func (r *Repository) BookCount(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("author_id = ?", id).Count(&count).Error
	return count, err
}

// Exists reports whether an author with the given ID exists.
func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
