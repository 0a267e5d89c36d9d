// Package books provides database operations for book management: CRUD,
// composable filtered listing and owner-scoped bulk deletion.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	list, err := repo.List(books.Filters{Search: "dragon"}, 0)
package books

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// Filters are the optional, order-insensitive predicates for book listings.
// Zero values are no-ops: they do not narrow the result.
type Filters struct {
	AuthorID      uint
	GenreID       uint
	PublishedYear int
	Search        string
}

// Empty reports whether no filter is set.
func (f Filters) Empty() bool {
	return f.AuthorID == 0 && f.GenreID == 0 && f.PublishedYear == 0 && f.Search == ""
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book and links its genres.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		genres := book.Genres
		book.Genres = nil
		if err := tx.Omit("Author", "UploadBy").Create(book).Error; err != nil {
			return database.Translate(err, "book", "")
		}
		if len(genres) > 0 {
			if err := tx.Model(book).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}
		book.Genres = genres
		return nil
	})
}

// GetByID retrieves a book with its author, genres, chapters (by number)
// and reviews (newest first, with their likes).
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genres").
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.Likes").
		First(&book, id).Error
	if err != nil {
		return nil, database.Translate(err, "book", "")
	}
	return &book, nil
}

// List returns books matching the filters, newest first. When ownerID is
// non-zero the listing is scoped to that uploader's books.
func (r *Repository) List(filters Filters, ownerID uint) ([]entities.Book, error) {
	var list []entities.Book
	query := r.applyFilters(r.db.Model(&entities.Book{}), filters)
	if ownerID > 0 {
		query = query.Where("books.upload_by_id = ?", ownerID)
	}
	err := query.
		Preload("Author").Preload("Genres").Preload("Reviews").
		Order("books.created_at DESC").
		Find(&list).Error
	return list, err
}

// ListByType returns an owner's books of one type (e-books or audiobooks),
// newest first.
func (r *Repository) ListByType(ownerID uint, bookType entities.BookType) ([]entities.Book, error) {
	var list []entities.Book
	err := r.db.Where("upload_by_id = ? AND book_type = ?", ownerID, bookType).
		Preload("Author").Preload("Reviews").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// Update saves changes to an existing book and replaces its genre links.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		genres := book.Genres
		book.Genres = nil
		if err := tx.Omit("Author", "UploadBy", "Chapters", "Reviews", "Genres").Save(book).Error; err != nil {
			return database.Translate(err, "book", "")
		}
		if err := tx.Model(book).Association("Genres").Replace(genres); err != nil {
			return err
		}
		book.Genres = genres
		return nil
	})
}

// Delete removes a book and cascades to its chapters, reviews, likes,
// favorites, reading progress and genre links in one transaction.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return database.CascadeDeleteBook(tx, id)
	})
}

// CountOwned returns the total number of books uploaded by a user.
func (r *Repository) CountOwned(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("upload_by_id = ?", ownerID).Count(&count).Error
	return count, err
}

// BulkDelete removes every book of the owner that matches the filters and
// reports how many were deleted plus whether the filtered set was the
// owner's entire collection (callers warn before such an unrestricted
// delete-all).
func (r *Repository) BulkDelete(filters Filters, ownerID uint) (deleted int64, wasUnrestricted bool, err error) {
	var ids []uint
	query := r.applyFilters(r.db.Model(&entities.Book{}), filters).
		Where("books.upload_by_id = ?", ownerID)
	if err := query.Pluck("books.id", &ids).Error; err != nil {
		return 0, false, err
	}

	total, err := r.CountOwned(ownerID)
	if err != nil {
		return 0, false, err
	}
	wasUnrestricted = int64(len(ids)) == total

	err = r.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			if err := database.CascadeDeleteBook(tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return int64(len(ids)), wasUnrestricted, nil
}

// applyFilters narrows the query by every non-empty filter. The filters are
// independent and combine with AND; the free-text search is itself an OR
// across title and description.
func (r *Repository) applyFilters(query *gorm.DB, f Filters) *gorm.DB {
	if f.AuthorID > 0 {
		query = query.Where("books.author_id = ?", f.AuthorID)
	}
	if f.GenreID > 0 {
		query = query.Joins("JOIN book_genres ON book_genres.book_id = books.id").
			Where("book_genres.genre_id = ?", f.GenreID)
	}
	if f.PublishedYear > 0 {
		query = query.Where("CAST(strftime('%Y', books.published_date) AS INTEGER) = ?", f.PublishedYear)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where("LOWER(books.title) LIKE LOWER(?) OR LOWER(books.description) LIKE LOWER(?)", pattern, pattern)
	}
	return query
}
