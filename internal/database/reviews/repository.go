// Package reviews provides database operations for book reviews and the
// likes attached to them.
package reviews

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// Repository handles all review and like database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new review. A user may review a book only once; a second
// attempt fails with a DuplicateError and the first review stays intact.
func (r *Repository) Create(review *entities.Review) error {
	return database.Translate(r.db.Omit("User", "Book", "Likes").Create(review).Error, "review", "(user, book)")
}

// GetByID retrieves a review with its likes.
func (r *Repository) GetByID(id uint) (*entities.Review, error) {
	var review entities.Review
	err := r.db.Preload("Likes").First(&review, id).Error
	if err != nil {
		return nil, database.Translate(err, "review", "")
	}
	return &review, nil
}

// ListForBook returns a book's reviews, newest first, with their likes.
func (r *Repository) ListForBook(bookID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Where("book_id = ?", bookID).
		Preload("Likes").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// Delete removes a review and its likes in one transaction.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return database.CascadeDeleteReview(tx, id)
	})
}

// AddLike records that a user likes a review. At most one like per
// (user, review) pair survives; the loser of a race gets a DuplicateError.
func (r *Repository) AddLike(userID, reviewID uint) (*entities.Like, error) {
	var review entities.Review
	if err := r.db.First(&review, reviewID).Error; err != nil {
		return nil, database.Translate(err, "review", "")
	}

	like := &entities.Like{UserID: userID, ReviewID: reviewID}
	if err := r.db.Omit("User", "Review").Create(like).Error; err != nil {
		return nil, database.Translate(err, "like", "(user, review)")
	}
	return like, nil
}

// RemoveLike deletes a user's like on a review.
func (r *Repository) RemoveLike(userID, reviewID uint) error {
	res := r.db.Where("user_id = ? AND review_id = ?", userID, reviewID).Delete(&entities.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.Translate(gorm.ErrRecordNotFound, "like", "")
	}
	return nil
}

// LikeCount returns the number of likes on a review.
func (r *Repository) LikeCount(reviewID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Like{}).Where("review_id = ?", reviewID).Count(&count).Error
	return count, err
}
