package library

import (
	"github.com/bookhive/bookhive/internal/database/books"
	"github.com/bookhive/bookhive/internal/database/reviews"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/errs"
	"github.com/bookhive/bookhive/internal/validation"
)

// ReviewPayload carries a candidate review. Reviews are immutable once
// created; there is no update path.
type ReviewPayload struct {
	Rate    int
	Comment string
}

// ReviewService manages reviews and the likes attached to them.
type ReviewService struct {
	reviews *reviews.Repository
	books   *books.Repository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewsRepo *reviews.Repository, booksRepo *books.Repository) *ReviewService {
	return &ReviewService{reviews: reviewsRepo, books: booksRepo}
}

// Create records the actor's review of a book. One review per (user, book).
func (s *ReviewService) Create(bookID uint, p ReviewPayload, actor uint) (*entities.Review, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if _, err := s.books.GetByID(bookID); err != nil {
		return nil, err
	}

	v := validation.New()
	v.IntRange("rate", p.Rate, 1, 5)
	if err := v.Err(); err != nil {
		return nil, err
	}

	review := &entities.Review{
		UserID:  actor,
		BookID:  bookID,
		Rate:    p.Rate,
		Comment: p.Comment,
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Get retrieves a review with its likes.
func (s *ReviewService) Get(id uint) (*entities.Review, error) {
	return s.reviews.GetByID(id)
}

// ListForBook returns a book's reviews, newest first.
func (s *ReviewService) ListForBook(bookID uint) ([]entities.Review, error) {
	return s.reviews.ListForBook(bookID)
}

// Delete removes a review. Only its author may do this.
func (s *ReviewService) Delete(id uint, actor uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	review, err := s.reviews.GetByID(id)
	if err != nil {
		return err
	}
	if review.UserID != actor {
		return errs.PermissionDenied("only the review's author may delete it")
	}
	return s.reviews.Delete(id)
}

// Like records that the actor likes a review. One like per (user, review).
func (s *ReviewService) Like(reviewID uint, actor uint) (*entities.Like, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.reviews.AddLike(actor, reviewID)
}

// Unlike removes the actor's like from a review.
func (s *ReviewService) Unlike(reviewID uint, actor uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	return s.reviews.RemoveLike(actor, reviewID)
}
