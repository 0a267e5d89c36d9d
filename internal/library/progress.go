package library

import (
	"errors"

	"github.com/bookhive/bookhive/internal/database/chapters"
	"github.com/bookhive/bookhive/internal/database/progress"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/errs"
	"github.com/bookhive/bookhive/internal/validation"
)

// ProgressPayload carries a candidate reading progress row.
type ProgressPayload struct {
	BookID     uint
	ChapterID  uint
	Percentage int
}

// ProgressService manages per-user reading progress.
type ProgressService struct {
	progress *progress.Repository
	chapters *chapters.Repository
}

// NewProgressService creates a new ProgressService.
func NewProgressService(progressRepo *progress.Repository, chaptersRepo *chapters.Repository) *ProgressService {
	return &ProgressService{progress: progressRepo, chapters: chaptersRepo}
}

// Create records the actor's progress on a chapter. One row per
// (user, book, chapter) triple; the chapter must belong to the given book.
func (s *ProgressService) Create(p ProgressPayload, actor uint) (*entities.ReadingProgress, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	v := validation.New()
	v.IntRange("percentage", p.Percentage, 0, 100)
	if p.BookID == 0 {
		v.Add("book_id", "is required")
	}
	if p.ChapterID == 0 {
		v.Add("chapter_id", "is required")
	} else {
		chapter, err := s.chapters.GetByID(p.ChapterID)
		switch {
		case errors.Is(err, errs.ErrNotFound):
			v.Add("chapter_id", "does not exist")
		case err != nil:
			return nil, err
		case p.BookID != 0 && chapter.BookID != p.BookID:
			v.Add("chapter_id", "does not belong to the given book")
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	row := &entities.ReadingProgress{
		UserID:     actor,
		BookID:     p.BookID,
		ChapterID:  p.ChapterID,
		Percentage: uint(p.Percentage),
	}
	if err := s.progress.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Get retrieves a progress row with its chapter and book.
func (s *ProgressService) Get(id uint) (*entities.ReadingProgress, error) {
	return s.progress.GetByID(id)
}

// List returns all of the actor's progress rows, newest first.
func (s *ProgressService) List(actor uint) ([]entities.ReadingProgress, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.progress.ListForUser(actor)
}

// ListInProgress returns the actor's unfinished rows (percentage below 100).
func (s *ProgressService) ListInProgress(actor uint) ([]entities.ReadingProgress, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.progress.ListInProgress(actor)
}
