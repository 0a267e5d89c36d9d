package library

import (
	"github.com/bookhive/bookhive/internal/database/books"
	"github.com/bookhive/bookhive/internal/database/chapters"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/validation"
)

// ChapterPayload carries candidate chapter fields. An empty Content on
// update keeps the existing file and skips the extension check.
type ChapterPayload struct {
	Title   string
	Number  int
	Content string
}

// ChapterService manages chapters. A chapter may only be attached to a book
// the actor owns, and mutations go through the parent book's owner check.
type ChapterService struct {
	chapters *chapters.Repository
	books    *books.Repository
}

// NewChapterService creates a new ChapterService.
func NewChapterService(chaptersRepo *chapters.Repository, booksRepo *books.Repository) *ChapterService {
	return &ChapterService{chapters: chaptersRepo, books: booksRepo}
}

func (s *ChapterService) validate(p ChapterPayload, format entities.FileFormat, requireContent bool) error {
	v := validation.New()
	v.MaxLen("title", p.Title, 127)
	v.Min("number", p.Number, 1)
	if requireContent {
		v.Required("content", p.Content)
	}
	v.ExtensionMatches("content", p.Content, format.Extension())
	return v.Err()
}

// Create attaches a new chapter to one of the actor's books. The content
// file's extension must match the book's declared format.
func (s *ChapterService) Create(bookID uint, p ChapterPayload, actor uint) (*entities.Chapter, error) {
	book, err := s.books.GetByID(bookID)
	if err != nil {
		return nil, err
	}
	if err := requireBookOwner(actor, book); err != nil {
		return nil, err
	}
	if err := s.validate(p, book.FileFormat, true); err != nil {
		return nil, err
	}

	chapter := &entities.Chapter{
		BookID:  bookID,
		Title:   p.Title,
		Number:  uint(p.Number),
		Content: p.Content,
	}
	if err := s.chapters.Create(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

// Get retrieves a chapter with its owning book.
func (s *ChapterService) Get(id uint) (*entities.Chapter, error) {
	return s.chapters.GetByID(id)
}

// ListForBook returns a book's chapters ordered by number.
func (s *ChapterService) ListForBook(bookID uint) ([]entities.Chapter, error) {
	return s.chapters.ListForBook(bookID)
}

// SelectableBooks returns the books the actor may attach a chapter to, which
// is exactly the set they uploaded.
func (s *ChapterService) SelectableBooks(actor uint) ([]entities.Book, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.books.List(books.Filters{}, actor)
}

// Update replaces a chapter's fields. Leaving Content empty keeps the
// current file.
func (s *ChapterService) Update(id uint, p ChapterPayload, actor uint) (*entities.Chapter, error) {
	chapter, err := s.chapters.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireBookOwner(actor, &chapter.Book); err != nil {
		return nil, err
	}
	if err := s.validate(p, chapter.Book.FileFormat, false); err != nil {
		return nil, err
	}

	chapter.Title = p.Title
	chapter.Number = uint(p.Number)
	if p.Content != "" {
		chapter.Content = p.Content
	}
	if err := s.chapters.Update(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

// Delete removes a chapter and its reading progress rows.
func (s *ChapterService) Delete(id uint, actor uint) error {
	chapter, err := s.chapters.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireBookOwner(actor, &chapter.Book); err != nil {
		return err
	}
	return s.chapters.Delete(id)
}
