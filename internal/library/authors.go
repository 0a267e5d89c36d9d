package library

import (
	"time"

	"github.com/bookhive/bookhive/internal/database/authors"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/validation"
)

// AuthorPayload carries candidate author fields, not yet persisted.
type AuthorPayload struct {
	FirstName  string
	MiddleName string
	LastName   string
	Bio        string
	Portrait   string
	BirthDate  *time.Time
	DeathDate  *time.Time
}

// AuthorService manages the author catalogue.
type AuthorService struct {
	authors *authors.Repository
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(repo *authors.Repository) *AuthorService {
	return &AuthorService{authors: repo}
}

func (s *AuthorService) validate(p AuthorPayload) error {
	v := validation.New()
	v.Required("first_name", p.FirstName)
	v.Required("last_name", p.LastName)
	v.MaxLen("first_name", p.FirstName, 63)
	v.MaxLen("middle_name", p.MiddleName, 63)
	v.MaxLen("last_name", p.LastName, 63)
	v.DateOrder("death_date", p.BirthDate, p.DeathDate, "birth_date")
	return v.Err()
}

// Create adds an author to the catalogue.
func (s *AuthorService) Create(p AuthorPayload, actor uint) (*entities.Author, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validate(p); err != nil {
		return nil, err
	}

	author := &entities.Author{
		FirstName:  p.FirstName,
		MiddleName: p.MiddleName,
		LastName:   p.LastName,
		Bio:        p.Bio,
		BirthDate:  p.BirthDate,
		DeathDate:  p.DeathDate,
	}
	if p.Portrait != "" {
		author.Portrait = p.Portrait
	}
	if err := s.authors.Create(author); err != nil {
		return nil, err
	}
	return author, nil
}

// Get retrieves an author with their books.
func (s *AuthorService) Get(id uint) (*entities.Author, error) {
	return s.authors.GetByID(id)
}

// List returns all authors, newest first.
func (s *AuthorService) List() ([]entities.Author, error) {
	return s.authors.List()
}

// Update replaces an author's fields.
func (s *AuthorService) Update(id uint, p AuthorPayload, actor uint) (*entities.Author, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	author, err := s.authors.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(p); err != nil {
		return nil, err
	}

	author.FirstName = p.FirstName
	author.MiddleName = p.MiddleName
	author.LastName = p.LastName
	author.Bio = p.Bio
	author.BirthDate = p.BirthDate
	author.DeathDate = p.DeathDate
	if p.Portrait != "" {
		author.Portrait = p.Portrait
	}
	if err := s.authors.Update(author); err != nil {
		return nil, err
	}
	return author, nil
}

// Delete removes an author. Refused while any book references them.
func (s *AuthorService) Delete(id uint, actor uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	return s.authors.Delete(id)
}
