package library

import (
	"errors"

	"github.com/bookhive/bookhive/internal/database/genres"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/errs"
	"github.com/bookhive/bookhive/internal/validation"
)

// GenrePayload carries candidate genre fields.
type GenrePayload struct {
	Name      string
	Thumbnail string
}

// GenreService manages the genre catalogue.
type GenreService struct {
	genres *genres.Repository
}

// NewGenreService creates a new GenreService.
func NewGenreService(repo *genres.Repository) *GenreService {
	return &GenreService{genres: repo}
}

func (s *GenreService) validate(p GenrePayload) error {
	v := validation.New()
	v.Required("name", p.Name)
	v.MaxLen("name", p.Name, 63)
	return v.Err()
}

// Create adds a genre. The name check here gives a clean error up front; the
// unique index re-checks at commit time and stays authoritative under
// concurrent creates.
func (s *GenreService) Create(p GenrePayload, actor uint) (*entities.Genre, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validate(p); err != nil {
		return nil, err
	}

	if _, err := s.genres.GetByName(p.Name); err == nil {
		return nil, errs.Duplicate("genre", "name")
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	genre := &entities.Genre{Name: p.Name}
	if p.Thumbnail != "" {
		genre.Thumbnail = p.Thumbnail
	}
	if err := s.genres.Create(genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Get retrieves a genre with its books.
func (s *GenreService) Get(id uint) (*entities.Genre, error) {
	return s.genres.GetByID(id)
}

// List returns all genres ordered by name.
func (s *GenreService) List() ([]entities.Genre, error) {
	return s.genres.List()
}

// Delete removes a genre and detaches it from all books.
func (s *GenreService) Delete(id uint, actor uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	return s.genres.Delete(id)
}
