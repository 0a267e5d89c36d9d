package library

import (
	"github.com/bookhive/bookhive/internal/database/users"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/errs"
	"github.com/bookhive/bookhive/internal/validation"
)

// ProfilePayload carries the user-editable profile fields. Credentials are
// handled by the auth service, not here.
type ProfilePayload struct {
	FirstName string
	LastName  string
	Avatar    string
}

// UserService manages user profiles and account removal.
type UserService struct {
	users *users.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *users.Repository) *UserService {
	return &UserService{users: repo}
}

// Get retrieves a user by ID.
func (s *UserService) Get(id uint) (*entities.User, error) {
	return s.users.GetByID(id)
}

// UpdateProfile replaces the actor's own profile fields.
func (s *UserService) UpdateProfile(p ProfilePayload, actor uint) (*entities.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	v := validation.New()
	v.MaxLen("first_name", p.FirstName, 63)
	v.MaxLen("last_name", p.LastName, 63)
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(actor)
	if err != nil {
		return nil, err
	}
	user.FirstName = p.FirstName
	user.LastName = p.LastName
	if p.Avatar != "" {
		user.Avatar = p.Avatar
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account and everything it owns. Users may delete
// themselves; staff may delete anyone.
func (s *UserService) Delete(id uint, actor uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if id != actor {
		caller, err := s.users.GetByID(actor)
		if err != nil {
			return err
		}
		if !caller.IsStaff {
			return errs.PermissionDenied("only staff may delete other accounts")
		}
	}
	return s.users.Delete(id)
}
