// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByUsername("frank")
package users

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. Username and email are unique.
func (r *Repository) Create(user *entities.User) error {
	return database.Translate(r.db.Create(user).Error, "user", "username or email")
}

// GetByID retrieves a user by ID.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, database.Translate(err, "user", "")
	}
	return &user, nil
}

// GetByUsername retrieves a user by username.
func (r *Repository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, database.Translate(err, "user", "")
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *Repository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, database.Translate(err, "user", "")
	}
	return &user, nil
}

// Update saves changes to an existing user.
func (r *Repository) Update(user *entities.User) error {
	return database.Translate(
		r.db.Omit("Books", "Favorites", "Progress").Save(user).Error,
		"user", "username or email",
	)
}

// Delete removes a user and everything they own: uploaded books (with their
// own cascades), reviews, likes, favorites and reading progress.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return database.CascadeDeleteUser(tx, id)
	})
}
