package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/errs"
)

// Translate maps low-level storage errors onto the shared error taxonomy.
// Record-not-found becomes a NotFoundError for the named resource; a unique
// index violation becomes a DuplicateError naming the violated constraint.
// Anything else passes through untouched.
func Translate(err error, resource, constraint string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(resource)
	}
	if IsUniqueViolation(err) {
		return errs.Duplicate(resource, constraint)
	}
	return err
}

// IsUniqueViolation reports whether err is a storage-level uniqueness
// failure. GORM translates these to ErrDuplicatedKey on newer driver
// versions; the SQLite message match covers the rest.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
