// Package errs defines the error taxonomy shared by the library core.
//
// Every error that leaves the store or service layer is one of the types
// below. None of them is transient: the core performs no network calls, so
// callers map them straight to a user-facing outcome and never retry.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel targets for errors.Is. The typed errors below all match their
// corresponding sentinel, so callers can branch without unpacking.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate")
	ErrPermission = errors.New("permission denied")
	ErrProtected  = errors.New("deletion blocked by existing references")
	ErrValidation = errors.New("validation failed")
)

// NotFoundError reports that an identity did not resolve.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound creates a NotFoundError for a named resource.
func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// DuplicateError reports a uniqueness-constraint violation, either pre-empted
// by validation or caught at commit time by the storage layer.
type DuplicateError struct {
	Resource   string
	Constraint string // e.g. "(user, book)"
}

func (e *DuplicateError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s already exists for %s", e.Resource, e.Constraint)
	}
	return e.Resource + " already exists"
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// Duplicate creates a DuplicateError for a named resource and constraint.
func Duplicate(resource, constraint string) *DuplicateError {
	return &DuplicateError{Resource: resource, Constraint: constraint}
}

// PermissionError reports that the actor does not own the target entity.
// Fatal for the request, never retryable.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

func (e *PermissionError) Is(target error) bool { return target == ErrPermission }

// PermissionDenied creates a PermissionError with the given message.
func PermissionDenied(message string) *PermissionError {
	return &PermissionError{Message: message}
}

// ReferentialIntegrityError reports a delete blocked by a PROTECT
// relationship, e.g. deleting an author who still has books.
type ReferentialIntegrityError struct {
	Resource   string
	ReferredBy string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cannot delete %s: still referenced by %s", e.Resource, e.ReferredBy)
}

func (e *ReferentialIntegrityError) Is(target error) bool { return target == ErrProtected }

// Protected creates a ReferentialIntegrityError.
func Protected(resource, referredBy string) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Resource: resource, ReferredBy: referredBy}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a candidate payload.
// Validation never fails fast: the caller gets the full list at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Has reports whether the error lists a violation for the given field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
