package library

import (
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/errs"
)

// requireActor rejects unauthenticated calls. Every mutation needs a known
// actor; ownership checks come on top of this.
func requireActor(actor uint) error {
	if actor == 0 {
		return errs.PermissionDenied("authentication required")
	}
	return nil
}

// requireBookOwner permits a mutation iff the actor uploaded the book.
// Chapters inherit this check through their parent book.
func requireBookOwner(actor uint, book *entities.Book) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if book.UploadByID != actor {
		return errs.PermissionDenied("only the uploader may modify this book")
	}
	return nil
}
