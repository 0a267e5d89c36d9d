// Package library implements the application services of the catalogue.
//
// Each aggregate gets one service wiring the ownership guard, payload
// validation and the storage repositories together, in that order: a denied
// mutation never reaches validation, an invalid payload never reaches the
// store. Every call takes the acting user's ID explicitly; there is no
// ambient request user.
//
// # Usage
//
//	lib := library.New(db)
//	book, err := lib.Books.Create(payload, actorID)
package library
