// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── policy.go        # Per-relationship deletion policies (CASCADE/PROTECT)
//	├── cascade.go       # Transactional cascade helpers shared by repositories
//	├── dberr.go         # Storage error translation into the errs taxonomy
//	├── authors/         # Author CRUD (PROTECTed by books)
//	├── genres/          # Genre CRUD
//	├── books/           # Book CRUD, filtered listing, bulk delete
//	├── chapters/        # Chapter CRUD
//	├── reviews/         # Review + like operations
//	├── favorites/       # Favorite tracking
//	├── progress/        # Per-user reading progress
//	└── users/           # User management
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./app.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	authorsRepo := authors.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.GetByID(123)
//
// # Invariants
//
// Uniqueness constraints are enforced by unique indexes at the storage layer
// and surfaced as errs.DuplicateError: two concurrent writes racing for the
// same unique pair leave exactly one surviving row. Multi-row deletes run in
// a single transaction, consulting the deletion-policy table in policy.go,
// so a delete either fully cascades or has no effect.
//
// # Adding a New Domain
//
// To add a new domain:
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Translate storage errors through database.Translate
package database
