// store.go - Store type and shared lookup helpers

// Package repository persists users, questions, projects and comments and
// enforces the ownership and cascade rules on delete.
package repository // Declares the package name

import ( // Import required packages
	"errors" // Error inspection

	"go-campus-backend/apperr" // Error taxonomy

	"gorm.io/gorm" // GORM ORM
)

// Store wraps one *gorm.DB. It is safe for concurrent use.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// lookupError maps a missing row to NotFound and anything else to Internal.
func lookupError(err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf(notFound)
	}
	return apperr.Wrap(err, "Internal server error")
}
