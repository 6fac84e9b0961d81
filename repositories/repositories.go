package repositories

import (
	"errors"

	"github.com/blogem/api-hits/database"
)

// ErrNotFound is returned when a row with the requested ID does not exist
var ErrNotFound = errors.New("record not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Hits  HitRepository
	Audit AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Hits:  NewHitRepository(db),
		Audit: NewAuditRepository(db),
	}
}
