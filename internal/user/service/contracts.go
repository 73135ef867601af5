package service

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks UserStore

import (
	"context"

	"user-registry/internal/user/models"
)

// UserStore defines the persistence contract the service depends on.
// Implementations return sentinel errors; the service translates them into
// domain errors exactly once.
type UserStore interface {
	// Insert stores the user under the next sequential id unconditionally.
	Insert(ctx context.Context, user *models.User) (int, error)

	// InsertIfBirthNumberAvailable atomically rejects duplicates with
	// sentinel.ErrAlreadyUsed before storing.
	InsertIfBirthNumberAvailable(ctx context.Context, user *models.User) (int, error)

	ExistsByBirthNumber(ctx context.Context, birthNumber string) (bool, error)
	ExistsByID(ctx context.Context, id int) (bool, error)

	// Remove deletes the record, returning sentinel.ErrNotFound when absent.
	Remove(ctx context.Context, id int) error

	// All returns a snapshot of the id→user mapping.
	All(ctx context.Context) (map[int]*models.User, error)

	Count(ctx context.Context) (int, error)
}
