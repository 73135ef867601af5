// Package store owns the authoritative id→user mapping. It is mechanism, not
// policy: uniqueness and existence outcomes surface as sentinel errors and the
// service layer decides what they mean.
package store

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"user-registry/internal/sentinel"
	"user-registry/internal/user/models"
)

// ErrNotFound is returned when a user id is not present.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores users in process memory. A single mutex guards the record
// map and the id sequence so check-and-write operations are atomic; state is
// lost on restart by design.
type InMemory struct {
	mu     sync.RWMutex
	users  map[int]*models.User
	nextID int
}

// NewInMemory creates an empty in-memory user store. IDs start at 0 and are
// never reused within the process lifetime.
func NewInMemory() *InMemory {
	return &InMemory{
		users: make(map[int]*models.User),
	}
}

// Insert stores the user under the next sequential id and returns that id.
// The id counter advances unconditionally; rejecting a candidate before
// insertion is the caller's job.
func (s *InMemory) Insert(_ context.Context, user *models.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(user), nil
}

// InsertIfBirthNumberAvailable atomically checks birth-number uniqueness and
// inserts. Two concurrent calls with the same birth number cannot both pass
// the check; the loser gets sentinel.ErrAlreadyUsed.
func (s *InMemory) InsertIfBirthNumberAvailable(_ context.Context, user *models.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.birthNumberTakenLocked(user.BirthNumber) {
		return 0, fmt.Errorf("birth number must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	return s.insertLocked(user), nil
}

// ExistsByBirthNumber reports whether any live user holds the given
// canonical birth number.
func (s *InMemory) ExistsByBirthNumber(_ context.Context, birthNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.birthNumberTakenLocked(birthNumber), nil
}

// ExistsByID reports whether the id maps to a live user.
func (s *InMemory) ExistsByID(_ context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok, nil
}

// Remove atomically deletes the record, returning sentinel.ErrNotFound when
// the id is not present. Removed ids are never reassigned.
func (s *InMemory) Remove(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return fmt.Errorf("user id %d: %w", id, sentinel.ErrNotFound)
	}
	delete(s.users, id)
	return nil
}

// All returns a snapshot of the id→user mapping. Iteration order is
// unspecified.
func (s *InMemory) All(_ context.Context) (map[int]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[int]*models.User, len(s.users))
	maps.Copy(snapshot, s.users)
	return snapshot, nil
}

// Count returns the number of live users.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

func (s *InMemory) insertLocked(user *models.User) int {
	id := s.nextID
	s.users[id] = user
	s.nextID++
	return id
}

func (s *InMemory) birthNumberTakenLocked(birthNumber string) bool {
	for _, u := range s.users {
		if u.BirthNumber == birthNumber {
			return true
		}
	}
	return false
}
