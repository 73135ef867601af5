package models

// User is the aggregate owned by the store. BirthNumber is always held in
// canonical YYMMDD/XXXX form and is unique across live users.
// Immutable once stored.
type User struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	BirthNumber string `json:"birthNumber"`
}

// UserView is the read-facing projection of a stored user including the
// derived age. Computed on every read, never persisted.
type UserView struct {
	ID          int
	BirthNumber string
	FirstName   string
	LastName    string
	Age         int
}

// SearchCriteria holds optional exact-match constraints for user lookups.
// A nil field imposes no constraint; all present fields must match.
type SearchCriteria struct {
	FirstName   *string
	LastName    *string
	BirthNumber *string
}

// Matches reports whether the user satisfies every present criterion.
// With all criteria absent every user matches.
func (c SearchCriteria) Matches(u *User) bool {
	if c.FirstName != nil && u.FirstName != *c.FirstName {
		return false
	}
	if c.LastName != nil && u.LastName != *c.LastName {
		return false
	}
	if c.BirthNumber != nil && u.BirthNumber != *c.BirthNumber {
		return false
	}
	return true
}
