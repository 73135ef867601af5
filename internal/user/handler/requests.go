package handler

import (
	"user-registry/internal/user/service"
	"user-registry/pkg/platform/validation"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// These are converted to service commands before processing.

type AddUserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	BirthNumber string `json:"birthNumber"`
}

// Validate caps field sizes so oversized input fails fast at the boundary.
// Required-field and format rules stay in the service, which owns the
// client-visible messages for them.
func (r *AddUserRequest) Validate() error {
	if err := validation.CheckStringLength("first name", r.FirstName, validation.MaxNameLength); err != nil {
		return err
	}
	if err := validation.CheckStringLength("last name", r.LastName, validation.MaxNameLength); err != nil {
		return err
	}
	return validation.CheckStringLength("birth number", r.BirthNumber, validation.MaxBirthNumberLength)
}

// ToCommand converts the HTTP request to a service command.
func (r *AddUserRequest) ToCommand() *service.AddUserCommand {
	return &service.AddUserCommand{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		BirthNumber: r.BirthNumber,
	}
}
