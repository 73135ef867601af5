package handler

import "user-registry/internal/user/models"

// Confirmation messages are part of the observable API contract.
const (
	MessageUserAdded   = "User added"
	MessageUserRemoved = "User removed"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID          int    `json:"id"`
	BirthNumber string `json:"birthNumber"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Age         int    `json:"age"`
}

// Response mapping functions - convert domain objects to HTTP DTOs

func toUserResponses(views []models.UserView) []UserResponse {
	result := make([]UserResponse, len(views))
	for i, v := range views {
		result[i] = UserResponse{
			ID:          v.ID,
			BirthNumber: v.BirthNumber,
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			Age:         v.Age,
		}
	}
	return result
}
