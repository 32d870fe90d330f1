package dto

import "github.com/hvndev/devhub-api/internal/models"

// UserDTO represents a user in API responses. The credential never leaves
// the server.
type UserDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"nome"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:   user.ID,
		Name: user.Name,
	}
}
