package dto

import (
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
)

type UserResponseDTO struct {
	ID        int       `json:"id" example:"7"`
	Login     string    `json:"login" example:"jdoe"`
	FullName  string    `json:"full_name" example:"John Doe"`
	Email     string    `json:"email,omitempty" example:"jdoe@example.com"`
	Role      string    `json:"role" example:"MEMBER"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-02T15:04:05Z"`
}

type ChangeRoleRequestDTO struct {
	Role string `json:"role" validate:"required" example:"ADMIN"`
}

func NewUserResponse(u domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Login:     u.Login,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
