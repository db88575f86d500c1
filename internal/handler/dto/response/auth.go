package response

import (
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type MeResponse struct {
	User UserResponse `json:"user"`
}

func FromAuthorizedUser(rm *usecase.AuthorizedUser) UserResponse {
	return UserResponse{
		ID:      rm.ID,
		Name:    rm.Name,
		Email:   rm.Email,
		IsAdmin: rm.IsAdmin,
	}
}
