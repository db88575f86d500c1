//go:build unit

package builder

import (
	"time"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildAuthorizedUser() *usecase.AuthorizedUser {
	return &usecase.AuthorizedUser{
		ID:        uuid.New(),
		Name:      a.Name,
		Email:     a.Email,
		IsAdmin:   a.IsAdmin,
		CreatedAt: time.Now(),
	}
}
