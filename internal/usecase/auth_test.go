//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type storedUser struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	isAdmin      bool
	createdAt    time.Time
}

type fakeUserRepo struct {
	byEmail map[string]*storedUser
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	if _, ok := f.byEmail[u.Email().Value()]; ok {
		return uuid.Nil, infra.WrapRepoErr("user already exists", errors.New("duplicate key"), infra.KindDuplicateKey)
	}
	stored := &storedUser{
		id:           uuid.New(),
		name:         u.Name(),
		email:        u.Email().Value(),
		passwordHash: u.PasswordHash(),
		isAdmin:      u.IsAdmin(),
		createdAt:    time.Now(),
	}
	f.byEmail[stored.email] = stored
	return stored.id, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email user.Email) (*usecase.AuthorizedUser, string, error) {
	stored, ok := f.byEmail[email.Value()]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)
	}
	return toAuthorizedUser(stored), stored.passwordHash, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*usecase.AuthorizedUser, error) {
	for _, stored := range f.byEmail {
		if stored.id == id {
			return toAuthorizedUser(stored), nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)
}

func toAuthorizedUser(stored *storedUser) *usecase.AuthorizedUser {
	return &usecase.AuthorizedUser{
		ID:        stored.id,
		Name:      stored.name,
		Email:     stored.email,
		IsAdmin:   stored.isAdmin,
		CreatedAt: stored.createdAt,
	}
}

type AuthUseCaseTestSuite struct {
	suite.Suite
	userRepo *fakeUserRepo
	uc       usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.userRepo = &fakeUserRepo{byEmail: map[string]*storedUser{}}
	s.uc = usecase.NewAuthUseCase(s.userRepo, jwt.NewService("test-secret", time.Hour))
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) credentials(email, pass string) user.Credentials {
	c, err := user.NewCredentials(email, pass)
	s.Require().NoError(err)
	return c
}

func (s *AuthUseCaseTestSuite) TestRegister() {
	s.Run("success: new account gets an id", func() {
		id, err := s.uc.Register(context.Background(), "Taro Yamada", s.credentials("taro@example.com", "password123"))
		s.NoError(err)
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("error: duplicate email returns ErrEmailAlreadyRegistered", func() {
		_, err := s.uc.Register(context.Background(), "Taro Yamada", s.credentials("dup@example.com", "password123"))
		s.Require().NoError(err)

		_, err = s.uc.Register(context.Background(), "Jiro Yamada", s.credentials("dup@example.com", "password456"))
		s.ErrorIs(err, usecase.ErrEmailAlreadyRegistered)
	})

	s.Run("error: empty name is rejected", func() {
		_, err := s.uc.Register(context.Background(), "", s.credentials("noname@example.com", "password123"))
		s.ErrorIs(err, user.ErrEmptyName)
	})
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	s.Run("success: returns token and user for valid credentials", func() {
		_, err := s.uc.Register(context.Background(), "Taro Yamada", s.credentials("taro@example.com", "password123"))
		s.Require().NoError(err)

		token, account, err := s.uc.Login(context.Background(), s.credentials("taro@example.com", "password123"))
		s.Require().NoError(err)
		s.NotEmpty(token)
		s.Equal("taro@example.com", account.Email)

		userID, isAdmin, err := s.uc.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(account.ID, userID)
		s.False(isAdmin)
	})

	s.Run("error: wrong password returns ErrInvalidCredentials", func() {
		_, err := s.uc.Register(context.Background(), "Taro Yamada", s.credentials("taro2@example.com", "password123"))
		s.Require().NoError(err)

		_, _, err = s.uc.Login(context.Background(), s.credentials("taro2@example.com", "wrongpassword"))
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: unknown email returns the same ErrInvalidCredentials", func() {
		_, _, err := s.uc.Login(context.Background(), s.credentials("nobody@example.com", "password123"))
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentUser() {
	s.Run("success: returns the stored account", func() {
		id, err := s.uc.Register(context.Background(), "Taro Yamada", s.credentials("me@example.com", "password123"))
		s.Require().NoError(err)

		account, err := s.uc.GetCurrentUser(context.Background(), id)
		s.Require().NoError(err)
		s.Equal("me@example.com", account.Email)
		s.Equal("Taro Yamada", account.Name)
	})

	s.Run("error: unknown id returns ErrUserNotFound", func() {
		_, err := s.uc.GetCurrentUser(context.Background(), uuid.New())
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}

func (s *AuthUseCaseTestSuite) TestValidateToken() {
	s.Run("error: garbage token returns ErrTokenValidation", func() {
		_, _, err := s.uc.ValidateToken("not-a-token")
		s.ErrorIs(err, usecase.ErrTokenValidation)
	})

	s.Run("error: token signed with another secret is rejected", func() {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), false)
		s.Require().NoError(err)

		_, _, err = s.uc.ValidateToken(token)
		s.ErrorIs(err, usecase.ErrTokenValidation)
	})
}
