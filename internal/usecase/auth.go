package usecase

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound           = errs.New("user not found")
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid email or password")
	ErrTokenGeneration        = errs.New("token generation failed")
	ErrTokenValidation        = errs.New("token validation failed")
)

// AuthorizedUser is the read model exposed to handlers; never carries the hash.
type AuthorizedUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email user.Email) (*AuthorizedUser, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUser, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, name string, credentials user.Credentials) (uuid.UUID, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *AuthorizedUser, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUser, error)
	ValidateToken(tokenString string) (uuid.UUID, bool, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, name string, credentials user.Credentials) (uuid.UUID, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, err
	}

	entity, err := user.NewUser(name, credentials.Email(), hash)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailAlreadyRegistered
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *AuthorizedUser, error) {
	account, hash, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a bad password so emails cannot be probed
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(account.ID, account.IsAdmin)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, account, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUser, error) {
	account, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return account, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, bool, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, false, ErrTokenValidation
	}

	return claims.UserID, claims.IsAdmin, nil
}
