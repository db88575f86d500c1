package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("user name cannot be empty")
	ErrNameTooLong = errors.New("user name is too long (max 255 characters)")
)

const MaxNameLength = 255

// User entity. Registration data is immutable afterwards; the admin flag is
// only ever set directly in the database.
type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	isAdmin      bool
	createdAt    time.Time
}

func NewUser(name string, email Email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, passwordHash string, isAdmin bool, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsAdmin() bool        { return u.isAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }
