package repository

import (
	"context"
	"errors"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	createUserQuery = `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	findUserByEmailQuery = `
		SELECT id, name, email, is_admin, created_at, password_hash
		FROM users
		WHERE email = $1`

	findUserByIDQuery = `
		SELECT id, name, email, is_admin, created_at
		FROM users
		WHERE id = $1`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(database db.DBTX) *UserRepository {
	return &UserRepository{db: database}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createUserQuery, u.ID(), u.Name(), u.Email().Value(), u.PasswordHash()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*usecase.AuthorizedUser, string, error) {
	var (
		account usecase.AuthorizedUser
		hash    string
	)
	err := r.db.QueryRow(ctx, findUserByEmailQuery, email.Value()).Scan(
		&account.ID, &account.Name, &account.Email, &account.IsAdmin, &account.CreatedAt, &hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &account, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.AuthorizedUser, error) {
	var account usecase.AuthorizedUser
	err := r.db.QueryRow(ctx, findUserByIDQuery, id).Scan(
		&account.ID, &account.Name, &account.Email, &account.IsAdmin, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &account, nil
}
