package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateUser(ctx context.Context, username, email, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := User{
		Username: username,
		Email:    email,
	}
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO users (username, email, password_hash)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`,
		username, email, passwordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user [query row]: %w", err)
	}

	return &user, nil
}

// GetUserByUsername returns the user together with its password hash.
func (r *Repo) GetUserByUsername(ctx context.Context, username string) (_ *User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get_by_username")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	var passwordHash string
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, username, email, created_at, password_hash
			FROM users
			WHERE username = $1
		`,
		username,
	).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("user by username [query row]: %w", err)
	}

	return &user, passwordHash, nil
}

func (r *Repo) GetUserByID(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get_by_id")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	var user User
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, username, email, created_at
			FROM users
			WHERE id = $1
		`,
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user by id [query row]: %w", err)
	}

	return &user, nil
}
