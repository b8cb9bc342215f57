package workouts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func exerciseName(ctx context.Context, q querier, exerciseID int) (string, error) {
	var name string
	err := q.QueryRow(ctx, `SELECT name FROM exercises WHERE id = $1`, exerciseID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrExerciseNotFound
		}
		return "", err
	}
	return name, nil
}
