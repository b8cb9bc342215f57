package weightlogs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitnessapi/internal/telemetry/tracing"

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

// ListWeightLogs returns the user's logs, newest first.
func (r *Repo) ListWeightLogs(ctx context.Context, userID int) (_ []WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlogs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, weight, logged_at, notes
			FROM weight_logs
			WHERE user_id = $1
			ORDER BY logged_at DESC, id DESC
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("weight logs [query]: %w", err)
	}
	defer rows.Close()

	logs := []WeightLog{}
	for rows.Next() {
		var wl WeightLog
		if err := rows.Scan(&wl.ID, &wl.UserID, &wl.Weight, &wl.LoggedAt, &wl.Notes); err != nil {
			return nil, fmt.Errorf("weight logs [rows scan]: %w", err)
		}
		logs = append(logs, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weight logs [rows error]: %w", err)
	}

	return logs, nil
}

func (r *Repo) GetWeightLog(ctx context.Context, id int) (_ *WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlogs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var wl WeightLog
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, weight, logged_at, notes
			FROM weight_logs
			WHERE id = $1
		`,
		id,
	).Scan(&wl.ID, &wl.UserID, &wl.Weight, &wl.LoggedAt, &wl.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeightLogNotFound
		}
		return nil, fmt.Errorf("weight log [query row]: %w", err)
	}

	return &wl, nil
}

func (r *Repo) AddWeightLog(ctx context.Context, userID int, weight float64, loggedAt time.Time, notes string) (_ *WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlogs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	wl := WeightLog{
		UserID:   userID,
		Weight:   weight,
		LoggedAt: loggedAt,
		Notes:    notes,
	}
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO weight_logs (user_id, weight, logged_at, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
		userID, weight, loggedAt, notes,
	).Scan(&wl.ID)
	if err != nil {
		return nil, fmt.Errorf("add weight log [query row]: %w", err)
	}

	return &wl, nil
}

func (r *Repo) DeleteWeightLog(ctx context.Context, id int) (_ *WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlogs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var wl WeightLog
	err = r.db.QueryRow(
		ctx,
		`
			DELETE FROM weight_logs
			WHERE id = $1
			RETURNING id, user_id, weight, logged_at, notes
		`,
		id,
	).Scan(&wl.ID, &wl.UserID, &wl.Weight, &wl.LoggedAt, &wl.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeightLogNotFound
		}
		return nil, fmt.Errorf("delete weight log [query row]: %w", err)
	}

	return &wl, nil
}
