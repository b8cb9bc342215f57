package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitnessapi/internal/db"
	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const selectWorkoutRows = `
	SELECT
		w.id, w.workout_template_id, uw.user_id, wt.name, w.description, uw.start_date, uw.end_date,
		e.id, e.name, we.exercise_set, we.reps, we.weight, we.time_in_seconds, we.notes
	FROM workouts w
	JOIN users_workouts uw ON uw.workout_id = w.id
	JOIN workout_template wt ON wt.id = w.workout_template_id
	LEFT JOIN workouts_exercises we ON we.workout_id = w.id
	LEFT JOIN exercises e ON e.id = we.exercise_id
`

const setColumns = `exercise_id, exercise_set, reps, weight, time_in_seconds, notes`

type WorkoutsRepo struct {
	db *pgxpool.Pool
}

func NewWorkoutsRepo(db *pgxpool.Pool) *WorkoutsRepo {
	return &WorkoutsRepo{
		db: db,
	}
}

func scanWorkoutRows(rows pgx.Rows) ([]WorkoutRow, error) {
	defer rows.Close()

	var workoutRows []WorkoutRow
	for rows.Next() {
		var row WorkoutRow
		if err := rows.Scan(
			&row.WorkoutID,
			&row.TemplateID,
			&row.UserID,
			&row.Name,
			&row.Description,
			&row.StartDate,
			&row.EndDate,
			&row.ExerciseID,
			&row.ExerciseName,
			&row.Set,
			&row.Reps,
			&row.Weight,
			&row.TimeInSeconds,
			&row.Notes,
		); err != nil {
			return nil, fmt.Errorf("workout rows [scan]: %w", err)
		}
		workoutRows = append(workoutRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout rows [rows error]: %w", err)
	}

	return workoutRows, nil
}

// scanSets reads rows of a `RETURNING`/select producing
// exercise_id, name, exercise_set, reps, weight, time_in_seconds, notes.
func scanSets(rows pgx.Rows) ([]WorkoutExercise, error) {
	defer rows.Close()

	sets := []WorkoutExercise{}
	for rows.Next() {
		var we WorkoutExercise
		if err := rows.Scan(
			&we.ID, &we.Name, &we.Set, &we.Reps, &we.Weight, &we.TimeInSeconds, &we.Notes,
		); err != nil {
			return nil, fmt.Errorf("workout sets [scan]: %w", err)
		}
		sets = append(sets, we)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout sets [rows error]: %w", err)
	}

	return sets, nil
}

func getWorkout(ctx context.Context, q querier, id int) (*Workout, error) {
	rows, err := q.Query(
		ctx,
		selectWorkoutRows+`
			WHERE w.id = $1
			ORDER BY we.exercise_id, we.exercise_set
		`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get workout [query]: %w", err)
	}

	workoutRows, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}

	workout, ok := CompactWorkout(workoutRows)
	if !ok {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

func (r *WorkoutsRepo) GetWorkout(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	return getWorkout(ctx, r.db, id)
}

// ListWorkouts returns all workouts of the user, latest first.
func (r *WorkoutsRepo) ListWorkouts(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectWorkoutRows+`
			WHERE uw.user_id = $1
			ORDER BY uw.start_date DESC, w.id DESC, we.exercise_id, we.exercise_set
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts [query]: %w", err)
	}

	workoutRows, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}

	return CompactWorkouts(workoutRows), nil
}

// ListWorkoutsForTemplate returns the user's latest workouts started from the
// template. A zero limit means no limit.
func (r *WorkoutsRepo) ListWorkoutsForTemplate(ctx context.Context, userID, templateID, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_for_template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("template.id", templateID),
		attribute.Int("limit", limit),
	)

	rows, err := r.db.Query(
		ctx,
		`
			WITH latest AS (
				SELECT w.id
				FROM workouts w
				JOIN users_workouts uw ON uw.workout_id = w.id
				WHERE uw.user_id = $1 AND w.workout_template_id = $2
				ORDER BY uw.start_date DESC, w.id DESC
				LIMIT NULLIF($3::int, 0)
			)
		`+selectWorkoutRows+`
			WHERE w.id IN (SELECT id FROM latest) AND uw.user_id = $1
			ORDER BY uw.start_date DESC, w.id DESC, we.exercise_id, we.exercise_set
		`,
		userID, templateID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list template workouts [query]: %w", err)
	}

	workoutRows, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}

	return CompactWorkouts(workoutRows), nil
}

// CreateWorkout inserts the workout and links it to the performing user.
func (r *WorkoutsRepo) CreateWorkout(ctx context.Context, userID int, newWorkout NewWorkout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	startDate := time.Now()
	if newWorkout.StartDate != nil {
		startDate = *newWorkout.StartDate
	}

	var created *Workout
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var id int
		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO workouts (workout_template_id, description)
				VALUES ($1, $2)
				RETURNING id
			`,
			newWorkout.TemplateID, newWorkout.Description,
		).Scan(&id); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return ErrTemplateNotFound
			}
			return fmt.Errorf("insert workout: %w", err)
		}

		if _, err := tx.Exec(
			ctx,
			`
				INSERT INTO users_workouts (user_id, workout_id, start_date)
				VALUES ($1, $2, $3)
			`,
			userID, id, startDate,
		); err != nil {
			return fmt.Errorf("insert user workout: %w", err)
		}

		workout, err := getWorkout(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("read created workout: %w", err)
		}
		created = workout
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", created.ID))
	return created, nil
}

func (r *WorkoutsRepo) UpdateWorkout(ctx context.Context, id int, upd WorkoutUpdate) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	var updated *Workout
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`UPDATE workouts SET description = COALESCE($2::text, description) WHERE id = $1`,
			id, upd.Description,
		)
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrWorkoutNotFound
		}

		if upd.EndDate != nil {
			if _, err := tx.Exec(
				ctx,
				`UPDATE users_workouts SET end_date = $2 WHERE workout_id = $1`,
				id, *upd.EndDate,
			); err != nil {
				return fmt.Errorf("update workout end date: %w", err)
			}
		}

		updated, err = getWorkout(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteWorkout removes the workout with its sets and returns it as it was
// right before the deletion.
func (r *WorkoutsRepo) DeleteWorkout(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	var deleted *Workout
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		workout, err := getWorkout(ctx, tx, id)
		if err != nil {
			return err
		}

		for _, stmt := range []string{
			`DELETE FROM workouts_exercises WHERE workout_id = $1`,
			`DELETE FROM users_workouts WHERE workout_id = $1`,
			`DELETE FROM workouts WHERE id = $1`,
		} {
			if _, err := tx.Exec(ctx, stmt, id); err != nil {
				return fmt.Errorf("delete workout: %w", err)
			}
		}

		deleted = workout
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

func (r *WorkoutsRepo) AddSet(ctx context.Context, key SetKey, values SetValues) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", key.WorkoutID),
		attribute.Int("exercise.id", key.ExerciseID),
		attribute.Int("exercise.set", key.Set),
	)

	var added *WorkoutExercise
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM workouts WHERE id = $1)`,
			key.WorkoutID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check workout: %w", err)
		}
		if !exists {
			return ErrWorkoutNotFound
		}

		name, err := exerciseName(ctx, tx, key.ExerciseID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			ctx,
			`
				INSERT INTO workouts_exercises
					(workout_id, `+setColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`,
			key.WorkoutID, key.ExerciseID, key.Set,
			values.Reps, values.Weight, values.TimeInSeconds, values.Notes,
		)
		switch {
		case err == nil:
		case pkg.IsUniqueViolationError(err):
			return fmt.Errorf("set %d of exercise %d: %w", key.Set, key.ExerciseID, ErrConflict)
		case pkg.IsCheckViolationError(err):
			return fmt.Errorf("set values out of range: %w", ErrInvalidInput)
		default:
			return fmt.Errorf("insert set: %w", err)
		}

		added = &WorkoutExercise{
			ID:            key.ExerciseID,
			Name:          name,
			Set:           key.Set,
			Reps:          values.Reps,
			Weight:        values.Weight,
			TimeInSeconds: values.TimeInSeconds,
			Notes:         values.Notes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// UpdateSet overwrites only the supplied fields of one set.
func (r *WorkoutsRepo) UpdateSet(ctx context.Context, key SetKey, upd SetUpdate) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			WITH updated AS (
				UPDATE workouts_exercises
				SET exercise_set = COALESCE($4::int, exercise_set),
				    reps = COALESCE($5::int, reps),
				    weight = COALESCE($6::double precision, weight),
				    time_in_seconds = COALESCE($7::int, time_in_seconds),
				    notes = COALESCE($8::text, notes)
				WHERE workout_id = $1 AND exercise_id = $2 AND exercise_set = $3
				RETURNING `+setColumns+`
			)
			SELECT u.exercise_id, e.name, u.exercise_set, u.reps, u.weight, u.time_in_seconds, u.notes
			FROM updated u
			JOIN exercises e ON e.id = u.exercise_id
		`,
		key.WorkoutID, key.ExerciseID, key.Set,
		upd.Set, upd.Reps, upd.Weight, upd.TimeInSeconds, upd.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("update set [query]: %w", err)
	}

	sets, err := scanSets(rows)
	switch {
	case err == nil:
	case pkg.IsUniqueViolationError(err):
		return nil, fmt.Errorf("set number taken: %w", ErrConflict)
	case pkg.IsCheckViolationError(err):
		return nil, fmt.Errorf("set values out of range: %w", ErrInvalidInput)
	default:
		return nil, err
	}
	if len(sets) == 0 {
		return nil, ErrSetNotFound
	}

	return &sets[0], nil
}

func (r *WorkoutsRepo) DeleteSet(ctx context.Context, key SetKey) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			WITH deleted AS (
				DELETE FROM workouts_exercises
				WHERE workout_id = $1 AND exercise_id = $2 AND exercise_set = $3
				RETURNING `+setColumns+`
			)
			SELECT d.exercise_id, e.name, d.exercise_set, d.reps, d.weight, d.time_in_seconds, d.notes
			FROM deleted d
			JOIN exercises e ON e.id = d.exercise_id
		`,
		key.WorkoutID, key.ExerciseID, key.Set,
	)
	if err != nil {
		return nil, fmt.Errorf("delete set [query]: %w", err)
	}

	sets, err := scanSets(rows)
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, ErrSetNotFound
	}

	return &sets[0], nil
}

// DeleteExerciseSets removes every set of the exercise in the workout.
func (r *WorkoutsRepo) DeleteExerciseSets(ctx context.Context, workoutID, exerciseID int) (_ []WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete_exercise_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			WITH deleted AS (
				DELETE FROM workouts_exercises
				WHERE workout_id = $1 AND exercise_id = $2
				RETURNING `+setColumns+`
			)
			SELECT d.exercise_id, e.name, d.exercise_set, d.reps, d.weight, d.time_in_seconds, d.notes
			FROM deleted d
			JOIN exercises e ON e.id = d.exercise_id
			ORDER BY d.exercise_set
		`,
		workoutID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("delete exercise sets [query]: %w", err)
	}

	sets, err := scanSets(rows)
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, ErrSetNotFound
	}

	return sets, nil
}

// DeleteEmptyWorkouts removes workouts created before olderThan that have no
// sets recorded. The user links go with them through the cascade.
func (r *WorkoutsRepo) DeleteEmptyWorkouts(ctx context.Context, olderThan time.Time) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete_empty")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM workouts w
			WHERE w.created_at < $1
			  AND NOT EXISTS (SELECT 1 FROM workouts_exercises we WHERE we.workout_id = w.id)
		`,
		olderThan,
	)
	if err != nil {
		return 0, fmt.Errorf("delete empty workouts: %w", err)
	}

	span.SetAttributes(attribute.Int64("deleted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}
