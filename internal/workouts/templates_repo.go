package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitnessapi/internal/db"
	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const selectTemplateRows = `
	SELECT
		wt.id, wt.user_id, wt.name, wt.description,
		e.id, e.name, wte.exercise_order, wte.sets
	FROM workout_template wt
	LEFT JOIN workout_template_exercises wte ON wte.workout_template_id = wt.id
	LEFT JOIN exercises e ON e.id = wte.exercise_id
`

type TemplatesRepo struct {
	db *pgxpool.Pool
}

func NewTemplatesRepo(db *pgxpool.Pool) *TemplatesRepo {
	return &TemplatesRepo{
		db: db,
	}
}

func scanTemplateRows(rows pgx.Rows) ([]TemplateRow, error) {
	defer rows.Close()

	var templateRows []TemplateRow
	for rows.Next() {
		var row TemplateRow
		if err := rows.Scan(
			&row.TemplateID,
			&row.UserID,
			&row.Name,
			&row.Description,
			&row.ExerciseID,
			&row.ExerciseName,
			&row.Order,
			&row.Sets,
		); err != nil {
			return nil, fmt.Errorf("template rows [scan]: %w", err)
		}
		templateRows = append(templateRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("template rows [rows error]: %w", err)
	}

	return templateRows, nil
}

func getTemplate(ctx context.Context, q querier, id int) (*Template, error) {
	rows, err := q.Query(
		ctx,
		selectTemplateRows+`
			WHERE wt.id = $1
			ORDER BY wte.exercise_order
		`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get template [query]: %w", err)
	}

	templateRows, err := scanTemplateRows(rows)
	if err != nil {
		return nil, err
	}

	tpl, ok := CompactTemplate(templateRows)
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return tpl, nil
}

func (r *TemplatesRepo) GetTemplate(ctx context.Context, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	return getTemplate(ctx, r.db, id)
}

// ListTemplates returns all templates of the user, ordered by id.
func (r *TemplatesRepo) ListTemplates(ctx context.Context, userID int) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectTemplateRows+`
			WHERE wt.user_id = $1
			ORDER BY wt.id, wte.exercise_order
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list templates [query]: %w", err)
	}

	templateRows, err := scanTemplateRows(rows)
	if err != nil {
		return nil, err
	}

	return CompactTemplates(templateRows), nil
}

func (r *TemplatesRepo) CreateTemplate(ctx context.Context, userID int, newTpl NewTemplate) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var created *Template
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var id int
		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO workout_template (user_id, name, description)
				VALUES ($1, $2, $3)
				RETURNING id
			`,
			userID, newTpl.Name, newTpl.Description,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert template: %w", err)
		}

		for _, ex := range newTpl.Exercises {
			if err := insertTemplateExercise(ctx, tx, id, ex); err != nil {
				return err
			}
		}

		tpl, err := getTemplate(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("read created template: %w", err)
		}
		created = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("template.id", created.ID))
	return created, nil
}

func insertTemplateExercise(ctx context.Context, q querier, templateID int, ex TemplateExerciseInput) error {
	_, err := q.Exec(
		ctx,
		`
			INSERT INTO workout_template_exercises
				(workout_template_id, exercise_id, exercise_order, sets)
			VALUES ($1, $2, $3, $4)
		`,
		templateID, ex.ExerciseID, ex.Order, ex.Sets,
	)
	switch {
	case err == nil:
		return nil
	case pkg.IsUniqueViolationError(err):
		return fmt.Errorf("exercise order %d in template %d: %w", ex.Order, templateID, ErrConflict)
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("exercise %d: %w", ex.ExerciseID, ErrExerciseNotFound)
	case pkg.IsCheckViolationError(err):
		return fmt.Errorf("order and sets must be positive: %w", ErrInvalidInput)
	default:
		return fmt.Errorf("insert template exercise: %w", err)
	}
}

// UpdateTemplate changes only the supplied metadata fields.
func (r *TemplatesRepo) UpdateTemplate(ctx context.Context, id int, upd TemplateUpdate) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	var updated *Template
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`
				UPDATE workout_template
				SET name = COALESCE($2::text, name),
				    description = COALESCE($3::text, description)
				WHERE id = $1
			`,
			id, upd.Name, upd.Description,
		)
		if err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrTemplateNotFound
		}

		updated, err = getTemplate(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTemplate removes the template with all its exercises, and returns the
// template as it was right before the deletion.
func (r *TemplatesRepo) DeleteTemplate(ctx context.Context, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	var deleted *Template
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		tpl, err := getTemplate(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`DELETE FROM workout_template_exercises WHERE workout_template_id = $1`,
			id,
		); err != nil {
			return fmt.Errorf("delete template exercises: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM workout_template WHERE id = $1`, id); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return fmt.Errorf("template %d: %w", id, ErrTemplateInUse)
			}
			return fmt.Errorf("delete template: %w", err)
		}

		deleted = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

func (r *TemplatesRepo) AddTemplateExercise(ctx context.Context, key TemplateExerciseKey, sets int) (_ *TemplateExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("template.id", key.TemplateID),
		attribute.Int("exercise.id", key.ExerciseID),
		attribute.Int("exercise.order", key.Order),
	)

	var added *TemplateExercise
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM workout_template WHERE id = $1)`,
			key.TemplateID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check template: %w", err)
		}
		if !exists {
			return ErrTemplateNotFound
		}

		name, err := exerciseName(ctx, tx, key.ExerciseID)
		if err != nil {
			return err
		}

		if err := insertTemplateExercise(ctx, tx, key.TemplateID, TemplateExerciseInput{
			ExerciseID: key.ExerciseID,
			Order:      key.Order,
			Sets:       sets,
		}); err != nil {
			return err
		}

		added = &TemplateExercise{
			ID:    key.ExerciseID,
			Name:  name,
			Order: key.Order,
			Sets:  sets,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// UpdateTemplateExercise changes order and/or sets of one template exercise.
func (r *TemplatesRepo) UpdateTemplateExercise(
	ctx context.Context,
	key TemplateExerciseKey,
	upd TemplateExerciseUpdate,
) (_ *TemplateExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.update_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var te TemplateExercise
	err = r.db.QueryRow(
		ctx,
		`
			WITH updated AS (
				UPDATE workout_template_exercises
				SET exercise_order = COALESCE($4::int, exercise_order),
				    sets = COALESCE($5::int, sets)
				WHERE workout_template_id = $1 AND exercise_id = $2 AND exercise_order = $3
				RETURNING exercise_id, exercise_order, sets
			)
			SELECT u.exercise_id, e.name, u.exercise_order, u.sets
			FROM updated u
			JOIN exercises e ON e.id = u.exercise_id
		`,
		key.TemplateID, key.ExerciseID, key.Order, upd.Order, upd.Sets,
	).Scan(&te.ID, &te.Name, &te.Order, &te.Sets)
	switch {
	case err == nil:
		return &te, nil
	case errors.Is(err, pgx.ErrNoRows):
		return nil, ErrTemplateExerciseNotFound
	case pkg.IsUniqueViolationError(err):
		return nil, fmt.Errorf("exercise order in template %d: %w", key.TemplateID, ErrConflict)
	case pkg.IsCheckViolationError(err):
		return nil, fmt.Errorf("order and sets must be positive: %w", ErrInvalidInput)
	default:
		return nil, fmt.Errorf("update template exercise: %w", err)
	}
}

// DeleteTemplateExercise removes one template exercise and returns it. The
// remaining orders are left as they are.
func (r *TemplatesRepo) DeleteTemplateExercise(ctx context.Context, key TemplateExerciseKey) (_ *TemplateExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.templates.delete_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var te TemplateExercise
	err = r.db.QueryRow(
		ctx,
		`
			WITH deleted AS (
				DELETE FROM workout_template_exercises
				WHERE workout_template_id = $1 AND exercise_id = $2 AND exercise_order = $3
				RETURNING exercise_id, exercise_order, sets
			)
			SELECT d.exercise_id, e.name, d.exercise_order, d.sets
			FROM deleted d
			JOIN exercises e ON e.id = d.exercise_id
		`,
		key.TemplateID, key.ExerciseID, key.Order,
	).Scan(&te.ID, &te.Name, &te.Order, &te.Sets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateExerciseNotFound
		}
		return nil, fmt.Errorf("delete template exercise: %w", err)
	}

	return &te, nil
}
