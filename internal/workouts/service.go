package workouts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitnessapi/internal/telemetry/metrics"
	"github.com/2beens/fitnessapi/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type templatesRepo interface {
	GetTemplate(ctx context.Context, id int) (*Template, error)
	ListTemplates(ctx context.Context, userID int) ([]Template, error)
	CreateTemplate(ctx context.Context, userID int, newTpl NewTemplate) (*Template, error)
	UpdateTemplate(ctx context.Context, id int, upd TemplateUpdate) (*Template, error)
	DeleteTemplate(ctx context.Context, id int) (*Template, error)
	AddTemplateExercise(ctx context.Context, key TemplateExerciseKey, sets int) (*TemplateExercise, error)
	UpdateTemplateExercise(ctx context.Context, key TemplateExerciseKey, upd TemplateExerciseUpdate) (*TemplateExercise, error)
	DeleteTemplateExercise(ctx context.Context, key TemplateExerciseKey) (*TemplateExercise, error)
}

type workoutsRepo interface {
	GetWorkout(ctx context.Context, id int) (*Workout, error)
	ListWorkouts(ctx context.Context, userID int) ([]Workout, error)
	ListWorkoutsForTemplate(ctx context.Context, userID, templateID, limit int) ([]Workout, error)
	CreateWorkout(ctx context.Context, userID int, newWorkout NewWorkout) (*Workout, error)
	UpdateWorkout(ctx context.Context, id int, upd WorkoutUpdate) (*Workout, error)
	DeleteWorkout(ctx context.Context, id int) (*Workout, error)
	AddSet(ctx context.Context, key SetKey, values SetValues) (*WorkoutExercise, error)
	UpdateSet(ctx context.Context, key SetKey, upd SetUpdate) (*WorkoutExercise, error)
	DeleteSet(ctx context.Context, key SetKey) (*WorkoutExercise, error)
	DeleteExerciseSets(ctx context.Context, workoutID, exerciseID int) ([]WorkoutExercise, error)
	DeleteEmptyWorkouts(ctx context.Context, olderThan time.Time) (int64, error)
}

// Service guards every template and workout operation: the target must exist
// and the user must be allowed to touch it, in that order.
type Service struct {
	templates      templatesRepo
	workouts       workoutsRepo
	commonUserID   int
	metricsManager *metrics.Manager
}

func NewService(
	templates templatesRepo,
	workouts workoutsRepo,
	commonUserID int,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		templates:      templates,
		workouts:       workouts,
		commonUserID:   commonUserID,
		metricsManager: metricsManager,
	}
}

func (s *Service) readableTemplate(ctx context.Context, userID, templateID int) (*Template, error) {
	tpl, err := s.templates.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !canReadTemplate(userID, s.commonUserID, tpl) {
		return nil, fmt.Errorf("read template %d: %w", templateID, ErrForbidden)
	}
	return tpl, nil
}

func (s *Service) ownedTemplate(ctx context.Context, userID, templateID int) (*Template, error) {
	tpl, err := s.templates.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !canModifyTemplate(userID, tpl) {
		return nil, fmt.Errorf("modify template %d: %w", templateID, ErrForbidden)
	}
	return tpl, nil
}

func (s *Service) ownedWorkout(ctx context.Context, userID, workoutID int) (*Workout, error) {
	workout, err := s.workouts.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if !canAccessWorkout(userID, workout) {
		return nil, fmt.Errorf("access workout %d: %w", workoutID, ErrForbidden)
	}
	return workout, nil
}

func (s *Service) GetTemplate(ctx context.Context, userID, templateID int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get_template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.readableTemplate(ctx, userID, templateID)
}

func (s *Service) ListTemplates(ctx context.Context, userID int) ([]Template, error) {
	return s.templates.ListTemplates(ctx, userID)
}

// ListCommonTemplates returns the templates available to every user.
func (s *Service) ListCommonTemplates(ctx context.Context) ([]Template, error) {
	if s.commonUserID <= 0 {
		return []Template{}, nil
	}
	return s.templates.ListTemplates(ctx, s.commonUserID)
}

func (s *Service) CreateTemplate(ctx context.Context, userID int, newTpl NewTemplate) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create_template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	newTpl.Name = strings.TrimSpace(newTpl.Name)
	if newTpl.Name == "" {
		return nil, fmt.Errorf("template name required: %w", ErrInvalidInput)
	}

	orders := make(map[int]bool, len(newTpl.Exercises))
	for _, ex := range newTpl.Exercises {
		if ex.ExerciseID <= 0 || ex.Order <= 0 || ex.Sets <= 0 {
			return nil, fmt.Errorf("exercise id, order and sets must be positive: %w", ErrInvalidInput)
		}
		if orders[ex.Order] {
			return nil, fmt.Errorf("exercise order %d used twice: %w", ex.Order, ErrConflict)
		}
		orders[ex.Order] = true
	}

	tpl, err := s.templates.CreateTemplate(ctx, userID, newTpl)
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterTemplatesCreated.Inc()
	}
	log.Debugf("user %d created template %d [%s]", userID, tpl.ID, tpl.Name)

	return tpl, nil
}

func (s *Service) UpdateTemplate(ctx context.Context, userID, templateID int, upd TemplateUpdate) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update_template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("template name can not be empty: %w", ErrInvalidInput)
		}
		upd.Name = &name
	}

	if _, err := s.ownedTemplate(ctx, userID, templateID); err != nil {
		return nil, err
	}

	return s.templates.UpdateTemplate(ctx, templateID, upd)
}

func (s *Service) DeleteTemplate(ctx context.Context, userID, templateID int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete_template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedTemplate(ctx, userID, templateID); err != nil {
		return nil, err
	}

	return s.templates.DeleteTemplate(ctx, templateID)
}

func (s *Service) AddTemplateExercise(ctx context.Context, userID int, key TemplateExerciseKey, sets int) (_ *TemplateExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.add_template_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key.Order <= 0 || sets <= 0 {
		return nil, fmt.Errorf("order and sets must be positive: %w", ErrInvalidInput)
	}

	if _, err := s.ownedTemplate(ctx, userID, key.TemplateID); err != nil {
		return nil, err
	}

	return s.templates.AddTemplateExercise(ctx, key, sets)
}

func (s *Service) UpdateTemplateExercise(
	ctx context.Context,
	userID int,
	key TemplateExerciseKey,
	upd TemplateExerciseUpdate,
) (_ *TemplateExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update_template_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if upd.Order == nil && upd.Sets == nil {
		return nil, fmt.Errorf("nothing to update: %w", ErrInvalidInput)
	}
	if (upd.Order != nil && *upd.Order <= 0) || (upd.Sets != nil && *upd.Sets <= 0) {
		return nil, fmt.Errorf("order and sets must be positive: %w", ErrInvalidInput)
	}

	if _, err := s.ownedTemplate(ctx, userID, key.TemplateID); err != nil {
		return nil, err
	}

	return s.templates.UpdateTemplateExercise(ctx, key, upd)
}

func (s *Service) DeleteTemplateExercise(ctx context.Context, userID int, key TemplateExerciseKey) (_ *TemplateExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete_template_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedTemplate(ctx, userID, key.TemplateID); err != nil {
		return nil, err
	}

	return s.templates.DeleteTemplateExercise(ctx, key)
}

// CreateWorkout starts a workout from a template owned by the user or by the
// common user.
func (s *Service) CreateWorkout(ctx context.Context, userID int, newWorkout NewWorkout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", newWorkout.TemplateID))

	if newWorkout.TemplateID <= 0 {
		return nil, fmt.Errorf("template id required: %w", ErrInvalidInput)
	}

	tpl, err := s.templates.GetTemplate(ctx, newWorkout.TemplateID)
	if err != nil {
		return nil, err
	}
	if !canUseTemplate(userID, s.commonUserID, tpl) {
		return nil, fmt.Errorf("use template %d: %w", tpl.ID, ErrForbidden)
	}

	workout, err := s.workouts.CreateWorkout(ctx, userID, newWorkout)
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsCreated.Inc()
	}
	log.Debugf("user %d started workout %d from template %d", userID, workout.ID, tpl.ID)

	return workout, nil
}

func (s *Service) GetWorkout(ctx context.Context, userID, workoutID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.ownedWorkout(ctx, userID, workoutID)
}

func (s *Service) ListWorkouts(ctx context.Context, userID int) ([]Workout, error) {
	return s.workouts.ListWorkouts(ctx, userID)
}

// ListWorkoutsForTemplate returns only the user's own workouts, also for
// common templates shared by many users.
func (s *Service) ListWorkoutsForTemplate(ctx context.Context, userID, templateID, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list_for_template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit < 0 {
		return nil, fmt.Errorf("limit can not be negative: %w", ErrInvalidInput)
	}

	if _, err := s.readableTemplate(ctx, userID, templateID); err != nil {
		return nil, err
	}

	return s.workouts.ListWorkoutsForTemplate(ctx, userID, templateID, limit)
}

func (s *Service) UpdateWorkout(ctx context.Context, userID, workoutID int, upd WorkoutUpdate) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if upd.EndDate != nil && upd.EndDate.Before(workout.StartDate) {
		return nil, fmt.Errorf("end date before start date: %w", ErrInvalidInput)
	}

	return s.workouts.UpdateWorkout(ctx, workoutID, upd)
}

func (s *Service) DeleteWorkout(ctx context.Context, userID, workoutID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	return s.workouts.DeleteWorkout(ctx, workoutID)
}

func (s *Service) AddSet(ctx context.Context, userID int, key SetKey, values SetValues) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key.Set <= 0 {
		return nil, fmt.Errorf("set must be positive: %w", ErrInvalidInput)
	}
	if err := validateSetValues(values.Reps, values.Weight, values.TimeInSeconds); err != nil {
		return nil, err
	}

	if _, err := s.ownedWorkout(ctx, userID, key.WorkoutID); err != nil {
		return nil, err
	}

	set, err := s.workouts.AddSet(ctx, key, values)
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSetsAdded.Inc()
	}
	return set, nil
}

func (s *Service) UpdateSet(ctx context.Context, userID int, key SetKey, upd SetUpdate) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if upd == (SetUpdate{}) {
		return nil, fmt.Errorf("nothing to update: %w", ErrInvalidInput)
	}
	if upd.Set != nil && *upd.Set <= 0 {
		return nil, fmt.Errorf("set must be positive: %w", ErrInvalidInput)
	}
	if err := validateSetValues(upd.Reps, upd.Weight, upd.TimeInSeconds); err != nil {
		return nil, err
	}

	if _, err := s.ownedWorkout(ctx, userID, key.WorkoutID); err != nil {
		return nil, err
	}

	return s.workouts.UpdateSet(ctx, key, upd)
}

func (s *Service) DeleteSet(ctx context.Context, userID int, key SetKey) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedWorkout(ctx, userID, key.WorkoutID); err != nil {
		return nil, err
	}

	return s.workouts.DeleteSet(ctx, key)
}

func (s *Service) DeleteExerciseSets(ctx context.Context, userID, workoutID, exerciseID int) (_ []WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete_exercise_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	return s.workouts.DeleteExerciseSets(ctx, workoutID, exerciseID)
}

// DeleteEmptyWorkouts removes workouts without any sets that are older than maxAge.
func (s *Service) DeleteEmptyWorkouts(ctx context.Context, maxAge time.Duration) (int64, error) {
	return s.workouts.DeleteEmptyWorkouts(ctx, time.Now().Add(-maxAge))
}

func validateSetValues(reps *int, weight *float64, timeInSeconds *int) error {
	if (reps != nil && *reps < 0) || (weight != nil && *weight < 0) || (timeInSeconds != nil && *timeInSeconds < 0) {
		return fmt.Errorf("reps, weight and time can not be negative: %w", ErrInvalidInput)
	}
	return nil
}
