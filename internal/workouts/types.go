package workouts

import (
	"errors"
	"time"
)

var (
	ErrTemplateNotFound         = errors.New("workout template not found")
	ErrWorkoutNotFound          = errors.New("workout not found")
	ErrExerciseNotFound         = errors.New("exercise not found")
	ErrTemplateExerciseNotFound = errors.New("template exercise not found")
	ErrSetNotFound              = errors.New("workout set not found")
	ErrForbidden                = errors.New("forbidden")
	ErrConflict                 = errors.New("conflict")
	ErrTemplateInUse            = errors.New("workout template is in use")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrInvalidInput             = errors.New("invalid input")
)

type Template struct {
	ID          int                `json:"id"`
	UserID      int                `json:"userId"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Exercises   []TemplateExercise `json:"exercises"`
}

// TemplateExercise is one planned exercise slot. ID is the exercise id.
type TemplateExercise struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
	Sets  int    `json:"sets"`
}

type TemplateExerciseKey struct {
	TemplateID int
	ExerciseID int
	Order      int
}

type TemplateExerciseInput struct {
	ExerciseID int `json:"exercise_id"`
	Order      int `json:"order"`
	Sets       int `json:"sets"`
}

type NewTemplate struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Exercises   []TemplateExerciseInput `json:"exercises"`
}

type TemplateUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type TemplateExerciseUpdate struct {
	Order *int `json:"order"`
	Sets  *int `json:"sets"`
}

// Workout is one dated performance of a template. Name is the template name.
type Workout struct {
	ID          int               `json:"id"`
	TemplateID  int               `json:"template_id"`
	UserID      int               `json:"user_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     *time.Time        `json:"end_date"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

// WorkoutExercise is one performed set. ID is the exercise id.
type WorkoutExercise struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Set           int      `json:"set"`
	Reps          *int     `json:"reps"`
	Weight        *float64 `json:"weight"`
	TimeInSeconds *int     `json:"time_in_seconds"`
	Notes         *string  `json:"notes"`
}

type SetKey struct {
	WorkoutID  int
	ExerciseID int
	Set        int
}

type SetValues struct {
	Reps          *int     `json:"reps"`
	Weight        *float64 `json:"weight"`
	TimeInSeconds *int     `json:"time_in_seconds"`
	Notes         *string  `json:"notes"`
}

type SetUpdate struct {
	Set           *int     `json:"set"`
	Reps          *int     `json:"reps"`
	Weight        *float64 `json:"weight"`
	TimeInSeconds *int     `json:"time_in_seconds"`
	Notes         *string  `json:"notes"`
}

type NewWorkout struct {
	TemplateID  int        `json:"template_id"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
}

type WorkoutUpdate struct {
	Description *string    `json:"description"`
	EndDate     *time.Time `json:"end_date"`
}
