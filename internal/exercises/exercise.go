package exercises

import "errors"

var ErrExerciseNotFound = errors.New("exercise not found")

// Exercise is an entry of the reference catalog templates and workouts point to.
type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsCommon    bool   `json:"is_common"`
}
