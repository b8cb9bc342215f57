package weightlogs

import (
	"errors"
	"time"
)

var ErrWeightLogNotFound = errors.New("weight log not found")

type WeightLog struct {
	ID       int       `json:"id"`
	UserID   int       `json:"user_id"`
	Weight   float64   `json:"weight"`
	LoggedAt time.Time `json:"logged_at"`
	Notes    string    `json:"notes"`
}
