package workouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitnessapi/internal/auth"
	"github.com/2beens/fitnessapi/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

// pathIDs reads the named positive integer path params, in order.
func pathIDs(r *http.Request, names ...string) ([]int, error) {
	vars := mux.Vars(r)
	ids := make([]int, 0, len(names))
	for _, name := range names {
		id, err := strconv.Atoi(vars[name])
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid %s [%s]", name, vars[name])
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// requireUser writes 401 and returns false when the request has no session user.
func requireUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrTemplateNotFound),
		errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrTemplateExerciseNotFound),
		errors.Is(err, ErrSetNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrTemplateInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, op+" failed", status)
		return
	}

	log.Debugf("%s: %s", op, err)
	pkg.WriteJSONError(w, err.Error(), status)
}
