package workouts

import (
	"net/http"
	"strconv"

	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"
)

type WorkoutsHandler struct {
	service *Service
}

func NewWorkoutsHandler(service *Service) *WorkoutsHandler {
	return &WorkoutsHandler{
		service: service,
	}
}

func (handler *WorkoutsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	workouts, err := handler.service.ListWorkouts(ctx, userID)
	if err != nil {
		writeServiceError(w, "list workouts", err)
		return
	}
	pkg.WriteJSON(w, workouts, http.StatusOK)
}

// HandleListForTemplate serves the user's latest workouts of a template, ?limit=N.
func (handler *WorkoutsHandler) HandleListForTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list_for_template")
	defer span.End()

	ids, err := pathIDs(r, "templateId")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			pkg.WriteJSONError(w, "invalid limit ["+limitParam+"]", http.StatusBadRequest)
			return
		}
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	workouts, err := handler.service.ListWorkoutsForTemplate(ctx, userID, ids[0], limit)
	if err != nil {
		writeServiceError(w, "list template workouts", err)
		return
	}
	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var newWorkout NewWorkout
	if err := decodeBody(w, r, &newWorkout); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := handler.service.CreateWorkout(ctx, userID, newWorkout)
	if err != nil {
		writeServiceError(w, "create workout", err)
		return
	}
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *WorkoutsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	ids, err := pathIDs(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	workout, err := handler.service.GetWorkout(ctx, userID, ids[0])
	if err != nil {
		writeServiceError(w, "get workout", err)
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	ids, err := pathIDs(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var upd WorkoutUpdate
	if err := decodeBody(w, r, &upd); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := handler.service.UpdateWorkout(ctx, userID, ids[0], upd)
	if err != nil {
		writeServiceError(w, "update workout", err)
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	ids, err := pathIDs(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	workout, err := handler.service.DeleteWorkout(ctx, userID, ids[0])
	if err != nil {
		writeServiceError(w, "delete workout", err)
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

type addSetRequest struct {
	Set int `json:"set"`
	SetValues
}

func (handler *WorkoutsHandler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add_set")
	defer span.End()

	ids, err := pathIDs(r, "id", "exerciseId")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addSetRequest
	if err := decodeBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	set, err := handler.service.AddSet(ctx, userID, SetKey{
		WorkoutID:  ids[0],
		ExerciseID: ids[1],
		Set:        req.Set,
	}, req.SetValues)
	if err != nil {
		writeServiceError(w, "add set", err)
		return
	}
	pkg.WriteJSON(w, set, http.StatusCreated)
}

func (handler *WorkoutsHandler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update_set")
	defer span.End()

	ids, err := pathIDs(r, "id", "exerciseId", "set")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var upd SetUpdate
	if err := decodeBody(w, r, &upd); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	set, err := handler.service.UpdateSet(ctx, userID, SetKey{
		WorkoutID:  ids[0],
		ExerciseID: ids[1],
		Set:        ids[2],
	}, upd)
	if err != nil {
		writeServiceError(w, "update set", err)
		return
	}
	pkg.WriteJSON(w, set, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete_set")
	defer span.End()

	ids, err := pathIDs(r, "id", "exerciseId", "set")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	set, err := handler.service.DeleteSet(ctx, userID, SetKey{
		WorkoutID:  ids[0],
		ExerciseID: ids[1],
		Set:        ids[2],
	})
	if err != nil {
		writeServiceError(w, "delete set", err)
		return
	}
	pkg.WriteJSON(w, set, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete_exercise")
	defer span.End()

	ids, err := pathIDs(r, "id", "exerciseId")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sets, err := handler.service.DeleteExerciseSets(ctx, userID, ids[0], ids[1])
	if err != nil {
		writeServiceError(w, "delete workout exercise", err)
		return
	}
	pkg.WriteJSON(w, sets, http.StatusOK)
}
