package weightlogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitnessapi/internal/auth"
	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weightlogs_test

type weightLogsRepo interface {
	ListWeightLogs(ctx context.Context, userID int) ([]WeightLog, error)
	GetWeightLog(ctx context.Context, id int) (*WeightLog, error)
	AddWeightLog(ctx context.Context, userID int, weight float64, loggedAt time.Time, notes string) (*WeightLog, error)
	DeleteWeightLog(ctx context.Context, id int) (*WeightLog, error)
}

type Handler struct {
	repo weightLogsRepo
}

func NewHandler(repo weightLogsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	wr := r.PathPrefix("/weight").Subrouter()
	wr.HandleFunc("", handler.HandleList).Methods(http.MethodGet, http.MethodOptions).Name("list-weight-logs")
	wr.HandleFunc("", handler.HandleAdd).Methods(http.MethodPost, http.MethodOptions).Name("new-weight-log")
	wr.HandleFunc("/{id}", handler.HandleDelete).Methods(http.MethodDelete, http.MethodOptions).Name("delete-weight-log")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weightlogs.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	logs, err := handler.repo.ListWeightLogs(ctx, userID)
	if err != nil {
		log.Errorf("list weight logs for user %d: %s", userID, err)
		pkg.WriteJSONError(w, "list weight logs failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, logs, http.StatusOK)
}

type addWeightLogRequest struct {
	Weight   float64    `json:"weight"`
	LoggedAt *time.Time `json:"logged_at"`
	Notes    string     `json:"notes"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weightlogs.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req addWeightLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("add weight log, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid weight log", http.StatusBadRequest)
		return
	}
	if req.Weight <= 0 {
		pkg.WriteJSONError(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	loggedAt := time.Now()
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	wl, err := handler.repo.AddWeightLog(ctx, userID, req.Weight, loggedAt, req.Notes)
	if err != nil {
		log.Errorf("add weight log for user %d: %s", userID, err)
		pkg.WriteJSONError(w, "add weight log failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, wl, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weightlogs.delete")
	defer span.End()

	idParam := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "invalid weight log id ["+idParam+"]", http.StatusBadRequest)
		return
	}

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	wl, err := handler.repo.GetWeightLog(ctx, id)
	if err != nil {
		handler.writeRepoError(w, id, err)
		return
	}
	if wl.UserID != userID {
		pkg.WriteJSONError(w, "forbidden", http.StatusForbidden)
		return
	}

	deleted, err := handler.repo.DeleteWeightLog(ctx, id)
	if err != nil {
		handler.writeRepoError(w, id, err)
		return
	}
	pkg.WriteJSON(w, deleted, http.StatusOK)
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, id int, err error) {
	if errors.Is(err, ErrWeightLogNotFound) {
		pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Errorf("weight log %d: %s", id, err)
	pkg.WriteJSONError(w, "weight log request failed", http.StatusInternalServerError)
}
