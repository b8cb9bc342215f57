package exercises

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := handler.catalog.List(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		pkg.WriteJSONError(w, "list exercises failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	idParam := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "invalid exercise id ["+idParam+"]", http.StatusBadRequest)
		return
	}

	exercise, err := handler.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %d: %s", id, err)
		pkg.WriteJSONError(w, "get exercise failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func SetupRoutes(r *mux.Router, handler *Handler) {
	er := r.PathPrefix("/exercises").Subrouter()
	er.HandleFunc("", handler.HandleList).Methods(http.MethodGet, http.MethodOptions).Name("list-exercises")
	er.HandleFunc("/{id}", handler.HandleGet).Methods(http.MethodGet, http.MethodOptions).Name("get-exercise")
}
