package workouts

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// workoutIDPath keeps /workouts/{id} routes from claiming the static
// /workouts/templates and /workouts/all paths, so a wrong method on those
// ends up as 405 instead of an invalid workout id.
func workoutIDPath(r *http.Request, _ *mux.RouteMatch) bool {
	first, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/workouts/"), "/")
	return first != "templates" && first != "all"
}

// SetupRoutes registers the template and workout routes. Static segments are
// registered before the {id} ones so that gorilla/mux matches them first.
func SetupRoutes(r *mux.Router, templatesHandler *TemplatesHandler, workoutsHandler *WorkoutsHandler) {
	tr := r.PathPrefix("/workouts/templates").Subrouter()
	tr.HandleFunc("", templatesHandler.HandleList).Methods(http.MethodGet, http.MethodOptions).Name("list-templates")
	tr.HandleFunc("", templatesHandler.HandleCreate).Methods(http.MethodPost, http.MethodOptions).Name("new-template")
	tr.HandleFunc("/common", templatesHandler.HandleListCommon).Methods(http.MethodGet, http.MethodOptions).Name("list-common-templates")
	tr.HandleFunc("/{id}", templatesHandler.HandleGet).Methods(http.MethodGet, http.MethodOptions).Name("get-template")
	tr.HandleFunc("/{id}", templatesHandler.HandleUpdate).Methods(http.MethodPut, http.MethodOptions).Name("update-template")
	tr.HandleFunc("/{id}", templatesHandler.HandleDelete).Methods(http.MethodDelete, http.MethodOptions).Name("delete-template")
	tr.HandleFunc("/{id}/exercises/{exerciseId}", templatesHandler.HandleAddExercise).Methods(http.MethodPost, http.MethodOptions).Name("add-template-exercise")
	tr.HandleFunc("/{id}/exercises/{exerciseId}/{order}", templatesHandler.HandleUpdateExercise).Methods(http.MethodPut, http.MethodOptions).Name("update-template-exercise")
	tr.HandleFunc("/{id}/exercises/{exerciseId}/{order}", templatesHandler.HandleDeleteExercise).Methods(http.MethodDelete, http.MethodOptions).Name("delete-template-exercise")

	wr := r.PathPrefix("/workouts").Subrouter()
	wr.HandleFunc("", workoutsHandler.HandleList).Methods(http.MethodGet, http.MethodOptions).Name("list-workouts")
	wr.HandleFunc("", workoutsHandler.HandleCreate).Methods(http.MethodPost, http.MethodOptions).Name("new-workout")
	wr.HandleFunc("/all/{templateId}", workoutsHandler.HandleListForTemplate).Methods(http.MethodGet, http.MethodOptions).Name("list-template-workouts")
	wr.HandleFunc("/{id}", workoutsHandler.HandleGet).Methods(http.MethodGet, http.MethodOptions).MatcherFunc(workoutIDPath).Name("get-workout")
	wr.HandleFunc("/{id}", workoutsHandler.HandleUpdate).Methods(http.MethodPut, http.MethodOptions).MatcherFunc(workoutIDPath).Name("update-workout")
	wr.HandleFunc("/{id}", workoutsHandler.HandleDelete).Methods(http.MethodDelete, http.MethodOptions).MatcherFunc(workoutIDPath).Name("delete-workout")
	wr.HandleFunc("/{id}/exercises/{exerciseId}", workoutsHandler.HandleAddSet).Methods(http.MethodPost, http.MethodOptions).MatcherFunc(workoutIDPath).Name("add-set")
	wr.HandleFunc("/{id}/exercises/{exerciseId}", workoutsHandler.HandleDeleteExercise).Methods(http.MethodDelete, http.MethodOptions).MatcherFunc(workoutIDPath).Name("delete-workout-exercise")
	wr.HandleFunc("/{id}/exercises/{exerciseId}/{set}", workoutsHandler.HandleUpdateSet).Methods(http.MethodPut, http.MethodOptions).MatcherFunc(workoutIDPath).Name("update-set")
	wr.HandleFunc("/{id}/exercises/{exerciseId}/{set}", workoutsHandler.HandleDeleteSet).Methods(http.MethodDelete, http.MethodOptions).MatcherFunc(workoutIDPath).Name("delete-set")
}
