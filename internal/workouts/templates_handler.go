package workouts

import (
	"net/http"

	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"
)

type TemplatesHandler struct {
	service *Service
}

func NewTemplatesHandler(service *Service) *TemplatesHandler {
	return &TemplatesHandler{
		service: service,
	}
}

func (handler *TemplatesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.list")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	templates, err := handler.service.ListTemplates(ctx, userID)
	if err != nil {
		writeServiceError(w, "list templates", err)
		return
	}
	pkg.WriteJSON(w, templates, http.StatusOK)
}

func (handler *TemplatesHandler) HandleListCommon(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.list_common")
	defer span.End()

	if _, ok := requireUser(w, r); !ok {
		return
	}

	templates, err := handler.service.ListCommonTemplates(ctx)
	if err != nil {
		writeServiceError(w, "list common templates", err)
		return
	}
	pkg.WriteJSON(w, templates, http.StatusOK)
}

func (handler *TemplatesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.create")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var newTpl NewTemplate
	if err := decodeBody(w, r, &newTpl); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tpl, err := handler.service.CreateTemplate(ctx, userID, newTpl)
	if err != nil {
		writeServiceError(w, "create template", err)
		return
	}
	pkg.WriteJSON(w, tpl, http.StatusCreated)
}

func (handler *TemplatesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.get")
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

	tpl, err := handler.service.GetTemplate(ctx, userID, ids[0])
	if err != nil {
		writeServiceError(w, "get template", err)
		return
	}
	pkg.WriteJSON(w, tpl, http.StatusOK)
}

func (handler *TemplatesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.update")
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

	var upd TemplateUpdate
	if err := decodeBody(w, r, &upd); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tpl, err := handler.service.UpdateTemplate(ctx, userID, ids[0], upd)
	if err != nil {
		writeServiceError(w, "update template", err)
		return
	}
	pkg.WriteJSON(w, tpl, http.StatusOK)
}

func (handler *TemplatesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.delete")
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

	tpl, err := handler.service.DeleteTemplate(ctx, userID, ids[0])
	if err != nil {
		writeServiceError(w, "delete template", err)
		return
	}
	pkg.WriteJSON(w, tpl, http.StatusOK)
}

type addTemplateExerciseRequest struct {
	Order int `json:"order"`
	Sets  int `json:"sets"`
}

func (handler *TemplatesHandler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.add_exercise")
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

	var req addTemplateExerciseRequest
	if err := decodeBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	te, err := handler.service.AddTemplateExercise(ctx, userID, TemplateExerciseKey{
		TemplateID: ids[0],
		ExerciseID: ids[1],
		Order:      req.Order,
	}, req.Sets)
	if err != nil {
		writeServiceError(w, "add template exercise", err)
		return
	}
	pkg.WriteJSON(w, te, http.StatusCreated)
}

func (handler *TemplatesHandler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.update_exercise")
	defer span.End()

	ids, err := pathIDs(r, "id", "exerciseId", "order")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var upd TemplateExerciseUpdate
	if err := decodeBody(w, r, &upd); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	te, err := handler.service.UpdateTemplateExercise(ctx, userID, TemplateExerciseKey{
		TemplateID: ids[0],
		ExerciseID: ids[1],
		Order:      ids[2],
	}, upd)
	if err != nil {
		writeServiceError(w, "update template exercise", err)
		return
	}
	pkg.WriteJSON(w, te, http.StatusOK)
}

func (handler *TemplatesHandler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.delete_exercise")
	defer span.End()

	ids, err := pathIDs(r, "id", "exerciseId", "order")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	te, err := handler.service.DeleteTemplateExercise(ctx, userID, TemplateExerciseKey{
		TemplateID: ids[0],
		ExerciseID: ids[1],
		Order:      ids[2],
	})
	if err != nil {
		writeServiceError(w, "delete template exercise", err)
		return
	}
	pkg.WriteJSON(w, te, http.StatusOK)
}
