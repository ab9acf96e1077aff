package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/api/validation"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/service"
	"github.com/karltiama/endurorevamp-sub001/pkg/problem"
)

type GoalHandler struct {
	service service.GoalService
}

func NewGoalHandler(service service.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

// Upsert handles PUT /v1/athletes/{athleteId}/goals
// @Summary Set goal
// @Description Create or replace the athlete's goal of the given type. One goal per type (distance, pace, frequency).
// @Tags goals
// @Accept json
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param request body domain.UpsertGoalRequest true "Goal definition"
// @Success 200 {object} domain.Goal "Goal stored"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/goals [put]
func (h *GoalHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	var req domain.UpsertGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	goal, err := h.service.Upsert(r.Context(), athleteID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to store goal").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}

// List handles GET /v1/athletes/{athleteId}/goals
// @Summary List goals
// @Description Fetch all goals for the athlete, active and inactive.
// @Tags goals
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Success 200 {array} domain.Goal "Goals"
// @Failure 400 {object} problem.Problem "Invalid athlete ID"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/goals [get]
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	goals, err := h.service.List(r.Context(), athleteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to list goals").Write(w)
		return
	}

	if goals == nil {
		goals = []domain.Goal{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goals)
}

// Delete handles DELETE /v1/athletes/{athleteId}/goals/{goalType}
// @Summary Delete goal
// @Description Remove the athlete's goal of the given type.
// @Tags goals
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param goalType path string true "Goal type" Enums(distance, pace, frequency)
// @Success 204 "Goal deleted"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "Goal not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/goals/{goalType} [delete]
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	goalType := domain.GoalType(chi.URLParam(r, "goalType"))
	switch goalType {
	case domain.GoalDistance, domain.GoalPace, domain.GoalFrequency:
	default:
		problem.BadRequest("Invalid goal type").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), athleteID, goalType); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Goal not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete goal").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
