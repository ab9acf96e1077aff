package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/api/validation"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/service"
	"github.com/karltiama/endurorevamp-sub001/pkg/problem"
)

type WorkoutHandler struct {
	service service.WorkoutService
}

func NewWorkoutHandler(service service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// Today handles POST /v1/athletes/{athleteId}/workouts/today
// @Summary Today's workout
// @Description Recommend a single session for today from current load state, goals and the weekly pattern. Optional weather conditions adjust the result.
// @Tags workouts
// @Accept json
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param request body domain.TodaysWorkoutRequest false "Optional weather snapshot"
// @Success 200 {object} domain.WorkoutRecommendation "Recommended session"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/workouts/today [post]
func (h *WorkoutHandler) Today(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	var req domain.TodaysWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	rec, err := h.service.Today(r.Context(), athleteID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to build recommendation").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// GeneratePlan handles POST /v1/athletes/{athleteId}/plans
// @Summary Generate weekly plan
// @Description Generate and persist a 7-day plan from current load state. Replaces any existing plan for the same week.
// @Tags plans
// @Accept json
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param request body domain.GeneratePlanRequest false "Optional weather and preference overrides"
// @Success 201 {object} domain.WeeklyWorkoutPlan "Generated plan"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/plans [post]
func (h *WorkoutHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	var req domain.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	plan, err := h.service.GeneratePlan(r.Context(), athleteID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to generate plan").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(plan)
}

// CurrentPlan handles GET /v1/athletes/{athleteId}/plans/current
// @Summary Current plan
// @Description Fetch the athlete's most recent weekly plan.
// @Tags plans
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Success 200 {object} domain.WeeklyWorkoutPlan "Current plan"
// @Failure 400 {object} problem.Problem "Invalid athlete ID"
// @Failure 404 {object} problem.Problem "No plan exists"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/plans/current [get]
func (h *WorkoutHandler) CurrentPlan(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	plan, err := h.service.CurrentPlan(r.Context(), athleteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No plan found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch plan").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// UpdatePlanDay handles PUT /v1/athletes/{athleteId}/plans/{planId}/days/{day}
// @Summary Edit plan day
// @Description Set or clear one day of a weekly plan. Omitting the workout marks the day as rest. Totals are recomputed in full.
// @Tags plans
// @Accept json
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param planId path string true "Plan UUID" format(uuid)
// @Param day path integer true "Day of week (0=Sunday .. 6=Saturday)" minimum(0) maximum(6)
// @Param request body domain.UpdatePlanDayRequest false "Workout to place on the day"
// @Success 200 {object} domain.WeeklyWorkoutPlan "Updated plan"
// @Failure 400 {object} problem.Problem "Invalid parameters or day out of range"
// @Failure 404 {object} problem.Problem "Plan not found"
// @Failure 409 {object} problem.Problem "Plan is locked for editing"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/plans/{planId}/days/{day} [put]
func (h *WorkoutHandler) UpdatePlanDay(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}
	planID, err := uuid.Parse(chi.URLParam(r, "planId"))
	if err != nil {
		problem.BadRequest("Invalid plan ID format").Write(w)
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		problem.BadRequest("Invalid day").Write(w)
		return
	}

	var req domain.UpdatePlanDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	plan, err := h.service.UpdatePlanDay(r.Context(), athleteID, planID, day, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Plan not found").Write(w)
		case errors.Is(err, domain.ErrInvalidDay):
			problem.BadRequest("Day must be between 0 (Sunday) and 6 (Saturday)").Write(w)
		case errors.Is(err, domain.ErrPlanLocked):
			problem.Conflict("Plan is locked for editing").Write(w)
		default:
			problem.InternalError("Failed to update plan").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// ResetPlan handles POST /v1/athletes/{athleteId}/plans/reset
// @Summary Reset plan
// @Description Discard edits and regenerate the plan from current load state. Never fails outright: when planning inputs are unavailable a starter plan is installed.
// @Tags plans
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Success 200 {object} domain.WeeklyWorkoutPlan "Regenerated plan"
// @Failure 400 {object} problem.Problem "Invalid athlete ID"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/plans/reset [post]
func (h *WorkoutHandler) ResetPlan(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	plan, err := h.service.ResetPlan(r.Context(), athleteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to reset plan").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}
