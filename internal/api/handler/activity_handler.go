package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/api/validation"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/service"
	"github.com/karltiama/endurorevamp-sub001/pkg/problem"
)

type ActivityHandler struct {
	service service.ActivityService
}

func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Create handles POST /v1/athletes/{athleteId}/activities
// @Summary Record activity
// @Description Record a completed training session. Heart rate, power and perceived exertion are optional; load calculation degrades gracefully without them.
// @Tags activities
// @Accept json
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param request body domain.CreateActivityRequest true "Activity data"
// @Success 201 {object} domain.Activity "Activity recorded"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/activities [post]
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	var req domain.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	activity, err := h.service.Create(r.Context(), athleteID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to record activity").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(activity)
}

// List handles GET /v1/athletes/{athleteId}/activities
// @Summary List activities
// @Description Fetch paginated activity history, newest first. Filter by date range.
// @Tags activities
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param from query string false "Start of date range (RFC3339)" format(date-time)
// @Param to query string false "End of date range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ActivityListResponse "Activities with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/activities [get]
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	filter, fieldErrors := parseActivityFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), athleteID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to list activities").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Delete handles DELETE /v1/athletes/{athleteId}/activities/{activityId}
// @Summary Delete activity
// @Description Remove a recorded activity. Load metrics reflect the removal on the next calculation.
// @Tags activities
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param activityId path string true "Activity UUID" format(uuid)
// @Success 204 "Activity deleted"
// @Failure 400 {object} problem.Problem "Invalid ID format"
// @Failure 404 {object} problem.Problem "Activity not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/activities/{activityId} [delete]
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}
	activityID, err := uuid.Parse(chi.URLParam(r, "activityId"))
	if err != nil {
		problem.BadRequest("Invalid activity ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), athleteID, activityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Activity not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete activity").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseActivityFilter(r *http.Request) (domain.ActivityFilter, []problem.FieldError) {
	var filter domain.ActivityFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
