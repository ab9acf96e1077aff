package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/service"
	"github.com/karltiama/endurorevamp-sub001/pkg/problem"
)

type TrainingLoadHandler struct {
	service service.TrainingLoadService
}

func NewTrainingLoadHandler(service service.TrainingLoadService) *TrainingLoadHandler {
	return &TrainingLoadHandler{service: service}
}

// Get handles GET /v1/athletes/{athleteId}/training-load
// @Summary Get training load
// @Description Compute the daily load series, rolling acute/chronic metrics and resolved thresholds over the requested window. Always recomputed fresh.
// @Tags training-load
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param days query integer false "History window in days (1-365)" default(90)
// @Success 200 {object} domain.TrainingLoadResponse "Load series and metrics"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/training-load [get]
func (h *TrainingLoadHandler) Get(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	windowDays := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "days", Message: "must be a positive integer"},
			}).Write(w)
			return
		}
		windowDays = days
	}

	response, err := h.service.Compute(r.Context(), athleteID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute training load").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
