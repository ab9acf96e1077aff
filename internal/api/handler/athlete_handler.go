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

type AthleteHandler struct {
	service service.AthleteService
}

func NewAthleteHandler(service service.AthleteService) *AthleteHandler {
	return &AthleteHandler{service: service}
}

// Create handles POST /v1/athletes
// @Summary Create athlete
// @Description Create an athlete profile. Calibration values (max HR, resting HR, FTP) are optional; omitted values are estimated from activity history.
// @Tags athletes
// @Accept json
// @Produce json
// @Param request body domain.CreateAthleteRequest true "Athlete profile"
// @Success 201 {object} domain.AthleteResponse "Athlete created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes [post]
func (h *AthleteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	athlete, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create athlete").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(athlete.ToResponse())
}

// GetByID handles GET /v1/athletes/{athleteId}
// @Summary Get athlete
// @Description Fetch an athlete profile by ID.
// @Tags athletes
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Success 200 {object} domain.AthleteResponse "Athlete profile"
// @Failure 400 {object} problem.Problem "Invalid athlete ID"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId} [get]
func (h *AthleteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	athlete, err := h.service.GetByID(r.Context(), athleteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch athlete").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(athlete.ToResponse())
}

// Update handles PUT /v1/athletes/{athleteId}
// @Summary Update athlete calibration
// @Description Replace the athlete's timezone and calibration values. Explicit calibration overrides history-based estimation.
// @Tags athletes
// @Accept json
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Param request body domain.CreateAthleteRequest true "New profile values"
// @Success 200 {object} domain.AthleteResponse "Updated athlete"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId} [put]
func (h *AthleteHandler) Update(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	var req domain.CreateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	athlete, err := h.service.UpdateCalibration(r.Context(), athleteID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Athlete not found").Write(w)
			return
		}
		problem.InternalError("Failed to update athlete").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(athlete.ToResponse())
}
