package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/llm"
	"github.com/karltiama/endurorevamp-sub001/internal/service"
	"github.com/karltiama/endurorevamp-sub001/pkg/problem"
)

type CoachHandler struct {
	service service.CoachService
}

func NewCoachHandler(service service.CoachService) *CoachHandler {
	return &CoachHandler{service: service}
}

// Summarize handles POST /v1/athletes/{athleteId}/coach/summary
// @Summary Coach summary
// @Description Generate an LLM-written plain-language summary of the athlete's current training state, goals and plan. Requires an OpenAI API key to be configured.
// @Tags coach
// @Produce json
// @Param athleteId path string true "Athlete UUID" format(uuid)
// @Success 200 {object} domain.CoachSummary "Generated summary"
// @Failure 400 {object} problem.Problem "Invalid athlete ID"
// @Failure 404 {object} problem.Problem "Athlete not found"
// @Failure 503 {object} problem.Problem "LLM not configured or unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /athletes/{athleteId}/coach/summary [post]
func (h *CoachHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(chi.URLParam(r, "athleteId"))
	if err != nil {
		problem.BadRequest("Invalid athlete ID format").Write(w)
		return
	}

	summary, err := h.service.Summarize(r.Context(), athleteID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Athlete not found").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.New(http.StatusServiceUnavailable, "llm-unavailable", "Service Unavailable",
				"Coach summaries are not configured on this deployment").Write(w)
		default:
			problem.InternalError("Failed to generate summary").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
