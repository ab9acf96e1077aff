package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/llm"
)

func TestCoachHandler_Summarize(t *testing.T) {
	athleteID := uuid.New()

	tests := []struct {
		name           string
		athleteID      string
		mockService    *MockCoachService
		wantStatusCode int
	}{
		{
			name:           "summary returns 200",
			athleteID:      athleteID.String(),
			mockService:    &MockCoachService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid athlete UUID returns 400",
			athleteID:      "not-a-uuid",
			mockService:    &MockCoachService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "unknown athlete returns 404",
			athleteID: athleteID.String(),
			mockService: &MockCoachService{
				summarizeFunc: func(ctx context.Context, aid uuid.UUID) (*domain.CoachSummary, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:      "unconfigured LLM returns 503",
			athleteID: athleteID.String(),
			mockService: &MockCoachService{
				summarizeFunc: func(ctx context.Context, aid uuid.UUID) (*domain.CoachSummary, error) {
					return nil, llm.ErrOpenAIUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:      "LLM failure returns 500",
			athleteID: athleteID.String(),
			mockService: &MockCoachService{
				summarizeFunc: func(ctx context.Context, aid uuid.UUID) (*domain.CoachSummary, error) {
					return nil, errors.New("upstream timeout")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCoachHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost,
				"/v1/athletes/"+tt.athleteID+"/coach/summary", nil)
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("athleteId", tt.athleteID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.Summarize(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Summarize() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCoachHandler_Summarize_ResponseBody(t *testing.T) {
	athleteID := uuid.New()
	handler := NewCoachHandler(&MockCoachService{
		summarizeFunc: func(ctx context.Context, aid uuid.UUID) (*domain.CoachSummary, error) {
			return &domain.CoachSummary{
				Summary:      "You are absorbing training well.",
				Observations: []string{"Acute load sits just below chronic."},
				Guidance:     []string{"Schedule one threshold session."},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost,
		"/v1/athletes/"+athleteID.String()+"/coach/summary", nil)
	rec := httptest.NewRecorder()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("athleteId", athleteID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	handler.Summarize(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Summarize() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var summary domain.CoachSummary
	if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if summary.Summary == "" {
		t.Error("expected a non-empty summary")
	}
	if len(summary.Observations) != 1 || len(summary.Guidance) != 1 {
		t.Errorf("Observations = %d, Guidance = %d, want 1 and 1", len(summary.Observations), len(summary.Guidance))
	}
}
