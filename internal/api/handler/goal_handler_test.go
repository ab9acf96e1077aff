package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

func TestGoalHandler_Upsert(t *testing.T) {
	athleteID := uuid.New()

	tests := []struct {
		name           string
		athleteID      string
		body           string
		mockService    *MockGoalService
		wantStatusCode int
	}{
		{
			name:           "valid goal returns 200",
			athleteID:      athleteID.String(),
			body:           `{"type": "distance", "target": 40, "current": 18.5}`,
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid athlete UUID returns 400",
			athleteID:      "not-a-uuid",
			body:           `{"type": "distance", "target": 40}`,
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON returns 400",
			athleteID:      athleteID.String(),
			body:           `{broken`,
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown goal type returns 422",
			athleteID:      athleteID.String(),
			body:           `{"type": "elevation", "target": 1000}`,
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "zero target returns 422",
			athleteID:      athleteID.String(),
			body:           `{"type": "frequency", "target": 0}`,
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "unknown athlete returns 404",
			athleteID: athleteID.String(),
			body:      `{"type": "pace", "target": 5}`,
			mockService: &MockGoalService{
				upsertFunc: func(ctx context.Context, aid uuid.UUID, req *domain.UpsertGoalRequest) (*domain.Goal, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:      "service error returns 500",
			athleteID: athleteID.String(),
			body:      `{"type": "pace", "target": 5}`,
			mockService: &MockGoalService{
				upsertFunc: func(ctx context.Context, aid uuid.UUID, req *domain.UpsertGoalRequest) (*domain.Goal, error) {
					return nil, errors.New("database error")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewGoalHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPut, "/v1/athletes/"+tt.athleteID+"/goals", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("athleteId", tt.athleteID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.Upsert(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Upsert() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestGoalHandler_List(t *testing.T) {
	athleteID := uuid.New()

	tests := []struct {
		name           string
		athleteID      string
		mockService    *MockGoalService
		wantStatusCode int
		wantBody       string
	}{
		{
			name:      "goals returned as array",
			athleteID: athleteID.String(),
			mockService: &MockGoalService{
				listFunc: func(ctx context.Context, aid uuid.UUID) ([]domain.Goal, error) {
					return []domain.Goal{
						{ID: uuid.New(), AthleteID: aid, Type: domain.GoalDistance, Target: 40, Current: 20, Active: true},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "nil slice becomes empty array",
			athleteID: athleteID.String(),
			mockService: &MockGoalService{
				listFunc: func(ctx context.Context, aid uuid.UUID) ([]domain.Goal, error) {
					return nil, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantBody:       "[]",
		},
		{
			name:           "invalid athlete UUID returns 400",
			athleteID:      "nope",
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "unknown athlete returns 404",
			athleteID: athleteID.String(),
			mockService: &MockGoalService{
				listFunc: func(ctx context.Context, aid uuid.UUID) ([]domain.Goal, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewGoalHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/athletes/"+tt.athleteID+"/goals", nil)
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("athleteId", tt.athleteID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantBody != "" {
				var goals []domain.Goal
				if err := json.NewDecoder(rec.Body).Decode(&goals); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if goals == nil || len(goals) != 0 {
					t.Errorf("expected empty array, got %v", goals)
				}
			}
		})
	}
}

func TestGoalHandler_Delete(t *testing.T) {
	athleteID := uuid.New()

	tests := []struct {
		name           string
		athleteID      string
		goalType       string
		mockService    *MockGoalService
		wantStatusCode int
	}{
		{
			name:           "existing goal returns 204",
			athleteID:      athleteID.String(),
			goalType:       "distance",
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:           "unknown goal type returns 400",
			athleteID:      athleteID.String(),
			goalType:       "elevation",
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid athlete UUID returns 400",
			athleteID:      "nope",
			goalType:       "distance",
			mockService:    &MockGoalService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "missing goal returns 404",
			athleteID: athleteID.String(),
			goalType:  "pace",
			mockService: &MockGoalService{
				deleteFunc: func(ctx context.Context, aid uuid.UUID, goalType domain.GoalType) error {
					return domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewGoalHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodDelete, "/v1/athletes/"+tt.athleteID+"/goals/"+tt.goalType, nil)
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("athleteId", tt.athleteID)
			rctx.URLParams.Add("goalType", tt.goalType)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.Delete(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Delete() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
