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

func TestAthleteHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockAthleteService
		wantStatusCode int
	}{
		{
			name:           "valid request returns 201",
			body:           `{"timezone": "Europe/Amsterdam", "max_heart_rate": 185, "ftp": 250}`,
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid JSON returns 400",
			body:           `{invalid`,
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing timezone returns 422",
			body:           `{"max_heart_rate": 185}`,
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown timezone returns 422",
			body:           `{"timezone": "Mars/Olympus_Mons"}`,
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "max heart rate out of range returns 422",
			body:           `{"timezone": "UTC", "max_heart_rate": 400}`,
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "service error returns 500",
			body: `{"timezone": "UTC"}`,
			mockService: &MockAthleteService{
				createFunc: func(ctx context.Context, req *domain.CreateAthleteRequest) (*domain.Athlete, error) {
					return nil, errors.New("database error")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAthleteHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/athletes", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAthleteHandler_GetByID(t *testing.T) {
	athleteID := uuid.New()

	tests := []struct {
		name           string
		athleteID      string
		mockService    *MockAthleteService
		wantStatusCode int
	}{
		{
			name:           "existing athlete returns 200",
			athleteID:      athleteID.String(),
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid UUID returns 400",
			athleteID:      "not-a-uuid",
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "unknown athlete returns 404",
			athleteID: athleteID.String(),
			mockService: &MockAthleteService{
				getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAthleteHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/athletes/"+tt.athleteID, nil)
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("athleteId", tt.athleteID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.GetByID(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetByID() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAthleteHandler_Update(t *testing.T) {
	athleteID := uuid.New()

	tests := []struct {
		name           string
		athleteID      string
		body           string
		mockService    *MockAthleteService
		wantStatusCode int
	}{
		{
			name:           "valid update returns 200",
			athleteID:      athleteID.String(),
			body:           `{"timezone": "America/Toronto", "ftp": 260}`,
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid UUID returns 400",
			athleteID:      "nope",
			body:           `{"timezone": "UTC"}`,
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "validation failure returns 422",
			athleteID:      athleteID.String(),
			body:           `{"timezone": "UTC", "resting_heart_rate": 5}`,
			mockService:    &MockAthleteService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "unknown athlete returns 404",
			athleteID: athleteID.String(),
			body:      `{"timezone": "UTC"}`,
			mockService: &MockAthleteService{
				updateFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateAthleteRequest) (*domain.Athlete, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAthleteHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPut, "/v1/athletes/"+tt.athleteID, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("athleteId", tt.athleteID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.Update(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Update() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAthleteHandler_Create_ResponseBody(t *testing.T) {
	handler := NewAthleteHandler(&MockAthleteService{})

	body := `{"timezone": "Europe/Amsterdam", "max_heart_rate": 185}`
	req := httptest.NewRequest(http.MethodPost, "/v1/athletes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Create() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.AthleteResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID == uuid.Nil {
		t.Error("expected a generated athlete ID")
	}
	if resp.Timezone != "Europe/Amsterdam" {
		t.Errorf("Timezone = %q, want Europe/Amsterdam", resp.Timezone)
	}
	if resp.MaxHeartRate == nil || *resp.MaxHeartRate != 185 {
		t.Errorf("MaxHeartRate = %v, want 185", resp.MaxHeartRate)
	}
}
