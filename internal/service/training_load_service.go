package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/load"
	"github.com/karltiama/endurorevamp-sub001/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultLoadWindowDays is the default history window for load calculation.
	DefaultLoadWindowDays = 90

	// MaxLoadWindowDays caps the requested window.
	MaxLoadWindowDays = 365
)

// TrainingLoadService computes the daily load series and rolling metrics
// from an athlete's activity history. Everything is recomputed fresh on
// every call; nothing load-derived is persisted.
type TrainingLoadService interface {
	Compute(ctx context.Context, athleteID uuid.UUID, windowDays int) (*domain.TrainingLoadResponse, error)
	// ComputeMetrics returns only the rolling metrics, used by planning.
	ComputeMetrics(ctx context.Context, athleteID uuid.UUID) (domain.TrainingLoadMetrics, domain.AthleteThresholds, error)
}

type trainingLoadService struct {
	activityRepo repository.ActivityRepository
	athleteRepo  repository.AthleteRepository
}

// NewTrainingLoadService creates a new TrainingLoadService.
func NewTrainingLoadService(activityRepo repository.ActivityRepository, athleteRepo repository.AthleteRepository) TrainingLoadService {
	return &trainingLoadService{
		activityRepo: activityRepo,
		athleteRepo:  athleteRepo,
	}
}

func (s *trainingLoadService) Compute(ctx context.Context, athleteID uuid.UUID, windowDays int) (*domain.TrainingLoadResponse, error) {
	tracer := otel.Tracer("endurorevamp-api/load")
	ctx, span := tracer.Start(ctx, "TrainingLoadService.Compute",
		trace.WithAttributes(
			attribute.String("athlete.id", athleteID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	if windowDays <= 0 {
		windowDays = DefaultLoadWindowDays
	}
	if windowDays > MaxLoadWindowDays {
		windowDays = MaxLoadWindowDays
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -windowDays)

	inputPayload := map[string]any{
		"athlete_id":  athleteID.String(),
		"since":       since.Format(time.RFC3339),
		"window_days": windowDays,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	activities, err := s.activityRepo.ListSince(ctx, athleteID, since)
	if err != nil {
		return nil, err
	}

	thresholds := load.ResolveThresholds(athlete, activities)
	points := load.ProcessActivities(activities, thresholds)
	metrics := load.Metrics(points)

	span.SetAttributes(
		attribute.Int("load.activities", len(activities)),
		attribute.Int("load.points", len(points)),
		attribute.String("load.status", string(metrics.Status)),
	)

	response := &domain.TrainingLoadResponse{
		Points:     points,
		Metrics:    metrics,
		Thresholds: thresholds,
		WindowDays: windowDays,
	}

	if outputJSON, err := json.Marshal(metrics); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}

func (s *trainingLoadService) ComputeMetrics(ctx context.Context, athleteID uuid.UUID) (domain.TrainingLoadMetrics, domain.AthleteThresholds, error) {
	response, err := s.Compute(ctx, athleteID, DefaultLoadWindowDays)
	if err != nil {
		return domain.TrainingLoadMetrics{}, domain.AthleteThresholds{}, err
	}
	return response.Metrics, response.Thresholds, nil
}
