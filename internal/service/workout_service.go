package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/load"
	"github.com/karltiama/endurorevamp-sub001/internal/planner"
	"github.com/karltiama/endurorevamp-sub001/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RecentSessionCount is how many recent sessions inform the recovery gate.
const RecentSessionCount = 10

// WorkoutService produces single-day recommendations and manages the
// persisted weekly plan.
type WorkoutService interface {
	Today(ctx context.Context, athleteID uuid.UUID, req *domain.TodaysWorkoutRequest) (*domain.WorkoutRecommendation, error)
	GeneratePlan(ctx context.Context, athleteID uuid.UUID, req *domain.GeneratePlanRequest) (*domain.WeeklyWorkoutPlan, error)
	CurrentPlan(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error)
	UpdatePlanDay(ctx context.Context, athleteID, planID uuid.UUID, day int, req *domain.UpdatePlanDayRequest) (*domain.WeeklyWorkoutPlan, error)
	ResetPlan(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error)
}

type workoutService struct {
	loadService  TrainingLoadService
	activityRepo repository.ActivityRepository
	athleteRepo  repository.AthleteRepository
	goalRepo     repository.GoalRepository
	planRepo     repository.PlanRepository
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(
	loadService TrainingLoadService,
	activityRepo repository.ActivityRepository,
	athleteRepo repository.AthleteRepository,
	goalRepo repository.GoalRepository,
	planRepo repository.PlanRepository,
) WorkoutService {
	return &workoutService{
		loadService:  loadService,
		activityRepo: activityRepo,
		athleteRepo:  athleteRepo,
		goalRepo:     goalRepo,
		planRepo:     planRepo,
	}
}

func (s *workoutService) Today(ctx context.Context, athleteID uuid.UUID, req *domain.TodaysWorkoutRequest) (*domain.WorkoutRecommendation, error) {
	tracer := otel.Tracer("endurorevamp-api/planner")
	ctx, span := tracer.Start(ctx, "WorkoutService.Today",
		trace.WithAttributes(attribute.String("athlete.id", athleteID.String())),
	)
	defer span.End()

	planningCtx, err := s.buildPlanningContext(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if req != nil && req.Weather != nil {
		planningCtx.Prefs.Weather = req.Weather
	}

	rec := planner.TodaysWorkout(planningCtx)
	if rec != nil {
		span.SetAttributes(
			attribute.String("workout.type", string(rec.Type)),
			attribute.Int("workout.intensity", rec.Intensity),
		)
	}
	return rec, nil
}

func (s *workoutService) GeneratePlan(ctx context.Context, athleteID uuid.UUID, req *domain.GeneratePlanRequest) (*domain.WeeklyWorkoutPlan, error) {
	tracer := otel.Tracer("endurorevamp-api/planner")
	ctx, span := tracer.Start(ctx, "WorkoutService.GeneratePlan",
		trace.WithAttributes(attribute.String("athlete.id", athleteID.String())),
	)
	defer span.End()

	planningCtx, err := s.buildPlanningContext(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if req != nil {
		if req.Prefs != nil {
			planningCtx.Prefs = *req.Prefs
		}
		if req.Weather != nil {
			planningCtx.Prefs.Weather = req.Weather
		}
	}

	plan := planner.WeeklyPlan(planningCtx)
	plan.AthleteID = athleteID

	if err := s.planRepo.Save(ctx, &plan); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("plan.phase", string(plan.Phase)),
		attribute.Int("plan.total_tss", plan.TotalTSS),
	)
	return &plan, nil
}

func (s *workoutService) CurrentPlan(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error) {
	exists, err := s.athleteRepo.Exists(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.planRepo.GetLatest(ctx, athleteID)
}

func (s *workoutService) UpdatePlanDay(ctx context.Context, athleteID, planID uuid.UUID, day int, req *domain.UpdatePlanDayRequest) (*domain.WeeklyWorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.AthleteID != athleteID {
		return nil, domain.ErrNotFound
	}
	if !plan.Editable {
		return nil, domain.ErrPlanLocked
	}

	var workout *domain.WorkoutRecommendation
	if req != nil {
		workout = req.Workout
	}
	if workout != nil && workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}

	edited, err := planner.ApplyDayEdit(*plan, day, workout)
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, &edited); err != nil {
		return nil, err
	}

	return &edited, nil
}

// ResetPlan discards edits and regenerates from current load state. When the
// planning inputs cannot be assembled the athlete still gets a usable plan:
// the static fallback is installed rather than surfacing the failure.
func (s *workoutService) ResetPlan(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error) {
	exists, err := s.athleteRepo.Exists(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	var plan domain.WeeklyWorkoutPlan
	planningCtx, err := s.buildPlanningContext(ctx, athleteID)
	if err != nil {
		plan = planner.FallbackPlan(time.Now().UTC())
	} else {
		plan = planner.ResetToRecommended(planningCtx)
	}
	plan.AthleteID = athleteID

	if err := s.planRepo.Save(ctx, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

// buildPlanningContext assembles the full snapshot one planning call needs:
// rolling load metrics, the most recent sessions with their normalized
// loads, active goals, and today's date in the athlete's timezone.
func (s *workoutService) buildPlanningContext(ctx context.Context, athleteID uuid.UUID) (*domain.PlanningContext, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	metrics, thresholds, err := s.loadService.ComputeMetrics(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	recent, err := s.activityRepo.ListRecent(ctx, athleteID, RecentSessionCount)
	if err != nil {
		return nil, err
	}

	loads := make([]float64, len(recent))
	for i := range recent {
		loads[i] = load.NormalizedLoad(&recent[i], thresholds)
	}

	goals, err := s.goalRepo.ListActive(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	loc := time.UTC
	if athlete.Timezone != "" {
		if l, err := time.LoadLocation(athlete.Timezone); err == nil {
			loc = l
		}
	}
	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return &domain.PlanningContext{
		Metrics:          metrics,
		RecentActivities: recent,
		RecentLoads:      loads,
		Goals:            goals,
		Today:            today,
	}, nil
}
