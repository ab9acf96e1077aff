package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// MockAthleteService is a mock implementation of AthleteService
type MockAthleteService struct {
	createFunc  func(ctx context.Context, req *domain.CreateAthleteRequest) (*domain.Athlete, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	updateFunc  func(ctx context.Context, id uuid.UUID, req *domain.CreateAthleteRequest) (*domain.Athlete, error)
}

func (m *MockAthleteService) Create(ctx context.Context, req *domain.CreateAthleteRequest) (*domain.Athlete, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Athlete{
		ID:               uuid.New(),
		Timezone:         req.Timezone,
		MaxHeartRate:     req.MaxHeartRate,
		RestingHeartRate: req.RestingHeartRate,
		FTP:              req.FTP,
		WeightKg:         req.WeightKg,
		CreatedAt:        time.Now(),
	}, nil
}

func (m *MockAthleteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Athlete{
		ID:        id,
		Timezone:  "UTC",
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockAthleteService) UpdateCalibration(ctx context.Context, id uuid.UUID, req *domain.CreateAthleteRequest) (*domain.Athlete, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return &domain.Athlete{
		ID:               id,
		Timezone:         req.Timezone,
		MaxHeartRate:     req.MaxHeartRate,
		RestingHeartRate: req.RestingHeartRate,
		FTP:              req.FTP,
		WeightKg:         req.WeightKg,
		CreatedAt:        time.Now(),
	}, nil
}

// MockActivityService is a mock implementation of ActivityService
type MockActivityService struct {
	createFunc  func(ctx context.Context, athleteID uuid.UUID, req *domain.CreateActivityRequest) (*domain.Activity, error)
	getByIDFunc func(ctx context.Context, athleteID, activityID uuid.UUID) (*domain.Activity, error)
	listFunc    func(ctx context.Context, athleteID uuid.UUID, filter domain.ActivityFilter) (*domain.ActivityListResponse, error)
	deleteFunc  func(ctx context.Context, athleteID, activityID uuid.UUID) error
}

func (m *MockActivityService) Create(ctx context.Context, athleteID uuid.UUID, req *domain.CreateActivityRequest) (*domain.Activity, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, athleteID, req)
	}
	return &domain.Activity{
		ID:         uuid.New(),
		AthleteID:  athleteID,
		Name:       req.Name,
		SportType:  req.SportType,
		StartDate:  req.StartDate,
		Timezone:   "UTC",
		MovingTime: req.MovingTime,
		Distance:   req.Distance,
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockActivityService) GetByID(ctx context.Context, athleteID, activityID uuid.UUID) (*domain.Activity, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, athleteID, activityID)
	}
	return &domain.Activity{
		ID:        activityID,
		AthleteID: athleteID,
	}, nil
}

func (m *MockActivityService) List(ctx context.Context, athleteID uuid.UUID, filter domain.ActivityFilter) (*domain.ActivityListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, athleteID, filter)
	}
	return &domain.ActivityListResponse{
		Data:       []domain.Activity{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockActivityService) Delete(ctx context.Context, athleteID, activityID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, athleteID, activityID)
	}
	return nil
}

// MockGoalService is a mock implementation of GoalService
type MockGoalService struct {
	upsertFunc func(ctx context.Context, athleteID uuid.UUID, req *domain.UpsertGoalRequest) (*domain.Goal, error)
	listFunc   func(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error)
	deleteFunc func(ctx context.Context, athleteID uuid.UUID, goalType domain.GoalType) error
}

func (m *MockGoalService) Upsert(ctx context.Context, athleteID uuid.UUID, req *domain.UpsertGoalRequest) (*domain.Goal, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, athleteID, req)
	}
	return &domain.Goal{
		ID:        uuid.New(),
		AthleteID: athleteID,
		Type:      req.Type,
		Target:    req.Target,
		Current:   req.Current,
		Active:    true,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockGoalService) List(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, athleteID)
	}
	return []domain.Goal{}, nil
}

func (m *MockGoalService) Delete(ctx context.Context, athleteID uuid.UUID, goalType domain.GoalType) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, athleteID, goalType)
	}
	return nil
}

// MockTrainingLoadService is a mock implementation of TrainingLoadService
type MockTrainingLoadService struct {
	computeFunc        func(ctx context.Context, athleteID uuid.UUID, windowDays int) (*domain.TrainingLoadResponse, error)
	computeMetricsFunc func(ctx context.Context, athleteID uuid.UUID) (domain.TrainingLoadMetrics, domain.AthleteThresholds, error)
}

func (m *MockTrainingLoadService) Compute(ctx context.Context, athleteID uuid.UUID, windowDays int) (*domain.TrainingLoadResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, athleteID, windowDays)
	}
	return &domain.TrainingLoadResponse{
		Points: []domain.TrainingLoadPoint{},
		Metrics: domain.TrainingLoadMetrics{
			Status:         domain.LoadStatusMaintain,
			Recommendation: "Keep your current rhythm.",
		},
		WindowDays: 90,
	}, nil
}

func (m *MockTrainingLoadService) ComputeMetrics(ctx context.Context, athleteID uuid.UUID) (domain.TrainingLoadMetrics, domain.AthleteThresholds, error) {
	if m.computeMetricsFunc != nil {
		return m.computeMetricsFunc(ctx, athleteID)
	}
	return domain.TrainingLoadMetrics{Status: domain.LoadStatusMaintain}, domain.AthleteThresholds{}, nil
}

// MockWorkoutService is a mock implementation of WorkoutService
type MockWorkoutService struct {
	todayFunc         func(ctx context.Context, athleteID uuid.UUID, req *domain.TodaysWorkoutRequest) (*domain.WorkoutRecommendation, error)
	generatePlanFunc  func(ctx context.Context, athleteID uuid.UUID, req *domain.GeneratePlanRequest) (*domain.WeeklyWorkoutPlan, error)
	currentPlanFunc   func(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error)
	updatePlanDayFunc func(ctx context.Context, athleteID, planID uuid.UUID, day int, req *domain.UpdatePlanDayRequest) (*domain.WeeklyWorkoutPlan, error)
	resetPlanFunc     func(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error)
}

func (m *MockWorkoutService) Today(ctx context.Context, athleteID uuid.UUID, req *domain.TodaysWorkoutRequest) (*domain.WorkoutRecommendation, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, athleteID, req)
	}
	return &domain.WorkoutRecommendation{
		ID:        uuid.New(),
		Type:      domain.WorkoutTempo,
		Sport:     domain.SportRun,
		Duration:  45,
		Intensity: 5,
		Reasoning: "Steady tempo work fits today.",
	}, nil
}

func (m *MockWorkoutService) GeneratePlan(ctx context.Context, athleteID uuid.UUID, req *domain.GeneratePlanRequest) (*domain.WeeklyWorkoutPlan, error) {
	if m.generatePlanFunc != nil {
		return m.generatePlanFunc(ctx, athleteID, req)
	}
	return stubPlan(athleteID), nil
}

func (m *MockWorkoutService) CurrentPlan(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error) {
	if m.currentPlanFunc != nil {
		return m.currentPlanFunc(ctx, athleteID)
	}
	return stubPlan(athleteID), nil
}

func (m *MockWorkoutService) UpdatePlanDay(ctx context.Context, athleteID, planID uuid.UUID, day int, req *domain.UpdatePlanDayRequest) (*domain.WeeklyWorkoutPlan, error) {
	if m.updatePlanDayFunc != nil {
		return m.updatePlanDayFunc(ctx, athleteID, planID, day, req)
	}
	plan := stubPlan(athleteID)
	plan.ID = planID
	return plan, nil
}

func (m *MockWorkoutService) ResetPlan(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error) {
	if m.resetPlanFunc != nil {
		return m.resetPlanFunc(ctx, athleteID)
	}
	return stubPlan(athleteID), nil
}

func stubPlan(athleteID uuid.UUID) *domain.WeeklyWorkoutPlan {
	return &domain.WeeklyWorkoutPlan{
		ID:        uuid.New(),
		AthleteID: athleteID,
		WeekStart: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Days: domain.PlanDays{
			1: {
				ID:        uuid.New(),
				Type:      domain.WorkoutTempo,
				Sport:     domain.SportRun,
				Duration:  45,
				Intensity: 5,
			},
		},
		TotalTSS:  37,
		TotalTime: 45,
		Phase:     domain.PhaseBuild,
		Editable:  true,
		CreatedAt: time.Now(),
	}
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	summarizeFunc func(ctx context.Context, athleteID uuid.UUID) (*domain.CoachSummary, error)
}

func (m *MockCoachService) Summarize(ctx context.Context, athleteID uuid.UUID) (*domain.CoachSummary, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, athleteID)
	}
	return &domain.CoachSummary{
		Summary:      "Training is steady and sustainable.",
		Observations: []string{"Chronic load is stable."},
		Guidance:     []string{"Keep one hard session this week."},
	}, nil
}
