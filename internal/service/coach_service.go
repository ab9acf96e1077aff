package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/llm"
	"github.com/karltiama/endurorevamp-sub001/internal/repository"
)

// CoachSummaryWindowDays is the daily-series window handed to the coach.
const CoachSummaryWindowDays = 28

// CoachService narrates the athlete's training state through an LLM.
type CoachService interface {
	// Summarize generates a plain-language summary of the current state.
	Summarize(ctx context.Context, athleteID uuid.UUID) (*domain.CoachSummary, error)
}

type coachService struct {
	loadService TrainingLoadService
	llmClient   llm.CoachLLM
	goalRepo    repository.GoalRepository
	planRepo    repository.PlanRepository
}

// NewCoachService creates a new CoachService.
func NewCoachService(
	loadService TrainingLoadService,
	llmClient llm.CoachLLM,
	goalRepo repository.GoalRepository,
	planRepo repository.PlanRepository,
) CoachService {
	return &coachService{
		loadService: loadService,
		llmClient:   llmClient,
		goalRepo:    goalRepo,
		planRepo:    planRepo,
	}
}

func (s *coachService) Summarize(ctx context.Context, athleteID uuid.UUID) (*domain.CoachSummary, error) {
	loadResponse, err := s.loadService.Compute(ctx, athleteID, CoachSummaryWindowDays)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ListActive(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	// A missing plan is fine; the coach just has less to talk about.
	plan, err := s.planRepo.GetLatest(ctx, athleteID)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}

	coachCtx := &domain.CoachContext{
		Metrics:    loadResponse.Metrics,
		Points:     loadResponse.Points,
		Goals:      goals,
		Plan:       plan,
		Thresholds: loadResponse.Thresholds,
	}

	return s.llmClient.GenerateSummary(ctx, coachCtx)
}
