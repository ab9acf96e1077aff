package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/repository"
)

type GoalService interface {
	Upsert(ctx context.Context, athleteID uuid.UUID, req *domain.UpsertGoalRequest) (*domain.Goal, error)
	List(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error)
	Delete(ctx context.Context, athleteID uuid.UUID, goalType domain.GoalType) error
}

type goalService struct {
	repo        repository.GoalRepository
	athleteRepo repository.AthleteRepository
}

func NewGoalService(repo repository.GoalRepository, athleteRepo repository.AthleteRepository) GoalService {
	return &goalService{
		repo:        repo,
		athleteRepo: athleteRepo,
	}
}

func (s *goalService) Upsert(ctx context.Context, athleteID uuid.UUID, req *domain.UpsertGoalRequest) (*domain.Goal, error) {
	exists, err := s.athleteRepo.Exists(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	goal := &domain.Goal{
		ID:        uuid.New(),
		AthleteID: athleteID,
		Type:      req.Type,
		Target:    req.Target,
		Current:   req.Current,
		Active:    active,
	}

	if err := s.repo.Upsert(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *goalService) List(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error) {
	exists, err := s.athleteRepo.Exists(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.repo.ListByAthlete(ctx, athleteID)
}

func (s *goalService) Delete(ctx context.Context, athleteID uuid.UUID, goalType domain.GoalType) error {
	exists, err := s.athleteRepo.Exists(ctx, athleteID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, athleteID, goalType)
}
