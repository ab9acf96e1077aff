package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/repository"
)

type AthleteService interface {
	Create(ctx context.Context, req *domain.CreateAthleteRequest) (*domain.Athlete, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	UpdateCalibration(ctx context.Context, id uuid.UUID, req *domain.CreateAthleteRequest) (*domain.Athlete, error)
}

type athleteService struct {
	repo repository.AthleteRepository
}

func NewAthleteService(repo repository.AthleteRepository) AthleteService {
	return &athleteService{repo: repo}
}

func (s *athleteService) Create(ctx context.Context, req *domain.CreateAthleteRequest) (*domain.Athlete, error) {
	athlete := &domain.Athlete{
		ID:               uuid.New(),
		Timezone:         req.Timezone,
		MaxHeartRate:     req.MaxHeartRate,
		RestingHeartRate: req.RestingHeartRate,
		FTP:              req.FTP,
		WeightKg:         req.WeightKg,
	}

	if err := s.repo.Create(ctx, athlete); err != nil {
		return nil, err
	}

	return athlete, nil
}

func (s *athleteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateCalibration replaces the athlete's profile values. Explicit
// calibration overrides history-based estimation from then on.
func (s *athleteService) UpdateCalibration(ctx context.Context, id uuid.UUID, req *domain.CreateAthleteRequest) (*domain.Athlete, error) {
	athlete, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	athlete.Timezone = req.Timezone
	athlete.MaxHeartRate = req.MaxHeartRate
	athlete.RestingHeartRate = req.RestingHeartRate
	athlete.FTP = req.FTP
	athlete.WeightKg = req.WeightKg

	if err := s.repo.Update(ctx, athlete); err != nil {
		return nil, err
	}

	return athlete, nil
}
