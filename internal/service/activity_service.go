package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/repository"
	"github.com/karltiama/endurorevamp-sub001/pkg/pagination"
)

type ActivityService interface {
	Create(ctx context.Context, athleteID uuid.UUID, req *domain.CreateActivityRequest) (*domain.Activity, error)
	GetByID(ctx context.Context, athleteID, activityID uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, athleteID uuid.UUID, filter domain.ActivityFilter) (*domain.ActivityListResponse, error)
	Delete(ctx context.Context, athleteID, activityID uuid.UUID) error
}

type activityService struct {
	repo        repository.ActivityRepository
	athleteRepo repository.AthleteRepository
}

func NewActivityService(repo repository.ActivityRepository, athleteRepo repository.AthleteRepository) ActivityService {
	return &activityService{
		repo:        repo,
		athleteRepo: athleteRepo,
	}
}

func (s *activityService) Create(ctx context.Context, athleteID uuid.UUID, req *domain.CreateActivityRequest) (*domain.Activity, error) {
	// Load athlete to confirm existence and get their home timezone
	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	// Determine the timezone the session's calendar day is resolved in
	tz := athlete.Timezone
	if req.Timezone != nil && *req.Timezone != "" {
		tz = *req.Timezone
	}
	if tz == "" {
		tz = "UTC"
	}

	activity := &domain.Activity{
		ID:                uuid.New(),
		AthleteID:         athleteID,
		Name:              req.Name,
		SportType:         req.SportType,
		StartDate:         req.StartDate.UTC(),
		Timezone:          tz,
		MovingTime:        req.MovingTime,
		Distance:          req.Distance,
		AverageHeartRate:  req.AverageHeartRate,
		MaxHeartRate:      req.MaxHeartRate,
		AveragePower:      req.AveragePower,
		WeightedPower:     req.WeightedPower,
		PerceivedExertion: req.PerceivedExertion,
		ExerciseType:      req.ExerciseType,
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *activityService) GetByID(ctx context.Context, athleteID, activityID uuid.UUID) (*domain.Activity, error) {
	activity, err := s.repo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity.AthleteID != athleteID {
		return nil, domain.ErrNotFound
	}
	return activity, nil
}

func (s *activityService) List(ctx context.Context, athleteID uuid.UUID, filter domain.ActivityFilter) (*domain.ActivityListResponse, error) {
	exists, err := s.athleteRepo.Exists(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	activities, err := s.repo.List(ctx, athleteID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(activities) > limit
	if hasMore {
		activities = activities[:limit]
	}

	response := &domain.ActivityListResponse{
		Data: activities,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(activities) > 0 {
		last := activities[len(activities)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			StartDate: last.StartDate,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *activityService) Delete(ctx context.Context, athleteID, activityID uuid.UUID) error {
	activity, err := s.repo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}
	if activity.AthleteID != athleteID {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, activityID)
}
