package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Save(ctx context.Context, plan *domain.WeeklyWorkoutPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WeeklyWorkoutPlan, error)
	GetLatest(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Save persists the plan, replacing any existing plan for the same athlete
// and week. Regeneration and day edits both go through here.
func (r *planRepository) Save(ctx context.Context, plan *domain.WeeklyWorkoutPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("athlete_id = ? AND week_start = ? AND id <> ?", plan.AthleteID, plan.WeekStart, plan.ID).
			Delete(&domain.WeeklyWorkoutPlan{}).Error
		if err != nil {
			return err
		}
		return tx.Save(plan).Error
	})
}

func (r *planRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WeeklyWorkoutPlan, error) {
	var plan domain.WeeklyWorkoutPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) GetLatest(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error) {
	var plan domain.WeeklyWorkoutPlan
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("week_start DESC").
		First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}
