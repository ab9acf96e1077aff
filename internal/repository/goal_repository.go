package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository interface {
	Upsert(ctx context.Context, goal *domain.Goal) error
	ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error)
	ListActive(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error)
	Delete(ctx context.Context, athleteID uuid.UUID, goalType domain.GoalType) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Upsert inserts the goal or, when the athlete already has one of this type,
// replaces its target, progress and active flag. One goal per type.
func (r *goalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "athlete_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"target", "current", "active"}),
	}).Create(goal).Error
}

func (r *goalRepository) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error) {
	var goals []domain.Goal
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) ListActive(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error) {
	var goals []domain.Goal
	err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND active = ?", athleteID, true).
		Order("created_at ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) Delete(ctx context.Context, athleteID uuid.UUID, goalType domain.GoalType) error {
	result := r.db.WithContext(ctx).
		Where("athlete_id = ? AND type = ?", athleteID, goalType).
		Delete(&domain.Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
