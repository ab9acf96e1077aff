package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/pkg/pagination"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, athleteID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error)
	ListSince(ctx context.Context, athleteID uuid.UUID, since time.Time) ([]domain.Activity, error)
	ListRecent(ctx context.Context, athleteID uuid.UUID, limit int) ([]domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) List(ctx context.Context, athleteID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error) {
	query := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("start_date DESC, id DESC")

	if filter.From != nil {
		query = query.Where("start_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: fetch records strictly before the cursor position
			query = query.Where(
				"(start_date < ?) OR (start_date = ? AND id < ?)",
				cursor.StartDate, cursor.StartDate, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var activities []domain.Activity
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}

// ListSince returns every activity on or after the given instant in ascending
// start order, the shape the load calculations expect.
func (r *activityRepository) ListSince(ctx context.Context, athleteID uuid.UUID, since time.Time) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Where("start_date >= ?", since).
		Order("start_date ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// ListRecent returns the most recent activities, newest first.
func (r *activityRepository) ListRecent(ctx context.Context, athleteID uuid.UUID, limit int) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("start_date DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Activity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
