package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"gorm.io/gorm"
)

type AthleteRepository interface {
	Create(ctx context.Context, athlete *domain.Athlete) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	Update(ctx context.Context, athlete *domain.Athlete) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type athleteRepository struct {
	db *gorm.DB
}

func NewAthleteRepository(db *gorm.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) Create(ctx context.Context, athlete *domain.Athlete) error {
	return r.db.WithContext(ctx).Create(athlete).Error
}

func (r *athleteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	var athlete domain.Athlete
	err := r.db.WithContext(ctx).First(&athlete, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) Update(ctx context.Context, athlete *domain.Athlete) error {
	return r.db.WithContext(ctx).Save(athlete).Error
}

func (r *athleteRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Athlete{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
