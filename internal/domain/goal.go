package domain

import (
	"time"

	"github.com/google/uuid"
)

// GoalType identifies what a training goal measures.
// @Description Goal category: weekly distance, target pace, or run frequency.
type GoalType string

const (
	GoalDistance  GoalType = "distance"
	GoalPace      GoalType = "pace"
	GoalFrequency GoalType = "frequency"
)

type Goal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AthleteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_goals_athlete_type" json:"athlete_id"`
	Type      GoalType  `gorm:"type:varchar(16);not null;uniqueIndex:idx_goals_athlete_type" json:"type"`
	// Target value in the goal's natural unit (km, min/km, sessions/week)
	Target float64 `gorm:"not null" json:"target"`
	// Current progress toward the target, same unit
	Current   float64   `gorm:"not null;default:0" json:"current"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Athlete Athlete `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Goal) TableName() string {
	return "goals"
}

// ProgressPercent returns progress toward target as 0-100+ (may exceed 100).
func (g *Goal) ProgressPercent() float64 {
	if g.Target <= 0 {
		return 0
	}
	return g.Current / g.Target * 100
}

// Complete reports whether the goal's target has been reached.
func (g *Goal) Complete() bool {
	return g.Target > 0 && g.Current >= g.Target
}

// UpsertGoalRequest is the request body for setting a goal.
// @Description Numeric training goal with current progress.
type UpsertGoalRequest struct {
	// Goal category
	Type GoalType `json:"type" validate:"required,oneof=distance pace frequency" example:"distance"`
	// Target value (km for distance, min/km for pace, sessions/week for frequency)
	Target float64 `json:"target" validate:"required,gt=0" example:"40"`
	// Current progress, same unit as target
	Current float64 `json:"current" validate:"omitempty,min=0" example:"18.5"`
	// Whether the goal is active
	Active *bool `json:"active,omitempty"`
}
