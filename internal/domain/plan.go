package domain

import (
	"time"

	"github.com/google/uuid"
)

// PeriodizationPhase is the coarse training-cycle label a weekly plan carries.
// @Description Training cycle phase: base, build, peak, or recovery.
type PeriodizationPhase string

const (
	PhaseBase     PeriodizationPhase = "base"
	PhaseBuild    PeriodizationPhase = "build"
	PhasePeak     PeriodizationPhase = "peak"
	PhaseRecovery PeriodizationPhase = "recovery"
)

// PlanDays maps day-of-week (0=Sunday .. 6=Saturday) to a workout. A nil
// value is an explicit rest day. Every valid plan has exactly seven entries.
type PlanDays map[int]*WorkoutRecommendation

// WeeklyWorkoutPlan is the persisted, user-editable 7-day plan. Totals are
// always the aggregate over the current day map; any day edit recomputes
// them in full before the plan is considered valid.
type WeeklyWorkoutPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AthleteID uuid.UUID `gorm:"type:uuid;not null;index" json:"athlete_id"`
	// Monday of the ISO week the plan covers
	WeekStart time.Time `gorm:"not null" json:"week_start"`
	Days      PlanDays  `gorm:"serializer:json" json:"days"`

	// Aggregates over the day map
	TotalTSS      int     `gorm:"not null;default:0" json:"total_tss"`
	TotalDistance float64 `gorm:"not null;default:0" json:"total_distance"` // km
	TotalTime     int     `gorm:"not null;default:0" json:"total_time"`     // minutes

	Phase    PeriodizationPhase `gorm:"type:varchar(16);not null" json:"phase"`
	Editable bool               `gorm:"not null;default:true" json:"editable"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Athlete Athlete `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
}

func (WeeklyWorkoutPlan) TableName() string {
	return "weekly_workout_plans"
}

// Workout returns the planned workout for a day-of-week, nil for rest.
func (p *WeeklyWorkoutPlan) Workout(day int) *WorkoutRecommendation {
	if p.Days == nil {
		return nil
	}
	return p.Days[day]
}

// TodaysWorkoutRequest carries optional planning inputs for the single-day
// recommendation endpoint.
// @Description Optional weather conditions for today's recommendation.
type TodaysWorkoutRequest struct {
	Weather *WeatherSnapshot `json:"weather,omitempty"`
}

// GeneratePlanRequest is the request body for weekly plan generation.
// @Description Optional weather and preference overrides for plan generation.
type GeneratePlanRequest struct {
	Weather *WeatherSnapshot `json:"weather,omitempty"`
	Prefs   *Preferences     `json:"preferences,omitempty"`
}

// UpdatePlanDayRequest sets or clears one day of a weekly plan.
// @Description Workout to place on the day; omit to mark the day as rest.
type UpdatePlanDayRequest struct {
	Workout *WorkoutRecommendation `json:"workout,omitempty"`
}
