package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutType is the kind of session a recommendation proposes.
// @Description Proposed workout kind (easy, tempo, threshold, long, ...).
type WorkoutType string

const (
	WorkoutEasy          WorkoutType = "easy"
	WorkoutTempo         WorkoutType = "tempo"
	WorkoutThreshold     WorkoutType = "threshold"
	WorkoutLong          WorkoutType = "long"
	WorkoutRecovery      WorkoutType = "recovery"
	WorkoutStrength      WorkoutType = "strength"
	WorkoutInterval      WorkoutType = "interval"
	WorkoutFartlek       WorkoutType = "fartlek"
	WorkoutHill          WorkoutType = "hill"
	WorkoutCrossTraining WorkoutType = "cross_training"
)

// DifficultyTier buckets a recommendation's demand on the athlete.
type DifficultyTier string

const (
	DifficultyBeginner     DifficultyTier = "beginner"
	DifficultyIntermediate DifficultyTier = "intermediate"
	DifficultyAdvanced     DifficultyTier = "advanced"
)

// WorkoutRecommendation is a single proposed session. Ephemeral unless
// embedded in a weekly plan. Validate tags bound client-supplied workouts
// on the plan edit path; engine-built values stay inside them by
// construction.
type WorkoutRecommendation struct {
	ID       uuid.UUID   `json:"id"`
	Type     WorkoutType `json:"type" validate:"required,oneof=easy tempo threshold long recovery strength interval fartlek hill cross_training"`
	Sport    SportType   `json:"sport" validate:"required,sport"`
	Duration int         `json:"duration" validate:"required,min=1,max=600"` // minutes
	// Effort level 1-10
	Intensity int `json:"intensity" validate:"required,min=1,max=10"`
	// Suggested distance in km, when the sport is distance-based
	Distance   *float64       `json:"distance,omitempty" validate:"omitempty,gt=0"`
	Difficulty DifficultyTier `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	// Relative energy demand 1-10
	EnergyCost int `json:"energy_cost" validate:"omitempty,min=1,max=10"`
	// Hours of recovery the session is expected to need
	RecoveryHours int    `json:"recovery_hours" validate:"omitempty,min=1"`
	Reasoning     string `json:"reasoning"`

	Alternatives  []WorkoutRecommendation `json:"alternatives,omitempty" validate:"omitempty,dive"`
	Instructions  []string                `json:"instructions,omitempty"`
	Tips          []string                `json:"tips,omitempty"`
	Modifications []string                `json:"modifications,omitempty"`
	WeatherNote   string                  `json:"weather_note,omitempty"`
	GoalNote      string                  `json:"goal_note,omitempty"`
}

// ExperienceTier is the athlete's self-reported training background.
type ExperienceTier string

const (
	ExperienceBeginner     ExperienceTier = "beginner"
	ExperienceIntermediate ExperienceTier = "intermediate"
	ExperienceAdvanced     ExperienceTier = "advanced"
)

// WeatherSnapshot is a parsed current-conditions snapshot supplied by the
// caller. The engine only consumes the structured values.
// @Description Current weather conditions for workout adjustment.
type WeatherSnapshot struct {
	// Temperature in degrees Celsius
	Temperature float64 `json:"temperature" example:"27.5"`
	// Precipitation in mm over the last hour
	Precipitation float64 `json:"precipitation" example:"0.0"`
	// Wind speed in km/h
	WindSpeed float64 `json:"wind_speed" example:"12.0"`
}

// Preferences carries the athlete's planning constraints.
type Preferences struct {
	// Sports the athlete wants recommendations for, in priority order
	PreferredSports []SportType `json:"preferred_sports,omitempty" validate:"omitempty,dive,sport"`
	// Minutes available for training per day
	AvailableMinutes int            `json:"available_minutes,omitempty" validate:"omitempty,min=10,max=600"`
	Experience       ExperienceTier `json:"experience,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	// "metric" or "imperial"; affects presentation only
	Units string `json:"units,omitempty" validate:"omitempty,oneof=metric imperial"`
	// Optional weather snapshot for outdoor adjustment
	Weather *WeatherSnapshot `json:"weather,omitempty"`
	// Free-text equipment availability and injury notes
	Equipment   []string `json:"equipment,omitempty"`
	InjuryNotes string   `json:"injury_notes,omitempty"`
}

// PlanningContext bundles every input one planning invocation needs. It is
// an immutable snapshot: identical contexts yield identical recommendations.
type PlanningContext struct {
	Metrics TrainingLoadMetrics
	// Most-recent-first, truncated by the caller (typically 20)
	RecentActivities []Activity
	// Per-activity normalized loads aligned with RecentActivities
	RecentLoads []float64
	Goals       []Goal
	Prefs       Preferences
	Today       time.Time
}
