package domain

import (
	"time"

	"github.com/google/uuid"
)

// SportType tags a completed session with its sport.
// @Description Sport of a recorded training session.
type SportType string

const (
	SportRun            SportType = "Run"
	SportRide           SportType = "Ride"
	SportSwim           SportType = "Swim"
	SportWalk           SportType = "Walk"
	SportWeightTraining SportType = "WeightTraining"
	SportWorkout        SportType = "Workout"
)

// ExerciseType classifies a strength session's training emphasis.
// Usually inferred from the activity name; an explicit tag always wins.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseHypertrophy ExerciseType = "hypertrophy"
	ExerciseEndurance   ExerciseType = "endurance"
	ExercisePower       ExerciseType = "power"
	ExerciseCircuit     ExerciseType = "circuit"
)

type Activity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AthleteID uuid.UUID `gorm:"type:uuid;not null;index:idx_activities_athlete_start" json:"athlete_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	SportType SportType `gorm:"type:varchar(32);not null" json:"sport_type"`
	StartDate time.Time `gorm:"not null;index:idx_activities_athlete_start,sort:desc" json:"start_date"`
	// IANA timezone the session was recorded in; activities collapse into
	// calendar days in this zone.
	Timezone   string  `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	MovingTime int     `gorm:"not null" json:"moving_time"` // seconds
	Distance   float64 `gorm:"not null;default:0" json:"distance"` // meters

	AverageHeartRate  *float64 `gorm:"type:numeric" json:"average_heart_rate,omitempty"`
	MaxHeartRate      *float64 `gorm:"type:numeric" json:"max_heart_rate,omitempty"`
	AveragePower      *float64 `gorm:"type:numeric" json:"average_power,omitempty"`
	WeightedPower     *float64 `gorm:"type:numeric" json:"weighted_power,omitempty"`
	PerceivedExertion *int     `gorm:"type:smallint" json:"perceived_exertion,omitempty"`
	// Optional explicit strength classification overriding name inference
	ExerciseType *ExerciseType `gorm:"type:varchar(16)" json:"exercise_type,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Athlete Athlete `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Activity) TableName() string {
	return "activities"
}

// LocalDate returns the calendar date of the session in its recorded timezone.
func (a *Activity) LocalDate() string {
	loc := time.UTC
	if a.Timezone != "" {
		if l, err := time.LoadLocation(a.Timezone); err == nil {
			loc = l
		}
	}
	return a.StartDate.In(loc).Format("2006-01-02")
}

// DurationMinutes returns moving time in minutes.
func (a *Activity) DurationMinutes() float64 {
	return float64(a.MovingTime) / 60.0
}

// CreateActivityRequest is the request body for recording an activity.
// @Description Completed training session with optional physiological samples.
type CreateActivityRequest struct {
	// Session name, e.g. "Morning Run" or "Upper Body Strength"
	Name string `json:"name" validate:"required,max=255" example:"Morning Run"`
	// Sport of the session
	SportType SportType `json:"sport_type" validate:"required,sport" example:"Run"`
	// Session start time in RFC3339 format
	StartDate time.Time `json:"start_date" validate:"required" example:"2024-03-15T07:30:00Z"`
	// Moving duration in seconds (must be positive)
	MovingTime int `json:"moving_time" validate:"required,min=1" example:"3600"`
	// Distance in meters
	Distance float64 `json:"distance" validate:"omitempty,min=0" example:"10500"`
	// Average heart rate in bpm
	AverageHeartRate *float64 `json:"average_heart_rate,omitempty" validate:"omitempty,min=30,max=230" example:"150"`
	// Maximum heart rate in bpm
	MaxHeartRate *float64 `json:"max_heart_rate,omitempty" validate:"omitempty,min=30,max=230" example:"172"`
	// Average power in watts
	AveragePower *float64 `json:"average_power,omitempty" validate:"omitempty,min=0,max=2000" example:"210"`
	// Weighted (normalized) power in watts
	WeightedPower *float64 `json:"weighted_power,omitempty" validate:"omitempty,min=0,max=2000" example:"225"`
	// Perceived exertion 1-10, used for strength session load
	PerceivedExertion *int `json:"perceived_exertion,omitempty" validate:"omitempty,min=1,max=10" example:"7"`
	// Explicit strength classification (strength/hypertrophy/endurance/power/circuit)
	ExerciseType *ExerciseType `json:"exercise_type,omitempty" validate:"omitempty,oneof=strength hypertrophy endurance power circuit"`
	// IANA timezone for local day grouping (defaults to athlete's timezone)
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Amsterdam"`
}

// ActivityListResponse is the response body for listing activities.
// @Description Paginated list of activities.
type ActivityListResponse struct {
	// Array of activity records
	Data []Activity `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// ActivityFilter contains filter parameters for listing activities
type ActivityFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
