package domain

import (
	"time"

	"github.com/google/uuid"
)

type Athlete struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`

	// Explicit calibration values. Nil fields are estimated from the
	// athlete's own activity history during load calculation.
	MaxHeartRate     *float64 `gorm:"type:numeric" json:"max_heart_rate,omitempty"`
	RestingHeartRate *float64 `gorm:"type:numeric" json:"resting_heart_rate,omitempty"`
	FTP              *float64 `gorm:"type:numeric" json:"ftp,omitempty"`
	WeightKg         *float64 `gorm:"type:numeric" json:"weight_kg,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Athlete) TableName() string {
	return "athletes"
}

// CreateAthleteRequest is the request body for creating an athlete profile.
// @Description Athlete profile with optional physiological calibration.
type CreateAthleteRequest struct {
	// IANA timezone used to group activities into local calendar days
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Amsterdam"`
	// Maximum heart rate in bpm (estimated from history when omitted)
	MaxHeartRate *float64 `json:"max_heart_rate,omitempty" validate:"omitempty,min=100,max=230" example:"185"`
	// Resting heart rate in bpm
	RestingHeartRate *float64 `json:"resting_heart_rate,omitempty" validate:"omitempty,min=25,max=100" example:"52"`
	// Functional threshold power in watts
	FTP *float64 `json:"ftp,omitempty" validate:"omitempty,min=50,max=600" example:"250"`
	// Body weight in kilograms
	WeightKg *float64 `json:"weight_kg,omitempty" validate:"omitempty,min=30,max=250" example:"71.5"`
}

// AthleteResponse is the response body for athlete endpoints
type AthleteResponse struct {
	ID               uuid.UUID `json:"id"`
	Timezone         string    `json:"timezone"`
	MaxHeartRate     *float64  `json:"max_heart_rate,omitempty"`
	RestingHeartRate *float64  `json:"resting_heart_rate,omitempty"`
	FTP              *float64  `json:"ftp,omitempty"`
	WeightKg         *float64  `json:"weight_kg,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (a *Athlete) ToResponse() AthleteResponse {
	return AthleteResponse{
		ID:               a.ID,
		Timezone:         a.Timezone,
		MaxHeartRate:     a.MaxHeartRate,
		RestingHeartRate: a.RestingHeartRate,
		FTP:              a.FTP,
		WeightKg:         a.WeightKg,
		CreatedAt:        a.CreatedAt,
	}
}
