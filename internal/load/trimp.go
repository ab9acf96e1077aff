package load

import (
	"math"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// Banister model exponent (male coefficient).
const trimpExponent = 1.92

// TRIMP calculates the Banister training impulse for one session:
//
//	duration(min) × hrRatio × 0.64 × e^(1.92·hrRatio) × sportMultiplier
//
// where hrRatio is the heart-rate-reserve fraction clamped to [0,1].
// Sessions without heart-rate data score exactly 0; that is a normal input
// state, not an error.
func TRIMP(a *domain.Activity, thresholds domain.AthleteThresholds) float64 {
	if a.AverageHeartRate == nil {
		return 0
	}

	hrReserve := thresholds.MaxHeartRate - thresholds.RestingHeartRate
	if hrReserve <= 0 {
		return 0
	}

	hrRatio := clamp01((*a.AverageHeartRate - thresholds.RestingHeartRate) / hrReserve)
	trimp := a.DurationMinutes() * hrRatio * 0.64 * math.Exp(trimpExponent*hrRatio)

	return math.Round(trimp * sportMultiplier(a.SportType))
}
