package load

import (
	"math"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// Bounds for the heart-rate intensity factor approximation.
const (
	minHRIntensityFactor = 0.5
	maxHRIntensityFactor = 1.15
)

// TSS calculates a training stress score for one session. The power-based
// formula is preferred when average power and FTP are both known; a
// heart-rate approximation is used next, and a flat duration estimate of 50
// per hour covers sessions with no physiological data at all.
func TSS(a *domain.Activity, thresholds domain.AthleteThresholds) float64 {
	durationHours := float64(a.MovingTime) / 3600.0

	if a.AveragePower != nil && thresholds.FTP != nil && *thresholds.FTP > 0 {
		return powerTSS(a, *thresholds.FTP)
	}

	if a.AverageHeartRate != nil && thresholds.LactateThreshold > 0 {
		intensityFactor := clamp(*a.AverageHeartRate/thresholds.LactateThreshold,
			minHRIntensityFactor, maxHRIntensityFactor)
		tss := durationHours * intensityFactor * intensityFactor * 100 * sportMultiplier(a.SportType)
		return math.Round(tss)
	}

	return math.Round(durationHours * 50)
}

// powerTSS is the classic power formula with recorded weighted power when
// available, otherwise average power scaled by a sport variability index.
func powerTSS(a *domain.Activity, ftp float64) float64 {
	normalizedPower := *a.AveragePower * variabilityIndex(a.SportType)
	if a.WeightedPower != nil && *a.WeightedPower > 0 {
		normalizedPower = *a.WeightedPower
	}

	intensityFactor := *a.AveragePower / ftp
	tss := (float64(a.MovingTime) * normalizedPower * intensityFactor) / (ftp * 3600) * 100

	return math.Round(tss)
}
