package load

import (
	"math"
	"sort"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

const (
	// Efforts shorter than this do not inform FTP estimation.
	ftpMinEffortMinutes = 20

	maxHRPercentile  = 0.95
	restHRPercentile = 0.05
	ftpPercentile    = 0.90
)

// EstimateThresholds derives athlete calibration from observed activity
// history. Max HR comes from the 95th percentile of per-session peak HR,
// resting HR from the 5th percentile of average HR, and FTP from the 90th
// percentile of weighted power on efforts longer than 20 minutes. When no
// heart-rate data exists at all the named defaults apply.
func EstimateThresholds(activities []domain.Activity) domain.AthleteThresholds {
	var peakHRs, avgHRs, powers []float64

	for i := range activities {
		a := &activities[i]
		if a.MaxHeartRate != nil {
			peakHRs = append(peakHRs, *a.MaxHeartRate)
		} else if a.AverageHeartRate != nil {
			peakHRs = append(peakHRs, *a.AverageHeartRate)
		}
		if a.AverageHeartRate != nil {
			avgHRs = append(avgHRs, *a.AverageHeartRate)
		}
		if a.DurationMinutes() >= ftpMinEffortMinutes {
			if a.WeightedPower != nil {
				powers = append(powers, *a.WeightedPower)
			} else if a.AveragePower != nil {
				powers = append(powers, *a.AveragePower)
			}
		}
	}

	thresholds := domain.DefaultThresholds()
	if len(peakHRs) > 0 {
		thresholds.MaxHeartRate = percentile(peakHRs, maxHRPercentile)
	}
	if len(avgHRs) > 0 {
		thresholds.RestingHeartRate = percentile(avgHRs, restHRPercentile)
	}
	if len(powers) > 0 {
		ftp := percentile(powers, ftpPercentile)
		thresholds.FTP = &ftp
	}
	thresholds.LactateThreshold = thresholds.MaxHeartRate * domain.LactateThresholdFraction
	thresholds.Estimated = true

	return thresholds
}

// ResolveThresholds merges explicit profile calibration with estimates from
// history. Explicit values always win; calculation never lacks a value.
func ResolveThresholds(athlete *domain.Athlete, activities []domain.Activity) domain.AthleteThresholds {
	estimated := EstimateThresholds(activities)

	resolved := estimated
	explicit := false
	if athlete != nil {
		if athlete.MaxHeartRate != nil {
			resolved.MaxHeartRate = *athlete.MaxHeartRate
			explicit = true
		}
		if athlete.RestingHeartRate != nil {
			resolved.RestingHeartRate = *athlete.RestingHeartRate
			explicit = true
		}
		if athlete.FTP != nil {
			ftp := *athlete.FTP
			resolved.FTP = &ftp
			explicit = true
		}
		if athlete.WeightKg != nil {
			w := *athlete.WeightKg
			resolved.WeightKg = &w
		}
	}
	resolved.LactateThreshold = resolved.MaxHeartRate * domain.LactateThresholdFraction
	resolved.Estimated = !explicit

	return resolved
}

// percentile returns the p-quantile (0..1) of values using linear
// interpolation between closest ranks.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
