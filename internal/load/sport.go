package load

import "github.com/karltiama/endurorevamp-sub001/internal/domain"

// sportMultiplier scales load for the physiological cost profile of a sport.
func sportMultiplier(sport domain.SportType) float64 {
	switch sport {
	case domain.SportRun:
		return 1.0
	case domain.SportRide:
		return 0.85
	case domain.SportSwim:
		return 1.1
	case domain.SportWalk:
		return 0.5
	case domain.SportWeightTraining:
		return 0.8
	default:
		return 0.8
	}
}

// variabilityIndex approximates the normalized-power multiplier for a sport
// when only average power is known. Steady sports pace closer to average.
func variabilityIndex(sport domain.SportType) float64 {
	switch sport {
	case domain.SportRide:
		return 1.02
	case domain.SportRun:
		return 1.05
	default:
		return 1.03
	}
}

// isStrength reports whether a session uses the strength load formula.
func isStrength(a *domain.Activity) bool {
	return a.SportType == domain.SportWeightTraining || a.SportType == domain.SportWorkout
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
