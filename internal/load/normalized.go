package load

import (
	"math"
	"strings"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

const (
	// Strength work with absent or very low HR still stresses the
	// neuromuscular system; compensate instead of under-scoring it.
	neuromuscularCompensation = 1.3
	lowHRRatio                = 0.3

	trimpWeight = 0.6
	tssWeight   = 0.4
	// Boost applied when only TRIMP is available for the blend.
	trimpOnlyBoost = 1.2
)

// NormalizedLoad scores one session on a common 0-100 scale so sessions of
// different sports are comparable. Strength sessions use a dedicated
// formula; everything else blends TRIMP and TSS.
func NormalizedLoad(a *domain.Activity, thresholds domain.AthleteThresholds) float64 {
	if isStrength(a) {
		return strengthLoad(a, thresholds)
	}

	trimp := TRIMP(a, thresholds)
	tss := TSS(a, thresholds)

	var base float64
	switch {
	case trimp > 0 && tss > 0:
		base = trimp*trimpWeight + tss*tssWeight
	case trimp > 0:
		base = trimp * trimpOnlyBoost
	case tss > 0:
		base = tss
	default:
		base = float64(a.MovingTime) / 3600.0 * 30
	}

	base *= intensityMultiplier(a, thresholds) * sportMultiplier(a.SportType)

	return math.Round(clamp(base, 0, 100))
}

// strengthLoad derives a 0-100 load for gym work. Heart rate understates the
// cost of heavy lifting, so low or missing HR falls back to a duration base
// with a neuromuscular compensation factor, then the exercise classification
// and any reported RPE scale the result.
func strengthLoad(a *domain.Activity, thresholds domain.AthleteThresholds) float64 {
	durationMinutes := a.DurationMinutes()

	hrRatio := 0.0
	hrReserve := thresholds.MaxHeartRate - thresholds.RestingHeartRate
	if a.AverageHeartRate != nil && hrReserve > 0 {
		hrRatio = clamp01((*a.AverageHeartRate - thresholds.RestingHeartRate) / hrReserve)
	}

	var base float64
	if hrRatio < lowHRRatio {
		base = durationMinutes * 0.5 * neuromuscularCompensation
	} else {
		base = durationMinutes * hrRatio
	}

	base *= exerciseTypeMultiplier(ClassifyExercise(a))

	if a.PerceivedExertion != nil {
		base *= 0.5 + float64(*a.PerceivedExertion)/10.0
	}

	return math.Round(clamp(base, 0, 100))
}

// intensityMultiplier scales load by how close the session ran to threshold,
// using heart rate when available and power otherwise.
func intensityMultiplier(a *domain.Activity, thresholds domain.AthleteThresholds) float64 {
	if a.AverageHeartRate != nil && thresholds.LactateThreshold > 0 {
		return clamp(*a.AverageHeartRate/thresholds.LactateThreshold, 0.6, 1.4)
	}
	if a.AveragePower != nil && thresholds.FTP != nil && *thresholds.FTP > 0 {
		return clamp(*a.AveragePower / *thresholds.FTP, 0.6, 1.4)
	}
	return 1.0
}

// exerciseRule matches an exercise classification from session-name keywords.
type exerciseRule struct {
	exerciseType domain.ExerciseType
	keywords     []string
}

// Ordered rule list: the first rule with a matching keyword wins. Name
// matching is best-effort; an explicit tag on the activity always overrides
// it (see ClassifyExercise).
var exerciseRules = []exerciseRule{
	{domain.ExercisePower, []string{"power", "explosive", "plyo", "olympic"}},
	{domain.ExerciseStrength, []string{"strength", "heavy", "max effort", "5x5", "powerlifting"}},
	{domain.ExerciseCircuit, []string{"circuit", "hiit", "crossfit", "wod", "metcon"}},
	{domain.ExerciseEndurance, []string{"endurance", "high rep", "muscular endurance"}},
	{domain.ExerciseHypertrophy, []string{"hypertrophy", "bodybuilding", "volume"}},
}

// ClassifyExercise determines a strength session's training emphasis. An
// explicit tag on the activity record wins; otherwise the ordered keyword
// rules run against the session name, defaulting to hypertrophy.
func ClassifyExercise(a *domain.Activity) domain.ExerciseType {
	if a.ExerciseType != nil {
		return *a.ExerciseType
	}

	name := strings.ToLower(a.Name)
	for _, rule := range exerciseRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.exerciseType
			}
		}
	}
	return domain.ExerciseHypertrophy
}

func exerciseTypeMultiplier(t domain.ExerciseType) float64 {
	switch t {
	case domain.ExerciseStrength:
		return 1.2
	case domain.ExercisePower:
		return 1.3
	case domain.ExerciseCircuit:
		return 1.1
	case domain.ExerciseEndurance:
		return 0.8
	default:
		return 1.0
	}
}
