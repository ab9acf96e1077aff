package planner

import (
	"math"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// Planning defaults when preferences leave them unset.
const (
	defaultAvailableMinutes = 60
	defaultSport            = domain.SportRun

	// Longest session a long day is allowed to stretch to, regardless
	// of how much time the athlete has available.
	maxLongMinutes = 150
)

// workoutTemplate is the baseline shape of one workout kind before
// preferences and weather adjust it.
type workoutTemplate struct {
	duration  int // minutes
	intensity int // 1-10
	// Approximate running speed in km/h used to suggest a distance
	speedKmh     float64
	instructions []string
	tips         []string
}

var workoutTemplates = map[domain.WorkoutType]workoutTemplate{
	domain.WorkoutEasy: {
		duration: 40, intensity: 3, speedKmh: 9.5,
		instructions: []string{
			"Keep the effort fully conversational from start to finish.",
			"Walk breaks are fine if heart rate drifts up.",
		},
		tips: []string{"If in doubt, go slower. Easy days make the hard days work."},
	},
	domain.WorkoutRecovery: {
		duration: 30, intensity: 2, speedKmh: 8.5,
		instructions: []string{
			"Very gentle movement only, nothing that raises breathing noticeably.",
		},
		tips: []string{"A short walk or light spin counts. The goal is blood flow, not fitness."},
	},
	domain.WorkoutTempo: {
		duration: 45, intensity: 5, speedKmh: 11.0,
		instructions: []string{
			"10 minute easy warm-up.",
			"20-25 minutes at a comfortably hard, steady effort.",
			"10 minute easy cool-down.",
		},
		tips: []string{"Tempo effort is one you could hold for about an hour on a good day."},
	},
	domain.WorkoutThreshold: {
		duration: 50, intensity: 7, speedKmh: 12.0,
		instructions: []string{
			"15 minute progressive warm-up.",
			"2-3 x 10 minutes at threshold with 3 minutes easy between.",
			"10 minute cool-down.",
		},
		tips: []string{"Threshold should feel controlled; back off if form falls apart."},
	},
	domain.WorkoutInterval: {
		duration: 50, intensity: 8, speedKmh: 12.5,
		instructions: []string{
			"15 minute warm-up with a few strides.",
			"5-6 x 3 minutes hard with equal easy recoveries.",
			"10 minute cool-down.",
		},
		tips: []string{"The last repeat should feel as strong as the first. Start conservative."},
	},
	domain.WorkoutLong: {
		duration: 90, intensity: 4, speedKmh: 10.0,
		instructions: []string{
			"Settle into an easy, steady rhythm and hold it.",
			"Fuel after the first hour and drink regularly.",
		},
		tips: []string{"Distance over pace. The benefit comes from time on your feet."},
	},
	domain.WorkoutFartlek: {
		duration: 45, intensity: 6, speedKmh: 11.0,
		instructions: []string{
			"After warming up, alternate surges of 1-3 minutes with easy running by feel.",
		},
		tips: []string{"Unstructured by design. Surge when you feel good."},
	},
	domain.WorkoutHill: {
		duration: 45, intensity: 7, speedKmh: 10.0,
		instructions: []string{
			"Warm up to the base of a moderate hill.",
			"8-10 x 45-60 second strong uphill efforts, jog down to recover.",
		},
		tips: []string{"Drive with the arms and keep the cadence quick on the climbs."},
	},
	domain.WorkoutStrength: {
		duration: 45, intensity: 6,
		instructions: []string{
			"Full-body session: squat, hinge, push, pull.",
			"3-4 sets per movement, leaving 1-2 reps in reserve.",
		},
		tips: []string{"Quality of movement beats added weight."},
	},
	domain.WorkoutCrossTraining: {
		duration: 40, intensity: 4,
		instructions: []string{
			"Bike, swim, or elliptical at a steady aerobic effort.",
		},
		tips: []string{"Keep it non-impact if you're managing a niggle."},
	},
}

// buildWorkout synthesizes a recommendation of the given kind for the
// athlete's preferences and current load state.
func buildWorkout(workoutType domain.WorkoutType, ctx *domain.PlanningContext, reasoning string) *domain.WorkoutRecommendation {
	tmpl, ok := workoutTemplates[workoutType]
	if !ok {
		tmpl = workoutTemplates[domain.WorkoutEasy]
	}

	available := ctx.Prefs.AvailableMinutes
	if available <= 0 {
		available = defaultAvailableMinutes
	}
	duration := tmpl.duration
	// Long sessions may use extra time when the athlete has it, up to
	// maxLongMinutes.
	if workoutType == domain.WorkoutLong && available > duration {
		duration = available
		if duration > maxLongMinutes {
			duration = maxLongMinutes
		}
	}
	if duration > available {
		duration = available
	}

	sport := preferredSport(ctx.Prefs)

	rec := &domain.WorkoutRecommendation{
		ID:            uuid.New(),
		Type:          workoutType,
		Sport:         sport,
		Duration:      duration,
		Intensity:     tmpl.intensity,
		Difficulty:    difficultyFor(tmpl.intensity, ctx.Prefs.Experience),
		EnergyCost:    energyCost(tmpl.intensity, duration),
		RecoveryHours: recoveryHours(tmpl.intensity, duration),
		Reasoning:     reasoning,
		Instructions:  tmpl.instructions,
		Tips:          tmpl.tips,
	}

	if distanceBased(sport) && tmpl.speedKmh > 0 {
		d := math.Round(float64(duration)/60*tmpl.speedKmh*10) / 10
		rec.Distance = &d
	}

	if ctx.Prefs.InjuryNotes != "" {
		rec.Modifications = append(rec.Modifications,
			"You noted: "+ctx.Prefs.InjuryNotes+". Swap to a non-impact option if symptoms appear.")
	}

	return rec
}

func preferredSport(prefs domain.Preferences) domain.SportType {
	if len(prefs.PreferredSports) > 0 {
		return prefs.PreferredSports[0]
	}
	return defaultSport
}

func distanceBased(sport domain.SportType) bool {
	switch sport {
	case domain.SportRun, domain.SportRide, domain.SportSwim, domain.SportWalk:
		return true
	default:
		return false
	}
}

func difficultyFor(intensity int, experience domain.ExperienceTier) domain.DifficultyTier {
	// Experienced athletes find the same intensity less demanding.
	adjusted := intensity
	switch experience {
	case domain.ExperienceAdvanced:
		adjusted -= 2
	case domain.ExperienceIntermediate:
		adjusted--
	}

	switch {
	case adjusted <= 3:
		return domain.DifficultyBeginner
	case adjusted <= 6:
		return domain.DifficultyIntermediate
	default:
		return domain.DifficultyAdvanced
	}
}

// energyCost estimates relative energy demand 1-10 from intensity and time.
func energyCost(intensity, duration int) int {
	cost := int(math.Round(float64(intensity) * float64(duration) / 60.0))
	if cost < 1 {
		cost = 1
	}
	if cost > 10 {
		cost = 10
	}
	return cost
}

// recoveryHours estimates hours before the next quality session.
func recoveryHours(intensity, duration int) int {
	hours := int(math.Round(float64(intensity) * 6 * float64(duration) / 60.0))
	if hours < 8 {
		hours = 8
	}
	if hours > 72 {
		hours = 72
	}
	return hours
}
