package planner

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// Periodization phase thresholds.
const (
	phaseRecoveryBalance = -15.0
	phaseBaseChronic     = 30.0
	phasePeakChronic     = 60.0
)

// WeeklyPlan generates a full 7-day plan starting from the context's today.
// The returned plan always contains exactly seven day entries (0=Sunday ..
// 6=Saturday); athletes with no activity history get the deterministic
// fallback plan instead of an empty week.
func WeeklyPlan(ctx *domain.PlanningContext) domain.WeeklyWorkoutPlan {
	if len(ctx.RecentActivities) == 0 {
		return FallbackPlan(ctx.Today)
	}

	days := make(domain.PlanDays, 7)
	for offset := 0; offset < 7; offset++ {
		date := ctx.Today.AddDate(0, 0, offset)
		rec := recommendForDate(ctx, date, offset == 0)
		ApplyWeather(rec, ctx.Prefs.Weather)
		days[int(date.Weekday())] = rec
	}

	plan := domain.WeeklyWorkoutPlan{
		ID:        uuid.New(),
		WeekStart: weekStart(ctx.Today),
		Days:      days,
		Phase:     classifyPhase(ctx.Metrics),
		Editable:  true,
	}
	recomputeTotals(&plan)

	return plan
}

// FallbackPlan is the static plan used when no history exists or plan
// regeneration fails: three moderate running sessions on Monday, Thursday
// and Saturday, rest elsewhere. Deterministic apart from the generated IDs.
func FallbackPlan(today time.Time) domain.WeeklyWorkoutPlan {
	days := make(domain.PlanDays, 7)
	for dow := 0; dow < 7; dow++ {
		days[dow] = nil
	}

	fallbackCtx := &domain.PlanningContext{Today: today}
	reasoning := "Starter session while we learn your training patterns."
	days[int(time.Monday)] = buildWorkout(domain.WorkoutTempo, fallbackCtx, reasoning)
	days[int(time.Thursday)] = buildWorkout(domain.WorkoutTempo, fallbackCtx, reasoning)
	days[int(time.Saturday)] = buildWorkout(domain.WorkoutTempo, fallbackCtx, reasoning)

	plan := domain.WeeklyWorkoutPlan{
		ID:        uuid.New(),
		WeekStart: weekStart(today),
		Days:      days,
		Phase:     domain.PhaseBase,
		Editable:  true,
	}
	recomputeTotals(&plan)

	return plan
}

// ApplyDayEdit returns a new plan with one day set or cleared and totals
// fully recomputed from the whole day map. The input plan is not mutated;
// incremental total updates are deliberately not supported.
func ApplyDayEdit(plan domain.WeeklyWorkoutPlan, day int, workout *domain.WorkoutRecommendation) (domain.WeeklyWorkoutPlan, error) {
	if day < 0 || day > 6 {
		return plan, domain.ErrInvalidDay
	}

	next := plan
	next.Days = make(domain.PlanDays, 7)
	for d := 0; d < 7; d++ {
		next.Days[d] = plan.Days[d]
	}
	next.Days[day] = workout
	recomputeTotals(&next)

	return next, nil
}

// ResetToRecommended discards all edits and regenerates the plan. It never
// fails: any problem during regeneration is caught locally and the static
// fallback plan is installed instead, so the result is always complete.
func ResetToRecommended(ctx *domain.PlanningContext) (plan domain.WeeklyWorkoutPlan) {
	var today time.Time
	if ctx != nil {
		today = ctx.Today
	}
	defer func() {
		if r := recover(); r != nil {
			plan = FallbackPlan(today)
		}
	}()

	return WeeklyPlan(ctx)
}

// recomputeTotals rebuilds the three aggregates from the full day map.
func recomputeTotals(plan *domain.WeeklyWorkoutPlan) {
	var tss float64
	var distance float64
	var minutes int

	for day := 0; day < 7; day++ {
		w := plan.Days[day]
		if w == nil {
			continue
		}
		tss += float64(w.Duration) / 60.0 * float64(w.Intensity) / 10.0 * 100
		if w.Distance != nil {
			distance += *w.Distance
		}
		minutes += w.Duration
	}

	plan.TotalTSS = int(math.Round(tss))
	plan.TotalDistance = math.Round(distance*10) / 10
	plan.TotalTime = minutes
}

// classifyPhase maps current load state to a periodization phase.
func classifyPhase(m domain.TrainingLoadMetrics) domain.PeriodizationPhase {
	switch {
	case m.Balance < phaseRecoveryBalance:
		return domain.PhaseRecovery
	case m.Chronic < phaseBaseChronic:
		return domain.PhaseBase
	case m.Chronic > phasePeakChronic:
		return domain.PhasePeak
	default:
		return domain.PhaseBuild
	}
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -mondayIndex(d))
}
