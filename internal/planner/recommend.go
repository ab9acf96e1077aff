package planner

import (
	"fmt"
	"time"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// Gate thresholds. The evaluation order in recommendForDate is load-bearing:
// recovery is checked first, then goal alignment, then the weekly pattern.
// Several gates can be open at once and the first match decides.
const (
	// Recovery gate
	recoveryBalanceFloor = -30.0
	recoveryAcuteCeiling = 100.0
	hardSessionLoad      = 80.0
	minRecentSessions    = 3

	// Intensity gate
	intensityBalanceFloor = 0.0
	intensityAcuteCeiling = 70.0

	// Long-workout gate
	longBalanceFloor = -10.0
	longChronicFloor = 70.0
)

// TodaysWorkout decides what the athlete should do today. Returns nil only
// when the context carries no usable date; with a valid context a session is
// always proposed, recovery included.
func TodaysWorkout(ctx *domain.PlanningContext) *domain.WorkoutRecommendation {
	if ctx == nil || ctx.Today.IsZero() {
		return nil
	}

	rec := recommendForDate(ctx, ctx.Today, true)
	ApplyWeather(rec, ctx.Prefs.Weather)
	return rec
}

// recommendForDate runs the decision procedure for one calendar day.
// includeGoals enables the goal-aligned branch, used for the athlete's
// actual "today" rather than projected future days.
func recommendForDate(ctx *domain.PlanningContext, date time.Time, includeGoals bool) *domain.WorkoutRecommendation {
	if needsRecovery(ctx) {
		return buildWorkout(domain.WorkoutRecovery, ctx, recoveryReasoning(ctx))
	}

	if includeGoals {
		if rec := goalWorkout(ctx); rec != nil {
			return rec
		}
	}

	return patternWorkout(ctx, date)
}

// needsRecovery is the recovery gate: only enough recent history can force
// a recovery day. Insufficient data never does.
func needsRecovery(ctx *domain.PlanningContext) bool {
	if len(ctx.RecentActivities) < minRecentSessions {
		return false
	}
	if ctx.Metrics.Balance < recoveryBalanceFloor {
		return true
	}
	if ctx.Metrics.Acute > recoveryAcuteCeiling {
		return true
	}
	return lastSessionsAllHard(ctx.RecentLoads)
}

// lastSessionsAllHard reports whether the three most recent sessions each
// exceeded the hard-session load threshold.
func lastSessionsAllHard(loads []float64) bool {
	if len(loads) < minRecentSessions {
		return false
	}
	for _, l := range loads[:minRecentSessions] {
		if l <= hardSessionLoad {
			return false
		}
	}
	return true
}

func recoveryReasoning(ctx *domain.PlanningContext) string {
	switch {
	case ctx.Metrics.Balance < recoveryBalanceFloor:
		return fmt.Sprintf("Your training balance is %.0f — you're carrying significant fatigue. Today is for recovery.", ctx.Metrics.Balance)
	case ctx.Metrics.Acute > recoveryAcuteCeiling:
		return fmt.Sprintf("Acute load is %.0f, well above a sustainable level. Back off and absorb the work.", ctx.Metrics.Acute)
	default:
		return "Your last three sessions were all hard efforts. Recovery today lets that work stick."
	}
}

// intensityOK is the intensity gate.
func intensityOK(m domain.TrainingLoadMetrics) bool {
	return m.Balance > intensityBalanceFloor && m.Acute < intensityAcuteCeiling
}

// longOK is the long-workout gate.
func longOK(m domain.TrainingLoadMetrics) bool {
	return m.Balance > longBalanceFloor && m.Chronic > longChronicFloor
}

// patternWorkout applies the Monday-based weekly periodization pattern.
// The recovery gate has already been consulted by the time this runs.
func patternWorkout(ctx *domain.PlanningContext, date time.Time) *domain.WorkoutRecommendation {
	m := ctx.Metrics

	switch mondayIndex(date) {
	case 0: // Monday: start the week steady
		return buildWorkout(domain.WorkoutTempo, ctx, "Monday moderate session to open the week.")
	case 1: // Tuesday: quality day when fresh enough
		if intensityOK(m) {
			return buildWorkout(domain.WorkoutInterval, ctx, "You're fresh enough for quality work — Tuesday intervals.")
		}
		return buildWorkout(domain.WorkoutTempo, ctx, "Not quite fresh enough for intervals; steady tempo instead.")
	case 2: // Wednesday: mid-week absorb
		return buildWorkout(domain.WorkoutEasy, ctx, "Mid-week easy day to absorb Tuesday's work.")
	case 3: // Thursday: second quality day
		if intensityOK(m) {
			return buildWorkout(domain.WorkoutThreshold, ctx, "Second quality day of the week — threshold work.")
		}
		return buildWorkout(domain.WorkoutTempo, ctx, "Holding back on intensity; moderate tempo on Thursday.")
	case 4: // Friday: pre-weekend easy
		return buildWorkout(domain.WorkoutEasy, ctx, "Easy Friday ahead of the weekend long session.")
	case 5: // Saturday: long day when the base supports it
		if longOK(m) {
			return buildWorkout(domain.WorkoutLong, ctx, fmt.Sprintf("Chronic load of %.0f supports a long session.", m.Chronic))
		}
		return buildWorkout(domain.WorkoutTempo, ctx, "Base isn't ready for a true long day yet — steady moderate session.")
	default: // Sunday: keep moving
		return buildWorkout(domain.WorkoutEasy, ctx, "Relaxed Sunday session to close the week.")
	}
}

// mondayIndex converts a date to the Monday-based weekday index 0..6.
func mondayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
