package planner

import (
	"fmt"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// Distance progress below this fraction calls for volume over intensity.
const volumeProgressCutoff = 50.0

// goalWorkout synthesizes a session aligned with the athlete's highest
// priority active, incomplete goal: distance first, pace second, frequency
// last. Returns nil when no such goal exists.
func goalWorkout(ctx *domain.PlanningContext) *domain.WorkoutRecommendation {
	goal := pickGoal(ctx.Goals)
	if goal == nil {
		return nil
	}

	pct := goal.ProgressPercent()

	var rec *domain.WorkoutRecommendation
	switch goal.Type {
	case domain.GoalDistance:
		if pct < volumeProgressCutoff {
			rec = buildWorkout(domain.WorkoutLong, ctx,
				fmt.Sprintf("You're at %.0f%% of your %.0f km distance goal — building volume with a long session.", pct, goal.Target))
		} else {
			rec = buildWorkout(domain.WorkoutTempo, ctx,
				fmt.Sprintf("Distance goal is %.0f%% done — shifting to quality with a tempo session.", pct))
		}
	case domain.GoalPace:
		rec = buildWorkout(domain.WorkoutInterval, ctx,
			fmt.Sprintf("Chasing your pace goal (%.0f%% there) — intervals sharpen speed fastest.", pct))
	case domain.GoalFrequency:
		rec = buildWorkout(domain.WorkoutEasy, ctx,
			fmt.Sprintf("Your frequency goal is at %.0f%% — an easy session keeps the streak going without adding strain.", pct))
	default:
		return nil
	}

	rec.GoalNote = fmt.Sprintf("Aligned with your %s goal: %.1f of %.1f (%.0f%%).",
		goal.Type, goal.Current, goal.Target, pct)
	return rec
}

// pickGoal returns the highest priority active, incomplete goal.
func pickGoal(goals []domain.Goal) *domain.Goal {
	priority := []domain.GoalType{domain.GoalDistance, domain.GoalPace, domain.GoalFrequency}
	for _, want := range priority {
		for i := range goals {
			g := &goals[i]
			if g.Type == want && g.Active && !g.Complete() {
				return g
			}
		}
	}
	return nil
}
