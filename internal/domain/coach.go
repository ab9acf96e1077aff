package domain

// CoachContext is the structured snapshot handed to the LLM coach: current
// load state, the recent daily series, active goals, and the weekly plan.
type CoachContext struct {
	Metrics    TrainingLoadMetrics `json:"metrics"`
	Points     []TrainingLoadPoint `json:"points"`
	Goals      []Goal              `json:"goals"`
	Plan       *WeeklyWorkoutPlan  `json:"plan,omitempty"`
	Thresholds AthleteThresholds   `json:"thresholds"`
}

// CoachSummary is the LLM-generated narrative over the athlete's numbers.
// @Description Plain-language training summary with observations and guidance.
type CoachSummary struct {
	// 2-3 sentence plain-language summary of the current training state
	Summary string `json:"summary"`
	// Bullet observations about trends in the numbers
	Observations []string `json:"observations"`
	// Concrete, non-medical training suggestions
	Guidance []string `json:"guidance"`
}
