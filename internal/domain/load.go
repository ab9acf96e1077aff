package domain

import "time"

// LoadStatus is the coarse training state derived from load metrics.
// @Description Training state: peak, build, maintain, or recover.
type LoadStatus string

const (
	LoadStatusPeak     LoadStatus = "peak"
	LoadStatusBuild    LoadStatus = "build"
	LoadStatusMaintain LoadStatus = "maintain"
	LoadStatusRecover  LoadStatus = "recover"
)

// TrainingLoadPoint is the aggregated load for one calendar day. A day with
// multiple sessions collapses into a single point: load fields are summed,
// physiological fields averaged, and the longest session supplies the summary.
type TrainingLoadPoint struct {
	Date time.Time `json:"date"`
	// Banister training impulse summed over the day's sessions
	TRIMP int `json:"trimp"`
	// Training stress score summed over the day's sessions
	TSS int `json:"tss"`
	// Normalized load (0-100 per session) summed over the day's sessions
	Load int `json:"load"`

	// Representative-activity summary (longest session of the day)
	ActivityName string    `json:"activity_name"`
	SportType    SportType `json:"sport_type"`
	// Total moving time across the day's sessions, seconds
	Duration int `json:"duration"`
	// Heart rate / power averaged across sessions that reported them
	AverageHeartRate *float64 `json:"average_heart_rate,omitempty"`
	AveragePower     *float64 `json:"average_power,omitempty"`
}

// TrainingLoadMetrics is the rolling load state derived from an ordered
// series of daily points. Recomputed fresh on every call.
// @Description Acute/chronic training load with status classification.
type TrainingLoadMetrics struct {
	// 7-day exponentially weighted load ("fatigue")
	Acute float64 `json:"acute" example:"62.4"`
	// 42-day exponentially weighted load ("fitness")
	Chronic float64 `json:"chronic" example:"55.1"`
	// Chronic minus acute ("form"); negative when fatigued
	Balance float64 `json:"balance" example:"-7.3"`
	// Week-over-week change in average daily load
	RampRate float64 `json:"ramp_rate" example:"4.2"`
	// Coarse training state
	Status LoadStatus `json:"status" example:"build"`
	// Human-readable guidance for the current state
	Recommendation string `json:"recommendation"`
}

// TrainingLoadResponse is the response body for the training-load endpoint.
// @Description Daily load series plus rolling metrics and resolved thresholds.
type TrainingLoadResponse struct {
	Points     []TrainingLoadPoint `json:"points"`
	Metrics    TrainingLoadMetrics `json:"metrics"`
	Thresholds AthleteThresholds   `json:"thresholds"`
	WindowDays int                 `json:"window_days" example:"90"`
}
