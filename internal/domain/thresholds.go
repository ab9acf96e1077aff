package domain

// AthleteThresholds is the resolved per-athlete calibration used by one
// calculation pass. Values are always present: explicit profile values win,
// otherwise they are estimated from activity history, otherwise the named
// defaults below apply. Immutable once resolved.
type AthleteThresholds struct {
	MaxHeartRate     float64  `json:"max_heart_rate"`
	RestingHeartRate float64  `json:"resting_heart_rate"`
	// Lactate threshold heart rate; defaults to 85% of max HR
	LactateThreshold float64  `json:"lactate_threshold"`
	FTP              *float64 `json:"ftp,omitempty"`
	WeightKg         *float64 `json:"weight_kg,omitempty"`
	// True when HR thresholds were estimated rather than taken from the profile
	Estimated bool `json:"estimated"`
}

// Default calibration applied when an athlete has no profile values and no
// usable history. Kept as named constants so bulk jobs and estimation
// fallbacks agree on the same numbers.
const (
	DefaultMaxHeartRate     = 190.0
	DefaultRestingHeartRate = 60.0
	DefaultFTP              = 250.0
	// LactateThresholdFraction of max HR when no explicit value exists
	LactateThresholdFraction = 0.85
)

// DefaultThresholds returns the global fallback calibration.
func DefaultThresholds() AthleteThresholds {
	return AthleteThresholds{
		MaxHeartRate:     DefaultMaxHeartRate,
		RestingHeartRate: DefaultRestingHeartRate,
		LactateThreshold: DefaultMaxHeartRate * LactateThresholdFraction,
		Estimated:        true,
	}
}
