package load

import (
	"math"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// EMA time constants in days.
const (
	acuteTimeConstant   = 7.0
	chronicTimeConstant = 42.0

	// Ramp rate needs two full week blocks to compare.
	rampMinPoints = 14
)

// Canned guidance per load status.
var statusRecommendations = map[domain.LoadStatus]string{
	domain.LoadStatusPeak:     "You're peaking. Hold intensity but protect recovery; this state is not sustainable for long.",
	domain.LoadStatusBuild:    "Load is ramping well. Keep building, and watch that the ramp stays gradual.",
	domain.LoadStatusMaintain: "Load is steady. Maintain the current mix or add a quality session if you feel fresh.",
	domain.LoadStatusRecover:  "You're fresher than your baseline. Good time for harder sessions, or keep absorbing recent training.",
}

const emptyHistoryRecommendation = "No recent training found. Start with easy sessions to begin building your training load."

// Metrics derives the rolling load state from an ordered daily series.
// Empty input is a normal state and yields zeroed metrics tagged recover.
func Metrics(points []domain.TrainingLoadPoint) domain.TrainingLoadMetrics {
	if len(points) == 0 {
		return domain.TrainingLoadMetrics{
			Status:         domain.LoadStatusRecover,
			Recommendation: emptyHistoryRecommendation,
		}
	}

	loads := make([]float64, len(points))
	for i, p := range points {
		loads[i] = float64(p.Load)
	}

	acuteWindow := loads
	if len(loads) > 7 {
		acuteWindow = loads[len(loads)-7:]
	}

	acute := ema(acuteWindow, acuteTimeConstant)
	chronic := ema(loads, chronicTimeConstant)
	balance := chronic - acute
	ramp := rampRate(loads)

	status := classify(balance, ramp)

	return domain.TrainingLoadMetrics{
		Acute:          round1(acute),
		Chronic:        round1(chronic),
		Balance:        round1(balance),
		RampRate:       round1(ramp),
		Status:         status,
		Recommendation: statusRecommendations[status],
	}
}

// classify maps balance and ramp rate to a status tag. Evaluation order
// matters: an athlete can satisfy several conditions at once and the first
// match wins.
func classify(balance, ramp float64) domain.LoadStatus {
	switch {
	case balance < -10 && ramp > 5:
		return domain.LoadStatusPeak
	case balance > 5:
		return domain.LoadStatusRecover
	case ramp > 3:
		return domain.LoadStatusBuild
	default:
		return domain.LoadStatusMaintain
	}
}

// ema runs an exponential moving average with alpha = 1/timeConstant,
// seeded with the first value.
func ema(values []float64, timeConstant float64) float64 {
	if len(values) == 0 {
		return 0
	}
	alpha := 1.0 / timeConstant
	v := values[0]
	for _, x := range values[1:] {
		v += alpha * (x - v)
	}
	return v
}

// rampRate is the week-over-week change in average daily load: the mean of
// the last 7 days minus the mean of days 8-14 from the end. Fewer than 14
// points cannot form both blocks and score 0.
func rampRate(loads []float64) float64 {
	if len(loads) < rampMinPoints {
		return 0
	}
	n := len(loads)
	recent := mean(loads[n-7:])
	previous := mean(loads[n-14 : n-7])
	return recent - previous
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
