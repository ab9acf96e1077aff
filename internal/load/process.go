package load

import (
	"sort"
	"time"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// Sessions shorter than this carry no meaningful training stress.
const minSessionSeconds = 5 * 60

// ProcessActivities turns raw sessions into one TrainingLoadPoint per local
// calendar day, sorted ascending by date. Sessions under five minutes are
// dropped; a day with multiple sessions sums load fields, averages
// physiological fields, and keeps the longest session as its summary.
func ProcessActivities(activities []domain.Activity, thresholds domain.AthleteThresholds) []domain.TrainingLoadPoint {
	type dayAgg struct {
		point      domain.TrainingLoadPoint
		hrSum      float64
		hrCount    int
		powerSum   float64
		powerCount int
		longest    int
	}

	days := make(map[string]*dayAgg)

	for i := range activities {
		a := &activities[i]
		if a.MovingTime < minSessionSeconds {
			continue
		}

		key := a.LocalDate()
		agg, ok := days[key]
		if !ok {
			date, err := time.Parse("2006-01-02", key)
			if err != nil {
				continue
			}
			agg = &dayAgg{point: domain.TrainingLoadPoint{Date: date}}
			days[key] = agg
		}

		agg.point.TRIMP += int(TRIMP(a, thresholds))
		agg.point.TSS += int(TSS(a, thresholds))
		agg.point.Load += int(NormalizedLoad(a, thresholds))
		agg.point.Duration += a.MovingTime

		if a.AverageHeartRate != nil {
			agg.hrSum += *a.AverageHeartRate
			agg.hrCount++
		}
		if a.AveragePower != nil {
			agg.powerSum += *a.AveragePower
			agg.powerCount++
		}

		if a.MovingTime > agg.longest {
			agg.longest = a.MovingTime
			agg.point.ActivityName = a.Name
			agg.point.SportType = a.SportType
		}
	}

	points := make([]domain.TrainingLoadPoint, 0, len(days))
	for _, agg := range days {
		if agg.hrCount > 0 {
			avg := agg.hrSum / float64(agg.hrCount)
			agg.point.AverageHeartRate = &avg
		}
		if agg.powerCount > 0 {
			avg := agg.powerSum / float64(agg.powerCount)
			agg.point.AveragePower = &avg
		}
		points = append(points, agg.point)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}
