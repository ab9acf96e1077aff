package planner

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// Weather adjustment thresholds.
const (
	hotTemperature   = 25.0 // °C
	coldTemperature  = 5.0  // °C
	wetPrecipitation = 0.5  // mm
	strongWind       = 20.0 // km/h

	hotDurationCap    = 45 // minutes
	coldWarmupMinutes = 5
)

// ApplyWeather adjusts a built recommendation for current conditions. All
// adjustments are non-destructive: intensity never drops below 1 and the
// workout itself is never removed, only tempered or annotated.
func ApplyWeather(rec *domain.WorkoutRecommendation, w *domain.WeatherSnapshot) {
	if rec == nil || w == nil {
		return
	}

	var notes []string

	if w.Temperature > hotTemperature {
		lowerIntensity(rec)
		if rec.Duration > hotDurationCap {
			rec.Duration = hotDurationCap
		}
		notes = append(notes, fmt.Sprintf("It's %.0f°C — intensity eased and duration capped at %d minutes. Hydrate early.", w.Temperature, hotDurationCap))
	}

	if w.Temperature < coldTemperature {
		rec.Duration += coldWarmupMinutes
		notes = append(notes, fmt.Sprintf("Cold out (%.0f°C) — extra warm-up added. Layer up and cover your hands.", w.Temperature))
	}

	if w.Precipitation > wetPrecipitation {
		lowerIntensity(rec)
		notes = append(notes, "Wet conditions — effort eased; watch footing on corners and painted lines.")
	}

	if w.WindSpeed > strongWind {
		indoor := *rec
		indoor.ID = uuid.New()
		indoor.Sport = domain.SportWorkout
		indoor.Type = domain.WorkoutCrossTraining
		indoor.Distance = nil
		indoor.Alternatives = nil
		indoor.Reasoning = "Indoor alternative for high wind."
		rec.Alternatives = append(rec.Alternatives, indoor)
		notes = append(notes, fmt.Sprintf("Wind at %.0f km/h — consider the indoor alternative, or start into the wind and finish with it.", w.WindSpeed))
	}

	if len(notes) > 0 {
		rec.WeatherNote = strings.Join(notes, " ")
	}
}

func lowerIntensity(rec *domain.WorkoutRecommendation) {
	if rec.Intensity > 1 {
		rec.Intensity--
	}
}
