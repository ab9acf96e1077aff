package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 60

// Run seeds the database with sample athletes and activity history. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Athlete{}, &domain.Activity{}, &domain.Goal{}, &domain.WeeklyWorkoutPlan{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	ftp := 265.0
	maxHR := 192.0
	athletes := []domain.Athlete{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", FTP: &ftp},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", MaxHeartRate: &maxHR},
	}

	for _, athlete := range athletes {
		if err := db.Where("id = ?", athlete.ID).FirstOrCreate(&athlete).Error; err != nil {
			return fmt.Errorf("failed to create athlete %s: %w", athlete.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, athlete := range athletes {
		if err := seedActivitiesForAthlete(db, athlete, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedActivitiesForAthlete(db *gorm.DB, athlete domain.Athlete, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		// Roughly one rest day per week.
		if i%7 == 6 {
			continue
		}
		date := now.AddDate(0, 0, -i)
		start := time.Date(date.Year(), date.Month(), date.Day(), 6+rng.Intn(12), rng.Intn(60), 0, 0, time.UTC)

		activity := buildActivity(athlete.ID, start, i, rng)
		activity.Timezone = athlete.Timezone

		if err := db.Where("athlete_id = ? AND start_date = ?", athlete.ID, start).
			FirstOrCreate(&activity).Error; err != nil {
			return fmt.Errorf("failed to create activity: %w", err)
		}
	}
	return nil
}

func buildActivity(athleteID uuid.UUID, start time.Time, dayOffset int, rng *rand.Rand) domain.Activity {
	switch dayOffset % 3 {
	case 0:
		hr := 140 + float64(rng.Intn(25))
		peak := hr + 20 + float64(rng.Intn(15))
		durationSec := (40 + rng.Intn(50)) * 60
		return domain.Activity{
			AthleteID:        athleteID,
			Name:             "Morning Run",
			SportType:        domain.SportRun,
			StartDate:        start,
			MovingTime:       durationSec,
			Distance:         float64(durationSec) * (2.5 + rng.Float64()),
			AverageHeartRate: &hr,
			MaxHeartRate:     &peak,
		}
	case 1:
		hr := 130 + float64(rng.Intn(25))
		avgPower := 180 + float64(rng.Intn(60))
		weighted := avgPower * 1.04
		durationSec := (60 + rng.Intn(90)) * 60
		return domain.Activity{
			AthleteID:        athleteID,
			Name:             "Endurance Ride",
			SportType:        domain.SportRide,
			StartDate:        start,
			MovingTime:       durationSec,
			Distance:         float64(durationSec) * (7 + 2*rng.Float64()),
			AverageHeartRate: &hr,
			AveragePower:     &avgPower,
			WeightedPower:    &weighted,
		}
	default:
		rpe := 5 + rng.Intn(4)
		exerciseType := domain.ExerciseStrength
		return domain.Activity{
			AthleteID:         athleteID,
			Name:              "Strength Session",
			SportType:         domain.SportWeightTraining,
			StartDate:         start,
			MovingTime:        (35 + rng.Intn(25)) * 60,
			PerceivedExertion: &rpe,
			ExerciseType:      &exerciseType,
		}
	}
}
