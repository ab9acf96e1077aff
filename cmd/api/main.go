// EnduroRevamp API
//
// REST API for training load analysis and periodized workout planning.
//
//	@title			EnduroRevamp API
//	@version		1.0
//	@description	Compute training load from recorded activities, track acute/chronic balance, and plan workouts week by week.
//
//	@BasePath	/v1
//
//	@tag.name			athletes
//	@tag.description	Athlete profile and calibration endpoints
//
//	@tag.name			activities
//	@tag.description	Recorded training session endpoints
//
//	@tag.name			goals
//	@tag.description	Training goal endpoints
//
//	@tag.name			training-load
//	@tag.description	Load series and rolling metrics endpoints
//
//	@tag.name			workouts
//	@tag.description	Daily workout recommendation endpoints
//
//	@tag.name			plans
//	@tag.description	Weekly plan generation and editing endpoints
//
//	@tag.name			coach
//	@tag.description	LLM coach summary endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/karltiama/endurorevamp-sub001/internal/api"
	"github.com/karltiama/endurorevamp-sub001/internal/api/handler"
	"github.com/karltiama/endurorevamp-sub001/internal/config"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/karltiama/endurorevamp-sub001/internal/llm"
	"github.com/karltiama/endurorevamp-sub001/internal/repository"
	"github.com/karltiama/endurorevamp-sub001/internal/seed"
	"github.com/karltiama/endurorevamp-sub001/internal/service"
	"github.com/karltiama/endurorevamp-sub001/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "endurorevamp-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Athlete{}, &domain.Activity{}, &domain.Goal{}, &domain.WeeklyWorkoutPlan{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	athleteRepo := repository.NewAthleteRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// Initialize services
	athleteService := service.NewAthleteService(athleteRepo)
	activityService := service.NewActivityService(activityRepo, athleteRepo)
	goalService := service.NewGoalService(goalRepo, athleteRepo)
	loadService := service.NewTrainingLoadService(activityRepo, athleteRepo)
	workoutService := service.NewWorkoutService(loadService, activityRepo, athleteRepo, goalRepo, planRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, coach summary endpoint will be unavailable")
	}

	coachService := service.NewCoachService(loadService, openaiClient, goalRepo, planRepo)

	// Initialize handlers
	athleteHandler := handler.NewAthleteHandler(athleteService)
	activityHandler := handler.NewActivityHandler(activityService)
	goalHandler := handler.NewGoalHandler(goalService)
	trainingLoadHandler := handler.NewTrainingLoadHandler(loadService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	coachHandler := handler.NewCoachHandler(coachService)

	// Setup router
	router := api.NewRouter(athleteHandler, activityHandler, goalHandler, trainingLoadHandler, workoutHandler, coachHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
