package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/karltiama/endurorevamp-sub001/docs"
	"github.com/karltiama/endurorevamp-sub001/internal/api/handler"
	"github.com/karltiama/endurorevamp-sub001/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	athleteHandler      *handler.AthleteHandler
	activityHandler     *handler.ActivityHandler
	goalHandler         *handler.GoalHandler
	trainingLoadHandler *handler.TrainingLoadHandler
	workoutHandler      *handler.WorkoutHandler
	coachHandler        *handler.CoachHandler
}

func NewRouter(
	athleteHandler *handler.AthleteHandler,
	activityHandler *handler.ActivityHandler,
	goalHandler *handler.GoalHandler,
	trainingLoadHandler *handler.TrainingLoadHandler,
	workoutHandler *handler.WorkoutHandler,
	coachHandler *handler.CoachHandler,
) *Router {
	return &Router{
		athleteHandler:      athleteHandler,
		activityHandler:     activityHandler,
		goalHandler:         goalHandler,
		trainingLoadHandler: trainingLoadHandler,
		workoutHandler:      workoutHandler,
		coachHandler:        coachHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/athletes", func(r chi.Router) {
			r.Post("/", rt.athleteHandler.Create)
			r.Get("/{athleteId}", rt.athleteHandler.GetByID)
			r.Put("/{athleteId}", rt.athleteHandler.Update)

			r.Route("/{athleteId}/activities", func(r chi.Router) {
				r.Post("/", rt.activityHandler.Create)
				r.Get("/", rt.activityHandler.List)
				r.Delete("/{activityId}", rt.activityHandler.Delete)
			})

			r.Route("/{athleteId}/goals", func(r chi.Router) {
				r.Put("/", rt.goalHandler.Upsert)
				r.Get("/", rt.goalHandler.List)
				r.Delete("/{goalType}", rt.goalHandler.Delete)
			})

			r.Get("/{athleteId}/training-load", rt.trainingLoadHandler.Get)

			r.Post("/{athleteId}/workouts/today", rt.workoutHandler.Today)

			r.Route("/{athleteId}/plans", func(r chi.Router) {
				r.Post("/", rt.workoutHandler.GeneratePlan)
				r.Get("/current", rt.workoutHandler.CurrentPlan)
				r.Post("/reset", rt.workoutHandler.ResetPlan)
				r.Put("/{planId}/days/{day}", rt.workoutHandler.UpdatePlanDay)
			})

			r.Post("/{athleteId}/coach/summary", rt.coachHandler.Summarize)
		})
	})

	return r
}
