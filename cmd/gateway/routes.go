package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/advisor"
	api "github.com/mind-engage/mindengage-advisor/internal/api/http"
	auth "github.com/mind-engage/mindengage-advisor/internal/auth/middleware"
	"github.com/mind-engage/mindengage-advisor/internal/config"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
	"github.com/mind-engage/mindengage-advisor/internal/metrics"
	"github.com/mind-engage/mindengage-advisor/internal/rbac"
)

type deps struct {
	cfg     config.Config
	authSvc *auth.AuthService
	users   auth.UserStore
	store   academic.Store
	advisor *advisor.Service
	metrics *metrics.Metrics // nil disables /metrics
	db      api.Pinger
	events  api.EventLister // nil disables /events
}

func newRouter(d deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, logging.RequestLogger, middleware.Recoverer)
	if d.metrics != nil {
		r.Use(d.metrics.Middleware)
	}
	r.Use(middleware.Timeout(d.cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if d.cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(d.cfg.RateLimitPerMinute, time.Minute))
	}

	r.Get("/healthz", api.HealthHandler())
	r.Get("/readyz", api.ReadyHandler(d.db))
	if d.metrics != nil {
		r.Handle("/metrics", d.metrics.Handler())
	}

	// Local login (enabled in offline mode by default; can be enabled online via env)
	if d.cfg.EnableLocalAuth {
		r.Route("/auth", func(ar chi.Router) {
			ar.Use(httprate.LimitByIP(20, time.Minute))
			ar.Post("/login", auth.LoginHandler(d.authSvc, d.users))
			ar.Post("/register", auth.RegisterHandler(d.authSvc, d.users, d.store))
		})
	}

	// Protected API (JWT → role from users table → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(d.authSvc))
		pr.Use(auth.AttachRoleFromDB(d.users, d.cfg.Mode == config.ModeOffline))

		pr.With(rbac.Require(rbac.PermRecommendations)).
			Get("/recommendations", api.RecommendationsHandler(d.advisor))
		pr.With(rbac.Require(rbac.PermPredictions)).
			Post("/predictions", api.PredictionHandler(d.advisor))

		pr.Route("/students/me", func(sr chi.Router) {
			sr.With(rbac.Require(rbac.PermProfileView)).Get("/", api.GetProfileHandler(d.advisor))
			sr.With(rbac.Require(rbac.PermProfileEdit)).Put("/", api.UpdateProfileHandler(d.advisor, d.store))

			sr.With(rbac.Require(rbac.PermProfileView)).Get("/preferences", api.GetPreferencesHandler(d.advisor, d.store))
			sr.With(rbac.Require(rbac.PermProfileEdit)).Put("/preferences", api.PutPreferencesHandler(d.advisor, d.store))

			sr.With(rbac.Require(rbac.PermProfileView)).Get("/disability", api.GetDisabilityHandler(d.advisor, d.store))
			sr.With(rbac.Require(rbac.PermProfileEdit)).Put("/disability", api.PutDisabilityHandler(d.advisor, d.store))

			sr.With(rbac.Require(rbac.PermGradesView)).Get("/grades", api.ListGradesHandler(d.advisor))
			sr.With(rbac.Require(rbac.PermGradesAdd)).Post("/grades", api.AddGradeHandler(d.advisor))

			sr.With(rbac.Require(rbac.PermPeers)).Get("/peers", api.PeersHandler(d.advisor, d.cfg.PeerLimit))
		})

		pr.With(rbac.RequireAny(rbac.PermCourseView, rbac.PermCourseCreate)).
			Get("/courses", api.ListCoursesHandler(d.store))
		pr.With(rbac.RequireAny(rbac.PermCourseView, rbac.PermCourseCreate)).
			Get("/courses/{courseID}", api.GetCourseHandler(d.store))
		pr.With(rbac.Require(rbac.PermCourseCreate)).
			Post("/courses", api.CreateCourseHandler(d.store))

		if d.events != nil {
			pr.With(rbac.Require(rbac.PermEventsView)).Get("/events", api.EventsHandler(d.events))
		}
	})

	return r
}
