package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/virtual-visits-api/internal/application/otp"
	"github.com/virtual-visits-api/internal/application/survey"
	"github.com/virtual-visits-api/internal/config"
	"github.com/virtual-visits-api/internal/transport/http/handler"
	appmiddleware "github.com/virtual-visits-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — the OTP endpoints are the only place
	// an attacker can spend guesses, so they get their own bucket per IP.
	otpRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	otpSvc := otp.NewService(deps.OTPStore, cfg.OTP, time.Now)
	surveySvc := survey.NewService(deps.SurveyRepo)

	healthH := handler.NewHealthHandler()
	otpH := handler.NewOTPHandler(otpSvc)
	surveyH := handler.NewSurveyHandler(surveySvc)
	displayNameH := handler.NewDisplayNameHandler()
	configH := handler.NewClientConfigHandler(cfg.Client)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health-check", healthH.Ping)
		r.Get("/config", configH.Get)

		r.With(otpRL.Limit).Post("/generateOTP", otpH.Generate)
		r.With(otpRL.Limit).Post("/validateOTP", otpH.Validate)

		r.Post("/surveyResults", surveyH.Store)
		r.Post("/validateDisplayName", displayNameH.Validate)
	})

	return r
}
