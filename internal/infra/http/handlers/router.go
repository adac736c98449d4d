package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/imobi/internal/infra/http/middleware"
)

type Router struct {
	AllowedOrigins []string

	// TrustProxyHeaders liga o chimw.RealIP; só deve ser true atrás de um proxy
	// que sobrescreve X-Forwarded-For e X-Real-IP.
	TrustProxyHeaders bool

	// CommissionLimiter é compartilhado entre chamadas de Handler; quem o cria
	// roda Run para a limpeza.
	CommissionLimiter *RateLimiter

	Health      *HealthHandler
	Dashboard   *DashboardHandler
	FollowUps   *FollowUpHandler
	Collections *CollectionsHandler
	Commission  *CommissionHandler
	Webhook     *WhatsAppWebhookHandler
}

func (rt Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if rt.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.TenantHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if rt.Health != nil {
		r.Get("/health", rt.Health.Handle)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/webhooks/whatsapp", rt.Webhook.HandleVerify)
	r.Post("/webhooks/whatsapp", rt.Webhook.Handle)

	limiter := rt.CommissionLimiter
	if limiter == nil {
		limiter = NewRateLimiter(60, time.Minute)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Tenant)
		r.Use(chimw.Timeout(30 * time.Second))

		r.Get("/dashboard", rt.Dashboard.Handle)
		r.Get("/dashboard/pendencies", rt.Dashboard.HandlePendencies)

		r.Get("/follow-ups", rt.FollowUps.HandleList)
		r.Post("/follow-ups", rt.FollowUps.HandleCreate)
		r.Post("/follow-ups/{id}/complete", rt.FollowUps.HandleComplete)

		r.Get("/leads", rt.Collections.HandleLeads())
		r.Get("/visits", rt.Collections.HandleVisits())
		r.Get("/contracts", rt.Collections.HandleContracts())
		r.Get("/properties", rt.Collections.HandleProperties())

		r.With(limiter.Middleware).
			Post("/commissions/calculate", rt.Commission.Handle)
	})

	return r
}
