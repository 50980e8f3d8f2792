package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salesdash/api/internal/auth"
	"github.com/salesdash/api/internal/service"
	"github.com/salesdash/api/pkg/health"
	"github.com/salesdash/api/pkg/middleware"
)

// RouterConfig carries the collaborators the router wires together.
type RouterConfig struct {
	AuthService      *service.AuthService
	ProductService   *service.ProductService
	ContactService   *service.ContactService
	DashboardService *service.DashboardService
	JWTManager       *auth.JWTManager
	HealthHandler    *health.Handler
	Logger           *slog.Logger
	CORS             middleware.CORSConfig
}

// NewRouter creates a chi router with all salesdash routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("salesdash"))

	// Health check endpoints
	r.Get("/health/live", cfg.HealthHandler.LivenessHandler())
	r.Get("/health/ready", cfg.HealthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Auth endpoints (public)
	authHandler := NewAuthHandler(cfg.AuthService, cfg.Logger)
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Token verifier that bridges to the internal JWTManager.
	verifier := func(token string) (*middleware.Claims, error) {
		claims, err := cfg.JWTManager.Verify(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
		}, nil
	}

	productHandler := NewProductHandler(cfg.ProductService, cfg.Logger)
	contactHandler := NewContactHandler(cfg.ContactService, cfg.Logger)
	dashboardHandler := NewDashboardHandler(cfg.DashboardService, cfg.Logger)

	// Protected resource endpoints
	r.Route("/api", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.Auth(verifier))
		r.Use(middleware.RequestLogger(cfg.Logger))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", productHandler.Create)
			r.Get("/", productHandler.List)
			r.Delete("/", productHandler.DeleteAll)
			r.Get("/{id}", productHandler.GetByID)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", contactHandler.Create)
			r.Get("/", contactHandler.List)
			r.Get("/{id}", contactHandler.GetByID)
			r.Put("/{id}", contactHandler.Update)
			r.Delete("/{id}", contactHandler.Delete)
		})

		r.Get("/dashboard/summary", dashboardHandler.Summary)
	})

	return r
}
