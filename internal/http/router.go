// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/shadewithin/go-invoice-backend/internal/auth"
	"github.com/shadewithin/go-invoice-backend/internal/cache"
	"github.com/shadewithin/go-invoice-backend/internal/config"
	"github.com/shadewithin/go-invoice-backend/internal/domain"
	"github.com/shadewithin/go-invoice-backend/internal/http/handlers"
	"github.com/shadewithin/go-invoice-backend/internal/http/middleware"
	"github.com/shadewithin/go-invoice-backend/internal/repo"
	"github.com/shadewithin/go-invoice-backend/internal/services"
)

// invoiceRepoShim adapts the repository free functions to the
// services.InvoiceRepo gateway interface. This keeps the orchestrator
// decoupled from the concrete repo package while reusing its functions.
type invoiceRepoShim struct{}

// CreateInvoice proxies repo.CreateInvoice.
func (invoiceRepoShim) CreateInvoice(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	return repo.CreateInvoice(ctx, db, inv)
}

// UpdateInvoice proxies repo.UpdateInvoice.
func (invoiceRepoShim) UpdateInvoice(ctx context.Context, db *gorm.DB, id, customerID string, amount int64, status string) error {
	return repo.UpdateInvoice(ctx, db, id, customerID, amount, status)
}

// DeleteInvoice proxies repo.DeleteInvoice.
func (invoiceRepoShim) DeleteInvoice(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteInvoice(ctx, db, id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs (bodies never logged)
//  4. Recovery: capture panics after logger
//  5. Body size limiter + gzip
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, views *cache.Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (64 KiB; the API only accepts small forms)
	r.Use(limitBody(64 << 10))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
	r.Use(rl.Handler())

	// 8) CORS posture (allow all when no origins configured)
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Location"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db/cache
	invSvc := services.NewInvoiceService(db, invoiceRepoShim{}, views)
	authSvc := &services.AuthService{
		Auth: &auth.CredentialsAuthenticator{DB: db, RedirectTo: cfg.LoginRedirect},
	}
	dashSvc := &services.DashboardService{DB: db}
	h := handlers.New(invSvc, authSvc, dashSvc, views)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Credential gate
		api.POST("/login", h.Login)

		// Invoice mutation pipeline
		api.POST("/invoices", h.CreateInvoice)
		api.PUT("/invoices/:id", h.UpdateInvoice)
		api.DELETE("/invoices/:id", h.DeleteInvoice)

		// Read side
		api.GET("/invoices", h.ListInvoices)
		api.GET("/invoices/:id", h.GetInvoice)
		api.GET("/customers", h.ListCustomers)
		api.GET("/dashboard", h.Dashboard)
	}
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader; oversized bodies error on read downstream.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
