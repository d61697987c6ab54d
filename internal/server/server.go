package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/OwoSlots_Go/internal/handler"
	"github.com/osse101/OwoSlots_Go/internal/logger"
	"github.com/osse101/OwoSlots_Go/internal/metrics"
	"github.com/osse101/OwoSlots_Go/internal/sse"
	"github.com/osse101/OwoSlots_Go/internal/stats"
)

// Config holds the HTTP surface settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	AllowedOrigins []string
	ServiceName    string
	Version        string
}

// Dependencies are the components the routes serve
type Dependencies struct {
	Ledger      handler.Ledger
	Machine     handler.Machine
	Idempotency *handler.IdempotencyCache
	Hub         *sse.Hub
	Stats       stats.Service
	Readiness   []handler.HealthChecker
}

// Server is the slots HTTP API
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Dependencies) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	tracker := NewActivityTracker()

	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", HeaderAPIKey, handler.HeaderIdempotencyKey},
		ExposedHeaders:   []string{HeaderRequestID, handler.HeaderIdempotentReplay},
		AllowCredentials: false,
		MaxAge:           CORSMaxAgeSeconds,
	}))
	if cfg.APIKey != "" {
		r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, tracker))
	} else {
		slog.Warn(LogMsgAuthDisabled)
	}
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, tracker))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Readiness...))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(cfg.ServiceName, cfg.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	slotsHandler := handler.NewSlotsHandler(deps.Ledger, deps.Machine, deps.Idempotency)
	balanceHandler := handler.NewBalanceHandler(deps.Ledger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/slots", func(r chi.Router) {
			r.Post("/spin", slotsHandler.HandleSpin)
			r.Post("/simulate", slotsHandler.HandleSimulate)
		})

		r.Get("/paytable", slotsHandler.HandleGetPaytable)

		r.Route("/wager", func(r chi.Router) {
			r.Post("/clamp", slotsHandler.HandleClampWager)
			r.Get("/presets", slotsHandler.HandleGetPresets)
		})

		r.Route("/balance", func(r chi.Router) {
			r.Get("/", balanceHandler.HandleGetBalance)
			r.Post("/adjust", balanceHandler.HandleAdjustBalance)
			r.Post("/set", balanceHandler.HandleSetBalance)
		})
		r.Get("/history", balanceHandler.HandleGetHistory)

		if deps.Stats != nil {
			statsHandler := handler.NewStatsHandler(deps.Stats)
			r.Get("/stats", statsHandler.HandleGetStats)
			r.Post("/stats/reset", statsHandler.HandleResetStats)
		}

		// Live ledger events and reveal frames
		if deps.Hub != nil {
			r.Get("/events", sse.Handler(deps.Hub))
		}
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	// open event streams never go idle, so close them when shutdown starts
	if deps.Hub != nil {
		httpServer.RegisterOnShutdown(deps.Hub.Stop)
	}

	return &Server{
		httpServer: httpServer,
		router:     r,
	}
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the event stream push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if hasPathPrefix(r.URL.Path, QuietPaths) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server. It returns nil once Shutdown has been called.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
