package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/craftboard/internal/eventlog"
	"github.com/osse101/craftboard/internal/handler"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/metrics"
	"github.com/osse101/craftboard/internal/sse"
)

// Options wires a Server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Game           handler.Game
	// Events serves /api/v1/events; nil leaves the route unmounted
	Events eventlog.Service
	// Pinger backs /readyz; nil is always ready
	Pinger handler.Pinger
	// Stream serves /api/v1/events/stream; nil leaves the route unmounted
	Stream *sse.Hub
}

// Server is the HTTP front of a game session
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	handler.InitValidator()

	r := chi.NewRouter()

	// Chi middleware executes in the order defined, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Unversioned operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Pinger))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	game := opts.Game
	boards := handler.NewBoardHandler(game)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(game))
			r.Get("/{id}", handler.HandleGetItem(game))
			r.Get("/{id}/recipes", handler.HandleGetItemRecipes(game))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(game))
			r.Get("/{id}", handler.HandleGetRecipe(game))
		})

		r.Route("/board", func(r chi.Router) {
			r.Get("/", boards.GetBoard)
			r.Post("/spawn", boards.Spawn)
			r.Post("/move", boards.Move)
			r.Post("/combine", boards.Combine)
			r.Post("/recycle", boards.Recycle)
			r.Delete("/{handle}", boards.Remove)
		})

		r.Get("/hints", handler.HandleGetHintStatus(game))
		r.Post("/hints", handler.HandleRequestHint(game))
		r.Get("/stats", handler.HandleGetStats(game))
		r.Get("/tips", handler.HandleGetTips(game))

		if opts.Events != nil {
			r.Get("/events", handler.HandleRecentEvents(opts.Events))
		}
		if opts.Stream != nil {
			r.Get("/events/stream", sse.Handler(opts.Stream))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reset", handler.HandleReset(game))
			r.Post("/unlock", handler.HandleSetUnlock(game))
			r.Post("/hint", handler.HandleSetHint(game))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the routed handler, for tests and embedding
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
		statusCode:     http.StatusOK,
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

// Unwrap lets http.ResponseController reach the underlying writer
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// loggingMiddleware tags the request context with a request id and logs
// start and completion. Secret headers are redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
