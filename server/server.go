// Package server exposes MARCXML conversion over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lehigh-university-libraries/marcwalk/mapping"
	"github.com/lehigh-university-libraries/marcwalk/profile"
)

// DefaultListen is the address used when none is configured.
const DefaultListen = ":8080"

// maxBodySize caps the MARCXML accepted by a single convert request.
const maxBodySize = 64 << 20

// Config holds the server settings.
type Config struct {
	// Listen is the host:port to bind
	Listen string

	// Version is reported by /version
	Version string

	// ResolveProfile looks up a named output profile; profile.Resolve when nil
	ResolveProfile func(name string) (*mapping.Profile, error)

	// RateLimit is the sustained requests per second allowed per client on
	// /api; zero disables limiting
	RateLimit float64

	// RateBurst is the number of requests a client may make at once
	RateBurst int

	// Profiling mounts net/http/pprof under /debug/pprof
	Profiling bool
}

// Server is the HTTP front end for the converter.
type Server struct {
	config  Config
	router  *gin.Engine
	metrics *metrics
}

// New builds a server with its routes registered.
func New(cfg Config) *Server {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.ResolveProfile == nil {
		cfg.ResolveProfile = profile.Resolve
	}

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config:  cfg,
		router:  gin.New(),
		metrics: newMetrics(prometheus.NewRegistry()),
	}

	s.router.Use(gin.Recovery(), requestLogger())
	s.router.Use(gzip.Gzip(gzip.DefaultCompression))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	s.router.Use(cors.New(corsCfg))

	// the gzip middleware already compresses /metrics
	h := promhttp.InstrumentMetricHandler(s.metrics.registry,
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{DisableCompression: true}))
	s.router.GET("/metrics", gin.WrapH(h))

	s.router.GET("/favicon.ico", ignoreHandler)
	s.router.GET("/version", s.versionHandler)
	s.router.GET("/healthcheck", s.healthCheckHandler)

	if cfg.Profiling {
		pprof.Register(s.router)
	}

	api := s.router.Group("/api")
	if cfg.RateLimit > 0 {
		api.Use(newRateLimiter(cfg.RateLimit, cfg.RateBurst).middleware(s))
	}
	{
		api.GET("/formats", s.formatsHandler)
		api.POST("/convert", s.convertHandler)
	}

	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	slog.Info("starting server", "listen", s.config.Listen, "version", s.config.Version)
	srv := &http.Server{
		Addr:              s.config.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if n, ok := c.Get(recordsKey); ok {
			attrs = append(attrs, "records", n)
		}
		if len(c.Errors) > 0 {
			slog.Error("request failed", append(attrs, "err", c.Errors.Last().Err)...)
			return
		}
		slog.Info("request", attrs...)
	}
}
