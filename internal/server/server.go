package server

import (
	"time"

	"corlog/internal/cache"
	"corlog/internal/config"
	"corlog/internal/contacts"
	"corlog/internal/database"
	"corlog/internal/dedup"
	"corlog/internal/email"
	"corlog/internal/handlers"
	"corlog/internal/openai"
	"corlog/internal/pipeline"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo      *echo.Echo
	db        *sqlx.DB
	config    *config.Config
	logger    zerolog.Logger
	cache     *cache.Cache
	store     *database.Store
	formatter *pipeline.Formatter
	matcher   *contacts.Matcher
	detector  *dedup.Detector
	alerts    *email.AlertService
}

// New creates a new server instance and wires the pipeline collaborators.
func New(cfg *config.Config, db *sqlx.DB, logger zerolog.Logger) *Server {
	s := &Server{
		config: cfg,
		db:     db,
		logger: logger,
		cache:  cache.New(),
	}

	if db != nil {
		s.store = database.NewStore(db)
		s.detector = dedup.NewDetector(s.store, logger)
	}

	// A missing API key degrades formatting, not the whole service: saves
	// still land with formatting_status=failed.
	chat, err := openai.NewClient(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("Formatting service unavailable, entries will be saved unformatted")
		s.formatter = pipeline.NewFormatter(nil, logger)
	} else {
		s.formatter = pipeline.NewFormatter(chat, logger)
	}

	s.matcher = contacts.NewMatcher(cfg.SelfAlias)

	if cfg.EnableFailureAlert && cfg.SendGridAPIKey != "" {
		s.alerts = email.NewAlertService(cfg.SendGridAPIKey, cfg.OpsAlertEmail)
	}

	return s
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	// API group with /api prefix
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints (keep at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/db", handlers.DBHealthHandler(s.db))

	api.GET("/", handlers.RootHandler(s.config.Version))

	correspondence := api.Group("/correspondence")
	correspondence.POST("/detect-thread", handlers.DetectThreadHandler())
	correspondence.POST("/format", handlers.FormatHandler(s.formatter))
	correspondence.POST("/check-duplicate", handlers.CheckDuplicateHandler(s.detector))
	correspondence.POST("/save", handlers.SaveHandler(handlers.SaveDeps{
		Store:     s.store,
		Formatter: s.formatter,
		Matcher:   s.matcher,
		Detector:  s.detector,
		Cache:     s.cache,
		Alerts:    s.alerts,
		Config:    s.config,
		Logger:    s.logger,
	}))

	api.POST("/contacts/extract", handlers.ExtractContactsHandler())
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
