package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanparkangkor/sanpark-tours-api/config"
	"github.com/sanparkangkor/sanpark-tours-api/internal/cache"
	"github.com/sanparkangkor/sanpark-tours-api/internal/handlers"
	"github.com/sanparkangkor/sanpark-tours-api/internal/mailer"
	"github.com/sanparkangkor/sanpark-tours-api/internal/middleware"
	"github.com/sanparkangkor/sanpark-tours-api/internal/services"
	"github.com/sanparkangkor/sanpark-tours-api/internal/templates"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/logger"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/metrics"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/profiling"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/retry"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the public API routes for a given router group.
// OPTIONS is registered explicitly so probes without an Origin header, which
// the cors middleware passes through, still get a 200.
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, submissionRateLimiter *middleware.RateLimiter,
	bookingHandler *handlers.BookingHandler,
	contactHandler *handlers.ContactHandler,
	toursHandler *handlers.ToursHandler,
) {
	group.POST("/bookings", submissionRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), bookingHandler.SubmitBooking)
	group.OPTIONS("/bookings", handlers.Options)

	group.POST("/contact", submissionRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), contactHandler.SubmitContact)
	group.OPTIONS("/contact", handlers.Options)

	group.GET("/tours", generalRateLimiter.Middleware(), toursHandler.GetTours)
	group.OPTIONS("/tours", handlers.Options)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Sanpark Tours API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling (no-op unless enabled in config)
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize the SMTP transport once; every submission reuses it
	smtpSender, err := mailer.NewSMTPSender(cfg.Mail)
	if err != nil {
		logger.Fatal("Failed to initialize SMTP transport", zap.Error(err))
	}

	// Reachability probe with backoff. A failed probe is logged but not fatal:
	// the transport may come up later, and each send fails visibly on its own.
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := retry.Do(probeCtx, retry.SMTPConfig(), "smtp_verify", func() error {
		verifyCtx, cancel := context.WithTimeout(probeCtx, 10*time.Second)
		defer cancel()
		return smtpSender.Verify(verifyCtx)
	}); err != nil {
		logger.Warn("SMTP server unreachable at startup", zap.Error(err))
	}
	probeCancel()

	dispatcher := mailer.NewDispatcher(smtpSender)

	// Initialize tours cache synchronously before accepting requests
	toursCache := cache.NewToursCache(cfg.Tours.DataPath, cfg.Tours.CacheTTLSeconds)
	if err := toursCache.Initialize(); err != nil {
		logger.Fatal("Failed to initialize tours cache", zap.Error(err))
	}

	// Initialize services
	renderer := templates.NewRenderer(cfg.Contact)
	bookingService := services.NewBookingService(dispatcher, renderer, cfg)
	contactService := services.NewContactService(dispatcher, renderer, cfg)
	tourService := services.NewTourService(toursCache)

	// Initialize handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	contactHandler := handlers.NewContactHandler(contactService)
	toursHandler := handlers.NewToursHandler(tourService)
	healthHandler := handlers.NewHealthHandler(toursCache.IsReady)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// The API serves a public marketing site; any origin may call it. Preflight
	// responses are answered with 200 for frontend clients that treat 204 as a
	// failure.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders:             []string{"Content-Length"},
		AllowCredentials:          false,
		OptionsResponseStatusCode: http.StatusOK,
		MaxAge:                    12 * time.Hour,
	}))

	// Known routes hit with an unsupported verb get a fixed 405 payload
	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)

	// Submissions get a tight limit: each accepted request costs two emails
	generalRateLimiter := middleware.NewRateLimiter(100, 200)
	submissionRateLimiter := middleware.NewRateLimiter(5, 10)

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, generalRateLimiter, submissionRateLimiter, bookingHandler, contactHandler, toursHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
