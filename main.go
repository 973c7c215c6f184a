// main.go - Entry point for the storefront backend server

package main // Declares the package name

import ( // Import required packages
	"context"   // Startup and shutdown deadlines
	"errors"    // Sentinel checks
	"log"       // Fatal startup errors before zap exists
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal notification
	"syscall"   // SIGTERM

	"github.com/gin-gonic/gin"                                  // Gin web framework
	"github.com/prometheus/client_golang/prometheus"            // Metrics registry
	"github.com/prometheus/client_golang/prometheus/collectors" // Runtime collectors
	"go.uber.org/zap"                                           // Structured logging
	"golang.org/x/sync/errgroup"                                // Server lifecycle

	"storefront-backend/config"     // Project config management
	"storefront-backend/database"   // Store selection and seeding
	"storefront-backend/handlers"   // HTTP handlers for API endpoints
	"storefront-backend/logging"    // Logger construction
	"storefront-backend/middleware" // Request logging, recovery and metrics
	"storefront-backend/security"   // Password hashing
	"storefront-backend/store"      // Store contract
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and build the logger
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error: ", err) // Bad configuration is never recoverable
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("logger error: ", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	// STEP 2: Connect to the store. If the handshake fails the server still
	// starts; /readyz reports 503 and API calls answer 500.
	var s store.Store
	s, err = database.Open(context.Background(), cfg)
	if err != nil {
		logger.Error("store unavailable, serving degraded",
			zap.String("driver", cfg.DBDriver), zap.Error(err))
		s = store.Unavailable(err)
	} else {
		logger.Info("store connected", zap.String("driver", cfg.DBDriver))
		if err := database.SeedAdmin(context.Background(), s, hasher, cfg, logger); err != nil {
			logger.Error("admin seed failed", zap.Error(err))
		}
	}

	// STEP 3: Create Gin router and configure routes
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(middleware.Recovery(logger), middleware.RequestLogger(logger), metrics.Handler())
	r.GET("/metrics", middleware.MetricsEndpoint(reg))
	handlers.New(s, hasher, logger).Register(r)

	// STEP 4: Serve until a signal arrives or the listener fails
	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		logger.Info("HTTP server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-quit:
			logger.Info("shutting down", zap.String("signal", sig.String()))
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown incomplete", zap.Error(err))
		}
		return s.Close(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}
