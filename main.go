// main.go - Entry point for the campus networking backend

package main // Declares the package name

import ( // Import required packages
	"context"   // Shutdown deadline
	"errors"    // Server closed check
	"net/http"  // HTTP server
	"os"        // Exit codes, stdout
	"os/signal" // Graceful shutdown
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"go-campus-backend/auth"       // Token issuer
	"go-campus-backend/config"     // Project config management
	"go-campus-backend/database"   // Database connection and setup
	"go-campus-backend/handlers"   // HTTP handlers for API endpoints
	"go-campus-backend/middleware" // Rate limiting
	"go-campus-backend/notify"     // MQTT notifications
	"go-campus-backend/repository" // Persistence

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/rs/zerolog"    // Structured logging
	"github.com/spf13/cobra"   // CLI
)

func main() { // Main function, program entry point
	root := &cobra.Command{
		Use:           "campus",
		Short:         "REST backend for the student and teacher networking platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, args []string) error { return serve(cmd.Context()) },
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE:  func(cmd *cobra.Command, args []string) error { return serve(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			RunE:  func(cmd *cobra.Command, args []string) error { return migrate() },
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		fatal := zerolog.New(os.Stderr)
		fatal.Fatal().Err(err).Msg("campus exited")
	}
}

// newLogger builds the process logger from the configured level.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}

func migrate() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	_, err = database.Connect(cfg.DBDriver, cfg.DatabaseURL, log)
	if err == nil {
		log.Info().Msg("schema up to date")
	}
	return err
}

func serve(ctx context.Context) error {
	// STEP 1: Load configuration and establish connections
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	db, err := database.Connect(cfg.DBDriver, cfg.DatabaseURL, log) // Connect to the database
	if err != nil {
		return err
	}

	var publisher notify.Publisher = notify.Nop{}
	if cfg.MQTTBroker != "" {
		mqttPublisher, err := notify.Connect(cfg.MQTTBroker, cfg.MQTTClientID) // Connect to the MQTT broker
		if err != nil {
			return err
		}
		defer mqttPublisher.Close()
		publisher = mqttPublisher
		log.Info().Str("broker", cfg.MQTTBroker).Msg("notifications enabled")
	}

	// STEP 2: Create router and configure routes
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	var limiter *middleware.RateLimiter
	if cfg.AuthRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	}
	h := handlers.New(repository.New(db), auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL), publisher, log)
	router := handlers.NewRouter(h, handlers.RouterOptions{CORSOrigins: cfg.CORSOrigins, AuthLimiter: limiter})

	// STEP 3: Start the web server and stop it on SIGINT/SIGTERM
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
