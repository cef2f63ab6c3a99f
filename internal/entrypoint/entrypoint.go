package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/wordseed/internal/config"
	"github.com/mrlokans/wordseed/internal/database"
	http_controllers "github.com/mrlokans/wordseed/internal/http"
	"github.com/mrlokans/wordseed/internal/logger"
)

// Seed opens the configured database, makes sure the schema exists and seeds
// it when empty. The caller owns the returned database.
func Seed(cfg *config.Config) (*database.Database, *database.SeedResult, error) {
	db, err := database.Open(cfg.Database.Path, database.Options{
		LogLevel: database.ParseLogLevel(cfg.Database.LogLevel),
	})
	if err != nil {
		return nil, nil, err
	}

	result, err := db.EnsureSchemaAndSeed()
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Logger.Info("Database ready",
		zap.String("path", cfg.Database.Path),
		zap.Bool("seeded", result.Seeded),
		zap.Int64("users", result.Counts.Users),
		zap.Int64("parts_of_speech", result.Counts.PartsOfSpeech),
		zap.Int64("categories", result.Counts.Categories),
		zap.Int64("words", result.Counts.Words),
		zap.Int64("word_categories", result.Counts.WordCategories),
	)

	return db, result, nil
}

// Serve runs the HTTP server until SIGINT or SIGTERM.
func Serve(router *gin.Engine, cfg *config.Config) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Logger.Info("Shutting down server", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Logger.Info("Server exiting")
	return nil
}

// Run seeds the database once and then serves the health endpoint.
func Run(cfg *config.Config, version string) error {
	logger.Logger.Info("Starting wordseed", zap.String("version", version))

	db, _, err := Seed(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Logger.Warn("Error closing database", zap.Error(err))
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:   db,
		Version: version,
		Logger:  logger.Logger,
	})

	return Serve(router, cfg)
}
