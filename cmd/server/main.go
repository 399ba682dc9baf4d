// @title           Thumbnail Backend API
// @version         1.0.0
// @description     Backend API that turns a title, style and optional prompt into an AI generated video thumbnail, hosts the image and keeps a per-user history.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
	"thumbnail-backend/docs"
	"thumbnail-backend/internal/cloudinary"
	"thumbnail-backend/internal/config"
	"thumbnail-backend/internal/database"
	"thumbnail-backend/internal/handlers"
	"thumbnail-backend/internal/inference"
	"thumbnail-backend/internal/logger"
	"thumbnail-backend/internal/middleware"
	"thumbnail-backend/internal/services"
	"thumbnail-backend/internal/storage"
	"thumbnail-backend/internal/supabase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("production")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Point Swagger at the public host
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database client")
	}
	defer dbClient.Close()

	if err := database.NewMigrator(dbClient.DB(), log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("migrations completed successfully")

	inferenceClient := inference.NewClient(cfg.HuggingFaceBaseURL, cfg.HuggingFaceAPIKey, cfg.HuggingFaceModel, cfg.InferenceTimeout)

	media, err := newMediaStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.MediaProvider).Msg("failed to initialize media store")
	}

	var scratch *storage.ScratchDir
	if cfg.ScratchDir != "" {
		scratch, err = storage.NewScratchDir(cfg.ScratchDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize scratch directory")
		}
	}

	thumbnailService := services.NewThumbnailService(dbClient, inferenceClient, media, scratch, inferenceClient.Model(), log)

	reconciler := services.NewReconciler(dbClient, cfg.PendingTimeout, log)
	scheduler := cron.New()
	if _, err := reconciler.Schedule(scheduler, cfg.StaleSweepSchedule); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.StaleSweepSchedule).Msg("invalid stale sweep schedule")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, log, dbClient, thumbnailService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("media_provider", cfg.MediaProvider).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Pending rows left behind by a previous run are swept right away.
		if _, err := reconciler.Sweep(gctx); err != nil {
			log.Warn().Err(err).Msg("initial stale sweep failed")
		}
		scheduler.Start()
		<-gctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}

func newMediaStore(cfg *config.Config) (services.MediaStore, error) {
	switch cfg.MediaProvider {
	case config.MediaProviderCloudinary:
		store, err := cloudinary.NewStore(cfg.CloudinaryURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		client, err := supabase.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return client.Storage(), nil
	}
}

func newRouter(cfg *config.Config, log zerolog.Logger, db handlers.Pinger, svc handlers.ThumbnailService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler(db))

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	thumbnailsHandler := handlers.NewThumbnailsHandler(svc, cfg.DeleteReportsMissing)
	api.POST("/thumbnails", thumbnailsHandler.GenerateThumbnail)
	api.GET("/thumbnails", thumbnailsHandler.ListThumbnails)
	api.GET("/thumbnails/:id", thumbnailsHandler.GetThumbnail)
	api.DELETE("/thumbnails/:id", thumbnailsHandler.DeleteThumbnail)

	api.GET("/styles", handlers.NewCatalogHandler().GetStyles)

	return router
}
