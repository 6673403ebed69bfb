package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/afr117/My-personal-website/internal/config"
	"github.com/afr117/My-personal-website/internal/handler"
	"github.com/afr117/My-personal-website/internal/logging"
	"github.com/afr117/My-personal-website/internal/model"
	"github.com/afr117/My-personal-website/internal/repository"
	"github.com/afr117/My-personal-website/internal/service"
	"github.com/afr117/My-personal-website/internal/storage"
	"github.com/afr117/My-personal-website/pkg/auth"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(os.Getenv("LOG_LEVEL"))
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.App.LogLevel)

	ctx := context.Background()
	var pingers repository.Pingers

	var pool *pgxpool.Pool
	if cfg.UsesPostgres() {
		pool, err = repository.NewPool(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		pingers = append(pingers, pool)
	}

	var projectRepo repository.ProjectRepository
	switch cfg.Store.ProjectDriver {
	case "postgres":
		pgRepo := repository.NewPgProjectRepository(pool)
		if cfg.Store.SeedProjects {
			n, err := repository.SeedIfEmpty(ctx, pgRepo, repository.DefaultProjects())
			if err != nil {
				logging.Fatal("failed to seed projects", "error", err)
			}
			if n > 0 {
				slog.Info("seeded project catalog", "count", n)
			}
		}
		projectRepo = pgRepo
	default:
		var seed []*model.Project
		if cfg.Store.SeedProjects {
			seed = repository.DefaultProjects()
		}
		projectRepo = repository.NewMemProjectRepository(seed...)
	}

	var sessionRepo repository.SessionRepository
	switch cfg.Store.SessionDriver {
	case "postgres":
		sessionRepo = repository.NewPgSessionRepository(pool)
	case "redis":
		rdb, err := repository.NewRedisClient(ctx, cfg.Store.RedisURL)
		if err != nil {
			logging.Fatal("failed to connect to redis", "error", err)
		}
		defer rdb.Close()
		pingers = append(pingers, repository.RedisPinger{Client: rdb})
		sessionRepo = repository.NewRedisSessionRepository(rdb)
	default:
		sessionRepo = repository.NewMemSessionRepository()
	}

	var imageStore storage.Storage
	var uploadsDir string
	switch cfg.Storage.Driver {
	case "s3":
		s3Store, err := storage.NewS3StorageFromEnv(ctx, cfg.Storage.S3Bucket, "uploads/", cfg.Storage.S3PublicURL, cfg.Storage.S3Endpoint)
		if err != nil {
			logging.Fatal("failed to configure s3 storage", "error", err)
		}
		imageStore = s3Store
	default:
		imageStore = storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.URLPrefix)
		uploadsDir = cfg.Storage.UploadDir
	}

	if cfg.Admin.Password == "" {
		slog.Warn("ADMIN_PASSWORD is not set; admin login is disabled")
	}

	sessionSecret := auth.SessionSecretBytes(cfg.Admin.SessionSecret)
	sessionService := service.NewSessionService(sessionRepo)
	adminAuth := service.NewAdminAuthService(cfg.Admin.Password, sessionService)
	projectService := service.NewProjectService(projectRepo)
	imageService := service.NewImageService(imageStore)

	router := handler.NewRouter(handler.RouterConfig{
		Base:          handler.New(pingers, cfg.Server.FrontendURL),
		Admin:         handler.NewAdminHandler(adminAuth, sessionSecret, cfg.IsProduction()),
		Projects:      handler.NewProjectHandler(projectService),
		Upload:        handler.NewUploadHandler(imageService),
		Gate:          adminAuth,
		SessionSecret: sessionSecret,
		AssetsDir:     cfg.Server.AssetsDir,
		AssetsPrefix:  "/" + path.Base(cfg.Server.AssetsDir),
		UploadsDir:    uploadsDir,
		UploadsPrefix: cfg.Storage.URLPrefix,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "store", cfg.Store.ProjectDriver,
			"sessions", cfg.Store.SessionDriver, "storage", cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
