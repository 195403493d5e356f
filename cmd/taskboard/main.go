package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bigitcorp/taskboard/internal/api"
	"github.com/bigitcorp/taskboard/internal/core/ports"
	"github.com/bigitcorp/taskboard/internal/core/service"
	"github.com/bigitcorp/taskboard/internal/infrastructure/config"
	"github.com/bigitcorp/taskboard/internal/infrastructure/db/memory"
	"github.com/bigitcorp/taskboard/internal/infrastructure/db/mongo"
	"github.com/bigitcorp/taskboard/internal/infrastructure/db/redis"
	"github.com/bigitcorp/taskboard/internal/infrastructure/db/sqlite"
	"github.com/bigitcorp/taskboard/internal/infrastructure/mail"
	"github.com/bigitcorp/taskboard/internal/infrastructure/repository"
	"github.com/bigitcorp/taskboard/internal/infrastructure/scheduler"
	"github.com/bigitcorp/taskboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()

	repos := repository.New(store)
	if cfg.DemoData {
		if err := repository.Seed(ctx, store, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	auditor := repository.NewAuditRecorder(repos.Logs, logger.For("audit"))
	mailer := mail.NewMailer(repos.Notifications, logger.For("mail"))

	authSvc := service.NewAuthService(repos.Users, repos.Session, auditor, logger.For("auth"), cfg.JWTSecret, cfg.TokenTTL)
	taskSvc := service.NewTaskService(repos.Tasks, auditor, logger.For("tasks"))
	boardSvc := service.NewBoardService(repos.Tasks, auditor, logger.For("board"))
	projectSvc := service.NewProjectService(repos.Projects, repos.Tasks, auditor, logger.For("projects"))
	notifSvc := service.NewNotificationService(repos.Notifications, repos.Tasks, mailer, auditor, logger.For("notifications"))
	settingsSvc := service.NewSettingsService(repos.Settings, repos.Users, repos.Session, store, auditor, logger.For("settings"))
	backupSvc := service.NewBackupService(store, auditor, logger.For("backup"))

	sched := scheduler.New(notifSvc, logger.For("scheduler"))
	if err := sched.ScheduleDueSoonCheck(cfg.ReminderInterval); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule reminder job")
	}
	sched.Start()
	defer sched.Stop()

	e := api.NewRouter(api.Services{
		Auth:          authSvc,
		Tasks:         taskSvc,
		Board:         boardSvc,
		Projects:      projectSvc,
		Notifications: notifSvc,
		Settings:      settingsSvc,
		Backups:       backupSvc,
		Logs:          repos.Logs,
	}, store, cfg.StorageDriver, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.StorageDriver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}

// openStore selects the persistence backend from configuration.
func openStore(ctx context.Context, cfg *config.Config) (ports.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.NewStore(), nil
	case config.DriverRedis:
		return redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLite.Path)
	case config.DriverMongo:
		return mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
