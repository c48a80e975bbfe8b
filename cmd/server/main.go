package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yukikurage/task-manager-api/internal/auth"
	"github.com/yukikurage/task-manager-api/internal/config"
	"github.com/yukikurage/task-manager-api/internal/database"
	"github.com/yukikurage/task-manager-api/internal/handlers"
	"github.com/yukikurage/task-manager-api/internal/logger"
	"github.com/yukikurage/task-manager-api/internal/repository"
	"github.com/yukikurage/task-manager-api/internal/services"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "taskmanager",
	Short: "Task manager REST API",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations, seed defaults and start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap()
		if err != nil {
			return err
		}
		defer app.close()
		return database.Migrate(app.db, app.log)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default user, task statuses and labels if missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap()
		if err != nil {
			return err
		}
		defer app.close()
		if err := database.Migrate(app.db, app.log); err != nil {
			return err
		}
		return app.seed(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("TASKMANAGER_CONFIG"), "path to a YAML config file")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what every subcommand needs.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *gorm.DB
	store  *repository.Store
	hasher *auth.BcryptHasher
}

func bootstrap() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Server.LogLevel, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    log,
		db:     db,
		store:  repository.NewStore(db),
		hasher: auth.NewBcryptHasher(0),
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
	_ = a.log.Sync()
}

func (a *app) seed(ctx context.Context) error {
	seeder := services.NewSeedService(a.store, a.hasher, a.cfg.Seed, a.log)
	if err := seeder.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := database.Migrate(a.db, a.log); err != nil {
		return err
	}
	if a.cfg.Seed.Enabled {
		if err := a.seed(cmd.Context()); err != nil {
			return err
		}
	}

	tokens, err := auth.NewTokenService(a.cfg.Auth)
	if err != nil {
		return err
	}

	gin.SetMode(a.cfg.Server.Mode)
	router, err := handlers.NewRouter(a.cfg.Routes, handlers.Services{
		Users:        services.NewUserService(a.store, a.hasher),
		TaskStatuses: services.NewTaskStatusService(a.store),
		Labels:       services.NewLabelService(a.store),
		Tasks:        services.NewTaskService(a.store),
		Auth:         services.NewAuthService(a.store, a.hasher, tokens),
	}, tokens, a.log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		a.log.Info("server stopped")
		return nil
	})

	return g.Wait()
}
