package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	authadapter "taskmanager/internal/adapter/auth"
	dbadapter "taskmanager/internal/adapter/db"
	httpadapter "taskmanager/internal/adapter/http"
	"taskmanager/internal/adapter/http/handlers"
	httpmiddleware "taskmanager/internal/adapter/http/middleware"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/config"
	"taskmanager/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := zap.L()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	location, err := cfg.Location()
	if err != nil {
		return err
	}

	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		logger.Error("translations unavailable, error messages fall back to keys", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := dbadapter.Migrate(ctx, db); err != nil {
		return err
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	auditLogRepository := dbadapter.NewAuditLogRepository(db)
	userRepository := dbadapter.NewUserRepository(db)

	authService := appservice.NewAuthService(
		userRepository,
		authadapter.NewBcryptHasher(cfg.BcryptCost),
		authadapter.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL),
	)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.Proxies()); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db, location),
		Auth:     handlers.NewAuthHandler(authService),
		Tasks:    handlers.NewTaskHandler(appservice.NewTaskService(taskRepository, auditLogRepository, userRepository), location),
		AuditLog: handlers.NewAuditLogHandler(appservice.NewAuditService(auditLogRepository, location)),
		Users:    handlers.NewUserHandler(appservice.NewUserService(userRepository, taskRepository)),
	}, authService)

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("timezone", location.String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("could not start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
