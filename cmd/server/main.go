package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"curateurs-backoffice/internal/auth"
	"curateurs-backoffice/internal/config"
	"curateurs-backoffice/internal/handler"
	"curateurs-backoffice/internal/infrastructure/database"
	"curateurs-backoffice/internal/logger"
	"curateurs-backoffice/internal/mailer"
	"curateurs-backoffice/internal/metrics"
	"curateurs-backoffice/internal/repository"
	"curateurs-backoffice/internal/service"
	"curateurs-backoffice/internal/tasks"
	"curateurs-backoffice/internal/validator"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	articleRepo := repository.NewPostgresArticleRepository(pool)
	slugRepo := repository.NewPostgresSlugRepository(pool)
	userRepo := repository.NewPostgresUserRepository(pool)

	v := validator.NewValidator()

	var sender mailer.Sender = mailer.LogSender{}
	if cfg.MailEnabled() {
		sender = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailSender,
			SSL:      cfg.SMTPSecure,
			Timeout:  cfg.TaskTimeout,
		})
	} else {
		logger.Warn("SMTP_HOST not set, verification emails will only be logged")
	}

	runner := tasks.NewRunner(cfg.TaskWorkers, cfg.TaskQueueSize, cfg.TaskTimeout)

	articleService := service.NewArticleService(articleRepo, slugRepo, v)
	userService := service.NewUserService(userRepo, v, runner, sender, service.UserServiceConfig{
		BaseURL:         cfg.BaseURL,
		SiteName:        cfg.SiteName,
		VerificationTTL: cfg.VerificationTTL,
	})
	searchService := service.NewSearchService(slugRepo, articleRepo)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterDeps{
		Articles: articleService,
		Users:    userService,
		Search:   searchService,
		Sessions: auth.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer),
		Health:   handler.NewHealthHandler(pool, version, cfg.MailEnabled()),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Pending verification emails are flushed after the last request has been served.
	logger.Info("Draining background tasks")
	runner.Close()

	logger.Info("Server exited")
}
