package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-accounts/internal/audit"
	"github.com/BruksfildServices01/barber-accounts/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-accounts/internal/db"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
	"github.com/BruksfildServices01/barber-accounts/internal/infra/mailer"
	infraRepo "github.com/BruksfildServices01/barber-accounts/internal/infra/repository"
	"github.com/BruksfildServices01/barber-accounts/internal/infra/storage"
	"github.com/BruksfildServices01/barber-accounts/internal/logger"
	"github.com/BruksfildServices01/barber-accounts/internal/routes"
)

// shutdownTimeout must exceed account.MailTimeout.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logr := logger.New(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	db, err := dbpkg.NewDB(cfg, logr)
	if err != nil {
		logr.Fatalf("failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), logr)
	defer auditDispatcher.Close()

	deps := routes.Deps{
		Config:   cfg,
		Log:      logr,
		Accounts: infraRepo.NewAccountGormRepository(db),
		Mailer:   newMailer(cfg, logr),
		Audit:    auditDispatcher,
	}

	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logr.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(opt)
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logr.WithError(err).Warn("redis unreachable, rate limiting fails open")
		}
		cancel()
		deps.Redis = rdb
	}

	if cfg.AvatarsEnabled() {
		deps.Storage = storage.NewS3Storage(cfg.S3)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Infof("server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.WithError(err).Error("server forced to shutdown")
	}
	logr.Info("server exited")
}

func newMailer(cfg *config.Config, logr logrus.FieldLogger) domain.Mailer {
	if !cfg.Mail.SendEnabled {
		logr.Warn("MAIL_SEND_ENABLED=false, confirmation emails are only logged")
		return mailer.NewLogMailer(logr)
	}
	return mailer.NewSMTPMailer(cfg.Mail)
}
