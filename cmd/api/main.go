package main

import (
	"database/sql"
	"net/http"
	"time"

	"go.uber.org/zap"

	"prenatal-clinical-history/internal/adapters/auth/clinicauth"
	"prenatal-clinical-history/internal/adapters/notify/webhook"
	pg "prenatal-clinical-history/internal/adapters/storage/postgres"
	"prenatal-clinical-history/internal/jobs"
	"prenatal-clinical-history/internal/platform/config"
	"prenatal-clinical-history/internal/platform/logger"
	"prenatal-clinical-history/internal/ports/auth"
	"prenatal-clinical-history/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Fatal("config load failed", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.AppName)
	defer func() { _ = log.Sync() }()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal("db open failed", zap.Error(err))
		}
		defer db.Close()
		log.Info("using postgres storage")
	} else {
		log.Info("no DB_DSN, using in-memory storage")
	}

	var verifier auth.AuthVerifier
	if cfg.AuthBaseURL != "" {
		verifier = clinicauth.NewVerifier(clinicauth.NewClient(clinicauth.Config{
			BaseURL: cfg.AuthBaseURL,
			APIKey:  cfg.AuthAPIKey,
		}))
	} else {
		log.Warn("auth verifier not configured, running in dev mode (X-Debug-User-ID)")
	}

	handler, alertSvc := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
	})

	notifier := webhook.New(cfg.AlertWebhookURL, 10*time.Second)
	if !notifier.IsConfigured() {
		log.Info("alert webhook not configured, sweep will only log")
	}

	sweep := jobs.NewSweep(alertSvc, notifier, log)
	if err := sweep.Start(cfg.AlertSweepSchedule); err != nil {
		log.Fatal("sweep start failed", zap.Error(err))
	}
	defer sweep.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", zap.String("addr", cfg.Addr()))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}
