package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vytor/eligesaludable/internal/api"
	"github.com/vytor/eligesaludable/internal/db"
	"github.com/vytor/eligesaludable/internal/repository/sqlite"
	"github.com/vytor/eligesaludable/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log.Info("===========================================")
	log.Info("Elige lo Saludable Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("db_max_open_conns=%d", cfg.DBMaxOpenConns)
	log.Debug("db_busy_timeout_ms=%d", cfg.DBBusyTimeoutMS)
	log.Debug("allowed_origins=%v", cfg.AllowedOrigins)
	log.Debug("trusted_proxies=%v", cfg.TrustedProxies)
	log.Debug("rate_limit_rps=%v", cfg.RateLimitRPS)
	log.Debug("rate_limit_burst=%d", cfg.RateLimitBurst)
	log.Debug("log_level=%s", cfg.LogLevel)

	trustedProxies, err := cfg.TrustedProxyPrefixes()
	if err != nil {
		return err
	}

	database, err := db.Open(db.Options{
		Path:          cfg.DBPath,
		MaxOpenConns:  cfg.DBMaxOpenConns,
		BusyTimeoutMS: cfg.DBBusyTimeoutMS,
	})
	if err != nil {
		log.Error("failed to open database: %v", err)
		return err
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	playerRepo := sqlite.NewPlayerRepository(database.DB)
	levelRepo := sqlite.NewLevelRepository(database.DB)
	sessionRepo := sqlite.NewSessionRepository(database.DB)
	summaryRepo := sqlite.NewSummaryRepository(database.DB)

	srv := &api.Server{
		PlayerService:  services.NewPlayerService(playerRepo),
		LevelService:   services.NewLevelService(levelRepo),
		SessionService: services.NewSessionService(sessionRepo, summaryRepo),
		RankingService: services.NewRankingService(playerRepo, summaryRepo),
		DB:             database,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: trustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serveErr:
		if ok {
			log.Error("HTTP server error: %v", err)
			return err
		}
		return nil
	case sig := <-stop:
		log.Info("received signal %v, initiating graceful shutdown", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// In-flight requests drain before the deferred database close runs.
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Elige lo Saludable Server Stopped")
	log.Info("===========================================")
	return nil
}
