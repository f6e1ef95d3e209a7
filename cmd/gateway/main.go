package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/advisor"
	auth "github.com/mind-engage/mindengage-advisor/internal/auth/middleware"
	"github.com/mind-engage/mindengage-advisor/internal/config"
	"github.com/mind-engage/mindengage-advisor/internal/db"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
	"github.com/mind-engage/mindengage-advisor/internal/metrics"
	syncx "github.com/mind-engage/mindengage-advisor/internal/sync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("db open failed")
	}
	defer dbh.Close()
	store := academic.NewSQLStore(dbh, cfg.DBDriver)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}
	events := syncx.NewEventRepo(dbh, "")
	svc := advisor.New(store,
		advisor.WithEvents(events),
		advisor.WithMetrics(m),
		advisor.WithTopN(cfg.RecommendationLimit),
	)

	h := newRouter(deps{
		cfg:     cfg,
		authSvc: auth.NewAuthService(cfg.AuthHMACSecret, cfg.TokenTTL),
		users:   auth.NewSQLUsers(dbh),
		store:   store,
		advisor: svc,
		metrics: m,
		db:      dbh,
		events:  events,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", cfg.HTTPAddr).Str("mode", string(cfg.Mode)).Msg("advisor gateway listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("listen")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("shutdown")
	}
	logging.Info().Msg("advisor gateway stopped")
}
