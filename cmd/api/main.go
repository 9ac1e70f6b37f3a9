package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"cessao-fidc/internal/api"
	"cessao-fidc/internal/charts"
	"cessao-fidc/internal/config"
	"cessao-fidc/internal/dashboard"
	"cessao-fidc/internal/events"
	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/logging"
	"cessao-fidc/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfgPath := flag.String("config", os.Getenv("CESSAO_CONFIG"), "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logging.New(os.Stderr, false, "info").Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(os.Stderr, cfg.IsProduction(), cfg.Log.Level)
	logging.RedirectStdLog(log.Named("handlers"))

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := fixtures.LoadFile(cfg.Fixtures.File)
	if err != nil {
		return err
	}
	if cfg.Fixtures.File != "" {
		log.Info().Str("file", cfg.Fixtures.File).Msg("fixture overlay loaded")
	}

	sessionLog := log.Named("sessions")
	eventLog := log.Named("events")
	store := session.NewStore(cfg.Session.IdleTimeout, func() *dashboard.Dashboard {
		d := dashboard.New(dashboard.Options{
			Provider:      provider,
			DownloadDelay: cfg.Downloads.CompletionDelay,
		})
		// ends when the dashboard closes its bus
		go logEvents(eventLog, d.Bus.SubscribeAll())
		return d
	})
	store.OnEvict(func(s *session.Session) {
		sessionLog.Debug().Str("session", s.ID).Time("last_active", s.LastActive()).Msg("session evicted")
	})

	chartCache := charts.NewCache(cfg.Charts.CacheTTL)
	renderer := charts.NewRenderer(provider, chartCache, cfg.Charts.Width, cfg.Charts.Height)

	router, err := api.NewRouter(api.Deps{
		Config:   cfg,
		Logger:   log,
		Provider: provider,
		Sessions: store,
		Charts:   renderer,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Server.Env).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return store.Run(gctx, cfg.Session.SweepInterval)
	})
	if cfg.Charts.CacheTTL > 0 {
		g.Go(func() error {
			return chartCache.Run(gctx, cfg.Charts.CacheTTL)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func logEvents(log *logging.Logger, ch <-chan events.Event) {
	for ev := range ch {
		e := log.Debug().Str("type", string(ev.Type())).Time("at", ev.Timestamp())
		switch v := ev.(type) {
		case *events.NotificationEvent:
			e = e.Str("title", v.Notification.Title).Str("variant", string(v.Notification.Variant))
		case *events.SelectionChangedEvent:
			e = e.Str("widget", v.Widget).Int("count", v.Count)
		case *events.TabChangedEvent:
			e = e.Str("from", v.From).Str("to", v.To)
		}
		e.Msg("dashboard event")
	}
}
