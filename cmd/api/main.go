package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "reviews_api/internal/adapters/http_server"
	"reviews_api/internal/adapters/observability"
	"reviews_api/internal/app"
	"reviews_api/internal/shared"
	"reviews_api/internal/storage/jsonfile"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	// data: loaded once, before anything listens
	start := time.Now()
	reviews, err := jsonfile.LoadReviews(cfg.ReviewsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.ReviewsFile).Msg("load reviews failed")
	}
	observability.ObserveLoad(reviews.Len(), time.Since(start))
	log.Info().Str("file", cfg.ReviewsFile).Int("count", reviews.Len()).Dur("took", time.Since(start)).Msg("reviews loaded")

	q := app.NewQueryService(reviews)

	// http
	srv := server.New(server.Options{RequestTimeout: cfg.RequestTimeout, AllowedOrigins: cfg.AllowedOrigins})
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	servers := []*http.Server{{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}}
	if cfg.MetricsAddr != "" {
		servers = append(servers, observability.NewMetricsServer(cfg.MetricsAddr, reg))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		s := s // per-iteration copy; go directive is 1.21
		g.Go(func() error {
			log.Info().Str("addr", s.Addr).Msg("listening")
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		var errs []error
		for _, s := range servers {
			errs = append(errs, s.Shutdown(sctx))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("stopped")
}
