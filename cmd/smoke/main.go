// Command smoke verifies a running reviews API: it must be live, serve a
// stable list across concurrent requests and, when REVIEWS_FILE is readable,
// serve exactly that file's reviews.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"reviews_api/internal/adapters/observability"
	"reviews_api/internal/adapters/reviewsapi"
	"reviews_api/internal/app"
	"reviews_api/internal/domain"
	"reviews_api/internal/shared"
	"reviews_api/internal/storage/jsonfile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("base", cfg.APIURL).
		Int("workers", cfg.SmokeWorker).
		Int("rounds", cfg.SmokeRounds).
		Msg("smoke check starting")

	client, err := reviewsapi.New(cfg.APIURL, cfg.SmokeRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize reviews API client")
	}

	var want *domain.ReviewCollection
	switch c, err := jsonfile.LoadReviews(cfg.ReviewsFile); {
	case err == nil:
		want = &c
		log.Info().Str("file", cfg.ReviewsFile).Int("count", c.Len()).Msg("comparing against local reviews")
	case errors.Is(err, os.ErrNotExist):
		log.Info().Str("file", cfg.ReviewsFile).Msg("no local reviews file, skipping content comparison")
	default:
		log.Fatal().Err(err).Str("file", cfg.ReviewsFile).Msg("local reviews file is invalid")
	}

	v := app.NewVerifyService(client, want, cfg.SmokeRounds, cfg.SmokeWorker)
	rep, err := v.Verify(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("smoke check failed")
	}
	log.Info().Int("total", rep.Total).Str("etag", rep.ETag).Int("rounds", rep.Rounds).Msg("smoke check passed")
}
