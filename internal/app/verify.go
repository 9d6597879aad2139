package app

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"reviews_api/internal/domain"
)

// VerifyService checks that a running instance is live and serves a stable
// review list, optionally matching a known collection.
type VerifyService struct {
	api     domain.ReviewsAPI
	want    *domain.ReviewCollection
	rounds  int
	workers int
}

type Report struct {
	Total  int
	ETag   string
	Rounds int
}

// NewVerifyService builds a verifier. want may be nil to skip the content
// comparison.
func NewVerifyService(api domain.ReviewsAPI, want *domain.ReviewCollection, rounds, workers int) *VerifyService {
	if rounds <= 0 {
		rounds = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &VerifyService{api: api, want: want, rounds: rounds, workers: workers}
}

func (s *VerifyService) Verify(ctx context.Context) (Report, error) {
	h, err := s.api.Health(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("health: %w", err)
	}
	if h.Status != domain.StatusOK {
		return Report{}, fmt.Errorf("%w: status %q", domain.ErrUnhealthy, h.Status)
	}

	var (
		mu    sync.Mutex
		first *domain.ReviewList
		etag  string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := 0; i < s.rounds; i++ {
		round := i
		g.Go(func() error {
			list, tag, err := s.api.ListReviews(gctx)
			if err != nil {
				return fmt.Errorf("list reviews (round %d): %w", round, err)
			}
			if list.Total != len(list.Items) {
				return fmt.Errorf("%w: total %d but %d items", domain.ErrInconsistent, list.Total, len(list.Items))
			}

			mu.Lock()
			defer mu.Unlock()
			if first == nil {
				first, etag = &list, tag
				return nil
			}
			if tag != etag || !slices.Equal(first.Items, list.Items) {
				return fmt.Errorf("%w: round %d etag %q, want %q", domain.ErrInconsistent, round, tag, etag)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	if s.want != nil {
		if !slices.Equal(s.want.Items(), first.Items) {
			return Report{}, fmt.Errorf("%w: served %d reviews, expected %d", domain.ErrMismatch, first.Total, s.want.Len())
		}
	}

	log.Debug().Int("total", first.Total).Str("etag", etag).Int("rounds", s.rounds).Msg("verification ok")
	return Report{Total: first.Total, ETag: etag, Rounds: s.rounds}, nil
}
