package app

import (
	"reviews_api/internal/domain"
)

// QueryService answers read-only questions over a collection loaded once at
// startup. It holds no locks; the collection is never mutated.
type QueryService struct {
	reviews domain.ReviewCollection
}

func NewQueryService(c domain.ReviewCollection) *QueryService {
	return &QueryService{reviews: c}
}

// ListReviews returns every review in source order. Items is a fresh copy on
// each call so callers cannot alter what later requests see.
func (s *QueryService) ListReviews() domain.ReviewList {
	items := s.reviews.Items()
	return domain.ReviewList{Items: items, Total: len(items)}
}

func (s *QueryService) Health() domain.Health {
	return domain.Health{Status: domain.StatusOK}
}
