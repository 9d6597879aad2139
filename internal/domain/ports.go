package domain

import "context"

// ReviewsAPI is a remote instance of this service, as seen by the verifier.
type ReviewsAPI interface {
	Health(ctx context.Context) (Health, error)
	// ListReviews also returns the response ETag.
	ListReviews(ctx context.Context) (ReviewList, string, error)
}
