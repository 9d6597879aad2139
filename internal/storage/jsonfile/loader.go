// Package jsonfile loads the review collection from a local JSON document of
// the form {"reviews": [...]}.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"reviews_api/internal/domain"
)

// LoadReviews reads path once and decodes it. Any invalid element fails the
// whole load; no partial collection is returned.
func LoadReviews(path string) (domain.ReviewCollection, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.ReviewCollection{}, fmt.Errorf("read reviews file: %w", err)
	}
	return Decode(b)
}

// Decode validates the document shape before building any record.
func Decode(data []byte) (domain.ReviewCollection, error) {
	if !utf8.Valid(data) {
		return domain.ReviewCollection{}, fmt.Errorf("%w: invalid UTF-8", domain.ErrMalformed)
	}
	if !json.Valid(data) {
		// re-decode only to get a positioned diagnostic
		var discard any
		err := json.Unmarshal(data, &discard)
		return domain.ReviewCollection{}, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		// valid JSON that is not an object
		return domain.ReviewCollection{}, domain.ErrShape
	}
	raw, ok := doc["reviews"]
	if !ok || !isArray(raw) {
		return domain.ReviewCollection{}, domain.ErrShape
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return domain.ReviewCollection{}, domain.ErrShape
	}

	out := make([]domain.Review, 0, len(elems))
	for i, el := range elems {
		rv, err := mapReview(i, el)
		if err != nil {
			return domain.ReviewCollection{}, err
		}
		out = append(out, rv)
	}
	return domain.NewReviewCollection(out), nil
}

func isArray(raw json.RawMessage) bool {
	t := bytes.TrimLeft(raw, " \t\r\n")
	return len(t) > 0 && t[0] == '['
}
