package domain

// Field bounds enforced when reviews are loaded.
const (
	MaxTitleLen = 50
	MaxTextLen  = 300
	MinRating   = 1
	MaxRating   = 5
)

type Review struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// ReviewCollection is the ordered, read-only set of reviews held for the
// lifetime of the process. The zero value is an empty collection.
type ReviewCollection struct {
	items []Review
}

// NewReviewCollection copies rs so later writes to the caller's slice are
// not observed.
func NewReviewCollection(rs []Review) ReviewCollection {
	items := make([]Review, len(rs))
	copy(items, rs)
	return ReviewCollection{items: items}
}

// Items returns a copy in source order; never nil.
func (c ReviewCollection) Items() []Review {
	out := make([]Review, len(c.items))
	copy(out, c.items)
	return out
}

func (c ReviewCollection) Len() int { return len(c.items) }

// Read models

type ReviewList struct {
	Items []Review `json:"items"`
	Total int      `json:"total"`
}

type Health struct {
	Status string `json:"status"`
}

const StatusOK = "ok"
