package app_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"reviews_api/internal/app"
	"reviews_api/internal/domain"
)

// ---- fakes ----

type fakeAPI struct {
	status  string
	healthE error
	list    domain.ReviewList
	// etagFor lets a test vary the ETag per call; nil means constant "v1".
	etagFor func(call int32) string
	calls   int32
}

func (f *fakeAPI) Health(ctx context.Context) (domain.Health, error) {
	if f.healthE != nil {
		return domain.Health{}, f.healthE
	}
	return domain.Health{Status: f.status}, nil
}

func (f *fakeAPI) ListReviews(ctx context.Context) (domain.ReviewList, string, error) {
	n := atomic.AddInt32(&f.calls, 1)
	tag := `W/"v1"`
	if f.etagFor != nil {
		tag = f.etagFor(n)
	}
	items := make([]domain.Review, len(f.list.Items))
	copy(items, f.list.Items)
	return domain.ReviewList{Items: items, Total: f.list.Total}, tag, nil
}

func listOf(c domain.ReviewCollection) domain.ReviewList {
	return app.NewQueryService(c).ListReviews()
}

// ---- tests ----

func TestVerify_OK(t *testing.T) {
	want := sample()
	api := &fakeAPI{status: "ok", list: listOf(want)}
	v := app.NewVerifyService(api, &want, 6, 3)

	rep, err := v.Verify(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rep.Total != 3 || rep.Rounds != 6 || rep.ETag != `W/"v1"` {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if atomic.LoadInt32(&api.calls) != 6 {
		t.Fatalf("expected 6 list calls, got %d", api.calls)
	}
}

func TestVerify_WithoutExpectedCollection(t *testing.T) {
	api := &fakeAPI{status: "ok", list: listOf(sample())}
	v := app.NewVerifyService(api, nil, 0, 0)

	rep, err := v.Verify(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rep.Rounds != 1 {
		t.Fatalf("expected rounds clamped to 1, got %d", rep.Rounds)
	}
}

func TestVerify_Unhealthy(t *testing.T) {
	v := app.NewVerifyService(&fakeAPI{status: "degraded"}, nil, 1, 1)
	if _, err := v.Verify(context.Background()); !errors.Is(err, domain.ErrUnhealthy) {
		t.Fatalf("expected ErrUnhealthy, got %v", err)
	}

	boom := fmt.Errorf("dial tcp: refused")
	v = app.NewVerifyService(&fakeAPI{healthE: boom}, nil, 1, 1)
	if _, err := v.Verify(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped health error, got %v", err)
	}
}

func TestVerify_UnstableETag(t *testing.T) {
	api := &fakeAPI{
		status:  "ok",
		list:    listOf(sample()),
		etagFor: func(n int32) string { return fmt.Sprintf(`W/"%d"`, n) },
	}
	v := app.NewVerifyService(api, nil, 4, 2)
	if _, err := v.Verify(context.Background()); !errors.Is(err, domain.ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
}

func TestVerify_BadTotal(t *testing.T) {
	list := listOf(sample())
	list.Total = 99
	v := app.NewVerifyService(&fakeAPI{status: "ok", list: list}, nil, 1, 1)
	if _, err := v.Verify(context.Background()); !errors.Is(err, domain.ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
}

func TestVerify_Mismatch(t *testing.T) {
	want := domain.NewReviewCollection([]domain.Review{{ID: 1, Title: "Great", Text: "Loved it", Rating: 4}})
	api := &fakeAPI{status: "ok", list: listOf(sample())}
	v := app.NewVerifyService(api, &want, 2, 2)
	if _, err := v.Verify(context.Background()); !errors.Is(err, domain.ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}
