package shared_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"reviews_api/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "METRICS_ADDR", "REVIEWS_FILE", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}

	c := shared.Load()
	if c.HTTPAddr != ":8080" || c.ReviewsFile != "reviews.json" || c.MetricsAddr != "" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if len(c.AllowedOrigins) != 1 || c.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins: %v", c.AllowedOrigins)
	}
	if c.RequestTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout: %v", c.RequestTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REVIEWS_FILE", "/data/reviews.json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")
	t.Setenv("SMOKE_ROUNDS", "not-a-number")

	c := shared.Load()
	if c.ReviewsFile != "/data/reviews.json" {
		t.Fatalf("unexpected file: %s", c.ReviewsFile)
	}
	if len(c.AllowedOrigins) != 2 || c.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %q", c.AllowedOrigins)
	}
	if c.RequestTimeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %v", c.RequestTimeout)
	}
	if c.SmokeRounds != 8 {
		t.Fatalf("expected default rounds on bad input, got %d", c.SmokeRounds)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_ADDR=:9999\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	chdir(t, dir)
	t.Setenv("HTTP_ADDR", "")
	os.Unsetenv("HTTP_ADDR")

	if c := shared.Load(); c.HTTPAddr != ":9999" {
		t.Fatalf("expected .env value, got %s", c.HTTPAddr)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
