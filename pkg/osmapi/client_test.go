package osmapi

import (
	"log/slog"
	"net/http"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if c.userAgent != DefaultUserAgent {
		t.Errorf("userAgent = %q, want %q", c.userAgent, DefaultUserAgent)
	}
	if c.httpClient == nil {
		t.Error("httpClient is nil")
	}
	if c.limiter == nil {
		t.Error("limiter is nil")
	}
	if c.logger == nil {
		t.Error("logger is nil")
	}
}

func TestNewOptions(t *testing.T) {
	hc := &http.Client{}
	logger := slog.Default().With("component", "test")

	c := New(
		WithBaseURL("https://master.apis.dev.openstreetmap.org/api/0.6/"),
		WithHTTPClient(hc),
		WithUserAgent("test-agent/0.1"),
		WithRateLimit(5, 10),
		WithLogger(logger),
	)

	if got := c.BaseURL(); got != "https://master.apis.dev.openstreetmap.org/api/0.6/" {
		t.Errorf("BaseURL() = %q", got)
	}
	if c.httpClient != hc {
		t.Error("custom HTTP client not applied")
	}
	if c.userAgent != "test-agent/0.1" {
		t.Errorf("userAgent = %q", c.userAgent)
	}
	if c.limiter.Burst() != 10 {
		t.Errorf("limiter burst = %d, want 10", c.limiter.Burst())
	}
	if c.logger != logger {
		t.Error("custom logger not applied")
	}
}
