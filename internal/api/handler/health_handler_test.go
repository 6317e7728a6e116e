package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestReadiness_NoChecksIsReady(t *testing.T) {
	h := NewReadinessHandler(nil)

	c, rec := newJSONContext(http.MethodGet, "/health/ready", "")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_FailingDependency(t *testing.T) {
	h := NewReadinessHandler(map[string]DependencyCheck{
		"mongodb": func(ctx context.Context) error { return nil },
		"redis":   func(ctx context.Context) error { return errors.New("connection refused") },
	})

	c, rec := newJSONContext(http.MethodGet, "/health/ready", "")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["mongodb"].Status != "ok" || resp.Dependencies["redis"].Error == "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
