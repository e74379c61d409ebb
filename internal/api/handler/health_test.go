package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

type stubPinger struct {
	name string
	err  error
}

func (p stubPinger) Name() string               { return p.name }
func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealth_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", nil, "")
	expectCode(t, rec, NewHealthHandler().Liveness(c), http.StatusOK)
}

func TestHealth_Readiness_NoDependencies(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health/ready", nil, "")
	expectCode(t, rec, NewHealthHandler().Readiness(c), http.StatusOK)
}

func TestHealth_Readiness_Degraded(t *testing.T) {
	h := NewHealthHandler(stubPinger{name: "mongodb"}, stubPinger{name: "redis", err: errors.New("dial tcp: refused")})
	c, rec := newContext(http.MethodGet, "/health/ready", nil, "")
	expectCode(t, rec, h.Readiness(c), http.StatusServiceUnavailable)

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["mongodb"].Status != "ok" || resp.Dependencies["redis"].Status != "unhealthy" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
