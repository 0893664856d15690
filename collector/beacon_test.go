package collector

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type beaconRecorder struct {
	mu     sync.Mutex
	bodies []string
}

func (r *beaconRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.bodies = append(r.bodies, string(body))
		r.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (r *beaconRecorder) received() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.bodies))
	copy(out, r.bodies)
	return out
}

func TestHTTPBeacon_Send_DeliversBody(t *testing.T) {
	rec := &beaconRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	beacon, err := NewHTTPBeacon(Config{Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := "v=1&an=ext1&t=event"
	if err := beacon.Send(context.Background(), body); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	beacon.Flush()

	got := rec.received()
	if len(got) != 1 || got[0] != body {
		t.Errorf("expected body %q delivered once, got %v", body, got)
	}
}

func TestHTTPBeacon_Send_SurvivesCanceledContext(t *testing.T) {
	rec := &beaconRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	beacon, err := NewHTTPBeacon(Config{Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := beacon.Send(ctx, "v=1"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	cancel()
	beacon.Flush()

	if len(rec.received()) != 1 {
		t.Error("beacon must complete after the caller context is canceled")
	}
}

func TestHTTPBeacon_Send_IgnoresServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	beacon, err := NewHTTPBeacon(Config{Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := beacon.Send(context.Background(), "v=1"); err != nil {
		t.Errorf("server status must not surface, got %v", err)
	}
	beacon.Flush()
}

func TestHTTPBeacon_Send_IgnoresUnreachableEndpoint(t *testing.T) {
	beacon, err := NewHTTPBeacon(Config{
		Endpoint: "http://127.0.0.1:1/collect",
		Timeout:  200 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := beacon.Send(context.Background(), "v=1"); err != nil {
		t.Errorf("connection failure must not surface, got %v", err)
	}
	beacon.Flush()
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %s", cfg.Endpoint)
	}
	if cfg.Timeout != defaultTimeout {
		t.Errorf("expected default timeout, got %s", cfg.Timeout)
	}
}

func TestConfig_Validate_BadEndpoint(t *testing.T) {
	cfg := Config{Endpoint: "not a url", Timeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for relative endpoint")
	}
}

func TestNewHTTPBeacon_BadConfig_Error(t *testing.T) {
	if _, err := NewHTTPBeacon(Config{Endpoint: "/collect"}); err == nil {
		t.Error("expected error for invalid endpoint")
	}
}
