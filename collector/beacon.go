package collector

import (
	"context"
	"net/http"
	"strings"
	"sync"
)

// Beacon sends one encoded hit body to the analytics collector,
// best-effort and fire-and-forget.
type Beacon interface {
	Send(ctx context.Context, body string) error
}

// HTTPBeacon delivers hits over HTTP. The request is handed off
// asynchronously: Send returns once the request is built, without
// awaiting transmission, and transport failures are dropped. No
// response is read and nothing is retried.
type HTTPBeacon struct {
	client   *http.Client
	endpoint string
	inflight sync.WaitGroup
}

// NewHTTPBeacon creates an HTTP beacon with the given configuration.
func NewHTTPBeacon(cfg Config) (*HTTPBeacon, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HTTPBeacon{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.Endpoint,
	}, nil
}

// Send posts body to the collector endpoint. An error is returned only
// when the request cannot be constructed; once handed to the transport
// the outcome is ignored.
func (b *HTTPBeacon) Send(ctx context.Context, body string) error {
	// The beacon must outlive the caller's context: delivery is
	// fire-and-forget relative to the caller, bounded by the client
	// timeout instead.
	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx),
		http.MethodPost, b.endpoint, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	b.inflight.Add(1)
	go func() {
		defer b.inflight.Done()
		resp, err := b.client.Do(req)
		if err != nil {
			return
		}
		_ = resp.Body.Close()
	}()
	return nil
}

// Flush blocks until all in-flight beacons have been handed to the
// network layer. Intended for tests and shutdown paths.
func (b *HTTPBeacon) Flush() {
	b.inflight.Wait()
}
