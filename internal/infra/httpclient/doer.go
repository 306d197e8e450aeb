package httpclient

import (
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// Doer sends requests through an *http.Client, stamps a User-Agent, logs each
// exchange and remembers whether the server ever refused our credentials.
type Doer struct {
	client    *http.Client
	userAgent string
	log       *slog.Logger

	rejected atomic.Bool
}

// DoerOption allows configuring a Doer.
type DoerOption func(*Doer)

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) DoerOption {
	return func(d *Doer) { d.client = client }
}

func WithUserAgent(ua string) DoerOption {
	return func(d *Doer) { d.userAgent = ua }
}

func WithLogger(l *slog.Logger) DoerOption {
	return func(d *Doer) { d.log = l }
}

// NewDoer builds a Doer with a client from DefaultConfig.
func NewDoer(opts ...DoerOption) *Doer {
	d := &Doer{
		client:    New(DefaultConfig()),
		userAgent: "fetchcontacts",
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Do satisfies the HTTPClient interface of go-webdav.
func (d *Doer) Do(req *http.Request) (*http.Response, error) {
	if d.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", d.userAgent)
	}

	start := time.Now()
	resp, err := d.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		d.log.Debug("http.request.failed",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		d.rejected.Store(true)
	}

	d.log.Debug("http.request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)
	return resp, nil
}

// Rejected reports whether any response so far was 401 or 403.
func (d *Doer) Rejected() bool {
	return d.rejected.Load()
}
