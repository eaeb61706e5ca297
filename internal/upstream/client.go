// Package upstream is the HTTP client the storefront uses to reach the cart,
// member and product services.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/config"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrUnavailable = errors.New("upstream service unavailable")

// errServerFault marks a 5xx answer so the breaker counts it; the response
// itself is still handed back to the caller.
var errServerFault = errors.New("upstream answered with a server error")

const maxResponseBytes = 4 << 20

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Bearer, when set, is sent as "Authorization: Bearer <token>".
	Bearer string
	Header http.Header
}

// Response is whatever the downstream service answered, 4xx and 5xx included.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Envelope decodes the standard {success, data, message} body.
func (r *Response) Envelope() (*models.Envelope, error) {
	var env models.Envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode upstream envelope: %w", err)
	}
	return &env, nil
}

// DecodeData unmarshals the "data" member, or the whole body when the service
// answered without an envelope.
func (r *Response) DecodeData(dest any) error {
	env, err := r.Envelope()
	if err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return json.Unmarshal(env.Data, dest)
	}
	return json.Unmarshal(r.Body, dest)
}

type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

type Client struct {
	name    string
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(name, baseURL string, cfg config.Upstream) *Client {

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerOpenDelay,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return cfg.BreakerFailures > 0 && counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				slog.String("service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}

	return &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends one request. Non-2xx answers are returned as a Response; an error
// means nothing usable came back and wraps ErrUnavailable.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {

	start := time.Now()

	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.send(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerFault
		}
		return resp, nil
	})

	metrics.UpstreamRequestDuration.WithLabelValues(c.name, req.Method).Observe(time.Since(start).Seconds())

	if err != nil && !errors.Is(err, errServerFault) {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.name, req.Method, "unavailable").Inc()
		return nil, fmt.Errorf("%s %s %s: %w: %w", c.name, req.Method, req.Path, ErrUnavailable, err)
	}

	resp := result.(*Response)
	metrics.UpstreamRequestsTotal.WithLabelValues(c.name, req.Method, outcome(resp.StatusCode)).Inc()

	return resp, nil
}

func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		switch b := req.Body.(type) {
		case json.RawMessage:
			body = bytes.NewReader(b)
		case []byte:
			body = bytes.NewReader(b)
		default:
			payload, err := json.Marshal(b)
			if err != nil {
				return nil, fmt.Errorf("failed to encode request body: %w", err)
			}
			body = bytes.NewReader(payload)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Bearer)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{StatusCode: httpResp.StatusCode, Body: payload}, nil
}

func outcome(status int) string {
	switch {
	case status >= 500:
		return "server_error"
	case status >= 400:
		return "client_error"
	default:
		return "ok"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
