// Copyright 2020 Dragonchain, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

// defaultTimeout bounds a request when no HTTP client is injected.
const defaultTimeout = 30 * time.Second

// contentTypeJSON is sent (and signed) with every request that has a body.
const contentTypeJSON = "application/json"

// Config configures a transport Client.
type Config struct {
	// Signer signs every outbound request (required)
	Signer RequestSigner

	// Endpoint is the base URL of the chain's API (required)
	// Example: https://ec3e6dac.api.dragonchain.com
	Endpoint string

	// HTTPClient performs the requests. Defaults to a client with a 30s
	// timeout; production callers inject the pooled httpclient one.
	HTTPClient *http.Client

	// Logger receives debug-level request/response lines. Defaults to a
	// discarding logger.
	Logger *slog.Logger

	// Metrics records request counters and latencies when non-nil
	Metrics *Metrics

	// TracerProvider supplies the tracer for client spans. Defaults to the
	// otel global provider.
	TracerProvider trace.TracerProvider

	// RateLimiter throttles requests before dispatch when non-nil
	RateLimiter RateLimiter

	// Now supplies request timestamps. Defaults to time.Now; tests inject a
	// fixed clock for deterministic signatures.
	Now func() time.Time
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Signer == nil {
		return &dcerrors.ValidationError{Field: "signer", Message: "a request signer is required"}
	}
	if c.Endpoint == "" {
		return &dcerrors.ValidationError{Field: "endpoint", Message: "an endpoint is required"}
	}
	parsed, err := url.Parse(c.Endpoint)
	if err != nil {
		return &dcerrors.ValidationError{Field: "endpoint", Message: err.Error()}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &dcerrors.ValidationError{Field: "endpoint", Message: "scheme must be http or https"}
	}
	if parsed.Host == "" {
		return &dcerrors.ValidationError{Field: "endpoint", Message: "missing host"}
	}
	return nil
}

// Client dispatches signed requests against one chain.
type Client struct {
	signer      RequestSigner
	endpoint    string
	httpClient  *http.Client
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
	rateLimiter RateLimiter
	now         func() time.Time
}

// NewClient creates a transport client from the configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		signer:      cfg.Signer,
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		httpClient:  httpClient,
		logger:      logger,
		metrics:     cfg.Metrics,
		tracer:      tp.Tracer("dragonchain-sdk-go/transport"),
		rateLimiter: cfg.RateLimiter,
		now:         now,
	}, nil
}

// Endpoint returns the base URL requests are dispatched to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// DragonchainID returns the chain id requests are signed for.
func (c *Client) DragonchainID() string {
	return c.signer.DragonchainID()
}

// Get dispatches a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
}

// GetRaw dispatches a GET request and returns the body unparsed.
func (c *Client) GetRaw(ctx context.Context, path string) (*Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Raw: true})
}

// Post dispatches a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put dispatches a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch dispatches a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete dispatches a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do signs and dispatches one request.
//
// The pipeline: validate the path, marshal the body, stamp and sign, apply
// rate limiting, send, then normalize. A non-2xx status is returned as a
// Result with OK false, never as an error. Transport failures of any kind
// come back as *ConnectionError; a 2xx body that fails to parse comes back
// as *UnexpectedResponseError with the raw body preserved.
func (c *Client) Do(ctx context.Context, req *Request) (*Result, error) {
	if req.Path == "" || !strings.HasPrefix(req.Path, "/") {
		return nil, &dcerrors.ValidationError{Field: "path", Message: "path must begin with '/'"}
	}
	method := strings.ToUpper(req.Method)

	var (
		payload     []byte
		bodyReader  io.Reader
		contentType string
	)
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &dcerrors.ValidationError{Field: "body", Message: err.Error()}
		}
		payload = b
		bodyReader = bytes.NewReader(b)
		contentType = contentTypeJSON
	}

	timestamp := Timestamp(c.now())
	authorization := c.signer.AuthorizationHeader(method, req.Path, timestamp, contentType, payload)
	fullURL := c.endpoint + req.Path

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, &dcerrors.ConnectionError{URL: fullURL, Cause: err}
		}
	}

	ctx, span := c.tracer.Start(ctx, method+" "+requestRoute(req.Path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("url.path", req.Path),
			attribute.String("dragonchain.id", c.signer.DragonchainID()),
		),
	)
	defer span.End()

	requestID := uuid.NewString()
	c.logger.DebugContext(ctx, "dispatching request",
		"request_id", requestID,
		"method", method,
		"path", req.Path,
		"timestamp", timestamp,
	)

	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &dcerrors.ValidationError{Field: "request", Message: err.Error()}
	}

	// Caller headers first, signed headers last so they always win.
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	httpReq.Header.Set("dragonchain", c.signer.DragonchainID())
	httpReq.Header.Set("timestamp", timestamp)
	httpReq.Header.Set("Authorization", authorization)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	start := c.now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.metrics.observe(method, "error", time.Since(start))
		c.logger.DebugContext(ctx, "request failed",
			"request_id", requestID,
			"error", err,
		)
		return nil, &dcerrors.ConnectionError{URL: fullURL, Cause: err}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.metrics.observe(method, "error", time.Since(start))
		return nil, &dcerrors.ConnectionError{URL: fullURL, Cause: err}
	}

	status := httpResp.StatusCode
	span.SetAttributes(attribute.Int("http.status_code", status))
	c.metrics.observe(method, strconv.Itoa(status), time.Since(start))
	c.logger.DebugContext(ctx, "received response",
		"request_id", requestID,
		"status", status,
		"bytes", len(raw),
	)

	result := &Result{
		Status: status,
		OK:     status/100 == 2,
	}
	if !result.OK {
		span.SetStatus(codes.Error, http.StatusText(status))
	}

	if req.Raw {
		result.Response = string(raw)
		return result, nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		span.RecordError(err)
		return nil, &dcerrors.UnexpectedResponseError{
			StatusCode: status,
			Raw:        string(raw),
			Cause:      err,
		}
	}
	result.Response = parsed
	return result, nil
}

// requestRoute strips the query string for span names, keeping cardinality
// bounded.
func requestRoute(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
