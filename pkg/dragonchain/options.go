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

package dragonchain

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/auth"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// clientConfig collects option values before New assembles the client.
type clientConfig struct {
	dragonchainID      string
	authKeyID          string
	authKey            string
	endpoint           string
	algorithm          auth.Algorithm
	sources            []credentials.Source
	httpClient         *http.Client
	timeout            time.Duration
	insecureSkipVerify bool
	logger             *slog.Logger
	metrics            *transport.Metrics
	tracerProvider     trace.TracerProvider
	rateLimiter        transport.RateLimiter
	now                func() time.Time
}

// Option configures a Client during New.
type Option func(*Client) error

// WithDragonchainID targets a specific chain instead of the discovered
// default.
func WithDragonchainID(id string) Option {
	return func(c *Client) error {
		c.cfg.dragonchainID = id
		return nil
	}
}

// WithAuthKey supplies the HMAC auth key pair directly, bypassing
// credential discovery for the key material.
func WithAuthKey(authKeyID, authKey string) Option {
	return func(c *Client) error {
		c.cfg.authKeyID = authKeyID
		c.cfg.authKey = authKey
		return nil
	}
}

// WithAlgorithm selects the HMAC hash algorithm. The default is SHA256.
func WithAlgorithm(algorithm auth.Algorithm) Option {
	return func(c *Client) error {
		if !algorithm.Valid() {
			return &dcerrors.UnsupportedAlgorithmError{Algorithm: string(algorithm)}
		}
		c.cfg.algorithm = algorithm
		return nil
	}
}

// WithEndpoint overrides the chain endpoint instead of deriving it from the
// dragonchain id or discovered configuration.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) error {
		c.cfg.endpoint = endpoint
		return nil
	}
}

// WithSources replaces the default credential discovery chain. Explicit
// WithDragonchainID and WithAuthKey values still take precedence.
func WithSources(sources ...credentials.Source) Option {
	return func(c *Client) error {
		c.cfg.sources = sources
		return nil
	}
}

// WithHTTPClient swaps the underlying HTTP client. Timeout and TLS options
// are ignored when one is provided.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		c.cfg.httpClient = client
		return nil
	}
}

// WithTimeout bounds each request round trip. The default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			return &dcerrors.ValidationError{Field: "timeout", Message: "must be positive"}
		}
		c.cfg.timeout = timeout
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Only for
// development against self-signed chains.
func WithInsecureSkipVerify() Option {
	return func(c *Client) error {
		c.cfg.insecureSkipVerify = true
		return nil
	}
}

// WithLogger attaches a structured logger. Logging is off by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.cfg.logger = logger
		return nil
	}
}

// WithMetrics records request counts and latencies to the given collectors.
func WithMetrics(metrics *transport.Metrics) Option {
	return func(c *Client) error {
		c.cfg.metrics = metrics
		return nil
	}
}

// WithTracerProvider emits a client span per request through the given
// provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) error {
		c.cfg.tracerProvider = provider
		return nil
	}
}

// WithRateLimiter gates request dispatch on the given limiter.
func WithRateLimiter(limiter transport.RateLimiter) Option {
	return func(c *Client) error {
		c.cfg.rateLimiter = limiter
		return nil
	}
}

// WithRateLimit caps outbound requests per second with the given burst.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) error {
		if requestsPerSecond <= 0 || burst <= 0 {
			return &dcerrors.ValidationError{Field: "rate limit", Message: "rate and burst must be positive"}
		}
		c.cfg.rateLimiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
		return nil
	}
}

// WithClock overrides the timestamp source used for request signing.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		c.cfg.now = now
		return nil
	}
}
