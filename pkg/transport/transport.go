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

// Package transport dispatches signed requests to a dragonchain and
// normalizes the responses.
//
// The transport layer separates wire concerns (signing, headers, timeouts,
// response parsing) from endpoint-level concerns (operation paths, request
// payloads). Every request is stamped with a fresh timestamp, signed with
// DC1-HMAC, and returned as a Result carrying the HTTP status, an ok flag,
// and the parsed body. HTTP-level failures (4xx/5xx) are data, not errors;
// only transport failures and unparseable bodies produce Go errors.
package transport

import (
	"context"
	"time"
)

// RequestSigner produces DC1-HMAC authorization headers. *auth.Signer is the
// canonical implementation.
type RequestSigner interface {
	// DragonchainID returns the chain id requests are signed for.
	DragonchainID() string

	// AuthorizationHeader returns the Authorization value for one request.
	// The path must include the query string when present.
	AuthorizationHeader(method, path, timestamp, contentType string, body []byte) string
}

// RateLimiter throttles outbound requests.
// Implementations should block until a request is allowed.
type RateLimiter interface {
	// Wait blocks until a request is allowed under the rate limit.
	// Returns an error if the context is cancelled before the request can proceed.
	Wait(ctx context.Context) error
}

// Request is one call against the chain's API.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, PATCH)
	Method string

	// Path is the request path including any query string.
	// Required, must start with "/"
	Path string

	// Body is the request payload, marshaled to compact JSON when non-nil.
	// Optional
	Body any

	// Headers are additional request headers.
	// Signed headers always win over entries given here
	Headers map[string]string

	// Raw skips JSON parsing and returns the response body as a string
	Raw bool
}

// Result is the normalized outcome of a dispatched request.
// The zero value is never returned; a nil Result always pairs with an error.
type Result struct {
	// Status is the HTTP status code
	Status int `json:"status"`

	// OK reports whether the status was in the 2xx range
	OK bool `json:"ok"`

	// Response is the parsed JSON body, or the raw body string when the
	// request asked for no parsing
	Response any `json:"response"`
}

// Timestamp renders the instant the way the chain expects it signed: UTC,
// ISO 8601 with microsecond precision and a literal Z suffix. The same
// string is sent in the timestamp header and signed into the canonical
// message, so the two can never drift apart.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}
