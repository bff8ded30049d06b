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

package errors

import (
	"fmt"
)

// InvalidCredentialError represents a credential set that could not be
// resolved or is internally inconsistent (for example an auth key without a
// matching auth key id, or no credentials found in any configured source).
// It is always raised before any network activity.
type InvalidCredentialError struct {
	// Reason explains what is wrong with the credentials
	Reason string

	// Cause is the underlying error (e.g., a config file read error)
	Cause error
}

// Error implements the error interface.
func (e *InvalidCredentialError) Error() string {
	return fmt.Sprintf("invalid credentials: %s", e.Reason)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *InvalidCredentialError) Unwrap() error {
	return e.Cause
}

// IsUserVisible marks credential failures as safe to show users.
func (e *InvalidCredentialError) IsUserVisible() bool { return true }

// UserMessage returns the message shown to users.
func (e *InvalidCredentialError) UserMessage() string { return e.Error() }

// Suggestion tells users how to provide credentials.
func (e *InvalidCredentialError) Suggestion() string {
	return "run 'dctl configure' to store credentials, or set DRAGONCHAIN_ID, DRAGONCHAIN_AUTH_KEY_ID and DRAGONCHAIN_AUTH_KEY"
}

// UnsupportedAlgorithmError represents a request for a hash algorithm outside
// the supported set. Algorithm names are validated eagerly at credential
// construction or SetAlgorithm time, never when a request is signed.
type UnsupportedAlgorithmError struct {
	// Algorithm is the name that was requested
	Algorithm string
}

// Error implements the error interface.
func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("%s is not a supported hash algorithm", e.Algorithm)
}

// IsUserVisible marks algorithm failures as safe to show users.
func (e *UnsupportedAlgorithmError) IsUserVisible() bool { return true }

// UserMessage returns the message shown to users.
func (e *UnsupportedAlgorithmError) UserMessage() string { return e.Error() }

// Suggestion lists the supported algorithm names.
func (e *UnsupportedAlgorithmError) Suggestion() string {
	return "supported algorithms are SHA256, BLAKE2b512 and SHA3-256"
}

// EncodingError represents text input that is not valid UTF-8 and therefore
// cannot be deterministically converted to bytes for hashing.
type EncodingError struct {
	// Message describes the encoding failure
	Message string
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s", e.Message)
}

// ValidationError represents malformed caller input, such as a request path
// without a leading slash or an out-of-range verification level.
type ValidationError struct {
	// Field identifies which input failed validation
	Field string

	// Message is the human-readable error description
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// ConnectionError represents any transport-level failure while communicating
// with the chain: DNS resolution, TCP connect, TLS handshake, timeout, or
// context cancellation. It is terminal for the call; no retry is attempted.
type ConnectionError struct {
	// URL is the full request URL that failed
	URL string

	// Cause is the underlying transport error
	Cause error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("error while communicating with the dragonchain: %v", e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// UnexpectedResponseError represents a response from the chain whose body
// could not be parsed as expected. The raw body is preserved for diagnosis.
// HTTP-level failures (4xx/5xx) are not errors and never produce this type.
type UnexpectedResponseError struct {
	// StatusCode is the HTTP status of the unparseable response
	StatusCode int

	// Raw is the response body as received
	Raw string

	// Cause is the parse error
	Cause error
}

// Error implements the error interface.
func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from dragonchain. response: %s | error: %v", e.Raw, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *UnexpectedResponseError) Unwrap() error {
	return e.Cause
}
