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

// Package auth implements the DC1-HMAC request signing scheme used to
// authenticate with a dragonchain.
//
// Every request is reduced to a canonical six-field message (verb, path,
// chain id, timestamp, content type, base64 body digest) which is keyed-hash
// signed with the client's secret auth key. The resulting Authorization
// header is of the form:
//
//	DC1-HMAC-SHA256 SDaEpMvtsNrB9XXXXXXXXX:yzWGW5d1u6ZC1YnBEXn3eTlLRVOeLHBbqUH1DCIbXXY=
//
// The signing math is pure and deterministic: identical inputs always
// produce identical signatures, so the chain can recompute and verify them.
package auth

import (
	"crypto/hmac"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

// Signer produces DC1-HMAC authorization material for dragonchain requests.
//
// A Signer is safe for concurrent use while the algorithm is left alone.
// SetAlgorithm is single-writer: callers that switch algorithms at runtime
// must not race the switch against in-flight signing.
type Signer struct {
	dragonchainID string
	authKeyID     string
	authKey       string
	algorithm     Algorithm
}

// NewSigner creates a Signer for the given chain and key pair. An empty
// algorithm selects the default (SHA256); anything else is validated here so
// signing operations cannot fail on it afterwards.
func NewSigner(dragonchainID, authKeyID, authKey string, algorithm Algorithm) (*Signer, error) {
	if dragonchainID == "" {
		return nil, &dcerrors.InvalidCredentialError{Reason: "dragonchain id is required"}
	}
	if authKeyID == "" || authKey == "" {
		return nil, &dcerrors.InvalidCredentialError{Reason: "auth_key and auth_key_id are required"}
	}
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	parsed, err := ParseAlgorithm(string(algorithm))
	if err != nil {
		return nil, err
	}
	return &Signer{
		dragonchainID: dragonchainID,
		authKeyID:     authKeyID,
		authKey:       authKey,
		algorithm:     parsed,
	}, nil
}

// DragonchainID returns the chain id these credentials sign for.
func (s *Signer) DragonchainID() string {
	return s.dragonchainID
}

// KeyID returns the public identifier of the signing key.
func (s *Signer) KeyID() string {
	return s.authKeyID
}

// Algorithm returns the active signing algorithm.
func (s *Signer) Algorithm() Algorithm {
	return s.algorithm
}

// SetAlgorithm switches the signing algorithm. The change applies to the
// next signed request. Unknown names are rejected without modifying the
// signer.
func (s *Signer) SetAlgorithm(name string) error {
	parsed, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	s.algorithm = parsed
	return nil
}

// Digest hashes raw bytes with the active algorithm. Empty and nil input
// hash the zero-length byte string rather than being skipped, so a bodyless
// request still carries a digest.
func (s *Signer) Digest(b []byte) []byte {
	h := s.algorithm.hashFactory()()
	h.Write(b)
	return h.Sum(nil)
}

// DigestString hashes the UTF-8 bytes of text. Text that is not valid UTF-8
// has no deterministic byte representation and fails with an EncodingError.
func (s *Signer) DigestString(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, &dcerrors.EncodingError{Message: "input string is not valid utf-8"}
	}
	return s.Digest([]byte(text)), nil
}

// CanonicalMessage builds the exact string that is signed for a request:
// the upper-cased verb, the path including any query string, the chain id,
// the timestamp, the content type, and the base64 digest of the body,
// joined by single newlines. Absent fields contribute empty strings; the
// separator count never changes.
func (s *Signer) CanonicalMessage(method, path, timestamp, contentType string, body []byte) string {
	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		strings.ToUpper(method),
		path,
		s.dragonchainID,
		timestamp,
		contentType,
		base64.StdEncoding.EncodeToString(s.Digest(body)),
	)
}

// HMAC computes the keyed hash of message using the active algorithm with
// the secret auth key.
func (s *Signer) HMAC(message string) []byte {
	mac := hmac.New(s.algorithm.hashFactory(), []byte(s.authKey))
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// AuthorizationHeader returns the Authorization header value for a request:
//
//	DC1-HMAC-{ALGORITHM} {key_id}:{base64_hmac}
func (s *Signer) AuthorizationHeader(method, path, timestamp, contentType string, body []byte) string {
	message := s.CanonicalMessage(method, path, timestamp, contentType, body)
	signature := base64.StdEncoding.EncodeToString(s.HMAC(message))
	return fmt.Sprintf("DC1-HMAC-%s %s:%s", s.algorithm, s.authKeyID, signature)
}

// Verify recomputes the HMAC for message and compares it against the
// provided base64 signature in constant time. Malformed base64 and any
// single-bit difference both fail.
func (s *Signer) Verify(providedBase64, message string) bool {
	provided, err := base64.StdEncoding.DecodeString(providedBase64)
	if err != nil {
		return false
	}
	return hmac.Equal(provided, s.HMAC(message))
}
