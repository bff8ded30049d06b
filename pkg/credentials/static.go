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

package credentials

import (
	"context"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

// StaticSource serves values fixed at construction, typically the explicit
// arguments a caller passed to the client. Empty fields defer to the next
// source in the chain, except a half-provided key pair, which is rejected
// outright rather than silently mixed with another source's other half.
type StaticSource struct {
	dragonchainID string
	authKeyID     string
	authKey       string
	endpoint      string
}

// NewStaticSource creates a source over explicit values. Any field may be
// empty.
func NewStaticSource(dragonchainID, authKeyID, authKey, endpoint string) *StaticSource {
	return &StaticSource{
		dragonchainID: dragonchainID,
		authKeyID:     authKeyID,
		authKey:       authKey,
		endpoint:      endpoint,
	}
}

// Name identifies the source in logs and error messages.
func (s *StaticSource) Name() string {
	return "static"
}

// Available always reports true; explicit values need no environment.
func (s *StaticSource) Available() bool {
	return true
}

// DragonchainID returns the explicit chain id, if one was given.
func (s *StaticSource) DragonchainID(ctx context.Context) (string, error) {
	if s.dragonchainID == "" {
		return "", ErrNotFound
	}
	return s.dragonchainID, nil
}

// AuthKey returns the explicit key pair, if one was given.
func (s *StaticSource) AuthKey(ctx context.Context, dragonchainID string) (string, string, error) {
	if s.authKeyID == "" && s.authKey == "" {
		return "", "", ErrNotFound
	}
	if s.authKeyID == "" || s.authKey == "" {
		return "", "", &dcerrors.InvalidCredentialError{Reason: "auth_key and auth_key_id must be provided together"}
	}
	return s.authKeyID, s.authKey, nil
}

// Endpoint returns the explicit endpoint, if one was given.
func (s *StaticSource) Endpoint(ctx context.Context, dragonchainID string) (string, error) {
	if s.endpoint == "" {
		return "", ErrNotFound
	}
	return s.endpoint, nil
}
