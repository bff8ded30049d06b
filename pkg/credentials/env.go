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
	"os"
)

// Environment variables read by EnvSource.
const (
	EnvDragonchainID = "DRAGONCHAIN_ID"
	EnvAuthKey       = "DRAGONCHAIN_AUTH_KEY"
	EnvAuthKeyID     = "DRAGONCHAIN_AUTH_KEY_ID"
	EnvEndpoint      = "DRAGONCHAIN_ENDPOINT"
)

// EnvSource reads credentials from DRAGONCHAIN_* environment variables.
// A key pair is only served when both halves are set; a lone half falls
// through to the next source.
type EnvSource struct{}

// NewEnvSource creates an environment variable source.
func NewEnvSource() *EnvSource {
	return &EnvSource{}
}

// Name identifies the source in logs and error messages.
func (s *EnvSource) Name() string {
	return "env"
}

// Available always reports true; unset variables are handled per lookup.
func (s *EnvSource) Available() bool {
	return true
}

// DragonchainID returns DRAGONCHAIN_ID when set.
func (s *EnvSource) DragonchainID(ctx context.Context) (string, error) {
	if id := os.Getenv(EnvDragonchainID); id != "" {
		return id, nil
	}
	return "", ErrNotFound
}

// AuthKey returns the pair DRAGONCHAIN_AUTH_KEY_ID / DRAGONCHAIN_AUTH_KEY
// when both are set. The environment is process global, so the chain id is
// not consulted.
func (s *EnvSource) AuthKey(ctx context.Context, dragonchainID string) (string, string, error) {
	keyID := os.Getenv(EnvAuthKeyID)
	key := os.Getenv(EnvAuthKey)
	if keyID == "" || key == "" {
		return "", "", ErrNotFound
	}
	return keyID, key, nil
}

// Endpoint returns DRAGONCHAIN_ENDPOINT when set.
func (s *EnvSource) Endpoint(ctx context.Context, dragonchainID string) (string, error) {
	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		return endpoint, nil
	}
	return "", ErrNotFound
}
