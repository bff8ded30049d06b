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
	"errors"

	"github.com/zalando/go-keyring"
)

// keyringService is the service name all entries are stored under.
const keyringService = "dragonchain"

// KeyringSource reads auth keys from the operating system keyring:
// Keychain Access on macOS, the Secret Service API on Linux, Credential
// Manager on Windows. Entries live under the "dragonchain" service with
// account names "<chain-id>/auth_key" and "<chain-id>/auth_key_id".
//
// The source is opt-in; it is not part of DefaultSources because headless
// environments commonly have no keyring daemon.
type KeyringSource struct {
	service   string
	available bool
}

// NewKeyringSource creates a keyring source, probing once for an accessible
// keyring.
func NewKeyringSource() *KeyringSource {
	s := &KeyringSource{service: keyringService, available: true}

	// Probe availability; a locked or absent keyring fails here
	_, err := keyring.Get(s.service, "__dragonchain_availability_probe__")
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		s.available = false
	}
	return s
}

// Name identifies the source in logs and error messages.
func (s *KeyringSource) Name() string {
	return "keyring"
}

// Available reports whether a keyring could be reached at construction.
func (s *KeyringSource) Available() bool {
	return s.available
}

// DragonchainID always reports not found; the keyring holds key material
// only.
func (s *KeyringSource) DragonchainID(ctx context.Context) (string, error) {
	return "", ErrNotFound
}

// AuthKey returns the key pair stored for a chain.
func (s *KeyringSource) AuthKey(ctx context.Context, dragonchainID string) (string, string, error) {
	keyID, err := s.get(dragonchainID + "/auth_key_id")
	if err != nil {
		return "", "", err
	}
	key, err := s.get(dragonchainID + "/auth_key")
	if err != nil {
		return "", "", err
	}
	return keyID, key, nil
}

// Endpoint always reports not found; the keyring holds key material only.
func (s *KeyringSource) Endpoint(ctx context.Context, dragonchainID string) (string, error) {
	return "", ErrNotFound
}

// Store saves a key pair for a chain, replacing any existing entry.
func (s *KeyringSource) Store(dragonchainID, authKeyID, authKey string) error {
	if err := keyring.Set(s.service, dragonchainID+"/auth_key_id", authKeyID); err != nil {
		return err
	}
	return keyring.Set(s.service, dragonchainID+"/auth_key", authKey)
}

// Delete removes a chain's key pair from the keyring.
func (s *KeyringSource) Delete(dragonchainID string) error {
	if err := keyring.Delete(s.service, dragonchainID+"/auth_key_id"); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	if err := keyring.Delete(s.service, dragonchainID+"/auth_key"); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

func (s *KeyringSource) get(account string) (string, error) {
	value, err := keyring.Get(s.service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}
