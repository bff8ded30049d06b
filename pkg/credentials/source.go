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
	"fmt"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/auth"
	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

// ErrNotFound is returned by a Source that does not hold the requested
// value. The resolver treats it as "keep looking"; any other error is a real
// failure and surfaces to the caller.
var ErrNotFound = errors.New("credentials not found")

// Source supplies pieces of a credential set from one storage location.
// Sources are queried in order by the Resolver; the first hit wins.
type Source interface {
	// Name identifies the source in logs and error messages.
	Name() string

	// DragonchainID returns the default chain id held by this source.
	DragonchainID(ctx context.Context) (string, error)

	// AuthKey returns the key pair this source holds for a chain.
	AuthKey(ctx context.Context, dragonchainID string) (keyID string, key string, err error)

	// Endpoint returns this source's endpoint override for a chain.
	Endpoint(ctx context.Context, dragonchainID string) (string, error)

	// Available reports whether the source is usable in this environment.
	Available() bool
}

// DefaultSources returns the standard discovery chain: environment
// variables, then the credentials file, then smart contract secret mounts.
func DefaultSources() []Source {
	return []Source{
		NewEnvSource(),
		NewFileSource(""),
		NewSmartContractSource(""),
	}
}

// Resolver walks a chain of Sources to assemble a credential set.
type Resolver struct {
	sources []Source
}

// NewResolver creates a resolver over the given sources, keeping their
// order. Sources that report themselves unavailable are dropped up front.
func NewResolver(sources ...Source) *Resolver {
	available := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s.Available() {
			available = append(available, s)
		}
	}
	return &Resolver{sources: available}
}

// Sources returns the available sources in resolution order.
func (r *Resolver) Sources() []Source {
	return r.sources
}

// Resolve assembles a full credential set: the chain id first, then the key
// pair registered for that chain. Missing values across every source are an
// InvalidCredentialError.
func (r *Resolver) Resolve(ctx context.Context, algorithm auth.Algorithm) (Credentials, error) {
	dragonchainID, err := r.DragonchainID(ctx)
	if err != nil {
		return Credentials{}, err
	}
	keyID, key, err := r.AuthKey(ctx, dragonchainID)
	if err != nil {
		return Credentials{}, err
	}
	creds := Credentials{
		DragonchainID: dragonchainID,
		AuthKeyID:     keyID,
		AuthKey:       key,
		Algorithm:     algorithm,
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// DragonchainID resolves the chain id from the first source that has one.
func (r *Resolver) DragonchainID(ctx context.Context) (string, error) {
	var lastErr error
	for _, src := range r.sources {
		id, err := src.DragonchainID(ctx)
		if err == nil && id != "" {
			return id, nil
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			lastErr = err
		}
	}
	return "", &dcerrors.InvalidCredentialError{
		Reason: "could not determine dragonchain id",
		Cause:  lastErr,
	}
}

// AuthKey resolves the key pair for a chain from the first source that has
// both halves.
func (r *Resolver) AuthKey(ctx context.Context, dragonchainID string) (string, string, error) {
	var lastErr error
	for _, src := range r.sources {
		keyID, key, err := src.AuthKey(ctx, dragonchainID)
		if err == nil && keyID != "" && key != "" {
			return keyID, key, nil
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			lastErr = err
		}
	}
	return "", "", &dcerrors.InvalidCredentialError{
		Reason: "could not locate credentials for this client",
		Cause:  lastErr,
	}
}

// Endpoint resolves the chain's API endpoint, falling back to the managed
// hosting convention when no source has an override.
func (r *Resolver) Endpoint(ctx context.Context, dragonchainID string) string {
	for _, src := range r.sources {
		endpoint, err := src.Endpoint(ctx, dragonchainID)
		if err == nil && endpoint != "" {
			return endpoint
		}
	}
	return fmt.Sprintf("https://%s.api.dragonchain.com", dragonchainID)
}
