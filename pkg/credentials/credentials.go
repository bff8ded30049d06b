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

// Package credentials locates and validates the identity material needed to
// sign dragonchain requests: the chain id, an auth key pair, and the signing
// algorithm.
//
// Values can be given explicitly or discovered through a chain of Sources
// (environment variables, the credentials file, the OS keyring, smart
// contract secret mounts). Discovery is pure lookup; no source performs
// network I/O.
package credentials

import (
	"github.com/dragonchain/dragonchain-sdk-go/pkg/auth"
	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

// Credentials is a fully resolved identity for one chain.
type Credentials struct {
	// DragonchainID is the public id of the chain requests are signed for.
	DragonchainID string

	// AuthKeyID is the public identifier of the signing key.
	AuthKeyID string

	// AuthKey is the secret key material. It is never logged.
	AuthKey string

	// Algorithm selects the signing hash. Empty means the default (SHA256).
	Algorithm auth.Algorithm
}

// Validate checks that the credential set is complete and internally
// consistent. The key pair must be present together and the algorithm, when
// set, must be in the supported set.
func (c Credentials) Validate() error {
	if c.DragonchainID == "" {
		return &dcerrors.InvalidCredentialError{Reason: "dragonchain id is required"}
	}
	if (c.AuthKeyID == "") != (c.AuthKey == "") {
		return &dcerrors.InvalidCredentialError{Reason: "auth_key and auth_key_id must be provided together"}
	}
	if c.AuthKeyID == "" {
		return &dcerrors.InvalidCredentialError{Reason: "could not locate credentials for this client"}
	}
	if c.Algorithm != "" && !c.Algorithm.Valid() {
		return &dcerrors.UnsupportedAlgorithmError{Algorithm: string(c.Algorithm)}
	}
	return nil
}

// Signer builds a request signer from the credential set.
func (c Credentials) Signer() (*auth.Signer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return auth.NewSigner(c.DragonchainID, c.AuthKeyID, c.AuthKey, c.Algorithm)
}
