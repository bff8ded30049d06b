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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnvSmartContractID marks a process as running inside a smart contract.
const EnvSmartContractID = "SMART_CONTRACT_ID"

// defaultSecretRoot is where the smart contract runtime mounts secrets.
const defaultSecretRoot = "/var/openfaas/secrets"

// SmartContractSource reads auth keys from the secret files mounted into a
// running smart contract: sc-{SMART_CONTRACT_ID}-auth-key-id and
// sc-{SMART_CONTRACT_ID}-auth-key under /var/openfaas/secrets. It is only
// usable when SMART_CONTRACT_ID is set.
type SmartContractSource struct {
	root string
}

// NewSmartContractSource creates a smart contract secret source. An empty
// root selects the runtime's standard mount point.
func NewSmartContractSource(root string) *SmartContractSource {
	if root == "" {
		root = defaultSecretRoot
	}
	return &SmartContractSource{root: root}
}

// Name identifies the source in logs and error messages.
func (s *SmartContractSource) Name() string {
	return "smart-contract"
}

// Available reports whether the process runs inside a smart contract.
func (s *SmartContractSource) Available() bool {
	return os.Getenv(EnvSmartContractID) != ""
}

// DragonchainID always reports not found; inside a smart contract the chain
// id arrives through the environment.
func (s *SmartContractSource) DragonchainID(ctx context.Context) (string, error) {
	return "", ErrNotFound
}

// AuthKey returns the key pair mounted for this smart contract.
func (s *SmartContractSource) AuthKey(ctx context.Context, dragonchainID string) (string, string, error) {
	scID := os.Getenv(EnvSmartContractID)
	if scID == "" {
		return "", "", ErrNotFound
	}
	keyID, err := s.readSecret(scID, "auth-key-id")
	if err != nil {
		return "", "", err
	}
	key, err := s.readSecret(scID, "auth-key")
	if err != nil {
		return "", "", err
	}
	return keyID, key, nil
}

// Endpoint always reports not found; smart contracts reach their own chain
// through the environment-provided endpoint.
func (s *SmartContractSource) Endpoint(ctx context.Context, dragonchainID string) (string, error) {
	return "", ErrNotFound
}

func (s *SmartContractSource) readSecret(scID, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(s.root, "sc-"+scID+"-"+name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
