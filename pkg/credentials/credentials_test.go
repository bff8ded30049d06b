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
	"errors"
	"testing"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/auth"
	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr bool
	}{
		{
			name: "complete",
			creds: Credentials{
				DragonchainID: "TestID",
				AuthKeyID:     "TestKeyId",
				AuthKey:       "TestKey",
			},
		},
		{
			name: "complete with algorithm",
			creds: Credentials{
				DragonchainID: "TestID",
				AuthKeyID:     "TestKeyId",
				AuthKey:       "TestKey",
				Algorithm:     auth.AlgorithmSHA3256,
			},
		},
		{
			name:    "missing chain id",
			creds:   Credentials{AuthKeyID: "TestKeyId", AuthKey: "TestKey"},
			wantErr: true,
		},
		{
			name:    "key without key id",
			creds:   Credentials{DragonchainID: "TestID", AuthKey: "TestKey"},
			wantErr: true,
		},
		{
			name:    "key id without key",
			creds:   Credentials{DragonchainID: "TestID", AuthKeyID: "TestKeyId"},
			wantErr: true,
		},
		{
			name:    "no key material",
			creds:   Credentials{DragonchainID: "TestID"},
			wantErr: true,
		},
		{
			name: "unsupported algorithm",
			creds: Credentials{
				DragonchainID: "TestID",
				AuthKeyID:     "TestKeyId",
				AuthKey:       "TestKey",
				Algorithm:     "RIPEMD160",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCredentials_Validate_ErrorTypes(t *testing.T) {
	halfPair := Credentials{DragonchainID: "TestID", AuthKey: "TestKey"}
	var invalid *dcerrors.InvalidCredentialError
	if !errors.As(halfPair.Validate(), &invalid) {
		t.Error("half key pair should fail with *InvalidCredentialError")
	}

	badAlg := Credentials{DragonchainID: "TestID", AuthKeyID: "k", AuthKey: "s", Algorithm: "MD5"}
	var unsupported *dcerrors.UnsupportedAlgorithmError
	if !errors.As(badAlg.Validate(), &unsupported) {
		t.Error("bad algorithm should fail with *UnsupportedAlgorithmError")
	}
	if unsupported.Algorithm != "MD5" {
		t.Errorf("UnsupportedAlgorithmError.Algorithm = %q, want %q", unsupported.Algorithm, "MD5")
	}
}

func TestCredentials_Signer(t *testing.T) {
	creds := Credentials{
		DragonchainID: "TestID",
		AuthKeyID:     "TestKeyId",
		AuthKey:       "TestKey",
	}

	signer, err := creds.Signer()
	if err != nil {
		t.Fatalf("Signer() error = %v", err)
	}
	if signer.DragonchainID() != "TestID" {
		t.Errorf("signer chain id = %q, want %q", signer.DragonchainID(), "TestID")
	}
	if signer.Algorithm() != auth.AlgorithmSHA256 {
		t.Errorf("empty algorithm should default to SHA256, got %q", signer.Algorithm())
	}
}

func TestCredentials_Signer_Invalid(t *testing.T) {
	creds := Credentials{DragonchainID: "TestID"}
	if _, err := creds.Signer(); err == nil {
		t.Error("Signer() on incomplete credentials should fail")
	}
}
