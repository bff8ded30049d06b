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

package auth

import (
	"errors"
	"testing"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Algorithm
		wantErr bool
	}{
		{name: "sha256", input: "SHA256", want: AlgorithmSHA256},
		{name: "blake2b512", input: "BLAKE2b512", want: AlgorithmBLAKE2b512},
		{name: "sha3-256", input: "SHA3-256", want: AlgorithmSHA3256},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "MD5", wantErr: true},
		{name: "wrong case", input: "sha256", wantErr: true},
		{name: "wrong separator", input: "SHA3_256", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var unsupported *dcerrors.UnsupportedAlgorithmError
				if !errors.As(err, &unsupported) {
					t.Fatalf("ParseAlgorithm(%q) error type = %T, want *UnsupportedAlgorithmError", tt.input, err)
				}
				if unsupported.Algorithm != tt.input {
					t.Errorf("UnsupportedAlgorithmError.Algorithm = %q, want %q", unsupported.Algorithm, tt.input)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSupportedAlgorithms(t *testing.T) {
	supported := SupportedAlgorithms()
	if len(supported) != 3 {
		t.Fatalf("SupportedAlgorithms() returned %d algorithms, want 3", len(supported))
	}
	for _, a := range supported {
		if !a.Valid() {
			t.Errorf("algorithm %q should be valid", a)
		}
	}
}

func TestAlgorithm_HashSizes(t *testing.T) {
	tests := []struct {
		algorithm Algorithm
		digestLen int
		blockSize int
	}{
		{AlgorithmSHA256, 32, 64},
		{AlgorithmBLAKE2b512, 64, 128},
		{AlgorithmSHA3256, 32, 136},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			h := tt.algorithm.hashFactory()()
			if got := h.Size(); got != tt.digestLen {
				t.Errorf("digest size = %d, want %d", got, tt.digestLen)
			}
			if got := h.BlockSize(); got != tt.blockSize {
				t.Errorf("block size = %d, want %d", got, tt.blockSize)
			}
		})
	}
}
