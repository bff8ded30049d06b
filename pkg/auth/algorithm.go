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
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

// Algorithm identifies a hash function used for request signing. The value
// appears verbatim in the DC1-HMAC scheme identifier of the Authorization
// header, so names must match the chain's expectations exactly, including
// case.
type Algorithm string

// The closed set of supported signing algorithms.
const (
	AlgorithmSHA256     Algorithm = "SHA256"
	AlgorithmBLAKE2b512 Algorithm = "BLAKE2b512"
	AlgorithmSHA3256    Algorithm = "SHA3-256"
)

// DefaultAlgorithm is used when a client does not configure one explicitly.
const DefaultAlgorithm = AlgorithmSHA256

// SupportedAlgorithms returns all valid algorithm names.
func SupportedAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmSHA256, AlgorithmBLAKE2b512, AlgorithmSHA3256}
}

// ParseAlgorithm validates an algorithm name from configuration or user
// input. Unknown names fail here, never later when a request is signed.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AlgorithmSHA256, AlgorithmBLAKE2b512, AlgorithmSHA3256:
		return Algorithm(name), nil
	}
	return "", &dcerrors.UnsupportedAlgorithmError{Algorithm: name}
}

// Valid reports whether the algorithm is in the supported set.
func (a Algorithm) Valid() bool {
	_, err := ParseAlgorithm(string(a))
	return err == nil
}

// String returns the wire name of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// hashFactory returns a hash constructor suitable for crypto/hmac. The
// BLAKE2b-512 construction keeps its native 128-byte block and SHA3-256 its
// 136-byte rate, which crypto/hmac picks up via BlockSize. The algorithm
// must already be validated.
func (a Algorithm) hashFactory() func() hash.Hash {
	switch a {
	case AlgorithmBLAKE2b512:
		return func() hash.Hash {
			h, _ := blake2b.New512(nil)
			return h
		}
	case AlgorithmSHA3256:
		return func() hash.Hash {
			return sha3.New256()
		}
	default:
		return sha256.New
	}
}
