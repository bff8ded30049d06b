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

package auth_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/auth"
	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

// Reference vectors shared with the other language SDKs. A change to any of
// these means the signing scheme broke wire compatibility.
const (
	testChainID   = "TestID"
	testKeyID     = "TestKeyId"
	testKey       = "TestKey"
	testTimestamp = "2020-01-01T01:02:03.123456Z"

	emptySHA256Digest = "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU="
)

var testBody = []byte(`{"txn_type":"x","payload":"y"}`)

func newTestSigner(t *testing.T, algorithm auth.Algorithm) *auth.Signer {
	t.Helper()
	signer, err := auth.NewSigner(testChainID, testKeyID, testKey, algorithm)
	require.NoError(t, err)
	return signer
}

func TestNewSigner_Validation(t *testing.T) {
	tests := []struct {
		name          string
		dragonchainID string
		authKeyID     string
		authKey       string
		algorithm     auth.Algorithm
		wantErr       bool
	}{
		{
			name:          "valid with default algorithm",
			dragonchainID: testChainID,
			authKeyID:     testKeyID,
			authKey:       testKey,
		},
		{
			name:          "valid with explicit algorithm",
			dragonchainID: testChainID,
			authKeyID:     testKeyID,
			authKey:       testKey,
			algorithm:     auth.AlgorithmBLAKE2b512,
		},
		{
			name:      "missing dragonchain id",
			authKeyID: testKeyID,
			authKey:   testKey,
			wantErr:   true,
		},
		{
			name:          "missing auth key",
			dragonchainID: testChainID,
			authKeyID:     testKeyID,
			wantErr:       true,
		},
		{
			name:          "missing auth key id",
			dragonchainID: testChainID,
			authKey:       testKey,
			wantErr:       true,
		},
		{
			name:          "unsupported algorithm",
			dragonchainID: testChainID,
			authKeyID:     testKeyID,
			authKey:       testKey,
			algorithm:     "MD5",
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, err := auth.NewSigner(tt.dragonchainID, tt.authKeyID, tt.authKey, tt.algorithm)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, signer)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, signer)
			if tt.algorithm == "" {
				assert.Equal(t, auth.AlgorithmSHA256, signer.Algorithm())
			} else {
				assert.Equal(t, tt.algorithm, signer.Algorithm())
			}
		})
	}
}

func TestNewSigner_UnsupportedAlgorithmErrorType(t *testing.T) {
	_, err := auth.NewSigner(testChainID, testKeyID, testKey, "HMAC-MD5")

	var unsupported *dcerrors.UnsupportedAlgorithmError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "HMAC-MD5", unsupported.Algorithm)
}

func TestCanonicalMessage(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)

	message := signer.CanonicalMessage("post", "/v1/transaction", testTimestamp, "application/json", testBody)

	fields := strings.Split(message, "\n")
	require.Len(t, fields, 6)
	assert.Equal(t, "POST", fields[0], "verb must be upper-cased")
	assert.Equal(t, "/v1/transaction", fields[1])
	assert.Equal(t, testChainID, fields[2])
	assert.Equal(t, testTimestamp, fields[3])
	assert.Equal(t, "application/json", fields[4])
	assert.Equal(t, "5Ct3eCsrzu+pNDHv2rg2sFJ8jiGg2doUz7X9R+JUKDY=", fields[5])
}

func TestCanonicalMessage_EmptyBody(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)

	message := signer.CanonicalMessage("GET", "/v1/status", testTimestamp, "", nil)

	fields := strings.Split(message, "\n")
	require.Len(t, fields, 6)
	assert.Equal(t, "", fields[4], "absent content type stays an empty field")
	assert.Equal(t, emptySHA256Digest, fields[5], "empty body still hashes zero bytes")
}

func TestAuthorizationHeader_Golden(t *testing.T) {
	tests := []struct {
		algorithm auth.Algorithm
		want      string
	}{
		{
			algorithm: auth.AlgorithmSHA256,
			want:      "DC1-HMAC-SHA256 TestKeyId:ghZ/wF8O15l9/HTqf3dp2HbpiQdS7k1/UsmuE/55djE=",
		},
		{
			algorithm: auth.AlgorithmBLAKE2b512,
			want:      "DC1-HMAC-BLAKE2b512 TestKeyId:XeVZ2HmSt6qfdupjy6jS0+HxQdJGX8xaE1eYa3IqRMBvNGx8NsJQVopEDoFJi49EpcW50HvtfNBu2RwfwR1bGQ==",
		},
		{
			algorithm: auth.AlgorithmSHA3256,
			want:      "DC1-HMAC-SHA3-256 TestKeyId:bgo+GLzs+dhAAwH5y3VNWZFFNfyES8eqAJQHqfC+rlg=",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			signer := newTestSigner(t, tt.algorithm)

			got := signer.AuthorizationHeader("POST", "/v1/transaction", testTimestamp, "application/json", testBody)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorizationHeader_Deterministic(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)

	first := signer.AuthorizationHeader("POST", "/v1/transaction", testTimestamp, "application/json", testBody)
	second := signer.AuthorizationHeader("POST", "/v1/transaction", testTimestamp, "application/json", testBody)
	assert.Equal(t, first, second)

	otherPath := signer.AuthorizationHeader("POST", "/v1/transaction_bulk", testTimestamp, "application/json", testBody)
	assert.NotEqual(t, first, otherPath, "any input change must change the signature")
}

func TestDigest_EmptyInput(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)

	fromNil := signer.Digest(nil)
	fromEmpty := signer.Digest([]byte{})

	assert.Equal(t, fromNil, fromEmpty)
	assert.Equal(t, emptySHA256Digest, base64.StdEncoding.EncodeToString(fromNil))
}

func TestDigestString(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)

	digest, err := signer.DigestString(string(testBody))
	require.NoError(t, err)
	assert.Equal(t, signer.Digest(testBody), digest)
}

func TestDigestString_InvalidUTF8(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)

	_, err := signer.DigestString("\xff\xfe broken")

	var encErr *dcerrors.EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestVerify(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)
	message := signer.CanonicalMessage("POST", "/v1/transaction", testTimestamp, "application/json", testBody)
	signature := base64.StdEncoding.EncodeToString(signer.HMAC(message))

	assert.True(t, signer.Verify(signature, message))
	assert.False(t, signer.Verify(signature, message+" "), "modified message must fail")
	assert.False(t, signer.Verify("not base64!!", message), "malformed base64 must fail")
}

func TestVerify_SingleBitFlip(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)
	message := signer.CanonicalMessage("GET", "/v1/status", testTimestamp, "", nil)

	mac := signer.HMAC(message)
	mac[0] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(mac)

	assert.False(t, signer.Verify(tampered, message))
}

func TestSetAlgorithm(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)

	require.NoError(t, signer.SetAlgorithm("BLAKE2b512"))
	assert.Equal(t, auth.AlgorithmBLAKE2b512, signer.Algorithm())

	got := signer.AuthorizationHeader("POST", "/v1/transaction", testTimestamp, "application/json", testBody)
	assert.True(t, strings.HasPrefix(got, "DC1-HMAC-BLAKE2b512 "), "next request uses the new algorithm")
}

func TestSetAlgorithm_RejectsUnknownWithoutChanging(t *testing.T) {
	signer := newTestSigner(t, auth.AlgorithmSHA256)

	err := signer.SetAlgorithm("SHA512")
	var unsupported *dcerrors.UnsupportedAlgorithmError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "SHA512", unsupported.Algorithm)
	assert.Equal(t, auth.AlgorithmSHA256, signer.Algorithm(), "failed switch must not modify the signer")
}

func TestHMAC_KnownAnswer(t *testing.T) {
	// RFC 4231 test case 2 for HMAC-SHA256.
	signer, err := auth.NewSigner(testChainID, testKeyID, "Jefe", auth.AlgorithmSHA256)
	require.NoError(t, err)

	mac := signer.HMAC("what do ya want for nothing?")
	assert.Equal(t,
		"W9zBRr9gdU5qBCQmCJV1x1oAPwidJzmDnexYuWTsOEM=",
		base64.StdEncoding.EncodeToString(mac),
	)
}

func TestVerify_CrossAlgorithm(t *testing.T) {
	sha := newTestSigner(t, auth.AlgorithmSHA256)
	blake := newTestSigner(t, auth.AlgorithmBLAKE2b512)

	message := sha.CanonicalMessage("GET", "/v1/status", testTimestamp, "", nil)
	signature := base64.StdEncoding.EncodeToString(sha.HMAC(message))

	assert.False(t, blake.Verify(signature, message), "signatures never verify across algorithms")
}

func TestErrorsAreTyped(t *testing.T) {
	_, err := auth.NewSigner("", testKeyID, testKey, auth.AlgorithmSHA256)

	var invalid *dcerrors.InvalidCredentialError
	assert.True(t, errors.As(err, &invalid))
}
