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

package dragonchain

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSmartContractObject(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, "raw heap bytes, not json")
	client, err := New(
		WithDragonchainID(testChainID),
		WithAuthKey(testKeyID, testKey),
		WithEndpoint(srv.URL),
	)
	require.NoError(t, err)

	result, err := client.GetSmartContractObject(context.Background(), "9d74a7ba", "inventory/banana")
	require.NoError(t, err)
	assert.Equal(t, "/v1/get/9d74a7ba/inventory/banana", rec.uri)
	// Heap reads skip response parsing; the body comes back verbatim.
	assert.Equal(t, "raw heap bytes, not json", result.Response)
}

func TestGetSmartContractObject_AmbientContractID(t *testing.T) {
	t.Setenv(EnvSmartContractID, "ambient-contract")
	client, rec := newTestChain(t)

	_, err := client.GetSmartContractObject(context.Background(), "", "banana")
	require.NoError(t, err)
	assert.Equal(t, "/v1/get/ambient-contract/banana", rec.uri)
}

func TestGetSmartContractObject_Validation(t *testing.T) {
	t.Setenv(EnvSmartContractID, "")
	client, _ := newTestChain(t)
	ctx := context.Background()

	_, err := client.GetSmartContractObject(ctx, "9d74a7ba", "")
	assert.Error(t, err, "key is required")

	_, err = client.GetSmartContractObject(ctx, "", "banana")
	assert.Error(t, err, "no contract id and not in a contract environment")
}

func TestListSmartContractObjects(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.ListSmartContractObjects(context.Background(), "9d74a7ba", "")
	require.NoError(t, err)
	assert.Equal(t, "/v1/list/9d74a7ba/", rec.uri)

	_, err = client.ListSmartContractObjects(context.Background(), "9d74a7ba", "inventory")
	require.NoError(t, err)
	assert.Equal(t, "/v1/list/9d74a7ba/inventory/", rec.uri)
}

func TestListSmartContractObjects_RejectsTrailingSlash(t *testing.T) {
	client, _ := newTestChain(t)

	_, err := client.ListSmartContractObjects(context.Background(), "9d74a7ba", "inventory/")
	assert.Error(t, err)
}
