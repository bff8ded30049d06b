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

func TestListAPIKeys(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.ListAPIKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/v1/api-key", rec.uri)
}

func TestGetAPIKey(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.GetAPIKey(context.Background(), "MFOIDUHQBBGE")
	require.NoError(t, err)
	assert.Equal(t, "/v1/api-key/MFOIDUHQBBGE", rec.uri)

	_, err = client.GetAPIKey(context.Background(), "")
	assert.Error(t, err)
}

func TestCreateAPIKey(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.CreateAPIKey(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/v1/api-key", rec.uri)
	assert.Equal(t, `{}`, rec.body)
}

func TestCreateAPIKey_Nickname(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.CreateAPIKey(context.Background(), "cicd")
	require.NoError(t, err)
	assert.Equal(t, `{"nickname":"cicd"}`, rec.body)
}

func TestUpdateAPIKey(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.UpdateAPIKey(context.Background(), "MFOIDUHQBBGE", "deploy-bot")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/v1/api-key/MFOIDUHQBBGE", rec.uri)
	assert.Equal(t, `{"nickname":"deploy-bot"}`, rec.body)

	_, err = client.UpdateAPIKey(context.Background(), "", "deploy-bot")
	assert.Error(t, err)
}

func TestDeleteAPIKey(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.DeleteAPIKey(context.Background(), "MFOIDUHQBBGE")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/v1/api-key/MFOIDUHQBBGE", rec.uri)

	_, err = client.DeleteAPIKey(context.Background(), "")
	assert.Error(t, err)
}
