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

func TestGetTransactionType(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.GetTransactionType(context.Background(), "banana")
	require.NoError(t, err)
	assert.Equal(t, "/v1/transaction-type/banana", rec.uri)

	_, err = client.GetTransactionType(context.Background(), "")
	assert.Error(t, err)
}

func TestListTransactionTypes(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.ListTransactionTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/v1/transaction-types", rec.uri)
}

func TestCreateTransactionType(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.CreateTransactionType(context.Background(), "banana", nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/v1/transaction-type", rec.uri)
	assert.Equal(t, `{"version":"2","txn_type":"banana"}`, rec.body)
}

func TestCreateTransactionType_CustomIndexes(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.CreateTransactionType(context.Background(), "banana", []CustomIndexField{
		{Path: "price", FieldName: "price", Type: IndexTypeNumber, Options: &CustomIndexOptions{Sortable: Bool(true)}},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":"2","txn_type":"banana","custom_indexes":[{"field_name":"price","options":{"sortable":true},"path":"price","type":"number"}]}`,
		rec.body)
}

func TestCreateTransactionType_Validation(t *testing.T) {
	client, _ := newTestChain(t)
	ctx := context.Background()

	_, err := client.CreateTransactionType(ctx, "", nil)
	assert.Error(t, err)

	_, err = client.CreateTransactionType(ctx, "banana", []CustomIndexField{{Path: "x", FieldName: "x", Type: IndexType("geo")}})
	assert.Error(t, err, "index validation failures surface before the request is sent")
}

func TestDeleteTransactionType(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.DeleteTransactionType(context.Background(), "banana")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/v1/transaction-type/banana", rec.uri)

	_, err = client.DeleteTransactionType(context.Background(), "")
	assert.Error(t, err)
}
