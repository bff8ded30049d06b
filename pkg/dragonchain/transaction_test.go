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

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

func TestCreateTransaction(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.CreateTransaction(context.Background(), CreateTransactionRequest{
		TransactionType: "banana",
		Payload:         "hello world",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/v1/transaction", rec.uri)
	assert.Equal(t, `{"version":"1","txn_type":"banana","payload":"hello world"}`, rec.body)
	assert.Empty(t, rec.header.Get("X-Callback-Url"))
}

func TestCreateTransaction_ObjectPayloadAndTag(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.CreateTransaction(context.Background(), CreateTransactionRequest{
		TransactionType: "banana",
		Payload:         map[string]any{"amount": 4},
		Tag:             "pos-terminal-7",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"version":"1","txn_type":"banana","payload":{"amount":4},"tag":"pos-terminal-7"}`, rec.body)
}

func TestCreateTransaction_CallbackHeader(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.CreateTransaction(context.Background(), CreateTransactionRequest{
		TransactionType: "banana",
		Payload:         "x",
		CallbackURL:     "http://localhost:8080/callback",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/callback", rec.header.Get("X-Callback-Url"))
}

func TestCreateTransaction_Validation(t *testing.T) {
	client, _ := newTestChain(t)
	ctx := context.Background()

	var validation *dcerrors.ValidationError

	_, err := client.CreateTransaction(ctx, CreateTransactionRequest{Payload: "x"})
	require.ErrorAs(t, err, &validation)

	_, err = client.CreateTransaction(ctx, CreateTransactionRequest{TransactionType: "banana"})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "payload", validation.Field)
}

func TestCreateBulkTransaction(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.CreateBulkTransaction(context.Background(), []BulkTransaction{
		{TransactionType: "banana", Payload: "first", Tag: "a"},
		{TransactionType: "banana"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/v1/transaction_bulk", rec.uri)
	// A missing payload is submitted as the empty string.
	assert.Equal(t,
		`[{"version":"1","txn_type":"banana","payload":"first","tag":"a"},{"version":"1","txn_type":"banana","payload":""}]`,
		rec.body)
}

func TestCreateBulkTransaction_Empty(t *testing.T) {
	client, _ := newTestChain(t)
	_, err := client.CreateBulkTransaction(context.Background(), nil)
	var validation *dcerrors.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestGetTransaction(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.GetTransaction(context.Background(), "22c6d03c-4a22-4a0d-9f45-25fbc3a17f29")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/v1/transaction/22c6d03c-4a22-4a0d-9f45-25fbc3a17f29", rec.uri)

	_, err = client.GetTransaction(context.Background(), "")
	assert.Error(t, err)
}

func TestQueryTransactions_Defaults(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.QueryTransactions(context.Background(), TransactionQuery{
		TransactionType: "banana",
		Query:           "*",
	})
	require.NoError(t, err)
	assert.Equal(t, "/v1/transaction?id_only=false&limit=10&offset=0&q=%2A&transaction_type=banana&verbatim=false", rec.uri)
}

func TestQueryTransactions_SortAndPaging(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.QueryTransactions(context.Background(), TransactionQuery{
		TransactionType: "banana",
		Query:           "@tag:{pos*}",
		Verbatim:        true,
		Offset:          5,
		Limit:           2,
		SortBy:          "timestamp",
		IDsOnly:         true,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"/v1/transaction?id_only=true&limit=2&offset=5&q=%40tag%3A%7Bpos%2A%7D&sort_asc=true&sort_by=timestamp&transaction_type=banana&verbatim=true",
		rec.uri)
}

func TestQueryTransactions_SortDescending(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.QueryTransactions(context.Background(), TransactionQuery{
		TransactionType: "banana",
		Query:           "*",
		SortBy:          "timestamp",
		SortDescending:  true,
	})
	require.NoError(t, err)
	assert.Contains(t, rec.uri, "sort_asc=false")
	assert.Contains(t, rec.uri, "sort_by=timestamp")
}

func TestQueryTransactions_Validation(t *testing.T) {
	client, _ := newTestChain(t)
	ctx := context.Background()

	_, err := client.QueryTransactions(ctx, TransactionQuery{Query: "*"})
	assert.Error(t, err)

	_, err = client.QueryTransactions(ctx, TransactionQuery{TransactionType: "banana"})
	assert.Error(t, err)
}
