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
	"strconv"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// defaultQueryLimit matches the chain's paging default.
const defaultQueryLimit = 10

// CreateTransactionRequest describes a single ledger transaction.
type CreateTransactionRequest struct {
	// TransactionType is the registered type the transaction posts under.
	TransactionType string
	// Payload is the transaction content, either a string or any
	// JSON-marshalable value.
	Payload any
	// Tag is an optional searchable tag string.
	Tag string
	// CallbackURL, when set, is called by the chain once the transaction
	// reaches a block.
	CallbackURL string
}

// BulkTransaction is one entry of a bulk submission. A nil Payload is sent
// as the empty string.
type BulkTransaction struct {
	TransactionType string
	Payload         any
	Tag             string
}

// TransactionQuery searches transactions with a redisearch query.
type TransactionQuery struct {
	// TransactionType scopes the search to one transaction type. Required.
	TransactionType string
	// Query is the redisearch query string, for example "banana" or "*".
	// Required.
	Query string
	// Verbatim disables stemming on the search terms.
	Verbatim bool
	// Offset is the number of results to skip.
	Offset int
	// Limit caps the result count. Zero means the server default of 10.
	Limit int
	// SortBy names an indexed field to sort on. Empty means no sorting.
	SortBy string
	// SortDescending reverses the sort order. Only meaningful with SortBy.
	SortDescending bool
	// IDsOnly returns transaction ids instead of full objects.
	IDsOnly bool
}

// transactionBody is the versioned wire shape of a transaction post.
type transactionBody struct {
	Version         string `json:"version"`
	TransactionType string `json:"txn_type"`
	Payload         any    `json:"payload"`
	Tag             string `json:"tag,omitempty"`
}

func buildTransactionBody(req CreateTransactionRequest) (*transactionBody, error) {
	if req.TransactionType == "" {
		return nil, &dcerrors.ValidationError{Field: "transaction type", Message: "must not be empty"}
	}
	if req.Payload == nil {
		return nil, &dcerrors.ValidationError{Field: "payload", Message: "must be a string or JSON-marshalable value"}
	}
	return &transactionBody{
		Version:         "1",
		TransactionType: req.TransactionType,
		Payload:         req.Payload,
		Tag:             req.Tag,
	}, nil
}

// CreateTransaction posts a new transaction to the chain. The result
// response carries the assigned transaction id.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*transport.Result, error) {
	body, err := buildTransactionBody(req)
	if err != nil {
		return nil, err
	}
	if req.CallbackURL == "" {
		return c.transport.Post(ctx, "/v1/transaction", body)
	}
	return c.transport.Do(ctx, &transport.Request{
		Method:  http.MethodPost,
		Path:    "/v1/transaction",
		Body:    body,
		Headers: map[string]string{"X-Callback-Url": req.CallbackURL},
	})
}

// CreateBulkTransaction posts many transactions in one request. The chain
// accepts and rejects entries individually; the response lists both sets.
func (c *Client) CreateBulkTransaction(ctx context.Context, transactions []BulkTransaction) (*transport.Result, error) {
	if len(transactions) == 0 {
		return nil, &dcerrors.ValidationError{Field: "transactions", Message: "must not be empty"}
	}
	bodies := make([]*transactionBody, 0, len(transactions))
	for _, t := range transactions {
		payload := t.Payload
		if payload == nil {
			payload = ""
		}
		bodies = append(bodies, &transactionBody{
			Version:         "1",
			TransactionType: t.TransactionType,
			Payload:         payload,
			Tag:             t.Tag,
		})
	}
	return c.transport.Post(ctx, "/v1/transaction_bulk", bodies)
}

// GetTransaction gets a transaction by its id.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*transport.Result, error) {
	if transactionID == "" {
		return nil, &dcerrors.ValidationError{Field: "transaction id", Message: "must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/transaction/"+transactionID)
}

// QueryTransactions searches transactions of one type on the chain.
func (c *Client) QueryTransactions(ctx context.Context, query TransactionQuery) (*transport.Result, error) {
	if query.TransactionType == "" {
		return nil, &dcerrors.ValidationError{Field: "transaction type", Message: "must not be empty"}
	}
	if query.Query == "" {
		return nil, &dcerrors.ValidationError{Field: "query", Message: "must not be empty"}
	}
	limit := query.Limit
	if limit == 0 {
		limit = defaultQueryLimit
	}
	params := map[string]string{
		"transaction_type": query.TransactionType,
		"q":                query.Query,
		"verbatim":         strconv.FormatBool(query.Verbatim),
		"offset":           strconv.Itoa(query.Offset),
		"limit":            strconv.Itoa(limit),
		"id_only":          strconv.FormatBool(query.IDsOnly),
	}
	if query.SortBy != "" {
		params["sort_by"] = query.SortBy
		params["sort_asc"] = strconv.FormatBool(!query.SortDescending)
	}
	return c.transport.Get(ctx, "/v1/transaction"+transport.QueryString(params))
}
