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

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

type transactionTypeBody struct {
	Version         string           `json:"version"`
	TransactionType string           `json:"txn_type"`
	CustomIndexes   []map[string]any `json:"custom_indexes,omitempty"`
}

// GetTransactionType gets a registered transaction type.
func (c *Client) GetTransactionType(ctx context.Context, transactionType string) (*transport.Result, error) {
	if transactionType == "" {
		return nil, &dcerrors.ValidationError{Field: "transaction type", Message: "must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/transaction-type/"+transactionType)
}

// ListTransactionTypes gets all registered transaction types.
func (c *Client) ListTransactionTypes(ctx context.Context) (*transport.Result, error) {
	return c.transport.Get(ctx, "/v1/transaction-types")
}

// CreateTransactionType registers a new transaction type, optionally with
// custom payload indexes for querying.
func (c *Client) CreateTransactionType(ctx context.Context, transactionType string, customIndexFields []CustomIndexField) (*transport.Result, error) {
	if transactionType == "" {
		return nil, &dcerrors.ValidationError{Field: "transaction type", Message: "must not be empty"}
	}
	body := &transactionTypeBody{Version: "2", TransactionType: transactionType}
	if len(customIndexFields) > 0 {
		indexes, err := buildCustomIndexes(customIndexFields)
		if err != nil {
			return nil, err
		}
		body.CustomIndexes = indexes
	}
	return c.transport.Post(ctx, "/v1/transaction-type", body)
}

// DeleteTransactionType removes a transaction type. Its existing
// transactions stay on the ledger.
func (c *Client) DeleteTransactionType(ctx context.Context, transactionType string) (*transport.Result, error) {
	if transactionType == "" {
		return nil, &dcerrors.ValidationError{Field: "transaction type", Message: "must not be empty"}
	}
	return c.transport.Delete(ctx, "/v1/transaction-type/"+transactionType)
}
