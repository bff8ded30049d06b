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

package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

// handleGetTransaction implements the dragonchain_get_transaction tool.
func (s *Server) handleGetTransaction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.calls.Allow() {
		return errorResponse("rate limit exceeded, try again later"), nil
	}

	transactionID, err := request.RequireString("transaction_id")
	if err != nil {
		return errorResponse("missing or invalid 'transaction_id' argument"), nil
	}
	s.logger.Debug("tool call",
		slog.String("tool", "dragonchain_get_transaction"),
		slog.String("transaction_id", transactionID))

	result, err := s.chain.GetTransaction(ctx, transactionID)
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	return resultResponse(result)
}

// handleQueryTransactions implements the dragonchain_query_transactions tool.
func (s *Server) handleQueryTransactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.calls.Allow() {
		return errorResponse("rate limit exceeded, try again later"), nil
	}

	transactionType, err := request.RequireString("transaction_type")
	if err != nil {
		return errorResponse("missing or invalid 'transaction_type' argument"), nil
	}
	queryString, err := request.RequireString("query")
	if err != nil {
		return errorResponse("missing or invalid 'query' argument"), nil
	}
	s.logger.Debug("tool call",
		slog.String("tool", "dragonchain_query_transactions"),
		slog.String("transaction_type", transactionType),
		slog.String("query", queryString))

	result, err := s.chain.QueryTransactions(ctx, dragonchain.TransactionQuery{
		TransactionType: transactionType,
		Query:           queryString,
		Verbatim:        request.GetBool("verbatim", false),
		Offset:          request.GetInt("offset", 0),
		Limit:           request.GetInt("limit", 0),
		SortBy:          request.GetString("sort_by", ""),
		SortDescending:  request.GetBool("sort_descending", false),
		IDsOnly:         request.GetBool("ids_only", false),
	})
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	return resultResponse(result)
}

// handleCreateTransaction implements the dragonchain_create_transaction
// tool. Submissions have their own, tighter rate limit because they write
// to the ledger.
func (s *Server) handleCreateTransaction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.calls.Allow() {
		return errorResponse("rate limit exceeded, try again later"), nil
	}
	if !s.submits.Allow() {
		return errorResponse("transaction submission rate limit exceeded, try again later"), nil
	}

	transactionType, err := request.RequireString("transaction_type")
	if err != nil {
		return errorResponse("missing or invalid 'transaction_type' argument"), nil
	}
	payload, ok := request.GetArguments()["payload"]
	if !ok || payload == nil {
		return errorResponse("missing 'payload' argument"), nil
	}
	s.logger.Debug("tool call",
		slog.String("tool", "dragonchain_create_transaction"),
		slog.String("transaction_type", transactionType))

	result, err := s.chain.CreateTransaction(ctx, dragonchain.CreateTransactionRequest{
		TransactionType: transactionType,
		Payload:         payload,
		Tag:             request.GetString("tag", ""),
		CallbackURL:     request.GetString("callback_url", ""),
	})
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	return resultResponse(result)
}
