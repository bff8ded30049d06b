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

// handleGetBlock implements the dragonchain_get_block tool.
func (s *Server) handleGetBlock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.calls.Allow() {
		return errorResponse("rate limit exceeded, try again later"), nil
	}

	blockID, err := request.RequireString("block_id")
	if err != nil {
		return errorResponse("missing or invalid 'block_id' argument"), nil
	}
	s.logger.Debug("tool call",
		slog.String("tool", "dragonchain_get_block"),
		slog.String("block_id", blockID))

	result, err := s.chain.GetBlock(ctx, blockID)
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	return resultResponse(result)
}

// handleQueryBlocks implements the dragonchain_query_blocks tool.
func (s *Server) handleQueryBlocks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.calls.Allow() {
		return errorResponse("rate limit exceeded, try again later"), nil
	}

	queryString, err := request.RequireString("query")
	if err != nil {
		return errorResponse("missing or invalid 'query' argument"), nil
	}
	s.logger.Debug("tool call",
		slog.String("tool", "dragonchain_query_blocks"),
		slog.String("query", queryString))

	result, err := s.chain.QueryBlocks(ctx, dragonchain.BlockQuery{
		Query:          queryString,
		Offset:         request.GetInt("offset", 0),
		Limit:          request.GetInt("limit", 0),
		SortBy:         request.GetString("sort_by", ""),
		SortDescending: request.GetBool("sort_descending", false),
		IDsOnly:        request.GetBool("ids_only", false),
	})
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	return resultResponse(result)
}
