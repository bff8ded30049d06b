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
)

// handleGetVerifications implements the dragonchain_get_verifications tool.
func (s *Server) handleGetVerifications(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.calls.Allow() {
		return errorResponse("rate limit exceeded, try again later"), nil
	}

	blockID, err := request.RequireString("block_id")
	if err != nil {
		return errorResponse("missing or invalid 'block_id' argument"), nil
	}
	level := request.GetInt("level", 0)
	s.logger.Debug("tool call",
		slog.String("tool", "dragonchain_get_verifications"),
		slog.String("block_id", blockID),
		slog.Int("level", level))

	result, err := s.chain.GetVerifications(ctx, blockID, level)
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	return resultResponse(result)
}
