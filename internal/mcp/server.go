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

// Package mcp exposes a Dragonchain client over the Model Context Protocol
// so agents can read chain state and post transactions through dctl.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

const serverName = "dragonchain"

// Config configures the MCP server.
type Config struct {
	// Version is the dctl version reported to MCP clients (default: "dev").
	Version string

	// Logger receives server logs. Logs go to stderr by default so they
	// never interfere with the stdio protocol on stdout.
	Logger *slog.Logger

	// CallsPerMinute caps tool calls of every kind (default: 100).
	CallsPerMinute int

	// SubmitsPerMinute caps dragonchain_create_transaction calls, which
	// write to the chain (default: 10).
	SubmitsPerMinute int
}

// Server wraps an MCP server that serves Dragonchain tools over stdio.
type Server struct {
	mcpServer *server.MCPServer
	chain     *dragonchain.Client
	logger    *slog.Logger
	calls     *rate.Limiter
	submits   *rate.Limiter
	version   string
}

// NewServer builds an MCP server around an authenticated chain client.
func NewServer(chain *dragonchain.Client, cfg Config) (*Server, error) {
	if chain == nil {
		return nil, errors.New("mcp server needs a chain client")
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if cfg.CallsPerMinute <= 0 {
		cfg.CallsPerMinute = 100
	}
	if cfg.SubmitsPerMinute <= 0 {
		cfg.SubmitsPerMinute = 10
	}

	s := &Server{
		mcpServer: server.NewMCPServer(serverName, cfg.Version),
		chain:     chain,
		logger:    cfg.Logger,
		calls:     newMinuteLimiter(cfg.CallsPerMinute),
		submits:   newMinuteLimiter(cfg.SubmitsPerMinute),
		version:   cfg.Version,
	}
	s.registerTools()
	return s, nil
}

// newMinuteLimiter allows n calls per minute with a burst of n.
func newMinuteLimiter(n int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(n)/60.0), n)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "dragonchain_status",
		Description: "Return the chain's status: level, version, scheme and indexing configuration.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleStatus)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "dragonchain_get_transaction",
		Description: "Fetch a single transaction by its id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"transaction_id": map[string]interface{}{
					"type":        "string",
					"description": "The transaction id assigned by the chain",
				},
			},
			Required: []string{"transaction_id"},
		},
	}, s.handleGetTransaction)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "dragonchain_query_transactions",
		Description: "Search transactions of one type with a redisearch query string.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"transaction_type": map[string]interface{}{
					"type":        "string",
					"description": "The transaction type to search within",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Redisearch query string, for example '*' or '@tag:{invoice}'",
				},
				"verbatim": map[string]interface{}{
					"type":        "boolean",
					"description": "Disable stemming on the search terms",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Number of results to skip",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum results to return (default: 10)",
				},
				"sort_by": map[string]interface{}{
					"type":        "string",
					"description": "Indexed field to sort on",
				},
				"sort_descending": map[string]interface{}{
					"type":        "boolean",
					"description": "Sort in descending order (only with sort_by)",
				},
				"ids_only": map[string]interface{}{
					"type":        "boolean",
					"description": "Return transaction ids instead of full objects",
				},
			},
			Required: []string{"transaction_type", "query"},
		},
	}, s.handleQueryTransactions)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "dragonchain_create_transaction",
		Description: "Post a new transaction to the chain. This writes to the ledger and cannot be undone.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"transaction_type": map[string]interface{}{
					"type":        "string",
					"description": "The registered transaction type to post under",
				},
				"payload": map[string]interface{}{
					"description": "Transaction payload, either a string or a JSON object",
				},
				"tag": map[string]interface{}{
					"type":        "string",
					"description": "Optional searchable tag string",
				},
				"callback_url": map[string]interface{}{
					"type":        "string",
					"description": "Optional URL the chain calls once the transaction reaches a block",
				},
			},
			Required: []string{"transaction_type", "payload"},
		},
	}, s.handleCreateTransaction)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "dragonchain_get_block",
		Description: "Fetch a single block by its id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"block_id": map[string]interface{}{
					"type":        "string",
					"description": "The block id",
				},
			},
			Required: []string{"block_id"},
		},
	}, s.handleGetBlock)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "dragonchain_query_blocks",
		Description: "Search blocks with a redisearch query string.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Redisearch query string, for example '@block_id:[61000 62000]'",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Number of results to skip",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum results to return (default: 10)",
				},
				"sort_by": map[string]interface{}{
					"type":        "string",
					"description": "Indexed field to sort on",
				},
				"sort_descending": map[string]interface{}{
					"type":        "boolean",
					"description": "Sort in descending order (only with sort_by)",
				},
				"ids_only": map[string]interface{}{
					"type":        "boolean",
					"description": "Return block ids instead of full objects",
				},
			},
			Required: []string{"query"},
		},
	}, s.handleQueryBlocks)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "dragonchain_get_verifications",
		Description: "Fetch interchain verifications for a block, optionally at one verification level.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"block_id": map[string]interface{}{
					"type":        "string",
					"description": "The block id to fetch verifications for",
				},
				"level": map[string]interface{}{
					"type":        "integer",
					"description": "Verification level 2 through 5; omit for all levels",
				},
			},
			Required: []string{"block_id"},
		},
	}, s.handleGetVerifications)
}

// Run serves the MCP protocol over stdio until the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting mcp server",
		slog.String("version", s.version),
		slog.String("dragonchain_id", s.chain.DragonchainID()))

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func errorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

func textResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// resultResponse renders a chain result as indented JSON. Remote failures
// (result.OK false) come back as tool errors so agents notice them.
func resultResponse(result *transport.Result) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	if !result.OK {
		return errorResponse(string(payload)), nil
	}
	return textResponse(string(payload)), nil
}
