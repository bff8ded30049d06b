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
	"strconv"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// BlockQuery searches blocks with a redisearch query.
type BlockQuery struct {
	// Query is the redisearch query string, for example
	// "@block_id:[60000 70000]". Required.
	Query string
	// Offset is the number of results to skip.
	Offset int
	// Limit caps the result count. Zero means the server default of 10.
	Limit int
	// SortBy names an indexed field to sort on. Empty means no sorting.
	SortBy string
	// SortDescending reverses the sort order. Only meaningful with SortBy.
	SortDescending bool
	// IDsOnly returns block ids instead of full objects.
	IDsOnly bool
}

// GetBlock gets a block by its id.
func (c *Client) GetBlock(ctx context.Context, blockID string) (*transport.Result, error) {
	if blockID == "" {
		return nil, &dcerrors.ValidationError{Field: "block id", Message: "must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/block/"+blockID)
}

// QueryBlocks searches blocks on the chain.
func (c *Client) QueryBlocks(ctx context.Context, query BlockQuery) (*transport.Result, error) {
	if query.Query == "" {
		return nil, &dcerrors.ValidationError{Field: "query", Message: "must not be empty"}
	}
	limit := query.Limit
	if limit == 0 {
		limit = defaultQueryLimit
	}
	params := map[string]string{
		"q":       query.Query,
		"offset":  strconv.Itoa(query.Offset),
		"limit":   strconv.Itoa(limit),
		"id_only": strconv.FormatBool(query.IDsOnly),
	}
	if query.SortBy != "" {
		params["sort_by"] = query.SortBy
		params["sort_asc"] = strconv.FormatBool(!query.SortDescending)
	}
	return c.transport.Get(ctx, "/v1/block"+transport.QueryString(params))
}
