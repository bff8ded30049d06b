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

func TestGetBlock(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.GetBlock(context.Background(), "61370")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/v1/block/61370", rec.uri)

	_, err = client.GetBlock(context.Background(), "")
	assert.Error(t, err)
}

func TestQueryBlocks_Defaults(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.QueryBlocks(context.Background(), BlockQuery{Query: "*"})
	require.NoError(t, err)
	assert.Equal(t, "/v1/block?id_only=false&limit=10&offset=0&q=%2A", rec.uri)
}

func TestQueryBlocks_SortAndPaging(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.QueryBlocks(context.Background(), BlockQuery{
		Query:          "@block_id:[61000 62000]",
		Offset:         20,
		Limit:          50,
		SortBy:         "block_id",
		SortDescending: true,
		IDsOnly:        true,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"/v1/block?id_only=true&limit=50&offset=20&q=%40block_id%3A%5B61000+62000%5D&sort_asc=false&sort_by=block_id",
		rec.uri)
}

func TestQueryBlocks_RequiresQuery(t *testing.T) {
	client, _ := newTestChain(t)
	_, err := client.QueryBlocks(context.Background(), BlockQuery{})
	assert.Error(t, err)
}
