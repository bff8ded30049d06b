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

// Verification levels span the dragonchain network tiers above the
// transaction chain itself.
const (
	VerificationLevelAll = 0
	MinVerificationLevel = 2
	MaxVerificationLevel = 5
)

// GetVerifications gets the interchain verifications recorded for a block.
// Level limits the response to one network tier between 2 and 5;
// VerificationLevelAll returns every tier.
func (c *Client) GetVerifications(ctx context.Context, blockID string, level int) (*transport.Result, error) {
	if blockID == "" {
		return nil, &dcerrors.ValidationError{Field: "block id", Message: "must not be empty"}
	}
	if level == VerificationLevelAll {
		return c.transport.Get(ctx, "/v1/verifications/"+blockID)
	}
	if level < MinVerificationLevel || level > MaxVerificationLevel {
		return nil, &dcerrors.ValidationError{Field: "level", Message: "must be between 2 and 5 inclusive"}
	}
	return c.transport.Get(ctx, "/v1/verifications/"+blockID+transport.QueryString(map[string]string{
		"level": strconv.Itoa(level),
	}))
}

// GetPendingVerifications gets the chain ids a block is still awaiting
// verifications from, grouped by level.
func (c *Client) GetPendingVerifications(ctx context.Context, blockID string) (*transport.Result, error) {
	if blockID == "" {
		return nil, &dcerrors.ValidationError{Field: "block id", Message: "must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/verifications/pending/"+blockID)
}
