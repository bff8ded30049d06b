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

type apiKeyBody struct {
	Nickname string `json:"nickname,omitempty"`
}

// ListAPIKeys gets all HMAC api keys on the chain. Key secrets are never
// returned; only ids and metadata.
func (c *Client) ListAPIKeys(ctx context.Context) (*transport.Result, error) {
	return c.transport.Get(ctx, "/v1/api-key")
}

// GetAPIKey gets an api key's metadata by its id.
func (c *Client) GetAPIKey(ctx context.Context, keyID string) (*transport.Result, error) {
	if keyID == "" {
		return nil, &dcerrors.ValidationError{Field: "key id", Message: "must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/api-key/"+keyID)
}

// CreateAPIKey generates a new api key pair. The response is the only time
// the chain reveals the key secret.
func (c *Client) CreateAPIKey(ctx context.Context, nickname string) (*transport.Result, error) {
	return c.transport.Post(ctx, "/v1/api-key", &apiKeyBody{Nickname: nickname})
}

// UpdateAPIKey changes an api key's nickname.
func (c *Client) UpdateAPIKey(ctx context.Context, keyID, nickname string) (*transport.Result, error) {
	if keyID == "" {
		return nil, &dcerrors.ValidationError{Field: "key id", Message: "must not be empty"}
	}
	return c.transport.Put(ctx, "/v1/api-key/"+keyID, &apiKeyBody{Nickname: nickname})
}

// DeleteAPIKey revokes an api key. Requests signed with it fail from then
// on.
func (c *Client) DeleteAPIKey(ctx context.Context, keyID string) (*transport.Result, error) {
	if keyID == "" {
		return nil, &dcerrors.ValidationError{Field: "key id", Message: "must not be empty"}
	}
	return c.transport.Delete(ctx, "/v1/api-key/"+keyID)
}
