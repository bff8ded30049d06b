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
	"os"
	"strings"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// resolveSmartContractID falls back to the ambient contract id when running
// inside a smart contract.
func resolveSmartContractID(smartContractID string) (string, error) {
	if smartContractID != "" {
		return smartContractID, nil
	}
	if id := os.Getenv(EnvSmartContractID); id != "" {
		return id, nil
	}
	return "", &dcerrors.ValidationError{
		Field:   "smart contract id",
		Message: "not provided and not running in a smart contract environment",
	}
}

// GetSmartContractObject reads a key from a smart contract's object heap.
// The value is returned verbatim in the result's Response as a string,
// since heap objects are not necessarily JSON. An empty smartContractID
// means the contract this code runs inside.
func (c *Client) GetSmartContractObject(ctx context.Context, smartContractID, key string) (*transport.Result, error) {
	if key == "" {
		return nil, &dcerrors.ValidationError{Field: "key", Message: "must not be empty"}
	}
	scID, err := resolveSmartContractID(smartContractID)
	if err != nil {
		return nil, err
	}
	return c.transport.GetRaw(ctx, "/v1/get/"+scID+"/"+key)
}

// ListSmartContractObjects lists the keys under a prefix in a smart
// contract's object heap. The prefix must not end with a slash; an empty
// prefix lists the heap root.
func (c *Client) ListSmartContractObjects(ctx context.Context, smartContractID, prefixKey string) (*transport.Result, error) {
	scID, err := resolveSmartContractID(smartContractID)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(prefixKey, "/") {
		return nil, &dcerrors.ValidationError{Field: "prefix key", Message: "must not end with /"}
	}
	path := "/v1/list/" + scID + "/"
	if prefixKey != "" {
		path += prefixKey + "/"
	}
	return c.transport.Get(ctx, path)
}
