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

// Execution orders for smart contract invocation.
const (
	ExecutionOrderParallel = "parallel"
	ExecutionOrderSerial   = "serial"
)

// IndexType is the redisearch field type of a custom index.
type IndexType string

// Valid custom index field types.
const (
	IndexTypeText   IndexType = "text"
	IndexTypeTag    IndexType = "tag"
	IndexTypeNumber IndexType = "number"
)

// CustomIndexOptions tunes one custom index field. Unset pointers are
// omitted so the chain applies its own defaults. Fields that do not apply
// to the index type are dropped when the request is built.
type CustomIndexOptions struct {
	// NoIndex stores the field without making it searchable. Any type.
	NoIndex *bool
	// Separator splits multi-value tag fields. Tag indexes only.
	Separator *string
	// NoStem disables stemming. Text indexes only.
	NoStem *bool
	// Weight scales the field's relevance score. Text indexes only.
	Weight *float64
	// Sortable allows query results to sort on the field. Text and number
	// indexes only.
	Sortable *bool
}

// CustomIndexField declares one indexed field of a transaction type's
// payload.
type CustomIndexField struct {
	// Path is the JSONPath into the payload, for example "item.price".
	Path string
	// FieldName is the name the field is queried by.
	FieldName string
	// Type is the redisearch field type.
	Type IndexType
	// Options are optional per-field settings.
	Options *CustomIndexOptions
}

// ContractCreateRequest describes a new smart contract deployment.
type ContractCreateRequest struct {
	// TransactionType is the new type the contract executes on. Required.
	TransactionType string
	// Image is the docker image to run, for example "alpine:latest".
	// Required.
	Image string
	// Cmd is the command executed inside the image. Required.
	Cmd string
	// Args are additional command arguments.
	Args []string
	// ExecutionOrder is serial or parallel. Empty means parallel.
	ExecutionOrder string
	// EnvironmentVariables are injected into the contract environment.
	EnvironmentVariables map[string]string
	// Secrets are stored encrypted and mounted into the contract.
	Secrets map[string]string
	// ScheduleIntervalInSeconds invokes the contract on an interval.
	// Mutually exclusive with CronExpression.
	ScheduleIntervalInSeconds int
	// CronExpression invokes the contract on a cron schedule. Mutually
	// exclusive with ScheduleIntervalInSeconds.
	CronExpression string
	// RegistryCredentials authenticate docker image pulls from private
	// registries.
	RegistryCredentials string
	// CustomIndexFields index fields of the contract's transaction payloads.
	CustomIndexFields []CustomIndexField
}

// ContractUpdateRequest changes an existing smart contract. Zero values
// leave the corresponding setting untouched.
type ContractUpdateRequest struct {
	Image          string
	Cmd            string
	ExecutionOrder string
	// Enabled starts (true) or stops (false) the contract. Nil leaves the
	// state alone.
	Enabled                   *bool
	Args                      []string
	EnvironmentVariables      map[string]string
	Secrets                   map[string]string
	ScheduleIntervalInSeconds int
	CronExpression            string
	RegistryCredentials       string
}

type contractCreateBody struct {
	Version         string            `json:"version"`
	TransactionType string            `json:"txn_type"`
	Image           string            `json:"image"`
	Cmd             string            `json:"cmd"`
	ExecutionOrder  string            `json:"execution_order"`
	Env             map[string]string `json:"env,omitempty"`
	Args            []string          `json:"args,omitempty"`
	Secrets         map[string]string `json:"secrets,omitempty"`
	Seconds         int               `json:"seconds,omitempty"`
	Cron            string            `json:"cron,omitempty"`
	Auth            string            `json:"auth,omitempty"`
	CustomIndexes   []map[string]any  `json:"custom_indexes,omitempty"`
}

type contractUpdateBody struct {
	Version        string            `json:"version"`
	Image          string            `json:"image,omitempty"`
	Cmd            string            `json:"cmd,omitempty"`
	ExecutionOrder string            `json:"execution_order,omitempty"`
	DesiredState   string            `json:"desired_state,omitempty"`
	Args           []string          `json:"args,omitempty"`
	Env            map[string]string `json:"env,omitempty"`
	Secrets        map[string]string `json:"secrets,omitempty"`
	Seconds        int               `json:"seconds,omitempty"`
	Cron           string            `json:"cron,omitempty"`
	Auth           string            `json:"auth,omitempty"`
}

func validExecutionOrder(order string) bool {
	return order == ExecutionOrderSerial || order == ExecutionOrderParallel
}

// buildCustomIndexes validates index declarations and trims options down to
// the set meaningful for each field type.
func buildCustomIndexes(fields []CustomIndexField) ([]map[string]any, error) {
	indexes := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		if f.Path == "" {
			return nil, &dcerrors.ValidationError{Field: "custom index path", Message: "must not be empty"}
		}
		if f.FieldName == "" {
			return nil, &dcerrors.ValidationError{Field: "custom index field name", Message: "must not be empty"}
		}
		options := map[string]any{}
		switch f.Type {
		case IndexTypeTag:
			if f.Options != nil && f.Options.Separator != nil {
				options["separator"] = *f.Options.Separator
			}
		case IndexTypeNumber:
			if f.Options != nil && f.Options.Sortable != nil {
				options["sortable"] = *f.Options.Sortable
			}
		case IndexTypeText:
			if f.Options != nil {
				if f.Options.NoStem != nil {
					options["no_stem"] = *f.Options.NoStem
				}
				if f.Options.Weight != nil {
					options["weight"] = *f.Options.Weight
				}
				if f.Options.Sortable != nil {
					options["sortable"] = *f.Options.Sortable
				}
			}
		default:
			return nil, &dcerrors.ValidationError{Field: "custom index type", Message: "must be text, tag, or number"}
		}
		if f.Options != nil && f.Options.NoIndex != nil {
			options["no_index"] = *f.Options.NoIndex
		}
		indexes = append(indexes, map[string]any{
			"path":       f.Path,
			"type":       string(f.Type),
			"field_name": f.FieldName,
			"options":    options,
		})
	}
	return indexes, nil
}

// ListSmartContracts gets all smart contracts on the chain.
func (c *Client) ListSmartContracts(ctx context.Context) (*transport.Result, error) {
	return c.transport.Get(ctx, "/v1/contract")
}

// GetSmartContract gets a smart contract by its id.
func (c *Client) GetSmartContract(ctx context.Context, smartContractID string) (*transport.Result, error) {
	if smartContractID == "" {
		return nil, &dcerrors.ValidationError{Field: "smart contract id", Message: "must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/contract/"+smartContractID)
}

// GetSmartContractByType gets the smart contract registered for a
// transaction type.
func (c *Client) GetSmartContractByType(ctx context.Context, transactionType string) (*transport.Result, error) {
	if transactionType == "" {
		return nil, &dcerrors.ValidationError{Field: "transaction type", Message: "must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/contract/txn_type/"+transactionType)
}

// CreateSmartContract deploys a new smart contract on the chain.
func (c *Client) CreateSmartContract(ctx context.Context, req ContractCreateRequest) (*transport.Result, error) {
	if req.TransactionType == "" {
		return nil, &dcerrors.ValidationError{Field: "transaction type", Message: "must not be empty"}
	}
	if req.Image == "" {
		return nil, &dcerrors.ValidationError{Field: "image", Message: "must not be empty"}
	}
	if req.Cmd == "" {
		return nil, &dcerrors.ValidationError{Field: "cmd", Message: "must not be empty"}
	}
	order := req.ExecutionOrder
	if order == "" {
		order = ExecutionOrderParallel
	}
	if !validExecutionOrder(order) {
		return nil, &dcerrors.ValidationError{Field: "execution order", Message: "must be serial or parallel"}
	}
	if req.ScheduleIntervalInSeconds != 0 && req.CronExpression != "" {
		return nil, &dcerrors.ValidationError{Field: "schedule", Message: "may not set both an interval and a cron expression"}
	}
	body := &contractCreateBody{
		Version:         "3",
		TransactionType: req.TransactionType,
		Image:           req.Image,
		Cmd:             req.Cmd,
		ExecutionOrder:  order,
		Env:             req.EnvironmentVariables,
		Args:            req.Args,
		Secrets:         req.Secrets,
		Seconds:         req.ScheduleIntervalInSeconds,
		Cron:            req.CronExpression,
		Auth:            req.RegistryCredentials,
	}
	if len(req.CustomIndexFields) > 0 {
		indexes, err := buildCustomIndexes(req.CustomIndexFields)
		if err != nil {
			return nil, err
		}
		body.CustomIndexes = indexes
	}
	return c.transport.Post(ctx, "/v1/contract", body)
}

// UpdateSmartContract changes an existing smart contract. Only the fields
// set in the request are updated.
func (c *Client) UpdateSmartContract(ctx context.Context, smartContractID string, req ContractUpdateRequest) (*transport.Result, error) {
	if smartContractID == "" {
		return nil, &dcerrors.ValidationError{Field: "smart contract id", Message: "must not be empty"}
	}
	if req.ExecutionOrder != "" && !validExecutionOrder(req.ExecutionOrder) {
		return nil, &dcerrors.ValidationError{Field: "execution order", Message: "must be serial or parallel"}
	}
	body := &contractUpdateBody{
		Version:        "3",
		Image:          req.Image,
		Cmd:            req.Cmd,
		ExecutionOrder: req.ExecutionOrder,
		Args:           req.Args,
		Env:            req.EnvironmentVariables,
		Secrets:        req.Secrets,
		Seconds:        req.ScheduleIntervalInSeconds,
		Cron:           req.CronExpression,
		Auth:           req.RegistryCredentials,
	}
	if req.Enabled != nil {
		if *req.Enabled {
			body.DesiredState = "active"
		} else {
			body.DesiredState = "inactive"
		}
	}
	return c.transport.Put(ctx, "/v1/contract/"+smartContractID, body)
}

// DeleteSmartContract removes a smart contract from the chain.
func (c *Client) DeleteSmartContract(ctx context.Context, smartContractID string) (*transport.Result, error) {
	if smartContractID == "" {
		return nil, &dcerrors.ValidationError{Field: "smart contract id", Message: "must not be empty"}
	}
	return c.transport.Delete(ctx, "/v1/contract/"+smartContractID)
}
