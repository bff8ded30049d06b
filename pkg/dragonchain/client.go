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

// Package dragonchain is the client SDK for dragonchain ledger services.
//
// A Client signs every request with the chain's HMAC auth key (DC1-HMAC) and
// exposes the full /v1 API surface: transactions, blocks, verifications,
// smart contracts and their object heaps, transaction types, api keys, and
// interchain networks.
//
// Credentials are taken from explicit options when given, otherwise
// discovered through the standard chain: DRAGONCHAIN_* environment
// variables, the ~/.dragonchain/credentials file, then smart contract
// secret mounts.
//
// Example usage:
//
//	client, err := dragonchain.New(
//	    dragonchain.WithDragonchainID("ec3e6dac-2b70-4735-97e4-fbb1d1f0af4e"),
//	    dragonchain.WithAuthKey("JSDMWFUJDVTC", "n3hlldsFxFdP..."),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := client.GetStatus(ctx)
package dragonchain

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/httpclient"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// EnvSmartContractID marks a process as running inside a smart contract.
const EnvSmartContractID = credentials.EnvSmartContractID

// smartContractSecretRoot is where the runtime mounts contract secrets.
// Variable so tests can point it at a scratch directory.
var smartContractSecretRoot = "/var/openfaas/secrets"

// Client is a signed HTTP client for one dragonchain.
type Client struct {
	transport *transport.Client
	logger    *slog.Logger

	cfg clientConfig // option state, consumed once by New
}

// New creates a client with the given options. Credentials not provided
// explicitly are discovered from the environment, the credentials file, and
// smart contract secret mounts, in that order.
func New(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.logger = c.cfg.logger
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	ctx := context.Background()

	sources := c.cfg.sources
	if sources == nil {
		sources = credentials.DefaultSources()
	}
	static := credentials.NewStaticSource(c.cfg.dragonchainID, c.cfg.authKeyID, c.cfg.authKey, c.cfg.endpoint)
	resolver := credentials.NewResolver(append([]credentials.Source{static}, sources...)...)

	creds, err := resolver.Resolve(ctx, c.cfg.algorithm)
	if err != nil {
		return nil, err
	}
	signer, err := creds.Signer()
	if err != nil {
		return nil, err
	}

	endpoint := c.cfg.endpoint
	if endpoint == "" {
		endpoint = resolver.Endpoint(ctx, creds.DragonchainID)
	}

	httpClient := c.cfg.httpClient
	if httpClient == nil {
		hcfg := httpclient.DefaultConfig()
		if c.cfg.timeout > 0 {
			hcfg.Timeout = c.cfg.timeout
		}
		hcfg.InsecureSkipVerify = c.cfg.insecureSkipVerify
		hcfg.Logger = c.cfg.logger
		httpClient, err = httpclient.New(hcfg)
		if err != nil {
			return nil, err
		}
	}

	c.transport, err = transport.NewClient(transport.Config{
		Signer:         signer,
		Endpoint:       endpoint,
		HTTPClient:     httpClient,
		Logger:         c.cfg.logger,
		Metrics:        c.cfg.metrics,
		TracerProvider: c.cfg.tracerProvider,
		RateLimiter:    c.cfg.rateLimiter,
		Now:            c.cfg.now,
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DragonchainID returns the chain id requests are signed for.
func (c *Client) DragonchainID() string {
	return c.transport.DragonchainID()
}

// Endpoint returns the base URL requests are dispatched to.
func (c *Client) Endpoint() string {
	return c.transport.Endpoint()
}

// GetStatus gets the status of the chain.
func (c *Client) GetStatus(ctx context.Context) (*transport.Result, error) {
	return c.transport.Get(ctx, "/v1/status")
}

// GetSmartContractSecret reads a secret mounted into the running smart
// contract. It never touches the network and only works inside a smart
// contract environment.
func (c *Client) GetSmartContractSecret(secretName string) (string, error) {
	scID := os.Getenv(EnvSmartContractID)
	if scID == "" {
		return "", &dcerrors.ValidationError{
			Field:   "SMART_CONTRACT_ID",
			Message: "not running in a smart contract environment",
		}
	}
	b, err := os.ReadFile(filepath.Join(smartContractSecretRoot, "sc-"+scID+"-"+secretName))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s, for optional request fields.
func String(s string) *string {
	return &s
}

// Int returns a pointer to i, for optional request fields.
func Int(i int) *int {
	return &i
}

// Float64 returns a pointer to f, for optional request fields.
func Float64(f float64) *float64 {
	return &f
}
