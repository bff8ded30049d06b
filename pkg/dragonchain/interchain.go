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

// Interchain blockchain identifiers.
const (
	InterchainBitcoin  = "bitcoin"
	InterchainEthereum = "ethereum"
)

// Networks accepted by the deprecated legacy transaction endpoints.
const (
	NetworkBTCMainnet  = "BTC_MAINNET"
	NetworkBTCTestnet3 = "BTC_TESTNET3"
	NetworkETHMainnet  = "ETH_MAINNET"
	NetworkETHRopsten  = "ETH_ROPSTEN"
	NetworkETCMainnet  = "ETC_MAINNET"
	NetworkETCMorden   = "ETC_MORDEN"
)

// BitcoinInterchainConfig configures a bitcoin wallet/network on the chain.
// Unset fields are generated or derived by the chain.
type BitcoinInterchainConfig struct {
	// Testnet selects testnet3 (true) or mainnet (false). Nil keeps the
	// chain's default.
	Testnet *bool
	// PrivateKey is a base64 or WIF encoded private key. Generated randomly
	// when empty.
	PrivateKey string
	// RPCAddress is the bitcoin core RPC node to use.
	RPCAddress string
	// RPCAuthorization is the base64 "user:pass" for the RPC node.
	RPCAuthorization string
	// UTXOScan rescans the wallet's UTXOs on registration.
	UTXOScan *bool
}

// EthereumInterchainConfig configures an ethereum wallet/network on the
// chain. Unset fields are generated or derived by the chain.
type EthereumInterchainConfig struct {
	// PrivateKey is a base64 or hex encoded private key. Generated randomly
	// when empty.
	PrivateKey string
	// RPCAddress is the ethereum RPC node to use.
	RPCAddress string
	// ChainID is the ethereum chain id. Derived automatically for custom
	// RPC addresses when nil.
	ChainID *int
}

// BitcoinTransactionOutput is one recipient of a bitcoin transaction.
// Value is denominated in BTC.
type BitcoinTransactionOutput struct {
	To    string  `json:"to"`
	Value float64 `json:"value"`
}

// BitcoinTransaction describes a bitcoin transaction to sign. Unset fields
// are estimated or defaulted by the chain.
type BitcoinTransaction struct {
	// Outputs are the recipients and amounts to send.
	Outputs []BitcoinTransactionOutput
	// SatoshisPerByte is the fee rate. Estimated when zero.
	SatoshisPerByte int
	// Data embeds a string in the transaction as a null-data output.
	Data string
	// ChangeAddress receives the change. Defaults to the sending address.
	ChangeAddress string
}

// EthereumTransaction describes an ethereum transaction to sign. All values
// are hex encoded strings; unset optional fields are estimated or derived
// by the chain.
type EthereumTransaction struct {
	// To is the destination address. Required.
	To string
	// Value is the amount to send in wei. Required.
	Value string
	// Data is the transaction input data.
	Data string
	// GasPrice is the gas price to pay in wei.
	GasPrice string
	// Gas is the gas limit.
	Gas string
	// Nonce overrides the automatically determined transaction nonce.
	Nonce string
}

type bitcoinNetworkBody struct {
	Version          string `json:"version"`
	Name             string `json:"name,omitempty"`
	Testnet          *bool  `json:"testnet,omitempty"`
	PrivateKey       string `json:"private_key,omitempty"`
	RPCAddress       string `json:"rpc_address,omitempty"`
	RPCAuthorization string `json:"rpc_authorization,omitempty"`
	UTXOScan         *bool  `json:"utxo_scan,omitempty"`
}

type ethereumNetworkBody struct {
	Version    string `json:"version"`
	Name       string `json:"name,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
	RPCAddress string `json:"rpc_address,omitempty"`
	ChainID    *int   `json:"chain_id,omitempty"`
}

type bitcoinTransactionBody struct {
	Version string                     `json:"version"`
	Outputs []BitcoinTransactionOutput `json:"outputs,omitempty"`
	Fee     int                        `json:"fee,omitempty"`
	Data    string                     `json:"data,omitempty"`
	Change  string                     `json:"change,omitempty"`
}

type ethereumTransactionBody struct {
	Version  string `json:"version"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Data     string `json:"data,omitempty"`
	GasPrice string `json:"gasPrice,omitempty"`
	Gas      string `json:"gas,omitempty"`
	Nonce    string `json:"nonce,omitempty"`
}

type legacyTransactionBody struct {
	Network     string `json:"network"`
	Transaction any    `json:"transaction"`
}

func buildBitcoinTransactionBody(tx BitcoinTransaction) *bitcoinTransactionBody {
	return &bitcoinTransactionBody{
		Version: "1",
		Outputs: tx.Outputs,
		Fee:     tx.SatoshisPerByte,
		Data:    tx.Data,
		Change:  tx.ChangeAddress,
	}
}

func buildEthereumTransactionBody(tx EthereumTransaction) (*ethereumTransactionBody, error) {
	if tx.To == "" {
		return nil, &dcerrors.ValidationError{Field: "to", Message: "must not be empty"}
	}
	if tx.Value == "" {
		return nil, &dcerrors.ValidationError{Field: "value", Message: "must not be empty"}
	}
	return &ethereumTransactionBody{
		Version:  "1",
		To:       tx.To,
		Value:    tx.Value,
		Data:     tx.Data,
		GasPrice: tx.GasPrice,
		Gas:      tx.Gas,
		Nonce:    tx.Nonce,
	}, nil
}

// CreateBitcoinInterchain creates or overwrites a bitcoin wallet/network
// for interchain use.
func (c *Client) CreateBitcoinInterchain(ctx context.Context, name string, cfg BitcoinInterchainConfig) (*transport.Result, error) {
	if name == "" {
		return nil, &dcerrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return c.transport.Post(ctx, "/v1/interchains/bitcoin", &bitcoinNetworkBody{
		Version:          "1",
		Name:             name,
		Testnet:          cfg.Testnet,
		PrivateKey:       cfg.PrivateKey,
		RPCAddress:       cfg.RPCAddress,
		RPCAuthorization: cfg.RPCAuthorization,
		UTXOScan:         cfg.UTXOScan,
	})
}

// UpdateBitcoinInterchain changes an existing bitcoin interchain network.
// Zero-value fields are left untouched.
func (c *Client) UpdateBitcoinInterchain(ctx context.Context, name string, cfg BitcoinInterchainConfig) (*transport.Result, error) {
	if name == "" {
		return nil, &dcerrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return c.transport.Patch(ctx, "/v1/interchains/bitcoin/"+name, &bitcoinNetworkBody{
		Version:          "1",
		Testnet:          cfg.Testnet,
		PrivateKey:       cfg.PrivateKey,
		RPCAddress:       cfg.RPCAddress,
		RPCAuthorization: cfg.RPCAuthorization,
		UTXOScan:         cfg.UTXOScan,
	})
}

// SignBitcoinTransaction builds and signs a bitcoin transaction with the
// named interchain network's key. The transaction is returned, not
// published.
func (c *Client) SignBitcoinTransaction(ctx context.Context, name string, tx BitcoinTransaction) (*transport.Result, error) {
	if name == "" {
		return nil, &dcerrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return c.transport.Post(ctx, "/v1/interchains/bitcoin/"+name+"/transaction", buildBitcoinTransactionBody(tx))
}

// CreateEthereumInterchain creates or overwrites an ethereum wallet/network
// for interchain use.
func (c *Client) CreateEthereumInterchain(ctx context.Context, name string, cfg EthereumInterchainConfig) (*transport.Result, error) {
	if name == "" {
		return nil, &dcerrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return c.transport.Post(ctx, "/v1/interchains/ethereum", &ethereumNetworkBody{
		Version:    "1",
		Name:       name,
		PrivateKey: cfg.PrivateKey,
		RPCAddress: cfg.RPCAddress,
		ChainID:    cfg.ChainID,
	})
}

// UpdateEthereumInterchain changes an existing ethereum interchain network.
// Zero-value fields are left untouched.
func (c *Client) UpdateEthereumInterchain(ctx context.Context, name string, cfg EthereumInterchainConfig) (*transport.Result, error) {
	if name == "" {
		return nil, &dcerrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return c.transport.Patch(ctx, "/v1/interchains/ethereum/"+name, &ethereumNetworkBody{
		Version:    "1",
		PrivateKey: cfg.PrivateKey,
		RPCAddress: cfg.RPCAddress,
		ChainID:    cfg.ChainID,
	})
}

// SignEthereumTransaction builds and signs an ethereum transaction with the
// named interchain network's key. The transaction is returned, not
// published.
func (c *Client) SignEthereumTransaction(ctx context.Context, name string, tx EthereumTransaction) (*transport.Result, error) {
	if name == "" {
		return nil, &dcerrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	body, err := buildEthereumTransactionBody(tx)
	if err != nil {
		return nil, err
	}
	return c.transport.Post(ctx, "/v1/interchains/ethereum/"+name+"/transaction", body)
}

// GetInterchainNetwork gets a configured interchain network by blockchain
// type and name.
func (c *Client) GetInterchainNetwork(ctx context.Context, blockchain, name string) (*transport.Result, error) {
	if blockchain == "" || name == "" {
		return nil, &dcerrors.ValidationError{Field: "interchain network", Message: "blockchain and name must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/interchains/"+blockchain+"/"+name)
}

// ListInterchainNetworks gets all configured networks for one blockchain
// type.
func (c *Client) ListInterchainNetworks(ctx context.Context, blockchain string) (*transport.Result, error) {
	if blockchain == "" {
		return nil, &dcerrors.ValidationError{Field: "blockchain", Message: "must not be empty"}
	}
	return c.transport.Get(ctx, "/v1/interchains/"+blockchain)
}

// DeleteInterchainNetwork removes a configured interchain network and its
// key material.
func (c *Client) DeleteInterchainNetwork(ctx context.Context, blockchain, name string) (*transport.Result, error) {
	if blockchain == "" || name == "" {
		return nil, &dcerrors.ValidationError{Field: "interchain network", Message: "blockchain and name must not be empty"}
	}
	return c.transport.Delete(ctx, "/v1/interchains/"+blockchain+"/"+name)
}

// SetDefaultInterchainNetwork marks one network as the chain's default for
// level 5 verifications.
func (c *Client) SetDefaultInterchainNetwork(ctx context.Context, blockchain, name string) (*transport.Result, error) {
	if blockchain == "" || name == "" {
		return nil, &dcerrors.ValidationError{Field: "interchain network", Message: "blockchain and name must not be empty"}
	}
	return c.transport.Post(ctx, "/v1/interchains/default", map[string]string{
		"version":    "1",
		"blockchain": blockchain,
		"name":       name,
	})
}

// GetDefaultInterchainNetwork gets the chain's default interchain network.
func (c *Client) GetDefaultInterchainNetwork(ctx context.Context) (*transport.Result, error) {
	return c.transport.Get(ctx, "/v1/interchains/default")
}

// CreateBitcoinTransaction signs a bitcoin transaction on a legacy chain.
//
// Deprecated: only works on legacy chains. Use SignBitcoinTransaction with
// an interchain network instead.
func (c *Client) CreateBitcoinTransaction(ctx context.Context, network string, tx BitcoinTransaction) (*transport.Result, error) {
	if network != NetworkBTCMainnet && network != NetworkBTCTestnet3 {
		return nil, &dcerrors.ValidationError{Field: "network", Message: "must be BTC_MAINNET or BTC_TESTNET3"}
	}
	c.logger.Warn("create bitcoin transaction is deprecated and only works on legacy chains", "network", network)
	return c.transport.Post(ctx, "/v1/public-blockchain-transaction", &legacyTransactionBody{
		Network:     network,
		Transaction: buildBitcoinTransactionBody(tx),
	})
}

// CreateEthereumTransaction signs an ethereum transaction on a legacy
// chain. The nonce cannot be overridden on legacy chains and is ignored.
//
// Deprecated: only works on legacy chains. Use SignEthereumTransaction with
// an interchain network instead.
func (c *Client) CreateEthereumTransaction(ctx context.Context, network string, tx EthereumTransaction) (*transport.Result, error) {
	switch network {
	case NetworkETHMainnet, NetworkETHRopsten, NetworkETCMainnet, NetworkETCMorden:
	default:
		return nil, &dcerrors.ValidationError{Field: "network", Message: "must be ETH_MAINNET, ETH_ROPSTEN, ETC_MAINNET, or ETC_MORDEN"}
	}
	tx.Nonce = ""
	body, err := buildEthereumTransactionBody(tx)
	if err != nil {
		return nil, err
	}
	c.logger.Warn("create ethereum transaction is deprecated and only works on legacy chains", "network", network)
	return c.transport.Post(ctx, "/v1/public-blockchain-transaction", &legacyTransactionBody{
		Network:     network,
		Transaction: body,
	})
}

// GetPublicBlockchainAddresses gets the legacy chain's public blockchain
// addresses.
//
// Deprecated: only works on legacy chains. Use ListInterchainNetworks
// instead.
func (c *Client) GetPublicBlockchainAddresses(ctx context.Context) (*transport.Result, error) {
	c.logger.Warn("get public blockchain addresses is deprecated and only works on legacy chains")
	return c.transport.Get(ctx, "/v1/public-blockchain-address")
}
