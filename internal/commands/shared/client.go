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

package shared

import (
	"context"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dragonchain/dragonchain-sdk-go/internal/log"
	"github.com/dragonchain/dragonchain-sdk-go/internal/tracing"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/auth"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

var (
	logger         *slog.Logger
	tracerProvider *sdktrace.TracerProvider
)

// InitLogger builds the process logger from the environment and the
// verbosity flags. Called once by the root command before any command runs.
func InitLogger() {
	cfg := log.FromEnv()
	if GetVerbose() {
		cfg.Level = "debug"
	}
	if GetQuiet() {
		cfg.Level = "error"
	}
	logger = log.New(cfg)
}

// Logger returns the process logger.
func Logger() *slog.Logger {
	if logger == nil {
		InitLogger()
	}
	return logger
}

// InitTracing starts the span exporter selected by --trace. A mode of "off"
// or empty is a no-op.
func InitTracing(ctx context.Context) error {
	mode, err := tracing.ParseMode(GetTrace())
	if err != nil {
		return NewUsageError("invalid --trace mode", err)
	}
	v, _, _ := GetVersion()
	provider, err := tracing.Setup(ctx, tracing.Config{
		Mode:           mode,
		ServiceVersion: v,
	})
	if err != nil {
		return NewConfigurationError("failed to start tracing", err)
	}
	tracerProvider = provider
	return nil
}

// ShutdownTracing flushes any pending spans. Safe to call when tracing was
// never started.
func ShutdownTracing(ctx context.Context) {
	if tracerProvider == nil {
		return
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		Logger().Warn("failed to flush trace spans", log.Error(err))
	}
	tracerProvider = nil
}

// NewChainClient builds an authenticated client from the persistent flags
// and the ambient credential sources.
func NewChainClient(ctx context.Context) (*dragonchain.Client, error) {
	opts := []dragonchain.Option{
		dragonchain.WithLogger(Logger()),
	}
	if chain := GetChain(); chain != "" {
		opts = append(opts, dragonchain.WithDragonchainID(chain))
	}
	if endpoint := GetEndpoint(); endpoint != "" {
		opts = append(opts, dragonchain.WithEndpoint(endpoint))
	}
	if timeout := GetTimeout(); timeout > 0 {
		opts = append(opts, dragonchain.WithTimeout(timeout))
	}
	if GetInsecure() {
		opts = append(opts, dragonchain.WithInsecureSkipVerify())
	}
	if alg := configuredAlgorithm(ctx); alg != "" {
		parsed, err := auth.ParseAlgorithm(alg)
		if err != nil {
			return nil, NewConfigurationError("invalid algorithm in credentials file", err)
		}
		opts = append(opts, dragonchain.WithAlgorithm(parsed))
	}
	if tracerProvider != nil {
		opts = append(opts, dragonchain.WithTracerProvider(tracerProvider))
	}

	client, err := dragonchain.New(opts...)
	if err != nil {
		return nil, FromError(err)
	}
	return client, nil
}

// configuredAlgorithm looks up the HMAC algorithm preference stored by
// 'dctl configure' for the selected chain.
func configuredAlgorithm(ctx context.Context) string {
	src := credentials.NewFileSource("")
	chain := GetChain()
	if chain == "" {
		id, err := src.DragonchainID(ctx)
		if err != nil {
			return ""
		}
		chain = id
	}
	return src.Algorithm(chain)
}
