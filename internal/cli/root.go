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

// Package cli wires up the dctl root command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

// SetVersion sets the build version information (called from main).
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for dctl.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dctl",
		Short: "dctl - Dragonchain command line client",
		Long: `dctl talks to a Dragonchain managed blockchain: post and query
transactions, inspect blocks and their interchain verifications, manage
smart contracts, transaction types, api keys and interchain networks.

Credentials come from flags, environment variables, the OS keyring, or the
credentials file written by 'dctl configure'.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if shared.GetVerbose() && shared.GetQuiet() {
				return shared.NewUsageError("--verbose and --quiet are mutually exclusive", nil)
			}
			shared.InitLogger()
			return shared.InitTracing(c.Context())
		},
	}

	p := shared.RegisterFlagPointers()
	cmd.PersistentFlags().StringVar(p.Chain, "chain", "", "Dragonchain id to operate on (default: the configured default chain)")
	cmd.PersistentFlags().StringVar(p.Endpoint, "endpoint", "", "Chain API endpoint override")
	cmd.PersistentFlags().DurationVar(p.Timeout, "timeout", 0, "HTTP request timeout (default 30s)")
	cmd.PersistentFlags().BoolVar(p.Insecure, "insecure", false, "Skip TLS certificate verification")
	cmd.PersistentFlags().BoolVar(p.JSON, "json", false, "Output the full JSON envelope")
	cmd.PersistentFlags().StringVar(p.JQ, "jq", "", "Filter the response through a jq expression")
	cmd.PersistentFlags().BoolVarP(p.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(p.Quiet, "quiet", "q", false, "Suppress non-error output")
	cmd.PersistentFlags().StringVar(p.Trace, "trace", "", "Span export mode: stdout, otlp-http or otlp-grpc")

	return cmd
}

// HandleExitError prints err and exits with its mapped exit code.
func HandleExitError(err error) {
	shared.HandleExitError(err)
}

// ShutdownTracing flushes pending spans before the process exits.
func ShutdownTracing(ctx context.Context) {
	shared.ShutdownTracing(ctx)
}
