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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dragonchain/dragonchain-sdk-go/internal/cli"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/apikey"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/block"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/completion"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/configure"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/contract"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/interchain"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/mcpserver"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/status"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/transaction"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/txtype"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/verification"
	versioncmd "github.com/dragonchain/dragonchain-sdk-go/internal/commands/version"
)

// Version information (injected via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.SetVersion(version, commit, buildDate)

	rootCmd := cli.NewRootCommand()

	// Chain read commands
	rootCmd.AddCommand(status.NewCommand())
	rootCmd.AddCommand(block.NewCommand())
	rootCmd.AddCommand(verification.NewCommand())

	// Ledger write commands
	rootCmd.AddCommand(transaction.NewCommand())
	rootCmd.AddCommand(txtype.NewCommand())

	// Chain management commands
	rootCmd.AddCommand(contract.NewCommand())
	rootCmd.AddCommand(apikey.NewCommand())
	rootCmd.AddCommand(interchain.NewCommand())

	// Local configuration and servers
	rootCmd.AddCommand(configure.NewCommand())
	rootCmd.AddCommand(mcpserver.NewCommand())

	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.AddCommand(versioncmd.NewCommand())
	rootCmd.SetHelpCommand(cli.NewHelpCommand(rootCmd))

	// SIGINT cancels the command context so long-lived commands such as
	// 'contract apply --watch' stop cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	cli.ShutdownTracing(context.Background())
	if err != nil {
		cli.HandleExitError(err)
	}
}
