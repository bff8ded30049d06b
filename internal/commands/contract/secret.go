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

package contract

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

func newSecretCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Read smart contract secrets",
	}
	cmd.AddCommand(newSecretGetCommand())
	return cmd
}

func newSecretGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Read a secret mounted into the running contract",
		Long: `Read a smart contract secret. Secrets are only reachable from inside a
running contract, where the platform mounts them and sets
SMART_CONTRACT_ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			value, err := client.GetSmartContractSecret(args[0])
			if err != nil {
				return shared.FromError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
