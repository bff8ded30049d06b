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
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

func newObjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "object",
		Short: "Read a smart contract's object heap",
	}
	cmd.AddCommand(newObjectGetCommand())
	cmd.AddCommand(newObjectListCommand())
	return cmd
}

func newObjectGetCommand() *cobra.Command {
	var contractID string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Fetch an object from a contract's heap",
		Long: `Fetch the value stored under KEY in a smart contract's object heap.
Inside a running contract the contract id comes from SMART_CONTRACT_ID;
elsewhere pass it with --contract.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.GetSmartContractObject(cmd.Context(), contractID, args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&contractID, "contract", "", "Smart contract id (default SMART_CONTRACT_ID)")

	return cmd
}

func newObjectListCommand() *cobra.Command {
	var contractID string

	cmd := &cobra.Command{
		Use:   "list [PREFIX]",
		Short: "List keys in a contract's heap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.ListSmartContractObjects(cmd.Context(), contractID, prefix)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&contractID, "contract", "", "Smart contract id (default SMART_CONTRACT_ID)")

	return cmd
}
