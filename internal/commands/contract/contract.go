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

// Package contract implements 'dctl contract' and its subcommands.
package contract

import (
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// NewCommand creates the contract command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage smart contracts",
	}
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newCreateCommand())
	cmd.AddCommand(newUpdateCommand())
	cmd.AddCommand(newDeleteCommand())
	cmd.AddCommand(newApplyCommand())
	cmd.AddCommand(newObjectCommand())
	cmd.AddCommand(newSecretCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List smart contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.ListSmartContracts(cmd.Context())
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}

func newGetCommand() *cobra.Command {
	var txnType string

	cmd := &cobra.Command{
		Use:   "get [CONTRACT_ID]",
		Short: "Fetch a smart contract by id or transaction type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (txnType != "") {
				return shared.NewUsageError("provide either a contract id or --type, not both", nil)
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			var result *transport.Result
			if len(args) == 1 {
				result, err = client.GetSmartContract(cmd.Context(), args[0])
			} else {
				result, err = client.GetSmartContractByType(cmd.Context(), txnType)
			}
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", "", "Look up by transaction type instead of id")

	return cmd
}

func newCreateCommand() *cobra.Command {
	var (
		txnType       string
		image         string
		command       string
		cmdArgs       []string
		env           map[string]string
		secrets       map[string]string
		serial        bool
		seconds       int
		cron          string
		registryCreds string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a smart contract",
		Long: `Create a smart contract from a docker image. The contract executes on
every transaction of its type, or on a schedule given with --seconds or
--cron.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := dragonchain.ExecutionOrderParallel
			if serial {
				order = dragonchain.ExecutionOrderSerial
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.CreateSmartContract(cmd.Context(), dragonchain.ContractCreateRequest{
				TransactionType:           txnType,
				Image:                     image,
				Cmd:                       command,
				Args:                      cmdArgs,
				ExecutionOrder:            order,
				EnvironmentVariables:      env,
				Secrets:                   secrets,
				ScheduleIntervalInSeconds: seconds,
				CronExpression:            cron,
				RegistryCredentials:       registryCreds,
			})
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", "", "Transaction type the contract executes on (required)")
	cmd.Flags().StringVar(&image, "image", "", "Docker image to run (required)")
	cmd.Flags().StringVar(&command, "cmd", "", "Command executed inside the image (required)")
	cmd.Flags().StringArrayVar(&cmdArgs, "arg", nil, "Command argument (repeatable)")
	cmd.Flags().StringToStringVar(&env, "env", nil, "Environment variable as KEY=VALUE (repeatable)")
	cmd.Flags().StringToStringVar(&secrets, "secret", nil, "Contract secret as NAME=VALUE (repeatable)")
	cmd.Flags().BoolVar(&serial, "serial", false, "Execute transactions one at a time, in order")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "Invoke on an interval of N seconds")
	cmd.Flags().StringVar(&cron, "cron", "", "Invoke on a cron schedule")
	cmd.Flags().StringVar(&registryCreds, "registry-credentials", "", "Credentials for private docker registries")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("image")
	cmd.MarkFlagRequired("cmd")

	return cmd
}

func newUpdateCommand() *cobra.Command {
	var (
		image         string
		command       string
		cmdArgs       []string
		env           map[string]string
		secrets       map[string]string
		serial        bool
		parallel      bool
		enable        bool
		disable       bool
		seconds       int
		cron          string
		registryCreds string
	)

	cmd := &cobra.Command{
		Use:   "update CONTRACT_ID",
		Short: "Update a smart contract",
		Long:  `Update a smart contract. Only the settings given as flags change.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if serial && parallel {
				return shared.NewUsageError("--serial and --parallel are mutually exclusive", nil)
			}
			if enable && disable {
				return shared.NewUsageError("--enable and --disable are mutually exclusive", nil)
			}

			req := dragonchain.ContractUpdateRequest{
				Image:                     image,
				Cmd:                       command,
				Args:                      cmdArgs,
				EnvironmentVariables:      env,
				Secrets:                   secrets,
				ScheduleIntervalInSeconds: seconds,
				CronExpression:            cron,
				RegistryCredentials:       registryCreds,
			}
			if serial {
				req.ExecutionOrder = dragonchain.ExecutionOrderSerial
			}
			if parallel {
				req.ExecutionOrder = dragonchain.ExecutionOrderParallel
			}
			if enable {
				req.Enabled = dragonchain.Bool(true)
			}
			if disable {
				req.Enabled = dragonchain.Bool(false)
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.UpdateSmartContract(cmd.Context(), args[0], req)
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "New docker image")
	cmd.Flags().StringVar(&command, "cmd", "", "New command")
	cmd.Flags().StringArrayVar(&cmdArgs, "arg", nil, "New command argument (repeatable)")
	cmd.Flags().StringToStringVar(&env, "env", nil, "New environment variable as KEY=VALUE (repeatable)")
	cmd.Flags().StringToStringVar(&secrets, "secret", nil, "New contract secret as NAME=VALUE (repeatable)")
	cmd.Flags().BoolVar(&serial, "serial", false, "Switch to serial execution")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Switch to parallel execution")
	cmd.Flags().BoolVar(&enable, "enable", false, "Start the contract")
	cmd.Flags().BoolVar(&disable, "disable", false, "Stop the contract")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "New invocation interval in seconds")
	cmd.Flags().StringVar(&cron, "cron", "", "New cron schedule")
	cmd.Flags().StringVar(&registryCreds, "registry-credentials", "", "New registry credentials")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CONTRACT_ID",
		Short: "Delete a smart contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.DeleteSmartContract(cmd.Context(), args[0])
			if err != nil {
				return shared.FromError(err)
			}
			return shared.EmitResult(cmd, result)
		},
	}
}
