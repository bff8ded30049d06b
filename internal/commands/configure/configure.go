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

// Package configure implements 'dctl configure' for storing chain
// credentials.
package configure

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/cli/format"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/auth"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
)

// NewCommand creates the configure command.
func NewCommand() *cobra.Command {
	var (
		chainID    string
		keyID      string
		key        string
		endpoint   string
		algorithm  string
		noDefault  bool
		useKeyring bool
		list       bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store chain credentials",
		Long: `Store chain credentials in ` + "`~/.dragonchain/credentials`" + `. Without
flags an interactive form prompts for each value. The first configured
chain becomes the default; later chains only replace it when confirmed.

With --keyring, key material goes to the operating system keyring instead
of the credentials file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runList(cmd)
			}

			values := &configureValues{
				ChainID:   chainID,
				KeyID:     keyID,
				Key:       key,
				Endpoint:  endpoint,
				Algorithm: algorithm,
			}
			if values.incomplete() {
				if !format.IsInteractive() {
					return shared.NewUsageError("no terminal for the interactive form; pass --id, --key-id and --key", nil)
				}
				if err := runForm(values); err != nil {
					return err
				}
			}
			if _, err := auth.ParseAlgorithm(values.Algorithm); err != nil {
				return shared.NewUsageError("invalid --algorithm", err)
			}

			return save(cmd, values, !noDefault, useKeyring)
		},
	}

	cmd.Flags().StringVar(&chainID, "id", "", "Dragonchain id")
	cmd.Flags().StringVar(&keyID, "key-id", "", "Auth key id")
	cmd.Flags().StringVar(&key, "key", "", "Auth key")
	cmd.Flags().StringVar(&endpoint, "endpoint-url", "", "Endpoint override for the chain")
	cmd.Flags().StringVar(&algorithm, "algorithm", string(auth.DefaultAlgorithm), "Signing algorithm: SHA256, BLAKE2b512 or SHA3-256")
	cmd.Flags().BoolVar(&noDefault, "no-default", false, "Do not make this chain the default")
	cmd.Flags().BoolVar(&useKeyring, "keyring", false, "Store key material in the OS keyring instead of the file")
	cmd.Flags().BoolVar(&list, "list", false, "List configured chains")

	return cmd
}

type configureValues struct {
	ChainID   string
	KeyID     string
	Key       string
	Endpoint  string
	Algorithm string
}

func (v *configureValues) incomplete() bool {
	return v.ChainID == "" || v.KeyID == "" || v.Key == ""
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func runForm(values *configureValues) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dragonchain ID").
				Description("The id of the chain, from the Dragonchain console").
				Validate(required("dragonchain id")).
				Value(&values.ChainID),
			huh.NewInput().
				Title("Auth Key ID").
				Validate(required("auth key id")).
				Value(&values.KeyID),
			huh.NewInput().
				Title("Auth Key").
				EchoMode(huh.EchoModePassword).
				Validate(required("auth key")).
				Value(&values.Key),
			huh.NewInput().
				Title("Endpoint").
				Description("Leave empty for managed chains").
				Placeholder("https://<id>.api.dragonchain.com").
				Value(&values.Endpoint),
			huh.NewSelect[string]().
				Title("Signing Algorithm").
				Options(
					huh.NewOption("SHA256 (default)", string(auth.AlgorithmSHA256)),
					huh.NewOption("BLAKE2b512", string(auth.AlgorithmBLAKE2b512)),
					huh.NewOption("SHA3-256", string(auth.AlgorithmSHA3256)),
				).
				Value(&values.Algorithm),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return shared.NewUsageError("aborted", nil)
		}
		return shared.NewUsageError("form cancelled", err)
	}
	return nil
}

func save(cmd *cobra.Command, values *configureValues, setDefault, useKeyring bool) error {
	file := credentials.NewFileSource("")

	if useKeyring {
		ring := credentials.NewKeyringSource()
		if !ring.Available() {
			return shared.NewConfigurationError("no OS keyring available", nil)
		}
		if err := ring.Store(values.ChainID, values.KeyID, values.Key); err != nil {
			return shared.NewConfigurationError("failed to store keys in the keyring", err)
		}
		// The chain id pointer, endpoint and algorithm still live in the
		// file; only key material moves to the keyring.
		if err := file.Save(values.ChainID, "", "", values.Endpoint, values.Algorithm, setDefault); err != nil {
			return shared.NewConfigurationError("failed to write credentials file", err)
		}
	} else if err := file.Save(values.ChainID, values.KeyID, values.Key, values.Endpoint, values.Algorithm, setDefault); err != nil {
		return shared.NewConfigurationError("failed to write credentials file", err)
	}

	if !shared.GetQuiet() {
		line := fmt.Sprintf("credentials saved for %s", values.ChainID)
		if format.IsTTY() {
			line = format.RenderOK(line)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func runList(cmd *cobra.Command) error {
	file := credentials.NewFileSource("")
	chains, err := file.Chains()
	if err != nil {
		return shared.NewConfigurationError("failed to read the credentials file", err)
	}
	defaultChain, _ := file.DragonchainID(cmd.Context())

	if shared.GetJSON() {
		type chainJSON struct {
			DragonchainID string `json:"dragonchain_id"`
			Default       bool   `json:"default"`
		}
		out := make([]chainJSON, 0, len(chains))
		for _, id := range chains {
			out = append(out, chainJSON{DragonchainID: id, Default: id == defaultChain})
		}
		return shared.EmitJSON(cmd.OutOrStdout(), out)
	}

	if len(chains) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no configured chains")
		return nil
	}
	for _, id := range chains {
		marker := " "
		if id == defaultChain {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, id)
	}
	return nil
}
