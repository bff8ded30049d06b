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
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dragonchain/dragonchain-sdk-go/internal/cli/format"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
	"github.com/dragonchain/dragonchain-sdk-go/internal/log"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dragonchain"
)

// contractManifest is the YAML document accepted by 'dctl contract apply'.
type contractManifest struct {
	TransactionType     string            `yaml:"txn_type"`
	Image               string            `yaml:"image"`
	Cmd                 string            `yaml:"cmd"`
	Args                []string          `yaml:"args"`
	ExecutionOrder      string            `yaml:"execution_order"`
	Env                 map[string]string `yaml:"env"`
	Secrets             map[string]string `yaml:"secrets"`
	Seconds             int               `yaml:"seconds"`
	Cron                string            `yaml:"cron"`
	RegistryCredentials string            `yaml:"registry_credentials"`
}

func (m *contractManifest) createRequest() dragonchain.ContractCreateRequest {
	return dragonchain.ContractCreateRequest{
		TransactionType:           m.TransactionType,
		Image:                     m.Image,
		Cmd:                       m.Cmd,
		Args:                      m.Args,
		ExecutionOrder:            m.ExecutionOrder,
		EnvironmentVariables:      m.Env,
		Secrets:                   m.Secrets,
		ScheduleIntervalInSeconds: m.Seconds,
		CronExpression:            m.Cron,
		RegistryCredentials:       m.RegistryCredentials,
	}
}

func (m *contractManifest) updateRequest() dragonchain.ContractUpdateRequest {
	return dragonchain.ContractUpdateRequest{
		Image:                     m.Image,
		Cmd:                       m.Cmd,
		Args:                      m.Args,
		ExecutionOrder:            m.ExecutionOrder,
		EnvironmentVariables:      m.Env,
		Secrets:                   m.Secrets,
		ScheduleIntervalInSeconds: m.Seconds,
		CronExpression:            m.Cron,
		RegistryCredentials:       m.RegistryCredentials,
	}
}

func newApplyCommand() *cobra.Command {
	var (
		pattern string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or update smart contracts from manifest files",
		Long: `Apply smart contract manifests. Each manifest is a YAML file naming a
txn_type, image and cmd, plus any of args, execution_order, env, secrets,
seconds, cron and registry_credentials. Contracts whose transaction type
already exists on the chain are updated, others are created.

The --file flag accepts doublestar globs, so patterns like
'contracts/**/*.yaml' match recursively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return shared.NewUsageError("invalid file pattern", err)
			}
			if len(matches) == 0 {
				return shared.NewUsageError(fmt.Sprintf("no files match %q", pattern), nil)
			}

			client, err := shared.NewChainClient(cmd.Context())
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range matches {
				if err := applyManifest(cmd, client, path); err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), renderApplyError(path, err))
				}
			}

			if watch {
				return watchManifests(cmd, client, pattern, matches)
			}
			if failed > 0 {
				return shared.NewRequestError(fmt.Sprintf("%d of %d manifests failed", failed, len(matches)), nil)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "file", "f", "", "Manifest file or glob pattern (required)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and re-apply manifests when they change")
	cmd.MarkFlagRequired("file")

	return cmd
}

// applyManifest creates the manifest's contract, or updates it when its
// transaction type already has one.
func applyManifest(cmd *cobra.Command, client *dragonchain.Client, path string) error {
	manifest, err := loadManifest(path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	existing, err := client.GetSmartContractByType(ctx, manifest.TransactionType)
	if err != nil {
		return shared.FromError(err)
	}

	action := "created"
	switch {
	case existing.OK:
		id := contractID(existing.Response)
		if id == "" {
			return shared.NewRequestError(fmt.Sprintf("contract for type %s has no id", manifest.TransactionType), nil)
		}
		result, err := client.UpdateSmartContract(ctx, id, manifest.updateRequest())
		if err != nil {
			return shared.FromError(err)
		}
		if !result.OK {
			return shared.NewRemoteError(result.Status)
		}
		action = "updated"
	case existing.Status == http.StatusNotFound:
		result, err := client.CreateSmartContract(ctx, manifest.createRequest())
		if err != nil {
			return shared.FromError(err)
		}
		if !result.OK {
			return shared.NewRemoteError(result.Status)
		}
	default:
		return shared.NewRemoteError(existing.Status)
	}

	printApplied(cmd, action, manifest.TransactionType, path)
	return nil
}

func loadManifest(path string) (*contractManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, shared.NewUsageError(fmt.Sprintf("failed to read %s", path), err)
	}
	var m contractManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, shared.NewUsageError(fmt.Sprintf("invalid manifest %s", path), err)
	}
	if m.TransactionType == "" {
		return nil, shared.NewUsageError(fmt.Sprintf("manifest %s is missing txn_type", path), nil)
	}
	return &m, nil
}

// contractID pulls the contract id out of a get-by-type response.
func contractID(response any) string {
	obj, ok := response.(map[string]any)
	if !ok {
		return ""
	}
	id, _ := obj["id"].(string)
	return id
}

func printApplied(cmd *cobra.Command, action, txnType, path string) {
	if shared.GetQuiet() {
		return
	}
	if shared.GetJSON() {
		_ = shared.EmitJSON(cmd.OutOrStdout(), map[string]any{
			"file":     path,
			"txn_type": txnType,
			"action":   action,
		})
		return
	}
	line := fmt.Sprintf("%s %s (%s)", action, txnType, path)
	if format.IsTTY() {
		line = format.RenderOK(line)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}

func renderApplyError(path string, err error) string {
	line := fmt.Sprintf("failed to apply %s: %v", path, err)
	if format.IsTTY() {
		return format.RenderError(line)
	}
	return line
}

// watchManifests re-applies manifests as they change, until the context is
// cancelled.
func watchManifests(cmd *cobra.Command, client *dragonchain.Client, pattern string, matches []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return shared.NewRequestError("failed to start file watcher", err)
	}
	defer watcher.Close()

	// fsnotify watches directories, not globs. Watching each matched file's
	// parent also picks up manifests created later.
	dirs := make(map[string]struct{})
	for _, path := range matches {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return shared.NewRequestError(fmt.Sprintf("failed to watch %s", dir), err)
		}
	}

	logger := shared.Logger()
	logger.Info("watching for manifest changes", slog.String("pattern", pattern))

	// Editors fire several events per save. Changed paths collect in pending
	// until the timer expires, so each save applies once.
	pending := make(map[string]struct{})
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			matched, err := doublestar.PathMatch(pattern, event.Name)
			if err != nil || !matched {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(500 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", log.Error(err))
		case <-timer.C:
			for path := range pending {
				delete(pending, path)
				if err := applyManifest(cmd, client, path); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), renderApplyError(path, err))
				}
			}
		}
	}
}
