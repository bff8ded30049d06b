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

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

func TestNewRootCommand_PersistentFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{
		"chain", "endpoint", "timeout", "insecure", "json", "jq", "verbose", "quiet", "trace",
	} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
}

func TestRootCommand_VerboseQuietConflict(t *testing.T) {
	root := NewRootCommand()
	root.AddCommand(&cobra.Command{
		Use:  "noop",
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"noop", "--verbose", "--quiet"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error for --verbose with --quiet")
	}
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != shared.ExitUsage {
		t.Errorf("error = %v, want usage exit error", err)
	}
}

func TestRootCommand_InvalidTraceMode(t *testing.T) {
	root := NewRootCommand()
	root.AddCommand(&cobra.Command{
		Use:  "noop",
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"noop", "--trace", "carrier-pigeon"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown trace mode")
	}
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != shared.ExitUsage {
		t.Errorf("error = %v, want usage exit error", err)
	}
}

func TestRootCommand_SilencesUsage(t *testing.T) {
	cmd := NewRootCommand()
	if !cmd.SilenceUsage || !cmd.SilenceErrors {
		t.Error("root command must silence cobra's own error printing")
	}
}
