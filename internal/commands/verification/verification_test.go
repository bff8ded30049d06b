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

package verification

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dragonchain/dragonchain-sdk-go/internal/cli"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

func runCommand(t *testing.T, handler http.HandlerFunc, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DRAGONCHAIN_ID", "test-chain")
	t.Setenv("DRAGONCHAIN_AUTH_KEY_ID", "test-key-id")
	t.Setenv("DRAGONCHAIN_AUTH_KEY", "test-key")

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	root := cli.NewRootCommand()
	root.AddCommand(NewCommand())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--endpoint", srv.URL))

	return root.Execute()
}

func TestGetCommand_AllLevels(t *testing.T) {
	var uri string
	err := runCommand(t, func(w http.ResponseWriter, r *http.Request) {
		uri = r.URL.RequestURI()
		w.Write([]byte(`{"2":[],"3":[]}`))
	}, "verification", "get", "61000")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if uri != "/v1/verifications/61000" {
		t.Errorf("uri = %s, want /v1/verifications/61000", uri)
	}
}

func TestGetCommand_SingleLevel(t *testing.T) {
	var uri string
	err := runCommand(t, func(w http.ResponseWriter, r *http.Request) {
		uri = r.URL.RequestURI()
		w.Write([]byte(`[]`))
	}, "verification", "get", "61000", "--level", "3")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if uri != "/v1/verifications/61000?level=3" {
		t.Errorf("uri = %s, want /v1/verifications/61000?level=3", uri)
	}
}

func TestGetCommand_LevelOutOfRange(t *testing.T) {
	err := runCommand(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, "verification", "get", "61000", "--level", "7")
	if err == nil {
		t.Fatal("expected a validation error")
	}
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != shared.ExitUsage {
		t.Errorf("error = %v, want usage exit error", err)
	}
}

func TestPendingCommand(t *testing.T) {
	var uri string
	err := runCommand(t, func(w http.ResponseWriter, r *http.Request) {
		uri = r.URL.RequestURI()
		w.Write([]byte(`{"2":["chain-a"],"3":[],"4":[],"5":[]}`))
	}, "verification", "pending", "61000")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if uri != "/v1/verifications/pending/61000" {
		t.Errorf("uri = %s, want /v1/verifications/pending/61000", uri)
	}
}
