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
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dragonchain/dragonchain-sdk-go/internal/cli"
	"github.com/dragonchain/dragonchain-sdk-go/internal/commands/shared"
)

func runCommand(t *testing.T, endpoint string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DRAGONCHAIN_ID", "test-chain")
	t.Setenv("DRAGONCHAIN_AUTH_KEY_ID", "test-key-id")
	t.Setenv("DRAGONCHAIN_AUTH_KEY", "test-key")

	root := cli.NewRootCommand()
	root.AddCommand(NewCommand())

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append(args, "--endpoint", endpoint))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCreateCommand_BuildsContractBody(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = strings.TrimSpace(string(raw))
		w.WriteHeader(202)
		w.Write([]byte(`{"success":"queued"}`))
	}))
	t.Cleanup(srv.Close)

	_, _, err := runCommand(t, srv.URL,
		"contract", "create", "-t", "banana", "--image", "alpine:latest", "--cmd", "node",
		"--env", "A=B", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := `{"version":"3","txn_type":"banana","image":"alpine:latest","cmd":"node","execution_order":"parallel","env":{"A":"B"}}`
	if body != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestUpdateCommand_DisableSetsDesiredState(t *testing.T) {
	var method, uri, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		method, uri, body = r.Method, r.URL.RequestURI(), strings.TrimSpace(string(raw))
		w.WriteHeader(202)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	_, _, err := runCommand(t, srv.URL, "contract", "update", "contract-guid", "--disable", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if method != http.MethodPut || uri != "/v1/contract/contract-guid" {
		t.Errorf("request = %s %s, want PUT /v1/contract/contract-guid", method, uri)
	}
	if want := `{"version":"3","desired_state":"inactive"}`; body != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestUpdateCommand_ConflictingStateFlags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	t.Cleanup(srv.Close)

	_, _, err := runCommand(t, srv.URL, "contract", "update", "id", "--enable", "--disable")
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != shared.ExitUsage {
		t.Errorf("error = %v, want usage exit error", err)
	}
}

func TestGetCommand_RequiresIDOrType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	t.Cleanup(srv.Close)

	for _, args := range [][]string{
		{"contract", "get"},
		{"contract", "get", "some-id", "--type", "banana"},
	} {
		_, _, err := runCommand(t, srv.URL, args...)
		var exitErr *shared.ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != shared.ExitUsage {
			t.Errorf("args %v: error = %v, want usage exit error", args, err)
		}
	}
}

func TestObjectGetCommand_PrintsRawValue(t *testing.T) {
	var uri string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uri = r.URL.RequestURI()
		w.WriteHeader(200)
		w.Write([]byte(`stored-value`))
	}))
	t.Cleanup(srv.Close)

	stdout, _, err := runCommand(t, srv.URL,
		"contract", "object", "get", "mykey", "--contract", "sc-1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if uri != "/v1/get/sc-1/mykey" {
		t.Errorf("uri = %s, want /v1/get/sc-1/mykey", uri)
	}
	// Heap objects are raw bytes, printed verbatim rather than JSON quoted.
	if stdout != "stored-value\n" {
		t.Errorf("stdout = %q, want the raw value", stdout)
	}
}

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const bananaManifest = `txn_type: banana
image: alpine:latest
cmd: node
args: ["index.js"]
env:
  LOG_LEVEL: debug
`

func TestApplyCommand_CreatesMissingContract(t *testing.T) {
	var createBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/contract/txn_type/"):
			w.WriteHeader(404)
			w.Write([]byte(`{"error":{"type":"NOT_FOUND"}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/v1/contract":
			raw, _ := io.ReadAll(r.Body)
			createBody = strings.TrimSpace(string(raw))
			w.WriteHeader(202)
			w.Write([]byte(`{"success":"queued"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(500)
		}
	}))
	t.Cleanup(srv.Close)

	manifest := writeManifest(t, t.TempDir(), "banana.yaml", bananaManifest)
	stdout, _, err := runCommand(t, srv.URL, "contract", "apply", "-f", manifest)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(createBody, `"txn_type":"banana"`) ||
		!strings.Contains(createBody, `"image":"alpine:latest"`) ||
		!strings.Contains(createBody, `"env":{"LOG_LEVEL":"debug"}`) {
		t.Errorf("create body = %s, want the manifest fields", createBody)
	}
	if !strings.Contains(stdout, "created banana") {
		t.Errorf("stdout = %q, want a created line", stdout)
	}
}

func TestApplyCommand_UpdatesExistingContract(t *testing.T) {
	var updateURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/contract/txn_type/"):
			w.WriteHeader(200)
			w.Write([]byte(`{"id":"contract-guid","txn_type":"banana"}`))
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/v1/contract/"):
			updateURI = r.URL.RequestURI()
			w.WriteHeader(202)
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(500)
		}
	}))
	t.Cleanup(srv.Close)

	manifest := writeManifest(t, t.TempDir(), "banana.yaml", bananaManifest)
	stdout, _, err := runCommand(t, srv.URL, "contract", "apply", "-f", manifest)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if updateURI != "/v1/contract/contract-guid" {
		t.Errorf("update uri = %s, want /v1/contract/contract-guid", updateURI)
	}
	if !strings.Contains(stdout, "updated banana") {
		t.Errorf("stdout = %q, want an updated line", stdout)
	}
}

func TestApplyCommand_GlobAppliesEveryManifest(t *testing.T) {
	creates := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.WriteHeader(404)
			w.Write([]byte(`{"error":{"type":"NOT_FOUND"}}`))
		case r.Method == http.MethodPost:
			creates++
			w.WriteHeader(202)
			w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	writeManifest(t, dir, "banana.yaml", bananaManifest)
	writeManifest(t, dir, "apple.yaml", strings.Replace(bananaManifest, "banana", "apple", 1))

	_, _, err := runCommand(t, srv.URL, "contract", "apply", "-f", filepath.Join(dir, "*.yaml"))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if creates != 2 {
		t.Errorf("created %d contracts, want 2", creates)
	}
}

func TestApplyCommand_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	t.Cleanup(srv.Close)

	_, _, err := runCommand(t, srv.URL,
		"contract", "apply", "-f", filepath.Join(t.TempDir(), "*.yaml"))
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != shared.ExitUsage {
		t.Errorf("error = %v, want usage exit error", err)
	}
}

func TestApplyCommand_ManifestMissingType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	t.Cleanup(srv.Close)

	manifest := writeManifest(t, t.TempDir(), "broken.yaml", "image: alpine\ncmd: sh\n")
	_, stderr, err := runCommand(t, srv.URL, "contract", "apply", "-f", manifest)
	if err == nil {
		t.Fatal("expected an error for a manifest without txn_type")
	}
	if !strings.Contains(stderr, "missing txn_type") {
		t.Errorf("stderr = %q, want the manifest error", stderr)
	}
}

func TestLoadManifest(t *testing.T) {
	manifest := writeManifest(t, t.TempDir(), "full.yaml", `txn_type: banana
image: alpine:latest
cmd: node
args: ["index.js", "--verbose"]
execution_order: serial
seconds: 30
`)
	m, err := loadManifest(manifest)
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if m.TransactionType != "banana" || m.ExecutionOrder != "serial" || m.Seconds != 30 {
		t.Errorf("manifest = %+v", m)
	}
	if len(m.Args) != 2 || m.Args[1] != "--verbose" {
		t.Errorf("args = %v, want [index.js --verbose]", m.Args)
	}
}
