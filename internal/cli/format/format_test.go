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

package format

import (
	"strings"
	"testing"
)

func TestIsTTY_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if IsTTY() {
		t.Error("IsTTY() = true with NO_COLOR set")
	}
}

func TestIsTTY_DumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if IsTTY() {
		t.Error("IsTTY() = true with TERM=dumb")
	}
}

func TestIsTTY_FalseUnderTests(t *testing.T) {
	// Test binaries run with piped stdout.
	if IsTTY() {
		t.Error("IsTTY() = true without a terminal")
	}
}

func TestRenderOK(t *testing.T) {
	got := RenderOK("200")
	if !strings.Contains(got, SymbolOK) {
		t.Errorf("RenderOK(200) = %q, want the %s symbol", got, SymbolOK)
	}
	if !strings.Contains(got, "200") {
		t.Errorf("RenderOK(200) = %q, want the message", got)
	}
}

func TestRenderError(t *testing.T) {
	got := RenderError("chain returned status 404")
	if !strings.Contains(got, SymbolError) {
		t.Errorf("RenderError = %q, want the %s symbol", got, SymbolError)
	}
	if !strings.Contains(got, "404") {
		t.Errorf("RenderError = %q, want the message", got)
	}
}
