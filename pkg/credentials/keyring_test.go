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

package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyringSource_RoundTrip(t *testing.T) {
	keyring.MockInit()
	src := NewKeyringSource()
	ctx := context.Background()

	if !src.Available() {
		t.Fatal("mocked keyring should be available")
	}

	if err := src.Store("ChainA", "KeyIdA", "KeyA"); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	keyID, key, err := src.AuthKey(ctx, "ChainA")
	if err != nil {
		t.Fatalf("AuthKey() error = %v", err)
	}
	if keyID != "KeyIdA" || key != "KeyA" {
		t.Errorf("AuthKey() = %q, %q", keyID, key)
	}

	// Chain id and endpoint never come from the keyring.
	if _, err := src.DragonchainID(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("DragonchainID() = %v, want ErrNotFound", err)
	}
	if _, err := src.Endpoint(ctx, "ChainA"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Endpoint() = %v, want ErrNotFound", err)
	}

	if err := src.Delete("ChainA"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, _, err := src.AuthKey(ctx, "ChainA"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AuthKey() after delete = %v, want ErrNotFound", err)
	}
}

func TestKeyringSource_DeleteMissing(t *testing.T) {
	keyring.MockInit()
	src := NewKeyringSource()

	if err := src.Delete("never-stored"); err != nil {
		t.Errorf("Delete() of absent entry = %v, want nil", err)
	}
}

func TestKeyringSource_UnavailableBackend(t *testing.T) {
	keyring.MockInitWithError(errors.New("no secret service"))
	defer keyring.MockInit()

	src := NewKeyringSource()
	if src.Available() {
		t.Error("source should report unavailable when the probe fails")
	}
}
