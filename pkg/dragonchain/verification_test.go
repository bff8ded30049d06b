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

package dragonchain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVerifications(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		wantURI string
		wantErr bool
	}{
		{name: "all levels", level: VerificationLevelAll, wantURI: "/v1/verifications/61370"},
		{name: "level 2", level: 2, wantURI: "/v1/verifications/61370?level=2"},
		{name: "level 5", level: 5, wantURI: "/v1/verifications/61370?level=5"},
		{name: "level too low", level: 1, wantErr: true},
		{name: "level too high", level: 6, wantErr: true},
		{name: "negative level", level: -2, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestChain(t)
			_, err := client.GetVerifications(context.Background(), "61370", tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURI, rec.uri)
		})
	}
}

func TestGetVerifications_RequiresBlockID(t *testing.T) {
	client, _ := newTestChain(t)
	_, err := client.GetVerifications(context.Background(), "", VerificationLevelAll)
	assert.Error(t, err)
}

func TestGetPendingVerifications(t *testing.T) {
	client, rec := newTestChain(t)

	_, err := client.GetPendingVerifications(context.Background(), "61370")
	require.NoError(t, err)
	assert.Equal(t, "/v1/verifications/pending/61370", rec.uri)

	_, err = client.GetPendingVerifications(context.Background(), "")
	assert.Error(t, err)
}
