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

package shared

import (
	"errors"
	"fmt"
	"testing"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

func TestFromError_Nil(t *testing.T) {
	if got := FromError(nil); got != nil {
		t.Errorf("FromError(nil) = %v, want nil", got)
	}
}

func TestFromError_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "credential errors are configuration failures",
			err:  &dcerrors.InvalidCredentialError{Reason: "no credentials found"},
			code: ExitConfiguration,
		},
		{
			name: "wrapped credential errors unwrap",
			err:  fmt.Errorf("building client: %w", &dcerrors.InvalidCredentialError{Reason: "no key"}),
			code: ExitConfiguration,
		},
		{
			name: "validation errors are usage failures",
			err:  &dcerrors.ValidationError{Field: "level", Message: "must be 2-5"},
			code: ExitUsage,
		},
		{
			name: "algorithm errors are usage failures",
			err:  &dcerrors.UnsupportedAlgorithmError{Algorithm: "MD5"},
			code: ExitUsage,
		},
		{
			name: "connection errors are request failures",
			err:  &dcerrors.ConnectionError{URL: "https://x", Cause: errors.New("refused")},
			code: ExitRequestFailed,
		},
		{
			name: "plain errors are request failures",
			err:  errors.New("boom"),
			code: ExitRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			if got == nil {
				t.Fatal("FromError returned nil")
			}
			if got.Code != tt.code {
				t.Errorf("FromError(%v).Code = %d, want %d", tt.err, got.Code, tt.code)
			}
		})
	}
}

func TestFromError_PassesThroughExitErrors(t *testing.T) {
	original := NewRemoteError(404)
	got := FromError(fmt.Errorf("wrapped: %w", original))
	if got != original {
		t.Errorf("FromError did not pass through the existing *ExitError")
	}
	if got.Code != ExitRemoteError {
		t.Errorf("Code = %d, want %d", got.Code, ExitRemoteError)
	}
}

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "message only",
			err:  NewUsageError("bad flag", nil),
			want: "bad flag",
		},
		{
			name: "cause only",
			err:  NewRequestError("", errors.New("connection refused")),
			want: "connection refused",
		},
		{
			name: "message and cause",
			err:  NewConfigurationError("failed to load", errors.New("no such file")),
			want: "failed to load: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	exitErr := NewRequestError("request failed", inner)

	if unwrapped := errors.Unwrap(exitErr); unwrapped != inner {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, inner)
	}
}

func TestExitError_ExposesUserVisibleCause(t *testing.T) {
	credErr := &dcerrors.InvalidCredentialError{Reason: "no credentials found"}
	exitErr := FromError(credErr)

	var userErr dcerrors.UserVisibleError
	if !errors.As(exitErr, &userErr) {
		t.Fatal("expected to find UserVisibleError in the exit error chain")
	}
	if userErr.Suggestion() == "" {
		t.Error("expected a remediation suggestion for credential errors")
	}
}

func TestNewRemoteError(t *testing.T) {
	err := NewRemoteError(502)
	if err.Code != ExitRemoteError {
		t.Errorf("Code = %d, want %d", err.Code, ExitRemoteError)
	}
	if want := "chain returned status 502"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
