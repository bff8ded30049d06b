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
	"os"

	dcerrors "github.com/dragonchain/dragonchain-sdk-go/pkg/errors"
)

// Exit codes for dctl.
const (
	ExitSuccess       = 0
	ExitRequestFailed = 1 // transport or encoding failure
	ExitUsage         = 2 // bad flags or invalid input
	ExitConfiguration = 3 // credentials could not be resolved
	ExitRemoteError   = 4 // chain answered with ok=false
)

// ExitError is an error that carries an exit code.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		if e.Message == "" {
			return e.Cause.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewRequestError wraps a transport failure (exit code 1).
func NewRequestError(msg string, cause error) *ExitError {
	return &ExitError{Code: ExitRequestFailed, Message: msg, Cause: cause}
}

// NewUsageError wraps invalid input (exit code 2).
func NewUsageError(msg string, cause error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: msg, Cause: cause}
}

// NewConfigurationError wraps a credential problem (exit code 3).
func NewConfigurationError(msg string, cause error) *ExitError {
	return &ExitError{Code: ExitConfiguration, Message: msg, Cause: cause}
}

// NewRemoteError wraps a chain-level failure, where the request reached the
// chain but it answered outside the 2xx range (exit code 4).
func NewRemoteError(status int) *ExitError {
	return &ExitError{
		Code:    ExitRemoteError,
		Message: fmt.Sprintf("chain returned status %d", status),
	}
}

// FromError maps SDK errors onto exit codes: credential problems are
// configuration errors, validation and algorithm problems are usage errors,
// everything else failed at the transport.
func FromError(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var credErr *dcerrors.InvalidCredentialError
	if errors.As(err, &credErr) {
		return NewConfigurationError("", err)
	}
	var validationErr *dcerrors.ValidationError
	if errors.As(err, &validationErr) {
		return NewUsageError("", err)
	}
	var algErr *dcerrors.UnsupportedAlgorithmError
	if errors.As(err, &algErr) {
		return NewUsageError("", err)
	}
	return NewRequestError("", err)
}

// HandleExitError prints err with any remediation suggestion and exits with
// the mapped code. A nil error is a no-op.
func HandleExitError(err error) {
	if err == nil {
		return
	}

	exitErr := FromError(err)
	fmt.Fprintln(os.Stderr, "Error:", exitErr.Error())
	printSuggestion(err)
	os.Exit(exitErr.Code)
}

// printSuggestion walks the error chain for a UserVisibleError and prints
// its suggestion, if any.
func printSuggestion(err error) {
	for err != nil {
		if userErr, ok := err.(dcerrors.UserVisibleError); ok {
			if userErr.IsUserVisible() {
				if suggestion := userErr.Suggestion(); suggestion != "" {
					fmt.Fprintf(os.Stderr, "\nSuggestion: %s\n", suggestion)
				}
			}
			return
		}
		err = errors.Unwrap(err)
	}
}
