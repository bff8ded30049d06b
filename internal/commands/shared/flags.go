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

// Package shared holds the flag values, client construction and output
// helpers common to every dctl command.
package shared

import "time"

// Global flag values, bound by the root command.
var (
	chainFlag    string
	endpointFlag string
	timeoutFlag  time.Duration
	insecureFlag bool
	jsonFlag     bool
	jqFlag       string
	verboseFlag  bool
	quietFlag    bool
	traceFlag    string

	// Build-time version information, injected via ldflags.
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// FlagPointers exposes the global flag variables for binding. Called by the
// root command when registering persistent flags.
type FlagPointers struct {
	Chain    *string
	Endpoint *string
	Timeout  *time.Duration
	Insecure *bool
	JSON     *bool
	JQ       *string
	Verbose  *bool
	Quiet    *bool
	Trace    *string
}

// RegisterFlagPointers returns pointers to the global flag variables.
func RegisterFlagPointers() FlagPointers {
	return FlagPointers{
		Chain:    &chainFlag,
		Endpoint: &endpointFlag,
		Timeout:  &timeoutFlag,
		Insecure: &insecureFlag,
		JSON:     &jsonFlag,
		JQ:       &jqFlag,
		Verbose:  &verboseFlag,
		Quiet:    &quietFlag,
		Trace:    &traceFlag,
	}
}

// SetVersion sets the build version information (called from main).
func SetVersion(v, c, b string) {
	version = v
	commit = c
	buildDate = b
}

// GetVersion returns version, commit and build date.
func GetVersion() (string, string, string) {
	return version, commit, buildDate
}

// GetChain returns the selected chain id, or empty for the default chain.
func GetChain() string { return chainFlag }

// GetEndpoint returns the endpoint override.
func GetEndpoint() string { return endpointFlag }

// GetTimeout returns the request timeout override.
func GetTimeout() time.Duration { return timeoutFlag }

// GetInsecure reports whether TLS verification is disabled.
func GetInsecure() bool { return insecureFlag }

// GetJSON reports whether output is the raw JSON envelope.
func GetJSON() bool { return jsonFlag }

// GetJQ returns the jq filter expression, or empty when unset.
func GetJQ() string { return jqFlag }

// GetVerbose reports whether debug logging is enabled.
func GetVerbose() bool { return verboseFlag }

// GetQuiet reports whether non-error output is suppressed.
func GetQuiet() bool { return quietFlag }

// GetTrace returns the tracing mode (off, stdout, otlp-http, otlp-grpc).
func GetTrace() string { return traceFlag }
