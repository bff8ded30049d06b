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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dragonchain/dragonchain-sdk-go/internal/cli/format"
	"github.com/dragonchain/dragonchain-sdk-go/internal/jq"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// envelope is the --json output shape, mirroring the normalized result.
type envelope struct {
	Status   int  `json:"status"`
	OK       bool `json:"ok"`
	Response any  `json:"response"`
}

// EmitResult renders a chain result according to the output flags. Remote
// failures still print their payload, then surface as exit code 4.
//
// Output modes: --jq filters the response and prints the filtered value;
// --json prints the full normalized envelope; otherwise the response prints
// human-readable with a status line on stderr.
func EmitResult(cmd *cobra.Command, result *transport.Result) error {
	out := cmd.OutOrStdout()

	response := result.Response
	if expr := GetJQ(); expr != "" {
		filtered, err := jq.NewExecutor(0).Execute(cmd.Context(), expr, response)
		if err != nil {
			return NewUsageError("jq filter failed", err)
		}
		response = filtered
	}

	switch {
	case GetJSON():
		if err := EmitJSON(out, envelope{Status: result.Status, OK: result.OK, Response: response}); err != nil {
			return err
		}
	case GetJQ() != "":
		if err := EmitJSON(out, response); err != nil {
			return err
		}
	default:
		if result.OK && !GetQuiet() {
			statusLine := fmt.Sprintf("%d", result.Status)
			if format.IsTTY() {
				statusLine = format.RenderOK(statusLine)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), statusLine)
		}
		if err := emitHuman(out, response); err != nil {
			return err
		}
	}

	if !result.OK {
		return NewRemoteError(result.Status)
	}
	return nil
}

// EmitJSON writes v as indented JSON.
func EmitJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return NewRequestError("failed to encode output", err)
	}
	return nil
}

// emitHuman prints a response for terminal reading. Plain string responses
// (such as heap objects) print verbatim; everything else prints as JSON.
func emitHuman(w io.Writer, response any) error {
	if s, ok := response.(string); ok {
		_, err := fmt.Fprintln(w, s)
		if err != nil {
			return NewRequestError("failed to write output", err)
		}
		return nil
	}
	return EmitJSON(w, response)
}
