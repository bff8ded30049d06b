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
	"github.com/AlecAivazis/survey/v2"

	"github.com/dragonchain/dragonchain-sdk-go/internal/cli/format"
)

// Confirm prompts for a yes/no answer before a destructive operation. When
// yes is already true (the --yes flag) no prompt is shown. Without a
// terminal the operation is refused rather than silently confirmed.
func Confirm(message string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	if !format.IsInteractive() {
		return false, NewUsageError("confirmation required; re-run with --yes", nil)
	}

	var confirmed bool
	prompt := &survey.Confirm{Message: message}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, NewUsageError("confirmation aborted", err)
	}
	return confirmed, nil
}
