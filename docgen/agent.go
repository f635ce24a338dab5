// Copyright 2025 ByteDance Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package docgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docsmith/docsmith/llm"
	"github.com/docsmith/docsmith/llm/prompt"
)

// ErrConfiguration is returned when an agent is constructed with an empty
// name or empty instructions.
var ErrConfiguration = errors.New("invalid agent configuration")

// Agent bundles a role's identity, its natural-language instructions and its
// model configuration. Immutable after construction; defined once at process
// start and shared read-only across all pipeline runs.
type Agent struct {
	Name         string
	Instructions prompt.Prompt
	Model        llm.ModelConfig // zero value: use the pipeline default
}

// NewAgent validates and builds an Agent. The model config is optional.
func NewAgent(name string, instructions prompt.Prompt, model llm.ModelConfig) (Agent, error) {
	if strings.TrimSpace(name) == "" {
		return Agent{}, fmt.Errorf("%w: empty name", ErrConfiguration)
	}
	if instructions == nil || strings.TrimSpace(instructions.String()) == "" {
		return Agent{}, fmt.Errorf("%w: agent %q has empty instructions", ErrConfiguration, name)
	}
	return Agent{Name: name, Instructions: instructions, Model: model}, nil
}
