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
	"github.com/docsmith/docsmith/llm"
	"github.com/docsmith/docsmith/llm/prompt"
)

// The three pipeline roles, in execution order.
const (
	RoleAnalyst  = "Code Analyst"
	RoleWriter   = "Documentation Writer"
	RoleReviewer = "Quality Reviewer"
)

// DefaultAgents returns the built-in Analyst, Writer and Reviewer in pipeline
// order, all targeting the given model. Instructions come from the embedded
// prompt files.
func DefaultAgents(model llm.ModelConfig) [3]Agent {
	return [3]Agent{
		{Name: RoleAnalyst, Instructions: prompt.NewTextPrompt(prompt.PromptAnalyst), Model: model},
		{Name: RoleWriter, Instructions: prompt.NewTextPrompt(prompt.PromptWriter), Model: model},
		{Name: RoleReviewer, Instructions: prompt.NewTextPrompt(prompt.PromptReviewer), Model: model},
	}
}
