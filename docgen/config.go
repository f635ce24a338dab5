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
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/docsmith/docsmith/internal/utils"
	"github.com/docsmith/docsmith/llm"
	"github.com/docsmith/docsmith/llm/prompt"
)

// AgentFile is an optional YAML file overriding the built-in agents:
//
//	model:
//	  type: openai
//	  model_name: gpt-4o-mini
//	agents:
//	  - role: Documentation Writer
//	    instructions_file: prompts/writer.md
//	    model:
//	      type: claude
//	      model_name: claude-sonnet-4-20250514
type AgentFile struct {
	Model  *ModelSettings  `yaml:"model"`
	Agents []AgentOverride `yaml:"agents"`
}

// ModelSettings is the YAML shape of a model configuration.
type ModelSettings struct {
	Type           string   `yaml:"type"`
	BaseURL        string   `yaml:"base_url"`
	APIKey         string   `yaml:"api_key"`
	ModelName      string   `yaml:"model_name"`
	Temperature    *float32 `yaml:"temperature"`
	MaxTokens      int      `yaml:"max_tokens"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Retries        int      `yaml:"retries"`
}

// AgentOverride replaces the instructions and/or model of one built-in role.
type AgentOverride struct {
	Role             string         `yaml:"role"`
	Instructions     string         `yaml:"instructions"`
	InstructionsFile string         `yaml:"instructions_file"`
	Model            *ModelSettings `yaml:"model"`
}

func LoadAgentFile(path string) (*AgentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapError(err, "read agent file")
	}
	var f AgentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, utils.WrapError(err, "parse agent file")
	}
	return &f, nil
}

// Build merges the file over the defaults and returns the resolved default
// model plus the three agents in pipeline order.
func (f *AgentFile) Build(def llm.ModelConfig) (llm.ModelConfig, []Agent, error) {
	model := def
	if f.Model != nil {
		model = f.Model.apply(def)
	}
	agents := DefaultAgents(model)

	for _, o := range f.Agents {
		i := roleIndex(o.Role)
		if i < 0 {
			return model, nil, fmt.Errorf("%w: unknown role %q", ErrConfiguration, o.Role)
		}
		if o.InstructionsFile != "" {
			text, err := os.ReadFile(o.InstructionsFile)
			if err != nil {
				return model, nil, utils.WrapError(err, "read instructions for "+o.Role)
			}
			agents[i].Instructions = prompt.NewTextPrompt(string(text))
		} else if o.Instructions != "" {
			agents[i].Instructions = prompt.NewTextPrompt(o.Instructions)
		}
		if o.Model != nil {
			agents[i].Model = o.Model.apply(model)
		}
	}
	return model, agents[:], nil
}

func (s *ModelSettings) apply(def llm.ModelConfig) llm.ModelConfig {
	out := def
	if s.Type != "" {
		out.APIType = llm.NewModelType(s.Type)
	}
	if s.BaseURL != "" {
		out.BaseURL = s.BaseURL
	}
	if s.APIKey != "" {
		out.APIKey = s.APIKey
	}
	if s.ModelName != "" {
		out.ModelName = s.ModelName
	}
	if s.Temperature != nil {
		out.Temperature = s.Temperature
	}
	if s.MaxTokens != 0 {
		out.MaxTokens = s.MaxTokens
	}
	if s.TimeoutSeconds != 0 {
		out.Timeout = time.Duration(s.TimeoutSeconds) * time.Second
	}
	if s.Retries != 0 {
		out.Retries = s.Retries
	}
	return out
}

func roleIndex(role string) int {
	switch role {
	case RoleAnalyst:
		return 0
	case RoleWriter:
		return 1
	case RoleReviewer:
		return 2
	}
	return -1
}
