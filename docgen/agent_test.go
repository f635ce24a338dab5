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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/docsmith/llm"
	"github.com/docsmith/docsmith/llm/prompt"
)

func TestNewAgent(t *testing.T) {
	a, err := NewAgent("Reviewer", prompt.NewTextPrompt("review the docs"), llm.ModelConfig{})
	require.NoError(t, err)
	assert.Equal(t, "Reviewer", a.Name)

	_, err = NewAgent("", prompt.NewTextPrompt("x"), llm.ModelConfig{})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewAgent("Reviewer", nil, llm.ModelConfig{})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewAgent("Reviewer", prompt.NewTextPrompt("  \n"), llm.ModelConfig{})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestDefaultAgents(t *testing.T) {
	agents := DefaultAgents(llm.ModelConfig{ModelName: "gpt-4o-mini"})
	require.Len(t, agents, 3)
	assert.Equal(t, RoleAnalyst, agents[0].Name)
	assert.Equal(t, RoleWriter, agents[1].Name)
	assert.Equal(t, RoleReviewer, agents[2].Name)
	for _, a := range agents {
		assert.NotEmpty(t, a.Instructions.String(), a.Name)
		assert.Equal(t, "gpt-4o-mini", a.Model.ModelName)
	}
}

func TestNew_RejectsWrongAgentCount(t *testing.T) {
	analyst, err := NewAgent(RoleAnalyst, prompt.NewTextPrompt("analyse"), llm.ModelConfig{})
	require.NoError(t, err)

	_, err = New(Options{
		Agents:       []Agent{analyst},
		NewGenerator: func(a Agent) llm.Generator { return nil },
	})
	assert.ErrorIs(t, err, ErrConfiguration)
}
