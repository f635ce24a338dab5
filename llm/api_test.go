/**
 * Copyright 2025 ByteDance Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package llm

import (
	"testing"
)

func TestNewModelType(t *testing.T) {
	cases := map[string]ModelType{
		"openai":     ModelTypeOpenAI,
		"GPT":        ModelTypeOpenAI,
		"openrouter": ModelTypeOpenAI,
		"claude":     ModelTypeClaude,
		"Anthropic":  ModelTypeClaude,
		"ark":        ModelTypeARK,
		"doubao":     ModelTypeARK,
		"qwen":       ModelTypeDashScope,
		"deepseek":   ModelTypeDeepSeek,
		"ollama":     ModelTypeOllama,
		"mistral":    ModelTypeUnknown,
		"":           ModelTypeUnknown,
	}
	for in, want := range cases {
		if got := NewModelType(in); got != want {
			t.Errorf("NewModelType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSetTracingDisabled(t *testing.T) {
	defer SetTracingDisabled(false)

	if TracingDisabled() {
		t.Fatal("tracing must be enabled initially")
	}
	SetTracingDisabled(true)
	SetTracingDisabled(false)
	if TracingDisabled() {
		t.Error("last write must win: expected tracing enabled")
	}
	SetTracingDisabled(false)
	SetTracingDisabled(true)
	if !TracingDisabled() {
		t.Error("last write must win: expected tracing disabled")
	}
}
