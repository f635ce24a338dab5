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

package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextPrompt(t *testing.T) {
	p := NewTextPrompt("hello")
	if p.String() != "hello" {
		t.Errorf("got %q", p.String())
	}
}

func TestFilePrompt_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.md")
	if err := os.WriteFile(path, []byte("sys prompt"), 0644); err != nil {
		t.Fatal(err)
	}
	p := NewFilePrompt(&FilePrompt{Type: PromptTypePlainText, Path: path})
	if p.String() != "sys prompt" {
		t.Errorf("got %q", p.String())
	}
}

func TestFilePrompt_GoTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.tmpl")
	if err := os.WriteFile(path, []byte("document {{.Language}} code"), 0644); err != nil {
		t.Fatal(err)
	}
	p := NewFilePrompt(&FilePrompt{
		Type: PromptTypeGoTemplate,
		Path: path,
		Data: struct{ Language string }{"Python"},
	})
	if p.String() != "document Python code" {
		t.Errorf("got %q", p.String())
	}
}

func TestEmbeddedPrompts(t *testing.T) {
	for name, text := range map[string]string{
		"analyst":  PromptAnalyst,
		"writer":   PromptWriter,
		"reviewer": PromptReviewer,
	} {
		if strings.TrimSpace(text) == "" {
			t.Errorf("embedded %s prompt is empty", name)
		}
	}
	if !strings.Contains(PromptWriter, "## API Reference") {
		t.Error("writer prompt must pin the output sections")
	}
}
