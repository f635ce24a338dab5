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

package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docsmith/docsmith/docgen"
	"github.com/docsmith/docsmith/llm"
)

type cannedGen struct {
	out string
}

func (c *cannedGen) Call(ctx context.Context, input string) (string, error) {
	return c.out, nil
}

func testPipeline(t *testing.T) *docgen.Pipeline {
	t.Helper()
	p, err := docgen.New(docgen.Options{
		NewGenerator: func(a docgen.Agent) llm.Generator {
			return &cannedGen{out: a.Name + " says hi"}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func callTool(t *testing.T, tool Tool, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = tool.Tool.Name
	req.Params.Arguments = args
	res, err := tool.Handler(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func toolByName(t *testing.T, tools []Tool, name string) Tool {
	t.Helper()
	for _, tl := range tools {
		if tl.Tool.Name == name {
			return tl
		}
	}
	t.Fatalf("tool %s not registered", name)
	return Tool{}
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("content = %+v", res.Content)
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestGenerateDocsTool(t *testing.T) {
	tools := getDocTools(testPipeline(t))

	res := callTool(t, toolByName(t, tools, ToolGenerateDocs), map[string]any{
		"code":     "def f(): pass",
		"language": "Python",
	})
	if res.IsError {
		t.Fatalf("tool errored: %s", textOf(t, res))
	}
	var resp GenerateDocsResp
	if err := json.Unmarshal([]byte(textOf(t, res)), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Documentation != docgen.RoleReviewer+" says hi" {
		t.Errorf("documentation = %q", resp.Documentation)
	}
}

func TestGenerateDocsTool_InvalidLanguage(t *testing.T) {
	tools := getDocTools(testPipeline(t))

	res := callTool(t, toolByName(t, tools, ToolGenerateDocs), map[string]any{
		"code":     "puts 'hi'",
		"language": "Ruby",
	})
	if !res.IsError {
		t.Fatal("expected IsError for an unsupported language")
	}
	if !strings.Contains(textOf(t, res), "unsupported language") {
		t.Errorf("error text = %q", textOf(t, res))
	}
}

func TestListLanguagesTool(t *testing.T) {
	tools := getDocTools(testPipeline(t))

	res := callTool(t, toolByName(t, tools, ToolListLanguages), map[string]any{})
	var resp ListLanguagesResp
	if err := json.Unmarshal([]byte(textOf(t, res)), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Languages) != 2 {
		t.Errorf("languages = %v", resp.Languages)
	}
}

func TestGetJSONSchema(t *testing.T) {
	raw := GetJSONSchema(GenerateDocsReq{})
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatal(err)
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties: %s", raw)
	}
	for _, field := range []string{"code", "language"} {
		if _, ok := props[field]; !ok {
			t.Errorf("schema missing %q: %s", field, raw)
		}
	}
}

func TestNewServer(t *testing.T) {
	svr := NewServer(ServerOptions{
		ServerName:    "docsmith-test",
		ServerVersion: "v0.0.0",
		Pipeline:      testPipeline(t),
	})
	if svr.MCPServer == nil {
		t.Fatal("no underlying MCP server")
	}
}
