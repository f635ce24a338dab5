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

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docsmith/docsmith/docgen"
	"github.com/docsmith/docsmith/internal/utils"
	"github.com/docsmith/docsmith/llm/prompt"
)

type Tool struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

func NewTool[R any, T any](name string, desc string, schema json.RawMessage, handler func(ctx context.Context, req R) (*T, error)) Tool {
	return Tool{
		Tool: mcp.NewToolWithRawSchema(name, desc, schema),
		Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var req R
			if err := request.BindArguments(&req); err != nil {
				return nil, err
			}
			var final string
			var isError bool
			if resp, err := handler(ctx, req); err != nil {
				isError = true
				final = err.Error()
			} else if js, err := utils.MarshalJSONBytes(resp); err != nil {
				isError = true
				final = err.Error()
			} else {
				final = string(js)
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(final),
				},
				IsError: isError,
			}, nil
		},
	}
}

const (
	ToolGenerateDocs  = "generate_docs"
	DescGenerateDocs  = "generate complete Markdown documentation for a snippet of Python or JavaScript code using the three-agent pipeline (analyst, writer, reviewer)"
	ToolListLanguages = "list_languages"
	DescListLanguages = "list the source languages the documentation pipeline supports"
)

var (
	SchemaGenerateDocs  = GetJSONSchema(GenerateDocsReq{})
	SchemaListLanguages = GetJSONSchema(ListLanguagesReq{})
)

type GenerateDocsReq struct {
	Code     string `json:"code" jsonschema:"description=the raw source code to document"`
	Language string `json:"language" jsonschema:"description=the programming language: Python or JavaScript"`
}

type GenerateDocsResp struct {
	Documentation string `json:"documentation"`
}

type ListLanguagesReq struct{}

type ListLanguagesResp struct {
	Languages []string `json:"languages"`
}

func getDocTools(p *docgen.Pipeline) []Tool {
	return []Tool{
		NewTool(ToolGenerateDocs, DescGenerateDocs, SchemaGenerateDocs, func(ctx context.Context, req GenerateDocsReq) (*GenerateDocsResp, error) {
			out, err := p.Run(ctx, req.Code, req.Language)
			if err != nil {
				return nil, err
			}
			return &GenerateDocsResp{Documentation: out}, nil
		}),
		NewTool(ToolListLanguages, DescListLanguages, SchemaListLanguages, func(ctx context.Context, req ListLanguagesReq) (*ListLanguagesResp, error) {
			return &ListLanguagesResp{Languages: []string{string(docgen.Python), string(docgen.JavaScript)}}, nil
		}),
	}
}

func handleDocumentCodePrompt(
	ctx context.Context,
	request mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "A prompt for analysing code before documenting it",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: prompt.PromptAnalyst,
				},
			},
		},
	}, nil
}
