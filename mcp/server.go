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
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docsmith/docsmith/docgen"
	"github.com/docsmith/docsmith/llm/log"
)

type ServerOptions struct {
	ServerName    string
	ServerVersion string
	Verbose       bool
	Pipeline      *docgen.Pipeline
}

type Server struct {
	*server.MCPServer
	opts ServerOptions
}

// NewServer exposes the documentation pipeline over MCP: the generate_docs
// and list_languages tools plus the document_code prompt.
func NewServer(opts ServerOptions) *Server {
	if opts.Verbose {
		log.SetLogLevel(log.DebugLevel)
	}
	svr := server.NewMCPServer(
		opts.ServerName,
		opts.ServerVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)
	for _, t := range getDocTools(opts.Pipeline) {
		svr.AddTool(t.Tool, t.Handler)
	}
	svr.AddPrompt(
		mcp.NewPrompt("document_code",
			mcp.WithPromptDescription("analyse code in preparation for documenting it"),
		),
		handleDocumentCodePrompt,
	)
	return &Server{MCPServer: svr, opts: opts}
}

func (s *Server) ServeStdio() error {
	log.Info("%s %s serving MCP on stdio", s.opts.ServerName, s.opts.ServerVersion)
	return server.ServeStdio(s.MCPServer)
}
