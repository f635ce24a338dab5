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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/docsmith/docsmith/docgen"
	"github.com/docsmith/docsmith/internal/utils"
	"github.com/docsmith/docsmith/llm"
	"github.com/docsmith/docsmith/llm/log"
	"github.com/docsmith/docsmith/mcp"
	"github.com/docsmith/docsmith/version"
)

const Usage = `docsmith <Action> [Args] [Flags]
Action:
   generate     generate Markdown documentation for a code file ('-' reads stdin)
   watch        watch a directory and regenerate docs when .py/.js files change
   mcp          run as a MCP server exposing the documentation pipeline
   version      print the version of docsmith
Environment:
   OPENROUTER_API_KEY / OPENAI_API_KEY   API key for the model backend
   MODEL                                 model endpoint (default: openai/gpt-4o-mini)
   MODEL_TYPE                            backend type: openai, claude, ark, qwen, deepseek, ollama
   OPENAI_BASE_URL                       override the backend base URL
`

func main() {
	flags := flag.NewFlagSet("docsmith", flag.ExitOnError)

	flagHelp := flags.Bool("h", false, "Show help message.")
	flagVerbose := flags.Bool("verbose", false, "Verbose mode.")
	flagOutput := flags.String("o", "", "Output path ('-' for stdout). Default: documentation_<timestamp>.md")
	flagLang := flags.String("lang", "", "Source language (Python or JavaScript). Default: inferred from the file extension.")
	flagAgents := flags.String("agents", "", "YAML file overriding agent instructions and models.")
	flagStream := flags.Bool("stream", false, "Print per-stage progress while generating.")
	flagTrace := flags.Bool("trace", false, "Emit model invocation telemetry (disabled by default).")

	flags.Usage = func() {
		fmt.Fprint(os.Stderr, Usage)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flags.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flags.Usage()
		os.Exit(1)
	}
	action := strings.ToLower(os.Args[1])

	switch action {
	case "version":
		fmt.Fprintf(os.Stdout, "%s\n", version.Version)

	case "generate":
		uri := parseArgsAndFlags(flags, flagHelp, flagVerbose, flagTrace)
		if uri == "" {
			log.Error("Argument Path is required\n")
			os.Exit(1)
		}

		code, language := readSubmission(uri, *flagLang)
		p := buildPipeline(*flagAgents)

		var docs string
		var err error
		if *flagStream {
			docs, err = streamRun(p, code, language)
		} else {
			docs, err = p.Run(context.Background(), code, language)
		}
		if err != nil {
			log.Error("Failed to generate documentation: %v\n", err)
			os.Exit(1)
		}
		if err := writeDocs(*flagOutput, docs); err != nil {
			log.Error("Failed to write output: %v\n", err)
			os.Exit(1)
		}

	case "watch":
		uri := parseArgsAndFlags(flags, flagHelp, flagVerbose, flagTrace)
		if uri == "" {
			log.Error("Argument Path is required\n")
			os.Exit(1)
		}

		p := buildPipeline(*flagAgents)
		if err := watchAndGenerate(p, uri); err != nil {
			log.Error("Failed to watch %s: %v\n", uri, err)
			os.Exit(1)
		}

	case "mcp":
		_ = parseArgsAndFlags(flags, flagHelp, flagVerbose, flagTrace)

		svr := mcp.NewServer(mcp.ServerOptions{
			ServerName:    "docsmith",
			ServerVersion: version.Version,
			Verbose:       *flagVerbose,
			Pipeline:      buildPipeline(*flagAgents),
		})
		if err := svr.ServeStdio(); err != nil {
			log.Error("Failed to run MCP server: %v\n", err)
			os.Exit(1)
		}

	default:
		flags.Usage()
		os.Exit(1)
	}
}

// parseArgsAndFlags parses everything after the action and returns the
// positional path argument, if any.
func parseArgsAndFlags(flags *flag.FlagSet, flagHelp, flagVerbose, flagTrace *bool) string {
	_ = flags.Parse(os.Args[2:])
	if *flagHelp {
		flags.Usage()
		os.Exit(0)
	}
	if *flagVerbose {
		log.SetLogLevel(log.DebugLevel)
	}
	// Telemetry stays off unless -trace is given.
	llm.SetTracingDisabled(!*flagTrace)
	return flags.Arg(0)
}

// modelFromEnv builds the default model configuration from the environment.
// A missing API key is not fatal here: the model call itself will fail.
func modelFromEnv() llm.ModelConfig {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if apiKey != "" && baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	modelName := os.Getenv("MODEL")
	if modelName == "" {
		modelName = "openai/gpt-4o-mini"
	}
	apiType := llm.NewModelType(os.Getenv("MODEL_TYPE"))
	if apiType == llm.ModelTypeUnknown {
		apiType = llm.ModelTypeOpenAI
	}
	return llm.ModelConfig{
		Name:      "default",
		APIType:   apiType,
		BaseURL:   baseURL,
		APIKey:    apiKey,
		ModelName: modelName,
	}
}

func buildPipeline(agentFile string) *docgen.Pipeline {
	model := modelFromEnv()
	opts := docgen.Options{Model: model}
	if agentFile != "" {
		f, err := docgen.LoadAgentFile(agentFile)
		if err != nil {
			log.Error("Failed to load agent file: %v\n", err)
			os.Exit(1)
		}
		m, agents, err := f.Build(model)
		if err != nil {
			log.Error("Failed to apply agent file: %v\n", err)
			os.Exit(1)
		}
		opts.Model = m
		opts.Agents = agents
	}
	p, err := docgen.New(opts)
	if err != nil {
		log.Error("Failed to build pipeline: %v\n", err)
		os.Exit(1)
	}
	return p
}

// readSubmission loads the code from uri ('-' reads stdin) and resolves the
// language tag, inferring it from the extension when -lang is not given.
func readSubmission(uri, langFlag string) (code, language string) {
	if uri == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Error("Failed to read stdin: %v\n", err)
			os.Exit(1)
		}
		if langFlag == "" {
			log.Error("-lang is required when reading from stdin\n")
			os.Exit(1)
		}
		return string(data), langFlag
	}
	data, err := os.ReadFile(uri)
	if err != nil {
		log.Error("Failed to read %s: %v\n", uri, err)
		os.Exit(1)
	}
	if langFlag != "" {
		return string(data), langFlag
	}
	lang, err := docgen.LanguageForFile(uri)
	if err != nil {
		log.Error("Cannot infer language: %v (use -lang)\n", err)
		os.Exit(1)
	}
	return string(data), string(lang)
}

// streamRun consumes the streaming pipeline, printing progress to stderr,
// and returns the final documentation.
func streamRun(p *docgen.Pipeline, code, language string) (string, error) {
	var final string
	for ev := range p.Stream(context.Background(), code, language) {
		if ev.Err != nil {
			return "", ev.Err
		}
		if ev.Final {
			final = ev.Text
		} else {
			fmt.Fprintln(os.Stderr, ev.Text)
		}
	}
	return final, nil
}

func writeDocs(output, docs string) error {
	if output == "-" {
		_, err := fmt.Fprintln(os.Stdout, docs)
		return err
	}
	if output == "" {
		output = fmt.Sprintf("documentation_%s.md", time.Now().Format("20060102_150405"))
	}
	if err := os.WriteFile(output, []byte(docs), 0644); err != nil {
		return err
	}
	log.Info("Documentation written to %s\n", output)
	return nil
}

// watchAndGenerate regenerates documentation for every watched source file
// on write or create. Docs land next to the source as <name>.docs.md.
func watchAndGenerate(p *docgen.Pipeline, dir string) error {
	stop, err := utils.WatchDir(dir, func(op fsnotify.Op, file string) {
		if op&fsnotify.Write == 0 && op&fsnotify.Create == 0 {
			return
		}
		lang, err := docgen.LanguageForFile(file)
		if err != nil {
			return // not a source file we handle
		}
		data, err := os.ReadFile(file)
		if err != nil {
			log.Error("Failed to read %s: %v\n", file, err)
			return
		}
		docs, err := p.Run(context.Background(), string(data), string(lang))
		if err != nil {
			log.Error("Failed to document %s: %v\n", file, err)
			return
		}
		out := strings.TrimSuffix(file, filepath.Ext(file)) + ".docs.md"
		if err := os.WriteFile(out, []byte(docs), 0644); err != nil {
			log.Error("Failed to write %s: %v\n", out, err)
			return
		}
		log.Info("Documentation written to %s\n", out)
	})
	if err != nil {
		return err
	}
	defer stop()

	log.Info("Watching %s (Ctrl-C to stop)\n", dir)
	select {} // block until interrupted
}
