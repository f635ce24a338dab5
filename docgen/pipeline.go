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
	"context"
	"fmt"
	"strings"

	"github.com/docsmith/docsmith/internal/pipeline"
	"github.com/docsmith/docsmith/llm"
	"github.com/docsmith/docsmith/llm/log"
)

// NoCodeMessage is returned (or streamed) when the submission is empty or
// whitespace-only. No model is contacted in that case.
const NoCodeMessage = "No code was provided. Please paste code or upload a file."

// Options configures a Pipeline.
type Options struct {
	// Model is the default model for agents that carry no model of their own.
	Model llm.ModelConfig

	// Agents overrides the built-in Analyst, Writer and Reviewer.
	// Must be exactly three agents in pipeline order when set.
	Agents []Agent

	// NewGenerator turns an Agent into its Generator. Defaults to a ChatAgent
	// over the agent's chat model. Tests substitute fakes here.
	NewGenerator func(a Agent) llm.Generator
}

// Pipeline runs the three-stage documentation sequence:
// Analyst reads the code, Writer drafts the Markdown, Reviewer polishes it.
// A Pipeline is immutable and safe for concurrent runs; each run carries
// its own state and the three stages of one run are strictly sequential.
type Pipeline struct {
	agents [3]Agent
	gens   [3]llm.Generator
}

func New(opts Options) (*Pipeline, error) {
	agents := DefaultAgents(opts.Model)
	if len(opts.Agents) > 0 {
		if len(opts.Agents) != 3 {
			return nil, fmt.Errorf("%w: want 3 agents, got %d", ErrConfiguration, len(opts.Agents))
		}
		copy(agents[:], opts.Agents)
	}
	for i, a := range agents {
		// re-validate: overrides may carry empty fields
		valid, err := NewAgent(a.Name, a.Instructions, a.Model)
		if err != nil {
			return nil, err
		}
		agents[i] = valid
	}

	newGen := opts.NewGenerator
	if newGen == nil {
		newGen = func(a Agent) llm.Generator {
			m := a.Model
			if m.APIType == llm.ModelTypeUnknown {
				m = opts.Model
			}
			return llm.NewChatAgent(a.Name, llm.NewChatModel(m), llm.ChatAgentOptions{
				SysPrompt: a.Instructions,
				Retries:   m.Retries,
				Timeout:   m.Timeout,
			})
		}
	}

	p := &Pipeline{agents: agents}
	for i, a := range agents {
		p.gens[i] = newGen(a)
	}
	return p, nil
}

// Run executes the full pipeline and returns the reviewer's output verbatim.
// Empty code short-circuits to NoCodeMessage without any model call. An
// unsupported language tag fails with ErrInvalidLanguage, also before any
// call. Any stage failure aborts the run; there is no retry here and no
// partial result (a stage 2 failure discards stage 1's output).
func (p *Pipeline) Run(ctx context.Context, code, language string) (string, error) {
	lang, err := ParseLanguage(language)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(code) == "" {
		return NoCodeMessage, nil
	}

	st := pipeline.NewState(string(lang), code)
	log.Debug("pipeline run %s: language=%s, %d bytes of code", st.RunID, lang, len(code))

	runner := &pipeline.Runner{Steps: p.steps()}
	if err := runner.Run(ctx, st); err != nil {
		return "", err
	}
	return st.Final, nil
}

// Stream executes the same sequence but emits progress between stages.
// The returned channel yields, in order, one progress Event per stage and
// then the final documentation as a terminal Event, after which the channel
// is closed. The channel holds at most one pending item: production pauses
// until the consumer catches up. A consumer that stops receiving does not
// interrupt an in-flight model call; the producer gives up only when ctx is
// cancelled. On stage failure the channel yields an error Event and closes;
// output of earlier stages is never surfaced.
func (p *Pipeline) Stream(ctx context.Context, code, language string) <-chan Event {
	ch := make(chan Event, 1)
	go func() {
		defer close(ch)

		lang, err := ParseLanguage(language)
		if err != nil {
			emit(ctx, ch, Event{Err: err})
			return
		}
		if strings.TrimSpace(code) == "" {
			emit(ctx, ch, Event{Text: NoCodeMessage, Final: true})
			return
		}

		st := pipeline.NewState(string(lang), code)
		runner := &pipeline.Runner{
			Steps: p.steps(),
			// Progress is reported per completed stage. A failing stage
			// yields no notice of its own, only the error below.
			OnStepDone: func(i int, step pipeline.Step) {
				emit(ctx, ch, Event{Text: progressMessage(i, step.Name())})
			},
		}
		if err := runner.Run(ctx, st); err != nil {
			emit(ctx, ch, Event{Err: err})
			return
		}
		emit(ctx, ch, Event{Text: st.Final, Final: true})
	}()
	return ch
}

func emit(ctx context.Context, ch chan<- Event, ev Event) {
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}

func progressMessage(i int, role string) string {
	doing := map[string]string{
		RoleAnalyst:  "reading your code",
		RoleWriter:   "drafting the docs",
		RoleReviewer: "checking and polishing",
	}[role]
	if doing == "" {
		doing = "working"
	}
	return fmt.Sprintf("Step %d of 3 - %s is %s...", i+1, role, doing)
}
