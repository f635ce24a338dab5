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
)

// stageStep pairs an agent's generator with the wiring of one pipeline
// stage: how to build its payload from the run state and where to store
// its output.
type stageStep struct {
	role    string
	gen     llm.Generator
	payload func(st *pipeline.State) string
	store   func(st *pipeline.State, out string)
}

var _ pipeline.Step = (*stageStep)(nil)

func (s *stageStep) Name() string { return s.role }

func (s *stageStep) Run(ctx context.Context, st *pipeline.State) error {
	out, err := s.gen.Call(ctx, s.payload(st))
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "" {
		return fmt.Errorf("%s returned an empty response", s.role)
	}
	s.store(st, out)
	return nil
}

// steps builds the three stages for one run, in execution order.
func (p *Pipeline) steps() []pipeline.Step {
	return []pipeline.Step{
		&stageStep{
			role: p.agents[0].Name,
			gen:  p.gens[0],
			payload: func(st *pipeline.State) string {
				return analystPayload(Language(st.Language), st.Code)
			},
			store: func(st *pipeline.State, out string) { st.Analysis = out },
		},
		&stageStep{
			role: p.agents[1].Name,
			gen:  p.gens[1],
			payload: func(st *pipeline.State) string {
				return writerPayload(Language(st.Language), st.Analysis, st.Code)
			},
			store: func(st *pipeline.State, out string) { st.Draft = out },
		},
		&stageStep{
			role: p.agents[2].Name,
			gen:  p.gens[2],
			payload: func(st *pipeline.State) string {
				return reviewerPayload(Language(st.Language), st.Draft, st.Code)
			},
			store: func(st *pipeline.State, out string) { st.Final = out },
		},
	}
}
