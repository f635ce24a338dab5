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

package pipeline

import (
	"context"
	"fmt"
	"time"
)

// Runner executes steps strictly in order. Step N+1 never starts before
// step N returned without error. There is no retry and no rollback: the
// first failure aborts the run and discards all earlier stage output.
type Runner struct {
	Steps []Step

	// OnStepDone, if set, is called after each step completes successfully.
	// A failing step never reports progress.
	OnStepDone func(i int, step Step)
}

// Run drives all steps over st. Returns the first error encountered,
// wrapped with the failing step's name (cause unwrappable via errors.Is/As).
func (r *Runner) Run(ctx context.Context, st *State) error {
	if st == nil {
		return fmt.Errorf("pipeline: initial state is nil")
	}
	for i, step := range r.Steps {
		if step == nil {
			return fmt.Errorf("pipeline: step %d is nil", i)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := StepRecord{StepName: step.Name(), StartedAt: time.Now()}
		err := step.Run(ctx, st)
		rec.EndedAt = time.Now()
		if err != nil {
			rec.Status = StepFailed
			rec.Err = err.Error()
			st.History = append(st.History, rec)
			return fmt.Errorf("pipeline step %q: %w", step.Name(), err)
		}
		rec.Status = StepOK
		st.History = append(st.History, rec)
		if r.OnStepDone != nil {
			r.OnStepDone(i, step)
		}
	}
	return nil
}
