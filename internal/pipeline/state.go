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
	"time"

	"github.com/google/uuid"
)

// State is the single ground truth of one documentation run. Stage outputs
// are plain strings; each step reads the fields it needs and writes its own.
// A State lives for exactly one run and is never shared between runs.
type State struct {
	RunID    string
	Language string
	Code     string

	Analysis string // after the analyst step
	Draft    string // after the writer step
	Final    string // after the reviewer step

	History []StepRecord
}

// StepRecord is an immutable log entry for one step execution.
type StepRecord struct {
	StepName  string
	StartedAt time.Time
	EndedAt   time.Time
	Status    Status
	Err       string // if failed
}

type Status string

const (
	StepOK     Status = "ok"
	StepFailed Status = "failed"
)

// NewState returns an initial state with a fresh run ID and empty history.
func NewState(language, code string) *State {
	return &State{
		RunID:    uuid.NewString(),
		Language: language,
		Code:     code,
	}
}
