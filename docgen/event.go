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

// Event is one item of a streaming run: a progress notice, the final
// documentation, or a terminal error. Exactly one of Text/Err is meaningful.
type Event struct {
	Text  string
	Final bool // Text is the finished documentation, not a progress notice
	Err   error
}
