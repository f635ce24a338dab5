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
	"fmt"
	"strings"
)

// Stage payload construction. The analyst sees the raw code; the writer sees
// the analysis plus the original code for reference; the reviewer sees the
// draft plus the original code so it can cross-check them directly.

func analystPayload(language Language, code string) string {
	return fmt.Sprintf("Analyse this %s code thoroughly:\n\n%s", language, code)
}

func writerPayload(language Language, analysis, code string) string {
	return fmt.Sprintf(`Write complete professional documentation using this analysis:

--- ANALYSIS ---
%s

--- ORIGINAL %s CODE (for reference) ---
%s`, analysis, strings.ToUpper(string(language)), code)
}

func reviewerPayload(language Language, draft, code string) string {
	return fmt.Sprintf(`Review and polish this documentation against the original code.

--- DOCUMENTATION TO REVIEW ---
%s

--- ORIGINAL %s CODE ---
%s`, draft, strings.ToUpper(string(language)), code)
}
