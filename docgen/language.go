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
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Language is the tag of a supported source language.
type Language string

const (
	Python     Language = "Python"
	JavaScript Language = "JavaScript"
)

// ErrInvalidLanguage is returned for any tag outside the supported set,
// before any model is contacted.
var ErrInvalidLanguage = errors.New("unsupported language")

// ParseLanguage resolves a user-supplied tag to a Language.
// Matching is case-insensitive and accepts the common short forms.
func ParseLanguage(tag string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "python", "py":
		return Python, nil
	case "javascript", "js":
		return JavaScript, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, tag)
}

// LanguageForFile infers the language tag from a file extension.
func LanguageForFile(path string) (Language, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return Python, nil
	case ".js", ".mjs", ".cjs":
		return JavaScript, nil
	}
	return "", fmt.Errorf("%w: file %q", ErrInvalidLanguage, path)
}
