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
	"testing"
)

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		tag  string
		want Language
		ok   bool
	}{
		{"Python", Python, true},
		{"python", Python, true},
		{"  PY ", Python, true},
		{"JavaScript", JavaScript, true},
		{"javascript", JavaScript, true},
		{"js", JavaScript, true},
		{"Ruby", "", false},
		{"", "", false},
		{"typescript", "", false},
	}
	for _, c := range cases {
		got, err := ParseLanguage(c.tag)
		if c.ok {
			if err != nil {
				t.Errorf("ParseLanguage(%q): %v", c.tag, err)
			}
			if got != c.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", c.tag, got, c.want)
			}
		} else if !errors.Is(err, ErrInvalidLanguage) {
			t.Errorf("ParseLanguage(%q) err = %v, want ErrInvalidLanguage", c.tag, err)
		}
	}
}

func TestLanguageForFile(t *testing.T) {
	if lang, err := LanguageForFile("pkg/util.py"); err != nil || lang != Python {
		t.Errorf("got (%q, %v)", lang, err)
	}
	if lang, err := LanguageForFile("web/App.JS"); err != nil || lang != JavaScript {
		t.Errorf("got (%q, %v)", lang, err)
	}
	if _, err := LanguageForFile("main.go"); !errors.Is(err, ErrInvalidLanguage) {
		t.Errorf("err = %v, want ErrInvalidLanguage", err)
	}
}
