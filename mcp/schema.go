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
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GetJSONSchema reflects v into an inline JSON schema for tool registration.
func GetJSONSchema(v any) json.RawMessage {
	r := jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(v)
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return data
}
