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

package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/docsmith/docsmith/internal/utils"
	"github.com/docsmith/docsmith/llm/log"
	"github.com/docsmith/docsmith/llm/prompt"
)

var _ Generator = (*ChatAgent)(nil)

// ChatAgent is a single-shot generator: one system prompt, one user payload,
// one assistant reply. No tools, no conversation history.
type ChatAgent struct {
	name    string
	model   ChatModel
	opts    ChatAgentOptions
	retries int           // Number of retries on failure
	timeout time.Duration // Request timeout
}

type ChatAgentOptions struct {
	SysPrompt prompt.Prompt `json:"-"`
	Retries   int           `json:"retries"` // Number of retries, default: 0 (failures propagate)
	Timeout   time.Duration `json:"timeout"` // Request timeout, default: 600s
}

func NewChatAgent(name string, model ChatModel, opts ChatAgentOptions) *ChatAgent {
	if opts.SysPrompt == nil {
		opts.SysPrompt = prompt.NewTextPrompt("")
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 600 * time.Second // Default: 600 seconds
	}
	return &ChatAgent{
		name:    name,
		model:   model,
		opts:    opts,
		retries: opts.Retries,
		timeout: timeout,
	}
}

func (a *ChatAgent) Name() string {
	return a.name
}

func (a *ChatAgent) Call(ctx context.Context, input string) (string, error) {
	log.Debug("[User->%s] %s", a.name, input)
	msgs := []*schema.Message{
		schema.SystemMessage(a.opts.SysPrompt.String()),
		schema.UserMessage(input),
	}

	var lastErr error
	for attempt := 0; attempt <= a.retries; attempt++ {
		if attempt > 0 {
			log.Info("Retrying LLM call (attempt %d/%d)...", attempt+1, a.retries+1)
			// Exponential backoff: wait 1s, 2s, 4s...
			waitTime := time.Duration(1<<uint(attempt-1)) * time.Second
			if waitTime > 10*time.Second {
				waitTime = 10 * time.Second // Cap at 10 seconds
			}
			time.Sleep(waitTime)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, a.timeout)
		out, err := a.model.Generate(attemptCtx, msgs)
		cancel()
		if err == nil {
			log.Debug("[%s->User] %s", a.name, out.Content)
			return out.Content, nil
		}

		lastErr = err
		if !isRetryable(err) {
			log.Error("Non-retryable error occurred: %v", err)
			return "", utils.WrapError(err, a.name+" generate error")
		}
		log.Info("Retryable error occurred (attempt %d/%d): %v", attempt+1, a.retries+1, err)
	}

	// All retries exhausted
	return "", utils.WrapError(fmt.Errorf("failed after %d attempts: %w", a.retries+1, lastErr), a.name+" generate error")
}

// isRetryable reports whether err looks like a transient transport failure.
func isRetryable(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "operation timed out") ||
		strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "read tcp") ||
		strings.Contains(errStr, "write tcp")
}
