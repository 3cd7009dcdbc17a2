// Package llm defines the text-completion interface the workflow calls and
// its adapters: a gRPC client for the dedicated LLM service, a langchaingo
// adapter for direct provider access, and a stub for tests and replay runs.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrBudgetExceeded is returned when a completion would exceed the caller's
// token budget. It maps to the LLM_BUDGET_EXCEEDED error code.
var ErrBudgetExceeded = errors.New("llm token budget exceeded")

// CodeBudgetExceeded is the canonical error code for budget exhaustion.
const CodeBudgetExceeded = "LLM_BUDGET_EXCEEDED"

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one completion call. Either Messages or Prompt is set; a bare
// prompt is treated as a single user message.
type Request struct {
	Messages []Message
	Prompt   string
	// MaxTokens caps the response length; 0 uses the provider default.
	MaxTokens int
	// Temperature overrides the provider default when non-nil.
	Temperature *float32
}

// conversation normalizes the request into message form.
func (r *Request) conversation() []Message {
	if len(r.Messages) > 0 {
		return r.Messages
	}
	return []Message{{Role: RoleUser, Content: r.Prompt}}
}

// PromptBytes returns the byte size of the serialized conversation, used for
// the prompt-size accounting carried in workflow state.
func (r *Request) PromptBytes() int {
	total := 0
	for _, m := range r.conversation() {
		total += len(m.Role) + len(m.Content)
	}
	return total
}

// Response is the completion result.
type Response struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// TotalTokens returns the combined token count, estimating from text length
// when the provider reported nothing.
func (r *Response) TotalTokens() int {
	total := r.InputTokens + r.OutputTokens
	if total == 0 {
		total = len(r.Text) / 4
	}
	return total
}

// Client is the text-completion callable consumed by the workflow. The core
// treats the model as an external collaborator: one call in, one text out.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Close() error
}

// Budget tracks token consumption against a per-run ceiling. The workflow
// charges it around every completion; exhaustion is a hard error.
type Budget struct {
	// Limit is the total token ceiling; 0 disables enforcement.
	Limit    int
	Consumed int
}

// Check fails when the budget is already exhausted.
func (b *Budget) Check() error {
	if b.Limit > 0 && b.Consumed >= b.Limit {
		return fmt.Errorf("%w: consumed %d of %d", ErrBudgetExceeded, b.Consumed, b.Limit)
	}
	return nil
}

// Charge records consumption and fails when the ceiling is crossed.
func (b *Budget) Charge(tokens int) error {
	b.Consumed += tokens
	if b.Limit > 0 && b.Consumed > b.Limit {
		return fmt.Errorf("%w: consumed %d of %d", ErrBudgetExceeded, b.Consumed, b.Limit)
	}
	return nil
}

// Remaining returns the tokens left under the ceiling, 0 when unlimited.
func (b *Budget) Remaining() int {
	if b.Limit <= 0 {
		return 0
	}
	left := b.Limit - b.Consumed
	if left < 0 {
		return 0
	}
	return left
}
