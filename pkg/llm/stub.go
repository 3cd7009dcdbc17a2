package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// StubClient returns scripted completions, matched by substring against the
// last message. Used by tests and the evaluation runner's replay mode.
type StubClient struct {
	mu sync.Mutex
	// Rules are checked in order; the first whose Match appears in the last
	// message wins.
	Rules []StubRule
	// Fallback is returned when no rule matches; empty falls through to an error.
	Fallback string
	// Err fails every call when set.
	Err   error
	Calls []*Request
}

// StubRule pairs a substring trigger with a canned response.
type StubRule struct {
	Match    string
	Response string
}

var _ Client = (*StubClient)(nil)

// NewStubClient creates a stub that always answers with text.
func NewStubClient(text string) *StubClient {
	return &StubClient{Fallback: text}
}

// Complete returns the scripted response for the request.
func (c *StubClient) Complete(_ context.Context, req *Request) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, req)

	if c.Err != nil {
		return nil, c.Err
	}

	last := req.Prompt
	if n := len(req.Messages); n > 0 {
		last = req.Messages[n-1].Content
	}
	for _, rule := range c.Rules {
		if strings.Contains(last, rule.Match) {
			return c.respond(rule.Response), nil
		}
	}
	if c.Fallback != "" {
		return c.respond(c.Fallback), nil
	}
	return nil, fmt.Errorf("stub has no response for request")
}

// CallCount returns the number of completions served.
func (c *StubClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Calls)
}

// Close is a no-op.
func (c *StubClient) Close() error { return nil }

func (c *StubClient) respond(text string) *Response {
	return &Response{Text: text, OutputTokens: len(text) / 4}
}
