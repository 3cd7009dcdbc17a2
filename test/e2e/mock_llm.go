package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/querra-ai/querra/pkg/llm"
)

// Prompt kinds, classified from the structural markers each workflow node
// puts in its final message.
const (
	kindRouter     = "router"
	kindClarify    = "clarify"
	kindSelfAnswer = "self_answer"
	kindPlan       = "plan"
	kindGenerate   = "generate"
	kindCorrect    = "correct"
	kindSynthesize = "synthesize"
)

// script is the canned behavior of one scripted run. Zero values fall back
// to harmless defaults; sql must be set by every scenario that reaches the
// generate node.
type script struct {
	// router holds per-call router replies, consumed in order; the last entry
	// repeats once exhausted. Empty means "none" (answerable).
	router []string
	// plan is the plan node's reply.
	plan string
	// sql is the generate node's reply.
	sql string
	// clarify is the clarification question raised for ambiguous questions.
	clarify string
	// correct holds per-round repaired SQL; an unscripted correction request
	// fails the call so unexpected repair loops surface in the run status.
	correct []string
	// answer is the synthesized prose answer.
	answer string
	// gate runs before every reply and may block, e.g. to hold a node open
	// until the test cancels the session.
	gate func(ctx context.Context, kind string)
}

// llmCall records one completion request for assertions.
type llmCall struct {
	kind string
	last string
	// text is every message content joined, so tests can check whether a
	// clarification answer or few-shot example reached the prompt.
	text string
}

// scriptedLLM drives the workflow without a model. The node prompts are
// distinguishable by fixed markers: clarify carries "Ambiguity:", correct
// carries "Failed SQL:", synthesize carries "Rows returned:", generate has a
// "Plan:" section, plan has the schema alone, and the router's final message
// is the bare question.
type scriptedLLM struct {
	script script

	mu           sync.Mutex
	calls        []llmCall
	routerCalls  int
	correctCalls int
}

var _ llm.Client = (*scriptedLLM)(nil)

func newScriptedLLM(s script) *scriptedLLM {
	if s.plan == "" {
		s.plan = "Aggregate the orders table and report the figures."
	}
	if s.clarify == "" {
		s.clarify = "Which time range should the answer cover?"
	}
	if s.answer == "" {
		s.answer = "Here is what the data shows."
	}
	return &scriptedLLM{script: s}
}

func (c *scriptedLLM) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	kind, last, text := classifyPrompt(req)
	if c.script.gate != nil {
		c.script.gate(ctx, kind)
	}

	c.mu.Lock()
	c.calls = append(c.calls, llmCall{kind: kind, last: last, text: text})

	var reply string
	var err error
	switch kind {
	case kindRouter:
		reply = pick(c.script.router, c.routerCalls, "none")
		c.routerCalls++
	case kindClarify:
		reply = c.script.clarify
	case kindSelfAnswer:
		reply = "any"
	case kindPlan:
		reply = c.script.plan
	case kindGenerate:
		if c.script.sql == "" {
			err = fmt.Errorf("no SQL scripted for generate prompt: %s", last)
		}
		reply = c.script.sql
	case kindCorrect:
		if len(c.script.correct) == 0 {
			err = fmt.Errorf("unscripted correction request: %s", last)
		} else {
			reply = pick(c.script.correct, c.correctCalls, "")
		}
		c.correctCalls++
	case kindSynthesize:
		reply = c.script.answer
	}
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return &llm.Response{
		Text:         reply,
		InputTokens:  len(text) / 4,
		OutputTokens: len(reply) / 4,
	}, nil
}

func (c *scriptedLLM) Close() error { return nil }

// count returns how many completions of the given kind were requested.
func (c *scriptedLLM) count(kind string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, call := range c.calls {
		if call.kind == kind {
			n++
		}
	}
	return n
}

// call returns the i-th recorded completion of the given kind.
func (c *scriptedLLM) call(kind string, i int) (llmCall, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	seen := 0
	for _, call := range c.calls {
		if call.kind != kind {
			continue
		}
		if seen == i {
			return call, true
		}
		seen++
	}
	return llmCall{}, false
}

func classifyPrompt(req *llm.Request) (kind, last, text string) {
	msgs := req.Messages
	if len(msgs) == 0 {
		msgs = []llm.Message{{Role: llm.RoleUser, Content: req.Prompt}}
	}
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	last = msgs[len(msgs)-1].Content
	text = b.String()

	switch {
	case strings.Contains(last, "\nAmbiguity: "):
		kind = kindClarify
	case strings.Contains(last, "Clarifying question: "):
		kind = kindSelfAnswer
	case strings.Contains(last, "Failed SQL:"):
		kind = kindCorrect
	case strings.Contains(last, "Rows returned:") || strings.Contains(last, "Result rows:"):
		kind = kindSynthesize
	case strings.Contains(last, "Plan:\n"):
		kind = kindGenerate
	case strings.Contains(last, "Schema:\n"):
		kind = kindPlan
	default:
		kind = kindRouter
	}
	return kind, last, text
}

func pick(replies []string, i int, fallback string) string {
	if len(replies) == 0 {
		return fallback
	}
	if i >= len(replies) {
		return replies[len(replies)-1]
	}
	return replies[i]
}
