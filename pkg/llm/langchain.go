package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// LangChainClient adapts a langchaingo model to the Client interface, for
// deployments that talk to a provider directly instead of the LLM service.
type LangChainClient struct {
	model llms.Model
}

var _ Client = (*LangChainClient)(nil)

// NewLangChainClient wraps an initialized langchaingo model.
func NewLangChainClient(model llms.Model) *LangChainClient {
	return &LangChainClient{model: model}
}

// Complete sends the conversation through langchaingo and returns the first
// choice's text.
func (c *LangChainClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	messages := req.conversation()
	content := make([]llms.MessageContent, len(messages))
	for i, m := range messages {
		content[i] = llms.TextParts(chatRole(m.Role), m.Content)
	}

	var opts []llms.CallOption
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature != nil {
		opts = append(opts, llms.WithTemperature(float64(*req.Temperature)))
	}

	resp, err := c.model.GenerateContent(ctx, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("LLM returned no choices")
	}

	choice := resp.Choices[0]
	out := &Response{Text: choice.Content}
	if choice.GenerationInfo != nil {
		out.InputTokens = intInfo(choice.GenerationInfo, "PromptTokens", "input_tokens")
		out.OutputTokens = intInfo(choice.GenerationInfo, "CompletionTokens", "output_tokens")
	}
	return out, nil
}

// Close is a no-op; langchaingo models hold no connection state to release.
func (c *LangChainClient) Close() error { return nil }

func chatRole(role string) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// intInfo reads the first present key from a provider's generation info map.
// Providers disagree on key naming, so both spellings are tried.
func intInfo(info map[string]any, keys ...string) int {
	for _, key := range keys {
		switch v := info[key].(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}
