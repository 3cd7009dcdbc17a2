package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget(t *testing.T) {
	t.Run("unlimited when zero", func(t *testing.T) {
		b := &Budget{}
		require.NoError(t, b.Check())
		require.NoError(t, b.Charge(1_000_000))
		assert.Equal(t, 0, b.Remaining())
	})

	t.Run("charge past the ceiling fails", func(t *testing.T) {
		b := &Budget{Limit: 100}
		require.NoError(t, b.Charge(60))
		assert.Equal(t, 40, b.Remaining())

		err := b.Charge(50)
		require.ErrorIs(t, err, ErrBudgetExceeded)
		assert.Equal(t, 0, b.Remaining())
	})

	t.Run("check fails once exhausted", func(t *testing.T) {
		b := &Budget{Limit: 10, Consumed: 10}
		require.ErrorIs(t, b.Check(), ErrBudgetExceeded)
	})
}

func TestRequestConversation(t *testing.T) {
	req := &Request{Prompt: "show me revenue"}
	msgs := req.conversation()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleUser, msgs[0].Role)

	req = &Request{Messages: []Message{
		{Role: RoleSystem, Content: "you generate sql"},
		{Role: RoleUser, Content: "show me revenue"},
	}}
	assert.Len(t, req.conversation(), 2)
	assert.Equal(t, len("system")+len("you generate sql")+len("user")+len("show me revenue"), req.PromptBytes())
}

func TestStubClient(t *testing.T) {
	stub := &StubClient{
		Rules: []StubRule{
			{Match: "generate sql", Response: "SELECT 1"},
			{Match: "synthesize", Response: "Here is your answer."},
		},
		Fallback: "ok",
	}

	resp, err := stub.Complete(context.Background(), &Request{Prompt: "please generate sql for this"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", resp.Text)

	resp, err = stub.Complete(context.Background(), &Request{Messages: []Message{
		{Role: RoleSystem, Content: "irrelevant"},
		{Role: RoleUser, Content: "synthesize the result"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "Here is your answer.", resp.Text)

	resp, err = stub.Complete(context.Background(), &Request{Prompt: "anything else"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 3, stub.CallCount())
}

func TestResponseTotalTokens(t *testing.T) {
	assert.Equal(t, 30, (&Response{InputTokens: 10, OutputTokens: 20}).TotalTokens())
	// Estimated from text length when the provider reported nothing.
	assert.Equal(t, 5, (&Response{Text: "12345678901234567890"}).TotalTokens())
}
