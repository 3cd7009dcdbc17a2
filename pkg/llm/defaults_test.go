package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestDefaults(t *testing.T) {
	temp := float32(0.2)

	t.Run("fills unset knobs", func(t *testing.T) {
		stub := NewStubClient("ok")
		client := WithRequestDefaults(stub, 4096, &temp)

		_, err := client.Complete(context.Background(), &Request{Prompt: "hello"})
		require.NoError(t, err)

		require.Len(t, stub.Calls, 1)
		assert.Equal(t, 4096, stub.Calls[0].MaxTokens)
		require.NotNil(t, stub.Calls[0].Temperature)
		assert.InDelta(t, 0.2, *stub.Calls[0].Temperature, 1e-6)
	})

	t.Run("explicit request values win", func(t *testing.T) {
		stub := NewStubClient("ok")
		client := WithRequestDefaults(stub, 4096, &temp)

		hot := float32(0.9)
		req := &Request{Prompt: "hello", MaxTokens: 128, Temperature: &hot}
		_, err := client.Complete(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 128, stub.Calls[0].MaxTokens)
		assert.InDelta(t, 0.9, *stub.Calls[0].Temperature, 1e-6)

		// the caller's request is untouched
		assert.Equal(t, 128, req.MaxTokens)
	})

	t.Run("no defaults means no wrapper", func(t *testing.T) {
		stub := NewStubClient("ok")
		assert.Same(t, Client(stub), WithRequestDefaults(stub, 0, nil))
	})
}
