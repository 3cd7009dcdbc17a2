package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMProviderRegistry(t *testing.T) {
	registry := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"main": {Type: LLMProviderTypeOpenAI, Model: "gpt-4o"},
	})

	t.Run("get existing", func(t *testing.T) {
		provider, err := registry.Get("main")
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", provider.Model)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, registry.Has("main"))
		assert.False(t, registry.Has("ghost"))
	})

	t.Run("len", func(t *testing.T) {
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("get all returns copy", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "main")
		assert.True(t, registry.Has("main"))
	})
}

func TestQueryTargetRegistry(t *testing.T) {
	registry := NewQueryTargetRegistry(map[string]*QueryTargetConfig{
		"primary": {Provider: TargetProviderPostgres, DSNEnv: "PRIMARY_DSN"},
		"archive": {Provider: TargetProviderSQLite, DSN: "file:archive.db"},
	})

	t.Run("get existing", func(t *testing.T) {
		target, err := registry.Get("archive")
		require.NoError(t, err)
		assert.Equal(t, TargetProviderSQLite, target.Provider)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrQueryTargetNotFound)
	})

	t.Run("names sorted", func(t *testing.T) {
		assert.Equal(t, []string{"archive", "primary"}, registry.Names())
	})

	t.Run("get all returns copy", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "primary")
		assert.True(t, registry.Has("primary"))
		assert.Equal(t, 2, registry.Len())
	})
}

func TestMergeUserOverridesBuiltin(t *testing.T) {
	builtin := map[string]LLMProviderConfig{
		"openai-default": {Type: LLMProviderTypeOpenAI, Model: "gpt-4o"},
	}
	user := map[string]LLMProviderConfig{
		"openai-default": {Type: LLMProviderTypeOpenAI, Model: "gpt-4o-mini"},
		"local":          {Type: LLMProviderTypeGRPC, Endpoint: "localhost:9090"},
	}

	merged := mergeLLMProviders(builtin, user)

	require.Len(t, merged, 2)
	assert.Equal(t, "gpt-4o-mini", merged["openai-default"].Model)
	assert.Equal(t, "localhost:9090", merged["local"].Endpoint)
}

func TestMergeQueryTargetsCopies(t *testing.T) {
	builtin := map[string]QueryTargetConfig{
		"primary": {Provider: TargetProviderPostgres, DSNEnv: "QUERY_TARGET_DSN"},
	}

	merged := mergeQueryTargets(builtin, nil)
	merged["primary"].Backend = "mutated"

	// The builtin map must stay pristine for the next load.
	assert.Empty(t, builtin["primary"].Backend)
}
