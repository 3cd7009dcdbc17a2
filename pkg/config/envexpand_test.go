package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "5432")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "host: {{.TEST_DB_HOST}}",
			expected: "host: db.internal",
		},
		{
			name:     "multiple variables",
			input:    "dsn: {{.TEST_DB_HOST}}:{{.TEST_DB_PORT}}",
			expected: "dsn: db.internal:5432",
		},
		{
			name:     "missing variable expands to empty",
			input:    "key: {{.QUERRA_TEST_UNSET_VAR}}",
			expected: "key: ",
		},
		{
			name:     "no template syntax passes through",
			input:    "plain: value",
			expected: "plain: value",
		},
		{
			name:     "dollar signs untouched",
			input:    `pattern: "^secret.*$ costs \\$[0-9]+"`,
			expected: `pattern: "^secret.*$ costs \\$[0-9]+"`,
		},
		{
			name:     "shell style vars untouched",
			input:    "cmd: $PATH and ${HOME}",
			expected: "cmd: $PATH and ${HOME}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestExpandEnvMalformedTemplate(t *testing.T) {
	// Unclosed action cannot parse; the original bytes come back so the
	// YAML parser can produce the real error.
	input := "broken: {{.UNCLOSED"
	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result))
}

func TestEnvironMap(t *testing.T) {
	t.Setenv("QUERRA_TEST_EQ", "a=b=c")

	m := environMap()
	assert.Equal(t, "a=b=c", m["QUERRA_TEST_EQ"])
}
