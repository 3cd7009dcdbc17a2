package config

// PaginationConfig controls keyset cursor behavior across query targets.
type PaginationConfig struct {
	// CursorSecretEnv names the environment variable holding the HMAC key
	// for page token signing. An empty value at that variable disables
	// signing (tokens are still opaque but unverified).
	CursorSecretEnv string

	// MaxPageSize clamps requested page sizes.
	MaxPageSize int

	// DisallowFederatedOffset rejects offset continuation on federated
	// targets instead of falling back when a member lacks keyset support.
	DisallowFederatedOffset bool
}

// DefaultPaginationConfig returns the built-in pagination defaults.
func DefaultPaginationConfig() *PaginationConfig {
	return &PaginationConfig{
		CursorSecretEnv: "PAGINATION_CURSOR_SECRET",
		MaxPageSize:     500,
	}
}
