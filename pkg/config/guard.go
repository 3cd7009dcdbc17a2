package config

// GuardConfig controls structural SQL validation.
type GuardConfig struct {
	// AllowedTables restricts queries to the listed physical tables when
	// non-empty.
	AllowedTables []string

	// AllowedColumns maps a physical table to its permitted columns.
	AllowedColumns map[string][]string

	// ColumnAllowlistMode controls column allowlist enforcement.
	ColumnAllowlistMode AllowlistMode

	// RestrictedTables is a denylist checked regardless of AllowedTables;
	// entries are appended to the built-in system-catalog denylist.
	RestrictedTables []string

	// SensitiveColumns extends the built-in sensitive-column list.
	SensitiveColumns []string

	// BlockSensitiveColumns escalates sensitive-column matches from
	// warnings to violations.
	BlockSensitiveColumns bool

	// MaxJoinComplexity caps the number of join nodes across all scopes.
	MaxJoinComplexity int

	// MaxASTNodes caps the parsed tree size.
	MaxASTNodes int
}

// DefaultGuardConfig returns the built-in guard defaults.
func DefaultGuardConfig() *GuardConfig {
	return &GuardConfig{
		ColumnAllowlistMode: AllowlistModeOff,
		MaxJoinComplexity:   10,
		MaxASTNodes:         5000,
	}
}
