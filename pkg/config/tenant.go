package config

// TenantConfig controls mandatory tenant isolation rewriting.
type TenantConfig struct {
	// Enabled turns the rewrite stage on. Disabling it is only safe when
	// the target enforces isolation some other way (e.g. row-level security).
	Enabled bool

	// Column is the tenant discriminator column injected into every
	// non-exempt table reference.
	Column string

	// ExemptTables are shared reference tables skipped by the rewrite.
	ExemptTables []string

	// StrictMode escalates ambiguous unqualified references inside
	// subqueries to correlation rejections.
	StrictMode bool

	// MaxTargets caps the number of table references eligible for injection.
	MaxTargets int

	// MaxParams caps the appended parameter list.
	MaxParams int

	// MaxASTNodes caps the parsed tree size.
	MaxASTNodes int

	// AssertInvariants re-runs the rewrite on its own output and asserts
	// byte-identical SQL. Debug aid; adds a full parse per query.
	AssertInvariants bool
}

// DefaultTenantConfig returns the built-in tenant isolation defaults.
func DefaultTenantConfig() *TenantConfig {
	return &TenantConfig{
		Enabled:     true,
		Column:      "tenant_id",
		MaxTargets:  20,
		MaxParams:   20,
		MaxASTNodes: 5000,
	}
}
