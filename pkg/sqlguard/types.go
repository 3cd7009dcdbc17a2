package sqlguard

// ViolationType classifies a policy violation found during validation
type ViolationType string

const (
	// ViolationSyntaxError means the statement could not be parsed
	ViolationSyntaxError ViolationType = "SYNTAX_ERROR"
	// ViolationSecurityPolicy covers structural policy failures (chaining, locking, SELECT INTO)
	ViolationSecurityPolicy ViolationType = "SECURITY_POLICY_VIOLATION"
	// ViolationForbiddenCommand means a non-read statement or command node was found
	ViolationForbiddenCommand ViolationType = "FORBIDDEN_COMMAND"
	// ViolationRestrictedTable means a denylisted or system table was referenced
	ViolationRestrictedTable ViolationType = "RESTRICTED_TABLE"
	// ViolationComplexityLimit means a join or AST size ceiling was exceeded
	ViolationComplexityLimit ViolationType = "COMPLEXITY_LIMIT"
	// ViolationSensitiveColumn means a column on the sensitive policy list was referenced
	ViolationSensitiveColumn ViolationType = "SENSITIVE_COLUMN"
	// ViolationColumnAllowlist means a column outside the configured allowlist was referenced
	ViolationColumnAllowlist ViolationType = "COLUMN_ALLOWLIST"
	// ViolationValidationError covers internal validation faults
	ViolationValidationError ViolationType = "VALIDATION_ERROR"
)

// IsValid checks if the violation type is valid
func (v ViolationType) IsValid() bool {
	switch v {
	case ViolationSyntaxError,
		ViolationSecurityPolicy,
		ViolationForbiddenCommand,
		ViolationRestrictedTable,
		ViolationComplexityLimit,
		ViolationSensitiveColumn,
		ViolationColumnAllowlist,
		ViolationValidationError:
		return true
	default:
		return false
	}
}

// EnforcementMode controls how a guard reacts to a match
type EnforcementMode string

const (
	// EnforcementOff skips the check entirely
	EnforcementOff EnforcementMode = "off"
	// EnforcementWarn records a warning but keeps the query valid
	EnforcementWarn EnforcementMode = "warn"
	// EnforcementBlock records a violation and fails validation
	EnforcementBlock EnforcementMode = "block"
)

// IsValid checks if the enforcement mode is valid
func (m EnforcementMode) IsValid() bool {
	return m == EnforcementOff || m == EnforcementWarn || m == EnforcementBlock
}

// Violation describes a single policy violation or warning
type Violation struct {
	Type    ViolationType  `json:"type"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// TableRef identifies one base-table reference found in the statement
type TableRef struct {
	Schema string `json:"schema,omitempty"`
	Name   string `json:"name"`
	Alias  string `json:"alias,omitempty"`
}

// Metadata is the lineage extracted during validation. It is populated on a
// best-effort basis and returned even when validation fails, so audit trails
// can record what a rejected query was trying to touch.
type Metadata struct {
	TableLineage      []TableRef          `json:"table_lineage"`
	ColumnUsage       map[string][]string `json:"column_usage"`
	JoinComplexity    int                 `json:"join_complexity"`
	HasAggregation    bool                `json:"has_aggregation"`
	HasSubquery       bool                `json:"has_subquery"`
	HasWindowFunction bool                `json:"has_window_function"`
	NodeCount         int                 `json:"node_count"`
}

// Result is the outcome of a validation pass
type Result struct {
	IsValid       bool        `json:"is_valid"`
	Violations    []Violation `json:"violations"`
	Warnings      []Violation `json:"warnings"`
	Metadata      Metadata    `json:"metadata"`
	NormalizedSQL string      `json:"normalized_sql,omitempty"`
}

// Options configures a validation pass
type Options struct {
	// AllowedTables restricts queries to the listed physical tables when non-empty.
	AllowedTables []string
	// AllowedColumns maps a physical table to its permitted columns.
	AllowedColumns map[string][]string
	// ColumnMode controls allowlist enforcement: off, warn, or block.
	ColumnMode EnforcementMode
	// RestrictedTables is a denylist checked regardless of AllowedTables.
	RestrictedTables []string
	// SensitiveColumns are column names that trigger the sensitive-column guard.
	SensitiveColumns []string
	// BlockSensitiveColumns escalates sensitive-column matches from warnings to violations.
	BlockSensitiveColumns bool
	// MaxJoinComplexity caps the number of join nodes across all scopes.
	MaxJoinComplexity int
	// MaxASTNodes caps the parsed tree size.
	MaxASTNodes int
}

// DefaultOptions returns the validation options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		ColumnMode:        EnforcementOff,
		RestrictedTables:  defaultRestrictedTables(),
		SensitiveColumns:  defaultSensitiveColumns(),
		MaxJoinComplexity: DefaultMaxJoinComplexity,
		MaxASTNodes:       DefaultMaxASTNodes,
	}
}

const (
	// DefaultMaxJoinComplexity is the join-node ceiling applied when unconfigured
	DefaultMaxJoinComplexity = 10
	// DefaultMaxASTNodes is the parsed-tree size ceiling applied when unconfigured
	DefaultMaxASTNodes = 5000
)

func defaultRestrictedTables() []string {
	return []string{
		"payroll",
		"credentials",
		"audit_logs",
		"user_secrets",
	}
}

func defaultSensitiveColumns() []string {
	return []string{
		"password",
		"password_hash",
		"ssn",
		"social_security_number",
		"credit_card_number",
		"api_key",
		"secret",
		"salary",
	}
}
