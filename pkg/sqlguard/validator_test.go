package sqlguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHappyPath(t *testing.T) {
	res := Validate("SELECT id, name FROM customers WHERE id = 1 ORDER BY id LIMIT 5", DefaultOptions())

	require.True(t, res.IsValid)
	assert.Empty(t, res.Violations)
	require.Len(t, res.Metadata.TableLineage, 1)
	assert.Equal(t, "customers", res.Metadata.TableLineage[0].Name)
	assert.NotEmpty(t, res.NormalizedSQL)
}

func TestValidateRejectsNonSelect(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"drop", "DROP TABLE customer"},
		{"insert", "INSERT INTO t (a) VALUES (1)"},
		{"update", "UPDATE t SET a = 1"},
		{"delete", "DELETE FROM t"},
		{"truncate", "TRUNCATE t"},
		{"grant", "GRANT SELECT ON t TO alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.sql, DefaultOptions())

			require.False(t, res.IsValid)
			require.NotEmpty(t, res.Violations)
			assert.Equal(t, ViolationForbiddenCommand, res.Violations[0].Type)
		})
	}
}

func TestValidateRejectsMultipleStatements(t *testing.T) {
	res := Validate("SELECT 1; SELECT 2", DefaultOptions())

	require.False(t, res.IsValid)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, ViolationSecurityPolicy, res.Violations[0].Type)
}

func TestValidateRejectsDataModifyingCTE(t *testing.T) {
	res := Validate("WITH gone AS (DELETE FROM orders RETURNING id) SELECT * FROM gone", DefaultOptions())

	require.False(t, res.IsValid)
	found := false
	for _, v := range res.Violations {
		if v.Type == ViolationForbiddenCommand {
			found = true
		}
	}
	assert.True(t, found, "expected a forbidden-command violation, got %v", res.Violations)
}

func TestValidateRejectsSystemTables(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"pg prefix", "SELECT * FROM pg_class"},
		{"pg_catalog schema", "SELECT * FROM pg_catalog.pg_tables"},
		{"information_schema", "SELECT * FROM information_schema.tables"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.sql, DefaultOptions())

			require.False(t, res.IsValid)
			assert.Equal(t, ViolationRestrictedTable, res.Violations[0].Type)
		})
	}
}

func TestValidateRejectsRestrictedTable(t *testing.T) {
	res := Validate("SELECT * FROM payroll", DefaultOptions())

	require.False(t, res.IsValid)
	assert.Equal(t, ViolationRestrictedTable, res.Violations[0].Type)
}

func TestValidateTableAllowlist(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowedTables = []string{"orders", "customers"}

	res := Validate("SELECT * FROM orders", opts)
	assert.True(t, res.IsValid)

	res = Validate("SELECT * FROM shipments", opts)
	require.False(t, res.IsValid)
	assert.Equal(t, ViolationRestrictedTable, res.Violations[0].Type)
}

func TestValidateAllowlistChecksUnionBranches(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowedTables = []string{"orders"}

	res := Validate("SELECT id FROM orders UNION ALL SELECT id FROM shipments", opts)

	require.False(t, res.IsValid)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "shipments", res.Violations[0].Details["table"])
}

func TestValidateCTENamesAreNotBaseTables(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowedTables = []string{"orders"}

	res := Validate("WITH recent AS (SELECT * FROM orders) SELECT * FROM recent", opts)

	require.True(t, res.IsValid, "violations: %v", res.Violations)
	require.Len(t, res.Metadata.TableLineage, 1)
	assert.Equal(t, "orders", res.Metadata.TableLineage[0].Name)
}

func TestValidateJoinComplexityLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxJoinComplexity = 1

	sql := "SELECT * FROM a JOIN b ON a.id = b.a_id JOIN c ON b.id = c.b_id"
	res := Validate(sql, opts)

	require.False(t, res.IsValid)
	assert.Equal(t, ViolationComplexityLimit, res.Violations[0].Type)
	assert.Equal(t, 2, res.Metadata.JoinComplexity)
}

func TestValidateSensitiveColumns(t *testing.T) {
	opts := DefaultOptions()
	res := Validate("SELECT u.password FROM users u", opts)
	require.True(t, res.IsValid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, ViolationSensitiveColumn, res.Warnings[0].Type)

	opts.BlockSensitiveColumns = true
	res = Validate("SELECT u.password FROM users u", opts)
	require.False(t, res.IsValid)
	assert.Equal(t, ViolationSensitiveColumn, res.Violations[0].Type)
}

func TestValidateColumnAllowlistModes(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowedColumns = map[string][]string{"orders": {"id", "status"}}
	sql := "SELECT o.id, o.total FROM orders o"

	opts.ColumnMode = EnforcementOff
	res := Validate(sql, opts)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Warnings)

	opts.ColumnMode = EnforcementWarn
	res = Validate(sql, opts)
	assert.True(t, res.IsValid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, ViolationColumnAllowlist, res.Warnings[0].Type)

	opts.ColumnMode = EnforcementBlock
	res = Validate(sql, opts)
	require.False(t, res.IsValid)
	assert.Equal(t, ViolationColumnAllowlist, res.Violations[0].Type)
}

func TestValidateUnqualifiedColumnsSkipAllowlist(t *testing.T) {
	opts := DefaultOptions()
	opts.ColumnMode = EnforcementBlock
	opts.AllowedColumns = map[string][]string{"orders": {"id"}}

	res := Validate("SELECT total FROM orders", opts)

	assert.True(t, res.IsValid, "violations: %v", res.Violations)
}

func TestValidateMetadataExtraction(t *testing.T) {
	sql := `SELECT c.name, COUNT(*) AS n
		FROM orders o JOIN customers c ON o.customer_id = c.id
		WHERE o.status = 'open'
		  AND o.total > (SELECT AVG(total) FROM orders)
		GROUP BY c.name`
	res := Validate(sql, DefaultOptions())

	require.True(t, res.IsValid, "violations: %v", res.Violations)
	assert.Equal(t, 1, res.Metadata.JoinComplexity)
	assert.True(t, res.Metadata.HasAggregation)
	assert.True(t, res.Metadata.HasSubquery)
	assert.False(t, res.Metadata.HasWindowFunction)
	assert.Contains(t, res.Metadata.ColumnUsage["orders"], "status")
	assert.Contains(t, res.Metadata.ColumnUsage["customers"], "name")
}

func TestValidateWindowFunctionDetected(t *testing.T) {
	res := Validate("SELECT id, ROW_NUMBER() OVER (ORDER BY id) FROM orders", DefaultOptions())

	require.True(t, res.IsValid, "violations: %v", res.Violations)
	assert.True(t, res.Metadata.HasWindowFunction)
}

func TestValidateRejectsDangerousFunctions(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"pg prefix", "SELECT pg_sleep(10)"},
		{"settings", "SELECT current_setting('server_version')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.sql, DefaultOptions())

			require.False(t, res.IsValid)
			assert.Equal(t, ViolationSecurityPolicy, res.Violations[0].Type)
		})
	}
}

func TestValidateMetadataReturnedOnFailure(t *testing.T) {
	res := Validate("SELECT * FROM payroll p JOIN orders o ON p.id = o.id", DefaultOptions())

	require.False(t, res.IsValid)
	require.Len(t, res.Metadata.TableLineage, 2)
	assert.Equal(t, 1, res.Metadata.JoinComplexity)
}

func TestValidateDeterministic(t *testing.T) {
	sql := `SELECT u.password, u.ssn, p.secret
		FROM users u JOIN profiles p ON u.id = p.user_id
		WHERE u.email LIKE '%x%'`
	opts := DefaultOptions()
	opts.BlockSensitiveColumns = true

	first := Validate(sql, opts)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Validate(sql, opts))
	}
}

func TestValidateSyntaxError(t *testing.T) {
	res := Validate("SELEC id FRO t", DefaultOptions())

	require.False(t, res.IsValid)
	assert.Equal(t, ViolationSyntaxError, res.Violations[0].Type)
}

func TestViolationTypeIsValid(t *testing.T) {
	assert.True(t, ViolationForbiddenCommand.IsValid())
	assert.True(t, ViolationSensitiveColumn.IsValid())
	assert.False(t, ViolationType("bogus").IsValid())
}

func TestEnforcementModeIsValid(t *testing.T) {
	assert.True(t, EnforcementOff.IsValid())
	assert.True(t, EnforcementWarn.IsValid())
	assert.True(t, EnforcementBlock.IsValid())
	assert.False(t, EnforcementMode("loud").IsValid())
}
