package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv(EnvAutoPagination, "true")
	t.Setenv(EnvAutoPaginationMaxPages, "7")
	t.Setenv(EnvMaxJoinComplexity, "3")
	t.Setenv(EnvColumnAllowlistMode, "block")
	t.Setenv(EnvBlockSensitiveColumns, "true")
	t.Setenv(EnvTenantRewriteStrictMode, "true")
	t.Setenv(EnvPersistenceFailOpen, "false")
	t.Setenv(EnvDisallowFederatedOffset, "1")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Engine.AutoPagination)
	assert.Equal(t, 7, cfg.Engine.AutoPaginationMaxPages)
	assert.Equal(t, 3, cfg.Guard.MaxJoinComplexity)
	assert.Equal(t, AllowlistModeBlock, cfg.Guard.ColumnAllowlistMode)
	assert.True(t, cfg.Guard.BlockSensitiveColumns)
	assert.True(t, cfg.Tenant.StrictMode)
	assert.False(t, cfg.Workflow.PersistenceFailOpen)
	assert.True(t, cfg.Pagination.DisallowFederatedOffset)
}

func TestEnvOverridesWinOverYAML(t *testing.T) {
	configDir := setupTestConfigDir(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv(EnvTenantRewriteEnabled, "false")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.False(t, cfg.Tenant.Enabled)
}

func TestEnvOverrideSharedASTCeiling(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv(EnvMaxSQLASTNodes, "1234")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1234, cfg.Guard.MaxASTNodes)
	assert.Equal(t, 1234, cfg.Tenant.MaxASTNodes)
}

func TestEnvOverrideInvalidValuesIgnored(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv(EnvAutoPagination, "definitely")
	t.Setenv(EnvAutoPaginationMaxPages, "-4")
	t.Setenv(EnvColumnAllowlistMode, "loud")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.Engine.AutoPagination)
	assert.Equal(t, 10, cfg.Engine.AutoPaginationMaxPages)
	assert.Equal(t, AllowlistModeOff, cfg.Guard.ColumnAllowlistMode)
}

func TestEnvOTLPEndpointEnablesTelemetry(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv(EnvOTLPEndpoint, "collector:4317")
	t.Setenv(EnvOTELServiceName, "querra-staging")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, "querra-staging", cfg.Telemetry.ServiceName)
}

func TestEnvQueryTargetOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv(EnvQueryTargetProvider, "sqlite")
	t.Setenv(EnvQueryTargetBackend, "sqlite-embedded")
	t.Setenv("QUERY_TARGET_DSN", "file:analytics.db")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	target, err := cfg.DefaultQueryTarget()
	require.NoError(t, err)
	assert.Equal(t, TargetProviderSQLite, target.Provider)
	assert.Equal(t, "sqlite-embedded", target.Backend)
}
