package config

import (
	"log/slog"
	"os"
	"strconv"
)

// Environment variables recognized as overrides on top of querra.yaml.
// YAML configures the fleet; these flip individual knobs per deployment.
const (
	EnvAutoPagination         = "AGENT_AUTO_PAGINATION"
	EnvAutoPaginationMaxPages = "AGENT_AUTO_PAGINATION_MAX_PAGES"
	EnvAutoPaginationMaxRows  = "AGENT_AUTO_PAGINATION_MAX_ROWS"
	EnvMaxJoinComplexity      = "AGENT_MAX_JOIN_COMPLEXITY"
	EnvSchemaBindingValidate  = "AGENT_SCHEMA_BINDING_VALIDATION"
	EnvSchemaBindingSoftMode  = "AGENT_SCHEMA_BINDING_SOFT_MODE"
	EnvColumnAllowlistMode    = "AGENT_COLUMN_ALLOWLIST_MODE"
	EnvBlockSensitiveColumns  = "AGENT_BLOCK_SENSITIVE_COLUMNS"
	EnvSchemaDriftAutoRefresh = "AGENT_SCHEMA_DRIFT_AUTO_REFRESH"

	EnvTenantRewriteEnabled    = "TENANT_REWRITE_ENABLED"
	EnvTenantRewriteStrictMode = "TENANT_REWRITE_STRICT_MODE"
	EnvTenantRewriteMaxTargets = "TENANT_REWRITE_MAX_TARGETS"
	EnvTenantRewriteMaxParams  = "TENANT_REWRITE_MAX_PARAMS"
	EnvTenantRewriteAssert     = "TENANT_REWRITE_ASSERT_INVARIANTS"
	EnvMaxSQLASTNodes          = "MAX_SQL_AST_NODES"

	EnvPersistenceFailOpen     = "PERSISTENCE_FAIL_OPEN"
	EnvDisallowFederatedOffset = "PAGINATION_DISALLOW_FEDERATED_OFFSET"
	EnvOTLPEndpoint            = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTLPProtocol            = "OTEL_EXPORTER_OTLP_PROTOCOL"
	EnvOTELServiceName         = "OTEL_SERVICE_NAME"
	EnvQueryTargetProvider     = "QUERY_TARGET_PROVIDER"
	EnvQueryTargetBackend      = "QUERY_TARGET_BACKEND"
)

// applyEnvOverrides mutates resolved sections with recognized environment
// variables. Invalid values are logged and ignored.
func applyEnvOverrides(cfg *Config) {
	overrideBool(EnvAutoPagination, &cfg.Engine.AutoPagination)
	overrideInt(EnvAutoPaginationMaxPages, &cfg.Engine.AutoPaginationMaxPages)
	overrideInt(EnvAutoPaginationMaxRows, &cfg.Engine.AutoPaginationMaxRows)
	overrideBool(EnvSchemaBindingValidate, &cfg.Engine.SchemaBindingValidation)
	overrideBool(EnvSchemaBindingSoftMode, &cfg.Engine.SchemaBindingSoftMode)
	overrideBool(EnvSchemaDriftAutoRefresh, &cfg.Engine.SchemaDriftAutoRefresh)

	overrideInt(EnvMaxJoinComplexity, &cfg.Guard.MaxJoinComplexity)
	overrideBool(EnvBlockSensitiveColumns, &cfg.Guard.BlockSensitiveColumns)
	if v, ok := lookup(EnvColumnAllowlistMode); ok {
		mode := AllowlistMode(v)
		if mode.IsValid() {
			cfg.Guard.ColumnAllowlistMode = mode
		} else {
			warnInvalid(EnvColumnAllowlistMode, v)
		}
	}

	overrideBool(EnvTenantRewriteEnabled, &cfg.Tenant.Enabled)
	overrideBool(EnvTenantRewriteStrictMode, &cfg.Tenant.StrictMode)
	overrideInt(EnvTenantRewriteMaxTargets, &cfg.Tenant.MaxTargets)
	overrideInt(EnvTenantRewriteMaxParams, &cfg.Tenant.MaxParams)
	overrideBool(EnvTenantRewriteAssert, &cfg.Tenant.AssertInvariants)

	// MAX_SQL_AST_NODES bounds every parse in the pipeline: guard and
	// rewriter share the ceiling.
	if v, ok := lookup(EnvMaxSQLASTNodes); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Guard.MaxASTNodes = n
			cfg.Tenant.MaxASTNodes = n
		} else {
			warnInvalid(EnvMaxSQLASTNodes, v)
		}
	}

	overrideBool(EnvPersistenceFailOpen, &cfg.Workflow.PersistenceFailOpen)
	overrideBool(EnvDisallowFederatedOffset, &cfg.Pagination.DisallowFederatedOffset)

	if v, ok := lookup(EnvOTLPEndpoint); ok {
		cfg.Telemetry.Endpoint = v
		cfg.Telemetry.Enabled = true
	}
	if v, ok := lookup(EnvOTLPProtocol); ok && v != "grpc" {
		// Only the gRPC exporter is wired; fall back rather than fail boot.
		slog.Warn("Unsupported OTLP protocol, using grpc", "protocol", v)
	}
	if v, ok := lookup(EnvOTELServiceName); ok {
		cfg.Telemetry.ServiceName = v
	}
}

// applyEnvTargetOverrides lets a deployment repoint the default query target
// without editing YAML.
func applyEnvTargetOverrides(targets map[string]*QueryTargetConfig, defaultName string) {
	target, ok := targets[defaultName]
	if !ok {
		return
	}
	if v, ok := lookup(EnvQueryTargetProvider); ok {
		p := TargetProvider(v)
		if p.IsValid() {
			target.Provider = p
		} else {
			warnInvalid(EnvQueryTargetProvider, v)
		}
	}
	if v, ok := lookup(EnvQueryTargetBackend); ok {
		target.Backend = v
	}
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func overrideBool(name string, dst *bool) {
	v, ok := lookup(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		warnInvalid(name, v)
		return
	}
	*dst = b
}

func overrideInt(name string, dst *int) {
	v, ok := lookup(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		warnInvalid(name, v)
		return
	}
	*dst = n
}

func warnInvalid(name, value string) {
	slog.Warn("Ignoring invalid environment override", "var", name, "value", value)
}
