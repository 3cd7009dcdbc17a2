// Package dal implements the query tool surface the execution engine
// dispatches to: the versioned tool response envelope and per-provider
// dispatchers that execute validated SQL with keyset pagination.
package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EnvelopeSchemaVersion is the envelope version this consumer speaks. A major
// version mismatch in a response is fatal.
const EnvelopeSchemaVersion = "1.0"

var (
	// ErrMalformedEnvelope indicates a tool response that is not a valid envelope.
	ErrMalformedEnvelope = errors.New("tool response is not a valid envelope")
	// ErrSchemaVersionMismatch indicates an incompatible envelope major version.
	ErrSchemaVersionMismatch = errors.New("tool response schema version is incompatible")
)

// Error categories carried in envelope errors
const (
	CategoryAuth              = "auth"
	CategoryConnectivity      = "connectivity"
	CategoryTimeout           = "timeout"
	CategoryResourceExhausted = "resource_exhausted"
	CategorySyntax            = "syntax"
	CategoryUnsupported       = "unsupported"
	CategoryTransient         = "transient"
	CategoryUnknown           = "unknown"
	CategoryTenantEnforcement = "tenant_enforcement_unsupported"
)

// ColumnInfo describes one result column
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	DBType   string `json:"db_type,omitempty"`
	Nullable *bool  `json:"nullable,omitempty"`
}

// EnvelopeMetadata carries result shape and capability signals
type EnvelopeMetadata struct {
	RowsReturned         int     `json:"rows_returned"`
	IsTruncated          bool    `json:"is_truncated"`
	RowLimit             int     `json:"row_limit,omitempty"`
	NextPageToken        string  `json:"next_page_token,omitempty"`
	PartialReason        string  `json:"partial_reason,omitempty"`
	CapabilityRequired   string  `json:"capability_required,omitempty"`
	CapabilitySupported  *bool   `json:"capability_supported,omitempty"`
	FallbackPolicy       string  `json:"fallback_policy,omitempty"`
	FallbackApplied      bool    `json:"fallback_applied,omitempty"`
	FallbackMode         string  `json:"fallback_mode,omitempty"`
	CapDetected          bool    `json:"cap_detected,omitempty"`
	CapMitigationApplied bool    `json:"cap_mitigation_applied,omitempty"`
	CapMitigationMode    string  `json:"cap_mitigation_mode,omitempty"`
	Provider             string  `json:"provider,omitempty"`
	ExecutionTimeMs      float64 `json:"execution_time_ms,omitempty"`
}

// ToolError is the structured error member of an envelope
type ToolError struct {
	Message             string  `json:"message"`
	Category            string  `json:"category"`
	Provider            string  `json:"provider"`
	Code                string  `json:"code,omitempty"`
	ErrorCode           string  `json:"error_code,omitempty"`
	RetryAfterSeconds   float64 `json:"retry_after_seconds,omitempty"`
	IsRetryable         bool    `json:"is_retryable"`
	RequiredCapability  string  `json:"required_capability,omitempty"`
	CapabilitySupported *bool   `json:"capability_supported,omitempty"`
	FallbackPolicy      string  `json:"fallback_policy,omitempty"`
	FallbackApplied     bool    `json:"fallback_applied,omitempty"`
	FallbackMode        string  `json:"fallback_mode,omitempty"`
}

// ToolResponseEnvelope is the versioned result contract of execute_sql_query
type ToolResponseEnvelope struct {
	SchemaVersion string           `json:"schema_version"`
	Rows          []map[string]any `json:"rows"`
	Columns       []ColumnInfo     `json:"columns,omitempty"`
	Metadata      EnvelopeMetadata `json:"metadata"`
	Error         *ToolError       `json:"error,omitempty"`
}

// ParseOptions controls envelope parsing.
type ParseOptions struct {
	// LegacyListShim accepts a bare JSON row list and wraps it into an
	// envelope with synthesized metadata.
	LegacyListShim bool
}

// ParseEnvelope decodes a raw tool response. A bare list payload is accepted
// only when the legacy shim is enabled.
func ParseEnvelope(data []byte, opts ParseOptions) (*ToolResponseEnvelope, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedEnvelope)
	}

	if strings.HasPrefix(trimmed, "[") {
		if !opts.LegacyListShim {
			return nil, fmt.Errorf("%w: bare list payload without legacy shim", ErrMalformedEnvelope)
		}
		var rows []map[string]any
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
		}
		return &ToolResponseEnvelope{
			SchemaVersion: EnvelopeSchemaVersion,
			Rows:          rows,
			Metadata: EnvelopeMetadata{
				RowsReturned:  len(rows),
				PartialReason: "legacy_list_shim",
			},
		}, nil
	}

	var env ToolResponseEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
	}
	if env.SchemaVersion == "" {
		return nil, fmt.Errorf("%w: missing schema_version", ErrMalformedEnvelope)
	}
	if majorVersion(env.SchemaVersion) != majorVersion(EnvelopeSchemaVersion) {
		return nil, fmt.Errorf("%w: got %s, consumer speaks %s",
			ErrSchemaVersionMismatch, env.SchemaVersion, EnvelopeSchemaVersion)
	}
	return &env, nil
}

func majorVersion(v string) int {
	head, _, _ := strings.Cut(v, ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return -1
	}
	return n
}

// CompatibleVersion reports whether an envelope version shares this
// consumer's major version.
func CompatibleVersion(v string) bool {
	return majorVersion(v) == majorVersion(EnvelopeSchemaVersion)
}

// errorEnvelope builds a failed envelope in one call.
func errorEnvelope(provider string, toolErr *ToolError) *ToolResponseEnvelope {
	toolErr.Provider = provider
	return &ToolResponseEnvelope{
		SchemaVersion: EnvelopeSchemaVersion,
		Metadata:      EnvelopeMetadata{Provider: provider},
		Error:         toolErr,
	}
}
