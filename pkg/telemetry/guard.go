package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"

	"go.opentelemetry.io/otel/attribute"
)

const (
	maxStringLen    = 2048
	maxItems        = 64
	maxDepth        = 8
	maxPayloadBytes = 16384

	redactedPlaceholder = "[REDACTED]"
)

var sensitiveKeyPattern = regexp.MustCompile(
	`(?i)(password|passwd|secret|token|api[_-]?key|authorization|credential|private[_-]?key|ssn|cookie)`)

var sensitiveValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/=-]+`),
	regexp.MustCompile(`(?i)basic\s+[a-zA-Z0-9+/=]+`),
	regexp.MustCompile(`\bsk-[a-zA-Z0-9]{16,}\b`),
}

// GuardAttributes applies redaction and size bounding to a raw attribute map.
// Values whose serialized form exceeds the payload ceiling are replaced by a
// hash reference with a size indicator.
func GuardAttributes(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		guarded, _ := guardValue(k, v, 0)
		out[k] = capPayload(guarded)
	}
	return out
}

// guardValue redacts and bounds one value. The second return reports whether
// anything was truncated.
func guardValue(key string, v any, depth int) (any, bool) {
	if sensitiveKeyPattern.MatchString(key) {
		return redactedPlaceholder, false
	}
	if depth >= maxDepth {
		return "[depth exceeded]", true
	}
	switch val := v.(type) {
	case string:
		return boundString(redactString(val))
	case []byte:
		return boundString(redactString(string(val)))
	case map[string]any:
		truncated := false
		out := make(map[string]any, len(val))
		n := 0
		for k, item := range val {
			if n >= maxItems {
				out["_truncated_keys"] = len(val) - maxItems
				truncated = true
				break
			}
			g, t := guardValue(k, item, depth+1)
			out[k] = g
			truncated = truncated || t
			n++
		}
		return out, truncated
	case []any:
		items := val
		truncated := false
		if len(items) > maxItems {
			items = items[:maxItems]
			truncated = true
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			g, t := guardValue("", item, depth+1)
			out = append(out, g)
			truncated = truncated || t
		}
		if truncated {
			out = append(out, fmt.Sprintf("[%d items truncated]", len(val)-maxItems))
		}
		return out, truncated
	default:
		return v, false
	}
}

func redactString(s string) string {
	for _, p := range sensitiveValuePatterns {
		s = p.ReplaceAllString(s, redactedPlaceholder)
	}
	return s
}

func boundString(s string) (any, bool) {
	if len(s) <= maxStringLen {
		return s, false
	}
	return fmt.Sprintf("%s...[truncated %d bytes]", s[:maxStringLen], len(s)-maxStringLen), true
}

// capPayload replaces values whose serialized size is above the ceiling with
// a hash reference.
func capPayload(v any) any {
	switch v.(type) {
	case map[string]any, []any:
	default:
		return v
	}
	data, err := json.Marshal(v)
	if err != nil || len(data) <= maxPayloadBytes {
		return v
	}
	sum := sha256.Sum256(data)
	return map[string]any{
		"_ref":   "sha256:" + hex.EncodeToString(sum[:8]),
		"_bytes": len(data),
	}
}

// attrKeyValue converts a guarded value into an otel attribute. Composite
// values are carried as JSON strings.
func attrKeyValue(key string, v any) attribute.KeyValue {
	switch val := v.(type) {
	case string:
		return attribute.String(key, val)
	case bool:
		return attribute.Bool(key, val)
	case int:
		return attribute.Int(key, val)
	case int32:
		return attribute.Int64(key, int64(val))
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return attribute.String(key, fmt.Sprintf("%v", val))
		}
		return attribute.String(key, string(data))
	}
}
