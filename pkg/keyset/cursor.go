package keyset

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

// Cursor is the decoded form of an opaque page token.
type Cursor struct {
	// Values holds the order-key values of the last row of the page.
	Values []any `json:"v"`
	// Keys holds the structural signature of each order key.
	Keys []string `json:"k"`
	// Fingerprint binds the cursor to the schema snapshot, ordering, and
	// backend set it was issued under.
	Fingerprint string `json:"f"`
	// BackendSet is set for federated targets so that membership changes are
	// distinguishable from schema changes.
	BackendSet string `json:"b,omitempty"`
}

// Fingerprint derives the value a cursor is stamped with. backendSetSignature
// is empty for single-backend targets.
func Fingerprint(schemaSnapshotID, backendSetSignature string, keySignatures []string) string {
	h := sha256.New()
	h.Write([]byte(schemaSnapshotID))
	h.Write([]byte{0})
	h.Write([]byte(backendSetSignature))
	for _, sig := range keySignatures {
		h.Write([]byte{0})
		h.Write([]byte(sig))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// BackendSetSignature hashes a backend membership list order-independently.
func BackendSetSignature(backends []string) string {
	if len(backends) == 0 {
		return ""
	}
	sorted := make([]string, len(backends))
	copy(sorted, backends)
	sort.Strings(sorted)
	h := sha256.Sum256([]byte(strings.Join(sorted, "\x00")))
	return hex.EncodeToString(h[:16])
}

// Encode serializes the cursor as base64url JSON. When secret is non-empty an
// HMAC-SHA256 of the canonical payload is appended after a dot.
func Encode(c *Cursor, secret []byte) (string, error) {
	payload := map[string]any{"v": c.Values, "k": c.Keys, "f": c.Fingerprint}
	if c.BackendSet != "" {
		payload["b"] = c.BackendSet
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", newError(CodeOrderMismatch, "cursor payload is not serializable")
	}
	token := base64.RawURLEncoding.EncodeToString(data)
	if len(secret) > 0 {
		mac := hmac.New(sha256.New, secret)
		mac.Write(data)
		token += "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	}
	return token, nil
}

// Decode parses a page token, verifying its signature when a secret is
// configured. Structural checks against the current query happen separately
// in Verify.
func Decode(token string, secret []byte) (*Cursor, error) {
	parts := strings.Split(token, ".")
	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, newError(CodeCursorTampered, "page token is not decodable")
	}
	if len(secret) > 0 {
		if len(parts) != 2 {
			return nil, newError(CodeCursorTampered, "page token is missing its signature")
		}
		sig, err := base64.RawURLEncoding.DecodeString(parts[1])
		if err != nil {
			return nil, newError(CodeCursorTampered, "page token signature is not decodable")
		}
		mac := hmac.New(sha256.New, secret)
		mac.Write(data)
		if !hmac.Equal(sig, mac.Sum(nil)) {
			return nil, newError(CodeCursorTampered, "page token signature does not verify")
		}
	}

	var c Cursor
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&c); err != nil {
		return nil, newError(CodeCursorTampered, "page token payload is malformed")
	}
	c.Values = normalizeValues(c.Values)
	return &c, nil
}

// Verify checks a decoded cursor against the ordering and environment of the
// current request. Backend membership is checked first so that a federated
// topology change reports its own code rather than a generic mismatch.
func (c *Cursor) Verify(keySignatures []string, fingerprint, backendSet string) error {
	if c.BackendSet != "" && backendSet != "" && c.BackendSet != backendSet {
		return newError(CodeBackendSetChanged, "the backend set changed since the page token was issued")
	}
	if len(c.Keys) != len(keySignatures) {
		return newError(CodeOrderMismatch, "the page token was issued for a different ordering")
	}
	for i, sig := range keySignatures {
		if c.Keys[i] != sig {
			return newError(CodeOrderMismatch, "the page token was issued for a different ordering")
		}
	}
	if c.Fingerprint != fingerprint {
		return newError(CodeOrderMismatch, "the page token no longer matches the query environment")
	}
	if len(c.Values) != len(keySignatures) {
		return newError(CodeOrderMismatch, "the page token carries the wrong number of key values")
	}
	return nil
}

// normalizeValues converts json.Number entries into int64 where exact, float64
// otherwise, so decoded values bind cleanly as query parameters.
func normalizeValues(vals []any) []any {
	for i, v := range vals {
		n, ok := v.(json.Number)
		if !ok {
			continue
		}
		if iv, err := n.Int64(); err == nil {
			vals[i] = iv
			continue
		}
		if fv, err := n.Float64(); err == nil {
			vals[i] = fv
		}
	}
	return vals
}
