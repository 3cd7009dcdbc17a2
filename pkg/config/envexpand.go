package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go template
// syntax: {{.VAR_NAME}}. Dollar-sign expansion is deliberately not used so
// that literal $ survives untouched in regex blocklist patterns, passwords
// inside DSNs, and SQL snippets.
//
// Missing variables expand to an empty string; validation catches required
// fields that end up empty. Content that fails to parse or execute as a
// template is returned unchanged so the YAML parser can report the real
// problem.
func ExpandEnv(data []byte) []byte {
	// Fast path: nothing that looks like a template action.
	if !bytes.Contains(data, []byte("{{")) {
		return data
	}

	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, environMap()); err != nil {
		return data
	}
	return buf.Bytes()
}

// environMap snapshots the process environment as a template data map.
func environMap() map[string]string {
	env := os.Environ()
	m := make(map[string]string, len(env))
	for _, kv := range env {
		// Split on the first = only; values may contain = themselves.
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			m[k] = v
		}
	}
	return m
}
