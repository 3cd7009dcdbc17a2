// Package schemastore provides the read-only schema surface the agent plans
// against: table definitions, semantic node search, snapshot identity, and
// drift detection between generated SQL and the known schema.
package schemastore

import (
	"context"
	"errors"
)

// ErrTableNotFound indicates the requested table is not part of the snapshot.
var ErrTableNotFound = errors.New("table not found in schema snapshot")

// NodeKind labels a searchable schema node
type NodeKind string

const (
	NodeTable  NodeKind = "table"
	NodeColumn NodeKind = "column"
)

// IsValid checks if the node kind is valid
func (k NodeKind) IsValid() bool {
	switch k {
	case NodeTable, NodeColumn:
		return true
	}
	return false
}

// ColumnDef describes one column of a table
type ColumnDef struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	NotNull     bool   `json:"not_null"`
	Description string `json:"description,omitempty"`
}

// ForeignKey describes one outgoing reference
type ForeignKey struct {
	Column    string `json:"column"`
	RefTable  string `json:"ref_table"`
	RefColumn string `json:"ref_column"`
}

// TableDef is the full definition of one table
type TableDef struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Columns     []ColumnDef  `json:"columns"`
	ForeignKeys []ForeignKey `json:"foreign_keys,omitempty"`
	// UniqueKeys lists column sets with a uniqueness guarantee, primary key
	// included.
	UniqueKeys [][]string `json:"unique_keys,omitempty"`
	// TenantColumn overrides the default tenant isolation column for this
	// table; empty means the default applies.
	TenantColumn string `json:"tenant_column,omitempty"`
}

// Node is one searchable schema element
type Node struct {
	Kind        NodeKind `json:"kind"`
	Name        string   `json:"name"`
	Table       string   `json:"table,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SearchResult pairs a node with its relevance score
type SearchResult struct {
	Node  Node    `json:"node"`
	Score float64 `json:"score"`
}

// Embedding is an opaque vector attached to a schema node key
type Embedding struct {
	Key    string    `json:"key"`
	Vector []float32 `json:"vector"`
}

// Retriever is the read-only schema interface consumed by the workflow's
// retrieve node and the execution engine.
type Retriever interface {
	SearchNodes(ctx context.Context, query string, label NodeKind, k int) ([]SearchResult, error)
	GetTableDef(ctx context.Context, name string) (*TableDef, error)
	FetchSchemaEmbeddings(ctx context.Context) ([]Embedding, error)
	Snapshot() *Snapshot
}
