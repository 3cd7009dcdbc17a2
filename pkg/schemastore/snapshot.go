package schemastore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/querra-ai/querra/pkg/keyset"
)

// Snapshot is an immutable view of the schema at one point in time. Its ID
// binds cached plans and page cursors to the schema they were built against.
type Snapshot struct {
	id     string
	tables map[string]*TableDef
}

// NewSnapshot builds a snapshot from table definitions. The ID is a content
// hash, so equal schemas produce equal snapshot ids.
func NewSnapshot(tables []TableDef) *Snapshot {
	byName := make(map[string]*TableDef, len(tables))
	names := make([]string, 0, len(tables))
	for i := range tables {
		t := tables[i]
		name := strings.ToLower(t.Name)
		t.Name = name
		byName[name] = &t
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		data, _ := json.Marshal(byName[name])
		h.Write(data)
		h.Write([]byte{0})
	}
	return &Snapshot{
		id:     hex.EncodeToString(h.Sum(nil))[:16],
		tables: byName,
	}
}

// ID returns the content hash identifying this snapshot.
func (s *Snapshot) ID() string { return s.id }

// Tables returns the table names in sorted order.
func (s *Snapshot) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table resolves one table definition.
func (s *Snapshot) Table(name string) (*TableDef, bool) {
	t, ok := s.tables[strings.ToLower(name)]
	return t, ok
}

// TableColumns renders the snapshot in the shape the tenant rewriter
// consumes: lowercase table name to lowercase column list.
func (s *Snapshot) TableColumns() map[string][]string {
	out := make(map[string][]string, len(s.tables))
	for name, t := range s.tables {
		cols := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cols[i] = strings.ToLower(c.Name)
		}
		out[name] = cols
	}
	return out
}

// TieBreakerMeta renders one table in the shape keyset tie-breaker validation
// consumes, nil when the table is unknown.
func (s *Snapshot) TieBreakerMeta(table string) *keyset.TableMeta {
	t, ok := s.tables[strings.ToLower(table)]
	if !ok {
		return nil
	}
	meta := &keyset.TableMeta{
		Columns:    make(map[string]keyset.ColumnMeta, len(t.Columns)),
		UniqueKeys: t.UniqueKeys,
	}
	for _, c := range t.Columns {
		name := strings.ToLower(c.Name)
		meta.Columns[name] = keyset.ColumnMeta{Name: name, NotNull: c.NotNull}
	}
	return meta
}

// MissingIdentifiers returns the referenced tables and table.column pairs the
// snapshot does not know, sorted. Tables absent from the snapshot do not also
// report their columns.
func (s *Snapshot) MissingIdentifiers(columnUsage map[string][]string) []string {
	var missing []string
	for table, columns := range columnUsage {
		lt := strings.ToLower(table)
		def, ok := s.tables[lt]
		if !ok {
			missing = append(missing, lt)
			continue
		}
		known := make(map[string]struct{}, len(def.Columns))
		for _, c := range def.Columns {
			known[strings.ToLower(c.Name)] = struct{}{}
		}
		for _, col := range columns {
			lc := strings.ToLower(col)
			if lc == "*" {
				continue
			}
			if _, ok := known[lc]; !ok {
				missing = append(missing, lt+"."+lc)
			}
		}
	}
	sort.Strings(missing)
	return missing
}
