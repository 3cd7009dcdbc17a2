package setup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/querra-ai/querra/pkg/schemastore"
)

// schemaYAML mirrors schema.yaml. The schemastore types carry JSON tags for
// the wire; this file owns the YAML shape.
type schemaYAML struct {
	Tables []tableYAML `yaml:"tables"`
}

type tableYAML struct {
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description,omitempty"`
	Columns      []columnYAML `yaml:"columns"`
	ForeignKeys  []fkYAML     `yaml:"foreign_keys,omitempty"`
	UniqueKeys   [][]string   `yaml:"unique_keys,omitempty"`
	TenantColumn string       `yaml:"tenant_column,omitempty"`
}

type columnYAML struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	NotNull     bool   `yaml:"not_null,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type fkYAML struct {
	Column    string `yaml:"column"`
	RefTable  string `yaml:"ref_table"`
	RefColumn string `yaml:"ref_column"`
}

// SchemaSnapshot reads schema.yaml from the config directory and builds
// the snapshot the retriever and the keyset planner share. A missing file is
// not an error: the deployment runs without schema retrieval and with the
// legacy tie-breaker allowlist.
func SchemaSnapshot(configDir string) (*schemastore.Snapshot, error) {
	path := filepath.Join(configDir, "schema.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("schema.yaml not found, schema retrieval disabled", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var doc schemaYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	if len(doc.Tables) == 0 {
		slog.Warn("schema.yaml has no tables, schema retrieval disabled", "path", path)
		return nil, nil
	}

	tables := make([]schemastore.TableDef, 0, len(doc.Tables))
	for _, t := range doc.Tables {
		def := schemastore.TableDef{
			Name:         t.Name,
			Description:  t.Description,
			UniqueKeys:   t.UniqueKeys,
			TenantColumn: t.TenantColumn,
		}
		for _, c := range t.Columns {
			def.Columns = append(def.Columns, schemastore.ColumnDef{
				Name:        c.Name,
				Type:        c.Type,
				NotNull:     c.NotNull,
				Description: c.Description,
			})
		}
		for _, fk := range t.ForeignKeys {
			def.ForeignKeys = append(def.ForeignKeys, schemastore.ForeignKey{
				Column:    fk.Column,
				RefTable:  fk.RefTable,
				RefColumn: fk.RefColumn,
			})
		}
		tables = append(tables, def)
	}

	snapshot := schemastore.NewSnapshot(tables)
	slog.Info("Schema snapshot loaded", "path", path, "tables", len(tables), "snapshot_id", snapshot.ID())
	return snapshot, nil
}
