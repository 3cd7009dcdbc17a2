package schemastore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() []TableDef {
	return []TableDef{
		{
			Name:        "Orders",
			Description: "customer purchase orders",
			Columns: []ColumnDef{
				{Name: "id", Type: "bigint", NotNull: true},
				{Name: "tenant_id", Type: "bigint", NotNull: true},
				{Name: "total", Type: "numeric", Description: "order total amount"},
				{Name: "placed_at", Type: "timestamptz", NotNull: true},
			},
			UniqueKeys: [][]string{{"id"}},
		},
		{
			Name:        "customers",
			Description: "registered customers",
			Columns: []ColumnDef{
				{Name: "id", Type: "bigint", NotNull: true},
				{Name: "tenant_id", Type: "bigint", NotNull: true},
				{Name: "email", Type: "text", NotNull: true},
			},
			UniqueKeys: [][]string{{"id"}, {"tenant_id", "email"}},
		},
	}
}

func TestSnapshotIDIsContentAddressed(t *testing.T) {
	a := NewSnapshot(testTables())
	b := NewSnapshot(testTables())
	assert.Equal(t, a.ID(), b.ID())

	changed := testTables()
	changed[0].Columns = append(changed[0].Columns, ColumnDef{Name: "status", Type: "text"})
	c := NewSnapshot(changed)
	assert.NotEqual(t, a.ID(), c.ID())
}

func TestSnapshotLookupsAreCaseInsensitive(t *testing.T) {
	s := NewSnapshot(testTables())

	def, ok := s.Table("ORDERS")
	require.True(t, ok)
	assert.Equal(t, "orders", def.Name)

	cols := s.TableColumns()
	assert.ElementsMatch(t, []string{"id", "tenant_id", "total", "placed_at"}, cols["orders"])
	assert.Equal(t, []string{"customers", "orders"}, s.Tables())
}

func TestSnapshotTieBreakerMeta(t *testing.T) {
	s := NewSnapshot(testTables())

	meta := s.TieBreakerMeta("orders")
	require.NotNil(t, meta)
	assert.True(t, meta.Columns["id"].NotNull)
	assert.False(t, meta.Columns["total"].NotNull)
	assert.Equal(t, [][]string{{"id"}}, meta.UniqueKeys)

	assert.Nil(t, s.TieBreakerMeta("unknown"))
}

func TestMissingIdentifiers(t *testing.T) {
	s := NewSnapshot(testTables())

	missing := s.MissingIdentifiers(map[string][]string{
		"orders":    {"id", "shipping_status"},
		"customers": {"*"},
		"payments":  {"amount"},
	})
	assert.Equal(t, []string{"orders.shipping_status", "payments"}, missing)

	assert.Empty(t, s.MissingIdentifiers(map[string][]string{"orders": {"id", "total"}}))
}

func TestDetectDrift(t *testing.T) {
	s := NewSnapshot(testTables())

	hint := DetectDrift(s, map[string][]string{"payments": {"amount"}}, true)
	require.NotNil(t, hint)
	assert.True(t, hint.SchemaDriftSuspected)
	assert.Equal(t, []string{"payments"}, hint.MissingIdentifiers)
	assert.Equal(t, s.ID(), hint.SchemaSnapshotID)
	assert.True(t, hint.AutoRefresh)

	assert.Nil(t, DetectDrift(s, map[string][]string{"orders": {"id"}}, true))
}

func TestStoreLexicalSearch(t *testing.T) {
	store := NewStore(NewSnapshot(testTables()), StoreConfig{})

	results, err := store.SearchNodes(context.Background(), "order total amount", NodeColumn, 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "total", results[0].Node.Name)
	assert.Equal(t, "orders", results[0].Node.Table)

	tables, err := store.SearchNodes(context.Background(), "purchase orders", NodeTable, 2)
	require.NoError(t, err)
	require.NotEmpty(t, tables)
	assert.Equal(t, "orders", tables[0].Node.Name)
}

func TestStoreVectorSearch(t *testing.T) {
	embed := func(ctx context.Context, text string) ([]float32, error) {
		if text == "customer contact" {
			return []float32{1, 0}, nil
		}
		return []float32{0, 1}, nil
	}
	store := NewStore(NewSnapshot(testTables()), StoreConfig{
		Embed: embed,
		Embeddings: []Embedding{
			{Key: "column:customers.email", Vector: []float32{0.9, 0.1}},
			{Key: "column:orders.total", Vector: []float32{0.1, 0.9}},
		},
	})

	results, err := store.SearchNodes(context.Background(), "customer contact", NodeColumn, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "email", results[0].Node.Name)
}

func TestStoreGetTableDef(t *testing.T) {
	store := NewStore(NewSnapshot(testTables()), StoreConfig{})

	def, err := store.GetTableDef(context.Background(), "Customers")
	require.NoError(t, err)
	assert.Equal(t, "customers", def.Name)

	_, err = store.GetTableDef(context.Background(), "payments")
	require.ErrorIs(t, err, ErrTableNotFound)
}

func TestStoreFetchSchemaEmbeddings(t *testing.T) {
	store := NewStore(NewSnapshot(testTables()), StoreConfig{
		Embeddings: []Embedding{
			{Key: "table:orders", Vector: []float32{1}},
			{Key: "column:orders.total", Vector: []float32{2}},
		},
	})

	embeddings, err := store.FetchSchemaEmbeddings(context.Background())
	require.NoError(t, err)
	require.Len(t, embeddings, 2)
	assert.Equal(t, "column:orders.total", embeddings[0].Key)
	assert.Equal(t, "table:orders", embeddings[1].Key)
}
