// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/querra-ai/querra/ent/cacheentry"
	"github.com/querra-ai/querra/ent/checkpoint"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/ent/predicate"
	"github.com/querra-ai/querra/ent/querypair"
	"github.com/querra-ai/querra/ent/querysession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCacheEntry   = "CacheEntry"
	TypeCheckpoint   = "Checkpoint"
	TypeInteraction  = "Interaction"
	TypeQueryPair    = "QueryPair"
	TypeQuerySession = "QuerySession"
)

// CacheEntryMutation represents an operation that mutates the CacheEntry nodes in the graph.
type CacheEntryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	tenant_id             *int64
	addtenant_id          *int64
	user_query            *string
	query_embedding       *[]float32
	appendquery_embedding []float32
	generated_sql         *string
	schema_version        *string
	cache_type            *cacheentry.CacheType
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*CacheEntry, error)
	predicates            []predicate.CacheEntry
}

var _ ent.Mutation = (*CacheEntryMutation)(nil)

// cacheentryOption allows management of the mutation configuration using functional options.
type cacheentryOption func(*CacheEntryMutation)

// newCacheEntryMutation creates new mutation for the CacheEntry entity.
func newCacheEntryMutation(c config, op Op, opts ...cacheentryOption) *CacheEntryMutation {
	m := &CacheEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCacheEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCacheEntryID sets the ID field of the mutation.
func withCacheEntryID(id string) cacheentryOption {
	return func(m *CacheEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CacheEntry
		)
		m.oldValue = func(ctx context.Context) (*CacheEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CacheEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCacheEntry sets the old CacheEntry of the mutation.
func withCacheEntry(node *CacheEntry) cacheentryOption {
	return func(m *CacheEntryMutation) {
		m.oldValue = func(context.Context) (*CacheEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CacheEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CacheEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CacheEntry entities.
func (m *CacheEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CacheEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CacheEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CacheEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CacheEntryMutation) SetTenantID(i int64) {
	m.tenant_id = &i
	m.addtenant_id = nil
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CacheEntryMutation) TenantID() (r int64, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldTenantID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// AddTenantID adds i to the "tenant_id" field.
func (m *CacheEntryMutation) AddTenantID(i int64) {
	if m.addtenant_id != nil {
		*m.addtenant_id += i
	} else {
		m.addtenant_id = &i
	}
}

// AddedTenantID returns the value that was added to the "tenant_id" field in this mutation.
func (m *CacheEntryMutation) AddedTenantID() (r int64, exists bool) {
	v := m.addtenant_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CacheEntryMutation) ResetTenantID() {
	m.tenant_id = nil
	m.addtenant_id = nil
}

// SetUserQuery sets the "user_query" field.
func (m *CacheEntryMutation) SetUserQuery(s string) {
	m.user_query = &s
}

// UserQuery returns the value of the "user_query" field in the mutation.
func (m *CacheEntryMutation) UserQuery() (r string, exists bool) {
	v := m.user_query
	if v == nil {
		return
	}
	return *v, true
}

// OldUserQuery returns the old "user_query" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldUserQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserQuery: %w", err)
	}
	return oldValue.UserQuery, nil
}

// ResetUserQuery resets all changes to the "user_query" field.
func (m *CacheEntryMutation) ResetUserQuery() {
	m.user_query = nil
}

// SetQueryEmbedding sets the "query_embedding" field.
func (m *CacheEntryMutation) SetQueryEmbedding(f []float32) {
	m.query_embedding = &f
	m.appendquery_embedding = nil
}

// QueryEmbedding returns the value of the "query_embedding" field in the mutation.
func (m *CacheEntryMutation) QueryEmbedding() (r []float32, exists bool) {
	v := m.query_embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryEmbedding returns the old "query_embedding" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldQueryEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryEmbedding: %w", err)
	}
	return oldValue.QueryEmbedding, nil
}

// AppendQueryEmbedding adds f to the "query_embedding" field.
func (m *CacheEntryMutation) AppendQueryEmbedding(f []float32) {
	m.appendquery_embedding = append(m.appendquery_embedding, f...)
}

// AppendedQueryEmbedding returns the list of values that were appended to the "query_embedding" field in this mutation.
func (m *CacheEntryMutation) AppendedQueryEmbedding() ([]float32, bool) {
	if len(m.appendquery_embedding) == 0 {
		return nil, false
	}
	return m.appendquery_embedding, true
}

// ClearQueryEmbedding clears the value of the "query_embedding" field.
func (m *CacheEntryMutation) ClearQueryEmbedding() {
	m.query_embedding = nil
	m.appendquery_embedding = nil
	m.clearedFields[cacheentry.FieldQueryEmbedding] = struct{}{}
}

// QueryEmbeddingCleared returns if the "query_embedding" field was cleared in this mutation.
func (m *CacheEntryMutation) QueryEmbeddingCleared() bool {
	_, ok := m.clearedFields[cacheentry.FieldQueryEmbedding]
	return ok
}

// ResetQueryEmbedding resets all changes to the "query_embedding" field.
func (m *CacheEntryMutation) ResetQueryEmbedding() {
	m.query_embedding = nil
	m.appendquery_embedding = nil
	delete(m.clearedFields, cacheentry.FieldQueryEmbedding)
}

// SetGeneratedSQL sets the "generated_sql" field.
func (m *CacheEntryMutation) SetGeneratedSQL(s string) {
	m.generated_sql = &s
}

// GeneratedSQL returns the value of the "generated_sql" field in the mutation.
func (m *CacheEntryMutation) GeneratedSQL() (r string, exists bool) {
	v := m.generated_sql
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedSQL returns the old "generated_sql" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldGeneratedSQL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedSQL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedSQL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedSQL: %w", err)
	}
	return oldValue.GeneratedSQL, nil
}

// ResetGeneratedSQL resets all changes to the "generated_sql" field.
func (m *CacheEntryMutation) ResetGeneratedSQL() {
	m.generated_sql = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *CacheEntryMutation) SetSchemaVersion(s string) {
	m.schema_version = &s
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *CacheEntryMutation) SchemaVersion() (r string, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldSchemaVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *CacheEntryMutation) ResetSchemaVersion() {
	m.schema_version = nil
}

// SetCacheType sets the "cache_type" field.
func (m *CacheEntryMutation) SetCacheType(ct cacheentry.CacheType) {
	m.cache_type = &ct
}

// CacheType returns the value of the "cache_type" field in the mutation.
func (m *CacheEntryMutation) CacheType() (r cacheentry.CacheType, exists bool) {
	v := m.cache_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheType returns the old "cache_type" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldCacheType(ctx context.Context) (v cacheentry.CacheType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheType: %w", err)
	}
	return oldValue.CacheType, nil
}

// ResetCacheType resets all changes to the "cache_type" field.
func (m *CacheEntryMutation) ResetCacheType() {
	m.cache_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CacheEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CacheEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CacheEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CacheEntryMutation builder.
func (m *CacheEntryMutation) Where(ps ...predicate.CacheEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CacheEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CacheEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CacheEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CacheEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CacheEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CacheEntry).
func (m *CacheEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CacheEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, cacheentry.FieldTenantID)
	}
	if m.user_query != nil {
		fields = append(fields, cacheentry.FieldUserQuery)
	}
	if m.query_embedding != nil {
		fields = append(fields, cacheentry.FieldQueryEmbedding)
	}
	if m.generated_sql != nil {
		fields = append(fields, cacheentry.FieldGeneratedSQL)
	}
	if m.schema_version != nil {
		fields = append(fields, cacheentry.FieldSchemaVersion)
	}
	if m.cache_type != nil {
		fields = append(fields, cacheentry.FieldCacheType)
	}
	if m.created_at != nil {
		fields = append(fields, cacheentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CacheEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cacheentry.FieldTenantID:
		return m.TenantID()
	case cacheentry.FieldUserQuery:
		return m.UserQuery()
	case cacheentry.FieldQueryEmbedding:
		return m.QueryEmbedding()
	case cacheentry.FieldGeneratedSQL:
		return m.GeneratedSQL()
	case cacheentry.FieldSchemaVersion:
		return m.SchemaVersion()
	case cacheentry.FieldCacheType:
		return m.CacheType()
	case cacheentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CacheEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cacheentry.FieldTenantID:
		return m.OldTenantID(ctx)
	case cacheentry.FieldUserQuery:
		return m.OldUserQuery(ctx)
	case cacheentry.FieldQueryEmbedding:
		return m.OldQueryEmbedding(ctx)
	case cacheentry.FieldGeneratedSQL:
		return m.OldGeneratedSQL(ctx)
	case cacheentry.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case cacheentry.FieldCacheType:
		return m.OldCacheType(ctx)
	case cacheentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CacheEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CacheEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cacheentry.FieldTenantID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case cacheentry.FieldUserQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserQuery(v)
		return nil
	case cacheentry.FieldQueryEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryEmbedding(v)
		return nil
	case cacheentry.FieldGeneratedSQL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedSQL(v)
		return nil
	case cacheentry.FieldSchemaVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case cacheentry.FieldCacheType:
		v, ok := value.(cacheentry.CacheType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheType(v)
		return nil
	case cacheentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CacheEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CacheEntryMutation) AddedFields() []string {
	var fields []string
	if m.addtenant_id != nil {
		fields = append(fields, cacheentry.FieldTenantID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CacheEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cacheentry.FieldTenantID:
		return m.AddedTenantID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CacheEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cacheentry.FieldTenantID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTenantID(v)
		return nil
	}
	return fmt.Errorf("unknown CacheEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CacheEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cacheentry.FieldQueryEmbedding) {
		fields = append(fields, cacheentry.FieldQueryEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CacheEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CacheEntryMutation) ClearField(name string) error {
	switch name {
	case cacheentry.FieldQueryEmbedding:
		m.ClearQueryEmbedding()
		return nil
	}
	return fmt.Errorf("unknown CacheEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CacheEntryMutation) ResetField(name string) error {
	switch name {
	case cacheentry.FieldTenantID:
		m.ResetTenantID()
		return nil
	case cacheentry.FieldUserQuery:
		m.ResetUserQuery()
		return nil
	case cacheentry.FieldQueryEmbedding:
		m.ResetQueryEmbedding()
		return nil
	case cacheentry.FieldGeneratedSQL:
		m.ResetGeneratedSQL()
		return nil
	case cacheentry.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case cacheentry.FieldCacheType:
		m.ResetCacheType()
		return nil
	case cacheentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CacheEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CacheEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CacheEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CacheEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CacheEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CacheEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CacheEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CacheEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CacheEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CacheEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CacheEntry edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op            Op
	typ           string
	id            *int
	thread_id     *string
	state         *json.RawMessage
	appendstate   json.RawMessage
	node          *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Checkpoint, error)
	predicates    []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id int) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *CheckpointMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *CheckpointMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *CheckpointMutation) ResetThreadID() {
	m.thread_id = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(jm json.RawMessage) {
	m.state = &jm
	m.appendstate = nil
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r json.RawMessage, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// AppendState adds jm to the "state" field.
func (m *CheckpointMutation) AppendState(jm json.RawMessage) {
	m.appendstate = append(m.appendstate, jm...)
}

// AppendedState returns the list of values that were appended to the "state" field in this mutation.
func (m *CheckpointMutation) AppendedState() (json.RawMessage, bool) {
	if len(m.appendstate) == 0 {
		return nil, false
	}
	return m.appendstate, true
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
	m.appendstate = nil
}

// SetNode sets the "node" field.
func (m *CheckpointMutation) SetNode(s string) {
	m.node = &s
}

// Node returns the value of the "node" field in the mutation.
func (m *CheckpointMutation) Node() (r string, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNode returns the old "node" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNode: %w", err)
	}
	return oldValue.Node, nil
}

// ResetNode resets all changes to the "node" field.
func (m *CheckpointMutation) ResetNode() {
	m.node = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.thread_id != nil {
		fields = append(fields, checkpoint.FieldThreadID)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.node != nil {
		fields = append(fields, checkpoint.FieldNode)
	}
	if m.updated_at != nil {
		fields = append(fields, checkpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldThreadID:
		return m.ThreadID()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldNode:
		return m.Node()
	case checkpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldThreadID:
		return m.OldThreadID(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldNode:
		return m.OldNode(ctx)
	case checkpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNode(v)
		return nil
	case checkpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldThreadID:
		m.ResetThreadID()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldNode:
		m.ResetNode()
		return nil
	case checkpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// InteractionMutation represents an operation that mutates the Interaction nodes in the graph.
type InteractionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	trace_id          *string
	tenant_id         *int64
	addtenant_id      *int64
	question          *string
	generated_sql     *string
	response_payload  *map[string]interface{}
	execution_status  *interaction.ExecutionStatus
	error_type        *string
	tables_used       *[]string
	appendtables_used []string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	session           *string
	clearedsession    bool
	done              bool
	oldValue          func(context.Context) (*Interaction, error)
	predicates        []predicate.Interaction
}

var _ ent.Mutation = (*InteractionMutation)(nil)

// interactionOption allows management of the mutation configuration using functional options.
type interactionOption func(*InteractionMutation)

// newInteractionMutation creates new mutation for the Interaction entity.
func newInteractionMutation(c config, op Op, opts ...interactionOption) *InteractionMutation {
	m := &InteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionID sets the ID field of the mutation.
func withInteractionID(id string) interactionOption {
	return func(m *InteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Interaction
		)
		m.oldValue = func(ctx context.Context) (*Interaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Interaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteraction sets the old Interaction of the mutation.
func withInteraction(node *Interaction) interactionOption {
	return func(m *InteractionMutation) {
		m.oldValue = func(context.Context) (*Interaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Interaction entities.
func (m *InteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Interaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *InteractionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InteractionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *InteractionMutation) ClearSessionID() {
	m.session = nil
	m.clearedFields[interaction.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *InteractionMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[interaction.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InteractionMutation) ResetSessionID() {
	m.session = nil
	delete(m.clearedFields, interaction.FieldSessionID)
}

// SetTraceID sets the "trace_id" field.
func (m *InteractionMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *InteractionMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *InteractionMutation) ResetTraceID() {
	m.trace_id = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *InteractionMutation) SetTenantID(i int64) {
	m.tenant_id = &i
	m.addtenant_id = nil
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *InteractionMutation) TenantID() (r int64, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldTenantID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// AddTenantID adds i to the "tenant_id" field.
func (m *InteractionMutation) AddTenantID(i int64) {
	if m.addtenant_id != nil {
		*m.addtenant_id += i
	} else {
		m.addtenant_id = &i
	}
}

// AddedTenantID returns the value that was added to the "tenant_id" field in this mutation.
func (m *InteractionMutation) AddedTenantID() (r int64, exists bool) {
	v := m.addtenant_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *InteractionMutation) ResetTenantID() {
	m.tenant_id = nil
	m.addtenant_id = nil
}

// SetQuestion sets the "question" field.
func (m *InteractionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *InteractionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *InteractionMutation) ResetQuestion() {
	m.question = nil
}

// SetGeneratedSQL sets the "generated_sql" field.
func (m *InteractionMutation) SetGeneratedSQL(s string) {
	m.generated_sql = &s
}

// GeneratedSQL returns the value of the "generated_sql" field in the mutation.
func (m *InteractionMutation) GeneratedSQL() (r string, exists bool) {
	v := m.generated_sql
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedSQL returns the old "generated_sql" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldGeneratedSQL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedSQL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedSQL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedSQL: %w", err)
	}
	return oldValue.GeneratedSQL, nil
}

// ClearGeneratedSQL clears the value of the "generated_sql" field.
func (m *InteractionMutation) ClearGeneratedSQL() {
	m.generated_sql = nil
	m.clearedFields[interaction.FieldGeneratedSQL] = struct{}{}
}

// GeneratedSQLCleared returns if the "generated_sql" field was cleared in this mutation.
func (m *InteractionMutation) GeneratedSQLCleared() bool {
	_, ok := m.clearedFields[interaction.FieldGeneratedSQL]
	return ok
}

// ResetGeneratedSQL resets all changes to the "generated_sql" field.
func (m *InteractionMutation) ResetGeneratedSQL() {
	m.generated_sql = nil
	delete(m.clearedFields, interaction.FieldGeneratedSQL)
}

// SetResponsePayload sets the "response_payload" field.
func (m *InteractionMutation) SetResponsePayload(value map[string]interface{}) {
	m.response_payload = &value
}

// ResponsePayload returns the value of the "response_payload" field in the mutation.
func (m *InteractionMutation) ResponsePayload() (r map[string]interface{}, exists bool) {
	v := m.response_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldResponsePayload returns the old "response_payload" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldResponsePayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponsePayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponsePayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponsePayload: %w", err)
	}
	return oldValue.ResponsePayload, nil
}

// ClearResponsePayload clears the value of the "response_payload" field.
func (m *InteractionMutation) ClearResponsePayload() {
	m.response_payload = nil
	m.clearedFields[interaction.FieldResponsePayload] = struct{}{}
}

// ResponsePayloadCleared returns if the "response_payload" field was cleared in this mutation.
func (m *InteractionMutation) ResponsePayloadCleared() bool {
	_, ok := m.clearedFields[interaction.FieldResponsePayload]
	return ok
}

// ResetResponsePayload resets all changes to the "response_payload" field.
func (m *InteractionMutation) ResetResponsePayload() {
	m.response_payload = nil
	delete(m.clearedFields, interaction.FieldResponsePayload)
}

// SetExecutionStatus sets the "execution_status" field.
func (m *InteractionMutation) SetExecutionStatus(is interaction.ExecutionStatus) {
	m.execution_status = &is
}

// ExecutionStatus returns the value of the "execution_status" field in the mutation.
func (m *InteractionMutation) ExecutionStatus() (r interaction.ExecutionStatus, exists bool) {
	v := m.execution_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionStatus returns the old "execution_status" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldExecutionStatus(ctx context.Context) (v interaction.ExecutionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionStatus: %w", err)
	}
	return oldValue.ExecutionStatus, nil
}

// ResetExecutionStatus resets all changes to the "execution_status" field.
func (m *InteractionMutation) ResetExecutionStatus() {
	m.execution_status = nil
}

// SetErrorType sets the "error_type" field.
func (m *InteractionMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *InteractionMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *InteractionMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[interaction.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *InteractionMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[interaction.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *InteractionMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, interaction.FieldErrorType)
}

// SetTablesUsed sets the "tables_used" field.
func (m *InteractionMutation) SetTablesUsed(s []string) {
	m.tables_used = &s
	m.appendtables_used = nil
}

// TablesUsed returns the value of the "tables_used" field in the mutation.
func (m *InteractionMutation) TablesUsed() (r []string, exists bool) {
	v := m.tables_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTablesUsed returns the old "tables_used" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldTablesUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTablesUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTablesUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTablesUsed: %w", err)
	}
	return oldValue.TablesUsed, nil
}

// AppendTablesUsed adds s to the "tables_used" field.
func (m *InteractionMutation) AppendTablesUsed(s []string) {
	m.appendtables_used = append(m.appendtables_used, s...)
}

// AppendedTablesUsed returns the list of values that were appended to the "tables_used" field in this mutation.
func (m *InteractionMutation) AppendedTablesUsed() ([]string, bool) {
	if len(m.appendtables_used) == 0 {
		return nil, false
	}
	return m.appendtables_used, true
}

// ClearTablesUsed clears the value of the "tables_used" field.
func (m *InteractionMutation) ClearTablesUsed() {
	m.tables_used = nil
	m.appendtables_used = nil
	m.clearedFields[interaction.FieldTablesUsed] = struct{}{}
}

// TablesUsedCleared returns if the "tables_used" field was cleared in this mutation.
func (m *InteractionMutation) TablesUsedCleared() bool {
	_, ok := m.clearedFields[interaction.FieldTablesUsed]
	return ok
}

// ResetTablesUsed resets all changes to the "tables_used" field.
func (m *InteractionMutation) ResetTablesUsed() {
	m.tables_used = nil
	m.appendtables_used = nil
	delete(m.clearedFields, interaction.FieldTablesUsed)
}

// SetCreatedAt sets the "created_at" field.
func (m *InteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InteractionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InteractionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InteractionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the QuerySession entity.
func (m *InteractionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[interaction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the QuerySession entity was cleared.
func (m *InteractionMutation) SessionCleared() bool {
	return m.SessionIDCleared() || m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *InteractionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *InteractionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the InteractionMutation builder.
func (m *InteractionMutation) Where(ps ...predicate.Interaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Interaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Interaction).
func (m *InteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session != nil {
		fields = append(fields, interaction.FieldSessionID)
	}
	if m.trace_id != nil {
		fields = append(fields, interaction.FieldTraceID)
	}
	if m.tenant_id != nil {
		fields = append(fields, interaction.FieldTenantID)
	}
	if m.question != nil {
		fields = append(fields, interaction.FieldQuestion)
	}
	if m.generated_sql != nil {
		fields = append(fields, interaction.FieldGeneratedSQL)
	}
	if m.response_payload != nil {
		fields = append(fields, interaction.FieldResponsePayload)
	}
	if m.execution_status != nil {
		fields = append(fields, interaction.FieldExecutionStatus)
	}
	if m.error_type != nil {
		fields = append(fields, interaction.FieldErrorType)
	}
	if m.tables_used != nil {
		fields = append(fields, interaction.FieldTablesUsed)
	}
	if m.created_at != nil {
		fields = append(fields, interaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, interaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldSessionID:
		return m.SessionID()
	case interaction.FieldTraceID:
		return m.TraceID()
	case interaction.FieldTenantID:
		return m.TenantID()
	case interaction.FieldQuestion:
		return m.Question()
	case interaction.FieldGeneratedSQL:
		return m.GeneratedSQL()
	case interaction.FieldResponsePayload:
		return m.ResponsePayload()
	case interaction.FieldExecutionStatus:
		return m.ExecutionStatus()
	case interaction.FieldErrorType:
		return m.ErrorType()
	case interaction.FieldTablesUsed:
		return m.TablesUsed()
	case interaction.FieldCreatedAt:
		return m.CreatedAt()
	case interaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interaction.FieldSessionID:
		return m.OldSessionID(ctx)
	case interaction.FieldTraceID:
		return m.OldTraceID(ctx)
	case interaction.FieldTenantID:
		return m.OldTenantID(ctx)
	case interaction.FieldQuestion:
		return m.OldQuestion(ctx)
	case interaction.FieldGeneratedSQL:
		return m.OldGeneratedSQL(ctx)
	case interaction.FieldResponsePayload:
		return m.OldResponsePayload(ctx)
	case interaction.FieldExecutionStatus:
		return m.OldExecutionStatus(ctx)
	case interaction.FieldErrorType:
		return m.OldErrorType(ctx)
	case interaction.FieldTablesUsed:
		return m.OldTablesUsed(ctx)
	case interaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case interaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Interaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case interaction.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case interaction.FieldTenantID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case interaction.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case interaction.FieldGeneratedSQL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedSQL(v)
		return nil
	case interaction.FieldResponsePayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponsePayload(v)
		return nil
	case interaction.FieldExecutionStatus:
		v, ok := value.(interaction.ExecutionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionStatus(v)
		return nil
	case interaction.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case interaction.FieldTablesUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTablesUsed(v)
		return nil
	case interaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case interaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionMutation) AddedFields() []string {
	var fields []string
	if m.addtenant_id != nil {
		fields = append(fields, interaction.FieldTenantID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldTenantID:
		return m.AddedTenantID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldTenantID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTenantID(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interaction.FieldSessionID) {
		fields = append(fields, interaction.FieldSessionID)
	}
	if m.FieldCleared(interaction.FieldGeneratedSQL) {
		fields = append(fields, interaction.FieldGeneratedSQL)
	}
	if m.FieldCleared(interaction.FieldResponsePayload) {
		fields = append(fields, interaction.FieldResponsePayload)
	}
	if m.FieldCleared(interaction.FieldErrorType) {
		fields = append(fields, interaction.FieldErrorType)
	}
	if m.FieldCleared(interaction.FieldTablesUsed) {
		fields = append(fields, interaction.FieldTablesUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionMutation) ClearField(name string) error {
	switch name {
	case interaction.FieldSessionID:
		m.ClearSessionID()
		return nil
	case interaction.FieldGeneratedSQL:
		m.ClearGeneratedSQL()
		return nil
	case interaction.FieldResponsePayload:
		m.ClearResponsePayload()
		return nil
	case interaction.FieldErrorType:
		m.ClearErrorType()
		return nil
	case interaction.FieldTablesUsed:
		m.ClearTablesUsed()
		return nil
	}
	return fmt.Errorf("unknown Interaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionMutation) ResetField(name string) error {
	switch name {
	case interaction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case interaction.FieldTraceID:
		m.ResetTraceID()
		return nil
	case interaction.FieldTenantID:
		m.ResetTenantID()
		return nil
	case interaction.FieldQuestion:
		m.ResetQuestion()
		return nil
	case interaction.FieldGeneratedSQL:
		m.ResetGeneratedSQL()
		return nil
	case interaction.FieldResponsePayload:
		m.ResetResponsePayload()
		return nil
	case interaction.FieldExecutionStatus:
		m.ResetExecutionStatus()
		return nil
	case interaction.FieldErrorType:
		m.ResetErrorType()
		return nil
	case interaction.FieldTablesUsed:
		m.ResetTablesUsed()
		return nil
	case interaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case interaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, interaction.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interaction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, interaction.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case interaction.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionMutation) ClearEdge(name string) error {
	switch name {
	case interaction.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Interaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionMutation) ResetEdge(name string) error {
	switch name {
	case interaction.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Interaction edge %s", name)
}

// QueryPairMutation represents an operation that mutates the QueryPair nodes in the graph.
type QueryPairMutation struct {
	config
	op              Op
	typ             string
	id              *string
	signature_key   *string
	tenant_id       *int64
	addtenant_id    *int64
	question        *string
	sql_query       *string
	embedding       *[]float32
	appendembedding []float32
	roles           *[]string
	appendroles     []string
	status          *querypair.Status
	metadata        *map[string]interface{}
	performance     *map[string]interface{}
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*QueryPair, error)
	predicates      []predicate.QueryPair
}

var _ ent.Mutation = (*QueryPairMutation)(nil)

// querypairOption allows management of the mutation configuration using functional options.
type querypairOption func(*QueryPairMutation)

// newQueryPairMutation creates new mutation for the QueryPair entity.
func newQueryPairMutation(c config, op Op, opts ...querypairOption) *QueryPairMutation {
	m := &QueryPairMutation{
		config:        c,
		op:            op,
		typ:           TypeQueryPair,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueryPairID sets the ID field of the mutation.
func withQueryPairID(id string) querypairOption {
	return func(m *QueryPairMutation) {
		var (
			err   error
			once  sync.Once
			value *QueryPair
		)
		m.oldValue = func(ctx context.Context) (*QueryPair, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueryPair.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueryPair sets the old QueryPair of the mutation.
func withQueryPair(node *QueryPair) querypairOption {
	return func(m *QueryPairMutation) {
		m.oldValue = func(context.Context) (*QueryPair, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueryPairMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueryPairMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueryPair entities.
func (m *QueryPairMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueryPairMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueryPairMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueryPair.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSignatureKey sets the "signature_key" field.
func (m *QueryPairMutation) SetSignatureKey(s string) {
	m.signature_key = &s
}

// SignatureKey returns the value of the "signature_key" field in the mutation.
func (m *QueryPairMutation) SignatureKey() (r string, exists bool) {
	v := m.signature_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureKey returns the old "signature_key" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldSignatureKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureKey: %w", err)
	}
	return oldValue.SignatureKey, nil
}

// ResetSignatureKey resets all changes to the "signature_key" field.
func (m *QueryPairMutation) ResetSignatureKey() {
	m.signature_key = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *QueryPairMutation) SetTenantID(i int64) {
	m.tenant_id = &i
	m.addtenant_id = nil
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *QueryPairMutation) TenantID() (r int64, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldTenantID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// AddTenantID adds i to the "tenant_id" field.
func (m *QueryPairMutation) AddTenantID(i int64) {
	if m.addtenant_id != nil {
		*m.addtenant_id += i
	} else {
		m.addtenant_id = &i
	}
}

// AddedTenantID returns the value that was added to the "tenant_id" field in this mutation.
func (m *QueryPairMutation) AddedTenantID() (r int64, exists bool) {
	v := m.addtenant_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *QueryPairMutation) ResetTenantID() {
	m.tenant_id = nil
	m.addtenant_id = nil
}

// SetQuestion sets the "question" field.
func (m *QueryPairMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *QueryPairMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *QueryPairMutation) ResetQuestion() {
	m.question = nil
}

// SetSQLQuery sets the "sql_query" field.
func (m *QueryPairMutation) SetSQLQuery(s string) {
	m.sql_query = &s
}

// SQLQuery returns the value of the "sql_query" field in the mutation.
func (m *QueryPairMutation) SQLQuery() (r string, exists bool) {
	v := m.sql_query
	if v == nil {
		return
	}
	return *v, true
}

// OldSQLQuery returns the old "sql_query" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldSQLQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSQLQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSQLQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSQLQuery: %w", err)
	}
	return oldValue.SQLQuery, nil
}

// ResetSQLQuery resets all changes to the "sql_query" field.
func (m *QueryPairMutation) ResetSQLQuery() {
	m.sql_query = nil
}

// SetEmbedding sets the "embedding" field.
func (m *QueryPairMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *QueryPairMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *QueryPairMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *QueryPairMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *QueryPairMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[querypair.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *QueryPairMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[querypair.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *QueryPairMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, querypair.FieldEmbedding)
}

// SetRoles sets the "roles" field.
func (m *QueryPairMutation) SetRoles(s []string) {
	m.roles = &s
	m.appendroles = nil
}

// Roles returns the value of the "roles" field in the mutation.
func (m *QueryPairMutation) Roles() (r []string, exists bool) {
	v := m.roles
	if v == nil {
		return
	}
	return *v, true
}

// OldRoles returns the old "roles" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldRoles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoles: %w", err)
	}
	return oldValue.Roles, nil
}

// AppendRoles adds s to the "roles" field.
func (m *QueryPairMutation) AppendRoles(s []string) {
	m.appendroles = append(m.appendroles, s...)
}

// AppendedRoles returns the list of values that were appended to the "roles" field in this mutation.
func (m *QueryPairMutation) AppendedRoles() ([]string, bool) {
	if len(m.appendroles) == 0 {
		return nil, false
	}
	return m.appendroles, true
}

// ResetRoles resets all changes to the "roles" field.
func (m *QueryPairMutation) ResetRoles() {
	m.roles = nil
	m.appendroles = nil
}

// SetStatus sets the "status" field.
func (m *QueryPairMutation) SetStatus(q querypair.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueryPairMutation) Status() (r querypair.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldStatus(ctx context.Context) (v querypair.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueryPairMutation) ResetStatus() {
	m.status = nil
}

// SetMetadata sets the "metadata" field.
func (m *QueryPairMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *QueryPairMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *QueryPairMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[querypair.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *QueryPairMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[querypair.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *QueryPairMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, querypair.FieldMetadata)
}

// SetPerformance sets the "performance" field.
func (m *QueryPairMutation) SetPerformance(value map[string]interface{}) {
	m.performance = &value
}

// Performance returns the value of the "performance" field in the mutation.
func (m *QueryPairMutation) Performance() (r map[string]interface{}, exists bool) {
	v := m.performance
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformance returns the old "performance" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldPerformance(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformance: %w", err)
	}
	return oldValue.Performance, nil
}

// ClearPerformance clears the value of the "performance" field.
func (m *QueryPairMutation) ClearPerformance() {
	m.performance = nil
	m.clearedFields[querypair.FieldPerformance] = struct{}{}
}

// PerformanceCleared returns if the "performance" field was cleared in this mutation.
func (m *QueryPairMutation) PerformanceCleared() bool {
	_, ok := m.clearedFields[querypair.FieldPerformance]
	return ok
}

// ResetPerformance resets all changes to the "performance" field.
func (m *QueryPairMutation) ResetPerformance() {
	m.performance = nil
	delete(m.clearedFields, querypair.FieldPerformance)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueryPairMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueryPairMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueryPairMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueryPairMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueryPairMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueryPair entity.
// If the QueryPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryPairMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueryPairMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QueryPairMutation builder.
func (m *QueryPairMutation) Where(ps ...predicate.QueryPair) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueryPairMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueryPairMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueryPair, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueryPairMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueryPairMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueryPair).
func (m *QueryPairMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueryPairMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.signature_key != nil {
		fields = append(fields, querypair.FieldSignatureKey)
	}
	if m.tenant_id != nil {
		fields = append(fields, querypair.FieldTenantID)
	}
	if m.question != nil {
		fields = append(fields, querypair.FieldQuestion)
	}
	if m.sql_query != nil {
		fields = append(fields, querypair.FieldSQLQuery)
	}
	if m.embedding != nil {
		fields = append(fields, querypair.FieldEmbedding)
	}
	if m.roles != nil {
		fields = append(fields, querypair.FieldRoles)
	}
	if m.status != nil {
		fields = append(fields, querypair.FieldStatus)
	}
	if m.metadata != nil {
		fields = append(fields, querypair.FieldMetadata)
	}
	if m.performance != nil {
		fields = append(fields, querypair.FieldPerformance)
	}
	if m.created_at != nil {
		fields = append(fields, querypair.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, querypair.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueryPairMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case querypair.FieldSignatureKey:
		return m.SignatureKey()
	case querypair.FieldTenantID:
		return m.TenantID()
	case querypair.FieldQuestion:
		return m.Question()
	case querypair.FieldSQLQuery:
		return m.SQLQuery()
	case querypair.FieldEmbedding:
		return m.Embedding()
	case querypair.FieldRoles:
		return m.Roles()
	case querypair.FieldStatus:
		return m.Status()
	case querypair.FieldMetadata:
		return m.Metadata()
	case querypair.FieldPerformance:
		return m.Performance()
	case querypair.FieldCreatedAt:
		return m.CreatedAt()
	case querypair.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueryPairMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case querypair.FieldSignatureKey:
		return m.OldSignatureKey(ctx)
	case querypair.FieldTenantID:
		return m.OldTenantID(ctx)
	case querypair.FieldQuestion:
		return m.OldQuestion(ctx)
	case querypair.FieldSQLQuery:
		return m.OldSQLQuery(ctx)
	case querypair.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case querypair.FieldRoles:
		return m.OldRoles(ctx)
	case querypair.FieldStatus:
		return m.OldStatus(ctx)
	case querypair.FieldMetadata:
		return m.OldMetadata(ctx)
	case querypair.FieldPerformance:
		return m.OldPerformance(ctx)
	case querypair.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case querypair.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueryPair field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryPairMutation) SetField(name string, value ent.Value) error {
	switch name {
	case querypair.FieldSignatureKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureKey(v)
		return nil
	case querypair.FieldTenantID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case querypair.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case querypair.FieldSQLQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSQLQuery(v)
		return nil
	case querypair.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case querypair.FieldRoles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoles(v)
		return nil
	case querypair.FieldStatus:
		v, ok := value.(querypair.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case querypair.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case querypair.FieldPerformance:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformance(v)
		return nil
	case querypair.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case querypair.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueryPair field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueryPairMutation) AddedFields() []string {
	var fields []string
	if m.addtenant_id != nil {
		fields = append(fields, querypair.FieldTenantID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueryPairMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case querypair.FieldTenantID:
		return m.AddedTenantID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryPairMutation) AddField(name string, value ent.Value) error {
	switch name {
	case querypair.FieldTenantID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTenantID(v)
		return nil
	}
	return fmt.Errorf("unknown QueryPair numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueryPairMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(querypair.FieldEmbedding) {
		fields = append(fields, querypair.FieldEmbedding)
	}
	if m.FieldCleared(querypair.FieldMetadata) {
		fields = append(fields, querypair.FieldMetadata)
	}
	if m.FieldCleared(querypair.FieldPerformance) {
		fields = append(fields, querypair.FieldPerformance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueryPairMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueryPairMutation) ClearField(name string) error {
	switch name {
	case querypair.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case querypair.FieldMetadata:
		m.ClearMetadata()
		return nil
	case querypair.FieldPerformance:
		m.ClearPerformance()
		return nil
	}
	return fmt.Errorf("unknown QueryPair nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueryPairMutation) ResetField(name string) error {
	switch name {
	case querypair.FieldSignatureKey:
		m.ResetSignatureKey()
		return nil
	case querypair.FieldTenantID:
		m.ResetTenantID()
		return nil
	case querypair.FieldQuestion:
		m.ResetQuestion()
		return nil
	case querypair.FieldSQLQuery:
		m.ResetSQLQuery()
		return nil
	case querypair.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case querypair.FieldRoles:
		m.ResetRoles()
		return nil
	case querypair.FieldStatus:
		m.ResetStatus()
		return nil
	case querypair.FieldMetadata:
		m.ResetMetadata()
		return nil
	case querypair.FieldPerformance:
		m.ResetPerformance()
		return nil
	case querypair.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case querypair.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueryPair field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueryPairMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueryPairMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueryPairMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueryPairMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueryPairMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueryPairMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueryPairMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueryPair unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueryPairMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueryPair edge %s", name)
}

// QuerySessionMutation represents an operation that mutates the QuerySession nodes in the graph.
type QuerySessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tenant_id              *int64
	addtenant_id           *int64
	question               *string
	status                 *querysession.Status
	final_sql              *string
	result_payload         *map[string]interface{}
	final_answer           *string
	error_message          *string
	error_code             *string
	clarification_question *string
	clarification_answer   *string
	pod_id                 *string
	requeue_count          *int
	addrequeue_count       *int
	trace_id               *string
	schema_snapshot_id     *string
	page_size              *int
	addpage_size           *int
	page_token             *string
	seed                   *int64
	addseed                *int64
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	last_interaction_at    *time.Time
	deleted_at             *time.Time
	clearedFields          map[string]struct{}
	interactions           map[string]struct{}
	removedinteractions    map[string]struct{}
	clearedinteractions    bool
	done                   bool
	oldValue               func(context.Context) (*QuerySession, error)
	predicates             []predicate.QuerySession
}

var _ ent.Mutation = (*QuerySessionMutation)(nil)

// querysessionOption allows management of the mutation configuration using functional options.
type querysessionOption func(*QuerySessionMutation)

// newQuerySessionMutation creates new mutation for the QuerySession entity.
func newQuerySessionMutation(c config, op Op, opts ...querysessionOption) *QuerySessionMutation {
	m := &QuerySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuerySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuerySessionID sets the ID field of the mutation.
func withQuerySessionID(id string) querysessionOption {
	return func(m *QuerySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *QuerySession
		)
		m.oldValue = func(ctx context.Context) (*QuerySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuerySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuerySession sets the old QuerySession of the mutation.
func withQuerySession(node *QuerySession) querysessionOption {
	return func(m *QuerySessionMutation) {
		m.oldValue = func(context.Context) (*QuerySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuerySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuerySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuerySession entities.
func (m *QuerySessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuerySessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuerySessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuerySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *QuerySessionMutation) SetTenantID(i int64) {
	m.tenant_id = &i
	m.addtenant_id = nil
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *QuerySessionMutation) TenantID() (r int64, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldTenantID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// AddTenantID adds i to the "tenant_id" field.
func (m *QuerySessionMutation) AddTenantID(i int64) {
	if m.addtenant_id != nil {
		*m.addtenant_id += i
	} else {
		m.addtenant_id = &i
	}
}

// AddedTenantID returns the value that was added to the "tenant_id" field in this mutation.
func (m *QuerySessionMutation) AddedTenantID() (r int64, exists bool) {
	v := m.addtenant_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *QuerySessionMutation) ResetTenantID() {
	m.tenant_id = nil
	m.addtenant_id = nil
}

// SetQuestion sets the "question" field.
func (m *QuerySessionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *QuerySessionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *QuerySessionMutation) ResetQuestion() {
	m.question = nil
}

// SetStatus sets the "status" field.
func (m *QuerySessionMutation) SetStatus(q querysession.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QuerySessionMutation) Status() (r querysession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldStatus(ctx context.Context) (v querysession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QuerySessionMutation) ResetStatus() {
	m.status = nil
}

// SetFinalSQL sets the "final_sql" field.
func (m *QuerySessionMutation) SetFinalSQL(s string) {
	m.final_sql = &s
}

// FinalSQL returns the value of the "final_sql" field in the mutation.
func (m *QuerySessionMutation) FinalSQL() (r string, exists bool) {
	v := m.final_sql
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalSQL returns the old "final_sql" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldFinalSQL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalSQL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalSQL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalSQL: %w", err)
	}
	return oldValue.FinalSQL, nil
}

// ClearFinalSQL clears the value of the "final_sql" field.
func (m *QuerySessionMutation) ClearFinalSQL() {
	m.final_sql = nil
	m.clearedFields[querysession.FieldFinalSQL] = struct{}{}
}

// FinalSQLCleared returns if the "final_sql" field was cleared in this mutation.
func (m *QuerySessionMutation) FinalSQLCleared() bool {
	_, ok := m.clearedFields[querysession.FieldFinalSQL]
	return ok
}

// ResetFinalSQL resets all changes to the "final_sql" field.
func (m *QuerySessionMutation) ResetFinalSQL() {
	m.final_sql = nil
	delete(m.clearedFields, querysession.FieldFinalSQL)
}

// SetResultPayload sets the "result_payload" field.
func (m *QuerySessionMutation) SetResultPayload(value map[string]interface{}) {
	m.result_payload = &value
}

// ResultPayload returns the value of the "result_payload" field in the mutation.
func (m *QuerySessionMutation) ResultPayload() (r map[string]interface{}, exists bool) {
	v := m.result_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldResultPayload returns the old "result_payload" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldResultPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultPayload: %w", err)
	}
	return oldValue.ResultPayload, nil
}

// ClearResultPayload clears the value of the "result_payload" field.
func (m *QuerySessionMutation) ClearResultPayload() {
	m.result_payload = nil
	m.clearedFields[querysession.FieldResultPayload] = struct{}{}
}

// ResultPayloadCleared returns if the "result_payload" field was cleared in this mutation.
func (m *QuerySessionMutation) ResultPayloadCleared() bool {
	_, ok := m.clearedFields[querysession.FieldResultPayload]
	return ok
}

// ResetResultPayload resets all changes to the "result_payload" field.
func (m *QuerySessionMutation) ResetResultPayload() {
	m.result_payload = nil
	delete(m.clearedFields, querysession.FieldResultPayload)
}

// SetFinalAnswer sets the "final_answer" field.
func (m *QuerySessionMutation) SetFinalAnswer(s string) {
	m.final_answer = &s
}

// FinalAnswer returns the value of the "final_answer" field in the mutation.
func (m *QuerySessionMutation) FinalAnswer() (r string, exists bool) {
	v := m.final_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnswer returns the old "final_answer" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldFinalAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnswer: %w", err)
	}
	return oldValue.FinalAnswer, nil
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (m *QuerySessionMutation) ClearFinalAnswer() {
	m.final_answer = nil
	m.clearedFields[querysession.FieldFinalAnswer] = struct{}{}
}

// FinalAnswerCleared returns if the "final_answer" field was cleared in this mutation.
func (m *QuerySessionMutation) FinalAnswerCleared() bool {
	_, ok := m.clearedFields[querysession.FieldFinalAnswer]
	return ok
}

// ResetFinalAnswer resets all changes to the "final_answer" field.
func (m *QuerySessionMutation) ResetFinalAnswer() {
	m.final_answer = nil
	delete(m.clearedFields, querysession.FieldFinalAnswer)
}

// SetErrorMessage sets the "error_message" field.
func (m *QuerySessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *QuerySessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *QuerySessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[querysession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *QuerySessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[querysession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *QuerySessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, querysession.FieldErrorMessage)
}

// SetErrorCode sets the "error_code" field.
func (m *QuerySessionMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *QuerySessionMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *QuerySessionMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[querysession.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *QuerySessionMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[querysession.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *QuerySessionMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, querysession.FieldErrorCode)
}

// SetClarificationQuestion sets the "clarification_question" field.
func (m *QuerySessionMutation) SetClarificationQuestion(s string) {
	m.clarification_question = &s
}

// ClarificationQuestion returns the value of the "clarification_question" field in the mutation.
func (m *QuerySessionMutation) ClarificationQuestion() (r string, exists bool) {
	v := m.clarification_question
	if v == nil {
		return
	}
	return *v, true
}

// OldClarificationQuestion returns the old "clarification_question" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldClarificationQuestion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarificationQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarificationQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarificationQuestion: %w", err)
	}
	return oldValue.ClarificationQuestion, nil
}

// ClearClarificationQuestion clears the value of the "clarification_question" field.
func (m *QuerySessionMutation) ClearClarificationQuestion() {
	m.clarification_question = nil
	m.clearedFields[querysession.FieldClarificationQuestion] = struct{}{}
}

// ClarificationQuestionCleared returns if the "clarification_question" field was cleared in this mutation.
func (m *QuerySessionMutation) ClarificationQuestionCleared() bool {
	_, ok := m.clearedFields[querysession.FieldClarificationQuestion]
	return ok
}

// ResetClarificationQuestion resets all changes to the "clarification_question" field.
func (m *QuerySessionMutation) ResetClarificationQuestion() {
	m.clarification_question = nil
	delete(m.clearedFields, querysession.FieldClarificationQuestion)
}

// SetClarificationAnswer sets the "clarification_answer" field.
func (m *QuerySessionMutation) SetClarificationAnswer(s string) {
	m.clarification_answer = &s
}

// ClarificationAnswer returns the value of the "clarification_answer" field in the mutation.
func (m *QuerySessionMutation) ClarificationAnswer() (r string, exists bool) {
	v := m.clarification_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldClarificationAnswer returns the old "clarification_answer" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldClarificationAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarificationAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarificationAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarificationAnswer: %w", err)
	}
	return oldValue.ClarificationAnswer, nil
}

// ClearClarificationAnswer clears the value of the "clarification_answer" field.
func (m *QuerySessionMutation) ClearClarificationAnswer() {
	m.clarification_answer = nil
	m.clearedFields[querysession.FieldClarificationAnswer] = struct{}{}
}

// ClarificationAnswerCleared returns if the "clarification_answer" field was cleared in this mutation.
func (m *QuerySessionMutation) ClarificationAnswerCleared() bool {
	_, ok := m.clearedFields[querysession.FieldClarificationAnswer]
	return ok
}

// ResetClarificationAnswer resets all changes to the "clarification_answer" field.
func (m *QuerySessionMutation) ResetClarificationAnswer() {
	m.clarification_answer = nil
	delete(m.clearedFields, querysession.FieldClarificationAnswer)
}

// SetPodID sets the "pod_id" field.
func (m *QuerySessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *QuerySessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *QuerySessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[querysession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *QuerySessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[querysession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *QuerySessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, querysession.FieldPodID)
}

// SetRequeueCount sets the "requeue_count" field.
func (m *QuerySessionMutation) SetRequeueCount(i int) {
	m.requeue_count = &i
	m.addrequeue_count = nil
}

// RequeueCount returns the value of the "requeue_count" field in the mutation.
func (m *QuerySessionMutation) RequeueCount() (r int, exists bool) {
	v := m.requeue_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequeueCount returns the old "requeue_count" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldRequeueCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequeueCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequeueCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequeueCount: %w", err)
	}
	return oldValue.RequeueCount, nil
}

// AddRequeueCount adds i to the "requeue_count" field.
func (m *QuerySessionMutation) AddRequeueCount(i int) {
	if m.addrequeue_count != nil {
		*m.addrequeue_count += i
	} else {
		m.addrequeue_count = &i
	}
}

// AddedRequeueCount returns the value that was added to the "requeue_count" field in this mutation.
func (m *QuerySessionMutation) AddedRequeueCount() (r int, exists bool) {
	v := m.addrequeue_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequeueCount resets all changes to the "requeue_count" field.
func (m *QuerySessionMutation) ResetRequeueCount() {
	m.requeue_count = nil
	m.addrequeue_count = nil
}

// SetTraceID sets the "trace_id" field.
func (m *QuerySessionMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *QuerySessionMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldTraceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *QuerySessionMutation) ClearTraceID() {
	m.trace_id = nil
	m.clearedFields[querysession.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *QuerySessionMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[querysession.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *QuerySessionMutation) ResetTraceID() {
	m.trace_id = nil
	delete(m.clearedFields, querysession.FieldTraceID)
}

// SetSchemaSnapshotID sets the "schema_snapshot_id" field.
func (m *QuerySessionMutation) SetSchemaSnapshotID(s string) {
	m.schema_snapshot_id = &s
}

// SchemaSnapshotID returns the value of the "schema_snapshot_id" field in the mutation.
func (m *QuerySessionMutation) SchemaSnapshotID() (r string, exists bool) {
	v := m.schema_snapshot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaSnapshotID returns the old "schema_snapshot_id" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldSchemaSnapshotID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaSnapshotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaSnapshotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaSnapshotID: %w", err)
	}
	return oldValue.SchemaSnapshotID, nil
}

// ClearSchemaSnapshotID clears the value of the "schema_snapshot_id" field.
func (m *QuerySessionMutation) ClearSchemaSnapshotID() {
	m.schema_snapshot_id = nil
	m.clearedFields[querysession.FieldSchemaSnapshotID] = struct{}{}
}

// SchemaSnapshotIDCleared returns if the "schema_snapshot_id" field was cleared in this mutation.
func (m *QuerySessionMutation) SchemaSnapshotIDCleared() bool {
	_, ok := m.clearedFields[querysession.FieldSchemaSnapshotID]
	return ok
}

// ResetSchemaSnapshotID resets all changes to the "schema_snapshot_id" field.
func (m *QuerySessionMutation) ResetSchemaSnapshotID() {
	m.schema_snapshot_id = nil
	delete(m.clearedFields, querysession.FieldSchemaSnapshotID)
}

// SetPageSize sets the "page_size" field.
func (m *QuerySessionMutation) SetPageSize(i int) {
	m.page_size = &i
	m.addpage_size = nil
}

// PageSize returns the value of the "page_size" field in the mutation.
func (m *QuerySessionMutation) PageSize() (r int, exists bool) {
	v := m.page_size
	if v == nil {
		return
	}
	return *v, true
}

// OldPageSize returns the old "page_size" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldPageSize(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageSize: %w", err)
	}
	return oldValue.PageSize, nil
}

// AddPageSize adds i to the "page_size" field.
func (m *QuerySessionMutation) AddPageSize(i int) {
	if m.addpage_size != nil {
		*m.addpage_size += i
	} else {
		m.addpage_size = &i
	}
}

// AddedPageSize returns the value that was added to the "page_size" field in this mutation.
func (m *QuerySessionMutation) AddedPageSize() (r int, exists bool) {
	v := m.addpage_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageSize clears the value of the "page_size" field.
func (m *QuerySessionMutation) ClearPageSize() {
	m.page_size = nil
	m.addpage_size = nil
	m.clearedFields[querysession.FieldPageSize] = struct{}{}
}

// PageSizeCleared returns if the "page_size" field was cleared in this mutation.
func (m *QuerySessionMutation) PageSizeCleared() bool {
	_, ok := m.clearedFields[querysession.FieldPageSize]
	return ok
}

// ResetPageSize resets all changes to the "page_size" field.
func (m *QuerySessionMutation) ResetPageSize() {
	m.page_size = nil
	m.addpage_size = nil
	delete(m.clearedFields, querysession.FieldPageSize)
}

// SetPageToken sets the "page_token" field.
func (m *QuerySessionMutation) SetPageToken(s string) {
	m.page_token = &s
}

// PageToken returns the value of the "page_token" field in the mutation.
func (m *QuerySessionMutation) PageToken() (r string, exists bool) {
	v := m.page_token
	if v == nil {
		return
	}
	return *v, true
}

// OldPageToken returns the old "page_token" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldPageToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageToken: %w", err)
	}
	return oldValue.PageToken, nil
}

// ClearPageToken clears the value of the "page_token" field.
func (m *QuerySessionMutation) ClearPageToken() {
	m.page_token = nil
	m.clearedFields[querysession.FieldPageToken] = struct{}{}
}

// PageTokenCleared returns if the "page_token" field was cleared in this mutation.
func (m *QuerySessionMutation) PageTokenCleared() bool {
	_, ok := m.clearedFields[querysession.FieldPageToken]
	return ok
}

// ResetPageToken resets all changes to the "page_token" field.
func (m *QuerySessionMutation) ResetPageToken() {
	m.page_token = nil
	delete(m.clearedFields, querysession.FieldPageToken)
}

// SetSeed sets the "seed" field.
func (m *QuerySessionMutation) SetSeed(i int64) {
	m.seed = &i
	m.addseed = nil
}

// Seed returns the value of the "seed" field in the mutation.
func (m *QuerySessionMutation) Seed() (r int64, exists bool) {
	v := m.seed
	if v == nil {
		return
	}
	return *v, true
}

// OldSeed returns the old "seed" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldSeed(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeed: %w", err)
	}
	return oldValue.Seed, nil
}

// AddSeed adds i to the "seed" field.
func (m *QuerySessionMutation) AddSeed(i int64) {
	if m.addseed != nil {
		*m.addseed += i
	} else {
		m.addseed = &i
	}
}

// AddedSeed returns the value that was added to the "seed" field in this mutation.
func (m *QuerySessionMutation) AddedSeed() (r int64, exists bool) {
	v := m.addseed
	if v == nil {
		return
	}
	return *v, true
}

// ClearSeed clears the value of the "seed" field.
func (m *QuerySessionMutation) ClearSeed() {
	m.seed = nil
	m.addseed = nil
	m.clearedFields[querysession.FieldSeed] = struct{}{}
}

// SeedCleared returns if the "seed" field was cleared in this mutation.
func (m *QuerySessionMutation) SeedCleared() bool {
	_, ok := m.clearedFields[querysession.FieldSeed]
	return ok
}

// ResetSeed resets all changes to the "seed" field.
func (m *QuerySessionMutation) ResetSeed() {
	m.seed = nil
	m.addseed = nil
	delete(m.clearedFields, querysession.FieldSeed)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuerySessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuerySessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuerySessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *QuerySessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *QuerySessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *QuerySessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[querysession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *QuerySessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[querysession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *QuerySessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, querysession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *QuerySessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QuerySessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QuerySessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[querysession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QuerySessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[querysession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QuerySessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, querysession.FieldCompletedAt)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *QuerySessionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *QuerySessionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *QuerySessionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[querysession.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *QuerySessionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[querysession.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *QuerySessionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, querysession.FieldLastInteractionAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *QuerySessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *QuerySessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the QuerySession entity.
// If the QuerySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuerySessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *QuerySessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[querysession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *QuerySessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[querysession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *QuerySessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, querysession.FieldDeletedAt)
}

// AddInteractionIDs adds the "interactions" edge to the Interaction entity by ids.
func (m *QuerySessionMutation) AddInteractionIDs(ids ...string) {
	if m.interactions == nil {
		m.interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.interactions[ids[i]] = struct{}{}
	}
}

// ClearInteractions clears the "interactions" edge to the Interaction entity.
func (m *QuerySessionMutation) ClearInteractions() {
	m.clearedinteractions = true
}

// InteractionsCleared reports if the "interactions" edge to the Interaction entity was cleared.
func (m *QuerySessionMutation) InteractionsCleared() bool {
	return m.clearedinteractions
}

// RemoveInteractionIDs removes the "interactions" edge to the Interaction entity by IDs.
func (m *QuerySessionMutation) RemoveInteractionIDs(ids ...string) {
	if m.removedinteractions == nil {
		m.removedinteractions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.interactions, ids[i])
		m.removedinteractions[ids[i]] = struct{}{}
	}
}

// RemovedInteractions returns the removed IDs of the "interactions" edge to the Interaction entity.
func (m *QuerySessionMutation) RemovedInteractionsIDs() (ids []string) {
	for id := range m.removedinteractions {
		ids = append(ids, id)
	}
	return
}

// InteractionsIDs returns the "interactions" edge IDs in the mutation.
func (m *QuerySessionMutation) InteractionsIDs() (ids []string) {
	for id := range m.interactions {
		ids = append(ids, id)
	}
	return
}

// ResetInteractions resets all changes to the "interactions" edge.
func (m *QuerySessionMutation) ResetInteractions() {
	m.interactions = nil
	m.clearedinteractions = false
	m.removedinteractions = nil
}

// Where appends a list predicates to the QuerySessionMutation builder.
func (m *QuerySessionMutation) Where(ps ...predicate.QuerySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuerySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuerySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuerySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuerySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuerySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuerySession).
func (m *QuerySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuerySessionMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.tenant_id != nil {
		fields = append(fields, querysession.FieldTenantID)
	}
	if m.question != nil {
		fields = append(fields, querysession.FieldQuestion)
	}
	if m.status != nil {
		fields = append(fields, querysession.FieldStatus)
	}
	if m.final_sql != nil {
		fields = append(fields, querysession.FieldFinalSQL)
	}
	if m.result_payload != nil {
		fields = append(fields, querysession.FieldResultPayload)
	}
	if m.final_answer != nil {
		fields = append(fields, querysession.FieldFinalAnswer)
	}
	if m.error_message != nil {
		fields = append(fields, querysession.FieldErrorMessage)
	}
	if m.error_code != nil {
		fields = append(fields, querysession.FieldErrorCode)
	}
	if m.clarification_question != nil {
		fields = append(fields, querysession.FieldClarificationQuestion)
	}
	if m.clarification_answer != nil {
		fields = append(fields, querysession.FieldClarificationAnswer)
	}
	if m.pod_id != nil {
		fields = append(fields, querysession.FieldPodID)
	}
	if m.requeue_count != nil {
		fields = append(fields, querysession.FieldRequeueCount)
	}
	if m.trace_id != nil {
		fields = append(fields, querysession.FieldTraceID)
	}
	if m.schema_snapshot_id != nil {
		fields = append(fields, querysession.FieldSchemaSnapshotID)
	}
	if m.page_size != nil {
		fields = append(fields, querysession.FieldPageSize)
	}
	if m.page_token != nil {
		fields = append(fields, querysession.FieldPageToken)
	}
	if m.seed != nil {
		fields = append(fields, querysession.FieldSeed)
	}
	if m.created_at != nil {
		fields = append(fields, querysession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, querysession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, querysession.FieldCompletedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, querysession.FieldLastInteractionAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, querysession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuerySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case querysession.FieldTenantID:
		return m.TenantID()
	case querysession.FieldQuestion:
		return m.Question()
	case querysession.FieldStatus:
		return m.Status()
	case querysession.FieldFinalSQL:
		return m.FinalSQL()
	case querysession.FieldResultPayload:
		return m.ResultPayload()
	case querysession.FieldFinalAnswer:
		return m.FinalAnswer()
	case querysession.FieldErrorMessage:
		return m.ErrorMessage()
	case querysession.FieldErrorCode:
		return m.ErrorCode()
	case querysession.FieldClarificationQuestion:
		return m.ClarificationQuestion()
	case querysession.FieldClarificationAnswer:
		return m.ClarificationAnswer()
	case querysession.FieldPodID:
		return m.PodID()
	case querysession.FieldRequeueCount:
		return m.RequeueCount()
	case querysession.FieldTraceID:
		return m.TraceID()
	case querysession.FieldSchemaSnapshotID:
		return m.SchemaSnapshotID()
	case querysession.FieldPageSize:
		return m.PageSize()
	case querysession.FieldPageToken:
		return m.PageToken()
	case querysession.FieldSeed:
		return m.Seed()
	case querysession.FieldCreatedAt:
		return m.CreatedAt()
	case querysession.FieldStartedAt:
		return m.StartedAt()
	case querysession.FieldCompletedAt:
		return m.CompletedAt()
	case querysession.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case querysession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuerySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case querysession.FieldTenantID:
		return m.OldTenantID(ctx)
	case querysession.FieldQuestion:
		return m.OldQuestion(ctx)
	case querysession.FieldStatus:
		return m.OldStatus(ctx)
	case querysession.FieldFinalSQL:
		return m.OldFinalSQL(ctx)
	case querysession.FieldResultPayload:
		return m.OldResultPayload(ctx)
	case querysession.FieldFinalAnswer:
		return m.OldFinalAnswer(ctx)
	case querysession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case querysession.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case querysession.FieldClarificationQuestion:
		return m.OldClarificationQuestion(ctx)
	case querysession.FieldClarificationAnswer:
		return m.OldClarificationAnswer(ctx)
	case querysession.FieldPodID:
		return m.OldPodID(ctx)
	case querysession.FieldRequeueCount:
		return m.OldRequeueCount(ctx)
	case querysession.FieldTraceID:
		return m.OldTraceID(ctx)
	case querysession.FieldSchemaSnapshotID:
		return m.OldSchemaSnapshotID(ctx)
	case querysession.FieldPageSize:
		return m.OldPageSize(ctx)
	case querysession.FieldPageToken:
		return m.OldPageToken(ctx)
	case querysession.FieldSeed:
		return m.OldSeed(ctx)
	case querysession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case querysession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case querysession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case querysession.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case querysession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuerySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuerySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case querysession.FieldTenantID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case querysession.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case querysession.FieldStatus:
		v, ok := value.(querysession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case querysession.FieldFinalSQL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalSQL(v)
		return nil
	case querysession.FieldResultPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultPayload(v)
		return nil
	case querysession.FieldFinalAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnswer(v)
		return nil
	case querysession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case querysession.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case querysession.FieldClarificationQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarificationQuestion(v)
		return nil
	case querysession.FieldClarificationAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarificationAnswer(v)
		return nil
	case querysession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case querysession.FieldRequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequeueCount(v)
		return nil
	case querysession.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case querysession.FieldSchemaSnapshotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaSnapshotID(v)
		return nil
	case querysession.FieldPageSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageSize(v)
		return nil
	case querysession.FieldPageToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageToken(v)
		return nil
	case querysession.FieldSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeed(v)
		return nil
	case querysession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case querysession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case querysession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case querysession.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case querysession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuerySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuerySessionMutation) AddedFields() []string {
	var fields []string
	if m.addtenant_id != nil {
		fields = append(fields, querysession.FieldTenantID)
	}
	if m.addrequeue_count != nil {
		fields = append(fields, querysession.FieldRequeueCount)
	}
	if m.addpage_size != nil {
		fields = append(fields, querysession.FieldPageSize)
	}
	if m.addseed != nil {
		fields = append(fields, querysession.FieldSeed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuerySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case querysession.FieldTenantID:
		return m.AddedTenantID()
	case querysession.FieldRequeueCount:
		return m.AddedRequeueCount()
	case querysession.FieldPageSize:
		return m.AddedPageSize()
	case querysession.FieldSeed:
		return m.AddedSeed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuerySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case querysession.FieldTenantID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTenantID(v)
		return nil
	case querysession.FieldRequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequeueCount(v)
		return nil
	case querysession.FieldPageSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageSize(v)
		return nil
	case querysession.FieldSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeed(v)
		return nil
	}
	return fmt.Errorf("unknown QuerySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuerySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(querysession.FieldFinalSQL) {
		fields = append(fields, querysession.FieldFinalSQL)
	}
	if m.FieldCleared(querysession.FieldResultPayload) {
		fields = append(fields, querysession.FieldResultPayload)
	}
	if m.FieldCleared(querysession.FieldFinalAnswer) {
		fields = append(fields, querysession.FieldFinalAnswer)
	}
	if m.FieldCleared(querysession.FieldErrorMessage) {
		fields = append(fields, querysession.FieldErrorMessage)
	}
	if m.FieldCleared(querysession.FieldErrorCode) {
		fields = append(fields, querysession.FieldErrorCode)
	}
	if m.FieldCleared(querysession.FieldClarificationQuestion) {
		fields = append(fields, querysession.FieldClarificationQuestion)
	}
	if m.FieldCleared(querysession.FieldClarificationAnswer) {
		fields = append(fields, querysession.FieldClarificationAnswer)
	}
	if m.FieldCleared(querysession.FieldPodID) {
		fields = append(fields, querysession.FieldPodID)
	}
	if m.FieldCleared(querysession.FieldTraceID) {
		fields = append(fields, querysession.FieldTraceID)
	}
	if m.FieldCleared(querysession.FieldSchemaSnapshotID) {
		fields = append(fields, querysession.FieldSchemaSnapshotID)
	}
	if m.FieldCleared(querysession.FieldPageSize) {
		fields = append(fields, querysession.FieldPageSize)
	}
	if m.FieldCleared(querysession.FieldPageToken) {
		fields = append(fields, querysession.FieldPageToken)
	}
	if m.FieldCleared(querysession.FieldSeed) {
		fields = append(fields, querysession.FieldSeed)
	}
	if m.FieldCleared(querysession.FieldStartedAt) {
		fields = append(fields, querysession.FieldStartedAt)
	}
	if m.FieldCleared(querysession.FieldCompletedAt) {
		fields = append(fields, querysession.FieldCompletedAt)
	}
	if m.FieldCleared(querysession.FieldLastInteractionAt) {
		fields = append(fields, querysession.FieldLastInteractionAt)
	}
	if m.FieldCleared(querysession.FieldDeletedAt) {
		fields = append(fields, querysession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuerySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuerySessionMutation) ClearField(name string) error {
	switch name {
	case querysession.FieldFinalSQL:
		m.ClearFinalSQL()
		return nil
	case querysession.FieldResultPayload:
		m.ClearResultPayload()
		return nil
	case querysession.FieldFinalAnswer:
		m.ClearFinalAnswer()
		return nil
	case querysession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case querysession.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case querysession.FieldClarificationQuestion:
		m.ClearClarificationQuestion()
		return nil
	case querysession.FieldClarificationAnswer:
		m.ClearClarificationAnswer()
		return nil
	case querysession.FieldPodID:
		m.ClearPodID()
		return nil
	case querysession.FieldTraceID:
		m.ClearTraceID()
		return nil
	case querysession.FieldSchemaSnapshotID:
		m.ClearSchemaSnapshotID()
		return nil
	case querysession.FieldPageSize:
		m.ClearPageSize()
		return nil
	case querysession.FieldPageToken:
		m.ClearPageToken()
		return nil
	case querysession.FieldSeed:
		m.ClearSeed()
		return nil
	case querysession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case querysession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case querysession.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case querysession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown QuerySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuerySessionMutation) ResetField(name string) error {
	switch name {
	case querysession.FieldTenantID:
		m.ResetTenantID()
		return nil
	case querysession.FieldQuestion:
		m.ResetQuestion()
		return nil
	case querysession.FieldStatus:
		m.ResetStatus()
		return nil
	case querysession.FieldFinalSQL:
		m.ResetFinalSQL()
		return nil
	case querysession.FieldResultPayload:
		m.ResetResultPayload()
		return nil
	case querysession.FieldFinalAnswer:
		m.ResetFinalAnswer()
		return nil
	case querysession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case querysession.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case querysession.FieldClarificationQuestion:
		m.ResetClarificationQuestion()
		return nil
	case querysession.FieldClarificationAnswer:
		m.ResetClarificationAnswer()
		return nil
	case querysession.FieldPodID:
		m.ResetPodID()
		return nil
	case querysession.FieldRequeueCount:
		m.ResetRequeueCount()
		return nil
	case querysession.FieldTraceID:
		m.ResetTraceID()
		return nil
	case querysession.FieldSchemaSnapshotID:
		m.ResetSchemaSnapshotID()
		return nil
	case querysession.FieldPageSize:
		m.ResetPageSize()
		return nil
	case querysession.FieldPageToken:
		m.ResetPageToken()
		return nil
	case querysession.FieldSeed:
		m.ResetSeed()
		return nil
	case querysession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case querysession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case querysession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case querysession.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case querysession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown QuerySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuerySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.interactions != nil {
		edges = append(edges, querysession.EdgeInteractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuerySessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case querysession.EdgeInteractions:
		ids := make([]ent.Value, 0, len(m.interactions))
		for id := range m.interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuerySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinteractions != nil {
		edges = append(edges, querysession.EdgeInteractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuerySessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case querysession.EdgeInteractions:
		ids := make([]ent.Value, 0, len(m.removedinteractions))
		for id := range m.removedinteractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuerySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinteractions {
		edges = append(edges, querysession.EdgeInteractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuerySessionMutation) EdgeCleared(name string) bool {
	switch name {
	case querysession.EdgeInteractions:
		return m.clearedinteractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuerySessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown QuerySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuerySessionMutation) ResetEdge(name string) error {
	switch name {
	case querysession.EdgeInteractions:
		m.ResetInteractions()
		return nil
	}
	return fmt.Errorf("unknown QuerySession edge %s", name)
}
