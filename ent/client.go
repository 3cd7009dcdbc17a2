// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/querra-ai/querra/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/querra-ai/querra/ent/cacheentry"
	"github.com/querra-ai/querra/ent/checkpoint"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/ent/querypair"
	"github.com/querra-ai/querra/ent/querysession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CacheEntry is the client for interacting with the CacheEntry builders.
	CacheEntry *CacheEntryClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// Interaction is the client for interacting with the Interaction builders.
	Interaction *InteractionClient
	// QueryPair is the client for interacting with the QueryPair builders.
	QueryPair *QueryPairClient
	// QuerySession is the client for interacting with the QuerySession builders.
	QuerySession *QuerySessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CacheEntry = NewCacheEntryClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.Interaction = NewInteractionClient(c.config)
	c.QueryPair = NewQueryPairClient(c.config)
	c.QuerySession = NewQuerySessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		CacheEntry:   NewCacheEntryClient(cfg),
		Checkpoint:   NewCheckpointClient(cfg),
		Interaction:  NewInteractionClient(cfg),
		QueryPair:    NewQueryPairClient(cfg),
		QuerySession: NewQuerySessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		CacheEntry:   NewCacheEntryClient(cfg),
		Checkpoint:   NewCheckpointClient(cfg),
		Interaction:  NewInteractionClient(cfg),
		QueryPair:    NewQueryPairClient(cfg),
		QuerySession: NewQuerySessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CacheEntry.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CacheEntry.Use(hooks...)
	c.Checkpoint.Use(hooks...)
	c.Interaction.Use(hooks...)
	c.QueryPair.Use(hooks...)
	c.QuerySession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CacheEntry.Intercept(interceptors...)
	c.Checkpoint.Intercept(interceptors...)
	c.Interaction.Intercept(interceptors...)
	c.QueryPair.Intercept(interceptors...)
	c.QuerySession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CacheEntryMutation:
		return c.CacheEntry.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *InteractionMutation:
		return c.Interaction.mutate(ctx, m)
	case *QueryPairMutation:
		return c.QueryPair.mutate(ctx, m)
	case *QuerySessionMutation:
		return c.QuerySession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CacheEntryClient is a client for the CacheEntry schema.
type CacheEntryClient struct {
	config
}

// NewCacheEntryClient returns a client for the CacheEntry from the given config.
func NewCacheEntryClient(c config) *CacheEntryClient {
	return &CacheEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cacheentry.Hooks(f(g(h())))`.
func (c *CacheEntryClient) Use(hooks ...Hook) {
	c.hooks.CacheEntry = append(c.hooks.CacheEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cacheentry.Intercept(f(g(h())))`.
func (c *CacheEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CacheEntry = append(c.inters.CacheEntry, interceptors...)
}

// Create returns a builder for creating a CacheEntry entity.
func (c *CacheEntryClient) Create() *CacheEntryCreate {
	mutation := newCacheEntryMutation(c.config, OpCreate)
	return &CacheEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CacheEntry entities.
func (c *CacheEntryClient) CreateBulk(builders ...*CacheEntryCreate) *CacheEntryCreateBulk {
	return &CacheEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CacheEntryClient) MapCreateBulk(slice any, setFunc func(*CacheEntryCreate, int)) *CacheEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CacheEntryCreateBulk{err: fmt.Errorf("calling to CacheEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CacheEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CacheEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CacheEntry.
func (c *CacheEntryClient) Update() *CacheEntryUpdate {
	mutation := newCacheEntryMutation(c.config, OpUpdate)
	return &CacheEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CacheEntryClient) UpdateOne(_m *CacheEntry) *CacheEntryUpdateOne {
	mutation := newCacheEntryMutation(c.config, OpUpdateOne, withCacheEntry(_m))
	return &CacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CacheEntryClient) UpdateOneID(id string) *CacheEntryUpdateOne {
	mutation := newCacheEntryMutation(c.config, OpUpdateOne, withCacheEntryID(id))
	return &CacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CacheEntry.
func (c *CacheEntryClient) Delete() *CacheEntryDelete {
	mutation := newCacheEntryMutation(c.config, OpDelete)
	return &CacheEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CacheEntryClient) DeleteOne(_m *CacheEntry) *CacheEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CacheEntryClient) DeleteOneID(id string) *CacheEntryDeleteOne {
	builder := c.Delete().Where(cacheentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CacheEntryDeleteOne{builder}
}

// Query returns a query builder for CacheEntry.
func (c *CacheEntryClient) Query() *CacheEntryQuery {
	return &CacheEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCacheEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CacheEntry entity by its id.
func (c *CacheEntryClient) Get(ctx context.Context, id string) (*CacheEntry, error) {
	return c.Query().Where(cacheentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CacheEntryClient) GetX(ctx context.Context, id string) *CacheEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CacheEntryClient) Hooks() []Hook {
	return c.hooks.CacheEntry
}

// Interceptors returns the client interceptors.
func (c *CacheEntryClient) Interceptors() []Interceptor {
	return c.inters.CacheEntry
}

func (c *CacheEntryClient) mutate(ctx context.Context, m *CacheEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CacheEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CacheEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CacheEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CacheEntry mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id int) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id int) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id int) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id int) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// InteractionClient is a client for the Interaction schema.
type InteractionClient struct {
	config
}

// NewInteractionClient returns a client for the Interaction from the given config.
func NewInteractionClient(c config) *InteractionClient {
	return &InteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interaction.Hooks(f(g(h())))`.
func (c *InteractionClient) Use(hooks ...Hook) {
	c.hooks.Interaction = append(c.hooks.Interaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interaction.Intercept(f(g(h())))`.
func (c *InteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Interaction = append(c.inters.Interaction, interceptors...)
}

// Create returns a builder for creating a Interaction entity.
func (c *InteractionClient) Create() *InteractionCreate {
	mutation := newInteractionMutation(c.config, OpCreate)
	return &InteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Interaction entities.
func (c *InteractionClient) CreateBulk(builders ...*InteractionCreate) *InteractionCreateBulk {
	return &InteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionClient) MapCreateBulk(slice any, setFunc func(*InteractionCreate, int)) *InteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionCreateBulk{err: fmt.Errorf("calling to InteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Interaction.
func (c *InteractionClient) Update() *InteractionUpdate {
	mutation := newInteractionMutation(c.config, OpUpdate)
	return &InteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionClient) UpdateOne(_m *Interaction) *InteractionUpdateOne {
	mutation := newInteractionMutation(c.config, OpUpdateOne, withInteraction(_m))
	return &InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionClient) UpdateOneID(id string) *InteractionUpdateOne {
	mutation := newInteractionMutation(c.config, OpUpdateOne, withInteractionID(id))
	return &InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Interaction.
func (c *InteractionClient) Delete() *InteractionDelete {
	mutation := newInteractionMutation(c.config, OpDelete)
	return &InteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionClient) DeleteOne(_m *Interaction) *InteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionClient) DeleteOneID(id string) *InteractionDeleteOne {
	builder := c.Delete().Where(interaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionDeleteOne{builder}
}

// Query returns a query builder for Interaction.
func (c *InteractionClient) Query() *InteractionQuery {
	return &InteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Interaction entity by its id.
func (c *InteractionClient) Get(ctx context.Context, id string) (*Interaction, error) {
	return c.Query().Where(interaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionClient) GetX(ctx context.Context, id string) *Interaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Interaction.
func (c *InteractionClient) QuerySession(_m *Interaction) *QuerySessionQuery {
	query := (&QuerySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interaction.Table, interaction.FieldID, id),
			sqlgraph.To(querysession.Table, querysession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interaction.SessionTable, interaction.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InteractionClient) Hooks() []Hook {
	return c.hooks.Interaction
}

// Interceptors returns the client interceptors.
func (c *InteractionClient) Interceptors() []Interceptor {
	return c.inters.Interaction
}

func (c *InteractionClient) mutate(ctx context.Context, m *InteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Interaction mutation op: %q", m.Op())
	}
}

// QueryPairClient is a client for the QueryPair schema.
type QueryPairClient struct {
	config
}

// NewQueryPairClient returns a client for the QueryPair from the given config.
func NewQueryPairClient(c config) *QueryPairClient {
	return &QueryPairClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `querypair.Hooks(f(g(h())))`.
func (c *QueryPairClient) Use(hooks ...Hook) {
	c.hooks.QueryPair = append(c.hooks.QueryPair, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `querypair.Intercept(f(g(h())))`.
func (c *QueryPairClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueryPair = append(c.inters.QueryPair, interceptors...)
}

// Create returns a builder for creating a QueryPair entity.
func (c *QueryPairClient) Create() *QueryPairCreate {
	mutation := newQueryPairMutation(c.config, OpCreate)
	return &QueryPairCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueryPair entities.
func (c *QueryPairClient) CreateBulk(builders ...*QueryPairCreate) *QueryPairCreateBulk {
	return &QueryPairCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueryPairClient) MapCreateBulk(slice any, setFunc func(*QueryPairCreate, int)) *QueryPairCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueryPairCreateBulk{err: fmt.Errorf("calling to QueryPairClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueryPairCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueryPairCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueryPair.
func (c *QueryPairClient) Update() *QueryPairUpdate {
	mutation := newQueryPairMutation(c.config, OpUpdate)
	return &QueryPairUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueryPairClient) UpdateOne(_m *QueryPair) *QueryPairUpdateOne {
	mutation := newQueryPairMutation(c.config, OpUpdateOne, withQueryPair(_m))
	return &QueryPairUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueryPairClient) UpdateOneID(id string) *QueryPairUpdateOne {
	mutation := newQueryPairMutation(c.config, OpUpdateOne, withQueryPairID(id))
	return &QueryPairUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueryPair.
func (c *QueryPairClient) Delete() *QueryPairDelete {
	mutation := newQueryPairMutation(c.config, OpDelete)
	return &QueryPairDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueryPairClient) DeleteOne(_m *QueryPair) *QueryPairDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueryPairClient) DeleteOneID(id string) *QueryPairDeleteOne {
	builder := c.Delete().Where(querypair.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueryPairDeleteOne{builder}
}

// Query returns a query builder for QueryPair.
func (c *QueryPairClient) Query() *QueryPairQuery {
	return &QueryPairQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueryPair},
		inters: c.Interceptors(),
	}
}

// Get returns a QueryPair entity by its id.
func (c *QueryPairClient) Get(ctx context.Context, id string) (*QueryPair, error) {
	return c.Query().Where(querypair.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueryPairClient) GetX(ctx context.Context, id string) *QueryPair {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueryPairClient) Hooks() []Hook {
	return c.hooks.QueryPair
}

// Interceptors returns the client interceptors.
func (c *QueryPairClient) Interceptors() []Interceptor {
	return c.inters.QueryPair
}

func (c *QueryPairClient) mutate(ctx context.Context, m *QueryPairMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueryPairCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueryPairUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueryPairUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueryPairDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueryPair mutation op: %q", m.Op())
	}
}

// QuerySessionClient is a client for the QuerySession schema.
type QuerySessionClient struct {
	config
}

// NewQuerySessionClient returns a client for the QuerySession from the given config.
func NewQuerySessionClient(c config) *QuerySessionClient {
	return &QuerySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `querysession.Hooks(f(g(h())))`.
func (c *QuerySessionClient) Use(hooks ...Hook) {
	c.hooks.QuerySession = append(c.hooks.QuerySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `querysession.Intercept(f(g(h())))`.
func (c *QuerySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuerySession = append(c.inters.QuerySession, interceptors...)
}

// Create returns a builder for creating a QuerySession entity.
func (c *QuerySessionClient) Create() *QuerySessionCreate {
	mutation := newQuerySessionMutation(c.config, OpCreate)
	return &QuerySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuerySession entities.
func (c *QuerySessionClient) CreateBulk(builders ...*QuerySessionCreate) *QuerySessionCreateBulk {
	return &QuerySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuerySessionClient) MapCreateBulk(slice any, setFunc func(*QuerySessionCreate, int)) *QuerySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuerySessionCreateBulk{err: fmt.Errorf("calling to QuerySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuerySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuerySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuerySession.
func (c *QuerySessionClient) Update() *QuerySessionUpdate {
	mutation := newQuerySessionMutation(c.config, OpUpdate)
	return &QuerySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuerySessionClient) UpdateOne(_m *QuerySession) *QuerySessionUpdateOne {
	mutation := newQuerySessionMutation(c.config, OpUpdateOne, withQuerySession(_m))
	return &QuerySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuerySessionClient) UpdateOneID(id string) *QuerySessionUpdateOne {
	mutation := newQuerySessionMutation(c.config, OpUpdateOne, withQuerySessionID(id))
	return &QuerySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuerySession.
func (c *QuerySessionClient) Delete() *QuerySessionDelete {
	mutation := newQuerySessionMutation(c.config, OpDelete)
	return &QuerySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuerySessionClient) DeleteOne(_m *QuerySession) *QuerySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuerySessionClient) DeleteOneID(id string) *QuerySessionDeleteOne {
	builder := c.Delete().Where(querysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuerySessionDeleteOne{builder}
}

// Query returns a query builder for QuerySession.
func (c *QuerySessionClient) Query() *QuerySessionQuery {
	return &QuerySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuerySession},
		inters: c.Interceptors(),
	}
}

// Get returns a QuerySession entity by its id.
func (c *QuerySessionClient) Get(ctx context.Context, id string) (*QuerySession, error) {
	return c.Query().Where(querysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuerySessionClient) GetX(ctx context.Context, id string) *QuerySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInteractions queries the interactions edge of a QuerySession.
func (c *QuerySessionClient) QueryInteractions(_m *QuerySession) *InteractionQuery {
	query := (&InteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(querysession.Table, querysession.FieldID, id),
			sqlgraph.To(interaction.Table, interaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, querysession.InteractionsTable, querysession.InteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuerySessionClient) Hooks() []Hook {
	return c.hooks.QuerySession
}

// Interceptors returns the client interceptors.
func (c *QuerySessionClient) Interceptors() []Interceptor {
	return c.inters.QuerySession
}

func (c *QuerySessionClient) mutate(ctx context.Context, m *QuerySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuerySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuerySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuerySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuerySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuerySession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CacheEntry, Checkpoint, Interaction, QueryPair, QuerySession []ent.Hook
	}
	inters struct {
		CacheEntry, Checkpoint, Interaction, QueryPair, QuerySession []ent.Interceptor
	}
)
