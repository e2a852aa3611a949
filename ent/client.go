// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/AlwaysBluer/lindorm-memobase/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/AlwaysBluer/lindorm-memobase/ent/blobrecord"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
	"github.com/AlwaysBluer/lindorm-memobase/ent/eventgist"
	"github.com/AlwaysBluer/lindorm-memobase/ent/memoryevent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/userprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BlobRecord is the client for interacting with the BlobRecord builders.
	BlobRecord *BlobRecordClient
	// BufferEntry is the client for interacting with the BufferEntry builders.
	BufferEntry *BufferEntryClient
	// EventGist is the client for interacting with the EventGist builders.
	EventGist *EventGistClient
	// MemoryEvent is the client for interacting with the MemoryEvent builders.
	MemoryEvent *MemoryEventClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BlobRecord = NewBlobRecordClient(c.config)
	c.BufferEntry = NewBufferEntryClient(c.config)
	c.EventGist = NewEventGistClient(c.config)
	c.MemoryEvent = NewMemoryEventClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		BlobRecord:  NewBlobRecordClient(cfg),
		BufferEntry: NewBufferEntryClient(cfg),
		EventGist:   NewEventGistClient(cfg),
		MemoryEvent: NewMemoryEventClient(cfg),
		UserProfile: NewUserProfileClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		BlobRecord:  NewBlobRecordClient(cfg),
		BufferEntry: NewBufferEntryClient(cfg),
		EventGist:   NewEventGistClient(cfg),
		MemoryEvent: NewMemoryEventClient(cfg),
		UserProfile: NewUserProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BlobRecord.
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
	c.BlobRecord.Use(hooks...)
	c.BufferEntry.Use(hooks...)
	c.EventGist.Use(hooks...)
	c.MemoryEvent.Use(hooks...)
	c.UserProfile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BlobRecord.Intercept(interceptors...)
	c.BufferEntry.Intercept(interceptors...)
	c.EventGist.Intercept(interceptors...)
	c.MemoryEvent.Intercept(interceptors...)
	c.UserProfile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BlobRecordMutation:
		return c.BlobRecord.mutate(ctx, m)
	case *BufferEntryMutation:
		return c.BufferEntry.mutate(ctx, m)
	case *EventGistMutation:
		return c.EventGist.mutate(ctx, m)
	case *MemoryEventMutation:
		return c.MemoryEvent.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BlobRecordClient is a client for the BlobRecord schema.
type BlobRecordClient struct {
	config
}

// NewBlobRecordClient returns a client for the BlobRecord from the given config.
func NewBlobRecordClient(c config) *BlobRecordClient {
	return &BlobRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blobrecord.Hooks(f(g(h())))`.
func (c *BlobRecordClient) Use(hooks ...Hook) {
	c.hooks.BlobRecord = append(c.hooks.BlobRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blobrecord.Intercept(f(g(h())))`.
func (c *BlobRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlobRecord = append(c.inters.BlobRecord, interceptors...)
}

// Create returns a builder for creating a BlobRecord entity.
func (c *BlobRecordClient) Create() *BlobRecordCreate {
	mutation := newBlobRecordMutation(c.config, OpCreate)
	return &BlobRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlobRecord entities.
func (c *BlobRecordClient) CreateBulk(builders ...*BlobRecordCreate) *BlobRecordCreateBulk {
	return &BlobRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlobRecordClient) MapCreateBulk(slice any, setFunc func(*BlobRecordCreate, int)) *BlobRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlobRecordCreateBulk{err: fmt.Errorf("calling to BlobRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlobRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlobRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlobRecord.
func (c *BlobRecordClient) Update() *BlobRecordUpdate {
	mutation := newBlobRecordMutation(c.config, OpUpdate)
	return &BlobRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlobRecordClient) UpdateOne(_m *BlobRecord) *BlobRecordUpdateOne {
	mutation := newBlobRecordMutation(c.config, OpUpdateOne, withBlobRecord(_m))
	return &BlobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlobRecordClient) UpdateOneID(id string) *BlobRecordUpdateOne {
	mutation := newBlobRecordMutation(c.config, OpUpdateOne, withBlobRecordID(id))
	return &BlobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlobRecord.
func (c *BlobRecordClient) Delete() *BlobRecordDelete {
	mutation := newBlobRecordMutation(c.config, OpDelete)
	return &BlobRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlobRecordClient) DeleteOne(_m *BlobRecord) *BlobRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlobRecordClient) DeleteOneID(id string) *BlobRecordDeleteOne {
	builder := c.Delete().Where(blobrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlobRecordDeleteOne{builder}
}

// Query returns a query builder for BlobRecord.
func (c *BlobRecordClient) Query() *BlobRecordQuery {
	return &BlobRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlobRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a BlobRecord entity by its id.
func (c *BlobRecordClient) Get(ctx context.Context, id string) (*BlobRecord, error) {
	return c.Query().Where(blobrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlobRecordClient) GetX(ctx context.Context, id string) *BlobRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlobRecordClient) Hooks() []Hook {
	return c.hooks.BlobRecord
}

// Interceptors returns the client interceptors.
func (c *BlobRecordClient) Interceptors() []Interceptor {
	return c.inters.BlobRecord
}

func (c *BlobRecordClient) mutate(ctx context.Context, m *BlobRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlobRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlobRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlobRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlobRecord mutation op: %q", m.Op())
	}
}

// BufferEntryClient is a client for the BufferEntry schema.
type BufferEntryClient struct {
	config
}

// NewBufferEntryClient returns a client for the BufferEntry from the given config.
func NewBufferEntryClient(c config) *BufferEntryClient {
	return &BufferEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bufferentry.Hooks(f(g(h())))`.
func (c *BufferEntryClient) Use(hooks ...Hook) {
	c.hooks.BufferEntry = append(c.hooks.BufferEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bufferentry.Intercept(f(g(h())))`.
func (c *BufferEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.BufferEntry = append(c.inters.BufferEntry, interceptors...)
}

// Create returns a builder for creating a BufferEntry entity.
func (c *BufferEntryClient) Create() *BufferEntryCreate {
	mutation := newBufferEntryMutation(c.config, OpCreate)
	return &BufferEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BufferEntry entities.
func (c *BufferEntryClient) CreateBulk(builders ...*BufferEntryCreate) *BufferEntryCreateBulk {
	return &BufferEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BufferEntryClient) MapCreateBulk(slice any, setFunc func(*BufferEntryCreate, int)) *BufferEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BufferEntryCreateBulk{err: fmt.Errorf("calling to BufferEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BufferEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BufferEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BufferEntry.
func (c *BufferEntryClient) Update() *BufferEntryUpdate {
	mutation := newBufferEntryMutation(c.config, OpUpdate)
	return &BufferEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BufferEntryClient) UpdateOne(_m *BufferEntry) *BufferEntryUpdateOne {
	mutation := newBufferEntryMutation(c.config, OpUpdateOne, withBufferEntry(_m))
	return &BufferEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BufferEntryClient) UpdateOneID(id string) *BufferEntryUpdateOne {
	mutation := newBufferEntryMutation(c.config, OpUpdateOne, withBufferEntryID(id))
	return &BufferEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BufferEntry.
func (c *BufferEntryClient) Delete() *BufferEntryDelete {
	mutation := newBufferEntryMutation(c.config, OpDelete)
	return &BufferEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BufferEntryClient) DeleteOne(_m *BufferEntry) *BufferEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BufferEntryClient) DeleteOneID(id string) *BufferEntryDeleteOne {
	builder := c.Delete().Where(bufferentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BufferEntryDeleteOne{builder}
}

// Query returns a query builder for BufferEntry.
func (c *BufferEntryClient) Query() *BufferEntryQuery {
	return &BufferEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBufferEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a BufferEntry entity by its id.
func (c *BufferEntryClient) Get(ctx context.Context, id string) (*BufferEntry, error) {
	return c.Query().Where(bufferentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BufferEntryClient) GetX(ctx context.Context, id string) *BufferEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BufferEntryClient) Hooks() []Hook {
	return c.hooks.BufferEntry
}

// Interceptors returns the client interceptors.
func (c *BufferEntryClient) Interceptors() []Interceptor {
	return c.inters.BufferEntry
}

func (c *BufferEntryClient) mutate(ctx context.Context, m *BufferEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BufferEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BufferEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BufferEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BufferEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BufferEntry mutation op: %q", m.Op())
	}
}

// EventGistClient is a client for the EventGist schema.
type EventGistClient struct {
	config
}

// NewEventGistClient returns a client for the EventGist from the given config.
func NewEventGistClient(c config) *EventGistClient {
	return &EventGistClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventgist.Hooks(f(g(h())))`.
func (c *EventGistClient) Use(hooks ...Hook) {
	c.hooks.EventGist = append(c.hooks.EventGist, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventgist.Intercept(f(g(h())))`.
func (c *EventGistClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventGist = append(c.inters.EventGist, interceptors...)
}

// Create returns a builder for creating a EventGist entity.
func (c *EventGistClient) Create() *EventGistCreate {
	mutation := newEventGistMutation(c.config, OpCreate)
	return &EventGistCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventGist entities.
func (c *EventGistClient) CreateBulk(builders ...*EventGistCreate) *EventGistCreateBulk {
	return &EventGistCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventGistClient) MapCreateBulk(slice any, setFunc func(*EventGistCreate, int)) *EventGistCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventGistCreateBulk{err: fmt.Errorf("calling to EventGistClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventGistCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventGistCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventGist.
func (c *EventGistClient) Update() *EventGistUpdate {
	mutation := newEventGistMutation(c.config, OpUpdate)
	return &EventGistUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventGistClient) UpdateOne(_m *EventGist) *EventGistUpdateOne {
	mutation := newEventGistMutation(c.config, OpUpdateOne, withEventGist(_m))
	return &EventGistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventGistClient) UpdateOneID(id string) *EventGistUpdateOne {
	mutation := newEventGistMutation(c.config, OpUpdateOne, withEventGistID(id))
	return &EventGistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventGist.
func (c *EventGistClient) Delete() *EventGistDelete {
	mutation := newEventGistMutation(c.config, OpDelete)
	return &EventGistDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventGistClient) DeleteOne(_m *EventGist) *EventGistDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventGistClient) DeleteOneID(id string) *EventGistDeleteOne {
	builder := c.Delete().Where(eventgist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventGistDeleteOne{builder}
}

// Query returns a query builder for EventGist.
func (c *EventGistClient) Query() *EventGistQuery {
	return &EventGistQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventGist},
		inters: c.Interceptors(),
	}
}

// Get returns a EventGist entity by its id.
func (c *EventGistClient) Get(ctx context.Context, id string) (*EventGist, error) {
	return c.Query().Where(eventgist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventGistClient) GetX(ctx context.Context, id string) *EventGist {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a EventGist.
func (c *EventGistClient) QueryEvent(_m *EventGist) *MemoryEventQuery {
	query := (&MemoryEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventgist.Table, eventgist.FieldID, id),
			sqlgraph.To(memoryevent.Table, memoryevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventgist.EventTable, eventgist.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventGistClient) Hooks() []Hook {
	return c.hooks.EventGist
}

// Interceptors returns the client interceptors.
func (c *EventGistClient) Interceptors() []Interceptor {
	return c.inters.EventGist
}

func (c *EventGistClient) mutate(ctx context.Context, m *EventGistMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventGistCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventGistUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventGistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventGistDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventGist mutation op: %q", m.Op())
	}
}

// MemoryEventClient is a client for the MemoryEvent schema.
type MemoryEventClient struct {
	config
}

// NewMemoryEventClient returns a client for the MemoryEvent from the given config.
func NewMemoryEventClient(c config) *MemoryEventClient {
	return &MemoryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryevent.Hooks(f(g(h())))`.
func (c *MemoryEventClient) Use(hooks ...Hook) {
	c.hooks.MemoryEvent = append(c.hooks.MemoryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryevent.Intercept(f(g(h())))`.
func (c *MemoryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryEvent = append(c.inters.MemoryEvent, interceptors...)
}

// Create returns a builder for creating a MemoryEvent entity.
func (c *MemoryEventClient) Create() *MemoryEventCreate {
	mutation := newMemoryEventMutation(c.config, OpCreate)
	return &MemoryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryEvent entities.
func (c *MemoryEventClient) CreateBulk(builders ...*MemoryEventCreate) *MemoryEventCreateBulk {
	return &MemoryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryEventClient) MapCreateBulk(slice any, setFunc func(*MemoryEventCreate, int)) *MemoryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryEventCreateBulk{err: fmt.Errorf("calling to MemoryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryEvent.
func (c *MemoryEventClient) Update() *MemoryEventUpdate {
	mutation := newMemoryEventMutation(c.config, OpUpdate)
	return &MemoryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryEventClient) UpdateOne(_m *MemoryEvent) *MemoryEventUpdateOne {
	mutation := newMemoryEventMutation(c.config, OpUpdateOne, withMemoryEvent(_m))
	return &MemoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryEventClient) UpdateOneID(id string) *MemoryEventUpdateOne {
	mutation := newMemoryEventMutation(c.config, OpUpdateOne, withMemoryEventID(id))
	return &MemoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryEvent.
func (c *MemoryEventClient) Delete() *MemoryEventDelete {
	mutation := newMemoryEventMutation(c.config, OpDelete)
	return &MemoryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryEventClient) DeleteOne(_m *MemoryEvent) *MemoryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryEventClient) DeleteOneID(id string) *MemoryEventDeleteOne {
	builder := c.Delete().Where(memoryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryEventDeleteOne{builder}
}

// Query returns a query builder for MemoryEvent.
func (c *MemoryEventClient) Query() *MemoryEventQuery {
	return &MemoryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryEvent entity by its id.
func (c *MemoryEventClient) Get(ctx context.Context, id string) (*MemoryEvent, error) {
	return c.Query().Where(memoryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryEventClient) GetX(ctx context.Context, id string) *MemoryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGists queries the gists edge of a MemoryEvent.
func (c *MemoryEventClient) QueryGists(_m *MemoryEvent) *EventGistQuery {
	query := (&EventGistClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryevent.Table, memoryevent.FieldID, id),
			sqlgraph.To(eventgist.Table, eventgist.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, memoryevent.GistsTable, memoryevent.GistsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemoryEventClient) Hooks() []Hook {
	return c.hooks.MemoryEvent
}

// Interceptors returns the client interceptors.
func (c *MemoryEventClient) Interceptors() []Interceptor {
	return c.inters.MemoryEvent
}

func (c *MemoryEventClient) mutate(ctx context.Context, m *MemoryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryEvent mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id string) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id string) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id string) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id string) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BlobRecord, BufferEntry, EventGist, MemoryEvent, UserProfile []ent.Hook
	}
	inters struct {
		BlobRecord, BufferEntry, EventGist, MemoryEvent, UserProfile []ent.Interceptor
	}
)
