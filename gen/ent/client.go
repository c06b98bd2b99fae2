// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/orderkyat/orderkyat/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/orderkyat/orderkyat/gen/ent/invoicedraft"
	"github.com/orderkyat/orderkyat/gen/ent/invoicesequence"
	"github.com/orderkyat/orderkyat/gen/ent/storeprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// InvoiceDraft is the client for interacting with the InvoiceDraft builders.
	InvoiceDraft *InvoiceDraftClient
	// InvoiceSequence is the client for interacting with the InvoiceSequence builders.
	InvoiceSequence *InvoiceSequenceClient
	// StoreProfile is the client for interacting with the StoreProfile builders.
	StoreProfile *StoreProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.InvoiceDraft = NewInvoiceDraftClient(c.config)
	c.InvoiceSequence = NewInvoiceSequenceClient(c.config)
	c.StoreProfile = NewStoreProfileClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		InvoiceDraft:    NewInvoiceDraftClient(cfg),
		InvoiceSequence: NewInvoiceSequenceClient(cfg),
		StoreProfile:    NewStoreProfileClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		InvoiceDraft:    NewInvoiceDraftClient(cfg),
		InvoiceSequence: NewInvoiceSequenceClient(cfg),
		StoreProfile:    NewStoreProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		InvoiceDraft.
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
	c.InvoiceDraft.Use(hooks...)
	c.InvoiceSequence.Use(hooks...)
	c.StoreProfile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.InvoiceDraft.Intercept(interceptors...)
	c.InvoiceSequence.Intercept(interceptors...)
	c.StoreProfile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InvoiceDraftMutation:
		return c.InvoiceDraft.mutate(ctx, m)
	case *InvoiceSequenceMutation:
		return c.InvoiceSequence.mutate(ctx, m)
	case *StoreProfileMutation:
		return c.StoreProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InvoiceDraftClient is a client for the InvoiceDraft schema.
type InvoiceDraftClient struct {
	config
}

// NewInvoiceDraftClient returns a client for the InvoiceDraft from the given config.
func NewInvoiceDraftClient(c config) *InvoiceDraftClient {
	return &InvoiceDraftClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoicedraft.Hooks(f(g(h())))`.
func (c *InvoiceDraftClient) Use(hooks ...Hook) {
	c.hooks.InvoiceDraft = append(c.hooks.InvoiceDraft, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoicedraft.Intercept(f(g(h())))`.
func (c *InvoiceDraftClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceDraft = append(c.inters.InvoiceDraft, interceptors...)
}

// Create returns a builder for creating a InvoiceDraft entity.
func (c *InvoiceDraftClient) Create() *InvoiceDraftCreate {
	mutation := newInvoiceDraftMutation(c.config, OpCreate)
	return &InvoiceDraftCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceDraft entities.
func (c *InvoiceDraftClient) CreateBulk(builders ...*InvoiceDraftCreate) *InvoiceDraftCreateBulk {
	return &InvoiceDraftCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceDraftClient) MapCreateBulk(slice any, setFunc func(*InvoiceDraftCreate, int)) *InvoiceDraftCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceDraftCreateBulk{err: fmt.Errorf("calling to InvoiceDraftClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceDraftCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceDraftCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceDraft.
func (c *InvoiceDraftClient) Update() *InvoiceDraftUpdate {
	mutation := newInvoiceDraftMutation(c.config, OpUpdate)
	return &InvoiceDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceDraftClient) UpdateOne(_m *InvoiceDraft) *InvoiceDraftUpdateOne {
	mutation := newInvoiceDraftMutation(c.config, OpUpdateOne, withInvoiceDraft(_m))
	return &InvoiceDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceDraftClient) UpdateOneID(id uuid.UUID) *InvoiceDraftUpdateOne {
	mutation := newInvoiceDraftMutation(c.config, OpUpdateOne, withInvoiceDraftID(id))
	return &InvoiceDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceDraft.
func (c *InvoiceDraftClient) Delete() *InvoiceDraftDelete {
	mutation := newInvoiceDraftMutation(c.config, OpDelete)
	return &InvoiceDraftDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceDraftClient) DeleteOne(_m *InvoiceDraft) *InvoiceDraftDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceDraftClient) DeleteOneID(id uuid.UUID) *InvoiceDraftDeleteOne {
	builder := c.Delete().Where(invoicedraft.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceDraftDeleteOne{builder}
}

// Query returns a query builder for InvoiceDraft.
func (c *InvoiceDraftClient) Query() *InvoiceDraftQuery {
	return &InvoiceDraftQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceDraft},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceDraft entity by its id.
func (c *InvoiceDraftClient) Get(ctx context.Context, id uuid.UUID) (*InvoiceDraft, error) {
	return c.Query().Where(invoicedraft.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceDraftClient) GetX(ctx context.Context, id uuid.UUID) *InvoiceDraft {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InvoiceDraftClient) Hooks() []Hook {
	return c.hooks.InvoiceDraft
}

// Interceptors returns the client interceptors.
func (c *InvoiceDraftClient) Interceptors() []Interceptor {
	return c.inters.InvoiceDraft
}

func (c *InvoiceDraftClient) mutate(ctx context.Context, m *InvoiceDraftMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceDraftCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceDraftDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceDraft mutation op: %q", m.Op())
	}
}

// InvoiceSequenceClient is a client for the InvoiceSequence schema.
type InvoiceSequenceClient struct {
	config
}

// NewInvoiceSequenceClient returns a client for the InvoiceSequence from the given config.
func NewInvoiceSequenceClient(c config) *InvoiceSequenceClient {
	return &InvoiceSequenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoicesequence.Hooks(f(g(h())))`.
func (c *InvoiceSequenceClient) Use(hooks ...Hook) {
	c.hooks.InvoiceSequence = append(c.hooks.InvoiceSequence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoicesequence.Intercept(f(g(h())))`.
func (c *InvoiceSequenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceSequence = append(c.inters.InvoiceSequence, interceptors...)
}

// Create returns a builder for creating a InvoiceSequence entity.
func (c *InvoiceSequenceClient) Create() *InvoiceSequenceCreate {
	mutation := newInvoiceSequenceMutation(c.config, OpCreate)
	return &InvoiceSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceSequence entities.
func (c *InvoiceSequenceClient) CreateBulk(builders ...*InvoiceSequenceCreate) *InvoiceSequenceCreateBulk {
	return &InvoiceSequenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceSequenceClient) MapCreateBulk(slice any, setFunc func(*InvoiceSequenceCreate, int)) *InvoiceSequenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceSequenceCreateBulk{err: fmt.Errorf("calling to InvoiceSequenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceSequenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceSequenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceSequence.
func (c *InvoiceSequenceClient) Update() *InvoiceSequenceUpdate {
	mutation := newInvoiceSequenceMutation(c.config, OpUpdate)
	return &InvoiceSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceSequenceClient) UpdateOne(_m *InvoiceSequence) *InvoiceSequenceUpdateOne {
	mutation := newInvoiceSequenceMutation(c.config, OpUpdateOne, withInvoiceSequence(_m))
	return &InvoiceSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceSequenceClient) UpdateOneID(id int) *InvoiceSequenceUpdateOne {
	mutation := newInvoiceSequenceMutation(c.config, OpUpdateOne, withInvoiceSequenceID(id))
	return &InvoiceSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceSequence.
func (c *InvoiceSequenceClient) Delete() *InvoiceSequenceDelete {
	mutation := newInvoiceSequenceMutation(c.config, OpDelete)
	return &InvoiceSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceSequenceClient) DeleteOne(_m *InvoiceSequence) *InvoiceSequenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceSequenceClient) DeleteOneID(id int) *InvoiceSequenceDeleteOne {
	builder := c.Delete().Where(invoicesequence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceSequenceDeleteOne{builder}
}

// Query returns a query builder for InvoiceSequence.
func (c *InvoiceSequenceClient) Query() *InvoiceSequenceQuery {
	return &InvoiceSequenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceSequence},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceSequence entity by its id.
func (c *InvoiceSequenceClient) Get(ctx context.Context, id int) (*InvoiceSequence, error) {
	return c.Query().Where(invoicesequence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceSequenceClient) GetX(ctx context.Context, id int) *InvoiceSequence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InvoiceSequenceClient) Hooks() []Hook {
	return c.hooks.InvoiceSequence
}

// Interceptors returns the client interceptors.
func (c *InvoiceSequenceClient) Interceptors() []Interceptor {
	return c.inters.InvoiceSequence
}

func (c *InvoiceSequenceClient) mutate(ctx context.Context, m *InvoiceSequenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceSequence mutation op: %q", m.Op())
	}
}

// StoreProfileClient is a client for the StoreProfile schema.
type StoreProfileClient struct {
	config
}

// NewStoreProfileClient returns a client for the StoreProfile from the given config.
func NewStoreProfileClient(c config) *StoreProfileClient {
	return &StoreProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `storeprofile.Hooks(f(g(h())))`.
func (c *StoreProfileClient) Use(hooks ...Hook) {
	c.hooks.StoreProfile = append(c.hooks.StoreProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `storeprofile.Intercept(f(g(h())))`.
func (c *StoreProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.StoreProfile = append(c.inters.StoreProfile, interceptors...)
}

// Create returns a builder for creating a StoreProfile entity.
func (c *StoreProfileClient) Create() *StoreProfileCreate {
	mutation := newStoreProfileMutation(c.config, OpCreate)
	return &StoreProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StoreProfile entities.
func (c *StoreProfileClient) CreateBulk(builders ...*StoreProfileCreate) *StoreProfileCreateBulk {
	return &StoreProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StoreProfileClient) MapCreateBulk(slice any, setFunc func(*StoreProfileCreate, int)) *StoreProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StoreProfileCreateBulk{err: fmt.Errorf("calling to StoreProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StoreProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StoreProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StoreProfile.
func (c *StoreProfileClient) Update() *StoreProfileUpdate {
	mutation := newStoreProfileMutation(c.config, OpUpdate)
	return &StoreProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StoreProfileClient) UpdateOne(_m *StoreProfile) *StoreProfileUpdateOne {
	mutation := newStoreProfileMutation(c.config, OpUpdateOne, withStoreProfile(_m))
	return &StoreProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StoreProfileClient) UpdateOneID(id uuid.UUID) *StoreProfileUpdateOne {
	mutation := newStoreProfileMutation(c.config, OpUpdateOne, withStoreProfileID(id))
	return &StoreProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StoreProfile.
func (c *StoreProfileClient) Delete() *StoreProfileDelete {
	mutation := newStoreProfileMutation(c.config, OpDelete)
	return &StoreProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StoreProfileClient) DeleteOne(_m *StoreProfile) *StoreProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StoreProfileClient) DeleteOneID(id uuid.UUID) *StoreProfileDeleteOne {
	builder := c.Delete().Where(storeprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StoreProfileDeleteOne{builder}
}

// Query returns a query builder for StoreProfile.
func (c *StoreProfileClient) Query() *StoreProfileQuery {
	return &StoreProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStoreProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a StoreProfile entity by its id.
func (c *StoreProfileClient) Get(ctx context.Context, id uuid.UUID) (*StoreProfile, error) {
	return c.Query().Where(storeprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StoreProfileClient) GetX(ctx context.Context, id uuid.UUID) *StoreProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StoreProfileClient) Hooks() []Hook {
	return c.hooks.StoreProfile
}

// Interceptors returns the client interceptors.
func (c *StoreProfileClient) Interceptors() []Interceptor {
	return c.inters.StoreProfile
}

func (c *StoreProfileClient) mutate(ctx context.Context, m *StoreProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StoreProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StoreProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StoreProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StoreProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StoreProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		InvoiceDraft, InvoiceSequence, StoreProfile []ent.Hook
	}
	inters struct {
		InvoiceDraft, InvoiceSequence, StoreProfile []ent.Interceptor
	}
)
