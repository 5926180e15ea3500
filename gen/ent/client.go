// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fiskaldesk/belegwerk/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fiskaldesk/belegwerk/gen/ent/belegrecord"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/fiskaldesk/belegwerk/gen/ent/vendorpattern"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BelegRecord is the client for interacting with the BelegRecord builders.
	BelegRecord *BelegRecordClient
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// VendorPattern is the client for interacting with the VendorPattern builders.
	VendorPattern *VendorPatternClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BelegRecord = NewBelegRecordClient(c.config)
	c.Company = NewCompanyClient(c.config)
	c.VendorPattern = NewVendorPatternClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		BelegRecord:   NewBelegRecordClient(cfg),
		Company:       NewCompanyClient(cfg),
		VendorPattern: NewVendorPatternClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		BelegRecord:   NewBelegRecordClient(cfg),
		Company:       NewCompanyClient(cfg),
		VendorPattern: NewVendorPatternClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BelegRecord.
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
	c.BelegRecord.Use(hooks...)
	c.Company.Use(hooks...)
	c.VendorPattern.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BelegRecord.Intercept(interceptors...)
	c.Company.Intercept(interceptors...)
	c.VendorPattern.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BelegRecordMutation:
		return c.BelegRecord.mutate(ctx, m)
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *VendorPatternMutation:
		return c.VendorPattern.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BelegRecordClient is a client for the BelegRecord schema.
type BelegRecordClient struct {
	config
}

// NewBelegRecordClient returns a client for the BelegRecord from the given config.
func NewBelegRecordClient(c config) *BelegRecordClient {
	return &BelegRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `belegrecord.Hooks(f(g(h())))`.
func (c *BelegRecordClient) Use(hooks ...Hook) {
	c.hooks.BelegRecord = append(c.hooks.BelegRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `belegrecord.Intercept(f(g(h())))`.
func (c *BelegRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.BelegRecord = append(c.inters.BelegRecord, interceptors...)
}

// Create returns a builder for creating a BelegRecord entity.
func (c *BelegRecordClient) Create() *BelegRecordCreate {
	mutation := newBelegRecordMutation(c.config, OpCreate)
	return &BelegRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BelegRecord entities.
func (c *BelegRecordClient) CreateBulk(builders ...*BelegRecordCreate) *BelegRecordCreateBulk {
	return &BelegRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BelegRecordClient) MapCreateBulk(slice any, setFunc func(*BelegRecordCreate, int)) *BelegRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BelegRecordCreateBulk{err: fmt.Errorf("calling to BelegRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BelegRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BelegRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BelegRecord.
func (c *BelegRecordClient) Update() *BelegRecordUpdate {
	mutation := newBelegRecordMutation(c.config, OpUpdate)
	return &BelegRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BelegRecordClient) UpdateOne(_m *BelegRecord) *BelegRecordUpdateOne {
	mutation := newBelegRecordMutation(c.config, OpUpdateOne, withBelegRecord(_m))
	return &BelegRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BelegRecordClient) UpdateOneID(id uuid.UUID) *BelegRecordUpdateOne {
	mutation := newBelegRecordMutation(c.config, OpUpdateOne, withBelegRecordID(id))
	return &BelegRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BelegRecord.
func (c *BelegRecordClient) Delete() *BelegRecordDelete {
	mutation := newBelegRecordMutation(c.config, OpDelete)
	return &BelegRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BelegRecordClient) DeleteOne(_m *BelegRecord) *BelegRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BelegRecordClient) DeleteOneID(id uuid.UUID) *BelegRecordDeleteOne {
	builder := c.Delete().Where(belegrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BelegRecordDeleteOne{builder}
}

// Query returns a query builder for BelegRecord.
func (c *BelegRecordClient) Query() *BelegRecordQuery {
	return &BelegRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBelegRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a BelegRecord entity by its id.
func (c *BelegRecordClient) Get(ctx context.Context, id uuid.UUID) (*BelegRecord, error) {
	return c.Query().Where(belegrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BelegRecordClient) GetX(ctx context.Context, id uuid.UUID) *BelegRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a BelegRecord.
func (c *BelegRecordClient) QueryCompany(_m *BelegRecord) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(belegrecord.Table, belegrecord.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, belegrecord.CompanyTable, belegrecord.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BelegRecordClient) Hooks() []Hook {
	return c.hooks.BelegRecord
}

// Interceptors returns the client interceptors.
func (c *BelegRecordClient) Interceptors() []Interceptor {
	return c.inters.BelegRecord
}

func (c *BelegRecordClient) mutate(ctx context.Context, m *BelegRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BelegRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BelegRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BelegRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BelegRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BelegRecord mutation op: %q", m.Op())
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id uuid.UUID) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id uuid.UUID) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id uuid.UUID) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecords queries the records edge of a Company.
func (c *CompanyClient) QueryRecords(_m *Company) *BelegRecordQuery {
	query := (&BelegRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(belegrecord.Table, belegrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.RecordsTable, company.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPatterns queries the patterns edge of a Company.
func (c *CompanyClient) QueryPatterns(_m *Company) *VendorPatternQuery {
	query := (&VendorPatternClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(vendorpattern.Table, vendorpattern.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.PatternsTable, company.PatternsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// VendorPatternClient is a client for the VendorPattern schema.
type VendorPatternClient struct {
	config
}

// NewVendorPatternClient returns a client for the VendorPattern from the given config.
func NewVendorPatternClient(c config) *VendorPatternClient {
	return &VendorPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vendorpattern.Hooks(f(g(h())))`.
func (c *VendorPatternClient) Use(hooks ...Hook) {
	c.hooks.VendorPattern = append(c.hooks.VendorPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vendorpattern.Intercept(f(g(h())))`.
func (c *VendorPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.VendorPattern = append(c.inters.VendorPattern, interceptors...)
}

// Create returns a builder for creating a VendorPattern entity.
func (c *VendorPatternClient) Create() *VendorPatternCreate {
	mutation := newVendorPatternMutation(c.config, OpCreate)
	return &VendorPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VendorPattern entities.
func (c *VendorPatternClient) CreateBulk(builders ...*VendorPatternCreate) *VendorPatternCreateBulk {
	return &VendorPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VendorPatternClient) MapCreateBulk(slice any, setFunc func(*VendorPatternCreate, int)) *VendorPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VendorPatternCreateBulk{err: fmt.Errorf("calling to VendorPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VendorPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VendorPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VendorPattern.
func (c *VendorPatternClient) Update() *VendorPatternUpdate {
	mutation := newVendorPatternMutation(c.config, OpUpdate)
	return &VendorPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VendorPatternClient) UpdateOne(_m *VendorPattern) *VendorPatternUpdateOne {
	mutation := newVendorPatternMutation(c.config, OpUpdateOne, withVendorPattern(_m))
	return &VendorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VendorPatternClient) UpdateOneID(id uuid.UUID) *VendorPatternUpdateOne {
	mutation := newVendorPatternMutation(c.config, OpUpdateOne, withVendorPatternID(id))
	return &VendorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VendorPattern.
func (c *VendorPatternClient) Delete() *VendorPatternDelete {
	mutation := newVendorPatternMutation(c.config, OpDelete)
	return &VendorPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VendorPatternClient) DeleteOne(_m *VendorPattern) *VendorPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VendorPatternClient) DeleteOneID(id uuid.UUID) *VendorPatternDeleteOne {
	builder := c.Delete().Where(vendorpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VendorPatternDeleteOne{builder}
}

// Query returns a query builder for VendorPattern.
func (c *VendorPatternClient) Query() *VendorPatternQuery {
	return &VendorPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVendorPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a VendorPattern entity by its id.
func (c *VendorPatternClient) Get(ctx context.Context, id uuid.UUID) (*VendorPattern, error) {
	return c.Query().Where(vendorpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VendorPatternClient) GetX(ctx context.Context, id uuid.UUID) *VendorPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a VendorPattern.
func (c *VendorPatternClient) QueryCompany(_m *VendorPattern) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vendorpattern.Table, vendorpattern.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, vendorpattern.CompanyTable, vendorpattern.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VendorPatternClient) Hooks() []Hook {
	return c.hooks.VendorPattern
}

// Interceptors returns the client interceptors.
func (c *VendorPatternClient) Interceptors() []Interceptor {
	return c.inters.VendorPattern
}

func (c *VendorPatternClient) mutate(ctx context.Context, m *VendorPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VendorPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VendorPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VendorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VendorPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VendorPattern mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BelegRecord, Company, VendorPattern []ent.Hook
	}
	inters struct {
		BelegRecord, Company, VendorPattern []ent.Interceptor
	}
)
