// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jmarlow/hamprep/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/attempt"
	"github.com/jmarlow/hamprep/ent/badgeunlock"
	"github.com/jmarlow/hamprep/ent/dailyactivity"
	"github.com/jmarlow/hamprep/ent/examattempt"
	"github.com/jmarlow/hamprep/ent/readinesssnapshot"
	"github.com/jmarlow/hamprep/ent/telemetryevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// BadgeUnlock is the client for interacting with the BadgeUnlock builders.
	BadgeUnlock *BadgeUnlockClient
	// DailyActivity is the client for interacting with the DailyActivity builders.
	DailyActivity *DailyActivityClient
	// ExamAttempt is the client for interacting with the ExamAttempt builders.
	ExamAttempt *ExamAttemptClient
	// ReadinessSnapshot is the client for interacting with the ReadinessSnapshot builders.
	ReadinessSnapshot *ReadinessSnapshotClient
	// TelemetryEvent is the client for interacting with the TelemetryEvent builders.
	TelemetryEvent *TelemetryEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attempt = NewAttemptClient(c.config)
	c.BadgeUnlock = NewBadgeUnlockClient(c.config)
	c.DailyActivity = NewDailyActivityClient(c.config)
	c.ExamAttempt = NewExamAttemptClient(c.config)
	c.ReadinessSnapshot = NewReadinessSnapshotClient(c.config)
	c.TelemetryEvent = NewTelemetryEventClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Attempt:           NewAttemptClient(cfg),
		BadgeUnlock:       NewBadgeUnlockClient(cfg),
		DailyActivity:     NewDailyActivityClient(cfg),
		ExamAttempt:       NewExamAttemptClient(cfg),
		ReadinessSnapshot: NewReadinessSnapshotClient(cfg),
		TelemetryEvent:    NewTelemetryEventClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Attempt:           NewAttemptClient(cfg),
		BadgeUnlock:       NewBadgeUnlockClient(cfg),
		DailyActivity:     NewDailyActivityClient(cfg),
		ExamAttempt:       NewExamAttemptClient(cfg),
		ReadinessSnapshot: NewReadinessSnapshotClient(cfg),
		TelemetryEvent:    NewTelemetryEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attempt.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Attempt, c.BadgeUnlock, c.DailyActivity, c.ExamAttempt, c.ReadinessSnapshot,
		c.TelemetryEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.BadgeUnlock, c.DailyActivity, c.ExamAttempt, c.ReadinessSnapshot,
		c.TelemetryEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *BadgeUnlockMutation:
		return c.BadgeUnlock.mutate(ctx, m)
	case *DailyActivityMutation:
		return c.DailyActivity.mutate(ctx, m)
	case *ExamAttemptMutation:
		return c.ExamAttempt.mutate(ctx, m)
	case *ReadinessSnapshotMutation:
		return c.ReadinessSnapshot.mutate(ctx, m)
	case *TelemetryEventMutation:
		return c.TelemetryEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id int) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id int) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id int) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id int) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// BadgeUnlockClient is a client for the BadgeUnlock schema.
type BadgeUnlockClient struct {
	config
}

// NewBadgeUnlockClient returns a client for the BadgeUnlock from the given config.
func NewBadgeUnlockClient(c config) *BadgeUnlockClient {
	return &BadgeUnlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badgeunlock.Hooks(f(g(h())))`.
func (c *BadgeUnlockClient) Use(hooks ...Hook) {
	c.hooks.BadgeUnlock = append(c.hooks.BadgeUnlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badgeunlock.Intercept(f(g(h())))`.
func (c *BadgeUnlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.BadgeUnlock = append(c.inters.BadgeUnlock, interceptors...)
}

// Create returns a builder for creating a BadgeUnlock entity.
func (c *BadgeUnlockClient) Create() *BadgeUnlockCreate {
	mutation := newBadgeUnlockMutation(c.config, OpCreate)
	return &BadgeUnlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BadgeUnlock entities.
func (c *BadgeUnlockClient) CreateBulk(builders ...*BadgeUnlockCreate) *BadgeUnlockCreateBulk {
	return &BadgeUnlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeUnlockClient) MapCreateBulk(slice any, setFunc func(*BadgeUnlockCreate, int)) *BadgeUnlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeUnlockCreateBulk{err: fmt.Errorf("calling to BadgeUnlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeUnlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeUnlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BadgeUnlock.
func (c *BadgeUnlockClient) Update() *BadgeUnlockUpdate {
	mutation := newBadgeUnlockMutation(c.config, OpUpdate)
	return &BadgeUnlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeUnlockClient) UpdateOne(_m *BadgeUnlock) *BadgeUnlockUpdateOne {
	mutation := newBadgeUnlockMutation(c.config, OpUpdateOne, withBadgeUnlock(_m))
	return &BadgeUnlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeUnlockClient) UpdateOneID(id int) *BadgeUnlockUpdateOne {
	mutation := newBadgeUnlockMutation(c.config, OpUpdateOne, withBadgeUnlockID(id))
	return &BadgeUnlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BadgeUnlock.
func (c *BadgeUnlockClient) Delete() *BadgeUnlockDelete {
	mutation := newBadgeUnlockMutation(c.config, OpDelete)
	return &BadgeUnlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeUnlockClient) DeleteOne(_m *BadgeUnlock) *BadgeUnlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeUnlockClient) DeleteOneID(id int) *BadgeUnlockDeleteOne {
	builder := c.Delete().Where(badgeunlock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeUnlockDeleteOne{builder}
}

// Query returns a query builder for BadgeUnlock.
func (c *BadgeUnlockClient) Query() *BadgeUnlockQuery {
	return &BadgeUnlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadgeUnlock},
		inters: c.Interceptors(),
	}
}

// Get returns a BadgeUnlock entity by its id.
func (c *BadgeUnlockClient) Get(ctx context.Context, id int) (*BadgeUnlock, error) {
	return c.Query().Where(badgeunlock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeUnlockClient) GetX(ctx context.Context, id int) *BadgeUnlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BadgeUnlockClient) Hooks() []Hook {
	return c.hooks.BadgeUnlock
}

// Interceptors returns the client interceptors.
func (c *BadgeUnlockClient) Interceptors() []Interceptor {
	return c.inters.BadgeUnlock
}

func (c *BadgeUnlockClient) mutate(ctx context.Context, m *BadgeUnlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeUnlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeUnlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeUnlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeUnlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BadgeUnlock mutation op: %q", m.Op())
	}
}

// DailyActivityClient is a client for the DailyActivity schema.
type DailyActivityClient struct {
	config
}

// NewDailyActivityClient returns a client for the DailyActivity from the given config.
func NewDailyActivityClient(c config) *DailyActivityClient {
	return &DailyActivityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dailyactivity.Hooks(f(g(h())))`.
func (c *DailyActivityClient) Use(hooks ...Hook) {
	c.hooks.DailyActivity = append(c.hooks.DailyActivity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dailyactivity.Intercept(f(g(h())))`.
func (c *DailyActivityClient) Intercept(interceptors ...Interceptor) {
	c.inters.DailyActivity = append(c.inters.DailyActivity, interceptors...)
}

// Create returns a builder for creating a DailyActivity entity.
func (c *DailyActivityClient) Create() *DailyActivityCreate {
	mutation := newDailyActivityMutation(c.config, OpCreate)
	return &DailyActivityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DailyActivity entities.
func (c *DailyActivityClient) CreateBulk(builders ...*DailyActivityCreate) *DailyActivityCreateBulk {
	return &DailyActivityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DailyActivityClient) MapCreateBulk(slice any, setFunc func(*DailyActivityCreate, int)) *DailyActivityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DailyActivityCreateBulk{err: fmt.Errorf("calling to DailyActivityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DailyActivityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DailyActivityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DailyActivity.
func (c *DailyActivityClient) Update() *DailyActivityUpdate {
	mutation := newDailyActivityMutation(c.config, OpUpdate)
	return &DailyActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DailyActivityClient) UpdateOne(_m *DailyActivity) *DailyActivityUpdateOne {
	mutation := newDailyActivityMutation(c.config, OpUpdateOne, withDailyActivity(_m))
	return &DailyActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DailyActivityClient) UpdateOneID(id int) *DailyActivityUpdateOne {
	mutation := newDailyActivityMutation(c.config, OpUpdateOne, withDailyActivityID(id))
	return &DailyActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DailyActivity.
func (c *DailyActivityClient) Delete() *DailyActivityDelete {
	mutation := newDailyActivityMutation(c.config, OpDelete)
	return &DailyActivityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DailyActivityClient) DeleteOne(_m *DailyActivity) *DailyActivityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DailyActivityClient) DeleteOneID(id int) *DailyActivityDeleteOne {
	builder := c.Delete().Where(dailyactivity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DailyActivityDeleteOne{builder}
}

// Query returns a query builder for DailyActivity.
func (c *DailyActivityClient) Query() *DailyActivityQuery {
	return &DailyActivityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDailyActivity},
		inters: c.Interceptors(),
	}
}

// Get returns a DailyActivity entity by its id.
func (c *DailyActivityClient) Get(ctx context.Context, id int) (*DailyActivity, error) {
	return c.Query().Where(dailyactivity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DailyActivityClient) GetX(ctx context.Context, id int) *DailyActivity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DailyActivityClient) Hooks() []Hook {
	return c.hooks.DailyActivity
}

// Interceptors returns the client interceptors.
func (c *DailyActivityClient) Interceptors() []Interceptor {
	return c.inters.DailyActivity
}

func (c *DailyActivityClient) mutate(ctx context.Context, m *DailyActivityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DailyActivityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DailyActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DailyActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DailyActivityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DailyActivity mutation op: %q", m.Op())
	}
}

// ExamAttemptClient is a client for the ExamAttempt schema.
type ExamAttemptClient struct {
	config
}

// NewExamAttemptClient returns a client for the ExamAttempt from the given config.
func NewExamAttemptClient(c config) *ExamAttemptClient {
	return &ExamAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examattempt.Hooks(f(g(h())))`.
func (c *ExamAttemptClient) Use(hooks ...Hook) {
	c.hooks.ExamAttempt = append(c.hooks.ExamAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examattempt.Intercept(f(g(h())))`.
func (c *ExamAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamAttempt = append(c.inters.ExamAttempt, interceptors...)
}

// Create returns a builder for creating a ExamAttempt entity.
func (c *ExamAttemptClient) Create() *ExamAttemptCreate {
	mutation := newExamAttemptMutation(c.config, OpCreate)
	return &ExamAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamAttempt entities.
func (c *ExamAttemptClient) CreateBulk(builders ...*ExamAttemptCreate) *ExamAttemptCreateBulk {
	return &ExamAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamAttemptClient) MapCreateBulk(slice any, setFunc func(*ExamAttemptCreate, int)) *ExamAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamAttemptCreateBulk{err: fmt.Errorf("calling to ExamAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamAttempt.
func (c *ExamAttemptClient) Update() *ExamAttemptUpdate {
	mutation := newExamAttemptMutation(c.config, OpUpdate)
	return &ExamAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamAttemptClient) UpdateOne(_m *ExamAttempt) *ExamAttemptUpdateOne {
	mutation := newExamAttemptMutation(c.config, OpUpdateOne, withExamAttempt(_m))
	return &ExamAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamAttemptClient) UpdateOneID(id int) *ExamAttemptUpdateOne {
	mutation := newExamAttemptMutation(c.config, OpUpdateOne, withExamAttemptID(id))
	return &ExamAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamAttempt.
func (c *ExamAttemptClient) Delete() *ExamAttemptDelete {
	mutation := newExamAttemptMutation(c.config, OpDelete)
	return &ExamAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamAttemptClient) DeleteOne(_m *ExamAttempt) *ExamAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamAttemptClient) DeleteOneID(id int) *ExamAttemptDeleteOne {
	builder := c.Delete().Where(examattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamAttemptDeleteOne{builder}
}

// Query returns a query builder for ExamAttempt.
func (c *ExamAttemptClient) Query() *ExamAttemptQuery {
	return &ExamAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamAttempt entity by its id.
func (c *ExamAttemptClient) Get(ctx context.Context, id int) (*ExamAttempt, error) {
	return c.Query().Where(examattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamAttemptClient) GetX(ctx context.Context, id int) *ExamAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamAttemptClient) Hooks() []Hook {
	return c.hooks.ExamAttempt
}

// Interceptors returns the client interceptors.
func (c *ExamAttemptClient) Interceptors() []Interceptor {
	return c.inters.ExamAttempt
}

func (c *ExamAttemptClient) mutate(ctx context.Context, m *ExamAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamAttempt mutation op: %q", m.Op())
	}
}

// ReadinessSnapshotClient is a client for the ReadinessSnapshot schema.
type ReadinessSnapshotClient struct {
	config
}

// NewReadinessSnapshotClient returns a client for the ReadinessSnapshot from the given config.
func NewReadinessSnapshotClient(c config) *ReadinessSnapshotClient {
	return &ReadinessSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `readinesssnapshot.Hooks(f(g(h())))`.
func (c *ReadinessSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ReadinessSnapshot = append(c.hooks.ReadinessSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `readinesssnapshot.Intercept(f(g(h())))`.
func (c *ReadinessSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReadinessSnapshot = append(c.inters.ReadinessSnapshot, interceptors...)
}

// Create returns a builder for creating a ReadinessSnapshot entity.
func (c *ReadinessSnapshotClient) Create() *ReadinessSnapshotCreate {
	mutation := newReadinessSnapshotMutation(c.config, OpCreate)
	return &ReadinessSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReadinessSnapshot entities.
func (c *ReadinessSnapshotClient) CreateBulk(builders ...*ReadinessSnapshotCreate) *ReadinessSnapshotCreateBulk {
	return &ReadinessSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReadinessSnapshotClient) MapCreateBulk(slice any, setFunc func(*ReadinessSnapshotCreate, int)) *ReadinessSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReadinessSnapshotCreateBulk{err: fmt.Errorf("calling to ReadinessSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReadinessSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReadinessSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReadinessSnapshot.
func (c *ReadinessSnapshotClient) Update() *ReadinessSnapshotUpdate {
	mutation := newReadinessSnapshotMutation(c.config, OpUpdate)
	return &ReadinessSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReadinessSnapshotClient) UpdateOne(_m *ReadinessSnapshot) *ReadinessSnapshotUpdateOne {
	mutation := newReadinessSnapshotMutation(c.config, OpUpdateOne, withReadinessSnapshot(_m))
	return &ReadinessSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReadinessSnapshotClient) UpdateOneID(id int) *ReadinessSnapshotUpdateOne {
	mutation := newReadinessSnapshotMutation(c.config, OpUpdateOne, withReadinessSnapshotID(id))
	return &ReadinessSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReadinessSnapshot.
func (c *ReadinessSnapshotClient) Delete() *ReadinessSnapshotDelete {
	mutation := newReadinessSnapshotMutation(c.config, OpDelete)
	return &ReadinessSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReadinessSnapshotClient) DeleteOne(_m *ReadinessSnapshot) *ReadinessSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReadinessSnapshotClient) DeleteOneID(id int) *ReadinessSnapshotDeleteOne {
	builder := c.Delete().Where(readinesssnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReadinessSnapshotDeleteOne{builder}
}

// Query returns a query builder for ReadinessSnapshot.
func (c *ReadinessSnapshotClient) Query() *ReadinessSnapshotQuery {
	return &ReadinessSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReadinessSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ReadinessSnapshot entity by its id.
func (c *ReadinessSnapshotClient) Get(ctx context.Context, id int) (*ReadinessSnapshot, error) {
	return c.Query().Where(readinesssnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReadinessSnapshotClient) GetX(ctx context.Context, id int) *ReadinessSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReadinessSnapshotClient) Hooks() []Hook {
	return c.hooks.ReadinessSnapshot
}

// Interceptors returns the client interceptors.
func (c *ReadinessSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ReadinessSnapshot
}

func (c *ReadinessSnapshotClient) mutate(ctx context.Context, m *ReadinessSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReadinessSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReadinessSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReadinessSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReadinessSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReadinessSnapshot mutation op: %q", m.Op())
	}
}

// TelemetryEventClient is a client for the TelemetryEvent schema.
type TelemetryEventClient struct {
	config
}

// NewTelemetryEventClient returns a client for the TelemetryEvent from the given config.
func NewTelemetryEventClient(c config) *TelemetryEventClient {
	return &TelemetryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `telemetryevent.Hooks(f(g(h())))`.
func (c *TelemetryEventClient) Use(hooks ...Hook) {
	c.hooks.TelemetryEvent = append(c.hooks.TelemetryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `telemetryevent.Intercept(f(g(h())))`.
func (c *TelemetryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TelemetryEvent = append(c.inters.TelemetryEvent, interceptors...)
}

// Create returns a builder for creating a TelemetryEvent entity.
func (c *TelemetryEventClient) Create() *TelemetryEventCreate {
	mutation := newTelemetryEventMutation(c.config, OpCreate)
	return &TelemetryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TelemetryEvent entities.
func (c *TelemetryEventClient) CreateBulk(builders ...*TelemetryEventCreate) *TelemetryEventCreateBulk {
	return &TelemetryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TelemetryEventClient) MapCreateBulk(slice any, setFunc func(*TelemetryEventCreate, int)) *TelemetryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TelemetryEventCreateBulk{err: fmt.Errorf("calling to TelemetryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TelemetryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TelemetryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TelemetryEvent.
func (c *TelemetryEventClient) Update() *TelemetryEventUpdate {
	mutation := newTelemetryEventMutation(c.config, OpUpdate)
	return &TelemetryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TelemetryEventClient) UpdateOne(_m *TelemetryEvent) *TelemetryEventUpdateOne {
	mutation := newTelemetryEventMutation(c.config, OpUpdateOne, withTelemetryEvent(_m))
	return &TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TelemetryEventClient) UpdateOneID(id int) *TelemetryEventUpdateOne {
	mutation := newTelemetryEventMutation(c.config, OpUpdateOne, withTelemetryEventID(id))
	return &TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TelemetryEvent.
func (c *TelemetryEventClient) Delete() *TelemetryEventDelete {
	mutation := newTelemetryEventMutation(c.config, OpDelete)
	return &TelemetryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TelemetryEventClient) DeleteOne(_m *TelemetryEvent) *TelemetryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TelemetryEventClient) DeleteOneID(id int) *TelemetryEventDeleteOne {
	builder := c.Delete().Where(telemetryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TelemetryEventDeleteOne{builder}
}

// Query returns a query builder for TelemetryEvent.
func (c *TelemetryEventClient) Query() *TelemetryEventQuery {
	return &TelemetryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTelemetryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TelemetryEvent entity by its id.
func (c *TelemetryEventClient) Get(ctx context.Context, id int) (*TelemetryEvent, error) {
	return c.Query().Where(telemetryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TelemetryEventClient) GetX(ctx context.Context, id int) *TelemetryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TelemetryEventClient) Hooks() []Hook {
	return c.hooks.TelemetryEvent
}

// Interceptors returns the client interceptors.
func (c *TelemetryEventClient) Interceptors() []Interceptor {
	return c.inters.TelemetryEvent
}

func (c *TelemetryEventClient) mutate(ctx context.Context, m *TelemetryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TelemetryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TelemetryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TelemetryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TelemetryEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, BadgeUnlock, DailyActivity, ExamAttempt, ReadinessSnapshot,
		TelemetryEvent []ent.Hook
	}
	inters struct {
		Attempt, BadgeUnlock, DailyActivity, ExamAttempt, ReadinessSnapshot,
		TelemetryEvent []ent.Interceptor
	}
)
