// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/secopshq/caseflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/secopshq/caseflow/ent/agentexecution"
	"github.com/secopshq/caseflow/ent/agentprompt"
	"github.com/secopshq/caseflow/ent/approval"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/ent/graphedge"
	"github.com/secopshq/caseflow/ent/graphnode"
	"github.com/secopshq/caseflow/ent/report"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentExecution is the client for interacting with the AgentExecution builders.
	AgentExecution *AgentExecutionClient
	// AgentPrompt is the client for interacting with the AgentPrompt builders.
	AgentPrompt *AgentPromptClient
	// Approval is the client for interacting with the Approval builders.
	Approval *ApprovalClient
	// AuditStep is the client for interacting with the AuditStep builders.
	AuditStep *AuditStepClient
	// CaseRecord is the client for interacting with the CaseRecord builders.
	CaseRecord *CaseRecordClient
	// GraphEdge is the client for interacting with the GraphEdge builders.
	GraphEdge *GraphEdgeClient
	// GraphNode is the client for interacting with the GraphNode builders.
	GraphNode *GraphNodeClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentExecution = NewAgentExecutionClient(c.config)
	c.AgentPrompt = NewAgentPromptClient(c.config)
	c.Approval = NewApprovalClient(c.config)
	c.AuditStep = NewAuditStepClient(c.config)
	c.CaseRecord = NewCaseRecordClient(c.config)
	c.GraphEdge = NewGraphEdgeClient(c.config)
	c.GraphNode = NewGraphNodeClient(c.config)
	c.Report = NewReportClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AgentExecution: NewAgentExecutionClient(cfg),
		AgentPrompt:    NewAgentPromptClient(cfg),
		Approval:       NewApprovalClient(cfg),
		AuditStep:      NewAuditStepClient(cfg),
		CaseRecord:     NewCaseRecordClient(cfg),
		GraphEdge:      NewGraphEdgeClient(cfg),
		GraphNode:      NewGraphNodeClient(cfg),
		Report:         NewReportClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AgentExecution: NewAgentExecutionClient(cfg),
		AgentPrompt:    NewAgentPromptClient(cfg),
		Approval:       NewApprovalClient(cfg),
		AuditStep:      NewAuditStepClient(cfg),
		CaseRecord:     NewCaseRecordClient(cfg),
		GraphEdge:      NewGraphEdgeClient(cfg),
		GraphNode:      NewGraphNodeClient(cfg),
		Report:         NewReportClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentExecution.
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
		c.AgentExecution, c.AgentPrompt, c.Approval, c.AuditStep, c.CaseRecord,
		c.GraphEdge, c.GraphNode, c.Report,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentExecution, c.AgentPrompt, c.Approval, c.AuditStep, c.CaseRecord,
		c.GraphEdge, c.GraphNode, c.Report,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentExecutionMutation:
		return c.AgentExecution.mutate(ctx, m)
	case *AgentPromptMutation:
		return c.AgentPrompt.mutate(ctx, m)
	case *ApprovalMutation:
		return c.Approval.mutate(ctx, m)
	case *AuditStepMutation:
		return c.AuditStep.mutate(ctx, m)
	case *CaseRecordMutation:
		return c.CaseRecord.mutate(ctx, m)
	case *GraphEdgeMutation:
		return c.GraphEdge.mutate(ctx, m)
	case *GraphNodeMutation:
		return c.GraphNode.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentExecutionClient is a client for the AgentExecution schema.
type AgentExecutionClient struct {
	config
}

// NewAgentExecutionClient returns a client for the AgentExecution from the given config.
func NewAgentExecutionClient(c config) *AgentExecutionClient {
	return &AgentExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentexecution.Hooks(f(g(h())))`.
func (c *AgentExecutionClient) Use(hooks ...Hook) {
	c.hooks.AgentExecution = append(c.hooks.AgentExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentexecution.Intercept(f(g(h())))`.
func (c *AgentExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentExecution = append(c.inters.AgentExecution, interceptors...)
}

// Create returns a builder for creating a AgentExecution entity.
func (c *AgentExecutionClient) Create() *AgentExecutionCreate {
	mutation := newAgentExecutionMutation(c.config, OpCreate)
	return &AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentExecution entities.
func (c *AgentExecutionClient) CreateBulk(builders ...*AgentExecutionCreate) *AgentExecutionCreateBulk {
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentExecutionClient) MapCreateBulk(slice any, setFunc func(*AgentExecutionCreate, int)) *AgentExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentExecutionCreateBulk{err: fmt.Errorf("calling to AgentExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentExecution.
func (c *AgentExecutionClient) Update() *AgentExecutionUpdate {
	mutation := newAgentExecutionMutation(c.config, OpUpdate)
	return &AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentExecutionClient) UpdateOne(_m *AgentExecution) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecution(_m))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentExecutionClient) UpdateOneID(id string) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecutionID(id))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentExecution.
func (c *AgentExecutionClient) Delete() *AgentExecutionDelete {
	mutation := newAgentExecutionMutation(c.config, OpDelete)
	return &AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentExecutionClient) DeleteOne(_m *AgentExecution) *AgentExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentExecutionClient) DeleteOneID(id string) *AgentExecutionDeleteOne {
	builder := c.Delete().Where(agentexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentExecutionDeleteOne{builder}
}

// Query returns a query builder for AgentExecution.
func (c *AgentExecutionClient) Query() *AgentExecutionQuery {
	return &AgentExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentExecution entity by its id.
func (c *AgentExecutionClient) Get(ctx context.Context, id string) (*AgentExecution, error) {
	return c.Query().Where(agentexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentExecutionClient) GetX(ctx context.Context, id string) *AgentExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a AgentExecution.
func (c *AgentExecutionClient) QueryCase(_m *AgentExecution) *CaseRecordQuery {
	query := (&CaseRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(caserecord.Table, caserecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.CaseTable, agentexecution.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentExecutionClient) Hooks() []Hook {
	return c.hooks.AgentExecution
}

// Interceptors returns the client interceptors.
func (c *AgentExecutionClient) Interceptors() []Interceptor {
	return c.inters.AgentExecution
}

func (c *AgentExecutionClient) mutate(ctx context.Context, m *AgentExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentExecution mutation op: %q", m.Op())
	}
}

// AgentPromptClient is a client for the AgentPrompt schema.
type AgentPromptClient struct {
	config
}

// NewAgentPromptClient returns a client for the AgentPrompt from the given config.
func NewAgentPromptClient(c config) *AgentPromptClient {
	return &AgentPromptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentprompt.Hooks(f(g(h())))`.
func (c *AgentPromptClient) Use(hooks ...Hook) {
	c.hooks.AgentPrompt = append(c.hooks.AgentPrompt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentprompt.Intercept(f(g(h())))`.
func (c *AgentPromptClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentPrompt = append(c.inters.AgentPrompt, interceptors...)
}

// Create returns a builder for creating a AgentPrompt entity.
func (c *AgentPromptClient) Create() *AgentPromptCreate {
	mutation := newAgentPromptMutation(c.config, OpCreate)
	return &AgentPromptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentPrompt entities.
func (c *AgentPromptClient) CreateBulk(builders ...*AgentPromptCreate) *AgentPromptCreateBulk {
	return &AgentPromptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentPromptClient) MapCreateBulk(slice any, setFunc func(*AgentPromptCreate, int)) *AgentPromptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentPromptCreateBulk{err: fmt.Errorf("calling to AgentPromptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentPromptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentPromptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentPrompt.
func (c *AgentPromptClient) Update() *AgentPromptUpdate {
	mutation := newAgentPromptMutation(c.config, OpUpdate)
	return &AgentPromptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentPromptClient) UpdateOne(_m *AgentPrompt) *AgentPromptUpdateOne {
	mutation := newAgentPromptMutation(c.config, OpUpdateOne, withAgentPrompt(_m))
	return &AgentPromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentPromptClient) UpdateOneID(id string) *AgentPromptUpdateOne {
	mutation := newAgentPromptMutation(c.config, OpUpdateOne, withAgentPromptID(id))
	return &AgentPromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentPrompt.
func (c *AgentPromptClient) Delete() *AgentPromptDelete {
	mutation := newAgentPromptMutation(c.config, OpDelete)
	return &AgentPromptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentPromptClient) DeleteOne(_m *AgentPrompt) *AgentPromptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentPromptClient) DeleteOneID(id string) *AgentPromptDeleteOne {
	builder := c.Delete().Where(agentprompt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentPromptDeleteOne{builder}
}

// Query returns a query builder for AgentPrompt.
func (c *AgentPromptClient) Query() *AgentPromptQuery {
	return &AgentPromptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentPrompt},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentPrompt entity by its id.
func (c *AgentPromptClient) Get(ctx context.Context, id string) (*AgentPrompt, error) {
	return c.Query().Where(agentprompt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentPromptClient) GetX(ctx context.Context, id string) *AgentPrompt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentPromptClient) Hooks() []Hook {
	return c.hooks.AgentPrompt
}

// Interceptors returns the client interceptors.
func (c *AgentPromptClient) Interceptors() []Interceptor {
	return c.inters.AgentPrompt
}

func (c *AgentPromptClient) mutate(ctx context.Context, m *AgentPromptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentPromptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentPromptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentPromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentPromptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentPrompt mutation op: %q", m.Op())
	}
}

// ApprovalClient is a client for the Approval schema.
type ApprovalClient struct {
	config
}

// NewApprovalClient returns a client for the Approval from the given config.
func NewApprovalClient(c config) *ApprovalClient {
	return &ApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approval.Hooks(f(g(h())))`.
func (c *ApprovalClient) Use(hooks ...Hook) {
	c.hooks.Approval = append(c.hooks.Approval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approval.Intercept(f(g(h())))`.
func (c *ApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Approval = append(c.inters.Approval, interceptors...)
}

// Create returns a builder for creating a Approval entity.
func (c *ApprovalClient) Create() *ApprovalCreate {
	mutation := newApprovalMutation(c.config, OpCreate)
	return &ApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Approval entities.
func (c *ApprovalClient) CreateBulk(builders ...*ApprovalCreate) *ApprovalCreateBulk {
	return &ApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalClient) MapCreateBulk(slice any, setFunc func(*ApprovalCreate, int)) *ApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalCreateBulk{err: fmt.Errorf("calling to ApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Approval.
func (c *ApprovalClient) Update() *ApprovalUpdate {
	mutation := newApprovalMutation(c.config, OpUpdate)
	return &ApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalClient) UpdateOne(_m *Approval) *ApprovalUpdateOne {
	mutation := newApprovalMutation(c.config, OpUpdateOne, withApproval(_m))
	return &ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalClient) UpdateOneID(id string) *ApprovalUpdateOne {
	mutation := newApprovalMutation(c.config, OpUpdateOne, withApprovalID(id))
	return &ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Approval.
func (c *ApprovalClient) Delete() *ApprovalDelete {
	mutation := newApprovalMutation(c.config, OpDelete)
	return &ApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalClient) DeleteOne(_m *Approval) *ApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalClient) DeleteOneID(id string) *ApprovalDeleteOne {
	builder := c.Delete().Where(approval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalDeleteOne{builder}
}

// Query returns a query builder for Approval.
func (c *ApprovalClient) Query() *ApprovalQuery {
	return &ApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a Approval entity by its id.
func (c *ApprovalClient) Get(ctx context.Context, id string) (*Approval, error) {
	return c.Query().Where(approval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalClient) GetX(ctx context.Context, id string) *Approval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a Approval.
func (c *ApprovalClient) QueryCase(_m *Approval) *CaseRecordQuery {
	query := (&CaseRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approval.Table, approval.FieldID, id),
			sqlgraph.To(caserecord.Table, caserecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, approval.CaseTable, approval.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApprovalClient) Hooks() []Hook {
	return c.hooks.Approval
}

// Interceptors returns the client interceptors.
func (c *ApprovalClient) Interceptors() []Interceptor {
	return c.inters.Approval
}

func (c *ApprovalClient) mutate(ctx context.Context, m *ApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Approval mutation op: %q", m.Op())
	}
}

// AuditStepClient is a client for the AuditStep schema.
type AuditStepClient struct {
	config
}

// NewAuditStepClient returns a client for the AuditStep from the given config.
func NewAuditStepClient(c config) *AuditStepClient {
	return &AuditStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditstep.Hooks(f(g(h())))`.
func (c *AuditStepClient) Use(hooks ...Hook) {
	c.hooks.AuditStep = append(c.hooks.AuditStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditstep.Intercept(f(g(h())))`.
func (c *AuditStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditStep = append(c.inters.AuditStep, interceptors...)
}

// Create returns a builder for creating a AuditStep entity.
func (c *AuditStepClient) Create() *AuditStepCreate {
	mutation := newAuditStepMutation(c.config, OpCreate)
	return &AuditStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditStep entities.
func (c *AuditStepClient) CreateBulk(builders ...*AuditStepCreate) *AuditStepCreateBulk {
	return &AuditStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditStepClient) MapCreateBulk(slice any, setFunc func(*AuditStepCreate, int)) *AuditStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditStepCreateBulk{err: fmt.Errorf("calling to AuditStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditStep.
func (c *AuditStepClient) Update() *AuditStepUpdate {
	mutation := newAuditStepMutation(c.config, OpUpdate)
	return &AuditStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditStepClient) UpdateOne(_m *AuditStep) *AuditStepUpdateOne {
	mutation := newAuditStepMutation(c.config, OpUpdateOne, withAuditStep(_m))
	return &AuditStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditStepClient) UpdateOneID(id string) *AuditStepUpdateOne {
	mutation := newAuditStepMutation(c.config, OpUpdateOne, withAuditStepID(id))
	return &AuditStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditStep.
func (c *AuditStepClient) Delete() *AuditStepDelete {
	mutation := newAuditStepMutation(c.config, OpDelete)
	return &AuditStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditStepClient) DeleteOne(_m *AuditStep) *AuditStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditStepClient) DeleteOneID(id string) *AuditStepDeleteOne {
	builder := c.Delete().Where(auditstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditStepDeleteOne{builder}
}

// Query returns a query builder for AuditStep.
func (c *AuditStepClient) Query() *AuditStepQuery {
	return &AuditStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditStep},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditStep entity by its id.
func (c *AuditStepClient) Get(ctx context.Context, id string) (*AuditStep, error) {
	return c.Query().Where(auditstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditStepClient) GetX(ctx context.Context, id string) *AuditStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a AuditStep.
func (c *AuditStepClient) QueryCase(_m *AuditStep) *CaseRecordQuery {
	query := (&CaseRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditstep.Table, auditstep.FieldID, id),
			sqlgraph.To(caserecord.Table, caserecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditstep.CaseTable, auditstep.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditStepClient) Hooks() []Hook {
	return c.hooks.AuditStep
}

// Interceptors returns the client interceptors.
func (c *AuditStepClient) Interceptors() []Interceptor {
	return c.inters.AuditStep
}

func (c *AuditStepClient) mutate(ctx context.Context, m *AuditStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditStep mutation op: %q", m.Op())
	}
}

// CaseRecordClient is a client for the CaseRecord schema.
type CaseRecordClient struct {
	config
}

// NewCaseRecordClient returns a client for the CaseRecord from the given config.
func NewCaseRecordClient(c config) *CaseRecordClient {
	return &CaseRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caserecord.Hooks(f(g(h())))`.
func (c *CaseRecordClient) Use(hooks ...Hook) {
	c.hooks.CaseRecord = append(c.hooks.CaseRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caserecord.Intercept(f(g(h())))`.
func (c *CaseRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseRecord = append(c.inters.CaseRecord, interceptors...)
}

// Create returns a builder for creating a CaseRecord entity.
func (c *CaseRecordClient) Create() *CaseRecordCreate {
	mutation := newCaseRecordMutation(c.config, OpCreate)
	return &CaseRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseRecord entities.
func (c *CaseRecordClient) CreateBulk(builders ...*CaseRecordCreate) *CaseRecordCreateBulk {
	return &CaseRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseRecordClient) MapCreateBulk(slice any, setFunc func(*CaseRecordCreate, int)) *CaseRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseRecordCreateBulk{err: fmt.Errorf("calling to CaseRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseRecord.
func (c *CaseRecordClient) Update() *CaseRecordUpdate {
	mutation := newCaseRecordMutation(c.config, OpUpdate)
	return &CaseRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseRecordClient) UpdateOne(_m *CaseRecord) *CaseRecordUpdateOne {
	mutation := newCaseRecordMutation(c.config, OpUpdateOne, withCaseRecord(_m))
	return &CaseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseRecordClient) UpdateOneID(id string) *CaseRecordUpdateOne {
	mutation := newCaseRecordMutation(c.config, OpUpdateOne, withCaseRecordID(id))
	return &CaseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseRecord.
func (c *CaseRecordClient) Delete() *CaseRecordDelete {
	mutation := newCaseRecordMutation(c.config, OpDelete)
	return &CaseRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseRecordClient) DeleteOne(_m *CaseRecord) *CaseRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseRecordClient) DeleteOneID(id string) *CaseRecordDeleteOne {
	builder := c.Delete().Where(caserecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseRecordDeleteOne{builder}
}

// Query returns a query builder for CaseRecord.
func (c *CaseRecordClient) Query() *CaseRecordQuery {
	return &CaseRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseRecord entity by its id.
func (c *CaseRecordClient) Get(ctx context.Context, id string) (*CaseRecord, error) {
	return c.Query().Where(caserecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseRecordClient) GetX(ctx context.Context, id string) *CaseRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuditSteps queries the audit_steps edge of a CaseRecord.
func (c *CaseRecordClient) QueryAuditSteps(_m *CaseRecord) *AuditStepQuery {
	query := (&AuditStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caserecord.Table, caserecord.FieldID, id),
			sqlgraph.To(auditstep.Table, auditstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, caserecord.AuditStepsTable, caserecord.AuditStepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApprovals queries the approvals edge of a CaseRecord.
func (c *CaseRecordClient) QueryApprovals(_m *CaseRecord) *ApprovalQuery {
	query := (&ApprovalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caserecord.Table, caserecord.FieldID, id),
			sqlgraph.To(approval.Table, approval.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, caserecord.ApprovalsTable, caserecord.ApprovalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecutions queries the agent_executions edge of a CaseRecord.
func (c *CaseRecordClient) QueryAgentExecutions(_m *CaseRecord) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caserecord.Table, caserecord.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, caserecord.AgentExecutionsTable, caserecord.AgentExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a CaseRecord.
func (c *CaseRecordClient) QueryReports(_m *CaseRecord) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caserecord.Table, caserecord.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, caserecord.ReportsTable, caserecord.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseRecordClient) Hooks() []Hook {
	return c.hooks.CaseRecord
}

// Interceptors returns the client interceptors.
func (c *CaseRecordClient) Interceptors() []Interceptor {
	return c.inters.CaseRecord
}

func (c *CaseRecordClient) mutate(ctx context.Context, m *CaseRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseRecord mutation op: %q", m.Op())
	}
}

// GraphEdgeClient is a client for the GraphEdge schema.
type GraphEdgeClient struct {
	config
}

// NewGraphEdgeClient returns a client for the GraphEdge from the given config.
func NewGraphEdgeClient(c config) *GraphEdgeClient {
	return &GraphEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphedge.Hooks(f(g(h())))`.
func (c *GraphEdgeClient) Use(hooks ...Hook) {
	c.hooks.GraphEdge = append(c.hooks.GraphEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphedge.Intercept(f(g(h())))`.
func (c *GraphEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphEdge = append(c.inters.GraphEdge, interceptors...)
}

// Create returns a builder for creating a GraphEdge entity.
func (c *GraphEdgeClient) Create() *GraphEdgeCreate {
	mutation := newGraphEdgeMutation(c.config, OpCreate)
	return &GraphEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphEdge entities.
func (c *GraphEdgeClient) CreateBulk(builders ...*GraphEdgeCreate) *GraphEdgeCreateBulk {
	return &GraphEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphEdgeClient) MapCreateBulk(slice any, setFunc func(*GraphEdgeCreate, int)) *GraphEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphEdgeCreateBulk{err: fmt.Errorf("calling to GraphEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphEdge.
func (c *GraphEdgeClient) Update() *GraphEdgeUpdate {
	mutation := newGraphEdgeMutation(c.config, OpUpdate)
	return &GraphEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphEdgeClient) UpdateOne(_m *GraphEdge) *GraphEdgeUpdateOne {
	mutation := newGraphEdgeMutation(c.config, OpUpdateOne, withGraphEdge(_m))
	return &GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphEdgeClient) UpdateOneID(id string) *GraphEdgeUpdateOne {
	mutation := newGraphEdgeMutation(c.config, OpUpdateOne, withGraphEdgeID(id))
	return &GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphEdge.
func (c *GraphEdgeClient) Delete() *GraphEdgeDelete {
	mutation := newGraphEdgeMutation(c.config, OpDelete)
	return &GraphEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphEdgeClient) DeleteOne(_m *GraphEdge) *GraphEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphEdgeClient) DeleteOneID(id string) *GraphEdgeDeleteOne {
	builder := c.Delete().Where(graphedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphEdgeDeleteOne{builder}
}

// Query returns a query builder for GraphEdge.
func (c *GraphEdgeClient) Query() *GraphEdgeQuery {
	return &GraphEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphEdge entity by its id.
func (c *GraphEdgeClient) Get(ctx context.Context, id string) (*GraphEdge, error) {
	return c.Query().Where(graphedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphEdgeClient) GetX(ctx context.Context, id string) *GraphEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GraphEdgeClient) Hooks() []Hook {
	return c.hooks.GraphEdge
}

// Interceptors returns the client interceptors.
func (c *GraphEdgeClient) Interceptors() []Interceptor {
	return c.inters.GraphEdge
}

func (c *GraphEdgeClient) mutate(ctx context.Context, m *GraphEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphEdge mutation op: %q", m.Op())
	}
}

// GraphNodeClient is a client for the GraphNode schema.
type GraphNodeClient struct {
	config
}

// NewGraphNodeClient returns a client for the GraphNode from the given config.
func NewGraphNodeClient(c config) *GraphNodeClient {
	return &GraphNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphnode.Hooks(f(g(h())))`.
func (c *GraphNodeClient) Use(hooks ...Hook) {
	c.hooks.GraphNode = append(c.hooks.GraphNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphnode.Intercept(f(g(h())))`.
func (c *GraphNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphNode = append(c.inters.GraphNode, interceptors...)
}

// Create returns a builder for creating a GraphNode entity.
func (c *GraphNodeClient) Create() *GraphNodeCreate {
	mutation := newGraphNodeMutation(c.config, OpCreate)
	return &GraphNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphNode entities.
func (c *GraphNodeClient) CreateBulk(builders ...*GraphNodeCreate) *GraphNodeCreateBulk {
	return &GraphNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphNodeClient) MapCreateBulk(slice any, setFunc func(*GraphNodeCreate, int)) *GraphNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphNodeCreateBulk{err: fmt.Errorf("calling to GraphNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphNode.
func (c *GraphNodeClient) Update() *GraphNodeUpdate {
	mutation := newGraphNodeMutation(c.config, OpUpdate)
	return &GraphNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphNodeClient) UpdateOne(_m *GraphNode) *GraphNodeUpdateOne {
	mutation := newGraphNodeMutation(c.config, OpUpdateOne, withGraphNode(_m))
	return &GraphNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphNodeClient) UpdateOneID(id string) *GraphNodeUpdateOne {
	mutation := newGraphNodeMutation(c.config, OpUpdateOne, withGraphNodeID(id))
	return &GraphNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphNode.
func (c *GraphNodeClient) Delete() *GraphNodeDelete {
	mutation := newGraphNodeMutation(c.config, OpDelete)
	return &GraphNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphNodeClient) DeleteOne(_m *GraphNode) *GraphNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphNodeClient) DeleteOneID(id string) *GraphNodeDeleteOne {
	builder := c.Delete().Where(graphnode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphNodeDeleteOne{builder}
}

// Query returns a query builder for GraphNode.
func (c *GraphNodeClient) Query() *GraphNodeQuery {
	return &GraphNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphNode},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphNode entity by its id.
func (c *GraphNodeClient) Get(ctx context.Context, id string) (*GraphNode, error) {
	return c.Query().Where(graphnode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphNodeClient) GetX(ctx context.Context, id string) *GraphNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GraphNodeClient) Hooks() []Hook {
	return c.hooks.GraphNode
}

// Interceptors returns the client interceptors.
func (c *GraphNodeClient) Interceptors() []Interceptor {
	return c.inters.GraphNode
}

func (c *GraphNodeClient) mutate(ctx context.Context, m *GraphNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphNode mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id string) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id string) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id string) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id string) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a Report.
func (c *ReportClient) QueryCase(_m *Report) *CaseRecordQuery {
	query := (&CaseRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(caserecord.Table, caserecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, report.CaseTable, report.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentExecution, AgentPrompt, Approval, AuditStep, CaseRecord, GraphEdge,
		GraphNode, Report []ent.Hook
	}
	inters struct {
		AgentExecution, AgentPrompt, Approval, AuditStep, CaseRecord, GraphEdge,
		GraphNode, Report []ent.Interceptor
	}
)
