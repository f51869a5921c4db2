package client

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mite-eleven/mite-go/client/internal/api"
	"github.com/mite-eleven/mite-go/client/internal/wire"
)

// defaultTimeout bounds a single request when Config.Timeout is zero.
const defaultTimeout = 30 * time.Second

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a mite API client. It holds only read-only configuration and is
// safe for concurrent use.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
	debug  bool
	wire   *wire.Adapter
}

// New constructs a Client for cfg. Additional options can be provided via
// functional arguments.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.installTransport()
	c.wire = wire.New(wire.Config{
		BaseURL:             cfg.URL,
		APIKey:              cfg.APIKey,
		Username:            cfg.Username,
		Password:            cfg.Password,
		UserAgent:           cfg.UserAgent,
		ExpectedContentType: cfg.ExpectedContentType,
	}, c.http, c.logger)
	return c, nil
}

// installTransport builds the transport chain: metrics, then the optional
// debug dump, then the base transport.
func (c *Client) installTransport() {
	base := c.http.Transport
	if base == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if c.cfg.InsecureSkipVerify {
			t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-hosted endpoints
		}
		base = t
	}
	if c.debug {
		base = &debugTransport{base: base, logger: c.logger}
	}
	c.http.Transport = instrumentTransport(base)
}

// --------------------------------------------------------------------
// Time entries
// --------------------------------------------------------------------

// ListEntries lists time entries matching opts.
func (c *Client) ListEntries(ctx context.Context, opts EntryListOptions) (*TimeEntryList, error) {
	return api.ListEntries(ctx, c.wire, opts)
}

// GetEntry retrieves a single time entry.
func (c *Client) GetEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	return api.GetEntry(ctx, c.wire, id)
}

// CreateEntry creates a time entry from data (date_at, minutes, note,
// user_id, project_id, service_id, locked).
func (c *Client) CreateEntry(ctx context.Context, data Params) (*TimeEntry, error) {
	return api.CreateEntry(ctx, c.wire, data)
}

// UpdateEntry updates a time entry. force allows editing a locked entry.
func (c *Client) UpdateEntry(ctx context.Context, id int64, data Params, force bool) error {
	return api.UpdateEntry(ctx, c.wire, id, data, force)
}

// DeleteEntry deletes a time entry.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	return api.DeleteEntry(ctx, c.wire, id)
}

// --------------------------------------------------------------------
// Customers
// --------------------------------------------------------------------

// ListCustomers lists active customers.
func (c *Client) ListCustomers(ctx context.Context, opts ListOptions) ([]Customer, error) {
	return api.ListCustomers(ctx, c.wire, opts)
}

// ListArchivedCustomers lists archived customers.
func (c *Client) ListArchivedCustomers(ctx context.Context, opts ListOptions) ([]Customer, error) {
	return api.ListArchivedCustomers(ctx, c.wire, opts)
}

// SearchCustomers searches active and archived customers by name.
func (c *Client) SearchCustomers(ctx context.Context, name string) ([]Customer, error) {
	return api.SearchCustomers(ctx, c.wire, name)
}

// GetCustomer retrieves a single customer.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	return api.GetCustomer(ctx, c.wire, id)
}

// CreateCustomer creates a customer. options may hold note, archived,
// hourly_rate, hourly_rates_per_service and active_hourly_rate.
func (c *Client) CreateCustomer(ctx context.Context, name string, options Params) (*Customer, error) {
	return api.CreateCustomer(ctx, c.wire, name, options)
}

// UpdateCustomer updates a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, options Params) error {
	return api.UpdateCustomer(ctx, c.wire, id, options)
}

// DeleteCustomer deletes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return api.DeleteCustomer(ctx, c.wire, id)
}

// --------------------------------------------------------------------
// Projects
// --------------------------------------------------------------------

// ListProjects lists active projects.
func (c *Client) ListProjects(ctx context.Context, opts ProjectListOptions) ([]Project, error) {
	return api.ListProjects(ctx, c.wire, opts)
}

// ListArchivedProjects lists archived projects.
func (c *Client) ListArchivedProjects(ctx context.Context, opts ProjectListOptions) ([]Project, error) {
	return api.ListArchivedProjects(ctx, c.wire, opts)
}

// SearchProjects searches active and archived projects by name.
func (c *Client) SearchProjects(ctx context.Context, name string) ([]Project, error) {
	return api.SearchProjects(ctx, c.wire, name)
}

// GetProject retrieves a single project.
func (c *Client) GetProject(ctx context.Context, id int64) (*Project, error) {
	return api.GetProject(ctx, c.wire, id)
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, name string, options Params) (*Project, error) {
	return api.CreateProject(ctx, c.wire, name, options)
}

// UpdateProject updates a project.
func (c *Client) UpdateProject(ctx context.Context, id int64, options Params) error {
	return api.UpdateProject(ctx, c.wire, id, options)
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return api.DeleteProject(ctx, c.wire, id)
}

// --------------------------------------------------------------------
// Services
// --------------------------------------------------------------------

// ListServices lists active services.
func (c *Client) ListServices(ctx context.Context, opts ListOptions) ([]Service, error) {
	return api.ListServices(ctx, c.wire, opts)
}

// ListArchivedServices lists archived services.
func (c *Client) ListArchivedServices(ctx context.Context, opts ListOptions) ([]Service, error) {
	return api.ListArchivedServices(ctx, c.wire, opts)
}

// SearchServices searches active and archived services by name.
func (c *Client) SearchServices(ctx context.Context, name string) ([]Service, error) {
	return api.SearchServices(ctx, c.wire, name)
}

// GetService retrieves a single service.
func (c *Client) GetService(ctx context.Context, id int64) (*Service, error) {
	return api.GetService(ctx, c.wire, id)
}

// CreateService creates a service.
func (c *Client) CreateService(ctx context.Context, name string, options Params) (*Service, error) {
	return api.CreateService(ctx, c.wire, name, options)
}

// UpdateService updates a service.
func (c *Client) UpdateService(ctx context.Context, id int64, options Params) error {
	return api.UpdateService(ctx, c.wire, id, options)
}

// DeleteService deletes a service.
func (c *Client) DeleteService(ctx context.Context, id int64) error {
	return api.DeleteService(ctx, c.wire, id)
}

// --------------------------------------------------------------------
// Users and account
// --------------------------------------------------------------------

// ListUsers lists active users.
func (c *Client) ListUsers(ctx context.Context, opts UserListOptions) ([]User, error) {
	return api.ListUsers(ctx, c.wire, opts)
}

// ListArchivedUsers lists archived users.
func (c *Client) ListArchivedUsers(ctx context.Context, opts UserListOptions) ([]User, error) {
	return api.ListArchivedUsers(ctx, c.wire, opts)
}

// SearchUsers searches active and archived users by name or email.
func (c *Client) SearchUsers(ctx context.Context, name, email string) ([]User, error) {
	return api.SearchUsers(ctx, c.wire, name, email)
}

// GetUser retrieves a single user.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	return api.GetUser(ctx, c.wire, id)
}

// GetAccount returns the account of the authenticated user.
func (c *Client) GetAccount(ctx context.Context) (*Account, error) {
	return api.GetAccount(ctx, c.wire)
}

// GetMyself returns the authenticated user.
func (c *Client) GetMyself(ctx context.Context) (*User, error) {
	return api.GetMyself(ctx, c.wire)
}

// --------------------------------------------------------------------
// Raw access
// --------------------------------------------------------------------

// CallAPI performs a raw call against path and returns the interpreted
// outcome. It is the escape hatch for endpoints without a typed method.
func (c *Client) CallAPI(ctx context.Context, method, path string, params Params, opts ...CallOption) (*Outcome, error) {
	return c.wire.Call(ctx, method, path, params, opts...)
}
