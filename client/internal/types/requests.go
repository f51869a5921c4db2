package types

// ------------------------------
// Request Types
// ------------------------------

// Params is the loosely typed parameter set sent to the API, either as
// query string (GET/DELETE) or JSON body.
type Params map[string]any

// Filter holds time entry filters keyed by their API name
// (customer_id, project_id, service_id, user_id, billable, note, at, from, to).
// Values may be scalars, slices or time.Time and are normalized before sending.
type Filter map[string]any

// ListOptions holds the parameters shared by customer and service listings
type ListOptions struct {
	Name  string
	Limit int // 0 means unset
	Page  int // requires Limit
}

// ProjectListOptions adds the customer filter to ListOptions
type ProjectListOptions struct {
	ListOptions
	CustomerID int64 // 0 means unset
}

// UserListOptions adds the email filter to ListOptions
type UserListOptions struct {
	ListOptions
	Email string
}

// EntryListOptions holds the parameters of a time entry listing
type EntryListOptions struct {
	Filter  Filter
	GroupBy []string
	Limit   int
	Page    int
	// Strict makes the first unsupported or invalid filter/grouping entry
	// fail the call instead of being dropped.
	Strict bool
}
