package client

import (
	"github.com/mite-eleven/mite-go/client/internal/types"
	"github.com/mite-eleven/mite-go/client/internal/wire"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	Params             = types.Params
	Filter             = types.Filter
	ListOptions        = types.ListOptions
	ProjectListOptions = types.ProjectListOptions
	UserListOptions    = types.UserListOptions
	EntryListOptions   = types.EntryListOptions

	// Domain entities
	TimeEntry      = types.TimeEntry
	TimeEntryGroup = types.TimeEntryGroup
	HourlyRate     = types.HourlyRate
	Customer       = types.Customer
	Project        = types.Project
	Service        = types.Service
	User           = types.User
	Account        = types.Account

	// Responses
	TimeEntryList = types.TimeEntryList

	// Raw calls
	Outcome     = wire.Outcome
	OutcomeKind = wire.Kind
	CallOption  = wire.CallOption
)

// Outcome kinds of CallAPI.
const (
	OutcomeData = wire.KindData
	OutcomeAck  = wire.KindAck
	OutcomeText = wire.KindText
)

// WithExpectedContentType overrides the expected response content type of
// a single CallAPI.
func WithExpectedContentType(ct string) CallOption { return wire.WithExpectedContentType(ct) }

// WithHeader adds a request header to a single CallAPI.
func WithHeader(name, value string) CallOption { return wire.WithHeader(name, value) }
