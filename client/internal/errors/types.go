// Package errors defines the error taxonomy of the mite SDK.
//
// Every failure surfaced by the SDK is one of the types below. Callers
// match them with errors.As, or with errors.Is against the sentinels for
// the not-found family.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Library-defined codes carried by RuntimeAPIError.
const (
	// CodeAuthentication is used when the API answers 403.
	CodeAuthentication = http.StatusForbidden
	// CodeEncoding is used when a success response cannot be decoded or
	// carries an unexpected content type.
	CodeEncoding = 2001
	// CodeNotFound is carried by every NotFoundError.
	CodeNotFound = http.StatusNotFound
)

// InvalidArgumentError reports caller input that failed local validation.
// It is always returned before any request is sent.
type InvalidArgumentError struct {
	Message    string
	Violations []string // every violation found, Message is the first
}

func (e *InvalidArgumentError) Error() string { return e.Message }

// NewInvalidArgument builds an InvalidArgumentError from a formatted message.
func NewInvalidArgument(format string, args ...any) *InvalidArgumentError {
	msg := fmt.Sprintf(format, args...)
	return &InvalidArgumentError{Message: msg, Violations: []string{msg}}
}

// FromViolations returns nil for an empty list, otherwise an
// InvalidArgumentError whose message is the first violation.
func FromViolations(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &InvalidArgumentError{Message: violations[0], Violations: violations}
}

// UnsupportedMethodError is returned when a request is built with an HTTP
// method the API does not use.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("Method %s not supported", e.Method)
}

// APIUnavailableError reports a transport timeout.
type APIUnavailableError struct {
	Message string
	Code    int
	Err     error
}

func (e *APIUnavailableError) Error() string { return e.Message }
func (e *APIUnavailableError) Unwrap() error { return e.Err }

// RuntimeAPIError covers every other API or transport failure.
//
// Code is either the upstream HTTP status or one of the library codes.
// For JSON error bodies the decoded payload is kept in Data and Message is a
// generic string; for plain-text bodies Message holds the body itself.
type RuntimeAPIError struct {
	Message  string
	Code     int
	Data     any
	Response *http.Response
	Err      error
}

// DefaultErrorMessage is the message used when the error payload is structured.
const DefaultErrorMessage = "mite error"

func (e *RuntimeAPIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("mite: %s (code %d)", e.Message, e.Code)
	}
	return "mite: " + e.Message
}

func (e *RuntimeAPIError) Unwrap() error { return e.Err }

// ErrorData returns the decoded JSON error payload, or nil.
func (e *RuntimeAPIError) ErrorData() any { return e.Data }

// Resource names an API entity family.
type Resource string

const (
	ResourceTimeEntry Resource = "time_entry"
	ResourceCustomer  Resource = "customer"
	ResourceProject   Resource = "project"
	ResourceService   Resource = "service"
	ResourceUser      Resource = "user"
)

var (
	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("entry not found")

	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrUserNotFound      = errors.New("user not found")
)

var resourceSentinels = map[Resource]error{
	ResourceTimeEntry: ErrTimeEntryNotFound,
	ResourceCustomer:  ErrCustomerNotFound,
	ResourceProject:   ErrProjectNotFound,
	ResourceService:   ErrServiceNotFound,
	ResourceUser:      ErrUserNotFound,
}

// NotFoundError is returned by resource operations when the API answers 404
// or a success response lacks the resource wrapper key. Code is always 404.
type NotFoundError struct {
	Resource Resource
	ID       int64
	Message  string
	Code     int
	Err      error // the adapter failure, nil for a missing wrapper key
}

// NewNotFound builds the not-found error for resource id.
func NewNotFound(resource Resource, id int64, cause error) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
		Message:  fmt.Sprintf("Cannot find entry: %d", id),
		Code:     CodeNotFound,
		Err:      cause,
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", strings.ReplaceAll(string(e.Resource), "_", " "), e.Message)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is matches ErrNotFound and the sentinel of the error's resource.
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	s, ok := resourceSentinels[e.Resource]
	return ok && target == s
}
