package client

import (
	"errors"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
)

// Re-export the error taxonomy so callers match against a single package.
type (
	InvalidArgumentError   = mierrors.InvalidArgumentError
	UnsupportedMethodError = mierrors.UnsupportedMethodError
	APIUnavailableError    = mierrors.APIUnavailableError
	RuntimeAPIError        = mierrors.RuntimeAPIError
	NotFoundError          = mierrors.NotFoundError
	Resource               = mierrors.Resource
)

// Library-defined error codes.
const (
	CodeAuthentication = mierrors.CodeAuthentication
	CodeEncoding       = mierrors.CodeEncoding
	CodeNotFound       = mierrors.CodeNotFound
)

var (
	ErrNotFound          = mierrors.ErrNotFound
	ErrTimeEntryNotFound = mierrors.ErrTimeEntryNotFound
	ErrCustomerNotFound  = mierrors.ErrCustomerNotFound
	ErrProjectNotFound   = mierrors.ErrProjectNotFound
	ErrServiceNotFound   = mierrors.ErrServiceNotFound
	ErrUserNotFound      = mierrors.ErrUserNotFound
)

// IsNotFound reports whether err is a not-found error of any resource.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnavailable reports whether err is a transport timeout.
func IsUnavailable(err error) bool { return mierrors.IsUnavailable(err) }

// IsInvalidArgument reports whether err was raised by local validation.
func IsInvalidArgument(err error) bool { return mierrors.IsInvalidArgument(err) }

// StatusCode returns the code carried by err, or 0.
func StatusCode(err error) int { return mierrors.StatusCode(err) }
