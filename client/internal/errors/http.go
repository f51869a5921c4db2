package errors

import (
	"context"
	"errors"
	"net"
	"os"
)

// FromTransport classifies a failure reported by the HTTP transport.
// Timeouts become APIUnavailableError, anything else RuntimeAPIError.
func FromTransport(err error) error {
	if isTimeout(err) {
		return &APIUnavailableError{Message: err.Error(), Err: err}
	}
	return &RuntimeAPIError{Message: err.Error(), Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// StatusCode extracts the numeric code carried by err, or 0.
func StatusCode(err error) int {
	var rt *RuntimeAPIError
	if errors.As(err, &rt) {
		return rt.Code
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Code
	}
	var un *APIUnavailableError
	if errors.As(err, &un) {
		return un.Code
	}
	return 0
}

// MapNotFound converts a 404-coded adapter failure into the resource's
// NotFoundError. Every other error is returned unchanged.
func MapNotFound(err error, resource Resource, id int64) error {
	if err == nil {
		return nil
	}
	var rt *RuntimeAPIError
	if errors.As(err, &rt) && rt.Code == CodeNotFound {
		return NewNotFound(resource, id, err)
	}
	return err
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}

// IsUnavailable reports whether err is an APIUnavailableError.
func IsUnavailable(err error) bool {
	var un *APIUnavailableError
	return errors.As(err, &un)
}
