package libcatalog

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Kind tells which step of a remote call failed.
type Kind string

const (
	// KindTransport is used when the request could not be completed.
	KindTransport Kind = "transport"
	// KindStatus is used when the catalog answers with a non-success status.
	KindStatus Kind = "status"
	// KindDecode is used when the response body is not a collection envelope.
	KindDecode Kind = "decode"
)

// A RemoteCallError represents a failed call to the catalog API.
type RemoteCallError struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func newRemoteCallError(kind Kind, err error) *RemoteCallError {
	return &RemoteCallError{Kind: kind, Err: err}
}

func (e *RemoteCallError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("remote call failed: %s %d: %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("remote call failed: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error (github.com/pkg/errors compatibility).
func (e *RemoteCallError) Cause() error {
	return e.Err
}

// AsRemoteCallError returns the RemoteCallError found in the err chain.
func AsRemoteCallError(err error) (*RemoteCallError, bool) {
	var rerr *RemoteCallError
	ok := errors.As(err, &rerr)
	return rerr, ok
}

// IsRemoteCallError returns true if err is or wraps a RemoteCallError.
func IsRemoteCallError(err error) bool {
	_, ok := AsRemoteCallError(err)
	return ok
}
