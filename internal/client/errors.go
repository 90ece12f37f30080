package client

import (
	"fmt"
	"net/http"
)

// TransportError wraps a failure below the HTTP layer: DNS, connection
// refused, timeout, or a response that never arrived intact.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError reports a response outside the 2xx range. The response
// body is discarded; only the code and its standard reason phrase survive.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// DecodingError reports a response body that does not match the expected
// resource shape. The whole fetch fails; there is no partial decode.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string { return fmt.Sprintf("decode response: %v", e.Err) }
func (e *DecodingError) Unwrap() error { return e.Err }

// NotFoundError reports that a resource named by the caller could not be
// resolved. Distinct from a plain lookup miss, which is a valid absence and
// not an error.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Kind, e.Name) }
