package errors

import "fmt"

// HostCallError reports a failed call from the daemon to the extension host.
type HostCallError struct {
	Method string
	Err    error
}

// Error is an implementation of the error interface.
func (h *HostCallError) Error() string {
	return fmt.Sprintf("calling host method %q: %v", h.Method, h.Err)
}

// Unwrap returns the underlying transport error.
func (h *HostCallError) Unwrap() error {
	return h.Err
}
