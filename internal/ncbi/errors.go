// Package ncbi defines the error taxonomy shared by the NCBI API clients.
package ncbi

import "fmt"

// TransportError reports a failed round trip to an upstream service: either
// the request itself failed, or the service answered with an error status.
// URL and Body carry enough detail to diagnose and manually resubmit.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request %s: %v", e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("request %s: status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("request %s: status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a status code the client does not recognize as
// either success, partial content, or an error.
type ProtocolError struct {
	URL        string
	StatusCode int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("request %s: unexpected status %d", e.URL, e.StatusCode)
}
