package scraper

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportKind classifies network-layer failures so callers can decide
// retry policy. The scraper itself never retries.
type TransportKind string

const (
	TransportConnection TransportKind = "connection"
	TransportTimeout    TransportKind = "timeout"
	TransportHTTPStatus TransportKind = "http_status"
)

// TransportError is returned when a search or fetch request fails at the
// network layer.
type TransportError struct {
	Kind       TransportKind
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Kind == TransportHTTPStatus {
		return fmt.Sprintf("transport error (%s) for %s: status %d", e.Kind, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("transport error (%s) for %s: %v", e.Kind, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when the search endpoint has no match for a
// query. It carries the original query for logging.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no company found for query %q", e.Query)
}

// ErrUnparseable is returned by ParseNumber when a display string cannot
// be converted to a number.
var ErrUnparseable = errors.New("unparseable number")

// classifyTransportError maps a request error onto the transport taxonomy.
func classifyTransportError(url string, err error) *TransportError {
	kind := TransportConnection
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		kind = TransportTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		kind = TransportTimeout
	}
	return &TransportError{Kind: kind, URL: url, Err: err}
}
