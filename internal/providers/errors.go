package providers

import (
	"errors"
	"fmt"
)

// ErrNotInCache marks a cache-only fetch miss. It is a typed absence
// rather than a failure: callers distinguish "no data yet" from
// "fetch failed".
var ErrNotInCache = errors.New("response not in cache")

// NetworkError captures transport-level failures reaching upstream.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError captures non-2xx upstream responses.
type HTTPError struct {
	URL     string
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d from %s: %s", e.Code, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d from %s", e.Code, e.URL)
}

// DecodeError captures malformed response bodies.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var target *NetworkError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsHTTPError attempts to unwrap an error into an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var target *HTTPError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var target *DecodeError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
