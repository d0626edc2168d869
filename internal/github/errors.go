package github

import (
	"errors"
	"fmt"
)

// FailureKind tells why a lookup did not yield a usable project.
type FailureKind int

const (
	FailureTransport FailureKind = iota + 1 // request never got a response
	FailureStatus                           // non-2xx response (404, 403, 5xx...)
	FailureDecode                           // 2xx with an unusable payload
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ErrNotFoundOrUnavailable matches every *LookupError. Callers that only
// need to know the lookup failed compare against it with errors.Is.
var ErrNotFoundOrUnavailable = errors.New("repository not found or unavailable")

// LookupError is returned by every failed lookup.
type LookupError struct {
	Kind       FailureKind
	FullName   string
	StatusCode int // set for FailureStatus
	Err        error
}

func (e *LookupError) Error() string {
	if e.Kind == FailureStatus {
		return fmt.Sprintf("lookup %s: %s (status %d): %v", e.FullName, e.Kind, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("lookup %s: %s: %v", e.FullName, e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func (e *LookupError) Is(target error) bool {
	return target == ErrNotFoundOrUnavailable
}

// NotFound reports whether the service answered 404.
func (e *LookupError) NotFound() bool {
	return e.Kind == FailureStatus && e.StatusCode == 404
}
