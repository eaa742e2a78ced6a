package track

import "fmt"

// DuplicateTrackAliasError is returned when AssignAlias is asked to bind
// an alias that is already in use.
type DuplicateTrackAliasError struct {
	Alias uint64
}

func (e *DuplicateTrackAliasError) Error() string {
	return fmt.Sprintf("track: alias %d already bound", e.Alias)
}

// TooManyRequestsError is returned when a request-ID allocation would
// exceed the peer-advertised MaxRequestID budget.
type TooManyRequestsError struct {
	MaxRequestID uint64
}

func (e *TooManyRequestsError) Error() string {
	return fmt.Sprintf("track: request id budget exhausted (max %d)", e.MaxRequestID)
}

// ProtocolViolationError reports a violation of a track-manager invariant
// by the peer or the caller.
type ProtocolViolationError struct {
	Reason string
}

func (e *ProtocolViolationError) Error() string {
	return "track: protocol violation: " + e.Reason
}

func protocolViolation(reason string) error {
	return &ProtocolViolationError{Reason: reason}
}
