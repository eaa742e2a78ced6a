package moqt

import (
	"errors"
	"fmt"
)

// Sentinel errors for codec and protocol-level failures. Callers
// distinguish these programmatically with errors.Is.
var (
	ErrVarIntRange        = errors.New("moqt: varint value out of range")
	ErrIncomplete         = errors.New("moqt: incomplete data")
	ErrExcessPayload      = errors.New("moqt: excess payload after decode")
	ErrUnknownMessageType = errors.New("moqt: unknown control message type")
)

// ParseError indicates a failure to parse a specific field of a control
// message. It wraps the underlying error and records which field was
// being decoded. Message is the message type name (e.g. "SUBSCRIBE");
// it is left empty for shared primitives (Parameter, namespace tuples)
// that are not themselves a control message.
type ParseError struct {
	Message string
	Field   string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("moqt: parse %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("moqt: parse %s.%s: %v", e.Message, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ProtocolViolationError is a fatal, encode/decode-time error: a caller
// constructing an outbound message, or a peer's wire bytes, violated an
// invariant of the payload grammar (e.g. a group_order or filter_type
// outside its valid range).
type ProtocolViolationError struct {
	Reason string
}

func (e *ProtocolViolationError) Error() string {
	return "moqt: protocol violation: " + e.Reason
}

func protocolViolation(reason string) error {
	return &ProtocolViolationError{Reason: reason}
}
