// Package session implements the moqt session state machine: the SETUP
// handshake, GOAWAY draining, and MAX_REQUEST_ID flow control described by
// draft-ietf-moq-transport-12 §3.
package session
