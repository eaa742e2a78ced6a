// Package moqt implements the wire-protocol core of MoQT (Media-over-QUIC
// Transport, draft-ietf-moq-transport-12): the VarInt codec, the 29 control
// message payloads, and the outer Type|Length|Payload frame codec.
//
// Session lifecycle and track bookkeeping live in the [moqt/session] and
// [moqt/track] subpackages; a minimal transport abstraction and an in-memory
// test double live in [moqt/transport] and [moqt/mocktransport]. This
// package contains no session or relay logic.
package moqt
