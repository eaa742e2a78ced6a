// Package transport defines the minimal byte-stream and datagram
// abstraction that a moqt session runs over. It deliberately says nothing
// about how a connection is established — QUIC handshake, TLS
// configuration, and WebTransport upgrade are the caller's concern — only
// what a session needs once a connection already exists: open/accept
// unidirectional and bidirectional streams, and best-effort datagrams.
//
// See [github.com/moqt-go/moqt/transport.QUICConnection] for an adapter
// over a live github.com/quic-go/quic-go connection, and
// [github.com/moqt-go/moqt/mocktransport] for an in-memory pair used in
// tests.
package transport
