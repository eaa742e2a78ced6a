// Package mocktransport provides an in-memory pair of
// [github.com/moqt-go/moqt/transport.Transport] implementations, wired
// together with net.Pipe and buffered channels, for exercising a session
// or track manager without a real QUIC connection.
package mocktransport
