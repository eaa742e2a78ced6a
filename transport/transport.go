package transport

import (
	"context"
	"io"
)

// UniStream is a unidirectional, ordered, reliable byte stream. One side
// of the pair sees only Read, the other only Write, but both directions
// satisfy the same interface so a caller can treat either half uniformly.
type UniStream interface {
	io.Reader
	io.Writer
	io.Closer
}

// BiStream is a bidirectional byte stream that can be split into
// independent read and write halves, mirroring how QUIC and
// WebTransport streams expose half-close.
type BiStream interface {
	io.Reader
	io.Writer
	io.Closer

	// Split returns independent read and write halves of the stream.
	// Closing one half does not affect the other.
	Split() (io.ReadCloser, io.WriteCloser)
}

// Transport is the capability set a session needs from an established
// connection: open or accept unidirectional and bidirectional streams,
// and send a best-effort datagram. Receiving a datagram is optional —
// implementations that cannot support datagrams (e.g. a stream-only
// transport) may return ErrDatagramsUnsupported from both methods.
type Transport interface {
	OpenUniStream(ctx context.Context) (UniStream, error)
	AcceptUniStream(ctx context.Context) (UniStream, error)

	OpenBiStream(ctx context.Context) (BiStream, error)
	AcceptBiStream(ctx context.Context) (BiStream, error)

	SendDatagram(ctx context.Context, data []byte) error
	ReceiveDatagram(ctx context.Context) ([]byte, error)

	// Close tears down the transport and unblocks any pending
	// Open/Accept/Send/Receive call with an error.
	Close() error
}
