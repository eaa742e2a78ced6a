package transport

import (
	"context"
	"io"

	"github.com/quic-go/quic-go"
)

// quicConn is the subset of *quic.Conn this adapter depends on, factored
// out so tests can supply a fake without dialing real QUIC.
type quicConn interface {
	OpenStream() (*quic.Stream, error)
	AcceptStream(ctx context.Context) (*quic.Stream, error)
	OpenUniStream() (*quic.SendStream, error)
	AcceptUniStream(ctx context.Context) (*quic.ReceiveStream, error)
	SendDatagram(b []byte) error
	ReceiveDatagram(ctx context.Context) ([]byte, error)
	CloseWithError(quic.ApplicationErrorCode, string) error
}

// QUICConnection adapts an already-established quic-go connection to
// Transport. It assumes the handshake and any WebTransport/H3 upgrade
// have already happened; this adapter only moves bytes.
type QUICConnection struct {
	conn quicConn
}

// NewQUICConnection wraps conn as a Transport.
func NewQUICConnection(conn *quic.Conn) *QUICConnection {
	return &QUICConnection{conn: conn}
}

func (t *QUICConnection) OpenUniStream(ctx context.Context) (UniStream, error) {
	s, err := t.conn.OpenUniStream()
	if err != nil {
		return nil, err
	}
	return sendOnlyStream{s}, nil
}

func (t *QUICConnection) AcceptUniStream(ctx context.Context) (UniStream, error) {
	s, err := t.conn.AcceptUniStream(ctx)
	if err != nil {
		return nil, err
	}
	return receiveOnlyStream{s}, nil
}

func (t *QUICConnection) OpenBiStream(ctx context.Context) (BiStream, error) {
	s, err := t.conn.OpenStream()
	if err != nil {
		return nil, err
	}
	return quicBiStream{s}, nil
}

func (t *QUICConnection) AcceptBiStream(ctx context.Context) (BiStream, error) {
	s, err := t.conn.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return quicBiStream{s}, nil
}

func (t *QUICConnection) SendDatagram(ctx context.Context, data []byte) error {
	return t.conn.SendDatagram(data)
}

func (t *QUICConnection) ReceiveDatagram(ctx context.Context) ([]byte, error) {
	return t.conn.ReceiveDatagram(ctx)
}

func (t *QUICConnection) Close() error {
	return t.conn.CloseWithError(0, "session closed")
}

// sendOnlyStream adapts a quic.SendStream (write-only) to UniStream; Read
// always reports EOF since this side opened the stream as send-only.
type sendOnlyStream struct {
	s *quic.SendStream
}

func (u sendOnlyStream) Read([]byte) (int, error)  { return 0, io.EOF }
func (u sendOnlyStream) Write(p []byte) (int, error) { return u.s.Write(p) }
func (u sendOnlyStream) Close() error                { return u.s.Close() }

// receiveOnlyStream adapts a quic.ReceiveStream (read-only) to UniStream;
// Write always fails since this side never sends.
type receiveOnlyStream struct {
	s *quic.ReceiveStream
}

func (u receiveOnlyStream) Read(p []byte) (int, error) { return u.s.Read(p) }
func (u receiveOnlyStream) Write([]byte) (int, error)   { return 0, io.ErrClosedPipe }
func (u receiveOnlyStream) Close() error                { u.s.CancelRead(0); return nil }

// quicBiStream adapts a *quic.Stream to BiStream.
type quicBiStream struct {
	s *quic.Stream
}

func (b quicBiStream) Read(p []byte) (int, error)  { return b.s.Read(p) }
func (b quicBiStream) Write(p []byte) (int, error) { return b.s.Write(p) }
func (b quicBiStream) Close() error                { return b.s.Close() }

func (b quicBiStream) Split() (io.ReadCloser, io.WriteCloser) {
	return quicReadHalf{b.s}, quicWriteHalf{b.s}
}

type quicReadHalf struct{ s *quic.Stream }

func (r quicReadHalf) Read(p []byte) (int, error) { return r.s.Read(p) }
func (r quicReadHalf) Close() error                { r.s.CancelRead(0); return nil }

type quicWriteHalf struct{ s *quic.Stream }

func (w quicWriteHalf) Write(p []byte) (int, error) { return w.s.Write(p) }
func (w quicWriteHalf) Close() error                { return w.s.Close() }
