package mocktransport

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/moqt-go/moqt/transport"
)

const incomingBuffer = 8

// Transport is an in-memory transport.Transport backed by net.Pipe
// connections, linked to a peer Transport created by the same Pair call.
type Transport struct {
	incomingUni  chan net.Conn
	incomingBi   chan net.Conn
	incomingDg   chan []byte

	peerUni chan<- net.Conn
	peerBi  chan<- net.Conn
	peerDg  chan<- []byte

	closed chan struct{}
}

// Pair returns two linked Transports; a stream or datagram opened on one
// side is delivered to the other side's Accept/Receive call.
func Pair() (a, b *Transport) {
	uniAB := make(chan net.Conn, incomingBuffer)
	uniBA := make(chan net.Conn, incomingBuffer)
	biAB := make(chan net.Conn, incomingBuffer)
	biBA := make(chan net.Conn, incomingBuffer)
	dgAB := make(chan []byte, incomingBuffer)
	dgBA := make(chan []byte, incomingBuffer)

	a = &Transport{
		incomingUni: uniBA, incomingBi: biBA, incomingDg: dgBA,
		peerUni: uniAB, peerBi: biAB, peerDg: dgAB,
		closed: make(chan struct{}),
	}
	b = &Transport{
		incomingUni: uniAB, incomingBi: biAB, incomingDg: dgAB,
		peerUni: uniBA, peerBi: biBA, peerDg: dgBA,
		closed: make(chan struct{}),
	}
	return a, b
}

func (t *Transport) OpenUniStream(ctx context.Context) (transport.UniStream, error) {
	local, remote := net.Pipe()
	select {
	case t.peerUni <- remote:
		return local, nil
	case <-ctx.Done():
		remote.Close()
		local.Close()
		return nil, ctx.Err()
	case <-t.closed:
		remote.Close()
		local.Close()
		return nil, errTransportClosed
	}
}

func (t *Transport) AcceptUniStream(ctx context.Context) (transport.UniStream, error) {
	select {
	case conn := <-t.incomingUni:
		return conn, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.closed:
		return nil, errTransportClosed
	}
}

func (t *Transport) OpenBiStream(ctx context.Context) (transport.BiStream, error) {
	local, remote := net.Pipe()
	select {
	case t.peerBi <- remote:
		return biStream{local}, nil
	case <-ctx.Done():
		remote.Close()
		local.Close()
		return nil, ctx.Err()
	case <-t.closed:
		remote.Close()
		local.Close()
		return nil, errTransportClosed
	}
}

func (t *Transport) AcceptBiStream(ctx context.Context) (transport.BiStream, error) {
	select {
	case conn := <-t.incomingBi:
		return biStream{conn}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.closed:
		return nil, errTransportClosed
	}
}

func (t *Transport) SendDatagram(ctx context.Context, data []byte) error {
	cp := append([]byte(nil), data...)
	select {
	case t.peerDg <- cp:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-t.closed:
		return errTransportClosed
	}
}

func (t *Transport) ReceiveDatagram(ctx context.Context) ([]byte, error) {
	select {
	case data := <-t.incomingDg:
		return data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.closed:
		return nil, errTransportClosed
	}
}

func (t *Transport) Close() error {
	select {
	case <-t.closed:
	default:
		close(t.closed)
	}
	return nil
}

var errTransportClosed = errors.New("mocktransport: transport closed")

// biStream wraps a single net.Conn (already full-duplex) to satisfy
// transport.BiStream. Split returns that same connection as both the read
// and the write half, so closing either half closes the whole stream; the
// halves cannot be closed independently.
type biStream struct {
	net.Conn
}

func (b biStream) Split() (io.ReadCloser, io.WriteCloser) {
	return b.Conn, b.Conn
}
