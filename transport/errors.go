package transport

import "errors"

// ErrDatagramsUnsupported is returned by SendDatagram/ReceiveDatagram
// implementations that run over a transport with no datagram capability.
var ErrDatagramsUnsupported = errors.New("transport: datagrams not supported")
