package moqt

import "fmt"

// Control message type codes, assigned by draft-ietf-moq-transport-12 §4.3.
const (
	MsgSubscribeUpdate         = 0x02
	MsgSubscribe               = 0x03
	MsgSubscribeOK             = 0x04
	MsgSubscribeError          = 0x05
	MsgAnnounce                = 0x06
	MsgAnnounceOK              = 0x07
	MsgAnnounceError           = 0x08
	MsgUnannounce              = 0x09
	MsgUnsubscribe             = 0x0A
	MsgSubscribeDone           = 0x0B
	MsgAnnounceCancel          = 0x0C
	MsgTrackStatusRequest      = 0x0D
	MsgTrackStatus             = 0x0E
	MsgGoAway                  = 0x10
	MsgSubscribeAnnounces      = 0x11
	MsgSubscribeAnnouncesOK    = 0x12
	MsgSubscribeAnnouncesError = 0x13
	MsgUnsubscribeAnnounces    = 0x14
	MsgMaxRequestID            = 0x15
	MsgFetch                   = 0x16
	MsgFetchCancel             = 0x17
	MsgFetchOK                 = 0x18
	MsgFetchError              = 0x19
	MsgRequestsBlocked         = 0x1A
	MsgPublish                 = 0x1D
	MsgPublishOK               = 0x1E
	MsgPublishError            = 0x1F
	MsgClientSetup             = 0x20
	MsgServerSetup             = 0x21
)

// ControlMessage is implemented by every payload type carried on a
// session's control stream. Type identifies the wire type code;
// encodePayload serializes everything after the Type|Length header.
type ControlMessage interface {
	Type() uint64
	encodePayload() ([]byte, error)
}

var controlDecoders = map[uint64]func([]byte) (ControlMessage, error){
	MsgSubscribeUpdate: wrap(decodeSubscribeUpdate),
	MsgSubscribe:       wrap(decodeSubscribe),
	MsgSubscribeOK:     wrap(decodeSubscribeOK),
	MsgSubscribeError:  wrap(decodeSubscribeError),
	MsgAnnounce:        wrap(decodeAnnounce),
	MsgAnnounceOK:      wrap(decodeAnnounceOK),
	MsgAnnounceError:   wrap(decodeAnnounceError),
	MsgUnannounce:      wrap(decodeUnannounce),
	MsgUnsubscribe:     wrap(decodeUnsubscribe),
	MsgSubscribeDone:   wrap(decodeSubscribeDone),
	MsgAnnounceCancel:  wrap(decodeAnnounceCancel),

	MsgTrackStatusRequest: wrap(decodeTrackStatusRequest),
	MsgTrackStatus:        wrap(decodeTrackStatus),

	MsgGoAway:                  wrap(decodeGoAway),
	MsgSubscribeAnnounces:      wrap(decodeSubscribeAnnounces),
	MsgSubscribeAnnouncesOK:    wrap(decodeSubscribeAnnouncesOK),
	MsgSubscribeAnnouncesError: wrap(decodeSubscribeAnnouncesError),
	MsgUnsubscribeAnnounces:    wrap(decodeUnsubscribeAnnounces),
	MsgMaxRequestID:            wrap(decodeMaxRequestID),

	MsgFetch:       wrap(decodeFetch),
	MsgFetchCancel: wrap(decodeFetchCancel),
	MsgFetchOK:     wrap(decodeFetchOK),
	MsgFetchError:  wrap(decodeFetchError),

	MsgRequestsBlocked: wrap(decodeRequestsBlocked),

	MsgPublish:      wrap(decodePublish),
	MsgPublishOK:    wrap(decodePublishOK),
	MsgPublishError: wrap(decodePublishError),

	MsgClientSetup: wrap(decodeClientSetup),
	MsgServerSetup: wrap(decodeServerSetup),
}

// wrap adapts a decodeXxx(data) (Xxx, error) function, whose Xxx value
// type satisfies ControlMessage, into the map's common signature.
func wrap[T ControlMessage](f func([]byte) (T, error)) func([]byte) (ControlMessage, error) {
	return func(data []byte) (ControlMessage, error) {
		return f(data)
	}
}

// decodeControlPayload dispatches a message's type code to the matching
// decoder registered in controlDecoders, the single place new message
// types must be added.
func decodeControlPayload(msgType uint64, payload []byte) (ControlMessage, error) {
	decode, ok := controlDecoders[msgType]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%x", ErrUnknownMessageType, msgType)
	}
	return decode(payload)
}
