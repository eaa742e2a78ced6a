package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/moqt-go/moqt"
	"github.com/moqt-go/moqt/track"
	"github.com/moqt-go/moqt/transport"
)

// State is the session's position in the SETUP → Active → Closing
// lifecycle. Progression is monotone: a session never moves backward.
type State int

const (
	Initializing State = iota
	Active
	Closing
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Active:
		return "active"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Session owns the state machine for one moqt connection: setup
// handshake progression, GOAWAY draining, and the single source of truth
// for the peer-advertised MAX_REQUEST_ID budget (also consulted by the
// attached track.Manager via MaxRequestID).
//
// state, receivedGoAway, and maxRequestID are guarded by mu; every method
// below holds it only long enough to read or update these fields — no
// suspending operation runs while it is held.
type Session struct {
	mu             sync.Mutex
	state          State
	receivedGoAway bool
	maxRequestID   uint64

	isServer bool
	outbound chan moqt.ControlMessage
	tracks   *track.Manager
	log      *slog.Logger
}

// New creates a Session in the Initializing state, with its own
// track.Manager attached. isServer distinguishes which side of
// the GOAWAY direction-enforcement rule this endpoint is on: only a
// server may advertise a migration URI.
func New(isServer bool, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	outbound := make(chan moqt.ControlMessage, 64)
	s := &Session{
		isServer: isServer,
		outbound: outbound,
		log:      log,
	}
	s.tracks = track.NewManager(outbound, s.MaxRequestID)
	return s
}

// Tracks returns the session's track manager.
func (s *Session) Tracks() *track.Manager { return s.tracks }

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SendControl enqueues msg for transmission, waiting while the outbound
// buffer is full. It fails only with ctx's error: the outbound channel is
// never closed, so SendControl does not detect that Run has exited.
func (s *Session) SendControl(ctx context.Context, msg moqt.ControlMessage) error {
	select {
	case s.outbound <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CompleteSetup transitions Initializing → Active once CLIENT_SETUP and
// SERVER_SETUP have both been exchanged.
func (s *Session) CompleteSetup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Initializing {
		s.state = Active
		s.log.Debug("setup complete, session active")
	}
}

// HandleGoAway applies an incoming GOAWAY. Only a server may carry a
// migration URI; a client-originated GOAWAY with one is a protocol
// violation. A second GOAWAY in either direction is also a violation —
// the field is set-once.
func (s *Session) HandleGoAway(msg moqt.GoAway) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.receivedGoAway {
		return protocolViolation("multiple GOAWAY")
	}
	if s.isServer && msg.NewSessionURI != "" {
		return protocolViolation("GOAWAY from client contained URI")
	}

	s.receivedGoAway = true
	s.state = Closing
	s.log.Info("received GOAWAY", "new_session_uri", msg.NewSessionURI)
	return nil
}

// HandleMaxRequestID raises the session's request-ID budget, the single
// source of truth the attached track.Manager reads through its injected
// accessor. The new value must strictly exceed the current one.
func (s *Session) HandleMaxRequestID(msg moqt.MaxRequestID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.RequestID <= s.maxRequestID {
		return protocolViolation("MAX_REQUEST_ID decreased")
	}
	s.maxRequestID = msg.RequestID
	return nil
}

// MaxRequestID returns the current request-ID budget.
func (s *Session) MaxRequestID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxRequestID
}

// Run drives the session's control-stream I/O: one goroutine writes
// outbound messages as they are enqueued, another reads and dispatches
// inbound frames, until ctx is canceled or either direction fails. When
// that happens Run closes control, so a read blocked on it returns too.
func (s *Session) Run(ctx context.Context, control transport.BiStream, dispatch func(moqt.ControlMessage) error) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.writeLoop(ctx, control)
	})
	g.Go(func() error {
		err := s.readLoop(ctx, control, dispatch)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		control.Close()
		return ctx.Err()
	})

	return g.Wait()
}

func (s *Session) writeLoop(ctx context.Context, control transport.BiStream) error {
	for {
		select {
		case msg := <-s.outbound:
			frame, err := moqt.EncodeFrame(msg)
			if err != nil {
				return err
			}
			if _, err := control.Write(frame); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Session) readLoop(ctx context.Context, control transport.BiStream, dispatch func(moqt.ControlMessage) error) error {
	var buf []byte
	chunk := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		n, err := control.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		for {
			msg, consumed, decErr := moqt.DecodeFrame(buf)
			if decErr != nil {
				if errors.Is(decErr, moqt.ErrIncomplete) {
					break
				}
				return decErr
			}
			buf = buf[consumed:]
			if dispErr := dispatch(msg); dispErr != nil {
				return dispErr
			}
		}
		if err != nil {
			return err
		}
	}
}

func protocolViolation(reason string) error {
	return &ProtocolViolationError{Reason: reason}
}

// ProtocolViolationError is a fatal, session-ending error.
type ProtocolViolationError struct {
	Reason string
}

func (e *ProtocolViolationError) Error() string {
	return "session: protocol violation: " + e.Reason
}
