package track

import (
	"context"
	"sync"

	"github.com/moqt-go/moqt"
)

const deliveryQueueDepth = 16

// ObjectMetadata identifies where an Object sits within a track.
type ObjectMetadata struct {
	TrackAlias uint64
	Group      uint64
	Object     uint64
	Priority   uint8
}

// Object is a single delivered unit of a track, fanned out to every
// subscriber of the track it belongs to.
type Object struct {
	Metadata ObjectMetadata
	Payload  []byte
}

// ObjectStream is the consumer side of a subscription's delivery queue.
type ObjectStream struct {
	ch <-chan Object
}

// Next blocks until an Object is available, the stream is closed, or ctx
// is done.
func (s *ObjectStream) Next(ctx context.Context) (Object, bool, error) {
	select {
	case obj, ok := <-s.ch:
		return obj, ok, nil
	case <-ctx.Done():
		return Object{}, false, ctx.Err()
	}
}

type trackState struct {
	name        string
	alias       uint64
	hasAlias    bool
	subscribers []chan Object
}

// Manager owns a session's track bookkeeping: the namespace of known
// tracks, the alias bindings established over SUBSCRIBE_OK/PUBLISH, the
// outstanding requests awaiting a response, and the request-ID budget
// negotiated with the peer via MAX_REQUEST_ID.
//
// tracks, aliases, requests, and counter are guarded by mu. The
// request-ID budget itself is not stored here: maxRequestID is owned by
// the attached session, which is the single source of truth, and the
// Manager only ever reads it through the injected accessor — collapsing
// what would otherwise be two independently-updated copies of the same
// value (see the design notes on MAX_REQUEST_ID ownership).
type Manager struct {
	mu       sync.RWMutex
	tracks   map[string]*trackState
	aliases  map[uint64]string
	requests map[uint64]string
	counter  uint64

	maxRequestID func() uint64
	controlTx    chan<- moqt.ControlMessage
}

// NewManager creates a Manager that emits SUBSCRIBE messages generated by
// SubscribeTrack onto controlTx, and allocates request IDs against the
// budget reported by maxRequestID.
func NewManager(controlTx chan<- moqt.ControlMessage, maxRequestID func() uint64) *Manager {
	return &Manager{
		tracks:       make(map[string]*trackState),
		aliases:      make(map[uint64]string),
		requests:     make(map[uint64]string),
		maxRequestID: maxRequestID,
		controlTx:    controlTx,
	}
}

// AddTrack idempotently registers name as a known track.
func (m *Manager) AddTrack(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tracks[name]; !ok {
		m.tracks[name] = &trackState{name: name}
	}
}

// AssignAlias binds alias to name. It fails with DuplicateTrackAliasError
// if the alias is already bound to any track.
func (m *Manager) AssignAlias(alias uint64, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assignAliasLocked(alias, name)
}

func (m *Manager) assignAliasLocked(alias uint64, name string) error {
	if _, ok := m.aliases[alias]; ok {
		return &DuplicateTrackAliasError{Alias: alias}
	}
	m.aliases[alias] = name
	return nil
}

// SetTrackAlias binds alias to name and records it on the track's state,
// creating the track if it does not already exist.
func (m *Manager) SetTrackAlias(name string, alias uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.assignAliasLocked(alias, name); err != nil {
		return err
	}
	state, ok := m.tracks[name]
	if !ok {
		state = &trackState{name: name}
		m.tracks[name] = state
	}
	state.alias = alias
	state.hasAlias = true
	return nil
}

// ResolveAlias returns the track name bound to alias, if any.
func (m *Manager) ResolveAlias(alias uint64) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	name, ok := m.aliases[alias]
	return name, ok
}

// NewRequestID allocates the next request ID, failing with
// TooManyRequestsError once the counter reaches the peer-advertised
// budget.
func (m *Manager) NewRequestID() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	max := m.maxRequestID()
	if m.counter >= max {
		return 0, &TooManyRequestsError{MaxRequestID: max}
	}
	id := m.counter
	m.counter++
	return id, nil
}

// SubscribeTrack registers a new subscription for name, allocates a
// request ID, creates a bounded delivery queue, and emits a SUBSCRIBE
// control message. It returns the allocated request ID and the stream the
// caller should read Objects from.
func (m *Manager) SubscribeTrack(ctx context.Context, name string) (uint64, *ObjectStream, error) {
	m.AddTrack(name)

	reqID, err := m.NewRequestID()
	if err != nil {
		return 0, nil, err
	}

	queue := make(chan Object, deliveryQueueDepth)

	m.mu.Lock()
	m.requests[reqID] = name
	state := m.tracks[name]
	state.subscribers = append(state.subscribers, queue)
	m.mu.Unlock()

	msg := moqt.Subscribe{
		RequestID:  reqID,
		TrackName:  name,
		Forward:    1,
		FilterType: moqt.FilterLatestObject,
	}

	select {
	case m.controlTx <- msg:
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	}

	return reqID, &ObjectStream{ch: queue}, nil
}

// HandleSubscribeOK resolves the outstanding request named by ok and binds
// its track alias. An unknown request ID is a protocol violation: the
// peer confirmed a request this manager never made.
func (m *Manager) HandleSubscribeOK(ok moqt.SubscribeOK) error {
	m.mu.Lock()
	name, found := m.requests[ok.RequestID]
	if found {
		delete(m.requests, ok.RequestID)
	}
	m.mu.Unlock()

	if !found {
		return protocolViolation("unknown request")
	}
	return m.SetTrackAlias(name, ok.TrackAlias)
}

// Deliver fans obj out to every subscriber of the track alias.TrackAlias
// resolves to. A subscriber whose queue is full blocks the caller —
// callers running on a shared I/O loop should wrap Deliver in a context
// with a deadline to bound how long a slow subscriber can stall delivery
// to the rest of the track.
func (m *Manager) Deliver(ctx context.Context, obj Object) error {
	m.mu.RLock()
	name, ok := m.aliases[obj.Metadata.TrackAlias]
	var sinks []chan Object
	if ok {
		if state, ok := m.tracks[name]; ok {
			sinks = append(sinks, state.subscribers...)
		}
	}
	m.mu.RUnlock()

	for _, sink := range sinks {
		select {
		case sink <- obj:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
