// Package track implements the per-session track and subscription
// bookkeeping: full-track-name to alias binding, outstanding request
// tracking, request-ID allocation against a peer-advertised budget, and
// fan-out of incoming Objects to subscriber delivery queues.
package track
