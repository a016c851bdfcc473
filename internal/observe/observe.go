// Package observe provides the change-notification primitive used across the
// widget core: a Signal is an explicit observer list that replaces ad hoc
// event-listener registration between parents and children.
//
// Signals are not goroutine-safe. All connection and emission happens on the
// single frame-driven loop that owns the display tree.
package observe

// Connection identifies a single listener registration on a Signal.
// The zero value is not a valid connection.
type Connection int

// Signal notifies registered listeners that something happened.
// Emission is synchronous and preserves registration order.
type Signal struct {
	conns  []conn
	nextID Connection
}

type conn struct {
	id Connection
	fn func()
}

// Connect registers fn and returns a Connection for later removal.
func (s *Signal) Connect(fn func()) Connection {
	if fn == nil {
		panic("observe: nil listener in Connect")
	}
	s.nextID++
	s.conns = append(s.conns, conn{id: s.nextID, fn: fn})
	return s.nextID
}

// Disconnect removes the listener registered under c.
// Disconnecting an unknown or already-removed connection is a no-op.
func (s *Signal) Disconnect(c Connection) {
	for i := range s.conns {
		if s.conns[i].id == c {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			return
		}
	}
}

// Emit calls every listener registered at the time of the call.
// Listeners connected during emission do not observe the current emit;
// listeners disconnected during emission are still called if they were
// present when the emit began.
func (s *Signal) Emit() {
	// Snapshot so handlers may connect/disconnect without corrupting iteration.
	conns := make([]conn, len(s.conns))
	copy(conns, s.conns)
	for i := range conns {
		conns[i].fn()
	}
}

// HasListeners reports whether any listener is currently registered.
func (s *Signal) HasListeners() bool {
	return len(s.conns) > 0
}
