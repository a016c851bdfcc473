package observe

import "testing"

func TestSignal_Emit_CallsListenersInOrder(t *testing.T) {
	var s Signal
	var order []int

	s.Connect(func() { order = append(order, 1) })
	s.Connect(func() { order = append(order, 2) })

	s.Emit()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Emit() call order = %v, want [1 2]", order)
	}
}

func TestSignal_Disconnect_RemovesListener(t *testing.T) {
	var s Signal
	calls := 0

	c := s.Connect(func() { calls++ })
	s.Disconnect(c)
	s.Emit()

	if calls != 0 {
		t.Errorf("disconnected listener called %d times, want 0", calls)
	}
}

func TestSignal_Disconnect_UnknownConnectionIsNoOp(t *testing.T) {
	var s Signal
	s.Connect(func() {})

	// Must not panic or remove the real listener.
	s.Disconnect(Connection(999))

	if !s.HasListeners() {
		t.Error("Disconnect with unknown connection removed a real listener")
	}
}

func TestSignal_Emit_DisconnectDuringEmitIsSafe(t *testing.T) {
	var s Signal
	calls := 0

	var c1 Connection
	c1 = s.Connect(func() {
		calls++
		s.Disconnect(c1)
	})
	s.Connect(func() { calls++ })

	s.Emit()

	// Both listeners were present when the emit began.
	if calls != 2 {
		t.Errorf("first Emit() calls = %d, want 2", calls)
	}

	s.Emit()

	// Only the second listener remains.
	if calls != 3 {
		t.Errorf("second Emit() calls = %d, want 3", calls)
	}
}

func TestSignal_Emit_ConnectDuringEmitDefersToNextEmit(t *testing.T) {
	var s Signal
	lateCalls := 0

	s.Connect(func() {
		s.Connect(func() { lateCalls++ })
	})

	s.Emit()
	if lateCalls != 0 {
		t.Errorf("listener connected during emit ran in same emit, calls = %d", lateCalls)
	}

	s.Emit()
	if lateCalls != 1 {
		t.Errorf("listener connected during emit did not run on next emit, calls = %d", lateCalls)
	}
}

func TestSignal_Connect_NilListenerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Connect(nil) should panic")
		}
	}()

	var s Signal
	s.Connect(nil)
}
