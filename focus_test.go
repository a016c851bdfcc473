package plume

import "testing"

func TestFocusManager_RegisterFocusesFirst(t *testing.T) {
	f := NewFocusManager()
	a := NewButton("a")
	b := NewButton("b")
	f.Register(a)
	f.Register(b)

	if f.Current() != Focusable(a) || !a.Focused() {
		t.Error("the first registration should take focus")
	}
	if b.Focused() {
		t.Error("later registrations should not take focus")
	}
}

func TestFocusManager_NextPrevWrap(t *testing.T) {
	f := NewFocusManager()
	a := NewButton("a")
	b := NewButton("b")
	c := NewButton("c")
	f.Register(a)
	f.Register(b)
	f.Register(c)

	f.Next()
	if f.Current() != Focusable(b) {
		t.Fatal("Next should move to the second control")
	}
	f.Next()
	f.Next()
	if f.Current() != Focusable(a) || !a.Focused() || c.Focused() {
		t.Error("Next should wrap back to the first control")
	}

	f.Prev()
	if f.Current() != Focusable(c) {
		t.Error("Prev should wrap to the last control")
	}
}

func TestFocusManager_RegisterAtPreservesOrderAndFocus(t *testing.T) {
	f := NewFocusManager()
	a := NewButton("a")
	b := NewButton("b")
	f.Register(a)
	f.Register(b)
	f.Next() // focus b

	inserted := NewButton("inserted")
	f.RegisterAt(1, inserted)

	if f.Position(a) != 0 || f.Position(inserted) != 1 || f.Position(b) != 2 {
		t.Errorf("order = %d,%d,%d, want a,inserted,b at 0,1,2",
			f.Position(a), f.Position(inserted), f.Position(b))
	}
	if f.Current() != Focusable(b) {
		t.Error("insertion must not steal focus from the shifted control")
	}

	// Out-of-range positions append.
	tail := NewButton("tail")
	f.RegisterAt(-1, tail)
	if f.Position(tail) != 3 {
		t.Errorf("Position(tail) = %d, want appended at 3", f.Position(tail))
	}
}

func TestFocusManager_SkipsDisabled(t *testing.T) {
	f := NewFocusManager()
	a := NewButton("a")
	b := NewButton("b")
	c := NewButton("c")
	b.SetEnabled(false)
	f.Register(a)
	f.Register(b)
	f.Register(c)

	f.Next()
	if f.Current() != Focusable(c) {
		t.Error("traversal should skip disabled controls")
	}
}

func TestFocusManager_UnregisterMovesFocus(t *testing.T) {
	f := NewFocusManager()
	a := NewButton("a")
	b := NewButton("b")
	f.Register(a)
	f.Register(b)

	f.Unregister(a)
	if a.Focused() {
		t.Error("unregistered control should be blurred")
	}
	if f.Current() != Focusable(b) || !b.Focused() {
		t.Error("focus should move to the next registered control")
	}

	f.Unregister(b)
	if f.Current() != nil {
		t.Error("an empty manager has no focus")
	}
}

func TestFocusManager_Activate(t *testing.T) {
	f := NewFocusManager()
	b := NewButton("b")
	taps := 0
	b.Tapped().Connect(func() { taps++ })
	f.Register(b)

	f.Activate()
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestButton_FocusImpliesHover(t *testing.T) {
	b := NewButton("b")
	b.SetFocused(true)
	if b.State() != ButtonStateHover {
		t.Errorf("State() = %v, want hover while focused", b.State())
	}
	b.SetFocused(false)
	if b.State() != ButtonStateUp {
		t.Errorf("State() = %v, want up after blur", b.State())
	}
}
