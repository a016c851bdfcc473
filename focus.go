package plume

import "github.com/plumekit/plume/internal/debug"

// Focusable is implemented by controls that can hold keyboard focus.
type Focusable interface {
	// IsFocusable reports whether the control can currently take focus.
	// Disabled controls return false.
	IsFocusable() bool

	// SetFocused moves focus onto or off the control. Implementations
	// update visual state through their focus invalidation flag.
	SetFocused(focused bool)

	// Focused reports whether the control holds focus.
	Focused() bool
}

// tapper is the activation surface the focus traversal drives on enter.
type tapper interface {
	Tap()
}

// FocusManager tracks focus across a registered set of controls. It does
// not listen for keys itself; the driver calls Next, Prev, and Activate
// from its bindings.
type FocusManager struct {
	controls []Focusable
	current  int
}

// NewFocusManager creates an empty manager with nothing focused.
func NewFocusManager() *FocusManager {
	return &FocusManager{current: -1}
}

// Register adds a control to the traversal order. The first focusable
// registration takes focus.
func (f *FocusManager) Register(c Focusable) {
	f.controls = append(f.controls, c)
	if f.current == -1 && c.IsFocusable() {
		f.current = len(f.controls) - 1
		c.SetFocused(true)
		debug.Log("focus: auto-focused first registration %T", c)
	}
}

// RegisterAt inserts a control at a traversal position, shifting later
// registrations down. Out-of-range positions append. Containers use this to
// put a replacement control where its predecessor sat.
func (f *FocusManager) RegisterAt(pos int, c Focusable) {
	if pos < 0 || pos >= len(f.controls) {
		f.Register(c)
		return
	}
	f.controls = append(f.controls, nil)
	copy(f.controls[pos+1:], f.controls[pos:])
	f.controls[pos] = c
	if f.current >= pos {
		f.current++
	}
	if f.current == -1 && c.IsFocusable() {
		f.current = pos
		c.SetFocused(true)
	}
}

// Position returns a control's index in the traversal order, or -1.
func (f *FocusManager) Position(c Focusable) int {
	for i, reg := range f.controls {
		if reg == c {
			return i
		}
	}
	return -1
}

// Unregister removes a control. If it held focus, the next focusable
// control takes it.
func (f *FocusManager) Unregister(c Focusable) {
	idx := -1
	for i, reg := range f.controls {
		if reg == c {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	hadFocus := idx == f.current
	if hadFocus {
		c.SetFocused(false)
	}
	f.controls = append(f.controls[:idx], f.controls[idx+1:]...)
	switch {
	case len(f.controls) == 0:
		f.current = -1
	case hadFocus:
		f.current = -1
		f.focusFrom(idx % len(f.controls))
	case idx < f.current:
		f.current--
	}
}

// Current returns the focused control, or nil.
func (f *FocusManager) Current() Focusable {
	if f.current < 0 || f.current >= len(f.controls) {
		return nil
	}
	return f.controls[f.current]
}

// Next moves focus to the following focusable control, wrapping around.
func (f *FocusManager) Next() {
	f.move(1)
}

// Prev moves focus to the preceding focusable control, wrapping around.
func (f *FocusManager) Prev() {
	f.move(-1)
}

// Focus moves focus directly to a registered control. Unregistered or
// unfocusable controls are ignored.
func (f *FocusManager) Focus(c Focusable) {
	for i, reg := range f.controls {
		if reg == c && c.IsFocusable() {
			f.setCurrent(i)
			return
		}
	}
}

// Activate taps the focused control if it supports tapping.
func (f *FocusManager) Activate() {
	if t, ok := f.Current().(tapper); ok {
		t.Tap()
	}
}

func (f *FocusManager) move(step int) {
	n := len(f.controls)
	if n == 0 {
		return
	}
	if f.current < 0 {
		f.focusFrom(0)
		return
	}
	for i := 1; i <= n; i++ {
		idx := ((f.current+step*i)%n + n) % n
		if f.controls[idx].IsFocusable() {
			f.setCurrent(idx)
			return
		}
	}
}

func (f *FocusManager) focusFrom(start int) {
	n := len(f.controls)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if f.controls[idx].IsFocusable() {
			f.setCurrent(idx)
			return
		}
	}
}

func (f *FocusManager) setCurrent(idx int) {
	if idx == f.current {
		return
	}
	if prev := f.Current(); prev != nil {
		prev.SetFocused(false)
	}
	f.current = idx
	f.controls[idx].SetFocused(true)
}
