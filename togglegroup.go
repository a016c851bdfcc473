package plume

// ToggleGroup enforces exclusive selection across a set of toggle buttons.
// At most one member is selected; selecting a member deselects the previous
// one.
type ToggleGroup struct {
	items   []*ToggleButton
	conns   map[*ToggleButton]Connection
	current *ToggleButton
	// applying suppresses the member change listeners while the group
	// itself is rewriting selection.
	applying         bool
	requireSelection bool
	changed          Signal
}

// NewToggleGroup creates an empty group.
func NewToggleGroup() *ToggleGroup {
	return &ToggleGroup{conns: make(map[*ToggleButton]Connection)}
}

// RequireSelection reports whether the group refuses an empty selection.
func (g *ToggleGroup) RequireSelection() bool { return g.requireSelection }

// SetRequireSelection controls whether deselecting the current member is
// allowed. Turning it on with no selection selects the first member.
func (g *ToggleGroup) SetRequireSelection(require bool) {
	if g.requireSelection == require {
		return
	}
	g.requireSelection = require
	if require && g.current == nil && len(g.items) > 0 {
		g.Select(g.items[0])
	}
}

// Items returns the members in registration order. Callers must not mutate
// the slice.
func (g *ToggleGroup) Items() []*ToggleButton { return g.items }

// Selected returns the selected member, or nil.
func (g *ToggleGroup) Selected() *ToggleButton { return g.current }

// SelectedIndex returns the index of the selected member, or -1.
func (g *ToggleGroup) SelectedIndex() int {
	for i, item := range g.items {
		if item == g.current {
			return i
		}
	}
	return -1
}

// Changed is emitted after the group's selection moves.
func (g *ToggleGroup) Changed() *Signal { return &g.changed }

// Add registers a button with the group. Adding a member twice is a no-op.
// A button arriving already selected becomes the group selection. Membership
// is exclusive: a button already in another group leaves it first.
func (g *ToggleGroup) Add(button *ToggleButton) {
	if button == nil {
		panic("plume: Add of nil toggle button")
	}
	if _, ok := g.conns[button]; ok {
		return
	}
	if button.group != nil {
		button.group.Remove(button)
	}
	button.group = g
	g.items = append(g.items, button)
	g.conns[button] = button.Changed().Connect(func() {
		g.memberChanged(button)
	})
	if button.Selected() {
		g.Select(button)
	} else if g.requireSelection && g.current == nil {
		g.Select(button)
	}
}

// Remove detaches a button from the group. Removing the selected member
// clears the selection, or moves it to the first remaining member when a
// selection is required.
func (g *ToggleGroup) Remove(button *ToggleButton) {
	conn, ok := g.conns[button]
	if !ok {
		return
	}
	button.Changed().Disconnect(conn)
	delete(g.conns, button)
	button.group = nil
	for i, item := range g.items {
		if item == button {
			g.items = append(g.items[:i], g.items[i+1:]...)
			break
		}
	}
	if g.current != button {
		return
	}
	g.current = nil
	if g.requireSelection && len(g.items) > 0 {
		g.Select(g.items[0])
	} else {
		g.changed.Emit()
	}
}

// Select makes button the exclusive selection. Passing nil clears the
// selection unless one is required.
func (g *ToggleGroup) Select(button *ToggleButton) {
	if button != nil {
		if _, ok := g.conns[button]; !ok {
			panic("plume: Select of a button outside the group")
		}
	}
	if button == nil && g.requireSelection && len(g.items) > 0 {
		return
	}
	if g.current == button {
		return
	}
	previous := g.current
	g.current = button
	g.applying = true
	if previous != nil {
		previous.SetSelected(false)
	}
	if button != nil {
		button.SetSelected(true)
	}
	g.applying = false
	g.changed.Emit()
}

func (g *ToggleGroup) memberChanged(button *ToggleButton) {
	if g.applying {
		return
	}
	if button.Selected() {
		g.Select(button)
		return
	}
	// The selected member turned itself off.
	if g.current == button {
		if g.requireSelection {
			g.applying = true
			button.SetSelected(true)
			g.applying = false
			return
		}
		g.current = nil
		g.changed.Emit()
	}
}
