package plume

// ToggleButton is a button with a persistent selected state. Selection adds
// a second dimension to skin lookup and is flipped by tapping.
type ToggleButton struct {
	Button

	selected           bool
	selectedSkin       DisplayObject
	selectedStateSkins map[ButtonState]DisplayObject
	changed            Signal

	// group is the toggle group the button belongs to, if any. Membership
	// is exclusive; joining another group leaves this one.
	group *ToggleGroup
}

// NewToggleButton creates an unselected toggle button.
func NewToggleButton(label string) *ToggleButton {
	t := &ToggleButton{
		selectedStateSkins: make(map[ButtonState]DisplayObject),
	}
	t.label = label
	t.stateSkins = make(map[ButtonState]DisplayObject)
	t.initControl(t.draw)
	return t
}

// Selected reports the selection state.
func (t *ToggleButton) Selected() bool { return t.selected }

// SetSelected sets the selection state. Setting the current value is a
// no-op: no invalidation, no change notification.
func (t *ToggleButton) SetSelected(selected bool) {
	if t.selected == selected {
		return
	}
	t.selected = selected
	t.Invalidate(InvalidationSelected | InvalidationState)
	t.changed.Emit()
}

// Toggle flips the selection state.
func (t *ToggleButton) Toggle() {
	t.SetSelected(!t.selected)
}

// Changed is emitted after the selection state flips.
func (t *ToggleButton) Changed() *Signal { return &t.changed }

// SelectedSkin returns the fallback skin for the selected dimension.
func (t *ToggleButton) SelectedSkin() DisplayObject { return t.selectedSkin }

// SetSelectedSkin sets the fallback skin used while selected.
func (t *ToggleButton) SetSelectedSkin(skin DisplayObject) {
	if t.processStyleRestriction("selectedSkin") {
		if skin != nil {
			skin.Dispose()
		}
		return
	}
	if t.selectedSkin == skin {
		return
	}
	t.selectedSkin = skin
	t.Invalidate(InvalidationSkin)
}

// SelectedSkinForState returns the selected-dimension skin registered for a
// state, or nil.
func (t *ToggleButton) SelectedSkinForState(state ButtonState) DisplayObject {
	return t.selectedStateSkins[state]
}

// SetSelectedSkinForState registers a skin for one interaction state while
// selected.
func (t *ToggleButton) SetSelectedSkinForState(state ButtonState, skin DisplayObject) {
	if t.processStyleRestriction("selectedStateSkin") {
		if skin != nil {
			skin.Dispose()
		}
		return
	}
	if t.selectedStateSkins[state] == skin {
		return
	}
	if skin == nil {
		delete(t.selectedStateSkins, state)
	} else {
		t.selectedStateSkins[state] = skin
	}
	t.Invalidate(InvalidationSkin)
}

// Tap flips the selection, then activates the button.
func (t *ToggleButton) Tap() {
	if !t.enabled {
		return
	}
	t.Toggle()
	t.tapped.Emit()
}

// resolveSkin looks up with selection precedence: the per-state selected
// registration, the selected fallback, the per-state registration, the
// default.
func (t *ToggleButton) resolveSkin() DisplayObject {
	state := t.State()
	if t.selected {
		if skin, ok := t.selectedStateSkins[state]; ok {
			return skin
		}
		if t.selectedSkin != nil {
			return t.selectedSkin
		}
	}
	return t.skinForCurrentState()
}

func (t *ToggleButton) draw() {
	t.drawWith(t.resolveSkin())
}

// Dispose releases the selected-dimension skins, then the base button's.
func (t *ToggleButton) Dispose() {
	if t.selectedSkin != nil {
		if t.currentSkin == t.selectedSkin {
			t.savedSkin.restore(t.currentSkin)
			t.currentSkin = nil
		}
		t.selectedSkin.Dispose()
		t.selectedSkin = nil
	}
	for state, skin := range t.selectedStateSkins {
		if t.currentSkin == skin {
			t.savedSkin.restore(t.currentSkin)
			t.currentSkin = nil
		}
		skin.Dispose()
		delete(t.selectedStateSkins, state)
	}
	t.Button.Dispose()
}
