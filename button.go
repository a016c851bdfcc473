package plume

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ButtonState is the interaction state driving skin and style selection.
type ButtonState uint8

const (
	// ButtonStateUp is the resting state.
	ButtonStateUp ButtonState = iota
	// ButtonStateDown is the pressed state.
	ButtonStateDown
	// ButtonStateHover is the pointer-over state.
	ButtonStateHover
	// ButtonStateDisabled is forced whenever the control is disabled.
	ButtonStateDisabled
)

func (s ButtonState) String() string {
	switch s {
	case ButtonStateUp:
		return "up"
	case ButtonStateDown:
		return "down"
	case ButtonStateHover:
		return "hover"
	case ButtonStateDisabled:
		return "disabled"
	}
	return "unknown"
}

// Button is a tappable control with a text label and a skin per interaction
// state.
type Button struct {
	Control

	label      string
	labelStyle lipgloss.Style

	defaultSkin DisplayObject
	stateSkins  map[ButtonState]DisplayObject
	currentSkin DisplayObject
	savedSkin   savedSizes

	state   ButtonState
	focused bool
	tapped  Signal
}

// NewButton creates a button in the up state.
func NewButton(label string) *Button {
	b := &Button{
		label:      label,
		stateSkins: make(map[ButtonState]DisplayObject),
	}
	b.initControl(b.draw)
	return b
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) {
	if b.label == label {
		return
	}
	b.label = label
	b.Invalidate(InvalidationData)
}

// LabelStyle returns the text style.
func (b *Button) LabelStyle() lipgloss.Style { return b.labelStyle }

// SetLabelStyle replaces the text style.
func (b *Button) SetLabelStyle(style lipgloss.Style) {
	if b.processStyleRestriction("labelStyle") {
		return
	}
	b.labelStyle = style
	b.Invalidate(InvalidationStyles)
}

// DefaultSkin returns the skin used when no state-specific skin matches.
func (b *Button) DefaultSkin() DisplayObject { return b.defaultSkin }

// SetDefaultSkin sets the fallback skin for every state.
func (b *Button) SetDefaultSkin(skin DisplayObject) {
	if b.processStyleRestriction("defaultSkin") {
		if skin != nil {
			skin.Dispose()
		}
		return
	}
	if b.defaultSkin == skin {
		return
	}
	b.defaultSkin = skin
	b.Invalidate(InvalidationSkin)
}

// SkinForState returns the skin registered for a state, or nil.
func (b *Button) SkinForState(state ButtonState) DisplayObject {
	return b.stateSkins[state]
}

// SetSkinForState registers a skin for one interaction state.
func (b *Button) SetSkinForState(state ButtonState, skin DisplayObject) {
	if b.processStyleRestriction("stateSkin") {
		if skin != nil {
			skin.Dispose()
		}
		return
	}
	if b.stateSkins[state] == skin {
		return
	}
	if skin == nil {
		delete(b.stateSkins, state)
	} else {
		b.stateSkins[state] = skin
	}
	b.Invalidate(InvalidationSkin)
}

// State returns the current interaction state.
func (b *Button) State() ButtonState {
	if !b.enabled {
		return ButtonStateDisabled
	}
	return b.state
}

// SetState moves the button to a new interaction state. Drivers call this
// from pointer and key handling; a disabled button ignores it.
func (b *Button) SetState(state ButtonState) {
	if b.state == state {
		return
	}
	b.state = state
	b.Invalidate(InvalidationState)
}

// IsFocusable reports whether the button can take keyboard focus.
func (b *Button) IsFocusable() bool {
	return b.enabled && b.visible
}

// SetFocused moves keyboard focus onto or off the button. Focus implies the
// hover state so the active skin reflects it.
func (b *Button) SetFocused(focused bool) {
	if b.focused == focused {
		return
	}
	b.focused = focused
	if focused {
		b.SetState(ButtonStateHover)
	} else if b.state == ButtonStateHover {
		b.SetState(ButtonStateUp)
	}
	b.Invalidate(InvalidationFocus)
}

// Focused reports whether the button holds keyboard focus.
func (b *Button) Focused() bool { return b.focused }

// Tapped is emitted when Tap is called while the button is enabled.
func (b *Button) Tapped() *Signal { return &b.tapped }

// Tap activates the button.
func (b *Button) Tap() {
	if !b.enabled {
		return
	}
	b.tapped.Emit()
}

// skinForCurrentState resolves the active skin: state registration first,
// then the default.
func (b *Button) skinForCurrentState() DisplayObject {
	if skin, ok := b.stateSkins[b.State()]; ok {
		return skin
	}
	return b.defaultSkin
}

func (b *Button) draw() {
	b.drawWith(b.skinForCurrentState())
}

// drawWith runs the shared validation steps against a resolved skin. A
// toggle button installs its own draw and passes a selection-aware skin
// here.
func (b *Button) drawWith(skin DisplayObject) {
	if b.IsInvalid(InvalidationSkin | InvalidationState | InvalidationSelected) {
		b.refreshSkin(skin)
	}
	if b.IsInvalid(InvalidationData | InvalidationStyles | InvalidationSkin | InvalidationState | InvalidationSize | InvalidationSelected) {
		b.measure()
	}
	b.layoutSkin()
}

func (b *Button) refreshSkin(next DisplayObject) {
	if next == b.currentSkin {
		return
	}
	if b.currentSkin != nil {
		b.savedSkin.restore(b.currentSkin)
	}
	b.currentSkin = next
	if next != nil {
		b.savedSkin = saveSizes(next)
	}
}

func (b *Button) measure() {
	width := float64(runewidth.StringWidth(b.label))
	height := 1.0
	if b.currentSkin != nil {
		if v, ok := b.currentSkin.(Validating); ok {
			v.Validate()
		}
		if w := b.currentSkin.Width(); !IsUnset(w) && w > width {
			width = w
		}
		if h := b.currentSkin.Height(); !IsUnset(h) && h > height {
			height = h
		}
	}
	b.SaveMeasurements(width, height)
}

func (b *Button) layoutSkin() {
	skin := b.currentSkin
	if skin == nil {
		return
	}
	skin.SetX(skin.PivotX())
	skin.SetY(skin.PivotY())
	skin.SetWidth(b.actualWidth)
	skin.SetHeight(b.actualHeight)
	if v, ok := skin.(Validating); ok {
		v.Validate()
	}
}

// DrawTo renders the active skin, then the label centered on it.
func (b *Button) DrawTo(c *Canvas, x, y int) {
	if d, ok := b.currentSkin.(Drawable); ok {
		d.DrawTo(c, x, y)
	}
	w := int(b.actualWidth)
	lw := runewidth.StringWidth(b.label)
	tx := x
	if lw < w {
		tx += (w - lw) / 2
	}
	ty := y + int(b.actualHeight)/2
	c.DrawText(tx, ty, b.label, b.labelStyle)
}

// Dispose releases the skins before the control teardown runs.
func (b *Button) Dispose() {
	if b.currentSkin != nil {
		b.savedSkin.restore(b.currentSkin)
		b.currentSkin = nil
	}
	if b.defaultSkin != nil {
		b.defaultSkin.Dispose()
		b.defaultSkin = nil
	}
	for state, skin := range b.stateSkins {
		skin.Dispose()
		delete(b.stateSkins, state)
	}
	b.Control.Dispose()
}
