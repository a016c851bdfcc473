package plume

import "github.com/plumekit/plume/internal/observe"

// Control is the embeddable validation base for every widget: it owns the
// dirty-flag set, the explicit/actual measurement fields, and the Validate
// entry point that defers recomputation until the frame-driven pass.
//
// Concrete widgets embed Control and register their draw pass through
// initControl. Setters mark specific flags via Invalidate; the stage's
// ValidationQueue later calls Validate once per control per pass.
type Control struct {
	Sprite

	draw         func()
	flags        InvalidationFlag
	delayedFlags InvalidationFlag
	validating   bool

	explicitWidth     float64
	explicitHeight    float64
	explicitMinWidth  float64
	explicitMinHeight float64
	explicitMaxWidth  float64
	explicitMaxHeight float64
	actualWidth       float64
	actualHeight      float64

	enabled    bool
	styleSheet *StyleSheet

	resized observe.Signal
}

// Resized is emitted whenever the actual dimensions change, either from an
// explicit setter or from a measurement pass. Containers connect to it to
// re-layout around resized children.
func (c *Control) Resized() *observe.Signal {
	return &c.resized
}

// initControl wires the concrete widget's draw pass into the validation
// machinery. Every embedding type's constructor must call it.
func (c *Control) initControl(draw func()) {
	c.initDisplay()
	c.draw = draw
	c.flags = InvalidationAll
	c.explicitWidth = Unset()
	c.explicitHeight = Unset()
	c.explicitMinWidth = Unset()
	c.explicitMinHeight = Unset()
	c.explicitMaxWidth = Unset()
	c.explicitMaxHeight = Unset()
	c.enabled = true
}

// Invalidate adds flags to the dirty set and schedules a validation pass if
// the control is attached to a stage. Invalidate(0) marks everything stale.
//
// Calling Invalidate from inside the control's own draw pass records the
// flags for the next pass instead of the current one.
func (c *Control) Invalidate(flags InvalidationFlag) {
	if flags == 0 {
		flags = InvalidationAll
	}
	if c.validating {
		c.delayedFlags |= flags
		return
	}
	wasInvalid := c.flags != 0
	c.flags |= flags
	if c.stage != nil && !wasInvalid {
		c.stage.Queue().Add(c)
	}
}

// setInvalidFlag records flags without scheduling a validation pass. Used by
// containers that defer-but-record child changes while a draw override is
// still mutating children.
func (c *Control) setInvalidFlag(flags InvalidationFlag) {
	if c.validating {
		c.delayedFlags |= flags
		return
	}
	c.flags |= flags
}

// IsInvalid reports whether any flag in mask is dirty. IsInvalid(0) reports
// whether the dirty set is non-empty.
func (c *Control) IsInvalid(mask InvalidationFlag) bool {
	if mask == 0 {
		return c.flags != 0
	}
	return c.flags.Any(mask)
}

// Validate runs the control's draw pass now if anything is dirty.
//
// Validate snapshots the flags present at entry, runs draw exactly once, and
// clears exactly the snapshotted flags: flags added during the draw (by
// child-change callbacks or re-entrant setters) remain pending for the next
// pass. A re-entrant Validate on the same control re-queues it rather than
// recursing.
func (c *Control) Validate() {
	if c.disposed || c.draw == nil || c.flags == 0 {
		return
	}
	if c.validating {
		if c.stage != nil {
			c.stage.Queue().Add(c)
		}
		return
	}
	c.validating = true
	c.draw()
	c.flags = c.delayedFlags
	c.delayedFlags = 0
	c.validating = false
	if c.flags != 0 && c.stage != nil {
		c.stage.Queue().Add(c)
	}
}

// ValidationDepth returns the control's depth in the display tree. The
// validation queue settles deeper controls first so children have final
// bounds before their parents measure.
func (c *Control) ValidationDepth() int {
	return c.depth()
}

// Width returns the last measured width. Unlike plain display objects a
// control always has a concrete measurement (zero before its first pass).
func (c *Control) Width() float64 { return c.actualWidth }

// SetWidth imposes an explicit width. Passing Unset returns the control to
// auto-measurement on its next validation pass.
func (c *Control) SetWidth(w float64) {
	if sameDimension(c.explicitWidth, w) {
		return
	}
	c.explicitWidth = w
	if IsUnset(w) {
		c.Invalidate(InvalidationSize)
		return
	}
	c.SaveMeasurements(w, c.actualHeight)
	c.Invalidate(InvalidationSize)
}

// Height returns the last measured height.
func (c *Control) Height() float64 { return c.actualHeight }

// SetHeight imposes an explicit height. Passing Unset returns the control to
// auto-measurement on its next validation pass.
func (c *Control) SetHeight(h float64) {
	if sameDimension(c.explicitHeight, h) {
		return
	}
	c.explicitHeight = h
	if IsUnset(h) {
		c.Invalidate(InvalidationSize)
		return
	}
	c.SaveMeasurements(c.actualWidth, h)
	c.Invalidate(InvalidationSize)
}

// ExplicitWidth returns the user-imposed width, or Unset.
func (c *Control) ExplicitWidth() float64 { return c.explicitWidth }

// ExplicitHeight returns the user-imposed height, or Unset.
func (c *Control) ExplicitHeight() float64 { return c.explicitHeight }

// MinWidth returns the user-imposed minimum width, or Unset.
func (c *Control) MinWidth() float64 { return c.explicitMinWidth }

// SetMinWidth imposes a minimum width used when auto-measuring.
func (c *Control) SetMinWidth(w float64) {
	if sameDimension(c.explicitMinWidth, w) {
		return
	}
	c.explicitMinWidth = w
	c.Invalidate(InvalidationSize)
}

// MinHeight returns the user-imposed minimum height, or Unset.
func (c *Control) MinHeight() float64 { return c.explicitMinHeight }

// SetMinHeight imposes a minimum height used when auto-measuring.
func (c *Control) SetMinHeight(h float64) {
	if sameDimension(c.explicitMinHeight, h) {
		return
	}
	c.explicitMinHeight = h
	c.Invalidate(InvalidationSize)
}

// MaxWidth returns the user-imposed maximum width, or Unset.
func (c *Control) MaxWidth() float64 { return c.explicitMaxWidth }

// SetMaxWidth imposes a maximum width used when auto-measuring.
func (c *Control) SetMaxWidth(w float64) {
	if sameDimension(c.explicitMaxWidth, w) {
		return
	}
	c.explicitMaxWidth = w
	c.Invalidate(InvalidationSize)
}

// MaxHeight returns the user-imposed maximum height, or Unset.
func (c *Control) MaxHeight() float64 { return c.explicitMaxHeight }

// SetMaxHeight imposes a maximum height used when auto-measuring.
func (c *Control) SetMaxHeight(h float64) {
	if sameDimension(c.explicitMaxHeight, h) {
		return
	}
	c.explicitMaxHeight = h
	c.Invalidate(InvalidationSize)
}

// SaveMeasurements records the result of a measurement step as the control's
// actual size. Explicit dimensions win over the measured values; measured
// values are clamped to the explicit min/max. Returns true when the actual
// size changed, in which case Resized has been emitted.
//
// Only the control's own draw pass and explicit setters may call this.
func (c *Control) SaveMeasurements(width, height float64) bool {
	if !IsUnset(c.explicitWidth) {
		width = c.explicitWidth
	} else {
		if !IsUnset(c.explicitMinWidth) && width < c.explicitMinWidth {
			width = c.explicitMinWidth
		}
		if !IsUnset(c.explicitMaxWidth) && width > c.explicitMaxWidth {
			width = c.explicitMaxWidth
		}
	}
	if !IsUnset(c.explicitHeight) {
		height = c.explicitHeight
	} else {
		if !IsUnset(c.explicitMinHeight) && height < c.explicitMinHeight {
			height = c.explicitMinHeight
		}
		if !IsUnset(c.explicitMaxHeight) && height > c.explicitMaxHeight {
			height = c.explicitMaxHeight
		}
	}
	if IsUnset(width) {
		width = 0
	}
	if IsUnset(height) {
		height = 0
	}
	resized := c.actualWidth != width || c.actualHeight != height
	c.actualWidth = width
	c.actualHeight = height
	if resized {
		c.Invalidate(InvalidationSize)
		c.resized.Emit()
	}
	return resized
}

// Enabled reports whether the control accepts interaction.
func (c *Control) Enabled() bool { return c.enabled }

// SetEnabled controls whether the control accepts interaction. Disabling
// switches state-keyed skins to their disabled variants.
func (c *Control) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	c.Invalidate(InvalidationState)
}

// StyleSheet returns the style-restriction context, or nil.
func (c *Control) StyleSheet() *StyleSheet { return c.styleSheet }

// SetStyleSheet sets the style-restriction context consulted by themed
// setters.
func (c *Control) SetStyleSheet(s *StyleSheet) { c.styleSheet = s }

// processStyleRestriction reports whether a themed property must be
// discarded. Setters that receive a restricted resource dispose it and
// leave state unchanged.
func (c *Control) processStyleRestriction(name string) bool {
	if c.styleSheet == nil {
		return false
	}
	return c.styleSheet.ProcessStyleRestriction(name)
}

func (c *Control) attachStage(stage *Stage) {
	c.Sprite.attachStage(stage)
	if stage != nil && c.flags != 0 {
		stage.Queue().Add(c)
	}
}

// sameDimension compares two dimensions treating two Unset values as equal.
func sameDimension(a, b float64) bool {
	if IsUnset(a) && IsUnset(b) {
		return true
	}
	return a == b
}
