package layout

import "github.com/plumekit/plume/internal/observe"

// Direction specifies the main axis for laying out items.
type Direction uint8

const (
	Row    Direction = iota // Items laid out left-to-right
	Column                  // Items laid out top-to-bottom
)

// Justify specifies how items are packed along the main axis when the view
// port is larger than the content.
type Justify uint8

const (
	JustifyStart  Justify = iota // Pack at start
	JustifyCenter                // Center items
	JustifyEnd                   // Pack at end
)

// Align specifies how items are positioned on the cross axis.
type Align uint8

const (
	AlignStart  Align = iota // Align to start of cross axis
	AlignCenter              // Center on cross axis
	AlignEnd                 // Align to end of cross axis
	AlignFill                // Resize to fill the cross axis
)

// Flow lays items out in a single row or column with a configurable gap,
// padding, and alignment. It is stateful only in its own configuration;
// every configuration change emits the Changed signal exactly once.
type Flow struct {
	direction Direction
	gap       float64
	padding   Edges
	justify   Justify
	align     Align
	changed   observe.Signal
}

var _ Layout = (*Flow)(nil)

// NewFlow creates a flow layout along the given main axis.
func NewFlow(d Direction) *Flow {
	return &Flow{direction: d}
}

// Direction returns the main axis.
func (f *Flow) Direction() Direction { return f.direction }

// SetDirection sets the main axis.
func (f *Flow) SetDirection(d Direction) {
	if f.direction == d {
		return
	}
	f.direction = d
	f.changed.Emit()
}

// Gap returns the space between adjacent items on the main axis.
func (f *Flow) Gap() float64 { return f.gap }

// SetGap sets the space between adjacent items on the main axis.
func (f *Flow) SetGap(gap float64) {
	if f.gap == gap {
		return
	}
	f.gap = gap
	f.changed.Emit()
}

// Padding returns the padding between the view port edges and the content.
func (f *Flow) Padding() Edges { return f.padding }

// SetPadding sets the padding between the view port edges and the content.
func (f *Flow) SetPadding(p Edges) {
	if f.padding == p {
		return
	}
	f.padding = p
	f.changed.Emit()
}

// Justify returns the main-axis packing.
func (f *Flow) Justify() Justify { return f.justify }

// SetJustify sets the main-axis packing.
func (f *Flow) SetJustify(j Justify) {
	if f.justify == j {
		return
	}
	f.justify = j
	f.changed.Emit()
}

// Align returns the cross-axis alignment.
func (f *Flow) Align() Align { return f.align }

// SetAlign sets the cross-axis alignment.
func (f *Flow) SetAlign(a Align) {
	if f.align == a {
		return
	}
	f.align = a
	f.changed.Emit()
}

// Changed implements Layout.
func (f *Flow) Changed() *observe.Signal { return &f.changed }

// Layout implements Layout.
func (f *Flow) Layout(items []Item, bounds *ViewPortBounds, result *Result) {
	isRow := f.direction == Row

	// Main-axis/cross-axis views of the explicit bounds.
	explicitMain, explicitCross := bounds.ExplicitWidth, bounds.ExplicitHeight
	if !isRow {
		explicitMain, explicitCross = explicitCross, explicitMain
	}
	padMainStart, padMainEnd := f.padding.Left, f.padding.Right
	padCrossStart, padCrossEnd := f.padding.Top, f.padding.Bottom
	if !isRow {
		padMainStart, padMainEnd = f.padding.Top, f.padding.Bottom
		padCrossStart, padCrossEnd = f.padding.Left, f.padding.Right
	}
	// Inside the padding; NaN when the matching axis has no explicit bound.
	innerMain := explicitMain - padMainStart - padMainEnd
	innerCross := explicitCross - padCrossStart - padCrossEnd
	innerW, innerH := innerMain, innerCross
	if !isRow {
		innerW, innerH = innerCross, innerMain
	}

	// Measurement pass: settle item bounds, apply percent sizing.
	for _, item := range items {
		if !item.IncludeInLayout() {
			continue
		}
		if flex, ok := item.LayoutData().(*FlexData); ok && flex != nil {
			if !IsUnset(flex.PercentWidth) && !IsUnset(innerW) {
				item.SetWidth(innerW * flex.PercentWidth / 100)
			}
			if !IsUnset(flex.PercentHeight) && !IsUnset(innerH) {
				item.SetHeight(innerH * flex.PercentHeight / 100)
			}
		}
		if v, ok := item.(Validator); ok {
			v.Validate()
		}
	}

	// Position pass.
	originMain := bounds.X - bounds.ScrollX
	originCross := bounds.Y - bounds.ScrollY
	if !isRow {
		originMain, originCross = bounds.Y-bounds.ScrollY, bounds.X-bounds.ScrollX
	}
	cursor := originMain + padMainStart
	maxCross := 0.0
	placed := 0
	for _, item := range items {
		if !item.IncludeInLayout() {
			continue
		}
		mainSize := item.Width()
		crossSize := item.Height()
		pivotMain, pivotCross := item.PivotX(), item.PivotY()
		if !isRow {
			mainSize, crossSize = crossSize, mainSize
			pivotMain, pivotCross = pivotCross, pivotMain
		}

		// Cross-axis placement. Center/End need a known cross extent and a
		// measured item; unmeasured axes fall back to start alignment.
		crossPos := originCross + padCrossStart
		switch {
		case f.align == AlignFill && !IsUnset(innerCross):
			crossSize = innerCross
			if isRow {
				item.SetHeight(crossSize)
			} else {
				item.SetWidth(crossSize)
			}
		case f.align == AlignCenter && !IsUnset(innerCross) && !IsUnset(crossSize):
			crossPos += (innerCross - crossSize) / 2
		case f.align == AlignEnd && !IsUnset(innerCross) && !IsUnset(crossSize):
			crossPos += innerCross - crossSize
		}

		if isRow {
			item.SetX(cursor + pivotMain)
			item.SetY(crossPos + pivotCross)
		} else {
			item.SetY(cursor + pivotMain)
			item.SetX(crossPos + pivotCross)
		}

		// Unmeasured items occupy their list position but contribute no
		// extent on the unmeasured axis.
		if !IsUnset(mainSize) {
			cursor += mainSize
		}
		if !IsUnset(crossSize) && crossSize > maxCross {
			maxCross = crossSize
		}
		cursor += f.gap
		placed++
	}
	if placed > 0 {
		cursor -= f.gap
	}

	contentMain := cursor - originMain + padMainEnd
	if contentMain < 0 {
		contentMain = 0
	}
	contentCross := padCrossStart + maxCross + padCrossEnd

	// Resolve the final view port, then distribute any main-axis slack.
	contentW, contentH := contentMain, contentCross
	if !isRow {
		contentW, contentH = contentH, contentW
	}
	result.Reset()
	result.ContentX = bounds.X
	result.ContentY = bounds.Y
	result.ContentWidth = contentW
	result.ContentHeight = contentH
	result.ViewPortWidth = bounds.ResolveWidth(contentW)
	result.ViewPortHeight = bounds.ResolveHeight(contentH)

	resolvedMain := result.ViewPortWidth
	if !isRow {
		resolvedMain = result.ViewPortHeight
	}
	extra := resolvedMain - contentMain
	if extra <= 0 || f.justify == JustifyStart {
		return
	}
	offset := extra
	if f.justify == JustifyCenter {
		offset = extra / 2
	}
	for _, item := range items {
		if !item.IncludeInLayout() {
			continue
		}
		if isRow {
			item.SetX(item.X() + offset)
		} else {
			item.SetY(item.Y() + offset)
		}
	}
}
