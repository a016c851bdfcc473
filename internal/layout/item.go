package layout

import "github.com/plumekit/plume/internal/observe"

// Item is the geometry surface a layout manipulates. Display objects in the
// widget core implement it; the engine needs nothing else from them.
//
// Position is the location of the item's pivot point in the parent's
// coordinate space, so the visual top-left edge of an item is
// (X - PivotX, Y - PivotY).
type Item interface {
	X() float64
	SetX(x float64)
	Y() float64
	SetY(y float64)
	Width() float64
	SetWidth(w float64)
	Height() float64
	SetHeight(h float64)
	PivotX() float64
	PivotY() float64

	// IncludeInLayout reports whether the item opts in to layout
	// participation. Opted-out items keep their place in the item list but
	// the layout leaves their geometry untouched.
	IncludeInLayout() bool

	// LayoutData returns per-item layout configuration, or nil.
	// Layouts type-assert for the data they understand (e.g. *FlexData).
	LayoutData() any
}

// Validator is implemented by items that defer their own measurement.
// Layouts call Validate before reading an item's size so that every item has
// settled bounds before the container measures.
type Validator interface {
	Validate()
}

// Layout is the strategy contract: given an ordered item list and a bounds
// specification, position and size the participating items, and record the
// aggregate content and view port geometry in result.
type Layout interface {
	// Layout runs one pass. Implementations must leave opted-out items
	// untouched and must resolve result.ViewPortWidth/Height via the
	// explicit-else-clamped rule in ViewPortBounds.
	Layout(items []Item, bounds *ViewPortBounds, result *Result)

	// Changed notifies the owning container whenever any of the layout's
	// own configuration properties change. A layout has at most one owning
	// container at a time; the container disconnects when the layout is
	// swapped out.
	Changed() *observe.Signal
}

// VirtualLayout is implemented by layouts that can skip instantiating
// off-screen items. A plain container supplies no scroll or clipping context,
// so it must force virtualization off when such a layout is assigned.
type VirtualLayout interface {
	Layout
	SetUseVirtualLayout(use bool)
}

// FlexData is the per-item layout data understood by Flow: percentage sizing
// against the resolved view port. Unset fields leave the item's own size
// alone.
type FlexData struct {
	PercentWidth  float64
	PercentHeight float64
}

// NewFlexData returns FlexData with both percentages unset.
func NewFlexData() *FlexData {
	return &FlexData{PercentWidth: Unset(), PercentHeight: Unset()}
}
