// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package plume

import (
	"github.com/plumekit/plume/internal/layout"
	"github.com/plumekit/plume/internal/observe"
)

// Signal is the change-notification primitive used throughout the package.
type Signal = observe.Signal

// Connection identifies a listener registration on a Signal.
type Connection = observe.Connection

// Layout positions a set of items within view port bounds.
type Layout = layout.Layout

// VirtualLayout is a layout that can skip off-screen items. Plain containers
// force virtualization off on assignment.
type VirtualLayout = layout.VirtualLayout

// LayoutItem is the geometry surface a layout manipulates.
// Every DisplayObject satisfies it.
type LayoutItem = layout.Item

// ViewPortBounds describes the space available to a layout pass.
type ViewPortBounds = layout.ViewPortBounds

// LayoutBoundsResult carries the output of a layout pass.
type LayoutBoundsResult = layout.Result

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// FlexData is per-item percentage sizing understood by FlowLayout.
type FlexData = layout.FlexData

// FlowLayout lays items out in a single row or column.
type FlowLayout = layout.Flow

// Direction specifies the main axis for laying out items.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies main-axis packing.
type Justify = layout.Justify

const (
	JustifyStart  = layout.JustifyStart
	JustifyCenter = layout.JustifyCenter
	JustifyEnd    = layout.JustifyEnd
)

// Align specifies cross-axis placement.
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
	AlignFill   = layout.AlignFill
)

// NewFlowLayout creates a flow layout along the given main axis.
func NewFlowLayout(d Direction) *FlowLayout {
	return layout.NewFlow(d)
}

// NewFlexData returns FlexData with both percentages unset.
func NewFlexData() *FlexData {
	return layout.NewFlexData()
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v float64) Edges {
	return layout.EdgeAll(v)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
