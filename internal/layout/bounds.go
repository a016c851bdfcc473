package layout

import "math"

// Unset is the sentinel for a dimension the caller did not specify.
// It is never a real measurement; test with math.IsNaN.
func Unset() float64 {
	return math.NaN()
}

// IsUnset reports whether v is the unset-dimension sentinel.
func IsUnset(v float64) bool {
	return math.IsNaN(v)
}

// ViewPortBounds describes the space available to a layout pass.
// A container recomputes it fresh each validation pass and passes it by
// reference into the layout; it is never persisted across passes.
type ViewPortBounds struct {
	// X and Y are the origin of the view port in the container's
	// coordinate space (a composite container's header/footer offsets
	// land here).
	X, Y float64

	// ScrollX and ScrollY are the current scroll offsets, for layouts
	// that position against a scrolled view port.
	ScrollX, ScrollY float64

	// ExplicitWidth and ExplicitHeight are the caller-imposed dimensions,
	// or unset when the layout must size to content.
	ExplicitWidth, ExplicitHeight float64

	// Min/Max clamp the content-derived dimensions when the explicit
	// dimension on that axis is unset.
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Reset returns the bounds to their defaults: origin and scroll at zero,
// explicit dimensions unset, minimums zero, maximums unbounded.
func (b *ViewPortBounds) Reset() {
	b.X = 0
	b.Y = 0
	b.ScrollX = 0
	b.ScrollY = 0
	b.ExplicitWidth = Unset()
	b.ExplicitHeight = Unset()
	b.MinWidth = 0
	b.MinHeight = 0
	b.MaxWidth = math.Inf(1)
	b.MaxHeight = math.Inf(1)
}

// ResolveWidth returns the final view port width for a measured content
// width: the explicit width when given, else the content width clamped to
// [MinWidth, MaxWidth].
func (b *ViewPortBounds) ResolveWidth(contentWidth float64) float64 {
	if !IsUnset(b.ExplicitWidth) {
		return b.ExplicitWidth
	}
	return clamp(contentWidth, b.MinWidth, b.MaxWidth)
}

// ResolveHeight returns the final view port height for a measured content
// height: the explicit height when given, else the content height clamped to
// [MinHeight, MaxHeight].
func (b *ViewPortBounds) ResolveHeight(contentHeight float64) float64 {
	if !IsUnset(b.ExplicitHeight) {
		return b.ExplicitHeight
	}
	return clamp(contentHeight, b.MinHeight, b.MaxHeight)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Result carries the output of a layout pass. One instance is reused per
// container and mutated in place; callers must treat it as a private scratch
// buffer, not shared state.
type Result struct {
	// ContentX and ContentY are the origin of the content bounding box.
	ContentX, ContentY float64

	// ContentWidth and ContentHeight are the total content bounds,
	// including any padding the layout defines.
	ContentWidth, ContentHeight float64

	// ViewPortWidth and ViewPortHeight are the resolved final view port
	// dimensions the container should adopt as its measurement.
	ViewPortWidth, ViewPortHeight float64
}

// Reset zeroes the result ahead of a layout pass.
func (r *Result) Reset() {
	*r = Result{}
}
