package plume

import "math"

// Unset is the sentinel for a dimension that has not been specified or
// measured. It is never a real measurement; test with IsUnset.
func Unset() float64 {
	return math.NaN()
}

// IsUnset reports whether v is the unset-dimension sentinel.
func IsUnset(v float64) bool {
	return math.IsNaN(v)
}

// Rect is an axis-aligned rectangle in display coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// DisplayObject is the scene-graph contract the layout and validation
// pipeline operates on: geometry, visibility, and tree attachment.
//
// Positions locate the object's pivot point in the parent's coordinate
// space, so the visual top-left corner is (X - PivotX, Y - PivotY).
//
// DisplayObject can only be implemented by embedding BaseDisplay (or a type
// that embeds it, such as Sprite or Control); the tree-attachment methods
// are deliberately internal to the package.
type DisplayObject interface {
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
	SetPivot(px, py float64)
	Visible() bool
	SetVisible(visible bool)
	Alpha() float64
	SetAlpha(alpha float64)
	Name() string
	SetName(name string)

	// IncludeInLayout reports whether the object participates in its
	// parent's layout. Opted-out objects keep their child-list position
	// but layouts leave their geometry untouched.
	IncludeInLayout() bool
	SetIncludeInLayout(include bool)

	// LayoutData carries per-object layout configuration (e.g. *FlexData),
	// or nil.
	LayoutData() any
	SetLayoutData(data any)

	// Parent returns the containing sprite, or nil when detached.
	Parent() *Sprite

	// Stage returns the stage this object is attached to, or nil.
	Stage() *Stage

	// Dispose releases owned resources and detaches from the parent.
	// A disposed object must not be reused.
	Dispose()

	setParent(p *Sprite)
	attachStage(s *Stage)
}

// BaseDisplay is the embeddable display-object base. Construct concrete
// types through their New* functions; those call initDisplay to establish
// the unset-dimension and visibility defaults.
type BaseDisplay struct {
	x, y            float64
	width, height   float64
	pivotX, pivotY  float64
	visible         bool
	alpha           float64
	name            string
	includeInLayout bool
	layoutData      any
	parent          *Sprite
	stage           *Stage
	disposed        bool
}

// initDisplay establishes display defaults: dimensions unset, visible,
// fully opaque, participating in layout.
func (d *BaseDisplay) initDisplay() {
	d.width = Unset()
	d.height = Unset()
	d.visible = true
	d.alpha = 1
	d.includeInLayout = true
}

// X returns the horizontal position of the pivot point.
func (d *BaseDisplay) X() float64 { return d.x }

// SetX sets the horizontal position of the pivot point.
func (d *BaseDisplay) SetX(x float64) { d.x = x }

// Y returns the vertical position of the pivot point.
func (d *BaseDisplay) Y() float64 { return d.y }

// SetY sets the vertical position of the pivot point.
func (d *BaseDisplay) SetY(y float64) { d.y = y }

// Width returns the object's width, or Unset when unmeasured.
func (d *BaseDisplay) Width() float64 { return d.width }

// SetWidth sets the object's width.
func (d *BaseDisplay) SetWidth(w float64) { d.width = w }

// Height returns the object's height, or Unset when unmeasured.
func (d *BaseDisplay) Height() float64 { return d.height }

// SetHeight sets the object's height.
func (d *BaseDisplay) SetHeight(h float64) { d.height = h }

// PivotX returns the horizontal pivot offset.
func (d *BaseDisplay) PivotX() float64 { return d.pivotX }

// PivotY returns the vertical pivot offset.
func (d *BaseDisplay) PivotY() float64 { return d.pivotY }

// SetPivot sets the pivot offsets.
func (d *BaseDisplay) SetPivot(px, py float64) {
	d.pivotX = px
	d.pivotY = py
}

// Visible reports whether the object is rendered.
func (d *BaseDisplay) Visible() bool { return d.visible }

// SetVisible controls whether the object is rendered.
func (d *BaseDisplay) SetVisible(visible bool) { d.visible = visible }

// Alpha returns the object's opacity in [0, 1].
func (d *BaseDisplay) Alpha() float64 { return d.alpha }

// SetAlpha sets the object's opacity in [0, 1].
func (d *BaseDisplay) SetAlpha(alpha float64) { d.alpha = alpha }

// Name returns the object's debug name.
func (d *BaseDisplay) Name() string { return d.name }

// SetName sets the object's debug name.
func (d *BaseDisplay) SetName(name string) { d.name = name }

// IncludeInLayout implements DisplayObject.
func (d *BaseDisplay) IncludeInLayout() bool { return d.includeInLayout }

// SetIncludeInLayout implements DisplayObject.
func (d *BaseDisplay) SetIncludeInLayout(include bool) { d.includeInLayout = include }

// LayoutData implements DisplayObject.
func (d *BaseDisplay) LayoutData() any { return d.layoutData }

// SetLayoutData implements DisplayObject.
func (d *BaseDisplay) SetLayoutData(data any) { d.layoutData = data }

// Parent implements DisplayObject.
func (d *BaseDisplay) Parent() *Sprite { return d.parent }

// Stage implements DisplayObject.
func (d *BaseDisplay) Stage() *Stage { return d.stage }

// IsDisposed reports whether Dispose has run.
func (d *BaseDisplay) IsDisposed() bool { return d.disposed }

// Dispose implements DisplayObject.
func (d *BaseDisplay) Dispose() {
	d.disposed = true
	d.layoutData = nil
}

func (d *BaseDisplay) setParent(p *Sprite) { d.parent = p }

func (d *BaseDisplay) attachStage(s *Stage) { d.stage = s }

// depth returns the number of ancestors above this object. Detached objects
// have depth zero.
func (d *BaseDisplay) depth() int {
	depth := 0
	for p := d.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Sprite is a display object with an ordered child list. Structural
// mutations keep parent pointers and stage attachment consistent in the
// same operation.
type Sprite struct {
	BaseDisplay
	children []DisplayObject
}

// NewSprite creates an empty sprite.
func NewSprite() *Sprite {
	s := &Sprite{}
	s.initDisplay()
	return s
}

// NumChildren returns the number of children.
func (s *Sprite) NumChildren() int { return len(s.children) }

// ChildAt returns the child at index. Panics when index is out of range.
func (s *Sprite) ChildAt(index int) DisplayObject {
	if index < 0 || index >= len(s.children) {
		panic("plume: child index out of range")
	}
	return s.children[index]
}

// Children returns the child list. Callers must not mutate it.
func (s *Sprite) Children() []DisplayObject { return s.children }

// AddChild appends a child.
func (s *Sprite) AddChild(child DisplayObject) {
	s.AddChildAt(child, len(s.children))
}

// AddChildAt inserts a child at index, reparenting it away from any previous
// parent in the same operation.
func (s *Sprite) AddChildAt(child DisplayObject, index int) {
	if child == nil {
		panic("plume: nil child in AddChildAt")
	}
	if index < 0 || index > len(s.children) {
		panic("plume: child index out of range")
	}
	if prev := child.Parent(); prev != nil {
		prev.RemoveChild(child)
		if index > len(s.children) {
			index = len(s.children)
		}
	}
	s.children = append(s.children, nil)
	copy(s.children[index+1:], s.children[index:])
	s.children[index] = child
	child.setParent(s)
	child.attachStage(s.stage)
}

// RemoveChild removes a child. Returns true if the child was found.
func (s *Sprite) RemoveChild(child DisplayObject) bool {
	for i, c := range s.children {
		if c == child {
			s.RemoveChildAt(i)
			return true
		}
	}
	return false
}

// RemoveChildAt removes and returns the child at index.
// Panics when index is out of range.
func (s *Sprite) RemoveChildAt(index int) DisplayObject {
	if index < 0 || index >= len(s.children) {
		panic("plume: child index out of range")
	}
	child := s.children[index]
	s.children = append(s.children[:index], s.children[index+1:]...)
	child.setParent(nil)
	child.attachStage(nil)
	return child
}

// RemoveChildren removes all children.
func (s *Sprite) RemoveChildren() {
	for len(s.children) > 0 {
		s.RemoveChildAt(len(s.children) - 1)
	}
}

// ChildIndex returns the index of child, or -1 when not present.
func (s *Sprite) ChildIndex(child DisplayObject) int {
	for i, c := range s.children {
		if c == child {
			return i
		}
	}
	return -1
}

// SetChildIndex moves an existing child to a new index.
func (s *Sprite) SetChildIndex(child DisplayObject, index int) {
	current := s.ChildIndex(child)
	if current < 0 {
		panic("plume: SetChildIndex of a non-child")
	}
	if index < 0 || index >= len(s.children) {
		panic("plume: child index out of range")
	}
	s.children = append(s.children[:current], s.children[current+1:]...)
	s.children = append(s.children, nil)
	copy(s.children[index+1:], s.children[index:])
	s.children[index] = child
}

// SwapChildren exchanges the positions of two children.
func (s *Sprite) SwapChildren(a, b DisplayObject) {
	ia, ib := s.ChildIndex(a), s.ChildIndex(b)
	if ia < 0 || ib < 0 {
		panic("plume: SwapChildren of a non-child")
	}
	s.children[ia], s.children[ib] = s.children[ib], s.children[ia]
}

// SortChildren reorders children by the given comparison.
func (s *Sprite) SortChildren(less func(a, b DisplayObject) bool) {
	// Insertion sort keeps the mutation observable step by step and is
	// stable for equal elements.
	for i := 1; i < len(s.children); i++ {
		for j := i; j > 0 && less(s.children[j], s.children[j-1]); j-- {
			s.children[j-1], s.children[j] = s.children[j], s.children[j-1]
		}
	}
}

// Dispose implements DisplayObject. Children are disposed depth-first.
func (s *Sprite) Dispose() {
	for len(s.children) > 0 {
		child := s.children[len(s.children)-1]
		s.RemoveChildAt(len(s.children) - 1)
		child.Dispose()
	}
	s.BaseDisplay.Dispose()
}

func (s *Sprite) attachStage(stage *Stage) {
	s.BaseDisplay.attachStage(stage)
	for _, child := range s.children {
		child.attachStage(stage)
	}
}
