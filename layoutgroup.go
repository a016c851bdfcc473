package plume

// AutoSizeMode governs how a container substitutes dimensions when its
// explicit size is unset.
type AutoSizeMode uint8

const (
	// AutoSizeContent sizes the container to its measured content.
	AutoSizeContent AutoSizeMode = iota
	// AutoSizeStage sizes the container to fill the stage.
	AutoSizeStage
)

// resizeNotifier is the resize surface of Control, discovered on children so
// the container can react to their geometry changes.
type resizeNotifier interface {
	Resized() *Signal
}

// LayoutGroup is the basic layout container: it owns an ordered item list
// kept in lockstep with its display children, delegates positioning to an
// assigned Layout (or measures manually when none is assigned), and manages
// a background skin and an optional clip rect.
type LayoutGroup struct {
	Control

	items      []DisplayObject
	layout     Layout
	layoutConn Connection

	// Scratch buffers reused across passes; never shared outside draw.
	viewPortBounds ViewPortBounds
	layoutResult   LayoutBoundsResult

	autoSizeMode AutoSizeMode
	clipContent  bool
	clipRect     *Rect

	backgroundSkin         DisplayObject
	backgroundDisabledSkin DisplayObject
	currentBackground      DisplayObject
	savedBackgroundSizes   savedSizes

	// Two-level child-change suppression: ignoreChildChanges drops child
	// resize notifications entirely while the container applies layout;
	// ignoreChildChangesButSetFlags records the layout flag without
	// scheduling while a composite subclass is still mutating children.
	ignoreChildChanges            bool
	ignoreChildChangesButSetFlags bool

	resizeConns map[DisplayObject]Connection

	// Composite hooks: viewPortOffsets reserves chrome space before the
	// inner layout runs; afterLayout positions chrome once the container's
	// own measurement is saved.
	viewPortOffsets func() Edges
	afterLayout     func()
}

// NewLayoutGroup creates an empty container with no layout assigned.
func NewLayoutGroup() *LayoutGroup {
	g := &LayoutGroup{
		resizeConns: make(map[DisplayObject]Connection),
	}
	g.initControl(g.draw)
	return g
}

// Layout returns the assigned layout, or nil when the container measures
// manually.
func (g *LayoutGroup) Layout() Layout { return g.layout }

// SetLayout assigns the layout strategy. The previous layout's change
// listener is detached; a virtual layout has virtualization forced off
// because a plain container supplies no scroll or clipping context.
func (g *LayoutGroup) SetLayout(l Layout) {
	if g.layout == l {
		return
	}
	if g.layout != nil {
		g.layout.Changed().Disconnect(g.layoutConn)
		g.layoutConn = 0
	}
	g.layout = l
	if l != nil {
		if vl, ok := l.(VirtualLayout); ok {
			vl.SetUseVirtualLayout(false)
		}
		g.layoutConn = l.Changed().Connect(func() {
			g.Invalidate(InvalidationLayout)
		})
	}
	g.Invalidate(InvalidationLayout)
}

// AutoSizeMode returns the auto-size mode.
func (g *LayoutGroup) AutoSizeMode() AutoSizeMode { return g.autoSizeMode }

// SetAutoSizeMode sets how unset explicit dimensions are substituted.
func (g *LayoutGroup) SetAutoSizeMode(mode AutoSizeMode) {
	if g.autoSizeMode == mode {
		return
	}
	g.autoSizeMode = mode
	g.Invalidate(InvalidationSize)
}

// ClipContent reports whether children are clipped to the container bounds.
func (g *LayoutGroup) ClipContent() bool { return g.clipContent }

// SetClipContent controls whether children are clipped to the container
// bounds.
func (g *LayoutGroup) SetClipContent(clip bool) {
	if g.clipContent == clip {
		return
	}
	g.clipContent = clip
	g.Invalidate(InvalidationSize)
}

// ClipRect returns the active clip rect, or nil when content is unclipped.
func (g *LayoutGroup) ClipRect() *Rect { return g.clipRect }

// BackgroundSkin returns the normal background skin.
func (g *LayoutGroup) BackgroundSkin() DisplayObject { return g.backgroundSkin }

// SetBackgroundSkin sets the skin rendered beneath the content. The skin is
// owned by the container and resized to match it on every pass.
func (g *LayoutGroup) SetBackgroundSkin(skin DisplayObject) {
	if g.processStyleRestriction("backgroundSkin") {
		if skin != nil {
			skin.Dispose()
		}
		return
	}
	if g.backgroundSkin == skin {
		return
	}
	g.backgroundSkin = skin
	g.Invalidate(InvalidationSkin)
}

// BackgroundDisabledSkin returns the skin used while the container is
// disabled, or nil.
func (g *LayoutGroup) BackgroundDisabledSkin() DisplayObject { return g.backgroundDisabledSkin }

// SetBackgroundDisabledSkin sets the skin used while the container is
// disabled. When nil, the normal background skin is used in every state.
func (g *LayoutGroup) SetBackgroundDisabledSkin(skin DisplayObject) {
	if g.processStyleRestriction("backgroundDisabledSkin") {
		if skin != nil {
			skin.Dispose()
		}
		return
	}
	if g.backgroundDisabledSkin == skin {
		return
	}
	g.backgroundDisabledSkin = skin
	g.Invalidate(InvalidationSkin)
}

// --- Child management (item list and display order move in lockstep) ---

// Items returns the layout-managed children in order. Callers must not
// mutate the slice.
func (g *LayoutGroup) Items() []DisplayObject { return g.items }

// AddChild appends a child to both the item list and the display list.
func (g *LayoutGroup) AddChild(child DisplayObject) {
	g.AddChildAt(child, len(g.items))
}

// AddChildAt inserts a child at the given item index. Layout items always
// occupy the leading display indices; composite chrome added through the
// embedded Sprite stays above them.
func (g *LayoutGroup) AddChildAt(child DisplayObject, index int) {
	if index < 0 || index > len(g.items) {
		panic("plume: child index out of range")
	}
	g.items = append(g.items, nil)
	copy(g.items[index+1:], g.items[index:])
	g.items[index] = child
	g.Sprite.AddChildAt(child, index)
	if rn, ok := child.(resizeNotifier); ok {
		g.resizeConns[child] = rn.Resized().Connect(g.childResized)
	}
	g.Invalidate(InvalidationLayout)
}

// RemoveChild removes a child from both lists. Returns true if found.
func (g *LayoutGroup) RemoveChild(child DisplayObject) bool {
	for i, item := range g.items {
		if item == child {
			g.RemoveChildAt(i)
			return true
		}
	}
	return false
}

// RemoveChildAt removes and returns the child at the given item index.
func (g *LayoutGroup) RemoveChildAt(index int) DisplayObject {
	if index < 0 || index >= len(g.items) {
		panic("plume: child index out of range")
	}
	child := g.items[index]
	g.items = append(g.items[:index], g.items[index+1:]...)
	g.Sprite.RemoveChild(child)
	if rn, ok := child.(resizeNotifier); ok {
		rn.Resized().Disconnect(g.resizeConns[child])
		delete(g.resizeConns, child)
	}
	g.Invalidate(InvalidationLayout)
	return child
}

// RemoveChildren removes every layout-managed child.
func (g *LayoutGroup) RemoveChildren() {
	for len(g.items) > 0 {
		g.RemoveChildAt(len(g.items) - 1)
	}
}

// ItemIndex returns the item index of child, or -1.
func (g *LayoutGroup) ItemIndex(child DisplayObject) int {
	for i, item := range g.items {
		if item == child {
			return i
		}
	}
	return -1
}

// SetChildIndex moves a child to a new item index, keeping display order in
// step.
func (g *LayoutGroup) SetChildIndex(child DisplayObject, index int) {
	current := g.ItemIndex(child)
	if current < 0 {
		panic("plume: SetChildIndex of a non-item child")
	}
	if index < 0 || index >= len(g.items) {
		panic("plume: child index out of range")
	}
	g.items = append(g.items[:current], g.items[current+1:]...)
	g.items = append(g.items, nil)
	copy(g.items[index+1:], g.items[index:])
	g.items[index] = child
	g.Sprite.SetChildIndex(child, index)
	g.Invalidate(InvalidationLayout)
}

// SwapChildren exchanges two children in both lists.
func (g *LayoutGroup) SwapChildren(a, b DisplayObject) {
	ia, ib := g.ItemIndex(a), g.ItemIndex(b)
	if ia < 0 || ib < 0 {
		panic("plume: SwapChildren of a non-item child")
	}
	g.items[ia], g.items[ib] = g.items[ib], g.items[ia]
	g.Sprite.SwapChildren(a, b)
	g.Invalidate(InvalidationLayout)
}

// SortChildren reorders the item list by the given comparison, mirroring the
// order into the display list.
func (g *LayoutGroup) SortChildren(less func(a, b DisplayObject) bool) {
	for i := 1; i < len(g.items); i++ {
		for j := i; j > 0 && less(g.items[j], g.items[j-1]); j-- {
			g.items[j-1], g.items[j] = g.items[j], g.items[j-1]
		}
	}
	for i, item := range g.items {
		g.Sprite.SetChildIndex(item, i)
	}
	g.Invalidate(InvalidationLayout)
}

func (g *LayoutGroup) childResized() {
	if g.ignoreChildChanges {
		return
	}
	if g.ignoreChildChangesButSetFlags {
		g.setInvalidFlag(InvalidationLayout)
		return
	}
	g.Invalidate(InvalidationLayout)
}

// --- Validation ---

func (g *LayoutGroup) draw() {
	layoutInvalid := g.IsInvalid(InvalidationLayout | InvalidationChildren)
	sizeInvalid := g.IsInvalid(InvalidationSize)
	skinInvalid := g.IsInvalid(InvalidationSkin)
	stateInvalid := g.IsInvalid(InvalidationState)
	scrollInvalid := g.IsInvalid(InvalidationScroll)

	if skinInvalid || stateInvalid {
		g.refreshBackgroundSkin()
	}

	if sizeInvalid || layoutInvalid || skinInvalid || stateInvalid {
		offsets := Edges{}
		if g.viewPortOffsets != nil {
			offsets = g.viewPortOffsets()
		}
		g.refreshViewPortBounds(offsets)

		g.ignoreChildChanges = true
		if g.layout != nil {
			g.layout.Layout(g.layoutItems(), &g.viewPortBounds, &g.layoutResult)
		} else {
			g.measureManual(&g.layoutResult)
		}
		g.ignoreChildChanges = false

		g.SaveMeasurements(
			g.layoutResult.ViewPortWidth+offsets.Horizontal(),
			g.layoutResult.ViewPortHeight+offsets.Vertical(),
		)
		if g.afterLayout != nil {
			g.afterLayout()
		}
		g.refreshBackgroundLayout()

		// One more settle so geometry churn from the layout pass cannot
		// flash a stale frame. Residual changes are recorded, not
		// re-entered.
		g.ignoreChildChangesButSetFlags = true
		g.validateChildren()
		g.ignoreChildChangesButSetFlags = false
	}

	if sizeInvalid || scrollInvalid {
		g.refreshClipRect()
	}
}

func (g *LayoutGroup) layoutItems() []LayoutItem {
	items := make([]LayoutItem, len(g.items))
	for i, item := range g.items {
		items[i] = item
	}
	return items
}

func (g *LayoutGroup) refreshViewPortBounds(offsets Edges) {
	b := &g.viewPortBounds
	b.Reset()
	b.X = offsets.Left
	b.Y = offsets.Top

	width := g.explicitWidth
	height := g.explicitHeight
	if g.autoSizeMode == AutoSizeStage && g.stage != nil {
		if IsUnset(width) {
			width = g.stage.StageWidth()
		}
		if IsUnset(height) {
			height = g.stage.StageHeight()
		}
	}
	if !IsUnset(width) {
		b.ExplicitWidth = width - offsets.Horizontal()
	}
	if !IsUnset(height) {
		b.ExplicitHeight = height - offsets.Vertical()
	}
	if !IsUnset(g.explicitMinWidth) {
		b.MinWidth = maxFloat(0, g.explicitMinWidth-offsets.Horizontal())
	}
	if !IsUnset(g.explicitMinHeight) {
		b.MinHeight = maxFloat(0, g.explicitMinHeight-offsets.Vertical())
	}
	if !IsUnset(g.explicitMaxWidth) {
		b.MaxWidth = maxFloat(0, g.explicitMaxWidth-offsets.Horizontal())
	}
	if !IsUnset(g.explicitMaxHeight) {
		b.MaxHeight = maxFloat(0, g.explicitMaxHeight-offsets.Vertical())
	}
}

// measureManual is the no-layout fallback: it never repositions children, it
// only measures their combined extent.
func (g *LayoutGroup) measureManual(result *LayoutBoundsResult) {
	b := &g.viewPortBounds
	maxX := 0.0
	maxY := 0.0
	for _, item := range g.items {
		if !item.IncludeInLayout() {
			continue
		}
		if v, ok := item.(Validating); ok {
			v.Validate()
		}
		// Children without a measurement yet are skipped on that axis.
		extentX := item.X() - item.PivotX() + item.Width()
		if !IsUnset(extentX) && extentX > maxX {
			maxX = extentX
		}
		extentY := item.Y() - item.PivotY() + item.Height()
		if !IsUnset(extentY) && extentY > maxY {
			maxY = extentY
		}
	}
	if !IsUnset(b.ExplicitWidth) && b.ExplicitWidth > maxX {
		maxX = b.ExplicitWidth
	}
	if !IsUnset(b.ExplicitHeight) && b.ExplicitHeight > maxY {
		maxY = b.ExplicitHeight
	}
	result.Reset()
	result.ContentX = b.X
	result.ContentY = b.Y
	result.ContentWidth = maxX
	result.ContentHeight = maxY
	result.ViewPortWidth = b.ResolveWidth(maxX)
	result.ViewPortHeight = b.ResolveHeight(maxY)
}

func (g *LayoutGroup) validateChildren() {
	for _, child := range g.children {
		if v, ok := child.(Validating); ok {
			v.Validate()
		}
	}
}

func (g *LayoutGroup) refreshBackgroundSkin() {
	next := g.backgroundSkin
	if !g.enabled && g.backgroundDisabledSkin != nil {
		next = g.backgroundDisabledSkin
	}
	if next == g.currentBackground {
		return
	}
	if g.currentBackground != nil {
		// Detaching restores the skin's pre-attachment dimension fields so
		// it measures correctly if reused elsewhere.
		g.savedBackgroundSizes.restore(g.currentBackground)
	}
	g.currentBackground = next
	if next != nil {
		g.savedBackgroundSizes = saveSizes(next)
	}
}

func (g *LayoutGroup) refreshBackgroundLayout() {
	bg := g.currentBackground
	if bg == nil {
		return
	}
	bg.SetX(bg.PivotX())
	bg.SetY(bg.PivotY())
	bg.SetWidth(g.actualWidth)
	bg.SetHeight(g.actualHeight)
	if v, ok := bg.(Validating); ok {
		v.Validate()
	}
}

func (g *LayoutGroup) refreshClipRect() {
	if !g.clipContent {
		g.clipRect = nil
		return
	}
	if g.clipRect == nil {
		g.clipRect = &Rect{}
	}
	g.clipRect.Width = g.actualWidth
	g.clipRect.Height = g.actualHeight
}

// DrawTo paints the background skin. It is not a display child, so the
// tree renderer cannot reach it on its own.
func (g *LayoutGroup) DrawTo(c *Canvas, x, y int) {
	if d, ok := g.currentBackground.(Drawable); ok {
		d.DrawTo(c, x, y)
	}
}

// Dispose releases the background skins and the layout listener before the
// display teardown runs.
func (g *LayoutGroup) Dispose() {
	if g.currentBackground != nil {
		g.savedBackgroundSizes.restore(g.currentBackground)
		g.currentBackground = nil
	}
	if g.backgroundSkin != nil {
		g.backgroundSkin.Dispose()
		g.backgroundSkin = nil
	}
	if g.backgroundDisabledSkin != nil {
		g.backgroundDisabledSkin.Dispose()
		g.backgroundDisabledSkin = nil
	}
	if g.layout != nil {
		g.layout.Changed().Disconnect(g.layoutConn)
		g.layout = nil
	}
	g.Control.Dispose()
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
