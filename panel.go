package plume

import "github.com/charmbracelet/lipgloss"

// Header is the default panel chrome: a single-row bar with a styled title.
type Header struct {
	Control

	title string
	style lipgloss.Style
}

// NewHeader creates a header with an empty title.
func NewHeader() *Header {
	h := &Header{}
	h.initControl(h.draw)
	return h
}

// Title returns the header title.
func (h *Header) Title() string { return h.title }

// SetTitle replaces the header title.
func (h *Header) SetTitle(title string) {
	if h.title == title {
		return
	}
	h.title = title
	h.Invalidate(InvalidationData)
}

// Style returns the title style.
func (h *Header) Style() lipgloss.Style { return h.style }

// SetStyle replaces the title style.
func (h *Header) SetStyle(style lipgloss.Style) {
	if h.processStyleRestriction("style") {
		return
	}
	h.style = style
	h.Invalidate(InvalidationStyles)
}

func (h *Header) draw() {
	if h.IsInvalid(InvalidationData | InvalidationStyles | InvalidationSize) {
		h.SaveMeasurements(float64(len([]rune(h.title))), 1)
	}
}

// DrawTo fills the header bar and renders the title.
func (h *Header) DrawTo(c *Canvas, x, y int) {
	c.FillRect(x, y, int(h.actualWidth), int(h.actualHeight), ' ', h.style)
	c.DrawText(x, y, h.title, h.style)
}

// Panel is a layout container with chrome: a header bar above the content
// view port and an optional footer below it. Chrome lives outside the item
// list, so the assigned layout never positions it; the panel reserves view
// port space for it instead.
type Panel struct {
	LayoutGroup

	header        DisplayObject
	footer        DisplayObject
	headerFactory func() DisplayObject
	footerFactory func() DisplayObject
	title         string
	padding       Edges

	focus          *FocusManager
	headerFocusPos int
	footerFocusPos int
}

// NewPanel creates a panel with the default header factory.
func NewPanel() *Panel {
	p := &Panel{
		headerFactory:  func() DisplayObject { return NewHeader() },
		headerFocusPos: -1,
		footerFocusPos: -1,
	}
	p.initControl(p.draw)
	p.resizeConns = make(map[DisplayObject]Connection)
	p.viewPortOffsets = p.chromeOffsets
	p.afterLayout = p.layoutChrome
	return p
}

// draw defers to the container pass after making sure the chrome exists.
func (p *Panel) draw() {
	if p.IsInvalid(InvalidationSkin | InvalidationState) {
		p.refreshChrome()
	}
	p.LayoutGroup.draw()
}

// Header returns the current header, creating it from the factory on the
// first validation.
func (p *Panel) Header() DisplayObject { return p.header }

// Footer returns the footer, or nil.
func (p *Panel) Footer() DisplayObject { return p.footer }

// SetHeaderFactory replaces how the header is created. The existing header
// is disposed and rebuilt on the next validation, keeping its place in any
// bound focus order.
func (p *Panel) SetHeaderFactory(factory func() DisplayObject) {
	p.headerFactory = factory
	if p.header != nil {
		p.retireChrome(&p.headerFocusPos, p.header)
		p.Sprite.RemoveChild(p.header)
		p.header.Dispose()
		p.header = nil
	}
	p.Invalidate(InvalidationSkin)
}

// SetFooterFactory replaces how the footer is created, mirroring the header
// factory: the existing footer is disposed and rebuilt on the next
// validation, keeping its place in any bound focus order.
func (p *Panel) SetFooterFactory(factory func() DisplayObject) {
	p.footerFactory = factory
	if p.footer != nil {
		p.retireChrome(&p.footerFocusPos, p.footer)
		p.Sprite.RemoveChild(p.footer)
		p.footer.Dispose()
		p.footer = nil
	}
	p.Invalidate(InvalidationSkin)
}

// SetFooter assigns the footer chrome directly, clearing any footer factory.
// Passing nil removes it.
func (p *Panel) SetFooter(footer DisplayObject) {
	if p.footer == footer {
		return
	}
	p.footerFactory = nil
	if p.footer != nil {
		p.retireChrome(&p.footerFocusPos, p.footer)
		p.Sprite.RemoveChild(p.footer)
	}
	p.footer = footer
	if footer != nil {
		// Chrome is appended raw so it stays above the layout items.
		p.Sprite.AddChildAt(footer, p.NumChildren())
		p.enrollChrome(&p.footerFocusPos, footer)
	}
	p.Invalidate(InvalidationSize)
}

// BindFocus joins the panel's focusable chrome to a tab order. Header and
// footer keep their traversal positions when the factories rebuild them.
func (p *Panel) BindFocus(f *FocusManager) {
	p.focus = f
	p.enrollChrome(&p.headerFocusPos, p.header)
	p.enrollChrome(&p.footerFocusPos, p.footer)
}

// Title returns the panel title.
func (p *Panel) Title() string { return p.title }

// SetTitle sets the title, forwarded to the header when it supports one.
func (p *Panel) SetTitle(title string) {
	if p.title == title {
		return
	}
	p.title = title
	p.Invalidate(InvalidationData)
	if h, ok := p.header.(interface{ SetTitle(string) }); ok {
		h.SetTitle(title)
	}
}

// Padding returns the space between the panel edge and both the chrome and
// the content view port.
func (p *Panel) Padding() Edges { return p.padding }

// SetPadding sets the space between the panel edge and its contents.
func (p *Panel) SetPadding(padding Edges) {
	if p.processStyleRestriction("padding") {
		return
	}
	if p.padding == padding {
		return
	}
	p.padding = padding
	p.Invalidate(InvalidationSize)
}

func (p *Panel) refreshChrome() {
	p.ignoreChildChangesButSetFlags = true
	if p.header == nil && p.headerFactory != nil {
		header := p.headerFactory()
		p.header = header
		p.Sprite.AddChildAt(header, p.NumChildren())
		if h, ok := header.(interface{ SetTitle(string) }); ok {
			h.SetTitle(p.title)
		}
		p.enrollChrome(&p.headerFocusPos, header)
	}
	if p.footer == nil && p.footerFactory != nil {
		footer := p.footerFactory()
		p.footer = footer
		p.Sprite.AddChildAt(footer, p.NumChildren())
		p.enrollChrome(&p.footerFocusPos, footer)
	}
	p.ignoreChildChangesButSetFlags = false
}

// enrollChrome adds focusable chrome to the bound tab order, reclaiming the
// position its predecessor held.
func (p *Panel) enrollChrome(pos *int, chrome DisplayObject) {
	if p.focus == nil {
		return
	}
	c, ok := chrome.(Focusable)
	if !ok {
		return
	}
	p.focus.RegisterAt(*pos, c)
	*pos = p.focus.Position(c)
}

// retireChrome drops outgoing chrome from the tab order, remembering where
// it sat so a replacement can take the same position.
func (p *Panel) retireChrome(pos *int, chrome DisplayObject) {
	if p.focus == nil {
		return
	}
	c, ok := chrome.(Focusable)
	if !ok {
		return
	}
	*pos = p.focus.Position(c)
	p.focus.Unregister(c)
}

// chromeOffsets reserves view port space: padding on every edge, plus the
// measured header height on top and footer height on the bottom. Chrome gets
// the panel's horizontal extent imposed before measuring, so chrome whose
// height depends on its width measures at the width it will be shown at.
func (p *Panel) chromeOffsets() Edges {
	inner := p.chromeWidth()
	offsets := p.padding
	offsets.Top += measureChrome(p.header, inner)
	offsets.Bottom += measureChrome(p.footer, inner)
	return offsets
}

// chromeWidth is the horizontal extent known before the layout pass, or
// Unset when the panel is sized by its content.
func (p *Panel) chromeWidth() float64 {
	width := p.explicitWidth
	if IsUnset(width) && p.autoSizeMode == AutoSizeStage && p.stage != nil {
		width = p.stage.StageWidth()
	}
	if IsUnset(width) {
		return Unset()
	}
	return maxFloat(0, width-p.padding.Horizontal())
}

func measureChrome(chrome DisplayObject, width float64) float64 {
	if chrome == nil {
		return 0
	}
	if !IsUnset(width) {
		chrome.SetWidth(width)
	}
	if v, ok := chrome.(Validating); ok {
		v.Validate()
	}
	h := chrome.Height()
	if IsUnset(h) {
		return 0
	}
	return h
}

// layoutChrome positions the header and footer once the panel's own
// measurement is final.
func (p *Panel) layoutChrome() {
	innerWidth := p.actualWidth - p.padding.Horizontal()
	if innerWidth < 0 {
		innerWidth = 0
	}
	if p.header != nil {
		p.header.SetX(p.padding.Left + p.header.PivotX())
		p.header.SetY(p.padding.Top + p.header.PivotY())
		p.header.SetWidth(innerWidth)
		if v, ok := p.header.(Validating); ok {
			v.Validate()
		}
	}
	if p.footer != nil {
		p.footer.SetX(p.padding.Left + p.footer.PivotX())
		p.footer.SetWidth(innerWidth)
		if v, ok := p.footer.(Validating); ok {
			v.Validate()
		}
		p.footer.SetY(p.actualHeight - p.padding.Bottom - measureChrome(p.footer, Unset()) + p.footer.PivotY())
	}
}

// Dispose releases the chrome before the container teardown runs.
func (p *Panel) Dispose() {
	p.retireChrome(&p.headerFocusPos, p.header)
	p.retireChrome(&p.footerFocusPos, p.footer)
	p.header = nil
	p.footer = nil
	p.headerFactory = nil
	p.footerFactory = nil
	p.LayoutGroup.Dispose()
}
