package plume

import (
	"math"
	"testing"
)

// wrapChrome reflows a fixed run of cells into however many rows its
// imposed width allows.
type wrapChrome struct {
	Control
	cells float64
}

func newWrapChrome(cells float64) *wrapChrome {
	c := &wrapChrome{cells: cells}
	c.initControl(c.draw)
	return c
}

func (c *wrapChrome) draw() {
	w := c.explicitWidth
	if IsUnset(w) || w <= 0 {
		c.SaveMeasurements(c.cells, 1)
		return
	}
	c.SaveMeasurements(w, math.Ceil(c.cells/w))
}

func TestPanel_DefaultHeaderCreated(t *testing.T) {
	p := NewPanel()
	p.Validate()

	header, ok := p.Header().(*Header)
	if !ok {
		t.Fatalf("Header() = %T, want *Header from the default factory", p.Header())
	}
	if header.Parent() == nil {
		t.Error("header should be on the panel's display list")
	}
	if p.ItemIndex(header) != -1 {
		t.Error("header must not appear in the layout item list")
	}
}

func TestPanel_ChromeOffsets(t *testing.T) {
	p := NewPanel()
	p.SetPadding(EdgeAll(10))
	p.Validate()

	header := p.Header().(*Header)
	header.SetHeight(30)

	offsets := p.chromeOffsets()
	want := Edges{Top: 40, Right: 10, Bottom: 10, Left: 10}
	if offsets != want {
		t.Errorf("offsets = %+v, want %+v", offsets, want)
	}

	footer := newTestBox(0, 0, 0, 5)
	p.SetFooter(footer)
	offsets = p.chromeOffsets()
	if offsets.Bottom != 15 {
		t.Errorf("Bottom = %v, want 15 with a footer of height 5", offsets.Bottom)
	}
}

func TestPanel_ChromePositioning(t *testing.T) {
	p := NewPanel()
	p.SetPadding(EdgeAll(10))
	p.SetWidth(100)
	p.SetHeight(60)
	footer := newTestBox(0, 0, 0, 5)
	p.SetFooter(footer)
	p.Validate()

	header := p.Header().(*Header)
	if header.X() != 10 || header.Y() != 10 {
		t.Errorf("header at (%v, %v), want (10, 10)", header.X(), header.Y())
	}
	if header.Width() != 80 {
		t.Errorf("header width = %v, want 80 (panel minus padding)", header.Width())
	}
	if footer.Y() != 45 {
		t.Errorf("footer Y = %v, want 45 (bottom minus padding and footer height)", footer.Y())
	}
	if footer.Width() != 80 {
		t.Errorf("footer width = %v, want 80", footer.Width())
	}
}

func TestPanel_ContentSizeIncludesChrome(t *testing.T) {
	p := NewPanel()
	p.SetPadding(EdgeAll(2))
	p.Validate()
	p.Header().(*Header).SetHeight(3)

	p.AddChild(newTestBox(0, 0, 20, 10))
	p.Invalidate(InvalidationSize)
	p.Validate()

	// Width: content 20 plus horizontal padding 4.
	if p.Width() != 24 {
		t.Errorf("Width() = %v, want 24", p.Width())
	}
	// Height: content 10, padding 4, header 3.
	if p.Height() != 17 {
		t.Errorf("Height() = %v, want 17", p.Height())
	}
}

func TestPanel_TitleForwarding(t *testing.T) {
	p := NewPanel()
	p.SetTitle("Accounts")
	p.Validate()

	header := p.Header().(*Header)
	if header.Title() != "Accounts" {
		t.Errorf("header title = %q, want title set before the header existed", header.Title())
	}

	p.SetTitle("Budgets")
	if header.Title() != "Budgets" {
		t.Errorf("header title = %q, want live forwarding", header.Title())
	}
}

func TestPanel_ChromeMeasuredAtImposedWidth(t *testing.T) {
	p := NewPanel()
	p.SetHeaderFactory(nil)
	p.SetWidth(20)
	chrome := newWrapChrome(40)
	p.SetFooter(chrome)

	offsets := p.chromeOffsets()
	if offsets.Bottom != 2 {
		t.Errorf("Bottom = %v, want 2 (40 cells rewrapped at width 20)", offsets.Bottom)
	}
	if chrome.Width() != 20 {
		t.Errorf("chrome width = %v, want the panel's inner width imposed before measuring", chrome.Width())
	}
}

func TestPanel_FooterFactory(t *testing.T) {
	p := NewPanel()
	p.SetFooterFactory(func() DisplayObject { return newTestBox(0, 0, 0, 3) })
	p.Validate()

	first := p.Footer()
	if first == nil {
		t.Fatal("footer factory should build the footer on validation")
	}

	p.SetFooterFactory(func() DisplayObject { return newTestBox(0, 0, 0, 4) })
	p.Validate()
	if p.Footer() == nil || p.Footer() == first {
		t.Error("replacing the factory should rebuild the footer")
	}
	if first.Parent() != nil {
		t.Error("previous footer should be detached")
	}
}

func TestPanel_ChromeKeepsFocusPositionAcrossRebuild(t *testing.T) {
	f := NewFocusManager()
	p := NewPanel()
	p.SetHeaderFactory(func() DisplayObject { return NewButton("close") })
	p.BindFocus(f)
	p.Validate()

	content := NewButton("ok")
	f.Register(content)

	if got := f.Position(p.Header().(*Button)); got != 0 {
		t.Fatalf("header position = %d, want 0 (ahead of content)", got)
	}

	p.SetHeaderFactory(func() DisplayObject { return NewButton("quit") })
	p.Validate()

	if got := f.Position(p.Header().(*Button)); got != 0 {
		t.Errorf("rebuilt header position = %d, want its predecessor's slot", got)
	}
	if got := f.Position(content); got != 1 {
		t.Errorf("content position = %d, want 1", got)
	}
}

func TestPanel_SetFooterReplaces(t *testing.T) {
	p := NewPanel()
	p.Validate()

	first := newTestBox(0, 0, 0, 2)
	second := newTestBox(0, 0, 0, 4)
	p.SetFooter(first)
	p.SetFooter(second)

	if first.Parent() != nil {
		t.Error("replaced footer should be detached")
	}
	if p.Footer() != second {
		t.Error("Footer() should return the replacement")
	}

	p.SetFooter(nil)
	if second.Parent() != nil || p.Footer() != nil {
		t.Error("SetFooter(nil) should remove the footer")
	}
}
