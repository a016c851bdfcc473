package plume

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one character cell in the canvas grid. Wide characters (CJK,
// emoji) occupy multiple cells; the first holds the rune, the following
// ones are continuations with width 0.
type cell struct {
	r     rune
	style lipgloss.Style
	width uint8
}

// clipRegion is a resolved clip rectangle in cell coordinates, intersected
// down the clip stack.
type clipRegion struct {
	x0, y0, x1, y1 int
}

func (r clipRegion) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// Canvas is the cell grid display objects draw into. It supports nested
// clip rectangles so containers can confine their children.
type Canvas struct {
	width  int
	height int
	cells  []cell
	clips  []clipRegion
}

// NewCanvas creates a canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		clips:  []clipRegion{{0, 0, width, height}},
	}
	c.Clear()
	return c
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Clear resets every cell to a plain space.
func (c *Canvas) Clear() {
	blank := cell{r: ' ', width: 1}
	for i := range c.cells {
		c.cells[i] = blank
	}
}

func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

func (c *Canvas) clip() clipRegion {
	return c.clips[len(c.clips)-1]
}

// PushClip confines subsequent drawing to the given rectangle, intersected
// with the active clip.
func (c *Canvas) PushClip(x, y, w, h int) {
	cur := c.clip()
	next := clipRegion{x0: x, y0: y, x1: x + w, y1: y + h}
	if next.x0 < cur.x0 {
		next.x0 = cur.x0
	}
	if next.y0 < cur.y0 {
		next.y0 = cur.y0
	}
	if next.x1 > cur.x1 {
		next.x1 = cur.x1
	}
	if next.y1 > cur.y1 {
		next.y1 = cur.y1
	}
	c.clips = append(c.clips, next)
}

// PopClip restores the clip that was active before the matching PushClip.
func (c *Canvas) PopClip() {
	if len(c.clips) <= 1 {
		panic("plume: PopClip without matching PushClip")
	}
	c.clips = c.clips[:len(c.clips)-1]
}

// SetCell writes one rune at (x, y). Wide runes claim continuation cells to
// their right; writes outside the active clip are dropped.
func (c *Canvas) SetCell(x, y int, r rune, style lipgloss.Style) {
	if !c.clip().contains(x, y) {
		return
	}
	i := c.idx(x, y)
	if i < 0 {
		return
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return
	}
	c.cells[i] = cell{r: r, style: style, width: uint8(w)}
	for k := 1; k < w; k++ {
		if !c.clip().contains(x+k, y) {
			break
		}
		if j := c.idx(x+k, y); j >= 0 {
			c.cells[j] = cell{style: style}
		}
	}
}

// DrawText writes a single line of text starting at (x, y).
func (c *Canvas) DrawText(x, y int, text string, style lipgloss.Style) {
	for _, r := range text {
		c.SetCell(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
}

// FillRect fills a rectangle with one styled rune.
func (c *Canvas) FillRect(x, y, w, h int, r rune, style lipgloss.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.SetCell(col, row, r, style)
		}
	}
}

// String renders the grid to styled terminal output, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[c.idx(x, y)]
			if cl.width == 0 {
				continue
			}
			sb.WriteString(cl.style.Render(string(cl.r)))
		}
	}
	return sb.String()
}

// Row returns the plain text of one row, without styling. Mostly useful in
// tests.
func (c *Canvas) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		i := c.idx(x, y)
		if i < 0 {
			break
		}
		cl := c.cells[i]
		if cl.width == 0 {
			continue
		}
		sb.WriteRune(cl.r)
	}
	return sb.String()
}

// Drawable is implemented by display objects that paint themselves. Plain
// containers without a visual of their own simply skip it.
type Drawable interface {
	DrawTo(c *Canvas, x, y int)
}

// clipper is implemented by containers that confine their children to a
// rectangle.
type clipper interface {
	ClipRect() *Rect
}

// RenderTree paints a display tree onto the canvas, depth first in child
// order. Invisible and fully transparent subtrees are skipped; containers
// with a clip rect confine their descendants.
func RenderTree(c *Canvas, root DisplayObject) {
	renderNode(c, root, 0, 0)
}

func renderNode(c *Canvas, obj DisplayObject, offsetX, offsetY float64) {
	if !obj.Visible() || obj.Alpha() <= 0 {
		return
	}
	x := offsetX + obj.X() - obj.PivotX()
	y := offsetY + obj.Y() - obj.PivotY()
	ix, iy := int(x), int(y)

	clipped := false
	if cp, ok := obj.(clipper); ok {
		if rect := cp.ClipRect(); rect != nil {
			c.PushClip(ix+int(rect.X), iy+int(rect.Y), int(rect.Width), int(rect.Height))
			clipped = true
		}
	}
	if d, ok := obj.(Drawable); ok {
		d.DrawTo(c, ix, iy)
	}
	if container, ok := obj.(interface{ Children() []DisplayObject }); ok {
		for _, child := range container.Children() {
			renderNode(c, child, x, y)
		}
	}
	if clipped {
		c.PopClip()
	}
}
