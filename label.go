package plume

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Label is a leaf control that renders styled text and measures itself from
// the text's cell extent.
type Label struct {
	Control

	text  string
	style lipgloss.Style
	lines []string
}

// NewLabel creates a label with the given text and the default style.
func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.initControl(l.draw)
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.Invalidate(InvalidationData)
}

// Style returns the text style.
func (l *Label) Style() lipgloss.Style { return l.style }

// SetStyle replaces the text style.
func (l *Label) SetStyle(style lipgloss.Style) {
	if l.processStyleRestriction("style") {
		return
	}
	l.style = style
	l.Invalidate(InvalidationStyles)
}

func (l *Label) draw() {
	if l.IsInvalid(InvalidationData | InvalidationStyles) {
		l.lines = strings.Split(l.text, "\n")
	}
	if l.IsInvalid(InvalidationData | InvalidationStyles | InvalidationSize) {
		width := 0.0
		for _, line := range l.lines {
			if w := float64(runewidth.StringWidth(line)); w > width {
				width = w
			}
		}
		l.SaveMeasurements(width, float64(len(l.lines)))
	}
}

// DrawTo renders each line, clipped to the label's measured bounds.
func (l *Label) DrawTo(c *Canvas, x, y int) {
	height := int(l.actualHeight)
	for i, line := range l.lines {
		if i >= height {
			break
		}
		c.DrawText(x, y+i, line, l.style)
	}
}
