package plume

import "github.com/charmbracelet/lipgloss"

// Skin is a leaf display object that fills its bounds with a styled rune.
// Containers and buttons use skins as resizable backgrounds.
type Skin struct {
	BaseDisplay

	style lipgloss.Style
	fill  rune
}

// NewSkin creates a skin filling with the space character.
func NewSkin(style lipgloss.Style) *Skin {
	s := &Skin{style: style, fill: ' '}
	s.initDisplay()
	return s
}

// Style returns the fill style.
func (s *Skin) Style() lipgloss.Style { return s.style }

// SetStyle replaces the fill style.
func (s *Skin) SetStyle(style lipgloss.Style) { s.style = style }

// Fill returns the fill rune.
func (s *Skin) Fill() rune { return s.fill }

// SetFill replaces the fill rune.
func (s *Skin) SetFill(r rune) { s.fill = r }

// DrawTo fills the skin's bounds on the canvas.
func (s *Skin) DrawTo(c *Canvas, x, y int) {
	if IsUnset(s.width) || IsUnset(s.height) {
		return
	}
	c.FillRect(x, y, int(s.width), int(s.height), s.fill, s.style)
}

// measurable is the explicit-measurement surface of Control. Skins that are
// controls get their full sizing contract saved and restored; plain display
// objects only carry width and height.
type measurable interface {
	ExplicitWidth() float64
	ExplicitHeight() float64
	MinWidth() float64
	MinHeight() float64
	MaxWidth() float64
	MaxHeight() float64
	SetMinWidth(float64)
	SetMinHeight(float64)
	SetMaxWidth(float64)
	SetMaxHeight(float64)
}

// savedSizes captures an object's sizing fields when it is adopted as a
// skin, so detaching restores the exact state it arrived with.
type savedSizes struct {
	isControl           bool
	width, height       float64
	minWidth, minHeight float64
	maxWidth, maxHeight float64
}

func saveSizes(obj DisplayObject) savedSizes {
	if m, ok := obj.(measurable); ok {
		return savedSizes{
			isControl: true,
			width:     m.ExplicitWidth(),
			height:    m.ExplicitHeight(),
			minWidth:  m.MinWidth(),
			minHeight: m.MinHeight(),
			maxWidth:  m.MaxWidth(),
			maxHeight: m.MaxHeight(),
		}
	}
	return savedSizes{width: obj.Width(), height: obj.Height()}
}

func (s savedSizes) restore(obj DisplayObject) {
	if m, ok := obj.(measurable); ok && s.isControl {
		obj.SetWidth(s.width)
		obj.SetHeight(s.height)
		m.SetMinWidth(s.minWidth)
		m.SetMinHeight(s.minHeight)
		m.SetMaxWidth(s.maxWidth)
		m.SetMaxHeight(s.maxHeight)
		return
	}
	obj.SetWidth(s.width)
	obj.SetHeight(s.height)
}
