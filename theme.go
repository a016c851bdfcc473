package plume

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// StyleSheet marks themed properties a control must not accept. Once the
// caller styles a property directly, restricting it keeps a later theme
// pass from overwriting the hand-set value.
type StyleSheet struct {
	restricted map[string]bool
}

// NewStyleSheet creates an empty style sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{restricted: make(map[string]bool)}
}

// Restrict marks properties as hand-set. Themed setters consulting this
// sheet will discard values for them.
func (s *StyleSheet) Restrict(names ...string) {
	for _, name := range names {
		s.restricted[name] = true
	}
}

// IsRestricted reports whether a property is marked.
func (s *StyleSheet) IsRestricted(name string) bool {
	return s.restricted[name]
}

// ProcessStyleRestriction reports whether a themed setter must discard its
// value for the named property.
func (s *StyleSheet) ProcessStyleRestriction(name string) bool {
	return s.restricted[name]
}

// Theme is a palette of styles applied to controls as skins. Loadable from
// a TOML file; missing entries keep the default palette's values.
type Theme struct {
	Text       lipgloss.Style
	Header     lipgloss.Style
	Background lipgloss.Style

	ButtonStyles         map[ButtonState]lipgloss.Style
	SelectedButtonStyles map[ButtonState]lipgloss.Style
}

// themeConfig is the TOML shape. Every field is optional.
type themeConfig struct {
	Colors struct {
		Foreground string `toml:"foreground"`
		Background string `toml:"background"`
		Accent     string `toml:"accent"`
		Muted      string `toml:"muted"`
	} `toml:"colors"`
	Header struct {
		Foreground string `toml:"foreground"`
		Background string `toml:"background"`
		Bold       *bool  `toml:"bold"`
	} `toml:"header"`
	Button struct {
		Up       string `toml:"up"`
		Down     string `toml:"down"`
		Hover    string `toml:"hover"`
		Disabled string `toml:"disabled"`
		Selected string `toml:"selected"`
	} `toml:"button"`
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() *Theme {
	fg := lipgloss.Color("15")
	bg := lipgloss.Color("0")
	accent := lipgloss.Color("12")
	muted := lipgloss.Color("8")
	return &Theme{
		Text:       lipgloss.NewStyle().Foreground(fg),
		Header:     lipgloss.NewStyle().Foreground(bg).Background(accent).Bold(true),
		Background: lipgloss.NewStyle().Background(bg),
		ButtonStyles: map[ButtonState]lipgloss.Style{
			ButtonStateUp:       lipgloss.NewStyle().Foreground(fg).Background(muted),
			ButtonStateDown:     lipgloss.NewStyle().Foreground(bg).Background(fg),
			ButtonStateHover:    lipgloss.NewStyle().Foreground(fg).Background(accent),
			ButtonStateDisabled: lipgloss.NewStyle().Foreground(muted).Background(bg),
		},
		SelectedButtonStyles: map[ButtonState]lipgloss.Style{
			ButtonStateUp: lipgloss.NewStyle().Foreground(bg).Background(accent),
		},
	}
}

// LoadTheme reads a TOML palette file over the default theme.
func LoadTheme(path string) (*Theme, error) {
	var cfg themeConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("loading theme %s: %w", path, err)
	}
	t := DefaultTheme()

	if cfg.Colors.Foreground != "" {
		t.Text = t.Text.Foreground(lipgloss.Color(cfg.Colors.Foreground))
	}
	if cfg.Colors.Background != "" {
		t.Background = t.Background.Background(lipgloss.Color(cfg.Colors.Background))
	}
	if cfg.Header.Foreground != "" {
		t.Header = t.Header.Foreground(lipgloss.Color(cfg.Header.Foreground))
	}
	if cfg.Header.Background != "" {
		t.Header = t.Header.Background(lipgloss.Color(cfg.Header.Background))
	}
	if cfg.Header.Bold != nil {
		t.Header = t.Header.Bold(*cfg.Header.Bold)
	}
	if cfg.Button.Up != "" {
		t.ButtonStyles[ButtonStateUp] = t.ButtonStyles[ButtonStateUp].Background(lipgloss.Color(cfg.Button.Up))
	}
	if cfg.Button.Down != "" {
		t.ButtonStyles[ButtonStateDown] = t.ButtonStyles[ButtonStateDown].Background(lipgloss.Color(cfg.Button.Down))
	}
	if cfg.Button.Hover != "" {
		t.ButtonStyles[ButtonStateHover] = t.ButtonStyles[ButtonStateHover].Background(lipgloss.Color(cfg.Button.Hover))
	}
	if cfg.Button.Disabled != "" {
		t.ButtonStyles[ButtonStateDisabled] = t.ButtonStyles[ButtonStateDisabled].Background(lipgloss.Color(cfg.Button.Disabled))
	}
	if cfg.Button.Selected != "" {
		t.SelectedButtonStyles[ButtonStateUp] = t.SelectedButtonStyles[ButtonStateUp].Background(lipgloss.Color(cfg.Button.Selected))
	}
	return t, nil
}

// SkinButton installs per-state skins and the label style on a button.
// Properties restricted by the button's style sheet keep their hand-set
// values.
func (t *Theme) SkinButton(b *Button) {
	b.SetLabelStyle(t.Text)
	for state, style := range t.ButtonStyles {
		b.SetSkinForState(state, NewSkin(style))
	}
}

// SkinToggleButton styles a toggle button, including the selected
// dimension.
func (t *Theme) SkinToggleButton(b *ToggleButton) {
	t.SkinButton(&b.Button)
	for state, style := range t.SelectedButtonStyles {
		if state == ButtonStateUp {
			b.SetSelectedSkin(NewSkin(style))
			continue
		}
		b.SetSelectedSkinForState(state, NewSkin(style))
	}
}

// SkinPanel styles a panel's background and header.
func (t *Theme) SkinPanel(p *Panel) {
	p.SetBackgroundSkin(NewSkin(t.Background))
	if h, ok := p.Header().(*Header); ok {
		h.SetStyle(t.Header)
	}
}
