package main

import (
	"fmt"
	"os"

	"github.com/plumekit/plume"
)

func buildScreen(theme *plume.Theme, focus *plume.FocusManager, title, body string, nextEvent *plume.Signal) *plume.Panel {
	panel := plume.NewPanel()
	panel.SetTitle(title)
	panel.SetPadding(plume.EdgeAll(1))
	theme.SkinPanel(panel)

	flow := plume.NewFlowLayout(plume.Column)
	flow.SetGap(1)
	panel.SetLayout(flow)

	label := plume.NewLabel(body)
	label.SetStyle(theme.Text)
	panel.AddChild(label)

	next := plume.NewButton("Next screen")
	theme.SkinButton(next)
	next.Tapped().Connect(nextEvent.Emit)
	panel.AddChild(next)
	focus.Register(next)

	toggles := plume.NewToggleGroup()
	toggles.SetRequireSelection(true)
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		tb := plume.NewToggleButton(name)
		theme.SkinToggleButton(tb)
		panel.AddChild(tb)
		toggles.Add(tb)
		focus.Register(tb)
	}
	return panel
}

// demoScreen adapts a panel into a navigator screen with one "next" event.
type demoScreen struct {
	*plume.Panel
	next plume.Signal
}

func (s *demoScreen) ScreenEvent(name string) *plume.Signal {
	if name == "next" {
		return &s.next
	}
	return nil
}

func main() {
	theme := plume.DefaultTheme()

	app, err := plume.NewApp(
		plume.WithTheme(theme),
		plume.WithFrameRate(30),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	nav := plume.NewNavigator()
	nav.SetTransition(plume.SlideLeftTransition(12))
	app.Stage().AddChild(nav)

	home := &demoScreen{}
	home.Panel = buildScreen(theme, app.Focus(), "Home", "Welcome. Press q to quit.", &home.next)
	settings := &demoScreen{}
	settings.Panel = buildScreen(theme, app.Focus(), "Settings", "Nothing to configure yet.", &settings.next)

	homeItem := plume.NewScreenItem(home)
	homeItem.SetEvent("next", "settings")
	settingsItem := plume.NewScreenItem(settings)
	settingsItem.SetEvent("next", "home")

	nav.AddScreen("home", homeItem)
	nav.AddScreen("settings", settingsItem)
	nav.ShowScreen("home")

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
