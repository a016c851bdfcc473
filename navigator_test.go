package plume

import "testing"

// testScreen is a navigator screen exposing one named event.
type testScreen struct {
	fakeControl
	done Signal
}

func newTestScreen() *testScreen {
	s := &testScreen{}
	s.initControl(s.draw)
	return s
}

func (s *testScreen) ScreenEvent(name string) *Signal {
	if name == "done" {
		return &s.done
	}
	return nil
}

// newTestNavigator returns a navigator with two instance screens. With no
// stage attached, transitions complete synchronously.
func newTestNavigator() (*Navigator, *testScreen, *testScreen) {
	nav := NewNavigator()
	a := newTestScreen()
	b := newTestScreen()
	nav.AddScreen("a", NewScreenItem(a))
	nav.AddScreen("b", NewScreenItem(b))
	return nav, a, b
}

func TestNavigator_ShowScreen(t *testing.T) {
	nav, a, _ := newTestNavigator()

	if nav.State() != NavigatorEmpty {
		t.Fatalf("State() = %v, want empty", nav.State())
	}

	shown := nav.ShowScreen("a")
	if shown != DisplayObject(a) {
		t.Fatal("ShowScreen should return the screen instance")
	}
	if nav.State() != NavigatorShowing || nav.ActiveScreenID() != "a" {
		t.Errorf("state = %v id = %q, want showing a", nav.State(), nav.ActiveScreenID())
	}
	if a.Parent() == nil {
		t.Error("active screen should be on the navigator's display list")
	}
}

func TestNavigator_ShowScreen_SameInstanceFastPath(t *testing.T) {
	nav, a, _ := newTestNavigator()
	starts := 0
	nav.TransitionStart().Connect(func() { starts++ })

	nav.ShowScreen("a")
	shown := nav.ShowScreen("a")

	if shown != DisplayObject(a) {
		t.Error("re-showing the active instance should return it")
	}
	if starts != 1 {
		t.Errorf("transition starts = %d, want 1 (no transition for the active instance)", starts)
	}
}

func TestNavigator_SwitchScreens(t *testing.T) {
	nav, a, b := newTestNavigator()
	nav.ShowScreen("a")
	nav.ShowScreen("b")

	if nav.ActiveScreenID() != "b" {
		t.Errorf("ActiveScreenID() = %q, want b", nav.ActiveScreenID())
	}
	if a.Parent() != nil {
		t.Error("previous screen should be detached")
	}
	if b.Parent() == nil {
		t.Error("new screen should be attached")
	}
}

func TestNavigator_PendingShowReplacesDuringTransition(t *testing.T) {
	stage := NewStage(80, 24)
	nav, a, b := newTestNavigator()
	c := newTestScreen()
	nav.AddScreen("c", NewScreenItem(c))
	stage.AddChild(nav)

	completions := 0
	nav.TransitionComplete().Connect(func() { completions++ })

	nav.ShowScreen("a")
	if nav.State() != NavigatorTransitioning {
		t.Fatalf("State() = %v, want transitioning during warmup", nav.State())
	}

	// Both of these land in the single pending slot; the second replaces
	// the first.
	nav.ShowScreen("b")
	nav.ShowScreen("c")

	for i := 0; i < 20 && !(nav.State() == NavigatorShowing && nav.ActiveScreenID() == "c"); i++ {
		stage.Advance()
	}

	if nav.ActiveScreenID() != "c" {
		t.Fatalf("ActiveScreenID() = %q, want c", nav.ActiveScreenID())
	}
	if completions != 2 {
		t.Errorf("completions = %d, want 2 (a, then c; b never shown)", completions)
	}
	if b.Parent() != nil {
		t.Error("replaced pending screen must never be attached")
	}
	_ = a
}

func TestNavigator_CancelTransitionRollsBack(t *testing.T) {
	stage := NewStage(80, 24)
	nav, a, b := newTestNavigator()
	stage.AddChild(nav)

	nav.ShowScreen("a")
	for i := 0; i < 20 && nav.State() != NavigatorShowing; i++ {
		stage.Advance()
	}

	cancels := 0
	nav.TransitionCancel().Connect(func() { cancels++ })

	nav.ShowScreen("b")
	if nav.State() != NavigatorTransitioning {
		t.Fatal("expected an in-flight transition")
	}
	nav.CancelTransition()

	if nav.State() != NavigatorShowing || nav.ActiveScreenID() != "a" {
		t.Errorf("state = %v id = %q, want showing a after rollback", nav.State(), nav.ActiveScreenID())
	}
	if b.Parent() != nil {
		t.Error("incoming screen should be removed on cancel")
	}
	if !IsUnset(b.ExplicitWidth()) {
		t.Error("incoming screen's explicit sizing should be restored on cancel")
	}
	if cancels != 1 {
		t.Errorf("cancel notifications = %d, want 1", cancels)
	}
	_ = a
}

func TestNavigator_ClearScreen(t *testing.T) {
	nav, a, _ := newTestNavigator()
	nav.ShowScreen("a")
	nav.ClearScreen()

	if nav.State() != NavigatorEmpty || nav.ActiveScreen() != nil {
		t.Errorf("state = %v, want empty after clear", nav.State())
	}
	if a.Parent() != nil {
		t.Error("cleared screen should be detached")
	}

	// Clearing an empty navigator is a no-op.
	nav.ClearScreen()
	if nav.State() != NavigatorEmpty {
		t.Error("double clear should stay empty")
	}
}

func TestNavigator_RemoveActiveScreenClears(t *testing.T) {
	nav, a, _ := newTestNavigator()
	nav.ShowScreen("a")

	completions := 0
	nav.TransitionComplete().Connect(func() { completions++ })

	nav.RemoveScreen("a")
	if nav.State() != NavigatorEmpty {
		t.Errorf("State() = %v, want empty after removing the active screen", nav.State())
	}
	if a.Parent() != nil {
		t.Error("removed active screen should be detached")
	}
	if nav.HasScreen("a") {
		t.Error("screen should be unregistered")
	}
	if completions != 1 {
		t.Errorf("completion notifications = %d, want 1 for the implicit clear", completions)
	}
}

func TestNavigator_Panics(t *testing.T) {
	tests := map[string]func(*Navigator){
		"duplicate add": func(n *Navigator) {
			n.AddScreen("a", NewScreenItem(newTestScreen()))
		},
		"unknown show": func(n *Navigator) {
			n.ShowScreen("missing")
		},
		"unknown remove": func(n *Navigator) {
			n.RemoveScreen("missing")
		},
		"remove all while active": func(n *Navigator) {
			n.ShowScreen("a")
			n.RemoveAllScreens()
		},
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			nav, _, _ := newTestNavigator()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn(nav)
		})
	}
}

func TestNavigator_RemoveDuringTransitionPanics(t *testing.T) {
	stage := NewStage(80, 24)
	nav, _, _ := newTestNavigator()
	stage.AddChild(nav)
	nav.ShowScreen("a")

	defer func() {
		if recover() == nil {
			t.Error("removing a transitioning screen should panic")
		}
	}()
	nav.RemoveScreen("a")
}

func TestNavigator_ScreenEvents(t *testing.T) {
	nav, a, _ := newTestNavigator()
	nav.items["a"].SetEvent("done", "b")

	nav.ShowScreen("a")
	a.done.Emit()
	if nav.ActiveScreenID() != "b" {
		t.Errorf("ActiveScreenID() = %q, want b after the done event", nav.ActiveScreenID())
	}

	// Hiding a screen unwires its events.
	a.done.Emit()
	if nav.ActiveScreenID() != "b" {
		t.Error("events from a hidden screen must not navigate")
	}
}

func TestNavigator_ScreenEventCallback(t *testing.T) {
	nav, a, _ := newTestNavigator()
	var got *Navigator
	nav.items["a"].SetEvent("done", func(n *Navigator) { got = n })

	nav.ShowScreen("a")
	a.done.Emit()
	if got != nav {
		t.Error("callback actions should receive the navigator")
	}
}

func TestNavigator_UnknownScreenEventPanics(t *testing.T) {
	nav, _, _ := newTestNavigator()
	nav.items["a"].SetEvent("nope", "b")

	defer func() {
		if recover() == nil {
			t.Error("wiring an unpublished event should panic at show time")
		}
	}()
	nav.ShowScreen("a")
}

func TestNavigator_BadEventActionPanics(t *testing.T) {
	item := NewScreenItem(newTestScreen())
	defer func() {
		if recover() == nil {
			t.Error("a non-func, non-string action should panic")
		}
	}()
	item.SetEvent("done", 42)
}

func TestNavigator_FactoryScreensDisposedOnHide(t *testing.T) {
	nav := NewNavigator()
	var created *testScreen
	nav.AddScreen("f", NewScreenItemFactory(func() DisplayObject {
		created = newTestScreen()
		return created
	}))
	nav.AddScreen("other", NewScreenItem(newTestScreen()))

	nav.ShowScreen("f")
	first := created
	nav.ShowScreen("other")

	if !first.IsDisposed() {
		t.Error("factory screens should be disposed when hidden")
	}

	// A second show builds a fresh screen.
	nav.ShowScreen("f")
	if created == first {
		t.Error("factory should produce a new screen per show")
	}
}

func TestNavigator_PropertiesAppliedOnShow(t *testing.T) {
	nav := NewNavigator()
	s := newTestScreen()
	item := NewScreenItem(s)
	item.SetProperty("name", func(screen DisplayObject) {
		screen.SetName("configured")
	})
	nav.AddScreen("s", item)

	nav.ShowScreen("s")
	if s.Name() != "configured" {
		t.Errorf("Name() = %q, want property applied on show", s.Name())
	}
}

// delayedScreen gates its entry transition on an explicit ready signal.
type delayedScreen struct {
	fakeControl
	ready   Signal
	delayed bool
}

func (d *delayedScreen) TransitionDelayed() bool  { return d.delayed }
func (d *delayedScreen) TransitionReady() *Signal { return &d.ready }

func TestNavigator_TransitionDelayerGatesHandoff(t *testing.T) {
	stage := NewStage(80, 24)
	nav := NewNavigator()
	stage.AddChild(nav)

	d := &delayedScreen{delayed: true}
	d.initControl(d.draw)
	nav.AddScreen("d", NewScreenItem(d))

	nav.ShowScreen("d")
	for i := 0; i < 10; i++ {
		stage.Advance()
	}
	if nav.State() != NavigatorTransitioning {
		t.Fatalf("State() = %v, want transitioning until the screen is ready", nav.State())
	}
	if d.Visible() {
		t.Error("a delayed screen must stay hidden until it signals ready")
	}

	d.ready.Emit()
	if !d.Visible() {
		t.Error("readiness should reveal the screen")
	}
	for i := 0; i < 10 && nav.State() != NavigatorShowing; i++ {
		stage.Advance()
	}
	if nav.State() != NavigatorShowing || nav.ActiveScreenID() != "d" {
		t.Errorf("state = %v id = %q, want showing d after readiness", nav.State(), nav.ActiveScreenID())
	}
}

func TestNavigator_CancelDuringDelayRestoresVisibility(t *testing.T) {
	stage := NewStage(80, 24)
	nav := NewNavigator()
	stage.AddChild(nav)

	d := &delayedScreen{delayed: true}
	d.initControl(d.draw)
	nav.AddScreen("d", NewScreenItem(d))

	nav.ShowScreen("d")
	for i := 0; i < 10; i++ {
		stage.Advance()
	}
	if d.Visible() {
		t.Fatal("screen should be hidden while delaying")
	}

	nav.CancelTransition()
	if !d.Visible() {
		t.Error("cancel must leave the screen visible for its next show")
	}
	if nav.State() != NavigatorEmpty {
		t.Errorf("State() = %v, want empty after canceling the only show", nav.State())
	}
}

func TestNavigator_TransitionSelfCancelRollsBack(t *testing.T) {
	nav, a, b := newTestNavigator()
	nav.ShowScreen("a")

	cancels := 0
	nav.TransitionCancel().Connect(func() { cancels++ })

	// A transition that aborts itself instead of completing.
	nav.SetTransition(func(prev, next DisplayObject, sched *FrameScheduler, done func(canceled bool)) func() {
		done(true)
		return func() {}
	})
	nav.ShowScreen("b")

	if nav.State() != NavigatorShowing || nav.ActiveScreenID() != "a" {
		t.Errorf("state = %v id = %q, want showing a after the transition aborted", nav.State(), nav.ActiveScreenID())
	}
	if b.Parent() != nil {
		t.Error("aborted incoming screen should be detached")
	}
	if cancels != 1 {
		t.Errorf("cancel notifications = %d, want 1", cancels)
	}
	_ = a
}
