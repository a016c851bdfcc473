package plume

import "fmt"

// NavigatorState is the lifecycle phase of a Navigator.
type NavigatorState uint8

const (
	// NavigatorEmpty means no screen is shown.
	NavigatorEmpty NavigatorState = iota
	// NavigatorShowing means a screen is active and settled.
	NavigatorShowing
	// NavigatorTransitioning means a screen handoff is in progress.
	NavigatorTransitioning
)

func (s NavigatorState) String() string {
	switch s {
	case NavigatorEmpty:
		return "empty"
	case NavigatorShowing:
		return "showing"
	case NavigatorTransitioning:
		return "transitioning"
	}
	return "unknown"
}

// TransitionWarmupFrames is how many frames a freshly added screen gets to
// validate and render before its entry transition starts. It keeps the
// first animation frames from showing an unmeasured screen.
var TransitionWarmupFrames = 2

// TransitionDelayer is implemented by screens that need to postpone their
// entry transition, typically until data has loaded. The navigator waits
// for TransitionReady after the warmup frames.
type TransitionDelayer interface {
	TransitionDelayed() bool
	TransitionReady() *Signal
}

type wiredEvent struct {
	sig  *Signal
	conn Connection
}

// Navigator hosts registered screens and moves between them with animated
// transitions. At most one screen is active; a show requested during a
// transition is held in a single pending slot, where a newer request
// replaces an older one.
type Navigator struct {
	Control

	items      map[string]*ScreenItem
	transition Transition

	state NavigatorState

	activeID   string
	active     DisplayObject
	activeItem *ScreenItem

	incomingID     string
	incoming       DisplayObject
	incomingItem   *ScreenItem
	incomingHidden bool

	pendingID    string
	hasPending   bool
	pendingClear bool

	warmupTask       *FrameTask
	readySignal      *Signal
	readyConn        Connection
	cancelTransition func()

	savedScreenSizes map[DisplayObject]savedSizes
	wiredEvents      map[DisplayObject][]wiredEvent

	transitionStart    Signal
	transitionComplete Signal
	transitionCancel   Signal
}

// NewNavigator creates an empty navigator with the instant transition.
func NewNavigator() *Navigator {
	n := &Navigator{
		items:            make(map[string]*ScreenItem),
		transition:       InstantTransition(),
		savedScreenSizes: make(map[DisplayObject]savedSizes),
		wiredEvents:      make(map[DisplayObject][]wiredEvent),
	}
	n.initControl(n.draw)
	return n
}

// State returns the navigator lifecycle phase.
func (n *Navigator) State() NavigatorState { return n.state }

// ActiveScreenID returns the identifier of the active screen, or "".
func (n *Navigator) ActiveScreenID() string { return n.activeID }

// ActiveScreen returns the active screen, or nil.
func (n *Navigator) ActiveScreen() DisplayObject { return n.active }

// Transition returns the transition used for screen handoffs.
func (n *Navigator) Transition() Transition { return n.transition }

// SetTransition replaces the handoff transition. Passing nil restores the
// instant transition. An in-flight transition keeps the one it started
// with.
func (n *Navigator) SetTransition(t Transition) {
	if t == nil {
		t = InstantTransition()
	}
	n.transition = t
}

// TransitionStart is emitted when a screen handoff begins.
func (n *Navigator) TransitionStart() *Signal { return &n.transitionStart }

// TransitionComplete is emitted after a handoff finishes and the new screen
// is settled, including the implicit clear when the active screen is
// unregistered.
func (n *Navigator) TransitionComplete() *Signal { return &n.transitionComplete }

// TransitionCancel is emitted after CancelTransition rolls a handoff back.
func (n *Navigator) TransitionCancel() *Signal { return &n.transitionCancel }

// HasScreen reports whether an identifier is registered.
func (n *Navigator) HasScreen(id string) bool {
	_, ok := n.items[id]
	return ok
}

// AddScreen registers a screen item under an identifier. Reusing an
// identifier is a programming error.
func (n *Navigator) AddScreen(id string, item *ScreenItem) {
	if item == nil {
		panic("plume: AddScreen with nil item")
	}
	if _, ok := n.items[id]; ok {
		panic(fmt.Sprintf("plume: screen %q already registered", id))
	}
	n.items[id] = item
}

// RemoveScreen unregisters an identifier. Removing the active screen hides
// it, leaves the navigator empty, and emits TransitionComplete for the
// implicit clear. Removing either side of an in-flight transition is a
// programming error.
func (n *Navigator) RemoveScreen(id string) {
	if _, ok := n.items[id]; !ok {
		panic(fmt.Sprintf("plume: screen %q is not registered", id))
	}
	if n.state == NavigatorTransitioning && (id == n.activeID || id == n.incomingID) {
		panic(fmt.Sprintf("plume: cannot remove screen %q during a transition", id))
	}
	if n.hasPending && n.pendingID == id {
		n.hasPending = false
	}
	if n.state == NavigatorShowing && id == n.activeID {
		n.hideScreen(n.active, n.activeItem)
		n.active = nil
		n.activeItem = nil
		n.activeID = ""
		n.state = NavigatorEmpty
		n.transitionComplete.Emit()
	}
	delete(n.items, id)
}

// RemoveAllScreens unregisters everything. The navigator must be empty;
// clear the active screen first.
func (n *Navigator) RemoveAllScreens() {
	if n.state != NavigatorEmpty {
		panic("plume: cannot remove all screens while a screen is active")
	}
	n.items = make(map[string]*ScreenItem)
	n.hasPending = false
	n.pendingClear = false
}

// ShowScreen makes the identified screen active, transitioning from the
// current one. Showing the already-active instance is a no-op that returns
// it. During a transition the request is parked in the pending slot and nil
// is returned; the handoff to it starts once the in-flight transition
// completes.
func (n *Navigator) ShowScreen(id string) DisplayObject {
	item, ok := n.items[id]
	if !ok {
		panic(fmt.Sprintf("plume: screen %q is not registered", id))
	}
	if n.state == NavigatorShowing && n.activeID == id && !item.ownsScreen() {
		return n.active
	}
	if n.state == NavigatorTransitioning {
		n.pendingID = id
		n.hasPending = true
		n.pendingClear = false
		return nil
	}
	return n.startShow(id, item)
}

// ClearScreen transitions the active screen out, leaving the navigator
// empty. A no-op when nothing is shown; during a transition it is parked in
// the pending slot like a show.
func (n *Navigator) ClearScreen() {
	if n.state == NavigatorEmpty {
		return
	}
	if n.state == NavigatorTransitioning {
		n.pendingClear = true
		n.hasPending = false
		return
	}
	n.startShow("", nil)
}

// CancelTransition rolls an in-flight handoff back: the incoming screen is
// removed with its sizing restored, the outgoing screen stays active, and
// the pending slot is cleared.
func (n *Navigator) CancelTransition() {
	if n.state != NavigatorTransitioning {
		return
	}
	if n.warmupTask != nil {
		n.warmupTask.Cancel()
		n.warmupTask = nil
	}
	if n.readySignal != nil {
		n.readySignal.Disconnect(n.readyConn)
		n.readySignal = nil
	}
	if n.cancelTransition != nil {
		n.cancelTransition()
		n.cancelTransition = nil
	}
	n.rollbackTransition()
}

// rollbackTransition tears the incoming screen back down after a canceled
// handoff. The outgoing screen stays active.
func (n *Navigator) rollbackTransition() {
	if n.incoming != nil {
		if n.incomingHidden {
			n.incoming.SetVisible(true)
			n.incomingHidden = false
		}
		n.hideScreen(n.incoming, n.incomingItem)
	}
	n.incoming = nil
	n.incomingItem = nil
	n.incomingID = ""
	n.hasPending = false
	n.pendingClear = false
	if n.active != nil {
		n.state = NavigatorShowing
	} else {
		n.state = NavigatorEmpty
	}
	n.transitionCancel.Emit()
}

func (n *Navigator) startShow(id string, item *ScreenItem) DisplayObject {
	n.state = NavigatorTransitioning
	n.incomingID = id
	n.incomingItem = item
	// The transition may complete synchronously and clear n.incoming, so the
	// return value is captured up front.
	var screen DisplayObject
	if item != nil {
		screen = item.getScreen()
		n.incoming = screen
		n.savedScreenSizes[screen] = saveSizes(screen)
		item.applyProperties(screen)
		n.wireEvents(id, screen, item)
		n.AddChild(screen)
		n.sizeScreen(screen)
	}
	n.transitionStart.Emit()

	sched := n.frameScheduler()
	if sched == nil || TransitionWarmupFrames < 1 {
		n.beginTransition()
	} else {
		n.warmupTask = sched.AfterFrames(TransitionWarmupFrames, n.beginTransition)
	}
	return screen
}

// beginTransition runs after the warmup frames. If the incoming screen
// wants more time it gates the handoff on its readiness signal, staying
// hidden until the signal fires.
func (n *Navigator) beginTransition() {
	n.warmupTask = nil
	if d, ok := n.incoming.(TransitionDelayer); ok && d.TransitionDelayed() {
		n.incoming.SetVisible(false)
		n.incomingHidden = true
		sig := d.TransitionReady()
		n.readySignal = sig
		n.readyConn = sig.Connect(func() {
			sig.Disconnect(n.readyConn)
			n.readySignal = nil
			n.runTransition()
		})
		return
	}
	n.runTransition()
}

func (n *Navigator) runTransition() {
	if n.incomingHidden {
		n.incoming.SetVisible(true)
		n.incomingHidden = false
	}
	cancel := n.transition(n.active, n.incoming, n.frameScheduler(), n.transitionDone)
	// A synchronous transition has already completed or rolled back by now;
	// keep the cancel hook only for a handoff that is still in flight.
	if n.state == NavigatorTransitioning && n.cancelTransition == nil {
		n.cancelTransition = cancel
	}
}

// transitionDone is the completion callback handed to the transition
// function. A transition reporting canceled rolls the handoff back instead
// of promoting the incoming screen.
func (n *Navigator) transitionDone(canceled bool) {
	n.cancelTransition = nil
	if canceled {
		n.rollbackTransition()
		return
	}
	n.finishTransition()
}

func (n *Navigator) finishTransition() {
	if n.active != nil {
		n.hideScreen(n.active, n.activeItem)
	}
	n.active = n.incoming
	n.activeItem = n.incomingItem
	n.activeID = n.incomingID
	n.incoming = nil
	n.incomingItem = nil
	n.incomingID = ""
	if n.active != nil {
		n.state = NavigatorShowing
	} else {
		n.state = NavigatorEmpty
	}
	n.transitionComplete.Emit()

	if n.pendingClear {
		n.pendingClear = false
		n.ClearScreen()
	} else if n.hasPending {
		id := n.pendingID
		n.hasPending = false
		n.ShowScreen(id)
	}
}

// hideScreen detaches a screen, unwires its events, restores the sizing it
// arrived with, and disposes it when the navigator owns it.
func (n *Navigator) hideScreen(screen DisplayObject, item *ScreenItem) {
	for _, we := range n.wiredEvents[screen] {
		we.sig.Disconnect(we.conn)
	}
	delete(n.wiredEvents, screen)
	n.Sprite.RemoveChild(screen)
	if saved, ok := n.savedScreenSizes[screen]; ok {
		saved.restore(screen)
		delete(n.savedScreenSizes, screen)
	}
	if item != nil && item.ownsScreen() {
		screen.Dispose()
	}
}

func (n *Navigator) wireEvents(id string, screen DisplayObject, item *ScreenItem) {
	if len(item.events) == 0 {
		return
	}
	source, ok := screen.(ScreenEventSource)
	if !ok {
		panic(fmt.Sprintf("plume: screen %q declares events but does not implement ScreenEventSource", id))
	}
	var wired []wiredEvent
	for name, action := range item.events {
		sig := source.ScreenEvent(name)
		if sig == nil {
			panic(fmt.Sprintf("plume: screen %q does not publish event %q", id, name))
		}
		act := action
		conn := sig.Connect(func() {
			if act.fn != nil {
				act.fn(n)
				return
			}
			n.ShowScreen(act.target)
		})
		wired = append(wired, wiredEvent{sig: sig, conn: conn})
	}
	n.wiredEvents[screen] = wired
}

func (n *Navigator) frameScheduler() *FrameScheduler {
	if n.stage == nil {
		return nil
	}
	return n.stage.Scheduler()
}

// draw sizes the navigator and stretches hosted screens to fill it.
func (n *Navigator) draw() {
	if !n.IsInvalid(InvalidationSize | InvalidationLayout | InvalidationChildren) {
		return
	}
	width := n.explicitWidth
	height := n.explicitHeight
	if n.stage != nil {
		if IsUnset(width) {
			width = n.stage.StageWidth()
		}
		if IsUnset(height) {
			height = n.stage.StageHeight()
		}
	}
	n.SaveMeasurements(width, height)
	if n.active != nil {
		n.sizeScreen(n.active)
	}
	if n.incoming != nil {
		n.sizeScreen(n.incoming)
	}
}

func (n *Navigator) sizeScreen(screen DisplayObject) {
	if !IsUnset(n.actualWidth) && n.actualWidth > 0 {
		screen.SetWidth(n.actualWidth)
	}
	if !IsUnset(n.actualHeight) && n.actualHeight > 0 {
		screen.SetHeight(n.actualHeight)
	}
	if v, ok := screen.(Validating); ok {
		v.Validate()
	}
}

// Dispose cancels any in-flight handoff and releases every hosted screen.
func (n *Navigator) Dispose() {
	n.CancelTransition()
	if n.active != nil {
		n.hideScreen(n.active, n.activeItem)
		n.active = nil
		n.activeItem = nil
		n.activeID = ""
	}
	n.items = nil
	n.state = NavigatorEmpty
	n.Control.Dispose()
}
