package plume

import "fmt"

// ScreenEventSource is implemented by screens that expose named signals for
// the navigator to wire. Returning nil for a name means the screen does not
// publish that event.
type ScreenEventSource interface {
	ScreenEvent(name string) *Signal
}

// screenAction is what a wired screen event does: either invoke a callback
// or navigate to another registered screen.
type screenAction struct {
	fn     func(*Navigator)
	target string
}

// ScreenItem describes one registered screen: either a live instance reused
// across shows, or a factory invoked per show. Exactly one of the two is
// set.
type ScreenItem struct {
	instance DisplayObject
	factory  func() DisplayObject

	// properties are applied to the screen each time it is shown. Each
	// entry carries its own typed setter, so application never goes
	// through reflection.
	properties map[string]func(screen DisplayObject)

	events map[string]screenAction
}

// NewScreenItem registers a live screen instance. The instance is reused on
// every show and survives being hidden.
func NewScreenItem(screen DisplayObject) *ScreenItem {
	if screen == nil {
		panic("plume: NewScreenItem with nil screen")
	}
	return &ScreenItem{
		instance:   screen,
		properties: make(map[string]func(DisplayObject)),
		events:     make(map[string]screenAction),
	}
}

// NewScreenItemFactory registers a screen factory. A fresh screen is created
// for every show and disposed when hidden.
func NewScreenItemFactory(factory func() DisplayObject) *ScreenItem {
	if factory == nil {
		panic("plume: NewScreenItemFactory with nil factory")
	}
	return &ScreenItem{
		factory:    factory,
		properties: make(map[string]func(DisplayObject)),
		events:     make(map[string]screenAction),
	}
}

// SetProperty registers a setter applied to the screen on every show.
// Re-registering a name replaces the previous setter.
func (i *ScreenItem) SetProperty(name string, apply func(screen DisplayObject)) {
	if apply == nil {
		delete(i.properties, name)
		return
	}
	i.properties[name] = apply
}

// SetEvent wires a named screen event to an action. The action is either a
// func(*Navigator) invoked when the event fires, or a string naming the
// screen to navigate to. Any other type is a programming error.
func (i *ScreenItem) SetEvent(name string, action any) {
	switch a := action.(type) {
	case nil:
		delete(i.events, name)
	case func(*Navigator):
		i.events[name] = screenAction{fn: a}
	case string:
		i.events[name] = screenAction{target: a}
	default:
		panic(fmt.Sprintf("plume: screen event %q action must be func(*Navigator) or string, got %T", name, action))
	}
}

// getScreen returns the screen for a show: the shared instance, or a fresh
// one from the factory.
func (i *ScreenItem) getScreen() DisplayObject {
	if i.instance != nil {
		return i.instance
	}
	return i.factory()
}

// ownsScreen reports whether the navigator should dispose the screen when
// it is hidden. Factory screens are owned; instances are not.
func (i *ScreenItem) ownsScreen() bool {
	return i.instance == nil
}

func (i *ScreenItem) applyProperties(screen DisplayObject) {
	for _, apply := range i.properties {
		apply(screen)
	}
}
