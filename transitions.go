package plume

// Transition animates the handoff between an outgoing and an incoming
// screen. Either side may be nil: prev is nil on the first show, next is nil
// on a clear. Implementations must call done exactly once when the animation
// ends: done(false) completes the handoff, done(true) reports that the
// transition canceled itself and the handoff must roll back. The returned
// cancel function stops the animation and restores any display state the
// transition changed; after cancel, done must not be called.
type Transition func(prev, next DisplayObject, sched *FrameScheduler, done func(canceled bool)) (cancel func())

// InstantTransition completes on the next frame with no animation.
func InstantTransition() Transition {
	return func(prev, next DisplayObject, sched *FrameScheduler, done func(canceled bool)) func() {
		if sched == nil {
			done(false)
			return func() {}
		}
		task := sched.AfterFrames(1, func() { done(false) })
		return task.Cancel
	}
}

// FadeTransition fades the incoming screen in over the given number of
// frames, ending at the alpha the screen started with.
func FadeTransition(frames int) Transition {
	return func(prev, next DisplayObject, sched *FrameScheduler, done func(canceled bool)) func() {
		if next == nil || sched == nil {
			return InstantTransition()(prev, next, sched, done)
		}
		start := next.Alpha()
		next.SetAlpha(0)
		task := sched.Animate(frames, func(progress float64) {
			next.SetAlpha(start * progress)
		}, func() {
			next.SetAlpha(start)
			done(false)
		})
		return func() {
			task.Cancel()
			next.SetAlpha(start)
		}
	}
}

// SlideLeftTransition slides the incoming screen in from the right while
// the outgoing screen exits to the left.
func SlideLeftTransition(frames int) Transition {
	return func(prev, next DisplayObject, sched *FrameScheduler, done func(canceled bool)) func() {
		width := 0.0
		if prev != nil && !IsUnset(prev.Width()) {
			width = prev.Width()
		} else if next != nil && !IsUnset(next.Width()) {
			width = next.Width()
		}
		if width == 0 || sched == nil {
			return InstantTransition()(prev, next, sched, done)
		}
		var prevStart, nextStart float64
		if prev != nil {
			prevStart = prev.X()
		}
		if next != nil {
			nextStart = next.X()
			next.SetX(nextStart + width)
		}
		task := sched.Animate(frames, func(progress float64) {
			offset := width * progress
			if prev != nil {
				prev.SetX(prevStart - offset)
			}
			if next != nil {
				next.SetX(nextStart + width - offset)
			}
		}, func() {
			if prev != nil {
				prev.SetX(prevStart)
			}
			if next != nil {
				next.SetX(nextStart)
			}
			done(false)
		})
		return func() {
			task.Cancel()
			if prev != nil {
				prev.SetX(prevStart)
			}
			if next != nil {
				next.SetX(nextStart)
			}
		}
	}
}
