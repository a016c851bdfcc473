package plume

// FrameTask is a unit of deferred work on the frame scheduler. Cancel stops
// it before completion; canceling a finished task is a no-op.
type FrameTask struct {
	total    int
	left     int
	update   func(progress float64)
	done     func()
	canceled bool
	finished bool
}

// Cancel stops the task. Neither update nor done runs after Cancel.
func (t *FrameTask) Cancel() {
	t.canceled = true
}

// FrameScheduler runs frame-counted tasks: one-shot delays and fixed-length
// animations. It is ticked once per frame by the driver and is owned by the
// same loop as the display tree; it is not goroutine-safe.
type FrameScheduler struct {
	tasks []*FrameTask
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// AfterFrames schedules fn to run after n ticks. An n below one is treated
// as one: the task fires on the next tick, never synchronously.
func (s *FrameScheduler) AfterFrames(n int, fn func()) *FrameTask {
	if fn == nil {
		panic("plume: nil func in AfterFrames")
	}
	if n < 1 {
		n = 1
	}
	t := &FrameTask{total: n, left: n, done: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Animate schedules update to run every tick for the given number of frames
// with progress advancing linearly from >0 to 1, then runs complete.
// complete may be nil.
func (s *FrameScheduler) Animate(frames int, update func(progress float64), complete func()) *FrameTask {
	if update == nil {
		panic("plume: nil update in Animate")
	}
	if frames < 1 {
		frames = 1
	}
	t := &FrameTask{total: frames, left: frames, update: update, done: complete}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick advances every pending task by one frame. Tasks scheduled during a
// tick start counting from the next tick.
func (s *FrameScheduler) Tick() {
	pending := s.tasks
	s.tasks = nil
	var remaining []*FrameTask
	for _, t := range pending {
		if t.canceled || t.finished {
			continue
		}
		t.left--
		if t.update != nil {
			t.update(float64(t.total-t.left) / float64(t.total))
		}
		if t.left > 0 {
			remaining = append(remaining, t)
			continue
		}
		t.finished = true
		if t.done != nil {
			t.done()
		}
	}
	// Keep tasks scheduled by callbacks during this tick.
	s.tasks = append(remaining, s.tasks...)
}

// Pending returns the number of live tasks.
func (s *FrameScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.canceled && !t.finished {
			n++
		}
	}
	return n
}
