package plume

// Stage is the root of a display tree. It owns the validation queue and the
// frame scheduler; attaching a control to the stage (directly or through any
// ancestor) is what allows its invalidations to schedule a validation pass.
type Stage struct {
	Sprite
	queue       *ValidationQueue
	scheduler   *FrameScheduler
	stageWidth  float64
	stageHeight float64
}

// NewStage creates a stage with the given dimensions.
func NewStage(width, height float64) *Stage {
	s := &Stage{
		queue:       NewValidationQueue(),
		scheduler:   NewFrameScheduler(),
		stageWidth:  width,
		stageHeight: height,
	}
	s.initDisplay()
	s.attachStage(s)
	return s
}

// Queue returns the stage's validation queue.
func (s *Stage) Queue() *ValidationQueue { return s.queue }

// Scheduler returns the stage's frame scheduler.
func (s *Stage) Scheduler() *FrameScheduler { return s.scheduler }

// StageWidth returns the stage width.
func (s *Stage) StageWidth() float64 { return s.stageWidth }

// StageHeight returns the stage height.
func (s *Stage) StageHeight() float64 { return s.stageHeight }

// Resize updates the stage dimensions and marks every attached control's
// size stale so stage-sized containers re-measure on the next pass.
func (s *Stage) Resize(width, height float64) {
	if s.stageWidth == width && s.stageHeight == height {
		return
	}
	s.stageWidth = width
	s.stageHeight = height
	invalidateTree(&s.Sprite)
}

// Advance runs one frame: scheduled tasks first, then the validation pass.
// The driver calls this once per frame tick.
func (s *Stage) Advance() {
	s.scheduler.Tick()
	s.queue.Process()
}

// invalidator is the narrow invalidation surface of Control, used when
// walking mixed display trees.
type invalidator interface {
	Invalidate(flags InvalidationFlag)
}

func invalidateTree(s *Sprite) {
	for _, child := range s.children {
		if inv, ok := child.(invalidator); ok {
			inv.Invalidate(InvalidationSize)
		}
		if sp, ok := child.(interface{ sprite() *Sprite }); ok {
			invalidateTree(sp.sprite())
		}
	}
}

// sprite exposes the embedded Sprite for tree walks over DisplayObject
// values, which otherwise cannot reach embedded fields.
func (s *Sprite) sprite() *Sprite { return s }
