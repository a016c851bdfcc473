package plume

import (
	"math"
	"testing"
)

// fakeControl is a minimal widget for exercising the validation machinery.
type fakeControl struct {
	Control

	drawCount int
	onDraw    func()
	measureW  float64
	measureH  float64
}

func newFakeControl() *fakeControl {
	f := &fakeControl{measureW: Unset(), measureH: Unset()}
	f.initControl(f.draw)
	return f
}

func (f *fakeControl) draw() {
	f.drawCount++
	if f.onDraw != nil {
		f.onDraw()
	}
	if !IsUnset(f.measureW) || !IsUnset(f.measureH) {
		f.SaveMeasurements(f.measureW, f.measureH)
	}
}

func TestControl_Validate_ClearsFlags(t *testing.T) {
	c := newFakeControl()

	if !c.IsInvalid(0) {
		t.Fatal("a new control should start fully invalid")
	}
	c.Validate()
	if c.drawCount != 1 {
		t.Errorf("drawCount = %d, want 1", c.drawCount)
	}
	if c.IsInvalid(0) {
		t.Error("Validate() should clear all flags")
	}

	// A clean control skips the draw pass entirely.
	c.Validate()
	if c.drawCount != 1 {
		t.Errorf("drawCount after clean Validate() = %d, want 1", c.drawCount)
	}
}

func TestControl_Invalidate_ZeroMarksEverything(t *testing.T) {
	c := newFakeControl()
	c.Validate()

	c.Invalidate(0)
	if !c.IsInvalid(InvalidationData) || !c.IsInvalid(InvalidationSize) || !c.IsInvalid(InvalidationSkin) {
		t.Error("Invalidate(0) should mark every flag")
	}
}

func TestControl_Invalidate_DuringDrawStaysPending(t *testing.T) {
	c := newFakeControl()
	c.onDraw = func() {
		if c.drawCount == 1 {
			c.Invalidate(InvalidationData)
		}
	}

	c.Validate()
	if c.drawCount != 1 {
		t.Fatalf("drawCount = %d, want 1", c.drawCount)
	}
	if !c.IsInvalid(InvalidationData) {
		t.Error("flags added during draw should survive the pass")
	}
	if c.IsInvalid(InvalidationSize) {
		t.Error("flags present at entry should be cleared")
	}

	c.Validate()
	if c.drawCount != 2 {
		t.Errorf("drawCount after second Validate() = %d, want 2", c.drawCount)
	}
}

func TestControl_Validate_ReentrantDoesNotRecurse(t *testing.T) {
	c := newFakeControl()
	c.onDraw = func() {
		c.Validate()
	}

	c.Validate()
	if c.drawCount != 1 {
		t.Errorf("drawCount = %d, want 1 (re-entrant Validate must not recurse)", c.drawCount)
	}
}

func TestControl_SetWidth(t *testing.T) {
	c := newFakeControl()
	c.Validate()

	resizes := 0
	c.Resized().Connect(func() { resizes++ })

	c.SetWidth(40)
	if c.Width() != 40 {
		t.Errorf("Width() = %v, want 40", c.Width())
	}
	if resizes != 1 {
		t.Errorf("resize notifications = %d, want 1", resizes)
	}

	// Same value is a no-op.
	c.SetWidth(40)
	if resizes != 1 {
		t.Errorf("resize notifications after no-op = %d, want 1", resizes)
	}

	// Unset returns the control to measured sizing without recursing on NaN.
	c.SetWidth(Unset())
	c.SetWidth(Unset())
	if !c.IsInvalid(InvalidationSize) {
		t.Error("clearing the explicit width should invalidate size")
	}
}

func TestControl_SaveMeasurements(t *testing.T) {
	type tc struct {
		explicitW, explicitH float64
		minW, minH           float64
		maxW, maxH           float64
		measuredW, measuredH float64
		wantW, wantH         float64
	}

	tests := map[string]tc{
		"explicit wins over measured": {
			explicitW: 100, explicitH: 50,
			minW: Unset(), minH: Unset(), maxW: Unset(), maxH: Unset(),
			measuredW: 10, measuredH: 10,
			wantW: 100, wantH: 50,
		},
		"measured clamped to min": {
			explicitW: Unset(), explicitH: Unset(),
			minW: 20, minH: 8, maxW: Unset(), maxH: Unset(),
			measuredW: 10, measuredH: 10,
			wantW: 20, wantH: 10,
		},
		"measured clamped to max": {
			explicitW: Unset(), explicitH: Unset(),
			minW: Unset(), minH: Unset(), maxW: 15, maxH: 6,
			measuredW: 30, measuredH: 10,
			wantW: 15, wantH: 6,
		},
		"unmeasured floors at zero": {
			explicitW: Unset(), explicitH: Unset(),
			minW: Unset(), minH: Unset(), maxW: Unset(), maxH: Unset(),
			measuredW: math.NaN(), measuredH: math.NaN(),
			wantW: 0, wantH: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newFakeControl()
			c.SetWidth(tt.explicitW)
			c.SetHeight(tt.explicitH)
			c.SetMinWidth(tt.minW)
			c.SetMinHeight(tt.minH)
			c.SetMaxWidth(tt.maxW)
			c.SetMaxHeight(tt.maxH)

			c.SaveMeasurements(tt.measuredW, tt.measuredH)

			if c.Width() != tt.wantW {
				t.Errorf("Width() = %v, want %v", c.Width(), tt.wantW)
			}
			if c.Height() != tt.wantH {
				t.Errorf("Height() = %v, want %v", c.Height(), tt.wantH)
			}
		})
	}
}

func TestControl_SetEnabled(t *testing.T) {
	c := newFakeControl()
	c.Validate()

	c.SetEnabled(false)
	if !c.IsInvalid(InvalidationState) {
		t.Error("disabling should invalidate state")
	}
	c.Validate()

	c.SetEnabled(false)
	if c.IsInvalid(InvalidationState) {
		t.Error("setting the current enabled value should be a no-op")
	}
}

func TestControl_Invalidate_SchedulesOnStage(t *testing.T) {
	stage := NewStage(80, 24)
	c := newFakeControl()
	stage.AddChild(c)

	stage.Advance()
	if c.drawCount != 1 {
		t.Fatalf("drawCount after first advance = %d, want 1", c.drawCount)
	}

	c.Invalidate(InvalidationData)
	stage.Advance()
	if c.drawCount != 2 {
		t.Errorf("drawCount after invalidation = %d, want 2", c.drawCount)
	}

	// Clean controls are not revisited.
	stage.Advance()
	if c.drawCount != 2 {
		t.Errorf("drawCount after idle advance = %d, want 2", c.drawCount)
	}
}
