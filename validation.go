package plume

import (
	"sort"

	"github.com/plumekit/plume/internal/debug"
)

// Validating is the contract between the validation queue and the controls
// it drives. Control implements it.
type Validating interface {
	// Validate recomputes whatever is dirty, exactly once.
	Validate()

	// IsInvalid reports whether any flag in mask is dirty; mask 0 queries
	// the whole dirty set.
	IsInvalid(mask InvalidationFlag) bool

	// ValidationDepth returns the depth in the display tree, used to order
	// the pass children-first.
	ValidationDepth() int
}

// ValidationQueue collects invalidated controls and validates each of them
// once per pass, deepest controls first so children settle bounds before
// their parents measure.
//
// The queue is frame-driven and single-threaded: Add and Process must only
// be called from the loop that owns the display tree.
type ValidationQueue struct {
	queue      []Validating
	next       []Validating
	validating bool
}

// NewValidationQueue creates an empty queue.
func NewValidationQueue() *ValidationQueue {
	return &ValidationQueue{}
}

// IsValidating reports whether a validation pass is currently running.
func (q *ValidationQueue) IsValidating() bool {
	return q.validating
}

// Add schedules a control for validation. Adding an already-queued control
// is a no-op. Controls added while a pass is running are deferred to the
// next pass; anything that must settle within the current pass is validated
// directly by its parent.
func (q *ValidationQueue) Add(v Validating) {
	if v == nil {
		panic("plume: nil control in ValidationQueue.Add")
	}
	if q.validating {
		if !containsValidating(q.next, v) {
			q.next = append(q.next, v)
		}
		return
	}
	if !containsValidating(q.queue, v) {
		q.queue = append(q.queue, v)
	}
}

// Process runs one validation pass: every queued control is validated once,
// deepest first. Re-entrant calls are ignored.
func (q *ValidationQueue) Process() {
	if q.validating || len(q.queue) == 0 {
		return
	}
	q.validating = true
	debug.Log("validation pass: %d controls", len(q.queue))

	// Children settle bounds before parents measure.
	sort.SliceStable(q.queue, func(i, j int) bool {
		return q.queue[i].ValidationDepth() > q.queue[j].ValidationDepth()
	})
	for _, v := range q.queue {
		v.Validate()
	}

	q.queue = q.next
	q.next = nil
	q.validating = false
}

func containsValidating(list []Validating, v Validating) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
