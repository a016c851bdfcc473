package plume

// InvalidationFlag identifies a stale aspect of a control's state that must
// be recomputed before the next draw. Flags form a bit set: a control's dirty
// set is non-empty exactly when a recomputation is owed.
type InvalidationFlag uint32

const (
	// InvalidationData marks the control's data model stale.
	InvalidationData InvalidationFlag = 1 << iota
	// InvalidationStyles marks themed styles stale.
	InvalidationStyles
	// InvalidationState marks interaction state (enabled, pressed) stale.
	InvalidationState
	// InvalidationSize marks the control's measured dimensions stale.
	InvalidationSize
	// InvalidationLayout marks child geometry stale.
	InvalidationLayout
	// InvalidationSkin marks the background/state skins stale.
	InvalidationSkin
	// InvalidationSelected marks toggle selection stale.
	InvalidationSelected
	// InvalidationScroll marks scroll position stale.
	InvalidationScroll
	// InvalidationFocus marks focus appearance stale.
	InvalidationFocus
	// InvalidationChildren marks the child list structure stale.
	InvalidationChildren
)

// InvalidationAll marks every aspect of a control stale. Invalidate(0) is
// treated as InvalidationAll.
const InvalidationAll InvalidationFlag = ^InvalidationFlag(0)

// Has reports whether every flag in mask is set.
func (f InvalidationFlag) Has(mask InvalidationFlag) bool {
	return f&mask == mask
}

// Any reports whether at least one flag in mask is set.
func (f InvalidationFlag) Any(mask InvalidationFlag) bool {
	return f&mask != 0
}
