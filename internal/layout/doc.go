// Package layout implements the pluggable layout engine used by the widget
// containers: the contract between a container and a layout strategy, the
// transient bounds objects exchanged across that contract, and the built-in
// flow layout.
//
// The engine works entirely against the Item interface, so it has no
// knowledge of controls, skins, or validation. A container hands a layout an
// ordered item list plus a ViewPortBounds describing the space available,
// and reads the aggregate geometry back out of a Result.
package layout
