// Package terminal provides clipped, rect-addressed drawing over tcell.
//
// Every write is bounded by the Rect it targets: Print clips at the rect
// edge and treats out-of-range rows as no-ops, Wipe blanks exactly the
// rect. Widgets can therefore draw unconditionally without terminal
// bounds checks of their own.
package terminal
