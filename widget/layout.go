package widget

import "github.com/lixenwraith/vibe/terminal"

// Layout assigns screen regions to the client widgets: top bar on the
// first row, status line on the last, main content between them.
type Layout struct {
	Topbar terminal.Rect
	Main   terminal.Rect
	Status terminal.Rect
}

// ComputeLayout splits a w x h screen. Degenerate sizes produce empty
// rects, never negative ones, so widgets can draw unconditionally.
func ComputeLayout(w, h int) Layout {
	root := terminal.NewRect(0, 0, w, h)

	topbar, rest := root.SplitRows(1)
	if rest.H < 1 {
		// Not enough rows for a status line
		return Layout{Topbar: topbar, Main: rest, Status: terminal.Rect{}}
	}
	main, status := rest.SplitRows(rest.H - 1)
	return Layout{Topbar: topbar, Main: main, Status: status}
}
