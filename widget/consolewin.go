package widget

import (
	"github.com/lixenwraith/vibe/console"
	"github.com/lixenwraith/vibe/style"
	"github.com/lixenwraith/vibe/terminal"
)

// ConsoleWindow draws the full message history into its region, newest
// at the bottom, one entry per row with a timestamp and per-severity
// styling. Scrolling moves a bottom-anchored offset, offset zero follows
// new messages.
type ConsoleWindow struct {
	screen  *terminal.Screen
	history *console.History
	palette style.Palette
	rect    terminal.Rect
	offset  int
}

// NewConsoleWindow creates a console window over the given history
func NewConsoleWindow(screen *terminal.Screen, history *console.History) *ConsoleWindow {
	return &ConsoleWindow{
		screen:  screen,
		history: history,
		palette: style.DefaultPalette(),
	}
}

// SetRect assigns the screen region
func (w *ConsoleWindow) SetRect(r terminal.Rect) {
	w.rect = r
	w.clampOffset()
}

// SetPalette overrides the default styles
func (w *ConsoleWindow) SetPalette(p style.Palette) {
	w.palette = p
}

// Scroll moves the view by delta rows, positive scrolls back in time
func (w *ConsoleWindow) Scroll(delta int) {
	w.offset += delta
	w.clampOffset()
}

// ScrollToEnd snaps back to the newest messages
func (w *ConsoleWindow) ScrollToEnd() {
	w.offset = 0
}

// Offset returns rows scrolled back from the newest message
func (w *ConsoleWindow) Offset() int {
	return w.offset
}

func (w *ConsoleWindow) clampOffset() {
	maxOffset := w.history.Len() - w.rect.H
	if maxOffset < 0 {
		maxOffset = 0
	}
	if w.offset > maxOffset {
		w.offset = maxOffset
	}
	if w.offset < 0 {
		w.offset = 0
	}
}

// Draw renders the visible slice of the history
func (w *ConsoleWindow) Draw() {
	w.screen.Wipe(w.rect)
	if w.rect.Empty() {
		return
	}

	w.clampOffset()
	entries := w.history.Entries()

	// Index one past the newest visible entry
	end := len(entries) - w.offset
	start := end - w.rect.H
	if start < 0 {
		start = 0
	}

	for row, i := 0, start; i < end; row, i = row+1, i+1 {
		e := entries[i]
		st := w.palette.ForLevel(e.Level)
		stamp := e.Time.Format("15:04:05")
		w.screen.Print(w.rect, row, 0, stamp, w.palette.Debug)
		w.screen.Print(w.rect, row, len(stamp)+1, e.Text, st)
	}
}
