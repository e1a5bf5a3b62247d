package widget

import (
	"github.com/lixenwraith/vibe/console"
	"github.com/lixenwraith/vibe/style"
	"github.com/lixenwraith/vibe/terminal"
)

// StatusLine surfaces the single most relevant recent console message in
// its assigned screen region. The history handle is injected and read
// only, the region is borrowed from the layout for the duration of a
// draw.
type StatusLine struct {
	screen    *terminal.Screen
	history   *console.History
	palette   style.Palette
	rect      terminal.Rect
	threshold console.Level
}

// NewStatusLine creates a status line over the given history.
// The default threshold is info, debug messages are not surfaced.
func NewStatusLine(screen *terminal.Screen, history *console.History) *StatusLine {
	return &StatusLine{
		screen:    screen,
		history:   history,
		palette:   style.DefaultPalette(),
		threshold: console.LevelInfo,
	}
}

// SetRect assigns the screen region the status line may draw into
func (w *StatusLine) SetRect(r terminal.Rect) {
	w.rect = r
}

// Rect returns the assigned region
func (w *StatusLine) Rect() terminal.Rect {
	return w.rect
}

// SetThreshold sets the most verbose severity still surfaced
func (w *StatusLine) SetThreshold(level console.Level) {
	w.threshold = level
}

// Threshold returns the current severity cutoff
func (w *StatusLine) Threshold() console.Level {
	return w.threshold
}

// SetPalette overrides the default styles
func (w *StatusLine) SetPalette(p style.Palette) {
	w.palette = p
}

// DrawLine wipes the assigned region and renders the text of the newest
// entry at or below the threshold at column 0 of row. At most one line
// is drawn, an all-filtered or empty history leaves the region blank.
func (w *StatusLine) DrawLine(row int) {
	w.screen.Wipe(w.rect)

	entries := w.history.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Level > w.threshold {
			continue
		}
		w.screen.Print(w.rect, row, 0, entries[i].Text, w.palette.ForLevel(entries[i].Level))
		break
	}
}

// Draw renders on the first row of the region
func (w *StatusLine) Draw() {
	w.DrawLine(0)
}
