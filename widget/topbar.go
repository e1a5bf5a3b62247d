package widget

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vibe/style"
	"github.com/lixenwraith/vibe/terminal"
)

// Topbar draws the program banner on its assigned row: name and version
// left, library summary and wall clock right. The right side survives
// truncation on narrow terminals.
type Topbar struct {
	screen  *terminal.Screen
	palette style.Palette
	rect    terminal.Rect

	name    string
	version string
	summary string

	// now is swappable for tests
	now func() time.Time
}

// NewTopbar creates a top bar with the given program identity
func NewTopbar(screen *terminal.Screen, name, version string) *Topbar {
	return &Topbar{
		screen:  screen,
		palette: style.DefaultPalette(),
		name:    name,
		version: version,
		now:     time.Now,
	}
}

// SetRect assigns the screen region
func (w *Topbar) SetRect(r terminal.Rect) {
	w.rect = r
}

// SetSummary sets the right-hand library summary text
func (w *Topbar) SetSummary(s string) {
	w.summary = s
}

// SetPalette overrides the default styles
func (w *Topbar) SetPalette(p style.Palette) {
	w.palette = p
}

// Draw renders the bar into its region
func (w *Topbar) Draw() {
	if w.rect.Empty() {
		return
	}
	w.screen.Fill(w.rect, w.palette.Topbar)

	right := w.now().Format("15:04")
	if w.summary != "" {
		right = w.summary + "  " + right
	}

	left := fmt.Sprintf("%s %s", w.name, w.version)
	avail := w.rect.W - runewidth.StringWidth(right) - 1
	if runewidth.StringWidth(left) > avail {
		left = runewidth.Truncate(left, max(avail, 0), "…")
	}

	w.screen.Print(w.rect, 0, 0, left, w.palette.Topbar)
	w.screen.Print(w.rect, 0, w.rect.W-runewidth.StringWidth(right), right, w.palette.Topbar)
}
