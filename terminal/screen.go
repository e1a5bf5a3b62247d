package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen provides clipped drawing over a tcell screen. All drawing goes
// through rects, a write never lands outside the rect it was given.
type Screen struct {
	tc tcell.Screen
}

// New allocates a screen on the real terminal
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return &Screen{tc: tc}, nil
}

// NewFromTcell wraps an existing tcell screen, used with
// tcell.NewSimulationScreen in tests
func NewFromTcell(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Init enters the alternate screen buffer and hides the cursor
func (s *Screen) Init() error {
	if err := s.tc.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.tc.HideCursor()
	s.tc.Clear()
	return nil
}

// Fini restores the terminal state, safe to call on a finished screen
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns the current terminal dimensions
func (s *Screen) Size() (w, h int) {
	return s.tc.Size()
}

// Show flushes pending drawing to the terminal
func (s *Screen) Show() {
	s.tc.Show()
}

// Sync forces a full repaint
func (s *Screen) Sync() {
	s.tc.Sync()
}

// PollEvent blocks until the next input or resize event
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// PostEvent injects a synthetic event into the poll queue
func (s *Screen) PostEvent(ev tcell.Event) {
	_ = s.tc.PostEvent(ev)
}

// Wipe clears the rect to spaces in the default style.
// An empty rect is a no-op.
func (s *Screen) Wipe(r Rect) {
	s.Fill(r, tcell.StyleDefault)
}

// Fill paints the rect with spaces in the given style
func (s *Screen) Fill(r Rect, style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			s.tc.SetContent(r.X+x, r.Y+y, ' ', nil, style)
		}
	}
}

// Print writes text starting at (row, col) inside the rect, clipped to the
// rect's right edge. Out-of-range rows and columns are silent no-ops.
// Returns the number of cells written.
func (s *Screen) Print(r Rect, row, col int, text string, style tcell.Style) int {
	if r.Empty() || row < 0 || row >= r.H {
		return 0
	}

	written := 0
	x := col
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			// Combining marks and other zero-width runes are dropped,
			// cell-addressed drawing has nowhere to attach them
			continue
		}
		if x+w > r.W {
			break
		}
		if x >= 0 {
			s.tc.SetContent(r.X+x, r.Y+row, ch, nil, style)
			if w == 2 {
				// Reserve the spill cell of a wide rune
				s.tc.SetContent(r.X+x+1, r.Y+row, ' ', nil, style)
			}
			written += w
		}
		x += w
	}
	return written
}

// Cell returns the rune at an absolute screen position, space if never set
func (s *Screen) Cell(x, y int) rune {
	ch, _, _, _ := s.tc.GetContent(x, y)
	return ch
}
