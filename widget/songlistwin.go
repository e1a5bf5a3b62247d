package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vibe/song"
	"github.com/lixenwraith/vibe/songlist"
	"github.com/lixenwraith/vibe/style"
	"github.com/lixenwraith/vibe/terminal"
)

// SonglistWindow draws a cursor-navigable song table, one song per row.
// The viewport follows the cursor.
type SonglistWindow struct {
	screen  *terminal.Screen
	list    *songlist.Songlist
	palette style.Palette
	rect    terminal.Rect
	cursor  int
	top     int
}

// NewSonglistWindow creates a window over the given songlist
func NewSonglistWindow(screen *terminal.Screen, list *songlist.Songlist) *SonglistWindow {
	return &SonglistWindow{
		screen:  screen,
		list:    list,
		palette: style.DefaultPalette(),
	}
}

// SetRect assigns the screen region
func (w *SonglistWindow) SetRect(r terminal.Rect) {
	w.rect = r
	w.clamp()
}

// SetList swaps the underlying songlist and resets the cursor
func (w *SonglistWindow) SetList(list *songlist.Songlist) {
	w.list = list
	w.cursor = 0
	w.top = 0
}

// SetPalette overrides the default styles
func (w *SonglistWindow) SetPalette(p style.Palette) {
	w.palette = p
}

// Len returns the number of songs in the underlying list
func (w *SonglistWindow) Len() int {
	return w.list.Len()
}

// Cursor returns the cursor index
func (w *SonglistWindow) Cursor() int {
	return w.cursor
}

// CursorSong returns the song under the cursor, nil on an empty list
func (w *SonglistWindow) CursorSong() *song.Song {
	return w.list.Song(w.cursor)
}

// MoveCursor moves the cursor by delta rows, clamped to list bounds
func (w *SonglistWindow) MoveCursor(delta int) {
	w.cursor += delta
	w.clamp()
}

// PageSize returns the rows a page movement covers
func (w *SonglistWindow) PageSize() int {
	if w.rect.H < 1 {
		return 1
	}
	return w.rect.H
}

// CursorHome moves the cursor to the first song
func (w *SonglistWindow) CursorHome() {
	w.cursor = 0
	w.clamp()
}

// CursorEnd moves the cursor to the last song
func (w *SonglistWindow) CursorEnd() {
	w.cursor = w.list.Len() - 1
	w.clamp()
}

func (w *SonglistWindow) clamp() {
	if w.cursor >= w.list.Len() {
		w.cursor = w.list.Len() - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
	// Keep cursor inside the viewport
	if w.cursor < w.top {
		w.top = w.cursor
	}
	if w.rect.H > 0 && w.cursor >= w.top+w.rect.H {
		w.top = w.cursor - w.rect.H + 1
	}
	if w.top < 0 {
		w.top = 0
	}
}

// Draw renders the visible slice of the songlist
func (w *SonglistWindow) Draw() {
	w.screen.Wipe(w.rect)
	if w.rect.Empty() {
		return
	}

	w.clamp()
	songs := w.list.Songs()

	for row := 0; row < w.rect.H; row++ {
		i := w.top + row
		if i >= len(songs) {
			break
		}
		s := songs[i]

		rowStyle := w.palette.ListRow
		durStyle := w.palette.Duration
		if i == w.cursor {
			rowStyle = w.palette.Cursor
			durStyle = w.palette.Cursor
			w.screen.Fill(w.rect.Row(row), rowStyle)
		}

		text := s.Title()
		if artist := s.Artist(); artist != "" {
			text = artist + " - " + text
		}

		dur := s.DurationString()
		avail := w.rect.W - runewidth.StringWidth(dur) - 1
		if runewidth.StringWidth(text) > avail {
			text = runewidth.Truncate(text, max(avail, 0), "…")
		}

		w.screen.Print(w.rect, row, 0, text, rowStyle)
		if dur != "" {
			w.screen.Print(w.rect, row, w.rect.W-runewidth.StringWidth(dur), dur, durStyle)
		}
	}
}
