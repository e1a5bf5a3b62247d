package style

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vibe/console"
)

// Palette defines semantic styles for the client widgets
type Palette struct {
	Default  tcell.Style
	Topbar   tcell.Style
	Cursor   tcell.Style
	ListRow  tcell.Style
	ListDim  tcell.Style
	Duration tcell.Style

	Error   tcell.Style
	Warning tcell.Style
	Info    tcell.Style
	Debug   tcell.Style
}

// DefaultPalette provides reasonable defaults for dark terminals
func DefaultPalette() Palette {
	base := tcell.StyleDefault
	return Palette{
		Default:  base,
		Topbar:   base.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true),
		Cursor:   base.Reverse(true),
		ListRow:  base,
		ListDim:  base.Foreground(tcell.ColorGray),
		Duration: base.Foreground(tcell.ColorTeal),
		Error:    base.Foreground(tcell.ColorRed).Bold(true),
		Warning:  base.Foreground(tcell.ColorYellow),
		Info:     base,
		Debug:    base.Foreground(tcell.ColorGray).Dim(true),
	}
}

// ForLevel returns the style for a console severity
func (p Palette) ForLevel(level console.Level) tcell.Style {
	switch level {
	case console.LevelError:
		return p.Error
	case console.LevelWarning:
		return p.Warning
	case console.LevelDebug:
		return p.Debug
	}
	return p.Info
}
