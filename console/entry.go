// Package console holds the process-wide leveled message history that
// the status line and console window render from.
package console

import "time"

// Level classifies message importance, lower is more important
type Level uint8

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

// String returns the display name of the level
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	}
	return "unknown"
}

// ParseLevel resolves a level name, returns false on unknown names
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "error":
		return LevelError, true
	case "warning", "warn":
		return LevelWarning, true
	case "info":
		return LevelInfo, true
	case "debug":
		return LevelDebug, true
	}
	return LevelInfo, false
}

// Entry is a single console message, immutable once appended
type Entry struct {
	Level Level
	Time  time.Time
	Text  string
}
