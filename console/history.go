package console

import (
	"fmt"
	"sync"
	"time"
)

// DefaultCap is the default number of retained entries
const DefaultCap = 1024

// History is an append-only, insertion-ordered message store shared by the
// whole process. Appends may come from any goroutine; readers get copied
// snapshots so a draw never observes a partially written entry.
type History struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
	notify  chan struct{}
}

// NewHistory creates a history retaining up to cap entries.
// cap <= 0 selects DefaultCap.
func NewHistory(cap int) *History {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &History{
		entries: make([]Entry, 0, cap),
		cap:     cap,
		notify:  make(chan struct{}, 1),
	}
}

// Logf appends a formatted message at the given level
func (h *History) Logf(level Level, format string, args ...any) {
	e := Entry{
		Level: level,
		Time:  time.Now(),
		Text:  fmt.Sprintf(format, args...),
	}

	h.mu.Lock()
	h.entries = append(h.entries, e)
	if len(h.entries) > h.cap {
		// Drop the oldest half, keep amortized O(1) appends
		keep := len(h.entries) / 2
		copy(h.entries, h.entries[len(h.entries)-keep:])
		h.entries = h.entries[:keep]
	}
	h.mu.Unlock()

	// Coalesced change signal
	select {
	case h.notify <- struct{}{}:
	default:
	}
}

// Errorf appends an error-level message
func (h *History) Errorf(format string, args ...any) {
	h.Logf(LevelError, format, args...)
}

// Warningf appends a warning-level message
func (h *History) Warningf(format string, args ...any) {
	h.Logf(LevelWarning, format, args...)
}

// Infof appends an info-level message
func (h *History) Infof(format string, args ...any) {
	h.Logf(LevelInfo, format, args...)
}

// Debugf appends a debug-level message
func (h *History) Debugf(format string, args ...any) {
	h.Logf(LevelDebug, format, args...)
}

// Entries returns a snapshot of all retained entries in insertion order.
// The snapshot is independent of later appends.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Last returns the newest entry with Level <= max, or false if none exists
func (h *History) Last(max Level) (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].Level > max {
			continue
		}
		return h.entries[i], true
	}
	return Entry{}, false
}

// Len returns the number of retained entries
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Clear removes all entries
func (h *History) Clear() {
	h.mu.Lock()
	h.entries = h.entries[:0]
	h.mu.Unlock()

	select {
	case h.notify <- struct{}{}:
	default:
	}
}

// Notify returns a channel receiving a coalesced signal after each change.
// Intended for redraw triggers, a slow receiver only misses duplicates.
func (h *History) Notify() <-chan struct{} {
	return h.notify
}
