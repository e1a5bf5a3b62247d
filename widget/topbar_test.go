package widget

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vibe/terminal"
)

func TestTopbarDrawsIdentityAndClock(t *testing.T) {
	s := newTestScreen(t, 40, 3)

	w := NewTopbar(s, "vibe", "0.1.0")
	w.SetRect(terminal.NewRect(0, 0, 40, 1))
	w.now = func() time.Time {
		return time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	}
	w.SetSummary("12 songs")
	w.Draw()

	got := rowText(s, 0, 40)
	if !strings.HasPrefix(got, "vibe 0.1.0") {
		t.Errorf("Expected program identity on the left, got %q", got)
	}
	if !strings.HasSuffix(got, "12 songs  09:30") {
		t.Errorf("Expected summary and clock on the right, got %q", got)
	}
}

func TestTopbarTruncatesLeftOnNarrowScreen(t *testing.T) {
	s := newTestScreen(t, 12, 1)

	w := NewTopbar(s, "averylongprogramname", "0.1.0")
	w.SetRect(terminal.NewRect(0, 0, 12, 1))
	w.now = func() time.Time {
		return time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	}
	w.Draw()

	got := rowText(s, 0, 12)
	if !strings.HasSuffix(got, "09:30") {
		t.Errorf("Expected clock to survive truncation, got %q", got)
	}
}

func TestTopbarEmptyRectIsNoop(t *testing.T) {
	s := newTestScreen(t, 10, 1)
	w := NewTopbar(s, "vibe", "0.1.0")
	w.SetRect(terminal.Rect{})
	w.Draw()

	if got := statusRow(s, 0, 10); got != "" {
		t.Errorf("Expected untouched screen, got %q", got)
	}
}
