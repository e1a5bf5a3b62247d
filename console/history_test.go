package console

import (
	"sync"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	if !(LevelError < LevelWarning && LevelWarning < LevelInfo && LevelInfo < LevelDebug) {
		t.Error("Expected severity order error < warning < info < debug")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"error", LevelError, true},
		{"warning", LevelWarning, true},
		{"warn", LevelWarning, true},
		{"info", LevelInfo, true},
		{"debug", LevelDebug, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}
	for _, c := range cases {
		got, ok := ParseLevel(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestLogfPreservesInsertionOrder(t *testing.T) {
	h := NewHistory(0)
	h.Infof("first")
	h.Debugf("second")
	h.Errorf("third")

	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	want := []string{"first", "second", "third"}
	for i, text := range want {
		if entries[i].Text != text {
			t.Errorf("Expected entry %d to be %q, got %q", i, text, entries[i].Text)
		}
	}
	if entries[2].Time.Before(entries[0].Time) {
		t.Error("Expected timestamps to be non-decreasing")
	}
}

func TestLastFiltersBySeverity(t *testing.T) {
	h := NewHistory(0)

	if _, ok := h.Last(LevelInfo); ok {
		t.Error("Expected no entry from empty history")
	}

	h.Infof("started")
	e, ok := h.Last(LevelInfo)
	if !ok || e.Text != "started" {
		t.Errorf("Expected \"started\", got %q, %v", e.Text, ok)
	}

	// Newer but more verbose entry must be skipped
	h.Debugf("tick")
	e, ok = h.Last(LevelInfo)
	if !ok || e.Text != "started" {
		t.Errorf("Expected \"started\" past debug entry, got %q, %v", e.Text, ok)
	}

	// Newer eligible entry wins
	h.Warningf("volume clipped")
	e, ok = h.Last(LevelInfo)
	if !ok || e.Text != "volume clipped" {
		t.Errorf("Expected \"volume clipped\", got %q, %v", e.Text, ok)
	}

	// Raising the threshold exposes the debug entry again
	h.Debugf("tock")
	e, ok = h.Last(LevelDebug)
	if !ok || e.Text != "tock" {
		t.Errorf("Expected \"tock\" at debug threshold, got %q, %v", e.Text, ok)
	}
}

func TestLastOnlyDebugEntries(t *testing.T) {
	h := NewHistory(0)
	h.Debugf("tick")
	if _, ok := h.Last(LevelInfo); ok {
		t.Error("Expected no eligible entry when history holds only debug messages")
	}
}

func TestEntriesSnapshotIsolation(t *testing.T) {
	h := NewHistory(0)
	h.Infof("one")

	snap := h.Entries()
	h.Infof("two")

	if len(snap) != 1 {
		t.Errorf("Expected snapshot to stay at 1 entry, got %d", len(snap))
	}
	if h.Len() != 2 {
		t.Errorf("Expected history length 2, got %d", h.Len())
	}
}

func TestCapTrimsOldestHalf(t *testing.T) {
	h := NewHistory(10)
	for i := 0; i < 11; i++ {
		h.Infof("msg %d", i)
	}

	entries := h.Entries()
	if len(entries) != 5 {
		t.Fatalf("Expected 5 entries after trim, got %d", len(entries))
	}
	// Newest entries survive, oldest are gone
	if entries[len(entries)-1].Text != "msg 10" {
		t.Errorf("Expected newest entry \"msg 10\", got %q", entries[len(entries)-1].Text)
	}
	if entries[0].Text != "msg 6" {
		t.Errorf("Expected oldest surviving entry \"msg 6\", got %q", entries[0].Text)
	}
}

func TestClear(t *testing.T) {
	h := NewHistory(0)
	h.Errorf("boom")
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Expected empty history after Clear, got %d entries", h.Len())
	}
	if _, ok := h.Last(LevelDebug); ok {
		t.Error("Expected no entry after Clear")
	}
}

func TestNotifyCoalesces(t *testing.T) {
	h := NewHistory(0)
	h.Infof("a")
	h.Infof("b")

	select {
	case <-h.Notify():
	default:
		t.Fatal("Expected pending notification after appends")
	}
	select {
	case <-h.Notify():
		t.Error("Expected notifications to coalesce into one pending signal")
	default:
	}
}

func TestConcurrentAppends(t *testing.T) {
	h := NewHistory(0)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				h.Logf(LevelInfo, "g%d-%d", g, i)
			}
		}(g)
	}
	wg.Wait()

	if h.Len() != 400 {
		t.Errorf("Expected 400 entries, got %d", h.Len())
	}
	for _, e := range h.Entries() {
		if e.Text == "" || e.Time.IsZero() {
			t.Fatal("Expected fully written entries only")
		}
	}
}
