package songlist

import (
	"testing"

	"github.com/lixenwraith/vibe/song"
)

func makeSong(path, artist, title string) *song.Song {
	s := song.New()
	s.Path = path
	s.SetTag("artist", artist)
	s.SetTag("title", title)
	return s
}

func TestAddAndLen(t *testing.T) {
	l := New()
	if l.Len() != 0 {
		t.Errorf("Expected empty list, got %d", l.Len())
	}
	l.Add(makeSong("a.flac", "A", "One"))
	l.Add(makeSong("b.flac", "B", "Two"))
	if l.Len() != 2 {
		t.Errorf("Expected 2 songs, got %d", l.Len())
	}
	if l.Song(0).Path != "a.flac" {
		t.Errorf("Expected insertion order preserved, got %q first", l.Song(0).Path)
	}
}

func TestRemove(t *testing.T) {
	l := New()
	l.Add(makeSong("a.flac", "A", "One"))
	l.Add(makeSong("b.flac", "B", "Two"))
	l.Add(makeSong("c.flac", "C", "Three"))

	if err := l.Remove(1); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if l.Len() != 2 || l.Song(1).Path != "c.flac" {
		t.Errorf("Expected [a c], got %d songs with second %q", l.Len(), l.Song(1).Path)
	}

	if err := l.Remove(5); err == nil {
		t.Error("Expected error for out-of-bounds remove")
	}
	if err := l.Remove(-1); err == nil {
		t.Error("Expected error for negative index remove")
	}
}

func TestRemoveIndices(t *testing.T) {
	l := New()
	for _, p := range []string{"a", "b", "c", "d"} {
		l.Add(makeSong(p, "", p))
	}

	// Ascending input must not shift later indices during removal
	if err := l.RemoveIndices([]int{0, 2}); err != nil {
		t.Fatalf("RemoveIndices returned error: %v", err)
	}
	if l.Len() != 2 || l.Song(0).Path != "b" || l.Song(1).Path != "d" {
		t.Errorf("Expected [b d], got [%q %q]", l.Song(0).Path, l.Song(1).Path)
	}
}

func TestReplaceAndTruncate(t *testing.T) {
	l := New()
	l.Add(makeSong("a", "", ""))
	l.Add(makeSong("b", "", ""))

	if err := l.Replace(1, makeSong("z", "", "")); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if l.Song(1).Path != "z" {
		t.Errorf("Expected replaced song z, got %q", l.Song(1).Path)
	}

	if err := l.Truncate(1); err != nil {
		t.Fatalf("Truncate returned error: %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("Expected 1 song after truncate, got %d", l.Len())
	}
	if err := l.Truncate(5); err == nil {
		t.Error("Expected error for truncate past length")
	}
}

func TestLocate(t *testing.T) {
	l := New()
	l.SetName("library")
	l.Add(makeSong("a", "", ""))
	l.Add(makeSong("b", "", ""))

	idx, err := l.Locate(makeSong("b", "", ""))
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if idx != 1 {
		t.Errorf("Expected index 1, got %d", idx)
	}

	if _, err := l.Locate(makeSong("missing", "", "")); err == nil {
		t.Error("Expected error for unknown song")
	}
}

func TestSortStableMultiField(t *testing.T) {
	l := New()
	l.Add(makeSong("1", "Beta", "Second"))
	l.Add(makeSong("2", "Alpha", "Zule"))
	l.Add(makeSong("3", "Alpha", "Apple"))

	if err := l.Sort([]string{"title", "artist"}); err != nil {
		t.Fatalf("Sort returned error: %v", err)
	}

	// Primary order artist, titles ordered within equal artists
	want := []string{"3", "2", "1"}
	for i, path := range want {
		if l.Song(i).Path != path {
			t.Errorf("Expected song %q at %d, got %q", path, i, l.Song(i).Path)
		}
	}

	if err := l.Sort(nil); err == nil {
		t.Error("Expected error when sorting without criteria")
	}
}

func TestSongsSnapshot(t *testing.T) {
	l := New()
	l.Add(makeSong("a", "", ""))
	snap := l.Songs()
	l.Add(makeSong("b", "", ""))
	if len(snap) != 1 {
		t.Errorf("Expected snapshot to stay at 1 song, got %d", len(snap))
	}
}

func TestSongOutOfRange(t *testing.T) {
	l := New()
	if l.Song(0) != nil {
		t.Error("Expected nil for out-of-range song")
	}
}
