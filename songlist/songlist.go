package songlist

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/vibe/song"
)

// Songlist is a named, ordered collection of songs. All operations are
// safe for concurrent use, readers get copied snapshots.
type Songlist struct {
	mu      sync.Mutex
	name    string
	songs   []*song.Song
	sortKey string
}

// New creates an empty songlist
func New() *Songlist {
	return &Songlist{songs: make([]*song.Song, 0)}
}

// Name returns the songlist name
func (s *Songlist) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// SetName sets the songlist name
func (s *Songlist) SetName(name string) {
	s.mu.Lock()
	s.name = name
	s.mu.Unlock()
}

// Add appends a song
func (s *Songlist) Add(sng *song.Song) {
	s.mu.Lock()
	s.songs = append(s.songs, sng)
	s.mu.Unlock()
}

// AddList appends all songs from another list
func (s *Songlist) AddList(other *Songlist) {
	for _, sng := range other.Songs() {
		s.Add(sng)
	}
}

// Remove deletes the song at index
func (s *Songlist) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inRange(index) {
		return fmt.Errorf("index %d out of bounds", index)
	}
	if index+1 == len(s.songs) {
		s.songs = s.songs[:index]
	} else {
		s.songs = append(s.songs[:index], s.songs[index+1:]...)
	}
	return nil
}

// RemoveIndices deletes a selection of songs by index
func (s *Songlist) RemoveIndices(indices []int) error {
	// Remove in reverse order so earlier removals do not shift later indices
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		if err := s.Remove(i); err != nil {
			return err
		}
	}
	return nil
}

// Replace swaps in a song at index
func (s *Songlist) Replace(index int, sng *song.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inRange(index) {
		return fmt.Errorf("index %d out of bounds", index)
	}
	s.songs[index] = sng
	return nil
}

// Truncate shortens the list to length
func (s *Songlist) Truncate(length int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if length < 0 || length > len(s.songs) {
		return fmt.Errorf("length %d out of bounds", length)
	}
	s.songs = s.songs[:length]
	return nil
}

// Clear removes all songs
func (s *Songlist) Clear() {
	s.mu.Lock()
	s.songs = s.songs[:0]
	s.mu.Unlock()
}

// Locate finds a song by path, returns an error if absent
func (s *Songlist) Locate(match *song.Song) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, test := range s.songs {
		if match.Path == test.Path {
			return i, nil
		}
	}
	return 0, fmt.Errorf("cannot find song %q in songlist %q", match.Path, s.name)
}

// Song returns the song at index, nil if out of range
func (s *Songlist) Song(index int) *song.Song {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inRange(index) {
		return nil
	}
	return s.songs[index]
}

// Songs returns a snapshot of the list in order
func (s *Songlist) Songs() []*song.Song {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*song.Song, len(s.songs))
	copy(out, s.songs)
	return out
}

// Len returns the number of songs
func (s *Songlist) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.songs)
}

// InRange returns true if index is within list bounds
func (s *Songlist) InRange(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inRange(index)
}

func (s *Songlist) inRange(index int) bool {
	return index >= 0 && index < len(s.songs)
}

// Sort orders the list by the given tag fields. The first field sorts,
// the remaining fields stable-sort on top, last field wins ties least.
func (s *Songlist) Sort(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("cannot sort without sort criteria")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortKey = fields[0]
	sort.Sort(byTag{s})
	for _, field := range fields[1:] {
		s.sortKey = field
		sort.Stable(byTag{s})
	}
	return nil
}

// byTag adapts the songlist to sort.Interface over the current sort key.
// Callers hold the list mutex.
type byTag struct {
	s *Songlist
}

func (b byTag) Len() int {
	return len(b.s.songs)
}

func (b byTag) Less(i, j int) bool {
	return b.s.songs[i].SortTag(b.s.sortKey) < b.s.songs[j].SortTag(b.s.sortKey)
}

func (b byTag) Swap(i, j int) {
	b.s.songs[i], b.s.songs[j] = b.s.songs[j], b.s.songs[i]
}
