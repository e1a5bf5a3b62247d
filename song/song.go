package song

import (
	"fmt"
	"strings"
	"time"
)

// Song is a single track with free-form string tags. Tag keys are
// lowercase, sort keys are derived lowercase forms of the tag values.
type Song struct {
	Path     string
	Duration time.Duration
	tags     map[string]string
	sortTags map[string]string
}

// New creates an empty song
func New() *Song {
	return &Song{
		tags:     make(map[string]string),
		sortTags: make(map[string]string),
	}
}

// SetTag stores a tag value and its derived sort key
func (s *Song) SetTag(key, value string) {
	key = strings.ToLower(key)
	s.tags[key] = value
	s.sortTags[key] = strings.ToLower(value)
}

// Tag returns a tag value, empty string if unset
func (s *Song) Tag(key string) string {
	return s.tags[strings.ToLower(key)]
}

// SortTag returns the sort key for a tag, empty string if unset
func (s *Song) SortTag(key string) string {
	return s.sortTags[strings.ToLower(key)]
}

// Artist returns the artist tag
func (s *Song) Artist() string {
	return s.Tag("artist")
}

// Title returns the title tag, falling back to the file path
func (s *Song) Title() string {
	if t := s.Tag("title"); t != "" {
		return t
	}
	return s.Path
}

// Album returns the album tag
func (s *Song) Album() string {
	return s.Tag("album")
}

// DurationString formats the duration as m:ss, empty if unknown
func (s *Song) DurationString() string {
	if s.Duration <= 0 {
		return ""
	}
	total := int(s.Duration.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
