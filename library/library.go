package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/vibe/console"
	"github.com/lixenwraith/vibe/song"
	"github.com/lixenwraith/vibe/songlist"
)

// audioExts are the file extensions treated as tracks
var audioExts = map[string]bool{
	".flac": true,
	".mp3":  true,
	".ogg":  true,
	".opus": true,
	".wav":  true,
	".m4a":  true,
}

// Scan walks root and builds a songlist from recognized audio files.
// Unreadable subtrees are logged and skipped, not fatal.
func Scan(root string, log *console.History) (*songlist.Songlist, error) {
	list := songlist.New()
	list.SetName(filepath.Base(root))

	skipped := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			skipped++
			log.Warningf("skipping %s: %s", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !audioExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		list.Add(songFromPath(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	if err := list.Sort([]string{"title", "artist"}); err == nil && list.Len() > 0 {
		log.Debugf("sorted %d songs by artist, title", list.Len())
	}
	if skipped > 0 {
		log.Warningf("library scan skipped %d unreadable entries", skipped)
	}
	log.Infof("library loaded, %d songs in %s", list.Len(), root)
	return list, nil
}

// songFromPath derives tags from the file name. "Artist - Title.ext" is
// split on the first separator, anything else falls back to parent
// directory as artist and bare file name as title.
func songFromPath(path string) *song.Song {
	s := song.New()
	s.Path = path

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if artist, title, found := strings.Cut(base, " - "); found {
		s.SetTag("artist", strings.TrimSpace(artist))
		s.SetTag("title", strings.TrimSpace(title))
	} else {
		s.SetTag("artist", filepath.Base(filepath.Dir(path)))
		s.SetTag("title", base)
	}
	return s
}

// Extensions returns the recognized audio extensions, sorted
func Extensions() []string {
	out := make([]string, 0, len(audioExts))
	for ext := range audioExts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
