package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vibe/alert"
	"github.com/lixenwraith/vibe/config"
	"github.com/lixenwraith/vibe/console"
	"github.com/lixenwraith/vibe/input"
	"github.com/lixenwraith/vibe/library"
	"github.com/lixenwraith/vibe/songlist"
	"github.com/lixenwraith/vibe/terminal"
	"github.com/lixenwraith/vibe/widget"
)

const (
	programName    = "vibe"
	programVersion = "0.1.0"
)

var (
	configFlag = flag.String("config", "", "Config file path (default ~/.config/vibe/config.toml)")
	dirFlag    = flag.String("dir", "", "Music directory, overrides config")
	debugFlag  = flag.Bool("debug", false, "Surface debug messages on the status line")
)

// client bundles the widgets and the state the redraw loop touches
type client struct {
	screen  *terminal.Screen
	history *console.History
	bell    *alert.Bell
	keymap  *input.Keymap

	topbar     *widget.Topbar
	songs      *widget.SonglistWindow
	consoleWin *widget.ConsoleWindow
	statusLine *widget.StatusLine

	showConsole bool
	seen        int // History entries already checked for the bell
}

func main() {
	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, otherwise raw mode swallows it
	var screen *terminal.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "%s crashed: %v\n", programName, r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
	if *dirFlag != "" {
		cfg.MusicDir = *dirFlag
	}
	if *debugFlag {
		cfg.StatusLevel = console.LevelDebug
	}

	history := console.NewHistory(cfg.ConsoleSize)
	history.Infof("%s %s ready", programName, programVersion)

	screen, err = terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
	defer screen.Fini()

	bell := alert.NewBell(cfg.Bell)
	defer bell.Close()

	c := &client{
		screen:     screen,
		history:    history,
		bell:       bell,
		keymap:     input.DefaultKeymap(),
		topbar:     widget.NewTopbar(screen, programName, programVersion),
		songs:      widget.NewSonglistWindow(screen, songlist.New()),
		consoleWin: widget.NewConsoleWindow(screen, history),
		statusLine: widget.NewStatusLine(screen, history),
	}
	c.statusLine.SetThreshold(cfg.StatusLevel)
	c.resize()

	// Library scan runs off the UI thread, progress lands on the console
	listCh := make(chan *songlist.Songlist, 1)
	go func() {
		list, err := library.Scan(cfg.MusicDir, history)
		if err != nil {
			history.Errorf("cannot scan library: %s", err)
			return
		}
		listCh <- list
	}()

	// Input polling stays in its own goroutine, the loop below owns all
	// drawing
	eventCh := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(cfg.Tick)
	defer ticker.Stop()

	c.redraw()
	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			if !c.handleEvent(ev) {
				return
			}
			c.redraw()

		case list := <-listCh:
			c.songs.SetList(list)
			c.redraw()

		case <-history.Notify():
			c.checkBell()
			c.redraw()

		case <-ticker.C:
			// Keeps the topbar clock moving
			c.redraw()
		}
	}
}

// handleEvent processes one terminal event, false means quit
func (c *client) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.resize()
		c.screen.Sync()

	case *tcell.EventKey:
		switch c.keymap.Lookup(ev) {
		case input.ActionQuit:
			return false
		case input.ActionCursorUp:
			c.songs.MoveCursor(-1)
		case input.ActionCursorDown:
			c.songs.MoveCursor(1)
		case input.ActionPageUp:
			c.songs.MoveCursor(-c.songs.PageSize())
		case input.ActionPageDown:
			c.songs.MoveCursor(c.songs.PageSize())
		case input.ActionHome:
			c.songs.CursorHome()
		case input.ActionEnd:
			c.songs.CursorEnd()
		case input.ActionConsoleToggle:
			c.showConsole = !c.showConsole
			c.consoleWin.ScrollToEnd()
		case input.ActionConsoleScrollUp:
			c.consoleWin.Scroll(1)
		case input.ActionConsoleScrollDown:
			c.consoleWin.Scroll(-1)
		case input.ActionCycleStatusLevel:
			c.cycleStatusLevel()
		case input.ActionRedraw:
			c.screen.Sync()
		}
	}
	return true
}

// resize recomputes the layout from the current terminal size
func (c *client) resize() {
	w, h := c.screen.Size()
	layout := widget.ComputeLayout(w, h)
	c.topbar.SetRect(layout.Topbar)
	c.songs.SetRect(layout.Main)
	c.consoleWin.SetRect(layout.Main)
	c.statusLine.SetRect(layout.Status)
}

// redraw repaints every widget and flushes
func (c *client) redraw() {
	c.topbar.SetSummary(fmt.Sprintf("%d songs", c.songs.Len()))
	c.topbar.Draw()

	if c.showConsole {
		c.consoleWin.Draw()
	} else {
		c.songs.Draw()
	}

	c.statusLine.Draw()
	c.screen.Show()
}

// checkBell rings once if any entry appended since the last check is an
// error
func (c *client) checkBell() {
	entries := c.history.Entries()
	for i := c.seen; i < len(entries); i++ {
		if entries[i].Level == console.LevelError {
			c.bell.Ring()
			break
		}
	}
	c.seen = len(entries)
}

// cycleStatusLevel steps the status line threshold error -> warning ->
// info -> debug and back, announcing the change on the console
func (c *client) cycleStatusLevel() {
	next := c.statusLine.Threshold() + 1
	if next > console.LevelDebug {
		next = console.LevelError
	}
	c.statusLine.SetThreshold(next)
	c.history.Infof("status line level set to %s", next)
}
