// Package widget provides the immediate-mode screen widgets of the
// client: top bar, song list, console window, and the single-row status
// line.
//
// Widgets hold no retained draw state. Each owns a borrowed screen rect
// assigned by the layout and repaints it fully on every Draw call, so a
// redraw after any state change produces the complete visible output.
//
// Usage pattern:
//
//	layout := widget.ComputeLayout(screen.Size())
//	status := widget.NewStatusLine(screen, history)
//	status.SetRect(layout.Status)
//	status.Draw()
//	screen.Show()
package widget
