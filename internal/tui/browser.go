// Package tui implements the interactive catalog browser: a search line
// with a live-filtered result list, a detail view for a chosen record,
// and a help overlay.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/Yeint-herp/ntdoc/internal/catalog"
	"github.com/Yeint-herp/ntdoc/internal/rank"
	"github.com/Yeint-herp/ntdoc/internal/synth"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeSearch mode = iota
	modeDetail
	modeHelp
)

const helpText = `Type to filter entries via fuzzy matching.
Use Up/Down to move the selection.
Enter on a name opens its full definition.
Enter again on the definition copies the raw C form.
Esc backs out of a view, or quits from the search screen.`

// Browser is the interactive screen. It owns no catalog state beyond a
// read-only reference; every keystroke re-runs the ranking engine and a
// stale in-flight result is simply overwritten by the next draw.
type Browser struct {
	screen tcell.Screen
	engine *rank.Engine
	cat    catalog.Catalog
	mouse  bool

	mode     mode
	query    []rune
	results  []rank.Result
	selected int

	detail      catalog.Record
	detailLines []string
	scroll      int
	status      string
}

// New creates a browser on a real terminal screen.
func New(cat catalog.Catalog, engine *rank.Engine, mouse bool) (*Browser, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cat, engine, mouse), nil
}

// NewWithScreen creates a browser on the given screen. Tests use this
// with a tcell simulation screen.
func NewWithScreen(screen tcell.Screen, cat catalog.Catalog, engine *rank.Engine, mouse bool) *Browser {
	return &Browser{
		screen: screen,
		engine: engine,
		cat:    cat,
		mouse:  mouse,
	}
}

// Run initializes the screen and drives the event loop until the user
// quits. The screen is always finalized on return.
func (b *Browser) Run() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	defer b.screen.Fini()

	if b.mouse {
		b.screen.EnableMouse()
	}

	b.refilter()
	for {
		b.draw()
		if quit := b.handleEvent(b.screen.PollEvent()); quit {
			return nil
		}
	}
}

// handleEvent processes one event and reports whether to quit.
func (b *Browser) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		b.screen.Sync()
	case *tcell.EventKey:
		return b.handleKey(ev)
	}
	return false
}

func (b *Browser) handleKey(ev *tcell.EventKey) bool {
	switch b.mode {
	case modeSearch:
		return b.handleSearchKey(ev)
	case modeDetail:
		b.handleDetailKey(ev)
	case modeHelp:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter {
			b.mode = modeSearch
		}
	}
	return false
}

func (b *Browser) handleSearchKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyEnter:
		b.openSelected()
	case tcell.KeyUp:
		if b.selected > 0 {
			b.selected--
		}
	case tcell.KeyDown:
		if b.selected < len(b.results)-1 {
			b.selected++
		}
	case tcell.KeyF1:
		b.mode = modeHelp
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(b.query) > 0 {
			b.query = b.query[:len(b.query)-1]
			b.refilter()
		}
	case tcell.KeyCtrlU:
		if len(b.query) > 0 {
			b.query = b.query[:0]
			b.refilter()
		}
	case tcell.KeyRune:
		b.query = append(b.query, ev.Rune())
		b.refilter()
	}
	return false
}

func (b *Browser) handleDetailKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		b.mode = modeSearch
		b.status = ""
	case tcell.KeyEnter:
		b.copyRaw()
	case tcell.KeyUp:
		if b.scroll > 0 {
			b.scroll--
		}
	case tcell.KeyDown:
		if b.scroll < len(b.detailLines)-1 {
			b.scroll++
		}
	}
}

// refilter re-ranks the catalog for the current query and clamps the
// selection.
func (b *Browser) refilter() {
	b.results = b.engine.Rank(string(b.query))
	if b.selected >= len(b.results) {
		b.selected = len(b.results) - 1
	}
	if b.selected < 0 {
		b.selected = 0
	}
}

func (b *Browser) openSelected() {
	if len(b.results) == 0 {
		return
	}
	b.detail = b.results[b.selected].Record
	b.detailLines = strings.Split(synth.Pretty(b.detail, b.cat), "\n")
	b.scroll = 0
	b.status = ""
	b.mode = modeDetail
}

func (b *Browser) copyRaw() {
	raw := synth.Raw(b.detail, b.cat)
	if err := writeClipboard(raw); err != nil {
		b.status = "Clipboard error: " + err.Error()
		return
	}
	b.status = "Raw definition copied to clipboard"
}

func (b *Browser) draw() {
	b.screen.Clear()
	switch b.mode {
	case modeSearch:
		b.drawSearch()
	case modeDetail:
		b.drawDetail()
	case modeHelp:
		b.drawHelp()
	}
	b.screen.Show()
}

func (b *Browser) drawSearch() {
	width, height := b.screen.Size()
	base := tcell.StyleDefault
	selectedStyle := base.Reverse(true)

	drawLine(b.screen, 0, 0, width, base.Bold(true), "Search: "+string(b.query))
	b.screen.ShowCursor(len("Search: ")+len(b.query), 0)

	for i, res := range b.results {
		y := i + 1
		if y >= height-1 {
			break
		}
		style := base
		if i == b.selected {
			style = selectedStyle
		}
		drawLine(b.screen, 0, y, width, style, res.Record.Name())
	}

	drawLine(b.screen, 0, height-1, width, base.Dim(true), "F1 help   Esc quit")
}

func (b *Browser) drawDetail() {
	width, height := b.screen.Size()
	base := tcell.StyleDefault
	b.screen.HideCursor()

	drawLine(b.screen, 0, 0, width, base.Bold(true), b.detail.Name())

	visible := height - 2
	for i := 0; i < visible; i++ {
		lineIdx := b.scroll + i
		if lineIdx >= len(b.detailLines) {
			break
		}
		drawLine(b.screen, 0, i+1, width, base, b.detailLines[lineIdx])
	}

	footer := "Enter copy raw   Esc back"
	if b.status != "" {
		footer = b.status
	}
	drawLine(b.screen, 0, height-1, width, base.Dim(true), footer)
}

func (b *Browser) drawHelp() {
	width, height := b.screen.Size()
	base := tcell.StyleDefault
	b.screen.HideCursor()

	drawLine(b.screen, 0, 0, width, base.Bold(true), "Help")
	for i, line := range strings.Split(helpText, "\n") {
		if i+1 >= height {
			break
		}
		drawLine(b.screen, 0, i+1, width, base, line)
	}
}

// drawLine writes text at (x, y), clipped to the screen width.
func drawLine(screen tcell.Screen, x, y, width int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
