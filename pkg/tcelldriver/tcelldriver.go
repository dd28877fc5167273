// Package tcelldriver implements the driver contract on top of tcell. It
// owns the cell back buffer, paints it through a tcell screen on Present,
// and translates tcell input events into raw driver event records.
package tcelldriver

import (
	"errors"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"termgrid/pkg/driver"
)

const eventQueueSize = 100

// Driver drives a tcell.Screen. Not safe for concurrent use; the safe layer
// imposes single-goroutine access.
type Driver struct {
	screen tcell.Screen

	cells  []driver.Cell
	width  int
	height int

	inputMode  int
	outputMode int
	clearFg    uint16
	clearBg    uint16
	cursorX    int
	cursorY    int

	events      chan tcell.Event
	quit        chan struct{}
	lastButtons tcell.ButtonMask
}

// New returns a driver that opens the process terminal on Init.
func New() *Driver {
	return &Driver{}
}

// NewWithScreen returns a driver bound to an existing screen, typically a
// tcell simulation screen in tests.
func NewWithScreen(screen tcell.Screen) *Driver {
	return &Driver{screen: screen}
}

// Init prepares the screen and starts the event pump. Returns 0 on success
// or one of the negative driver init codes.
func (d *Driver) Init() int {
	if d.screen == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) && !term.IsTerminal(int(os.Stdout.Fd())) {
			return driver.ErrFailedToOpen
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return initErrorCode(err)
		}
		d.screen = screen
	}
	if err := d.screen.Init(); err != nil {
		return initErrorCode(err)
	}

	d.inputMode = driver.InputEsc
	d.outputMode = driver.OutputNormal
	d.clearFg = driver.AttrDefault
	d.clearBg = driver.AttrDefault
	d.cursorX = driver.HiddenCursor
	d.cursorY = driver.HiddenCursor
	d.lastButtons = 0

	w, h := d.screen.Size()
	d.width, d.height = 0, 0
	d.resizeBuffer(w, h)

	d.events = make(chan tcell.Event, eventQueueSize)
	d.quit = make(chan struct{})
	go d.pumpEvents()

	return 0
}

func initErrorCode(err error) int {
	if errors.Is(err, tcell.ErrTermNotFound) {
		return driver.ErrUnsupportedTerminal
	}
	return driver.ErrFailedToOpen
}

// pumpEvents feeds screen events into the channel until the screen is
// finalized or the driver shuts down.
func (d *Driver) pumpEvents() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			close(d.events)
			return
		}
		select {
		case d.events <- ev:
		case <-d.quit:
			return
		}
	}
}

// Shutdown restores the terminal. Further event calls return a failure code
// and buffer calls become no-ops.
func (d *Driver) Shutdown() {
	if d.quit == nil {
		return
	}
	close(d.quit)
	d.quit = nil
	d.screen.Fini()
	d.cells = nil
	d.width = 0
	d.height = 0
}

// Width returns the buffer width.
func (d *Driver) Width() int {
	return d.width
}

// Height returns the buffer height.
func (d *Driver) Height() int {
	return d.height
}

// CellBuffer returns the backing cell storage.
func (d *Driver) CellBuffer() []driver.Cell {
	return d.cells
}

// resizeBuffer reallocates the cell buffer for the new dimensions, keeping
// the overlapping top-left region.
func (d *Driver) resizeBuffer(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == d.width && height == d.height && d.cells != nil {
		return
	}

	oldW, oldH, oldCells := d.width, d.height, d.cells
	d.width, d.height = width, height
	d.cells = make([]driver.Cell, width*height)
	d.fill(d.cells)

	minW, minH := min(oldW, width), min(oldH, height)
	for y := 0; y < minH; y++ {
		copy(d.cells[y*width:y*width+minW], oldCells[y*oldW:y*oldW+minW])
	}
}

func (d *Driver) fill(cells []driver.Cell) {
	for i := range cells {
		cells[i] = driver.Cell{Ch: ' ', Fg: d.clearFg, Bg: d.clearBg}
	}
}

// Clear resets every cell to the clear attributes.
func (d *Driver) Clear() {
	d.fill(d.cells)
}

// SetClearAttributes sets the attributes Clear fills with.
func (d *Driver) SetClearAttributes(fg, bg uint16) {
	d.clearFg = fg
	d.clearBg = bg
}

// ChangeCell writes one cell. Out-of-bounds writes are ignored.
func (d *Driver) ChangeCell(x, y int, ch rune, fg, bg uint16) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.cells[y*d.width+x] = driver.Cell{Ch: ch, Fg: fg, Bg: bg}
}

// PutCell writes one cell value. Out-of-bounds writes are ignored.
func (d *Driver) PutCell(x, y int, cell driver.Cell) {
	d.ChangeCell(x, y, cell.Ch, cell.Fg, cell.Bg)
}

// SetCursor places the cursor, hiding it at the hidden coordinate. Applied
// on the next Present.
func (d *Driver) SetCursor(x, y int) {
	d.cursorX = x
	d.cursorY = y
}

// Present paints the cell buffer onto the screen and flushes it.
func (d *Driver) Present() {
	if d.cells == nil {
		return
	}
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			cell := d.cells[y*d.width+x]
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			d.screen.SetContent(x, y, ch, nil, d.style(cell.Fg, cell.Bg))
			if runewidth.RuneWidth(ch) == 2 {
				// the next cell is covered by the wide rune
				x++
			}
		}
	}
	if d.cursorX == driver.HiddenCursor || d.cursorY == driver.HiddenCursor {
		d.screen.HideCursor()
	} else {
		d.screen.ShowCursor(d.cursorX, d.cursorY)
	}
	d.screen.Show()
}

// SelectInputMode sets the Esc/Alt selection and the mouse flag, or reports
// the current mode when passed driver.InputCurrent. Mouse reporting on the
// screen is toggled to match the flag.
func (d *Driver) SelectInputMode(mode int) int {
	if mode == driver.InputCurrent {
		return d.inputMode
	}
	if mode&driver.InputModeMask == 0 {
		mode |= d.inputMode & driver.InputModeMask
	}
	d.inputMode = mode & (driver.InputModeMask | driver.InputMouse)

	if d.inputMode&driver.InputMouse != 0 {
		d.screen.EnableMouse()
	} else {
		d.screen.DisableMouse()
	}
	return d.inputMode
}

// SelectOutputMode sets the attribute interpretation, or reports the current
// mode when passed driver.OutputCurrent.
func (d *Driver) SelectOutputMode(mode int) int {
	if mode == driver.OutputCurrent {
		return d.outputMode
	}
	d.outputMode = mode
	return d.outputMode
}

// PollEvent blocks until an event is available. Returns 1 with ev filled in,
// or -1 after Shutdown.
func (d *Driver) PollEvent(ev *driver.RawEvent) int {
	quit := d.quit
	if quit == nil {
		return -1
	}
	for {
		select {
		case <-quit:
			return -1
		case tev, ok := <-d.events:
			if !ok {
				return -1
			}
			if d.translate(tev, ev) {
				return 1
			}
		}
	}
}

// PeekEvent waits up to timeout for an event. Returns 1 with ev filled in,
// 0 on timeout, or -1 after Shutdown.
func (d *Driver) PeekEvent(ev *driver.RawEvent, timeout time.Duration) int {
	quit := d.quit
	if quit == nil {
		return -1
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-quit:
			return -1
		case <-timer.C:
			return 0
		case tev, ok := <-d.events:
			if !ok {
				return -1
			}
			if d.translate(tev, ev) {
				return 1
			}
		}
	}
}

// translate converts one tcell event into a raw record. Returns false for
// tcell events that have no raw representation (focus, paste, bare mouse
// motion); the caller keeps waiting.
func (d *Driver) translate(tev tcell.Event, ev *driver.RawEvent) bool {
	switch tev := tev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		d.resizeBuffer(w, h)
		*ev = driver.RawEvent{Type: driver.EventResize, W: w, H: h}
		return true
	case *tcell.EventKey:
		key, ch, ok := translateKey(tev)
		if !ok {
			return false
		}
		var mod uint8
		if tev.Modifiers()&tcell.ModAlt != 0 {
			mod |= driver.ModAlt
		}
		*ev = driver.RawEvent{Type: driver.EventKey, Mod: mod, Key: key, Ch: uint32(ch)}
		return true
	case *tcell.EventMouse:
		button, ok := d.translateMouse(tev)
		if !ok {
			return false
		}
		x, y := tev.Position()
		*ev = driver.RawEvent{Type: driver.EventMouse, Key: button, X: x, Y: y}
		return true
	}
	return false
}
