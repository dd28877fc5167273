package termgrid

import (
	"time"

	"termgrid/pkg/driver"
)

// fakeDriver is an in-memory driver for exercising the safe layer without a
// terminal. Events are served from a queue; once the queue is empty, poll
// and peek return the configured fallback codes.
type fakeDriver struct {
	initCode      int
	initCalls     int
	shutdownCalls int

	width  int
	height int
	cells  []driver.Cell

	inputMode  int
	outputMode int
	clearFg    uint16
	clearBg    uint16
	cursorX    int
	cursorY    int

	clears   int
	presents int

	queue        []driver.RawEvent
	pollFallback int
	peekFallback int
}

func newFakeDriver(width, height int) *fakeDriver {
	return &fakeDriver{
		width:        width,
		height:       height,
		cells:        make([]driver.Cell, width*height),
		inputMode:    driver.InputEsc,
		outputMode:   driver.OutputNormal,
		pollFallback: -1,
	}
}

func (f *fakeDriver) Init() int {
	f.initCalls++
	return f.initCode
}

func (f *fakeDriver) Shutdown() {
	f.shutdownCalls++
}

func (f *fakeDriver) Width() int  { return f.width }
func (f *fakeDriver) Height() int { return f.height }

// resize swaps in a new buffer, the way a real driver does when the
// terminal shrinks or grows between calls.
func (f *fakeDriver) resize(width, height int) {
	f.width, f.height = width, height
	f.cells = make([]driver.Cell, width*height)
}

func (f *fakeDriver) Clear() {
	f.clears++
	for i := range f.cells {
		f.cells[i] = driver.Cell{Ch: ' ', Fg: f.clearFg, Bg: f.clearBg}
	}
}

func (f *fakeDriver) Present() { f.presents++ }

func (f *fakeDriver) ChangeCell(x, y int, ch rune, fg, bg uint16) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = driver.Cell{Ch: ch, Fg: fg, Bg: bg}
}

func (f *fakeDriver) PutCell(x, y int, cell driver.Cell) {
	f.ChangeCell(x, y, cell.Ch, cell.Fg, cell.Bg)
}

func (f *fakeDriver) CellBuffer() []driver.Cell { return f.cells }

func (f *fakeDriver) SetCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
}

func (f *fakeDriver) SetClearAttributes(fg, bg uint16) {
	f.clearFg, f.clearBg = fg, bg
}

func (f *fakeDriver) SelectInputMode(mode int) int {
	if mode == driver.InputCurrent {
		return f.inputMode
	}
	f.inputMode = mode
	return f.inputMode
}

func (f *fakeDriver) SelectOutputMode(mode int) int {
	if mode == driver.OutputCurrent {
		return f.outputMode
	}
	f.outputMode = mode
	return f.outputMode
}

func (f *fakeDriver) pushEvent(ev driver.RawEvent) {
	f.queue = append(f.queue, ev)
}

func (f *fakeDriver) popEvent(ev *driver.RawEvent) bool {
	if len(f.queue) == 0 {
		return false
	}
	*ev = f.queue[0]
	f.queue = f.queue[1:]
	return true
}

func (f *fakeDriver) PollEvent(ev *driver.RawEvent) int {
	if f.popEvent(ev) {
		return 1
	}
	return f.pollFallback
}

func (f *fakeDriver) PeekEvent(ev *driver.RawEvent, timeout time.Duration) int {
	if f.popEvent(ev) {
		return 1
	}
	return f.peekFallback
}

// open is a test helper that opens a session over a fresh fake driver.
func openFake(width, height int) (*Session, *fakeDriver, error) {
	fake := newFakeDriver(width, height)
	session, err := OpenDriver(fake)
	return session, fake, err
}
