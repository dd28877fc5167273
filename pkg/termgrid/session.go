// Package termgrid is a safe access layer over a character-cell terminal
// display. A Session owns exclusive access to the terminal for the process,
// exposes the display as a bounds-checked grid of cells, and turns the
// driver's raw input records into typed events. The actual device I/O is
// delegated to a driver.Driver; pkg/tcelldriver provides the production one.
package termgrid

import (
	"fmt"
	"time"

	"termgrid/pkg/driver"
	"termgrid/pkg/tcelldriver"
)

// Logger interface for debug logging.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Session is the single live handle on the terminal. At most one Session
// exists per process at any instant; Open returns ErrLocked otherwise. A
// Session must be driven from one goroutine; the driver shares mutable
// state and is not reentrant.
type Session struct {
	drv    driver.Driver
	logger Logger
}

// Open acquires the process-wide terminal lock, initializes the default
// tcell-backed driver, and returns the live session. Exactly one of the
// returned values is non-nil. On any init failure the lock is released
// before returning.
func Open() (*Session, error) {
	return OpenDriver(tcelldriver.New())
}

// OpenDriver is Open with an explicit driver.
func OpenDriver(d driver.Driver) (*Session, error) {
	if !acquireSessionLock() {
		return nil, ErrLocked
	}
	if code := d.Init(); code != 0 {
		releaseSessionLock()
		switch code {
		case driver.ErrUnsupportedTerminal:
			return nil, ErrUnsupportedTerminal
		case driver.ErrFailedToOpen:
			return nil, ErrFailedToOpenDevice
		case driver.ErrPipeTrap:
			return nil, ErrPipeTrap
		default:
			return nil, fmt.Errorf("terminal init failed: code %d", code)
		}
	}
	return &Session{drv: d}, nil
}

// SetLogger sets the logger for debug output.
func (s *Session) SetLogger(logger Logger) {
	s.logger = logger
}

func (s *Session) logDebug(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debugf(format, args...)
	}
}

// IsOpen reports whether the session still owns a live driver.
func (s *Session) IsOpen() bool {
	return s.drv != nil
}

// Close shuts the driver down and releases the process-wide lock. Close is
// idempotent; calling it on an already-closed session does nothing.
func (s *Session) Close() {
	if s.drv == nil {
		return
	}
	s.logDebug("closing session")
	s.drv.Shutdown()
	s.drv = nil
	releaseSessionLock()
}

// Clear resets every cell to the clear attributes. No-op after Close.
func (s *Session) Clear() {
	if s.drv != nil {
		s.drv.Clear()
	}
}

// Present flushes the cell buffer to the terminal. No-op after Close.
func (s *Session) Present() {
	if s.drv != nil {
		s.drv.Present()
	}
}

// SetClearAttributes sets the attributes Clear fills cells with. No-op after
// Close.
func (s *Session) SetClearAttributes(fg, bg Attribute) {
	if s.drv != nil {
		s.drv.SetClearAttributes(fg, bg)
	}
}

// SetCursor places the terminal cursor at (x, y). No-op after Close.
func (s *Session) SetCursor(x, y int) {
	if s.drv != nil {
		s.drv.SetCursor(x, y)
	}
}

// HideCursor moves the cursor to the hidden coordinate.
func (s *Session) HideCursor() {
	s.SetCursor(driver.HiddenCursor, driver.HiddenCursor)
}

// InputMode reports the driver's current Esc/Alt selection.
func (s *Session) InputMode() (InputMode, error) {
	if s.drv == nil {
		return 0, ErrClosed
	}
	return inputModeFromRaw(s.drv.SelectInputMode(driver.InputCurrent))
}

// SetInputMode switches between Esc and Alt escape interpretation. The
// mouse-enable flag is read back and carried over, so changing the input
// mode never disables mouse reporting.
func (s *Session) SetInputMode(mode InputMode) {
	if s.drv == nil {
		return
	}
	cur := s.drv.SelectInputMode(driver.InputCurrent)
	flags := cur &^ driver.InputModeMask
	s.drv.SelectInputMode(mode.raw() | flags)
	s.logDebug("input mode set to %s", mode)
}

// IsMouseEnabled reports whether mouse events are being delivered.
func (s *Session) IsMouseEnabled() bool {
	if s.drv == nil {
		return false
	}
	return s.drv.SelectInputMode(driver.InputCurrent)&driver.InputMouse != 0
}

// SetMouseEnabled toggles mouse reporting without touching the Esc/Alt
// selection.
func (s *Session) SetMouseEnabled(enabled bool) {
	if s.drv == nil {
		return
	}
	cur := s.drv.SelectInputMode(driver.InputCurrent)
	next := cur &^ driver.InputMouse
	if enabled {
		next = cur | driver.InputMouse
	}
	if next != cur {
		s.drv.SelectInputMode(next)
		s.logDebug("mouse reporting enabled=%v", enabled)
	}
}

// OutputMode reports the driver's current attribute interpretation.
func (s *Session) OutputMode() (OutputMode, error) {
	if s.drv == nil {
		return 0, ErrClosed
	}
	return outputModeFromRaw(s.drv.SelectOutputMode(driver.OutputCurrent))
}

// SetOutputMode selects how cell attributes are interpreted. Takes full
// effect on the next Clear.
func (s *Session) SetOutputMode(mode OutputMode) {
	if s.drv == nil {
		return
	}
	s.drv.SelectOutputMode(mode.raw())
	s.logDebug("output mode set to %s", mode)
}

// PollEvent blocks until the driver reports an event and returns it decoded.
// The driver contract guarantees an event or an explicit error on this call,
// so a non-positive return is a hard failure.
func (s *Session) PollEvent() (Event, error) {
	if s.drv == nil {
		return nil, ErrClosed
	}
	var raw driver.RawEvent
	if result := s.drv.PollEvent(&raw); result <= 0 {
		return nil, fmt.Errorf("event poll failed: code %d", result)
	}
	return decodeEvent(&raw)
}

// PeekEvent waits up to timeout for an event. A (nil, nil) return means the
// timeout elapsed with no event, which is a normal outcome and distinct from
// a decode or driver failure.
func (s *Session) PeekEvent(timeout time.Duration) (Event, error) {
	if s.drv == nil {
		return nil, ErrClosed
	}
	var raw driver.RawEvent
	result := s.drv.PeekEvent(&raw, timeout)
	if result < 0 {
		return nil, fmt.Errorf("event peek failed: code %d", result)
	}
	if result == 0 {
		return nil, nil
	}
	return decodeEvent(&raw)
}
