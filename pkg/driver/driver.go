// Package driver defines the raw terminal driver contract: the narrow
// function surface the safe layer calls, the cell and event records
// exchanged across it, and the integer codes those calls use on the wire.
package driver

import "time"

// Cell is a single character-grid position: a rune plus foreground and
// background attribute codes. The meaning of the attribute codes depends on
// the driver's current output mode.
type Cell struct {
	Ch rune
	Fg uint16
	Bg uint16
}

// Event kinds reported in RawEvent.Type.
const (
	EventKey    uint8 = 1
	EventResize uint8 = 2
	EventMouse  uint8 = 3
)

// ModAlt is the alt-modifier bit in RawEvent.Mod.
const ModAlt uint8 = 0x01

// RawEvent is one untyped event record as reported by a driver. Only the
// fields belonging to the reported kind are meaningful; drivers do not
// reliably zero the rest.
type RawEvent struct {
	Type uint8  // event kind
	Mod  uint8  // key events: modifier bits
	Key  uint16 // key events: key code; mouse events: button key code
	Ch   uint32 // key events: raw code point, not yet validated
	W    int    // resize events
	H    int    // resize events
	X    int    // mouse events
	Y    int    // mouse events
}

// Init return codes. Zero is success; the three named codes are the known
// failure modes, and any other negative value is an unspecified failure.
const (
	ErrUnsupportedTerminal = -1
	ErrFailedToOpen        = -2
	ErrPipeTrap            = -3
)

// Input mode codes for SelectInputMode. Esc and Alt occupy the low bits
// covered by InputModeMask; Mouse is an orthogonal flag OR'd on top.
// Passing InputCurrent reads the mode without changing it.
const (
	InputCurrent = 0
	InputEsc     = 1
	InputAlt     = 2
	InputMouse   = 4

	InputModeMask = 3
)

// Output mode codes for SelectOutputMode. Passing OutputCurrent reads the
// mode without changing it.
const (
	OutputCurrent   = 0
	OutputNormal    = 1
	Output256       = 2
	Output216       = 3
	OutputGrayscale = 4
)

// HiddenCursor is the coordinate that hides the cursor when passed to
// SetCursor for both axes.
const HiddenCursor = -1

// Driver is the terminal device a Session drives. Implementations own the
// real I/O and the cell buffer; they are not required to be safe for
// concurrent use. PeekEvent and PollEvent return a positive value when ev
// was filled in, and a negative value on a device failure; PeekEvent returns
// zero when the timeout elapsed with no event.
type Driver interface {
	// Init prepares the device and returns 0, or one of the negative init
	// codes above.
	Init() int

	// Shutdown restores the device. Calling it on an uninitialized driver
	// is undefined.
	Shutdown()

	Width() int
	Height() int

	// Clear resets every cell in the buffer to the clear attributes.
	Clear()

	// Present flushes the cell buffer to the device.
	Present()

	ChangeCell(x, y int, ch rune, fg, bg uint16)
	PutCell(x, y int, cell Cell)

	// CellBuffer exposes the driver-owned backing storage. The slice is
	// invalidated by Clear, Shutdown, and any event retrieval that observes
	// a resize; callers must re-derive its valid extent from Width and
	// Height on every access.
	CellBuffer() []Cell

	SetCursor(x, y int)
	SetClearAttributes(fg, bg uint16)

	// SelectInputMode sets the input mode and returns the resulting mode,
	// or reports the current mode when passed InputCurrent.
	SelectInputMode(mode int) int

	// SelectOutputMode sets the output mode and returns the resulting mode,
	// or reports the current mode when passed OutputCurrent.
	SelectOutputMode(mode int) int

	PeekEvent(ev *RawEvent, timeout time.Duration) int
	PollEvent(ev *RawEvent) int
}
