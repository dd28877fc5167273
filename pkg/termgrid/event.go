package termgrid

import (
	"fmt"
	"unicode/utf8"

	"termgrid/pkg/driver"
)

// Event is one decoded terminal event: a KeyEvent, ResizeEvent, or
// MouseEvent. Events are plain values produced fresh on every poll; they are
// never cached or reused.
type Event interface {
	isEvent()
}

// KeyEvent reports a key press. Ch is the printable rune, or 0 when the key
// has no printable representation (special keys, or an invalid code point
// reported by the driver). Alt is set when the alt modifier was held.
type KeyEvent struct {
	Key Key
	Ch  rune
	Alt bool
}

// ResizeEvent reports the new terminal dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

// MouseEvent reports a mouse action at a cell position. Only delivered while
// mouse reporting is enabled.
type MouseEvent struct {
	Button MouseButton
	X      int
	Y      int
}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
func (MouseEvent) isEvent()  {}

// MouseButton identifies which button a MouseEvent refers to.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseRelease
	MouseWheelUp
	MouseWheelDown
)

// String returns the string representation of MouseButton.
func (b MouseButton) String() string {
	buttons := []string{"left", "right", "middle", "release", "wheel_up", "wheel_down"}
	if int(b) >= 0 && int(b) < len(buttons) {
		return buttons[b]
	}
	return "unknown"
}

// mouseButtonFromRaw matches the six key codes used inside mouse events.
// Anything else is a driver contract violation, never coerced.
func mouseButtonFromRaw(raw uint16) (MouseButton, error) {
	switch raw {
	case driver.KeyMouseLeft:
		return MouseLeft, nil
	case driver.KeyMouseRight:
		return MouseRight, nil
	case driver.KeyMouseMiddle:
		return MouseMiddle, nil
	case driver.KeyMouseRelease:
		return MouseRelease, nil
	case driver.KeyMouseWheelUp:
		return MouseWheelUp, nil
	case driver.KeyMouseWheelDown:
		return MouseWheelDown, nil
	}
	return 0, fmt.Errorf("%w: key code %#x", ErrUnknownMouseButton, raw)
}

// decodeEvent converts one raw driver record into a typed event. It reads
// only the fields belonging to the matched kind; the driver does not zero
// the rest. An unrecognized kind or an undecodable mandatory sub-field is a
// hard error rather than a dropped or downgraded event.
func decodeEvent(raw *driver.RawEvent) (Event, error) {
	switch raw.Type {
	case driver.EventKey:
		ch := rune(raw.Ch)
		if !utf8.ValidRune(ch) {
			ch = 0
		}
		return KeyEvent{
			Key: Key(raw.Key),
			Ch:  ch,
			Alt: raw.Mod&driver.ModAlt != 0,
		}, nil
	case driver.EventResize:
		return ResizeEvent{Width: raw.W, Height: raw.H}, nil
	case driver.EventMouse:
		button, err := mouseButtonFromRaw(raw.Key)
		if err != nil {
			return nil, err
		}
		return MouseEvent{Button: button, X: raw.X, Y: raw.Y}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownEvent, raw.Type)
}
