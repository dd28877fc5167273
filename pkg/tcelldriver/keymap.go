package tcelldriver

import (
	"github.com/gdamore/tcell/v2"

	"termgrid/pkg/driver"
)

// Special tcell keys to driver key codes. Control characters are absent on
// purpose: tcell reports them with key values equal to their ASCII codes,
// which already match the driver codes.
var specialKeys = map[tcell.Key]uint16{
	tcell.KeyF1:     driver.KeyF1,
	tcell.KeyF2:     driver.KeyF2,
	tcell.KeyF3:     driver.KeyF3,
	tcell.KeyF4:     driver.KeyF4,
	tcell.KeyF5:     driver.KeyF5,
	tcell.KeyF6:     driver.KeyF6,
	tcell.KeyF7:     driver.KeyF7,
	tcell.KeyF8:     driver.KeyF8,
	tcell.KeyF9:     driver.KeyF9,
	tcell.KeyF10:    driver.KeyF10,
	tcell.KeyF11:    driver.KeyF11,
	tcell.KeyF12:    driver.KeyF12,
	tcell.KeyInsert: driver.KeyInsert,
	tcell.KeyDelete: driver.KeyDelete,
	tcell.KeyHome:   driver.KeyHome,
	tcell.KeyEnd:    driver.KeyEnd,
	tcell.KeyPgUp:   driver.KeyPgUp,
	tcell.KeyPgDn:   driver.KeyPgDn,
	tcell.KeyUp:     driver.KeyArrowUp,
	tcell.KeyDown:   driver.KeyArrowDown,
	tcell.KeyLeft:   driver.KeyArrowLeft,
	tcell.KeyRight:  driver.KeyArrowRight,
}

// translateKey maps a tcell key event to a driver key code and rune. A key
// that has no driver representation reports ok=false and is dropped.
func translateKey(ev *tcell.EventKey) (key uint16, ch rune, ok bool) {
	k := ev.Key()
	if k == tcell.KeyRune {
		ch = ev.Rune()
		if ch == ' ' {
			return driver.KeySpace, 0, true
		}
		return 0, ch, true
	}
	if code, found := specialKeys[k]; found {
		return code, 0, true
	}
	// Enter, Esc, Tab, Backspace and every Ctrl combination arrive as their
	// ASCII control codes, which the driver table uses verbatim.
	if k < 0x80 {
		return uint16(k), 0, true
	}
	return 0, 0, false
}

// translateMouse maps a tcell mouse event to a driver mouse key code.
// Wheel motion maps directly; button state is tracked so that the
// transition back to no buttons reports a release, the way the raw protocol
// does. Bare motion with no buttons held reports ok=false.
func (d *Driver) translateMouse(ev *tcell.EventMouse) (button uint16, ok bool) {
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		return driver.KeyMouseWheelUp, true
	}
	if buttons&tcell.WheelDown != 0 {
		return driver.KeyMouseWheelDown, true
	}

	pressed := buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	if pressed == 0 {
		if d.lastButtons != 0 {
			d.lastButtons = 0
			return driver.KeyMouseRelease, true
		}
		return 0, false
	}
	d.lastButtons = pressed

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		return driver.KeyMouseLeft, true
	case pressed&tcell.ButtonSecondary != 0:
		return driver.KeyMouseRight, true
	default:
		return driver.KeyMouseMiddle, true
	}
}
