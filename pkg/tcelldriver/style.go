package tcelldriver

import (
	"github.com/gdamore/tcell/v2"

	"termgrid/pkg/driver"
)

const styleBits = driver.AttrBold | driver.AttrUnderline | driver.AttrReverse

// Normal-mode color codes 1-8 in driver order.
var normalColors = []tcell.Color{
	tcell.ColorBlack,
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorSilver,
}

// style converts a cell's attribute pair to a tcell style under the active
// output mode. Style bits are honored in every mode; the color part of the
// value is interpreted per mode.
func (d *Driver) style(fg, bg uint16) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(d.color(fg)).
		Background(d.color(bg))

	if fg&driver.AttrBold != 0 {
		st = st.Bold(true)
	}
	if fg&driver.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if (fg|bg)&driver.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func (d *Driver) color(attr uint16) tcell.Color {
	code := int(attr &^ styleBits)
	switch d.outputMode {
	case driver.Output256:
		return tcell.PaletteColor(code & 0xff)
	case driver.Output216:
		return tcell.PaletteColor(code%216 + 16)
	case driver.OutputGrayscale:
		return tcell.PaletteColor(code%24 + 232)
	default:
		if code == int(driver.AttrDefault) || code > int(driver.AttrWhite) {
			return tcell.ColorDefault
		}
		return normalColors[code-1]
	}
}
