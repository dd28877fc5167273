package termgrid

import "termgrid/pkg/driver"

// Attribute determines the appearance of a cell. Each cell carries a
// foreground and a background attribute. The named constants below are valid
// for OutputNormal; in the other output modes the numeric value is a palette
// index instead.
type Attribute = uint16

const (
	Default Attribute = driver.AttrDefault
	Black   Attribute = driver.AttrBlack
	Red     Attribute = driver.AttrRed
	Green   Attribute = driver.AttrGreen
	Yellow  Attribute = driver.AttrYellow
	Blue    Attribute = driver.AttrBlue
	Magenta Attribute = driver.AttrMagenta
	Cyan    Attribute = driver.AttrCyan
	White   Attribute = driver.AttrWhite
)

// Style bits, OR'd on top of a color value.
const (
	// Bold selects the lighter variant of the color on most terminals.
	Bold      Attribute = driver.AttrBold
	Underline Attribute = driver.AttrUnderline
	Reverse   Attribute = driver.AttrReverse
)

// Cell is a single character-grid position.
type Cell = driver.Cell
