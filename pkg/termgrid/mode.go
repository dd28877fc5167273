package termgrid

import (
	"fmt"

	"termgrid/pkg/driver"
)

// InputMode selects how the driver interprets a lone escape byte. The mouse
// flag is orthogonal to it and managed separately (SetMouseEnabled), so
// switching between Esc and Alt never changes mouse reporting.
type InputMode int

const (
	// InputEsc reports a bare ESC byte as the Esc key.
	InputEsc InputMode = iota
	// InputAlt treats a bare ESC byte as the alt modifier for the next key.
	InputAlt
)

// String returns the string representation of InputMode.
func (m InputMode) String() string {
	switch m {
	case InputEsc:
		return "esc"
	case InputAlt:
		return "alt"
	}
	return "unknown"
}

func (m InputMode) raw() int {
	if m == InputAlt {
		return driver.InputAlt
	}
	return driver.InputEsc
}

// inputModeFromRaw decodes a driver-reported mode code. Orthogonal flag bits
// such as mouse reporting are masked off before matching.
func inputModeFromRaw(raw int) (InputMode, error) {
	switch raw & driver.InputModeMask {
	case driver.InputEsc:
		return InputEsc, nil
	case driver.InputAlt:
		return InputAlt, nil
	}
	return 0, fmt.Errorf("%w: code %d", ErrUnknownInputMode, raw)
}

// OutputMode selects how cell attribute codes are interpreted by the driver.
type OutputMode int

const (
	// OutputNormal interprets attributes as 8 colors plus style bits.
	OutputNormal OutputMode = iota
	// Output256 interprets attributes as indices into a 256-entry palette.
	Output256
	// Output216 addresses only the 216-color cube of the palette.
	Output216
	// OutputGrayscale addresses only the 24 gray entries of the palette.
	OutputGrayscale
)

// String returns the string representation of OutputMode.
func (m OutputMode) String() string {
	switch m {
	case OutputNormal:
		return "normal"
	case Output256:
		return "256"
	case Output216:
		return "216"
	case OutputGrayscale:
		return "grayscale"
	}
	return "unknown"
}

func (m OutputMode) raw() int {
	switch m {
	case Output256:
		return driver.Output256
	case Output216:
		return driver.Output216
	case OutputGrayscale:
		return driver.OutputGrayscale
	default:
		return driver.OutputNormal
	}
}

func outputModeFromRaw(raw int) (OutputMode, error) {
	switch raw {
	case driver.OutputNormal:
		return OutputNormal, nil
	case driver.Output256:
		return Output256, nil
	case driver.Output216:
		return Output216, nil
	case driver.OutputGrayscale:
		return OutputGrayscale, nil
	}
	return 0, fmt.Errorf("%w: code %d", ErrUnknownOutputMode, raw)
}
