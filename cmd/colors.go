package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"termgrid/pkg/termgrid"
)

var colorsMode string

// colorsCmd represents the colors command
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Render the attribute palette for an output mode",
	Run:   runColors,
}

func init() {
	colorsCmd.Flags().StringVar(&colorsMode, "mode", "normal", "output mode (normal, 256, 216, grayscale)")
}

func outputModeFromFlag(name string) (termgrid.OutputMode, error) {
	switch name {
	case "normal":
		return termgrid.OutputNormal, nil
	case "256":
		return termgrid.Output256, nil
	case "216":
		return termgrid.Output216, nil
	case "grayscale":
		return termgrid.OutputGrayscale, nil
	}
	return 0, fmt.Errorf("unknown output mode %q", name)
}

func runColors(cmd *cobra.Command, args []string) {
	mode, err := outputModeFromFlag(colorsMode)
	if err != nil {
		fatal(err)
	}

	session, err := openSession()
	if err != nil {
		fatal(err)
	}
	defer session.Close()

	session.SetOutputMode(mode)
	session.Clear()

	switch mode {
	case termgrid.OutputNormal:
		drawNormalPalette(session)
	case termgrid.Output256:
		drawPaletteGrid(session, 256)
	case termgrid.Output216:
		drawPaletteGrid(session, 216)
	case termgrid.OutputGrayscale:
		drawPaletteGrid(session, 24)
	}
	session.SetString(0, session.Height()-1, "Press Esc to exit", termgrid.Default, termgrid.Default)
	session.Present()

	for {
		event, err := session.PollEvent()
		if err != nil {
			fatal(err)
		}
		if key, ok := event.(termgrid.KeyEvent); ok && key.Key == termgrid.KeyEsc {
			return
		}
	}
}

func drawNormalPalette(session *termgrid.Session) {
	colors := []struct {
		name string
		attr termgrid.Attribute
	}{
		{"default", termgrid.Default},
		{"black", termgrid.Black},
		{"red", termgrid.Red},
		{"green", termgrid.Green},
		{"yellow", termgrid.Yellow},
		{"blue", termgrid.Blue},
		{"magenta", termgrid.Magenta},
		{"cyan", termgrid.Cyan},
		{"white", termgrid.White},
	}
	for i, c := range colors {
		session.SetString(0, i, fmt.Sprintf("%-8s", c.name), c.attr, termgrid.Default)
		session.SetString(10, i, fmt.Sprintf("%-8s", c.name), c.attr|termgrid.Bold, termgrid.Default)
		session.SetString(20, i, "        ", termgrid.Default, c.attr)
	}
	y := len(colors) + 1
	session.SetString(0, y, "bold", termgrid.White|termgrid.Bold, termgrid.Default)
	session.SetString(10, y, "underline", termgrid.White|termgrid.Underline, termgrid.Default)
	session.SetString(20, y, "reverse", termgrid.White|termgrid.Reverse, termgrid.Default)
}

func drawPaletteGrid(session *termgrid.Session, entries int) {
	const perRow = 16
	for i := 0; i < entries; i++ {
		x := (i % perRow) * 4
		y := i / perRow
		session.SetString(x, y, fmt.Sprintf("%3d", i), termgrid.Default, termgrid.Attribute(i))
	}
}
