package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"termgrid/pkg/termgrid"
)

var (
	eventsMouse   bool
	eventsAltMode bool
	eventsTimeout int
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show decoded input events until Esc is pressed",
	Run:   runEvents,
}

func init() {
	eventsCmd.Flags().BoolVarP(&eventsMouse, "mouse", "m", false, "enable mouse reporting")
	eventsCmd.Flags().BoolVar(&eventsAltMode, "alt", false, "treat a lone Esc byte as the alt modifier")
	eventsCmd.Flags().IntVarP(&eventsTimeout, "timeout", "t", 250, "peek timeout in milliseconds")
}

func runEvents(cmd *cobra.Command, args []string) {
	session, err := openSession()
	if err != nil {
		fatal(err)
	}
	defer session.Close()

	if eventsAltMode {
		session.SetInputMode(termgrid.InputAlt)
	}
	session.SetMouseEnabled(eventsMouse)

	var lines []string
	waits := 0
	for {
		session.Clear()
		session.SetString(0, 0, "Event inspector - press Esc to exit", termgrid.White|termgrid.Bold, termgrid.Default)
		session.SetString(0, 1, fmt.Sprintf("mouse=%v waits=%d", session.IsMouseEnabled(), waits), termgrid.Cyan, termgrid.Default)

		height := session.Height()
		visible := lines
		if max := height - 3; max > 0 && len(visible) > max {
			visible = visible[len(visible)-max:]
		}
		for i, line := range visible {
			session.SetString(0, 3+i, line, termgrid.Default, termgrid.Default)
		}
		session.Present()

		event, err := session.PeekEvent(time.Duration(eventsTimeout) * time.Millisecond)
		if err != nil {
			fatal(err)
		}
		if event == nil {
			waits++
			continue
		}

		switch event := event.(type) {
		case termgrid.KeyEvent:
			if event.Key == termgrid.KeyEsc {
				return
			}
			lines = append(lines, fmt.Sprintf("key  code=%#04x ch=%q alt=%v", event.Key, event.Ch, event.Alt))
		case termgrid.ResizeEvent:
			lines = append(lines, fmt.Sprintf("size %dx%d", event.Width, event.Height))
		case termgrid.MouseEvent:
			lines = append(lines, fmt.Sprintf("mouse %s at (%d, %d)", event.Button, event.X, event.Y))
		}
	}
}
