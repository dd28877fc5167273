package cmd

import (
	"github.com/spf13/cobra"

	"termgrid/pkg/termgrid"
)

// helloCmd represents the hello command
var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Display a hello-world message until Esc is pressed",
	Run:   runHello,
}

func runHello(cmd *cobra.Command, args []string) {
	session, err := openSession()
	if err != nil {
		fatal(err)
	}
	defer session.Close()

	session.SetClearAttributes(termgrid.Default, termgrid.Default)
	session.Clear()
	session.SetString(0, 0, "Hello, world!", termgrid.Default, termgrid.Default)
	session.SetString(0, 1, "Press Esc to continue", termgrid.Default, termgrid.Default)
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
