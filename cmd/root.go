package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"termgrid/pkg/termgrid"
)

var (
	// Root command flags
	verbose bool

	// Root command
	rootCmd = &cobra.Command{
		Use:               "termgrid-demo",
		Short:             "Demos for the termgrid terminal display library",
		Version:           "1.0.0",
		Run:               runRoot,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug output to termgrid-debug.log")

	// Add subcommands
	rootCmd.AddCommand(helloCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(colorsCmd)
}

// runRoot shows help when the root command is called without subcommands
func runRoot(cmd *cobra.Command, args []string) {
	cmd.Help()
}

// debugLogger adapts the stdlib logger to the termgrid Logger interface.
type debugLogger struct {
	*log.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.Printf(format, args...)
}

// openSession opens a session and, in verbose mode, attaches a file-backed
// debug logger (the terminal itself is busy displaying the demo).
func openSession() (*termgrid.Session, error) {
	session, err := termgrid.Open()
	if err != nil {
		return nil, err
	}
	if verbose {
		f, err := os.OpenFile("termgrid-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			session.SetLogger(debugLogger{log.New(f, "", log.LstdFlags)})
		}
	}
	return session, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
