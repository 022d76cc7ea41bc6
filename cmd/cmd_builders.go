// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newReadCmd, newKeysCmd, newCapsCmd
package cmd

import (
	"github.com/spf13/cobra"
)

// newReadCmd - Erstellt den read Command
func newReadCmd() *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read",
		Short: "Read one line from the terminal and print it",
		Args:  cobra.NoArgs,
		RunE:  ReadHandler,
	}

	readCmd.Flags().String("prompt", "", "Prompt shown before the input (default \"> \")")
	readCmd.Flags().String("echo", "visible", "Echo mode: visible, hidden or masked")
	readCmd.Flags().String("mask", "", "Mask character for --echo masked (default \"*\")")
	readCmd.Flags().Bool("tty", false, "Read from /dev/tty instead of stdin")

	return readCmd
}

// newKeysCmd - Erstellt den keys Command
func newKeysCmd() *cobra.Command {
	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Print decoded key events until enter or end of input",
		Args:  cobra.NoArgs,
		RunE:  KeysHandler,
	}

	keysCmd.Flags().Bool("tty", false, "Read from /dev/tty instead of stdin")

	return keysCmd
}

// newCapsCmd - Erstellt den caps Command
func newCapsCmd() *cobra.Command {
	capsCmd := &cobra.Command{
		Use:   "caps [TERM]",
		Short: "Show the terminal capabilities in use",
		Args:  cobra.MaximumNArgs(1),
		RunE:  CapsHandler,
	}

	return capsCmd
}
