// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ollama/termline/envconfig"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "termline",
		Short:         "Minimal terminal line editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	readCmd := newReadCmd()
	keysCmd := newKeysCmd()
	capsCmd := newCapsCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	terminal := []envconfig.EnvVar{
		envVars["TERM"],
		envVars["TERMINFO"],
		envVars["TERMINFO_DIRS"],
		envVars["TERMLINE_NOFASTLOAD"],
		envVars["TERMLINE_DEBUG"],
	}

	for _, cmd := range []*cobra.Command{readCmd, keysCmd, capsCmd} {
		switch cmd {
		case readCmd:
			appendEnvDocs(cmd, append(terminal, envVars["TERMLINE_PROMPT"], envVars["TERMLINE_MASK"]))
		default:
			appendEnvDocs(cmd, terminal)
		}
	}

	rootCmd.AddCommand(
		readCmd,
		keysCmd,
		capsCmd,
	)

	return rootCmd
}
