// cmd_caps.go - Caps Command
// Hauptfunktionen: CapsHandler
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ollama/termline/readline"
	"github.com/ollama/termline/terminfo"
)

// CapsHandler - Listet die aufgeloesten Capabilities fuer TERM oder das Argument
func CapsHandler(cmd *cobra.Command, args []string) error {
	var caps *terminfo.Store
	if len(args) > 0 {
		var err error
		if caps, err = terminfo.LoadTerm(args[0]); err != nil {
			return err
		}
	} else {
		// dieselbe Tabelle, die auch read verwendet
		i, err := readline.New(readline.Prompt{})
		if err != nil {
			return err
		}
		caps = i.Capabilities()
	}

	w := cmd.OutOrStdout()
	source := caps.Path()
	if source == "" {
		source = "built-in"
	}
	fmt.Fprintf(w, "%s (%s, %s)\n\n", caps.Name(), source, caps.Status())

	renderCaps(w, caps)
	return nil
}

// renderCaps - Tabelle mit Name, Sequenz und Laenge je Capability
func renderCaps(w io.Writer, caps *terminfo.Store) {
	var data [][]string

	for _, id := range terminfo.Inputs() {
		seq, _ := caps.Input(id)
		data = append(data, []string{id.String(), "input", terminfo.Printable(seq), length(seq)})
	}
	for _, id := range terminfo.Outputs() {
		seq, _ := caps.Output(id)
		data = append(data, []string{id.String(), "output", terminfo.Printable(seq), length(seq)})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "KIND", "SEQUENCE", "BYTES"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func length(seq []byte) string {
	if seq == nil {
		return "-"
	}
	return strconv.Itoa(len(seq))
}
