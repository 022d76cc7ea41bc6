// cmd_read.go - Read Command
// Hauptfunktionen: ReadHandler
package cmd

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ollama/termline/envconfig"
	"github.com/ollama/termline/readline"
)

// ReadHandler - Liest eine Zeile und gibt sie auf stdout aus
func ReadHandler(cmd *cobra.Command, args []string) error {
	prompt, err := cmd.Flags().GetString("prompt")
	if err != nil {
		return err
	}

	echoFlag, err := cmd.Flags().GetString("echo")
	if err != nil {
		return err
	}

	echo, err := parseEcho(echoFlag)
	if err != nil {
		return err
	}

	maskFlag, err := cmd.Flags().GetString("mask")
	if err != nil {
		return err
	}

	mask, err := parseMask(cmp.Or(maskFlag, envconfig.Mask()))
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeInput()

	line, err := readline.EditLine(int(in.Fd()), readline.Prompt{
		Prompt: cmp.Or(prompt, envconfig.Prompt(), defaultPrompt),
		Echo:   echo,
		Mask:   mask,
	})
	switch {
	case errors.Is(err, readline.ErrEmpty):
		return errors.New("no input")
	case err != nil:
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
