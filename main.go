package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ollama/termline/cmd"
	"github.com/ollama/termline/envconfig"
	"github.com/ollama/termline/logutil"
)

func main() {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
