package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/stepview/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.New(os.Stderr, cli.LogInfo).RootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		// Interrupted playback and solves exit like any SIGINT'd program.
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		cli.PrintError(err)
		os.Exit(1)
	}
}
