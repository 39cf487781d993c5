package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aider-tools/aider-automation/pkg/cli"
)

const exitCodeInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.New().Run(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			os.Exit(exitCodeInterrupted)
		}
		os.Exit(1)
	}
}
