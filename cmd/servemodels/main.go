package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"modelkit/internal/cli"
)

func main() {
	// Graceful shutdown (Ctrl+C / SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cli.NewServeCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "servemodels:", err)
		stop()
		os.Exit(1)
	}
}
