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
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cli.NewBundleCommand(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "bundlemodel:", err)
		stop()
		os.Exit(1)
	}
}
