package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/avannier/tilecalc/cmd/tilecalc/commands"
)

func main() {
	os.Exit(run())
}

// run exists so deferred signal teardown executes before the process exits.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return commands.Execute(ctx)
}
