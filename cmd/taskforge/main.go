// Command taskforge decomposes issues into dependency-ordered task plans
// with critical path analysis.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okessler/taskforge/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
