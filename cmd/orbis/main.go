// Package main is the entry point for the orbis spherical resampling tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/orbis/cmd/orbis/commands"
	"go.trai.ch/orbis/internal/app"
	_ "go.trai.ch/orbis/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// The logger is not available when initialization fails.
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return 1
	}
	defer components.Telemetry.Close() //nolint:errcheck // process is exiting

	cli := commands.New(components)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
