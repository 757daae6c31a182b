package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kilometers.ai/mcpspaces/internal/interfaces/cli"
	"kilometers.ai/mcpspaces/internal/interfaces/di"
)

func main() {
	container, err := di.NewContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := container.HealthCheck(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli.Execute(ctx, container.GetCLIContainer())
}
