package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/illumination-k/secretenv/pkg/commands"
	"github.com/illumination-k/secretenv/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := commands.NewRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		ui.Error("Error: %v", err)
		os.Exit(1)
	}
}
