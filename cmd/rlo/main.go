// Package main is the entry point for the rlo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/rlo/cmd/rlo/commands"
	"go.trai.ch/rlo/internal/adapters/logger"
)

func main() {
	if err := run(); err != nil {
		logger.New().Error(err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli := commands.New()
	return cli.Execute(ctx)
}
