package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"checkout/cmd"
	"checkout/internal/adapters/in/cli"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	gormDB, err := cmd.OpenDatabase(config)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	app := cmd.NewCompositionRoot(config, gormDB, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	redirect, err := app.NewTerminal(os.Stdout).Run(ctx)
	switch {
	case errors.Is(err, cli.ErrAborted):
		fmt.Fprintln(os.Stdout, "Checkout cancelled.")
		os.Exit(1)
	case err != nil:
		log.Fatalf("Checkout failed: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Redirecting to %s\n", redirect)
}
