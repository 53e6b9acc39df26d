// Command server runs the dictionary connector: a small HTTP API that looks
// words up in the Free Dictionary API and returns a short summary.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml, optional)
// and environment variables. The process stops gracefully on SIGINT or
// SIGTERM.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/dictionary-connector/internal/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
