package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/trekops/internal/cli"
	"github.com/alexanderramin/trekops/internal/config"
	"github.com/alexanderramin/trekops/internal/remote"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	var opts []remote.Option
	if cfg.Token != "" {
		opts = append(opts, remote.WithToken(cfg.Token))
	}

	root := cli.NewRootCmd(cli.Deps{
		Client: remote.NewClient(cfg.Backend, opts...),
		Logger: logger,
		Window: cfg.DebounceWindow,
	})
	return root.Execute()
}
