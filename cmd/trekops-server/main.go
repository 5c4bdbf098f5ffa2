package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alexanderramin/trekops/internal/config"
	"github.com/alexanderramin/trekops/internal/server"
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

	kv, err := server.OpenKV(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer kv.Close()

	srv := server.NewServer(kv, logger)
	logger.Info("listening", "addr", cfg.ListenAddr, "db", cfg.DBPath)
	return http.ListenAndServe(cfg.ListenAddr, srv.Routes())
}
