package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"calcpad/internal/app"
	"calcpad/internal/protocol/arith"
	"calcpad/internal/server"
	"calcpad/internal/services/keypad"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	eval := arith.Evaluator{}
	srv := server.New(cfg, eval, keypad.New(eval, logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("calcd stopped", "err", err)
		os.Exit(1)
	}
}
