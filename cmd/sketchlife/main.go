package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sketchlife/internal/app"
	"sketchlife/internal/session"
	"sketchlife/internal/term"

	"github.com/pkg/errors"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	err = run(cfg)
	if errors.Is(err, app.ErrNoWindow) {
		fmt.Fprintln(os.Stderr, "The window frontend of sketchlife requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/sketchlife` or use -frontend terminal.")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	if cfg.Frontend != app.FrontendTerminal {
		return app.Run(cfg)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	frame := time.Second / time.Duration(cfg.TPS)
	return term.Run(ctx, session.New(cfg.SessionOptions()), frame)
}
