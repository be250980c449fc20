package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/deromanizer/internal/cmd/deromanizer"
	"github.com/dmitrymomot/deromanizer/pkg/config"
)

func main() {
	// The .env file is optional; variables already set win.
	_ = config.LoadEnv()

	cfg, err := deromanizer.ParseConfig(flag.CommandLine, os.Args[1:], deromanizer.EnvMap(os.Environ()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := deromanizer.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
