package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/steps/internal/cli"
	"github.com/idilsaglam/steps/internal/config"
)

func main() {
	// Root flags (apply to every subcommand); they override the environment.
	envFile := flag.String("env", ".env", "dotenv file to load before reading the environment")
	dataDir := flag.String("data", "", "data directory (STEPS_DATA_DIR)")
	backend := flag.String("backend", "", "storage backend: file or sqlite (STEPS_BACKEND)")
	theme := flag.String("theme", "", "classic, neon or mono (STEPS_THEME)")
	catalogPath := flag.String("catalog", "", "YAML catalog file (STEPS_CATALOG)")
	flag.Usage = func() {
		cli.PrintHelp(os.Stderr)
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Load()
	if *dataDir != "" {
		cfg.SetDataDir(*dataDir)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, flag.Args(), cli.Options{Config: cfg})
	stop()
	os.Exit(code)
}
