package main

import (
	"context"
	"fmt"
	"migros-delivery/internal/app"
	"migros-delivery/internal/config"
	"migros-delivery/internal/platform/logging"
	"migros-delivery/internal/render/window"
	"os"
)

// main reads the point file, prints the nearest-neighbor tour and renders it.
//
//	migros [-out route.png] [-window] [-scale 500] [-size 600] [input-file]
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load("migros", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.NewConsole(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := log.WithContext(context.Background())
	if err := app.Run(ctx, cfg, os.Stdout, window.Show); err != nil {
		log.Fatal().Err(err).Str("input", cfg.InputPath).Msg("migros failed")
	}
}
