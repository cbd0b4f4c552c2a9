package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"link-refresh-go/pkg/cli"
	"link-refresh-go/pkg/cli/logger"
	"link-refresh-go/pkg/config"
)

func main() {
	var (
		plainMode  = flag.Bool("plain", false, "Run locally and print the log when done (no TUI)")
		remoteMode = flag.Bool("remote", false, "Trigger a run on the API server at cli.base_url")

		// Config commands
		configShow = flag.Bool("config-show", false, "Show current configuration")
		configSet  = flag.String("config-set", "", "Set a config value (format: section.key=value)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app := cli.NewApp(cfg)

	if *configShow {
		app.ShowConfig()
		return
	}
	if *configSet != "" {
		if err := app.SetConfig(*configSet); err != nil {
			log.Fatalf("failed to set config: %v", err)
		}
		fmt.Println("Configuration updated successfully")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case *remoteMode:
		err = app.RunRemote(ctx)
	case *plainMode:
		err = app.RunPlain(ctx)
	default:
		logger.Open("tmp")
		defer logger.CloseLog()
		err = app.Run()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		// os.Exit skips deferred calls.
		logger.CloseLog()
		stop()
		os.Exit(1)
	}
}
