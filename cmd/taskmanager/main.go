package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tiwariParth/go-task-manager/internal/cli"
	"github.com/tiwariParth/go-task-manager/internal/config"
	"github.com/tiwariParth/go-task-manager/internal/logging"
	"github.com/tiwariParth/go-task-manager/internal/task"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	debug := flag.Bool("debug", false, "log debug diagnostics to stderr")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyFlags(*debug, *noColor)

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := task.NewTaskStore(logger)
	app := cli.NewCLI(store, os.Stdin, os.Stdout, cli.Options{
		Logger:    logger,
		ColorMode: cfg.Color,
	})

	if err := app.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
