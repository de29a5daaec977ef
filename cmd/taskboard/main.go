package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tiwariParth/go-task-manager/internal/board"
	"github.com/tiwariParth/go-task-manager/internal/config"
	"github.com/tiwariParth/go-task-manager/internal/logging"
	"github.com/tiwariParth/go-task-manager/internal/ui"
)

const logFile = "taskboard.log"

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	debug := flag.Bool("debug", false, "write debug diagnostics to "+logFile)
	noColor := flag.Bool("no-color", false, "disable colours")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyFlags(*debug, *noColor)

	switch cfg.Color {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	// The screen owns the terminal, so diagnostics go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *debug {
		f, err := tea.LogToFile(logFile, logging.Prefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := logging.New(logOut, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := ui.New(board.New(), ui.Options{
		Logger:        logger,
		ShowCompleted: cfg.ShowCompleted,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
