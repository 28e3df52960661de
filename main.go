package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/plexus/internal/config"
	"github.com/olivier-w/plexus/internal/ui"
	"github.com/olivier-w/plexus/internal/window"
)

func main() {
	opts, err := config.Parse(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closeLog, err := setupLog(opts.DebugLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	switch opts.Backend {
	case config.BackendWindow:
		err = runWindow(opts)
	default:
		err = runTerminal(opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLog sends the standard logger to path, or discards it so log lines
// never land on the TUI.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "plexus")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { f.Close() }, nil
}

func runTerminal(opts config.Options) error {
	model := ui.New(ui.Options{
		FieldOptions:  opts.FieldOptions(),
		Words:         opts.Words,
		ReducedMotion: opts.ReducedMotion,
		Cursor:        opts.Cursor,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := program.Run()
	return err
}

func runWindow(opts config.Options) error {
	game := window.New(window.Options{
		FieldOptions:  opts.FieldOptions(),
		Words:         opts.Words,
		ReducedMotion: opts.ReducedMotion,
		Cursor:        opts.Cursor,
	})
	return window.Run(game)
}
