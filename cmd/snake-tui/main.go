package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-kit/log/level"

	"snakebot/internal/app"
	"snakebot/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log-file", "snake-tui.log", "log destination while the terminal is in use")
	flag.Parse()

	f, err := os.OpenFile(*logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger := app.NewLogger(f, cfg.LogLevel)

	session, err := cfg.NewSession(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		level.Error(session.Logger).Log("msg", "terminal loop failed", "err", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
