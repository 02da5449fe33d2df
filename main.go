package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"soulcaster/internal/config"
	"soulcaster/internal/game"

	"github.com/gdamore/tcell/v2"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file (defaults to $SOULCASTER_TUNING)")
	logPath := flag.String("log", "", "Write structured logs to this file")
	flag.Parse()

	if err := run(*tuningPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(tuningPath, logPath string) error {
	var envCfg config.Env
	if err := config.ParseEnv(&envCfg); err != nil {
		return err
	}
	tuning, err := config.Resolve(tuningPath, envCfg)
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}

	// The screen owns stdout, so logs only go to a file.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: tuning.Level()}))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.New(screen, tuning, logger)
	if err != nil {
		return err
	}
	return g.Run()
}
