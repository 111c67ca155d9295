package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"snakebot/internal/app"
	"snakebot/internal/cyclefile"
	"snakebot/pkg/snakebot"
)

const usage = `usage:
  cyclegen generate [flags]   write a cycle file
  cyclegen validate FILE...   check cycle files
  cyclegen version`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	logger := app.NewLogger(os.Stderr, "info")
	var err error
	switch os.Args[1] {
	case "generate":
		err = generate(logger, os.Args[2:])
	case "validate":
		err = validate(logger, os.Args[2:])
	case "version":
		fmt.Println(snakebot.Version())
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		level.Error(logger).Log("cmd", os.Args[1], "err", err)
		os.Exit(1)
	}
}

func generate(logger log.Logger, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	w := fs.Int("w", 20, "grid width")
	h := fs.Int("h", 20, "grid height")
	cell := fs.Int("cell", 20, "pixels per cell, used for the window size")
	windowW := fs.Int("window-w", 0, "window width in pixels (default w*cell)")
	windowH := fs.Int("window-h", 0, "window height in pixels (default h*cell)")
	seed := fs.Int64("seed", snakebot.DefaultSeed, "generator seed (> 0)")
	strategy := fs.String("strategy", "maze", "serpentine, spiral, maze or scrambled")
	out := fs.String("out", "", "output file (stdout when empty)")
	raw := fs.Bool("raw", false, "print only the direction letters of the default maze")
	fs.Parse(args)

	if *raw {
		letters, err := snakebot.GenerateCycle(*w, *h)
		if err != nil {
			return err
		}
		fmt.Println(letters)
		return nil
	}

	if *windowW == 0 {
		*windowW = *w * *cell
	}
	if *windowH == 0 {
		*windowH = *h * *cell
	}
	text, err := snakebot.BuildCycleFile(*w, *h, *windowW, *windowH, *seed, *strategy)
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Print(text)
		return nil
	}
	if err := cyclefile.WriteFile(*out, []byte(text)); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "cycle written", "path", *out, "grid", fmt.Sprintf("%dx%d", *w, *h),
		"strategy", *strategy, "seed", *seed, "cells", humanize.Comma(int64(*w**h)), "size", humanize.Bytes(uint64(len(text))))
	return nil
}

func validate(logger log.Logger, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("validate needs at least one file")
	}
	failed := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err == nil {
			var w, h int
			w, h, err = snakebot.ValidateCycleFile(string(data))
			if err == nil {
				level.Info(logger).Log("msg", "valid", "path", path, "grid", fmt.Sprintf("%dx%d", w, h))
				continue
			}
		}
		failed++
		level.Warn(logger).Log("msg", "invalid", "path", path, "err", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(paths))
	}
	return nil
}
