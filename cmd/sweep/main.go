package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	configPath string
	difficulty string
)

func init() {
	const (
		defaultConfigPath = "minesweeper.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.StringVar(&difficulty, "d", "", "difficulty, overrides the config file")
}

func flagPassed(names ...string) (passed bool) {
	flag.Visit(func(f *flag.Flag) {
		for _, name := range names {
			passed = passed || f.Name == name
		}
	})
	return
}

func readLines(ctx context.Context, r io.Reader, lines chan<- string) error {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath, flagPassed("config", "c"))
	if err != nil {
		log.Fatal(err)
	}
	if difficulty != "" {
		cfg.Difficulty = difficulty
	}
	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal(err)
	}
	// the board is printed to stdout, keep the log out of its way
	log.SetOutput(os.Stderr)
	mines.Log = log

	log.WithFields(cfg.Fields()).Debug("config")

	d, err := cfg.ParseDifficulty()
	if err != nil {
		log.Fatal(err)
	}
	g := game.New(log, d, cfg.Rand())

	lines := make(chan string)
	grp, ctx := errgroup.WithContext(context.Background())
	grp.Go(func() error {
		return readLines(ctx, os.Stdin, lines)
	})
	grp.Go(func() error {
		return play(ctx, g, lines, os.Stdout)
	})

	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "exit reason:", err)
		os.Exit(1)
	}
}
