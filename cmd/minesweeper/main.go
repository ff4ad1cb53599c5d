package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const (
		defaultConfigPath = "minesweeper.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

func configPassed() (passed bool) {
	flag.Visit(func(f *flag.Flag) {
		passed = passed || f.Name == "config" || f.Name == "c"
	})
	return
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath, configPassed())
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal(err)
	}
	mines.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	d, err := cfg.ParseDifficulty()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	rnd := cfg.Rand()
	u := newUI(game.New(log, d, rnd), rnd, cfg.Scale)
	if err := ebiten.RunGame(u); err != nil {
		log.Fatal(err)
	}
}
