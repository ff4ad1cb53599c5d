package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/maphash"
	"io/fs"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	minScale = 1
	maxScale = 4
)

type LogConfig struct {
	File       string `json:"file"`
	MaxSize    int    `json:"max_size"` // megabytes
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"` // days
}

type Config struct {
	Mode       string    `json:"mode"`
	Difficulty string    `json:"difficulty"`
	Scale      float64   `json:"scale"`
	Seed       *uint64   `json:"seed,omitempty"`
	Log        LogConfig `json:"log"`
}

func Default() Config {
	return Config{
		Mode:       "production",
		Difficulty: mines.Difficulty{Preset: mines.Easy}.String(),
		Scale:      2,
		Log: LogConfig{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	seed := "random"
	if c.Seed != nil {
		seed = fmt.Sprint(*c.Seed)
	}
	return map[string]any{
		"mode":            c.Mode,
		"development":     c.Development(),
		"difficulty":      c.Difficulty,
		"scale":           c.Scale,
		"seed":            seed,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}

// Development is true unless mode is "production". A DEVELOPMENT env
// variable other than "0" overrides the mode.
func (c Config) Development() bool {
	if development, ok := os.LookupEnv("DEVELOPMENT"); ok {
		return development != "0"
	}
	return c.Mode != "production"
}

func (c Config) Production() bool {
	return !c.Development()
}

func (c Config) ParseDifficulty() (mines.Difficulty, error) {
	return mines.ParseDifficulty(c.Difficulty)
}

// Rand returns a generator seeded from Seed, or randomly if unset.
func (c Config) Rand() *rand.Rand {
	if c.Seed != nil {
		return rand.New(rand.NewPCG(*c.Seed, *c.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// Load reads the config at path over the defaults. A missing file is only an
// error when the path was given explicitly.
func Load(path string, explicit bool) (Config, error) {
	config := Default()
	if err := ReadConfig(path, &config); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return config, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if _, err := config.ParseDifficulty(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	config.Scale = max(minScale, min(config.Scale, maxScale))
	return config, nil
}
