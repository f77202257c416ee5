package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/profile"
)

// Config only covers presentation and diagnostics. The duel rules are fixed.
type Config struct {
	TurnDelay   time.Duration `env:"MAGEDUEL_TURN_DELAY" envDefault:"2s"`
	Color       bool          `env:"MAGEDUEL_COLOR"      envDefault:"true"`
	ProfileMode string        `env:"MAGEDUEL_PROFILE"`
	ProfileDir  string        `env:"MAGEDUEL_PROFILE_DIR" envDefault:"./prof"`
}

var profileModes = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfile,
	"block": profile.BlockProfile,
	"mutex": profile.MutexProfile,
}

// loadEnvFile pulls a .env file into the environment. Variables that are
// already set win, and a missing file is not an error worth stopping for.
func loadEnvFile(logger *log.Logger, path string) {
	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Printf("Warning: could not load %s: %v", path, err)
		}
		return
	}
	logger.Printf("loaded %s", path)
}

// ParseConfig reads the environment first and lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.DurationVar(&cfg.TurnDelay, "delay", cfg.TurnDelay, "pause between turns")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "color the battle narration")
	fs.StringVar(&cfg.ProfileMode, "profile.mode", cfg.ProfileMode, "enable profiling mode, one of [cpu, mem, block, mutex]")
	fs.StringVar(&cfg.ProfileDir, "profile.dir", cfg.ProfileDir, "where profiles are written")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TurnDelay < 0 {
		return Config{}, fmt.Errorf("turn delay must not be negative, got %v", cfg.TurnDelay)
	}
	if _, ok := profileModes[cfg.ProfileMode]; cfg.ProfileMode != "" && !ok {
		return Config{}, fmt.Errorf("unknown profile mode %q", cfg.ProfileMode)
	}
	return cfg, nil
}

type stopper interface {
	Stop()
}

func startProfile(mode, dir string) (stopper, error) {
	kind, ok := profileModes[mode]
	if !ok {
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(kind, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet), nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
