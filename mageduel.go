package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lpbeast/mageduel/combat"
	"github.com/lpbeast/mageduel/console"
	"github.com/lpbeast/mageduel/mages"
)

const (
	playerLevel = 3
	botLevel    = 2
)

func run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "mageduel: ", 0)
	printer := console.NewPrinter(out, cfg.Color)

	if cfg.ProfileMode != "" {
		p, err := startProfile(cfg.ProfileMode, cfg.ProfileDir)
		if err != nil {
			return err
		}
		defer p.Stop()
		logger.Printf("%s profile will be written to %s", cfg.ProfileMode, cfg.ProfileDir)
	}

	el, err := console.NewMenu(in, printer).Choose()
	if err != nil {
		return err
	}

	player := mages.New("player", el, playerLevel)
	bot := mages.New("bot", mages.Fire, botLevel)

	narrate := printer.Observer(console.Narration)
	for _, m := range []*mages.Mage{player, bot} {
		m.OnAttack(narrate)
		m.OnDefend(narrate)
	}

	res, err := combat.NewDuel(player, bot, cfg.TurnDelay).Run(ctx)
	if err != nil {
		return fmt.Errorf("duel: %w", err)
	}
	printer.Printf(console.Victory, "%s wins the battle!", res.Winner.GetName())
	return nil
}

func main() {
	loadEnvFile(log.New(os.Stderr, "mageduel: ", 0), ".env")

	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		exitf("Error: %v", err)
	}
}
