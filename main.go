package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"snake-grid/audio"
	"snake-grid/config"
	"snake-grid/game"
	"snake-grid/game/types"
	"snake-grid/tui"
	"snake-grid/ui"
)

func main() {
	settings, err := config.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(settings.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(s config.Settings) error {
	cfg := game.Config{
		Rows:        s.Rows,
		Cols:        s.Cols,
		SnakeLength: types.DefaultSnakeLength,
		Heading:     types.Left,
		Seed:        s.Seed,
	}
	engine, err := game.NewEngine(cfg)
	if err != nil {
		return err
	}
	log.Printf("snake: %dx%d board, tick %v, seed %d", s.Rows, s.Cols, s.Interval(), s.Seed)

	var opts []game.Option
	if s.Sound {
		notifier := audio.NewNotifier()
		if err := notifier.Initialize(); err == nil {
			defer notifier.Close()
			opts = append(opts, game.WithListener(notifier))
		}
	}
	c := game.NewController(engine, s.Interval(), s.InitialDelay, opts...)
	defer c.Close()

	if s.Autopilot {
		agent := NewSnakeAgent(s.Seed)
		if s.Train > 0 {
			fmt.Printf("training autopilot for %d episodes...\n", s.Train)
			stats, err := agent.Train(cfg, s.Train)
			if err != nil {
				return err
			}
			log.Printf("training: %v", stats)
		}
		agent.Attach(c)
		if err := c.Start(); err != nil {
			return err
		}
	}

	switch s.Frontend {
	case config.FrontendWindow:
		err = ui.Run(c)
	default:
		err = tui.Run(c)
	}
	if err != nil {
		return err
	}

	printSummary(c)
	return nil
}

func printSummary(c *game.Controller) {
	scores := c.Scores()
	if scores.RoundsPlayed() == 0 {
		return
	}
	fmt.Printf("rounds %d, best %d, average %.1f\n", scores.RoundsPlayed(), scores.HighScore(), scores.AverageScore())
}
