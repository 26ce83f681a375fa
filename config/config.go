// Package config supplies the settings read once at startup: board size,
// game speed and which frontend to run.
package config

import (
	"flag"
	"fmt"
	"time"

	"snake-grid/game/types"
)

const (
	// BaseInterval is the tick period at speed 0; each speed point takes a
	// millisecond off it.
	BaseInterval = 150 * time.Millisecond
	MinInterval  = 20 * time.Millisecond

	DefaultInitialDelay = time.Second
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Settings struct {
	Rows         int
	Cols         int
	Speed        int
	InitialDelay time.Duration
	Seed         uint64
	Frontend     string
	Autopilot    bool
	Train        int
	Sound        bool
	Debug        bool
}

func Default() Settings {
	return Settings{
		Rows:         types.DefaultRows,
		Cols:         types.DefaultCols,
		InitialDelay: DefaultInitialDelay,
		Frontend:     FrontendTerminal,
		Sound:        true,
	}
}

// Interval is the tick period for the configured speed
func (s Settings) Interval() time.Duration {
	d := BaseInterval - time.Duration(s.Speed)*time.Millisecond
	if d < MinInterval {
		return MinInterval
	}
	return d
}

func (s Settings) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("board %dx%d: %w", s.Rows, s.Cols, types.ErrInvalidConfiguration)
	}
	if s.Speed < 0 {
		return fmt.Errorf("speed %d: %w", s.Speed, types.ErrInvalidConfiguration)
	}
	if s.InitialDelay < 0 {
		return fmt.Errorf("initial delay %v: %w", s.InitialDelay, types.ErrInvalidConfiguration)
	}
	if s.Train < 0 {
		return fmt.Errorf("training episodes %d: %w", s.Train, types.ErrInvalidConfiguration)
	}
	switch s.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("frontend %q: %w", s.Frontend, types.ErrInvalidConfiguration)
	}
	return nil
}

// FromFlags parses args into settings starting from Default
func FromFlags(fs *flag.FlagSet, args []string) (Settings, error) {
	s := Default()
	fs.IntVar(&s.Rows, "rows", s.Rows, "Board rows")
	fs.IntVar(&s.Cols, "cols", s.Cols, "Board columns")
	fs.IntVar(&s.Speed, "speed", s.Speed, "Game speed, each point takes 1ms off the 150ms tick")
	fs.DurationVar(&s.InitialDelay, "delay", s.InitialDelay, "Delay before the first tick after starting")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "Fruit placement seed (0 picks one from the clock)")
	fs.StringVar(&s.Frontend, "ui", s.Frontend, "Frontend: window or terminal")
	fs.BoolVar(&s.Autopilot, "autopilot", s.Autopilot, "Let the Q-learning agent steer")
	fs.IntVar(&s.Train, "train", s.Train, "Episodes to train the autopilot before playing")
	fs.BoolVar(&s.Sound, "sound", s.Sound, "Play sound effects")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "Write a debug log under logs/")

	if err := fs.Parse(args); err != nil {
		return s, err
	}
	if s.Seed == 0 {
		s.Seed = uint64(time.Now().UnixNano())
	}
	return s, s.Validate()
}
