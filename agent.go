package main

import (
	"log"
	"time"

	"snake-grid/game"
	"snake-grid/game/types"
	"snake-grid/qlearning"
)

const (
	rewardDeath   = -10.0
	rewardFruit   = 10.0
	rewardCloser  = 0.1
	rewardFarther = -0.15

	autopilotRestartDelay = 2 * time.Second
)

// SnakeAgent plays snake with a Q-learning agent, steering only through
// direction requests like a human would.
type SnakeAgent struct {
	agent *qlearning.Agent
}

func NewSnakeAgent(seed uint64) *SnakeAgent {
	return &SnakeAgent{agent: qlearning.NewAgent(0.1, 0.9, numActions, seed)}
}

// calculateReward scores one transition for learning
func calculateReward(before, after observation, outcome types.Outcome) float64 {
	switch {
	case outcome.Terminal():
		return rewardDeath
	case outcome == types.Grew:
		return rewardFruit
	}
	db, da := before.fruitDistance(), after.fruitDistance()
	if db >= 0 && da >= 0 && da < db {
		return rewardCloser
	}
	return rewardFarther
}

// Steer picks the greedy heading for v and requests it from c
func (sa *SnakeAgent) Steer(c *game.Controller, v game.View) {
	if v.State == types.Over {
		return
	}
	o := observeView(v)
	action := sa.agent.BestAction(o.stateKey())
	c.RequestDirection(relativeActionToAbsolute(o.dir, action))
}

// Attach makes the agent drive c: it steers after every tick and starts a
// new round a moment after each game over.
func (sa *SnakeAgent) Attach(c *game.Controller) {
	sa.agent.Greedy()
	c.Subscribe(game.ListenerFuncs{
		Tick: func(v game.View) { sa.Steer(c, v) },
		GameOver: func(r game.Result) {
			log.Printf("autopilot: round over with score %d, restarting in %v", r.Score, autopilotRestartDelay)
			time.AfterFunc(autopilotRestartDelay, func() {
				if err := c.Reset(); err != nil {
					log.Printf("autopilot: reset: %v", err)
					return
				}
				sa.Steer(c, c.Snapshot())
				if err := c.Start(); err != nil {
					log.Printf("autopilot: start: %v", err)
				}
			})
		},
	})
	sa.Steer(c, c.Snapshot())
}
