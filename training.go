package main

import (
	"fmt"
	"log"

	"snake-grid/game"
	"snake-grid/game/types"
)

// TrainingStats summarizes a training run
type TrainingStats struct {
	Episodes     int
	BestScore    int
	AverageScore float64
}

func (s TrainingStats) String() string {
	return fmt.Sprintf("%d episodes, best %d, average %.1f", s.Episodes, s.BestScore, s.AverageScore)
}

// Train plays episodes headless against a private engine, without the
// controller or a timer, and leaves the learned table in the agent.
func (sa *SnakeAgent) Train(cfg game.Config, episodes int) (TrainingStats, error) {
	engine, err := game.NewEngine(cfg)
	if err != nil {
		return TrainingStats{}, fmt.Errorf("training engine: %w", err)
	}

	// a snake that circles without eating is cut off after this many steps
	stallLimit := cfg.Rows * cfg.Cols * 2

	stats := TrainingStats{}
	totalScore := 0
	for episode := 0; episode < episodes; episode++ {
		if err := engine.Reset(); err != nil {
			return stats, err
		}

		sinceFruit := 0
		for {
			before := observeEngine(engine)
			state := before.stateKey()
			action := sa.agent.GetAction(state)
			engine.RequestDirection(relativeActionToAbsolute(before.dir, action))

			outcome := engine.Step()
			sinceFruit++
			if outcome == types.Grew {
				sinceFruit = 0
			}
			done := outcome.Terminal() || engine.Full() || sinceFruit > stallLimit

			after := observeEngine(engine)
			sa.agent.Update(state, action, calculateReward(before, after, outcome), after.stateKey(), done)
			if done {
				break
			}
		}

		score := engine.Score()
		totalScore += score
		if score > stats.BestScore {
			stats.BestScore = score
		}
		stats.Episodes++
		sa.agent.IncrementEpisode()

		if (episode+1)%500 == 0 {
			log.Printf("training: episode %d, best %d, epsilon %.3f", episode+1, stats.BestScore, sa.agent.Epsilon)
		}
	}
	if stats.Episodes > 0 {
		stats.AverageScore = float64(totalScore) / float64(stats.Episodes)
	}
	return stats, nil
}
