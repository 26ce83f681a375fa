package manager

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// RoundRecord is the result of one finished round
type RoundRecord struct {
	ID        string
	Score     int
	StartTime time.Time
	EndTime   time.Time
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// ScoreManager keeps the results of the current session in memory
type ScoreManager struct {
	mu        sync.RWMutex
	rounds    []RoundRecord
	highScore int
}

func NewScoreManager() *ScoreManager {
	return &ScoreManager{rounds: make([]RoundRecord, 0)}
}

func (sm *ScoreManager) Record(score int, start, end time.Time) RoundRecord {
	rec := RoundRecord{
		ID:        uuid.New().String(),
		Score:     score,
		StartTime: start,
		EndTime:   end,
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.rounds = append(sm.rounds, rec)
	if score > sm.highScore {
		sm.highScore = score
	}
	return rec
}

func (sm *ScoreManager) HighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

func (sm *ScoreManager) RoundsPlayed() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.rounds)
}

func (sm *ScoreManager) AverageScore() float64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.rounds))
}

// Last returns the most recent round, if any
func (sm *ScoreManager) Last() (RoundRecord, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if len(sm.rounds) == 0 {
		return RoundRecord{}, false
	}
	return sm.rounds[len(sm.rounds)-1], true
}

// Rounds returns a copy of every recorded round, oldest first
func (sm *ScoreManager) Rounds() []RoundRecord {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	out := make([]RoundRecord, len(sm.rounds))
	copy(out, sm.rounds)
	return out
}
