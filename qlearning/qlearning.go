package qlearning

import (
	"math"

	"golang.org/x/exp/rand"
)

// QTable stores the Q values for each state-action pair
type QTable map[string][]float64

// Agent is a tabular Q-learning agent with epsilon-greedy exploration
type Agent struct {
	QTable          QTable
	LearningRate    float64
	Discount        float64
	Epsilon         float64
	InitialEpsilon  float64
	MinEpsilon      float64
	EpsilonDecay    float64
	TrainingEpisode int
	NumActions      int

	rng *rand.Rand
}

func NewAgent(learningRate, discount float64, numActions int, seed uint64) *Agent {
	return &Agent{
		QTable:         make(QTable),
		LearningRate:   learningRate,
		Discount:       discount,
		Epsilon:        0.9,
		InitialEpsilon: 0.9,
		MinEpsilon:     0.01,
		EpsilonDecay:   0.995,
		NumActions:     numActions,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// GetAction picks a random action with probability epsilon, else the best one
func (a *Agent) GetAction(state string) int {
	if a.rng.Float64() < a.Epsilon {
		return a.rng.Intn(a.NumActions)
	}
	return a.BestAction(state)
}

// BestAction returns the action with the highest Q value; ties go to the
// lowest index.
func (a *Agent) BestAction(state string) int {
	values, ok := a.QTable[state]
	if !ok {
		return 0
	}
	best := 0
	maxQ := math.Inf(-1)
	for action, q := range values {
		if q > maxQ {
			maxQ = q
			best = action
		}
	}
	return best
}

// Update applies Q(s,a) += alpha * (r + gamma * max Q(s',.) - Q(s,a)).
// Terminal transitions do not bootstrap from nextState.
func (a *Agent) Update(state string, action int, reward float64, nextState string, terminal bool) {
	values := a.values(state)
	target := reward
	if !terminal {
		target += a.Discount * a.maxQValue(nextState)
	}
	values[action] += a.LearningRate * (target - values[action])
}

// IncrementEpisode advances the episode count and decays epsilon
func (a *Agent) IncrementEpisode() {
	a.TrainingEpisode++
	a.Epsilon = a.InitialEpsilon * math.Pow(a.EpsilonDecay, float64(a.TrainingEpisode))
	if a.Epsilon < a.MinEpsilon {
		a.Epsilon = a.MinEpsilon
	}
}

// Greedy turns exploration off for play
func (a *Agent) Greedy() {
	a.Epsilon = 0
}

func (a *Agent) values(state string) []float64 {
	v, ok := a.QTable[state]
	if !ok {
		v = make([]float64, a.NumActions)
		a.QTable[state] = v
	}
	return v
}

func (a *Agent) maxQValue(state string) float64 {
	values, ok := a.QTable[state]
	if !ok {
		return 0
	}
	maxQ := math.Inf(-1)
	for _, q := range values {
		if q > maxQ {
			maxQ = q
		}
	}
	return maxQ
}
