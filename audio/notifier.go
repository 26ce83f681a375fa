// Package audio plays short effects for game events through the system
// speaker.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"snake-grid/game"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.3
)

// Notifier is a game.Listener that beeps on fruit and game over. If no
// audio device can be opened it stays silent.
type Notifier struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	play        func(beep.Streamer)
}

var _ game.Listener = (*Notifier)(nil)

func NewNotifier() *Notifier {
	n := &Notifier{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
	n.play = n.enqueue
	return n
}

// Initialize opens the speaker. On failure the error is logged and
// returned, and the notifier keeps working silently.
func (n *Notifier) Initialize() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		return err
	}
	speaker.Play(n.mixer)
	n.initialized = true
	return nil
}

// Close stops playback and releases the speaker
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	n.initialized = false
}

func (n *Notifier) enqueue(s beep.Streamer) {
	n.mu.Lock()
	ready := n.initialized
	n.mu.Unlock()
	if !ready {
		return
	}
	speaker.Lock()
	n.mixer.Add(s)
	speaker.Unlock()
}

func (n *Notifier) OnTick(game.View) {}

func (n *Notifier) OnFruit(int) {
	n.play(FruitSound(sampleRate, n.volume))
}

func (n *Notifier) OnGameOver(game.Result) {
	n.play(GameOverSound(sampleRate, n.volume))
}
