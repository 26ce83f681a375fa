package game

import (
	"log"
	"strings"
	"sync"
	"time"

	"snake-grid/game/manager"
	"snake-grid/game/types"
)

// Result describes how a round ended
type Result struct {
	Score int
	Cause types.Outcome
	// Full is set when the snake filled the board; Cause is then Grew
	Full  bool
	Round manager.RoundRecord
}

// View is a read-only copy of everything a renderer needs
type View struct {
	State     types.State
	Cells     [][]types.Cell
	Head      types.Position
	Fruit     types.Position
	HasFruit  bool
	Direction types.Direction
	Score     int
	HighScore int
	Steps     int
	Result    Result
	HasResult bool
}

// Listener is notified after the controller lock is released, so it may
// call back into the controller.
type Listener interface {
	OnTick(v View)
	OnFruit(score int)
	OnGameOver(r Result)
}

// ListenerFuncs adapts optional callbacks to Listener
type ListenerFuncs struct {
	Tick     func(View)
	Fruit    func(int)
	GameOver func(Result)
}

func (l ListenerFuncs) OnTick(v View) {
	if l.Tick != nil {
		l.Tick(v)
	}
}

func (l ListenerFuncs) OnFruit(score int) {
	if l.Fruit != nil {
		l.Fruit(score)
	}
}

func (l ListenerFuncs) OnGameOver(r Result) {
	if l.GameOver != nil {
		l.GameOver(r)
	}
}

type Option func(*Controller)

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

func WithListener(l Listener) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, l) }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithScores(sm *manager.ScoreManager) Option {
	return func(c *Controller) { c.scores = sm }
}

// Controller owns the engine and the periodic tick. All state changes go
// through its mutex; ticks from a cancelled schedule are dropped by
// comparing generations.
type Controller struct {
	mu        sync.Mutex
	engine    *Engine
	state     types.State
	interval  time.Duration
	delay     time.Duration
	scheduler Scheduler
	cancel    CancelFunc
	gen       uint64
	listeners []Listener
	scores    *manager.ScoreManager
	now       func() time.Time
	started   time.Time
	result    Result
	hasResult bool
}

// NewController wraps engine. The first tick after Start fires after delay,
// the following ones every interval.
func NewController(engine *Engine, interval, delay time.Duration, opts ...Option) *Controller {
	c := &Controller{
		engine:    engine,
		state:     types.Idle,
		interval:  interval,
		delay:     delay,
		scheduler: TimerScheduler{},
		scores:    manager.NewScoreManager(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

func (c *Controller) State() types.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Scores() *manager.ScoreManager {
	return c.scores
}

// Start begins ticking from Idle or Paused. It is a no-op while running and
// fails with ErrRoundOver once the round has ended.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked()
}

func (c *Controller) startLocked() error {
	switch c.state {
	case types.Running:
		return nil
	case types.Over:
		return types.ErrRoundOver
	case types.Idle:
		c.started = c.now()
	}

	c.state = types.Running
	c.gen++
	gen := c.gen
	c.cancel = c.scheduler.Schedule(c.delay, c.interval, func() { c.tick(gen) })
	log.Printf("snake: running (interval %v)", c.interval)
	return nil
}

// Pause stops ticking. Outside Running it does nothing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pauseLocked()
}

func (c *Controller) pauseLocked() {
	if c.state != types.Running {
		return
	}
	c.stopTicking()
	c.state = types.Paused
	log.Printf("snake: paused at score %d", c.engine.Score())
}

// Toggle pauses a running round and starts an idle or paused one
func (c *Controller) Toggle() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == types.Running {
		c.pauseLocked()
		return nil
	}
	return c.startLocked()
}

// Reset cancels any tick and rebuilds the board and snake
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTicking()
	if err := c.engine.Reset(); err != nil {
		return err
	}
	c.state = types.Idle
	c.result = Result{}
	c.hasResult = false
	log.Printf("snake: reset")
	return nil
}

// Close stops ticking without changing the state
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTicking()
}

// stopTicking is the single exit path from a running schedule
func (c *Controller) stopTicking() {
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// RequestDirection changes the heading unless it reverses the snake.
// Requests after the round is over are ignored.
func (c *Controller) RequestDirection(d types.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == types.Over {
		return false
	}
	return c.engine.RequestDirection(d)
}

var letterKeys = map[string]types.Direction{
	"w": types.Up, "k": types.Up,
	"s": types.Down, "j": types.Down,
	"a": types.Left, "h": types.Left,
	"d": types.Right, "l": types.Right,
}

// HandleKey maps a key name to a command and reports whether it was used.
// Space toggles, r resets, arrows and wasd/hjkl steer. Steering toward the
// starting heading while idle or paused also starts the round.
func (c *Controller) HandleKey(key string) bool {
	switch strings.ToLower(key) {
	case " ", "space":
		if err := c.Toggle(); err != nil {
			log.Printf("snake: %v", err)
		}
		return true
	case "r":
		if err := c.Reset(); err != nil {
			log.Printf("snake: reset failed: %v", err)
		}
		return true
	}

	dir, ok := types.ParseDirection(key)
	if !ok {
		dir, ok = letterKeys[strings.ToLower(key)]
	}
	if !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == types.Over || !c.engine.RequestDirection(dir) {
		return true
	}
	if c.state.IsPaused() && dir == c.engine.Config().Heading {
		if err := c.startLocked(); err != nil {
			log.Printf("snake: %v", err)
		}
	}
	return true
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != types.Running {
		c.mu.Unlock()
		return
	}

	outcome := c.engine.Step()
	over := outcome.Terminal() || c.engine.Full()
	if over {
		c.stopTicking()
		c.state = types.Over
		score := c.engine.Score()
		c.result = Result{
			Score: score,
			Cause: outcome,
			Full:  c.engine.Full(),
			Round: c.scores.Record(score, c.started, c.now()),
		}
		c.hasResult = true
		log.Printf("snake: game over (%v) score %d", outcome, score)
	}
	view := c.viewLocked()
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l.OnTick(view)
		if outcome == types.Grew {
			l.OnFruit(view.Score)
		}
		if over {
			l.OnGameOver(view.Result)
		}
	}
}

// Snapshot copies the current state for rendering
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	fruit, hasFruit := c.engine.Fruit()
	snake := c.engine.Snake()
	return View{
		State:     c.state,
		Cells:     c.engine.Board().Snapshot(),
		Head:      snake.GetHead(),
		Fruit:     fruit,
		HasFruit:  hasFruit,
		Direction: snake.Direction(),
		Score:     c.engine.Score(),
		HighScore: c.scores.HighScore(),
		Steps:     c.engine.Steps(),
		Result:    c.result,
		HasResult: c.hasResult,
	}
}
