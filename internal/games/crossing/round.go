package crossing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sim"
)

// Round is one attempt at crossing: the phase machine plus the loop that
// owns its player, level and cars. A round never restarts itself; once its
// restart transition completes it is closed and replaced.
type Round struct {
	id      string
	cfg     config.CrossingConfig
	loop    *sim.Loop
	level   *Level
	player  *Player
	spawner *Spawner
	monitor *CollisionMonitor

	phase      Phase
	reason     EndReason
	observers  []PhaseObserver
	onComplete func(roundID string)

	moves    int
	score    int
	activeAt time.Duration
	endedAt  time.Duration
}

// NewRound validates cfg and builds a round waiting for its first input.
// Nothing is built from a partially valid configuration.
func NewRound(cfg config.CrossingConfig, seed int64) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	level, err := NewLevel(cfg.Level, seed)
	if err != nil {
		return nil, err
	}

	r := &Round{
		id:    uuid.NewString(),
		cfg:   cfg,
		loop:  sim.NewLoop(),
		level: level,
		phase: PhaseWaitingForFirstInput,
	}
	r.player = NewPlayer(level, cfg.Player, level.Start())
	r.spawner = NewSpawner(r.loop, level, cfg.Obstacles, r.id)
	r.monitor = NewCollisionMonitor(r)

	level.SetSpawnListener(r.spawner)
	r.loop.AddNode(r.player.Node)
	r.loop.AddNode(r.player.Hop)
	r.loop.World().AddBody(r.player.Body)
	r.loop.World().AddContactListener(r.monitor)

	logger.Info("round created", "round", r.id, "seed", seed, "start", level.Start())
	return r, nil
}

// ID returns the round identifier. Timers of the round are scoped to it.
func (r *Round) ID() string { return r.id }

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Player returns the round's player.
func (r *Round) Player() *Player { return r.player }

// Level returns the round's level.
func (r *Round) Level() *Level { return r.level }

// Spawner returns the round's car spawner.
func (r *Round) Spawner() *Spawner { return r.spawner }

// Loop returns the simulation loop owned by the round.
func (r *Round) Loop() *sim.Loop { return r.loop }

// EndReason returns why the round ended, or ReasonNone.
func (r *Round) EndReason() EndReason { return r.reason }

// Moves returns the number of validated moves.
func (r *Round) Moves() int { return r.moves }

// Score returns the furthest progress toward the finish row.
func (r *Round) Score() int { return r.score }

// Elapsed returns simulated time spent active, frozen once the round ends.
func (r *Round) Elapsed() time.Duration {
	switch r.phase {
	case PhaseWaitingForFirstInput:
		return 0
	case PhaseActive:
		return r.loop.Now() - r.activeAt
	default:
		return r.endedAt - r.activeAt
	}
}

// AddObserver subscribes o to phase changes.
func (r *Round) AddObserver(o PhaseObserver) {
	r.observers = append(r.observers, o)
}

// OnTransitionComplete sets the callback invoked when the restart delay
// has elapsed. It receives this round's ID so late calls can be told apart.
func (r *Round) OnTransitionComplete(fn func(roundID string)) {
	r.onComplete = fn
}

// HandleInput interprets one action for the current phase. The first move
// both starts the round and moves the player. Any move after the round
// ended begins the restart. Moves during the restart are ignored.
func (r *Round) HandleInput(a core.Action) {
	dir, ok := DirectionForAction(a)
	if !ok {
		return
	}

	switch r.phase {
	case PhaseWaitingForFirstInput, PhaseActive:
		r.setPhase(Transition(r.phase, EventMove))
		r.move(dir)
	case PhaseEnded:
		r.setPhase(Transition(r.phase, EventMove))
	}
}

func (r *Round) move(dir MoveDirection) {
	res := r.player.Move(dir)
	if !res.Moved {
		return
	}
	r.moves++
	if progress := r.progress(res.Row); progress > r.score {
		r.score = progress
	}
}

// progress is how many rows closer to the finish row than the start row
// the given row is. The finish may lie on either side of the start.
func (r *Round) progress(row int) int {
	finish := r.level.FinishRow()
	p := absInt(r.level.Start().Row-finish) - absInt(row-finish)
	return max(p, 0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Collide signals a player/car contact. It only has an effect while active.
func (r *Round) Collide() {
	if r.phase != PhaseActive {
		return
	}
	r.end(EventCollision, ReasonCollision)
}

// FrameTick polls for level completion once per frame. The round only
// listens for ticks while it is active.
func (r *Round) FrameTick(time.Duration) {
	if r.phase == PhaseActive && r.player.Position().Row == r.level.FinishRow() {
		r.end(EventReachedFinish, ReasonFinish)
	}
}

func (r *Round) end(e Event, reason EndReason) {
	next := Transition(r.phase, e)
	if next != PhaseEnded {
		return
	}
	r.reason = reason
	r.setPhase(next)
}

// Step advances the round's loop by dt.
func (r *Round) Step(dt time.Duration) {
	r.loop.Step(dt)
}

// Close discards the round. Its cars are cleared, all of its timers are
// cancelled and listeners detached.
func (r *Round) Close() {
	if r.loop.Closed() {
		return
	}
	cars := r.spawner.Clear()
	timers := r.loop.Scheduler().CancelScope(r.id)
	logger.Debug("round closed", "round", r.id, "cars", cars, "timers", timers,
		"pending", r.loop.Scheduler().Pending())
	r.loop.Close()
}

func (r *Round) setPhase(to Phase) {
	from := r.phase
	if from == to {
		return
	}
	r.phase = to

	if from == PhaseActive {
		r.loop.RemoveTickListener(r)
	}
	switch to {
	case PhaseActive:
		r.activeAt = r.loop.Now()
		r.loop.AddTickListener(r)
		r.level.StartSpawning(r.loop.Scheduler(), r.id)
	case PhaseEnded:
		r.endedAt = r.loop.Now()
		r.loop.World().RemoveContactListener(r.monitor)
	case PhaseResetting:
		r.loop.Scheduler().After(config.Seconds(r.cfg.Round.RestartFade), r.id, r.completeTransition)
	}

	logger.Info("phase changed", "round", r.id, "from", from, "to", to, "reason", r.reason)
	for _, o := range r.observers {
		o.PhaseChanged(r.id, from, to)
	}
}

func (r *Round) completeTransition() {
	if r.phase != PhaseResetting {
		return
	}
	if r.onComplete != nil {
		r.onComplete(r.id)
	}
}
