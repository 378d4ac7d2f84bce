package crossing

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// GameID is the registry and round log identifier.
const GameID = "crossing"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

var logger = log.New(io.Discard)

// SetLogger routes game diagnostics to l. The default discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is one play session. It owns the current round and replaces it
// when the round's restart transition completes.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.CrossingConfig
	fixed   *config.CrossingConfig

	round   *Round
	overlay *Overlay
	rounds  int
	best    int

	// pendingRestart is set by a round's transition timer and consumed
	// after the step that fired it.
	pendingRestart string
	err            error
}

// New creates a session that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a session that always uses cfg.
func NewWithConfig(cfg config.CrossingConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crossing"
}

// Reset loads the configuration and builds the first round.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	g.err = nil
	g.rounds = 0
	g.pendingRestart = ""

	if g.fixed != nil {
		g.cfg = *g.fixed
	} else {
		cfg, err := config.LoadCrossing(configPath)
		if err != nil {
			g.err = err
			return err
		}
		g.cfg = cfg
	}

	if g.round != nil {
		g.round.Close()
		g.round = nil
	}
	g.overlay = NewOverlay(g.cfg.Round)
	if err := g.newRound(); err != nil {
		g.err = err
		return err
	}
	return nil
}

func (g *Game) newRound() error {
	seed := g.runtime.Seed + int64(g.rounds)
	r, err := NewRound(g.cfg, seed)
	if err != nil {
		return fmt.Errorf("build round: %w", err)
	}
	g.rounds++
	r.AddObserver(g.overlay)
	r.OnTransitionComplete(func(roundID string) {
		g.pendingRestart = roundID
	})
	g.round = r
	return nil
}

// Round returns the current round.
func (g *Game) Round() *Round {
	return g.round
}

// Overlay returns the session overlay.
func (g *Game) Overlay() *Overlay {
	return g.overlay
}

// Step applies the queued actions in order, advances the round by one
// tick and swaps in a new round once the restart transition completed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.round == nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	for _, a := range in.Actions {
		g.round.HandleInput(a)
	}

	dt := g.runtime.TickDuration()
	g.round.Step(dt)
	g.overlay.Advance(dt)

	if g.round.Score() > g.best {
		g.best = g.round.Score()
	}

	if id := g.pendingRestart; id != "" {
		g.pendingRestart = ""
		if id != g.round.ID() {
			logger.Warn("stale restart ignored", "round", id, "current", g.round.ID())
		} else if err := g.restart(); err != nil {
			g.err = err
		}
	}

	return core.StepResult{State: g.State(), Err: g.err}
}

func (g *Game) restart() error {
	old := g.round
	old.Close()
	if err := g.newRound(); err != nil {
		return err
	}
	g.overlay.Reveal()
	logger.Info("round replaced", "old", old.ID(), "new", g.round.ID())
	return nil
}

// SetBest seeds the session best score, typically from the round log.
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{Best: g.best}
	}
	phase := g.round.Phase()
	return core.GameState{
		Score:     g.round.Score(),
		Best:      g.best,
		GameOver:  phase == PhaseEnded || phase == PhaseResetting,
		Phase:     phase.String(),
		RoundID:   g.round.ID(),
		EndReason: string(g.round.EndReason()),
		Moves:     g.round.Moves(),
		Elapsed:   g.round.Elapsed(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
