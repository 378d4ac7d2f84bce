package crossing

import (
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/sim"
)

// Overlay labels.
const (
	TutorialText = "Arrows / WASD to hop"
	GameOverText = "Game Over"
	RestartText  = "Tap to restart"
)

// Overlay tracks the alpha of the on-screen labels and the black restart
// curtain. It changes only through PhaseChanged and Reveal.
type Overlay struct {
	cfg      config.RoundConfig
	tutorial sim.Tween
	gameOver sim.Tween
	curtain  sim.Tween
}

// NewOverlay creates an overlay with the tutorial hint visible.
func NewOverlay(cfg config.RoundConfig) *Overlay {
	return &Overlay{
		cfg:      cfg,
		tutorial: sim.NewTween(1, 1, 0, sim.TimingLinear),
		gameOver: sim.NewTween(0, 0, 0, sim.TimingLinear),
		curtain:  sim.NewTween(0, 0, 0, sim.TimingLinear),
	}
}

func fade(from, to, seconds float64) sim.Tween {
	return sim.NewTween(from, to, config.Seconds(seconds), sim.TimingLinear)
}

// curtainFade eases the black curtain in and out.
func curtainFade(from, to, seconds float64) sim.Tween {
	return sim.NewTween(from, to, config.Seconds(seconds), sim.TimingEaseInEaseOut)
}

// PhaseChanged implements PhaseObserver.
func (o *Overlay) PhaseChanged(_ string, _, to Phase) {
	switch to {
	case PhaseActive:
		o.tutorial = fade(o.tutorial.Value(), 0, o.cfg.HintFade)
	case PhaseEnded:
		o.gameOver = fade(o.gameOver.Value(), 1, o.cfg.EndFade)
	case PhaseResetting:
		o.gameOver = fade(o.gameOver.Value(), 0, o.cfg.EndFade)
		o.curtain = curtainFade(o.curtain.Value(), 1, o.cfg.RestartFade)
	}
}

// Reveal starts a new round: the curtain lifts and the hint returns.
func (o *Overlay) Reveal() {
	o.tutorial = sim.NewTween(1, 1, 0, sim.TimingLinear)
	o.gameOver = sim.NewTween(0, 0, 0, sim.TimingLinear)
	o.curtain = curtainFade(1, 0, o.cfg.RevealFade)
}

// Advance moves every fade forward by dt.
func (o *Overlay) Advance(dt time.Duration) {
	o.tutorial.Advance(dt)
	o.gameOver.Advance(dt)
	o.curtain.Advance(dt)
}

// TutorialAlpha is the opacity of the how-to-play hint.
func (o *Overlay) TutorialAlpha() float64 { return o.tutorial.Value() }

// GameOverAlpha is the opacity of the end-of-round labels.
func (o *Overlay) GameOverAlpha() float64 { return o.gameOver.Value() }

// CurtainAlpha is the opacity of the black restart curtain.
func (o *Overlay) CurtainAlpha() float64 { return o.curtain.Value() }
