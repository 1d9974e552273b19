package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/decker502/movieque/pkg/components"
	"github.com/decker502/movieque/pkg/config"
)

// ProgressSystem drives the loading percentage.
//
// State machine:
//
//	Running --Tick reaches 100--> Complete --Fire--> Fired
//	Running/Complete --Cancel--> Cancelled
//
// Tick is one interval of the fixed timer. Advance turns elapsed frame time
// into ticks and, once complete, into the post-completion delay. Callers that
// own a real interval timer may call Tick and Fire directly instead.
type ProgressSystem struct {
	state      components.ProgressComponent
	step       int
	interval   time.Duration
	delay      time.Duration
	onComplete func()
}

// NewProgressSystem creates a progress driver starting at 0.
// onComplete may be nil.
func NewProgressSystem(cfg config.ProgressConfig, onComplete func()) *ProgressSystem {
	step := cfg.Step
	if step <= 0 {
		step = config.DefaultProgressStep
	}
	interval := cfg.TickInterval()
	if interval <= 0 {
		interval = config.DefaultProgressTickInterval
	}
	delay := cfg.CompletionDelay()
	if delay < 0 {
		delay = 0
	}

	return &ProgressSystem{
		step:       step,
		interval:   interval,
		delay:      delay,
		onComplete: onComplete,
	}
}

// Value returns the current percentage.
func (p *ProgressSystem) Value() int { return p.state.Value }

// Phase returns the current state.
func (p *ProgressSystem) Phase() components.ProgressPhase { return p.state.Phase }

// Ticks returns how many increments were applied.
func (p *ProgressSystem) Ticks() int { return p.state.Ticks }

// Interval returns the tick interval.
func (p *ProgressSystem) Interval() time.Duration { return p.interval }

// Delay returns the post-completion delay.
func (p *ProgressSystem) Delay() time.Duration { return p.delay }

// Fraction returns the value as 0.0 - 1.0 for drawing bars.
func (p *ProgressSystem) Fraction() float64 {
	return float64(p.state.Value) / float64(config.ProgressMax)
}

// Tick applies one increment. It reports whether this tick completed the
// progress; ticks outside Running are ignored.
func (p *ProgressSystem) Tick() bool {
	if p.state.Phase != components.ProgressRunning {
		return false
	}

	p.state.Ticks++
	p.state.Value = min(p.state.Value+p.step, config.ProgressMax)

	if p.state.Value >= config.ProgressMax {
		p.state.Phase = components.ProgressComplete
		zap.S().Debugf("[ProgressSystem] complete after %d ticks", p.state.Ticks)
		return true
	}
	return false
}

// Fire invokes the completion callback. It only has an effect once, and only
// after the progress has completed and was not cancelled.
func (p *ProgressSystem) Fire() bool {
	if p.state.Phase != components.ProgressComplete {
		return false
	}

	p.state.Phase = components.ProgressFired
	if p.onComplete != nil {
		p.onComplete()
	}
	return true
}

// Advance feeds elapsed time into the driver: a Tick every interval while
// running, then Fire once the completion delay has elapsed.
func (p *ProgressSystem) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}

	switch p.state.Phase {
	case components.ProgressRunning:
		p.state.SinceTick += dt
		for p.state.SinceTick >= p.interval && p.state.Phase == components.ProgressRunning {
			p.state.SinceTick -= p.interval
			if p.Tick() {
				// time left over from this frame counts towards the delay
				p.state.SinceComplete = p.state.SinceTick
				p.state.SinceTick = 0
			}
		}
		if p.state.Phase == components.ProgressComplete {
			p.checkDelay()
		}

	case components.ProgressComplete:
		p.state.SinceComplete += dt
		p.checkDelay()
	}
}

func (p *ProgressSystem) checkDelay() {
	if p.state.SinceComplete >= p.delay {
		p.Fire()
	}
}

// Cancel stops the driver for good; the callback will never run.
func (p *ProgressSystem) Cancel() {
	switch p.state.Phase {
	case components.ProgressRunning, components.ProgressComplete:
		zap.S().Debugf("[ProgressSystem] cancelled at %d%%", p.state.Value)
		p.state.Phase = components.ProgressCancelled
	}
}
