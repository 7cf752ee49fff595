// Package player integrates the player's vertical motion against the arena.
package player

import (
	"math"

	"github.com/automoto/geodash/arena"
	"github.com/automoto/geodash/assets/animations"
	"github.com/automoto/geodash/config"
	"github.com/automoto/geodash/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// World answers collision queries for a screen-space shape.
type World interface {
	CollidePlayer(shape gamemath.Rect) *arena.Item
}

type State int

const (
	StateAirborne State = iota
	StateGrounded
	StateDead
)

func (s State) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateDead:
		return "dead"
	default:
		return "airborne"
	}
}

// Physics is the player's motion state. Velocity and Acceleration are
// vertical only; the arena scrolls past the player horizontally.
type Physics struct {
	Position     dmath.Vec2
	Size         dmath.Vec2
	Velocity     float64
	Acceleration float64
	Rotation     float64 // radians, visual only
	Anim         *animations.Animation

	// KilledBy is the item that ended the run, nil for a fall.
	KilledBy *arena.Item

	cfg      config.PhysicsConfig
	state    State
	jumpHold float64
	jumpDown bool
}

func New(cfg config.PhysicsConfig, pos, size dmath.Vec2, anim *animations.Animation) *Physics {
	return &Physics{
		Position: pos,
		Size:     size,
		Anim:     anim,
		cfg:      cfg,
	}
}

func (p *Physics) State() State { return p.state }

func (p *Physics) Dead() bool { return p.state == StateDead }

func (p *Physics) OnGround() bool { return p.state == StateGrounded }

func (p *Physics) JumpHold() float64 { return p.jumpHold }

// Bounds is the player's screen-space collision box.
func (p *Physics) Bounds() gamemath.Rect {
	return gamemath.NewRect(p.Position.X, p.Position.Y, p.Size.X, p.Size.Y)
}

// SetJump records whether the jump input is held for the next Update.
func (p *Physics) SetJump(down bool) {
	p.jumpDown = down
}

// Kill ends the run. Used by callers for deaths the physics cannot see,
// such as falling below the window.
func (p *Physics) Kill() {
	p.state = StateDead
}

// Update advances the player by dt seconds. A dead player does not move.
func (p *Physics) Update(dt float64, world World) {
	if p.state == StateDead {
		return
	}

	if p.Anim != nil {
		p.Anim.Update(dt)
	}

	if p.state == StateAirborne {
		p.Rotation += p.cfg.RotationSpeed * dt * 1000
	} else {
		p.Rotation = 0
	}

	p.Acceleration = gamemath.ClampSpeed(p.Acceleration+p.cfg.Gravity*dt, p.cfg.MaxAcceleration)
	p.Velocity = gamemath.ClampSpeed(p.Velocity+p.Acceleration*dt, p.cfg.MaxVelocity)

	if hit := world.CollidePlayer(p.Bounds()); hit != nil {
		if hit.Kind.Spike() {
			p.die(hit)
			return
		}
		top := p.restingY(hit)
		if math.Abs(top-p.Position.Y) > p.cfg.DeathThreshold {
			p.die(hit)
			return
		}
		p.Position.Y = top
		if p.Acceleration > 0 {
			p.Velocity = 0
			p.Acceleration = 0
			p.state = StateGrounded
		}
	} else {
		p.state = StateAirborne
		p.Position.Y += p.Velocity * dt

		if hit := world.CollidePlayer(p.Bounds()); hit != nil {
			if hit.Kind.Spike() {
				p.die(hit)
				return
			}
			p.Position.Y = p.restingY(hit)
			if p.Acceleration > 0 {
				p.Velocity = 0
				p.Acceleration = 0
			}
			p.state = StateGrounded
		}
	}

	p.updateJump(dt)
}

// restingY is the y that puts the player exactly on top of item.
func (p *Physics) restingY(item *arena.Item) float64 {
	return item.Position.Y - item.Relative().Y - p.Size.Y
}

func (p *Physics) updateJump(dt float64) {
	if p.jumpDown {
		if p.state == StateGrounded {
			p.jumpHold = p.cfg.JumpHoldThreshold
		}
	} else {
		p.jumpHold = max(p.jumpHold-dt, 0)
	}

	if p.state != StateGrounded || p.jumpHold <= 0 {
		return
	}
	p.Acceleration = p.cfg.JumpSpeed
	p.Velocity = p.cfg.JumpVelocity
	p.Position.Y += p.Velocity * dt
	p.state = StateAirborne
	p.jumpHold = 0
}

func (p *Physics) die(hit *arena.Item) {
	p.state = StateDead
	p.KilledBy = hit
}
