package falling

import "math"

// Particle holds the state of one falling flake.
type Particle struct {
	X, Y   float64
	Speed  float64 // downward step per frame
	Angle  float64 // horizontal drift per unit of Speed
	Radius float64
	Color  string
	Type   FlakeType
	Text   string
	dead   bool
}

// SpawnParticle creates a particle on the top edge of a stage of the given
// width. Random draws happen in a fixed order (x, speed, angle, radius,
// color) so a deterministic src yields a reproducible particle.
func SpawnParticle(cfg *Config, stageWidth float64, src Source) Particle {
	return Particle{
		X:      RandomFloat(src, 0, stageWidth),
		Y:      0,
		Speed:  cfg.speed.Random(src),
		Angle:  cfg.angle.Random(src),
		Radius: cfg.radius.Random(src),
		Color:  cfg.color(RandomIndex(src, 0, len(cfg.palette))),
		Type:   cfg.variant,
		Text:   cfg.text,
	}
}

// Advance moves the particle one frame and returns the new Y.
func (p *Particle) Advance() float64 {
	p.X += p.Angle * p.Speed
	p.Y += p.Speed
	return p.Y
}

// Alive reports whether the particle has not yet crossed the stage bottom.
func (p *Particle) Alive() bool {
	return !p.dead
}

func (p *Particle) kill() {
	p.dead = true
}

// TextFont returns the font FlakeText particles are drawn with.
func (p *Particle) TextFont() Font {
	return Font{Size: int(p.Radius * 5), Family: "serif"}
}

// Draw renders the particle onto ctx. Only fills are issued.
func (p *Particle) Draw(ctx Context2D) {
	ctx.BeginPath()
	switch p.Type {
	case FlakeCircle:
		ctx.SetFillStyle(p.Color)
		ctx.FillArc(p.X, p.Y, p.Radius, 0, 2*math.Pi)
	case FlakeSquare:
		ctx.SetFillStyle(p.Color)
		ctx.FillRect(p.X, p.Y, p.Radius*2, p.Radius*2)
	case FlakeText:
		ctx.SetFont(p.TextFont())
		ctx.SetFillStyle(p.Color)
		ctx.FillText(p.Text, p.X, p.Y)
	}
	ctx.ClosePath()
}
