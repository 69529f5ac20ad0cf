package falling

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPalette is returned by NewConfig when no colors are given.
	ErrEmptyPalette = errors.New("falling: palette must not be empty")
	// ErrInvalidRange is returned by NewConfig when a range has Min > Max
	// or the radius range is negative.
	ErrInvalidRange = errors.New("falling: invalid range")
	// ErrNegativeSpawnRate is returned by NewConfig for a spawn rate below zero.
	ErrNegativeSpawnRate = errors.New("falling: spawn rate must not be negative")
)

// Config is the immutable description of an effect: how many particles to
// spawn per frame, the ranges their attributes are drawn from, how they look
// and where the drawing surface is mounted. Build one with NewConfig or
// DefaultConfig.
type Config struct {
	spawnRate     int
	radius        Range
	speed         Range
	angle         Range
	palette       []string
	variant       FlakeType
	text          string
	mountSelector string
}

// NewConfig validates and builds a Config. The palette is copied.
func NewConfig(spawnRate int, radius, speed, angle Range, palette []string, variant FlakeType, text, mountSelector string) (Config, error) {
	if spawnRate < 0 {
		return Config{}, fmt.Errorf("%w (got %d)", ErrNegativeSpawnRate, spawnRate)
	}
	if len(palette) == 0 {
		return Config{}, ErrEmptyPalette
	}
	if !radius.valid() || radius.Min < 0 {
		return Config{}, fmt.Errorf("%w: radius %v..%v", ErrInvalidRange, radius.Min, radius.Max)
	}
	if !speed.valid() {
		return Config{}, fmt.Errorf("%w: speed %v..%v", ErrInvalidRange, speed.Min, speed.Max)
	}
	if !angle.valid() {
		return Config{}, fmt.Errorf("%w: angle %v..%v", ErrInvalidRange, angle.Min, angle.Max)
	}
	if int(variant) >= len(flakeTypeNames) {
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownFlakeType, variant)
	}
	return Config{
		spawnRate:     spawnRate,
		radius:        radius,
		speed:         speed,
		angle:         angle,
		palette:       append([]string(nil), palette...),
		variant:       variant,
		text:          text,
		mountSelector: mountSelector,
	}, nil
}

// DefaultConfig returns the stock effect: one small white square per frame
// falling onto "body".
func DefaultConfig() Config {
	cfg, err := DefaultOptions().Config()
	if err != nil {
		panic("falling: default options invalid: " + err.Error())
	}
	return cfg
}

// SpawnRate returns the number of particles created per Render.
func (c Config) SpawnRate() int { return c.spawnRate }

// Radius returns the particle radius range.
func (c Config) Radius() Range { return c.radius }

// Speed returns the range of per-frame downward steps.
func (c Config) Speed() Range { return c.speed }

// Angle returns the range of horizontal drift multipliers.
func (c Config) Angle() Range { return c.angle }

// Palette returns a copy of the color palette.
func (c Config) Palette() []string {
	return append([]string(nil), c.palette...)
}

// Variant returns the flake type every particle is drawn as.
func (c Config) Variant() FlakeType { return c.variant }

// Text returns the glyphs drawn by FlakeText particles.
func (c Config) Text() string { return c.text }

// MountSelector returns the selector of the element the surface attaches to.
func (c Config) MountSelector() string { return c.mountSelector }

// color returns the palette entry at i without copying the palette.
func (c Config) color(i int) string { return c.palette[i] }
