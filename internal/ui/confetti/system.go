package confetti

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strings"
)

// Point is a position relative to the layer, both axes in [0, 1].
type Point struct {
	X float32
	Y float32
}

// Options describes a single burst.
type Options struct {
	ParticleCount int
	// Angle is the launch direction in degrees; 90 is straight up.
	Angle float64
	// Spread is the cone width in degrees around Angle.
	Spread float64
	Origin Point
	Colors []color.Color

	StartVelocity float64
	Decay         float64
	Gravity       float64
	Ticks         int
}

func (options Options) withDefaults() Options {
	if options.ParticleCount <= 0 {
		options.ParticleCount = 50
	}
	if options.StartVelocity <= 0 {
		options.StartVelocity = 45
	}
	if options.Decay <= 0 || options.Decay >= 1 {
		options.Decay = 0.9
	}
	if options.Gravity == 0 {
		options.Gravity = 1
	}
	if options.Ticks <= 0 {
		options.Ticks = 200
	}
	if len(options.Colors) == 0 {
		options.Colors = []color.Color{color.White}
	}
	return options
}

// Particle is a single piece of confetti, in layer pixels.
type Particle struct {
	X, Y     float64
	Velocity float64
	Angle    float64
	Wobble   float64
	Size     float64
	Color    color.Color
	Decay    float64
	Gravity  float64
	Tick     int
	Ticks    int
}

// Opacity fades the particle out over its lifetime.
func (particle Particle) Opacity() float64 {
	if particle.Ticks <= 0 {
		return 0
	}
	opacity := 1 - float64(particle.Tick)/float64(particle.Ticks)
	if opacity < 0 {
		return 0
	}
	return opacity
}

// Tint returns the particle color with its current opacity applied.
func (particle Particle) Tint() color.Color {
	r, g, b, _ := particle.Color.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(particle.Opacity() * 255),
	}
}

// System advances confetti particles one display frame at a time.
type System struct {
	particles []Particle
	rng       *rand.Rand
}

// NewSystem creates an empty particle system.
func NewSystem(rng *rand.Rand) *System {
	return &System{rng: rng}
}

// Spawn adds a burst launched from options.Origin within a width x height area.
func (system *System) Spawn(options Options, width, height float64) {
	options = options.withDefaults()
	originX := float64(options.Origin.X) * width
	originY := float64(options.Origin.Y) * height
	radAngle := options.Angle * math.Pi / 180
	radSpread := options.Spread * math.Pi / 180

	for i := 0; i < options.ParticleCount; i++ {
		system.particles = append(system.particles, Particle{
			X:        originX,
			Y:        originY,
			Velocity: options.StartVelocity*0.5 + system.rng.Float64()*options.StartVelocity,
			Angle:    -radAngle + (0.5*radSpread - system.rng.Float64()*radSpread),
			Wobble:   system.rng.Float64() * 10,
			Size:     6 + system.rng.Float64()*4,
			Color:    options.Colors[system.rng.Intn(len(options.Colors))],
			Decay:    options.Decay,
			Gravity:  options.Gravity,
			Ticks:    options.Ticks,
		})
	}
}

// Step advances every particle by one frame and drops the expired ones.
func (system *System) Step() {
	alive := system.particles[:0]
	for _, particle := range system.particles {
		particle.X += math.Cos(particle.Angle) * particle.Velocity
		particle.Y += math.Sin(particle.Angle)*particle.Velocity + particle.Gravity*3
		particle.Velocity *= particle.Decay
		particle.Wobble += 0.1
		particle.Tick++
		if particle.Tick < particle.Ticks {
			alive = append(alive, particle)
		}
	}
	system.particles = alive
}

// Particles returns the live particles.
func (system *System) Particles() []Particle {
	return system.particles
}

// Len returns the number of live particles.
func (system *System) Len() int {
	return len(system.particles)
}

// Hex parses "#rrggbb" into an opaque color.
func Hex(value string) (color.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(value, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("parse color %q: %w", value, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is Hex for compile-time palettes.
func MustHex(value string) color.Color {
	parsed, err := Hex(value)
	if err != nil {
		panic(err)
	}
	return parsed
}
