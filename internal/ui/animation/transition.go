package animation

import (
	"math"
	"time"
)

// Keyframe is a visual state of an animated object.
type Keyframe struct {
	OffsetY float32
	Opacity float32
	Scale   float32
}

// Lerp interpolates between two keyframes. Progress may overshoot [0, 1] for
// springy transitions; opacity is clamped.
func Lerp(from, to Keyframe, progress float32) Keyframe {
	frame := Keyframe{
		OffsetY: from.OffsetY + (to.OffsetY-from.OffsetY)*progress,
		Opacity: from.Opacity + (to.Opacity-from.Opacity)*progress,
		Scale:   from.Scale + (to.Scale-from.Scale)*progress,
	}
	if frame.Opacity < 0 {
		frame.Opacity = 0
	}
	if frame.Opacity > 1 {
		frame.Opacity = 1
	}
	return frame
}

// Transition describes a spring. Either Stiffness and Damping (unit mass) are
// set, or Duration and Bounce are.
type Transition struct {
	Stiffness float64
	Damping   float64

	Duration time.Duration
	Bounce   float64
}

const (
	settleThreshold = 1000.0
	minSettle       = 50 * time.Millisecond
	maxSettle       = 3 * time.Second
)

// SettleTime returns how long the spring takes to come to rest.
func (transition Transition) SettleTime() time.Duration {
	if transition.Stiffness <= 0 {
		if transition.Duration <= 0 {
			return minSettle
		}
		return transition.Duration
	}
	omega, zeta := transition.params()
	settle := time.Duration(math.Log(settleThreshold) / decayRate(omega, zeta) * float64(time.Second))
	if settle < minSettle {
		return minSettle
	}
	if settle > maxSettle {
		return maxSettle
	}
	return settle
}

// Curve maps linear progress over SettleTime to spring displacement. It starts
// at 0, ends at exactly 1 and may overshoot in between.
func (transition Transition) Curve(progress float32) float32 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	omega, zeta := transition.params()
	elapsed := float64(progress) * transition.SettleTime().Seconds()
	return float32(springDisplacement(omega, zeta, elapsed))
}

func (transition Transition) params() (omega float64, zeta float64) {
	if transition.Stiffness > 0 {
		omega = math.Sqrt(transition.Stiffness)
		zeta = transition.Damping / (2 * omega)
	} else {
		zeta = 1 - transition.Bounce
		if zeta < 0.05 {
			zeta = 0.05
		}
		if zeta > 1 {
			zeta = 1
		}
		seconds := transition.SettleTime().Seconds()
		omega = math.Log(settleThreshold) / (zeta * seconds)
	}
	if zeta <= 0 {
		zeta = 0.05
	}
	return omega, zeta
}

// decayRate is the slowest exponential rate at which the spring approaches rest.
func decayRate(omega, zeta float64) float64 {
	if zeta <= 1 {
		return zeta * omega
	}
	return omega * (zeta - math.Sqrt(zeta*zeta-1))
}

// springDisplacement solves a unit-mass spring released at 0 towards 1.
func springDisplacement(omega, zeta, t float64) float64 {
	switch {
	case zeta < 1:
		damped := omega * math.Sqrt(1-zeta*zeta)
		envelope := math.Exp(-zeta * omega * t)
		return 1 - envelope*(math.Cos(damped*t)+(zeta*omega/damped)*math.Sin(damped*t))
	case zeta == 1:
		return 1 - math.Exp(-omega*t)*(1+omega*t)
	default:
		root := math.Sqrt(zeta*zeta - 1)
		r1 := -omega * (zeta - root)
		r2 := -omega * (zeta + root)
		return 1 - (r2*math.Exp(r1*t)-r1*math.Exp(r2*t))/(r2-r1)
	}
}

// Presence declares how an object enters, rests and exits.
type Presence struct {
	Initial    Keyframe
	Animate    Keyframe
	Exit       Keyframe
	Transition Transition
}
