package folio3d

import (
	"github.com/chewxy/math32"
)

const (
	// lightSmoothingRate is the exponential rate accent lights chase their
	// target energy at, per second. At 60 ticks per second it closes roughly
	// 8% of the remaining gap each tick.
	lightSmoothingRate = 5.0

	// flickerThreshold is the smoothed energy above which flicker kicks in;
	// below it a light fades smoothly with no shimmer.
	flickerThreshold = 0.05

	flickerAmplitude = 0.15
	flickerFrequency = 24.0
)

// lightChannel animates one accent PointLight, easing its energy towards a
// target and layering a sine flicker on top once the light is meaningfully
// lit. The smoothed energy and the flickered energy are kept separate so
// the flicker never feeds back into the easing.
type lightChannel struct {
	light        *PointLight
	current      float32
	target       float32
	flickerPhase float32
}

func newLightChannel(light *PointLight, flickerPhase float32) *lightChannel {
	return &lightChannel{
		light:        light,
		flickerPhase: flickerPhase,
	}
}

// update advances the channel by dt seconds, easing the smoothed energy
// towards the target and writing the flickered result to the light. elapsed
// is the total accumulated scene time, which keys the flicker so it stays
// continuous across ticks of varying length.
func (channel *lightChannel) update(dt, elapsed float32) {

	// Framerate-independent easing; equivalent to a fixed percentage per
	// tick at a steady tick rate.
	factor := 1 - math32.Exp(-lightSmoothingRate*dt)
	channel.current += (channel.target - channel.current) * factor

	if channel.current < 0 {
		channel.current = 0
	}

	energy := channel.current

	if channel.current > flickerThreshold {
		energy += math32.Sin(elapsed*flickerFrequency+channel.flickerPhase) * flickerAmplitude * channel.current
	}

	if energy < 0 {
		energy = 0
	}

	channel.light.Energy = energy

}
