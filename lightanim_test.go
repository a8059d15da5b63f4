package folio3d

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestLightChannelEasesTowardsTarget(t *testing.T) {

	channel := newLightChannel(NewPointLight("accent", 1, 1, 1, 0), 0)
	channel.target = 1.5

	last := channel.target - channel.current

	for i := 0; i < 120; i++ {
		channel.update(tick, float32(i)*tick)
		gap := math32.Abs(channel.target - channel.current)
		if gap >= last {
			t.Fatalf("gap to target should shrink every tick, was %v now %v", last, gap)
		}
		last = gap
	}

	if channel.current < 1.4 {
		t.Errorf("after two seconds the light should be nearly lit, got %v", channel.current)
	}

}

func TestLightChannelFlickerBounds(t *testing.T) {

	channel := newLightChannel(NewPointLight("accent", 1, 1, 1, 0), 0)
	channel.target = 1.5
	channel.current = 1.5

	for i := 0; i < 240; i++ {

		channel.update(tick, float32(i)*tick)

		deviation := math32.Abs(channel.light.Energy - channel.current)
		limit := flickerAmplitude*channel.current + 1e-4

		if deviation > limit {
			t.Fatalf("flicker deviation %v exceeds limit %v", deviation, limit)
		}
		if channel.light.Energy < 0 {
			t.Fatalf("light energy went negative: %v", channel.light.Energy)
		}

	}

}

func TestLightChannelNoFlickerWhileDark(t *testing.T) {

	channel := newLightChannel(NewPointLight("accent", 1, 1, 1, 0), 0)
	channel.current = 0.04

	for i := 0; i < 60; i++ {
		channel.update(tick, float32(i)*tick)
		if channel.light.Energy != channel.current {
			t.Fatalf("a nearly-dark light should not flicker, energy %v vs smoothed %v", channel.light.Energy, channel.current)
		}
	}

	if channel.current < 0 {
		t.Fatalf("smoothed energy went negative: %v", channel.current)
	}

}
