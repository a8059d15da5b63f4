package folio3d

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FocusStatus describes the lifecycle of a focus transition.
type FocusStatus int

const (
	// FocusIdle means no transition has been started.
	FocusIdle FocusStatus = iota
	// FocusRunning means the camera is moving towards its subject.
	FocusRunning
	// FocusComplete means the camera has arrived and the portfolio-opened
	// callback (if any) has fired.
	FocusComplete
)

// FocusTransition moves the camera from wherever it is to a destination in
// front of a clicked model over a fixed duration, firing a completion
// callback exactly once when it arrives.
type FocusTransition struct {
	// Subject is the key of the model the transition focuses on.
	Subject PortfolioKey

	start    Vector3
	end      Vector3
	tween    *gween.Tween
	status   FocusStatus
	progress float32
	fired    bool
}

// newFocusTransition starts a transition from start to end over duration
// seconds.
func newFocusTransition(subject PortfolioKey, start, end Vector3, duration float32) *FocusTransition {
	return &FocusTransition{
		Subject: subject,
		start:   start,
		end:     end,
		tween:   gween.New(0, 1, duration, ease.Linear),
		status:  FocusRunning,
	}
}

// Status returns the transition's current status.
func (focus *FocusTransition) Status() FocusStatus {
	return focus.status
}

// Progress returns the transition's progress, from 0 to 1. A finished
// transition reports exactly 1.
func (focus *FocusTransition) Progress() float32 {
	return focus.progress
}

// Update advances the transition by dt seconds, returning the camera position
// for this moment and whether the transition just finished. The final update
// snaps to the destination rather than stopping short of it.
func (focus *FocusTransition) Update(dt float32) (position Vector3, finished bool) {

	if focus.status != FocusRunning {
		return focus.end, false
	}

	t, done := focus.tween.Update(dt)
	focus.progress = t

	position = focus.start.Lerp(focus.end, t)

	if done {
		focus.progress = 1
		position = focus.end
		focus.status = FocusComplete
	}

	return position, done

}
