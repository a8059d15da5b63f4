package folio3d

import (
	"io"
	"log"
	"testing"
)

// newTestModel builds a small model hierarchy standing in for a loaded glTF
// file: a root node with a unit cube Model underneath it.
func newTestModel(name string) INode {
	root := NewNode(name)
	root.AddChildren(NewModel(name+" cube", NewCubeMesh()))
	return root
}

// newTestWidget builds a widget from the default config with no file sources
// and both slots populated with cube models.
func newTestWidget(t *testing.T) *Widget {

	t.Helper()

	widget, err := NewWidget(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	widget.logger = log.New(io.Discard, "", 0)

	widget.RegisterModel(KeyPhotography, newTestModel("photography"))
	widget.RegisterModel(KeyComputerScience, newTestModel("computerscience"))

	return widget

}

// pointAt latches the pointer over the center of the model in the slot given.
func pointAt(widget *Widget, key PortfolioKey) {
	pos := widget.Model(key).Root.WorldPosition()
	screen := widget.Camera.WorldToScreenPixels(pos)
	widget.SetPointerPosition(int(screen.X), int(screen.Y))
}

func TestHoverTracksPointer(t *testing.T) {

	widget := newTestWidget(t)

	widget.Tick(tick)
	if widget.Hovered() != "" {
		t.Fatalf("nothing should be hovered with the pointer in the corner, got %q", widget.Hovered())
	}

	pointAt(widget, KeyPhotography)
	widget.Tick(tick)
	if widget.Hovered() != KeyPhotography {
		t.Fatalf("expected %q hovered, got %q", KeyPhotography, widget.Hovered())
	}

	pointAt(widget, KeyComputerScience)
	widget.Tick(tick)
	if widget.Hovered() != KeyComputerScience {
		t.Fatalf("expected %q hovered, got %q", KeyComputerScience, widget.Hovered())
	}

	widget.SetPointerPosition(0, 0)
	widget.Tick(tick)
	if widget.Hovered() != "" {
		t.Fatalf("expected hover cleared, got %q", widget.Hovered())
	}

}

func TestHoverRampsAccentLight(t *testing.T) {

	widget := newTestWidget(t)

	pointAt(widget, KeyPhotography)
	for i := 0; i < 120; i++ {
		widget.Tick(tick)
	}

	if widget.LightEnergy(KeyPhotography) < 1 {
		t.Errorf("hovered accent light should be lit, got energy %v", widget.LightEnergy(KeyPhotography))
	}
	if widget.LightEnergy(KeyComputerScience) != 0 {
		t.Errorf("unhovered accent light should stay dark, got energy %v", widget.LightEnergy(KeyComputerScience))
	}

	widget.SetPointerPosition(0, 0)
	for i := 0; i < 300; i++ {
		widget.Tick(tick)
	}

	if widget.LightEnergy(KeyPhotography) > 0.01 {
		t.Errorf("accent light should fade out after hover ends, got energy %v", widget.LightEnergy(KeyPhotography))
	}

}

func TestClickOverEmptySpaceDoesNothing(t *testing.T) {

	widget := newTestWidget(t)

	widget.SetPointerPosition(0, 0)
	widget.Tick(tick)
	widget.Click()
	widget.Tick(tick)

	if widget.Focus() != nil {
		t.Fatal("clicking empty space should not start a focus transition")
	}

}

func TestClickOnUnloadedModelDoesNothing(t *testing.T) {

	widget, err := NewWidget(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	// Force the hover state; a pending model has no hitboxes, so this can't
	// happen through raycasting, but the click guard still has to hold.
	widget.hovered = KeyPhotography
	widget.pendingClick = true
	widget.startFocus()

	if widget.Focus() != nil {
		t.Fatal("clicking a slot that hasn't loaded should not start a focus transition")
	}

}

func TestClickStartsFocusAndFiresOnce(t *testing.T) {

	widget := newTestWidget(t)

	opened := []PortfolioKey{}
	widget.OnPortfolioOpened = func(key PortfolioKey) {
		opened = append(opened, key)
	}

	pointAt(widget, KeyPhotography)
	widget.Tick(tick)
	widget.Click()
	widget.Tick(tick)

	focus := widget.Focus()
	if focus == nil || focus.Status() != FocusRunning {
		t.Fatal("clicking a hovered model should start a running focus transition")
	}
	if focus.Progress() <= 0 || focus.Progress() >= 1 {
		t.Fatalf("one tick in, progress should be partial, got %v", focus.Progress())
	}

	// A second click mid-transition is ignored.
	widget.Click()
	widget.Tick(tick)
	if widget.Focus() != focus {
		t.Fatal("clicking during a running transition should not restart it")
	}

	for i := 0; i < 300; i++ {
		widget.Tick(tick)
	}

	if focus.Status() != FocusComplete {
		t.Fatalf("transition should have completed, status %v", focus.Status())
	}
	if focus.Progress() != 1 {
		t.Fatalf("a completed transition should report progress exactly 1, got %v", focus.Progress())
	}
	if len(opened) != 1 || opened[0] != KeyPhotography {
		t.Fatalf("callback should fire exactly once with the clicked key, got %v", opened)
	}

	destination := widget.Model(KeyPhotography).Root.WorldPosition().Add(vec3(widget.config.Focus.Offset))
	if !vecApprox(widget.Camera.WorldPosition(), destination, 0.01) {
		t.Errorf("camera should rest at the focus destination %v, got %v", destination, widget.Camera.WorldPosition())
	}

	// More ticks must not re-fire the callback.
	for i := 0; i < 60; i++ {
		widget.Tick(tick)
	}
	if len(opened) != 1 {
		t.Fatalf("callback fired %d times", len(opened))
	}

}

func TestClearFocusReturnsCameraToOrbit(t *testing.T) {

	widget := newTestWidget(t)

	pointAt(widget, KeyPhotography)
	widget.Tick(tick)
	widget.Click()
	for i := 0; i < 300; i++ {
		widget.Tick(tick)
	}

	if widget.Orbit.Enabled {
		t.Fatal("orbit controls should stay suspended after a transition completes")
	}

	widget.ClearFocus()
	widget.Tick(tick)

	if widget.Focus() != nil {
		t.Fatal("ClearFocus should discard the transition")
	}

	distance := widget.Camera.WorldPosition().DistanceTo(widget.Orbit.Target)
	if !approx(distance, widget.Orbit.Distance, 0.01) {
		t.Errorf("camera should be back on the orbit ring at distance %v, got %v", widget.Orbit.Distance, distance)
	}

}

func TestResizeGuards(t *testing.T) {

	widget := newTestWidget(t)

	widget.Resize(800, 400)
	if !approx(widget.Camera.AspectRatio(), 2, 1e-6) {
		t.Fatalf("expected aspect ratio 2 after resize, got %v", widget.Camera.AspectRatio())
	}

	widget.Resize(0, 400)
	widget.Resize(800, -1)
	if !approx(widget.Camera.AspectRatio(), 2, 1e-6) {
		t.Fatalf("degenerate resizes should be ignored, got aspect %v", widget.Camera.AspectRatio())
	}

}

func TestDisposeIsIdempotent(t *testing.T) {

	widget := newTestWidget(t)

	material := widget.Model(KeyPhotography).Root.SearchTree().Models()[0].Mesh.Material

	widget.Dispose()

	if !widget.Disposed() {
		t.Fatal("widget should report disposed")
	}
	if !material.Disposed() {
		t.Fatal("model materials should be disposed with the widget")
	}
	if !widget.Camera.Disposed() {
		t.Fatal("the camera should be disposed with the widget")
	}

	// A second disposal and further driving must be no-ops.
	widget.Dispose()

	pointAt(widget, KeyPhotography)
	widget.Tick(tick)
	if widget.Hovered() != "" {
		t.Fatal("a disposed widget should not process input")
	}

	widget.Resize(100, 100)
	if widget.Camera.AspectRatio() == 1 {
		t.Fatal("a disposed widget should ignore resizes")
	}

}

func TestRegisterModelUnknownKeyIgnored(t *testing.T) {

	widget := newTestWidget(t)

	widget.RegisterModel("sculpture", newTestModel("sculpture"))

	if widget.Model("sculpture") != nil {
		t.Fatal("registering a model for an unconfigured key should be ignored")
	}

}
