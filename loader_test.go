package folio3d

import (
	"io"
	"log"
	"testing"
	"time"
)

// tickUntil drives the widget until check passes or the deadline lapses.
func tickUntil(t *testing.T, widget *Widget, check func() bool) {

	t.Helper()

	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		widget.Tick(tick)
		if check() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatal("condition never became true")

}

func TestWidgetLoadsModelFromFile(t *testing.T) {

	config := DefaultConfig()
	config.Models[0].Source = "testdata/triangle.gltf"

	widget, err := NewWidget(config)
	if err != nil {
		t.Fatal(err)
	}

	if widget.Model(KeyPhotography).State != LoadPending {
		t.Fatal("the slot should start out pending")
	}

	tickUntil(t, widget, func() bool {
		return widget.Model(KeyPhotography).State == LoadLoaded
	})

	loaded := widget.Model(KeyPhotography)
	if loaded.Root == nil {
		t.Fatal("a loaded slot should carry its model root")
	}
	if !vecApprox(loaded.Root.WorldPosition(), vec3(config.Models[0].Position), 1e-5) {
		t.Errorf("loaded model should sit at its slot position, got %v", loaded.Root.WorldPosition())
	}
	if len(loaded.hitTargets) == 0 {
		t.Error("a loaded model should have hitboxes")
	}

	// The slot without a source stays pending and inert.
	if widget.Model(KeyComputerScience).State != LoadPending {
		t.Error("the sourceless slot should stay pending")
	}

}

func TestWidgetLoadFailureMarksSlot(t *testing.T) {

	config := DefaultConfig()
	config.Models[0].Source = "testdata/does-not-exist.gltf"

	widget, err := NewWidget(config)
	if err != nil {
		t.Fatal(err)
	}
	widget.logger = log.New(io.Discard, "", 0)

	tickUntil(t, widget, func() bool {
		return widget.Model(KeyPhotography).State == LoadFailed
	})

	failed := widget.Model(KeyPhotography)
	if failed.Err == nil {
		t.Error("a failed slot should carry its load error")
	}
	if failed.Root != nil {
		t.Error("a failed slot should stay empty")
	}

	// The widget keeps running; failed slots just never hover or click.
	widget.Tick(tick)
	widget.Click()
	widget.Tick(tick)
	if widget.Focus() != nil {
		t.Error("clicking with only a failed slot should not start a transition")
	}

}
