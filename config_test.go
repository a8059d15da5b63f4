package folio3d

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {

	config := DefaultConfig()

	if err := config.validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	if len(config.Models) != 2 {
		t.Fatalf("expected 2 default model slots, got %d", len(config.Models))
	}
	if config.Models[0].Key != KeyPhotography || config.Models[1].Key != KeyComputerScience {
		t.Errorf("unexpected default slot keys: %v, %v", config.Models[0].Key, config.Models[1].Key)
	}

}

func TestLoadConfigOverlaysDefaults(t *testing.T) {

	config, err := LoadConfig([]byte(`
camera:
  width: 800
  height: 600
litEnergy: 2
`))
	if err != nil {
		t.Fatal(err)
	}

	if config.Camera.Width != 800 || config.Camera.Height != 600 {
		t.Errorf("expected 800x600 viewport, got %dx%d", config.Camera.Width, config.Camera.Height)
	}
	if config.LitEnergy != 2 {
		t.Errorf("expected lit energy 2, got %v", config.LitEnergy)
	}

	// Everything unset keeps its default.
	if config.Camera.FieldOfView != 60 {
		t.Errorf("field of view should default to 60, got %v", config.Camera.FieldOfView)
	}
	if len(config.Models) != 2 {
		t.Errorf("model slots should default, got %d", len(config.Models))
	}

}

func TestLoadConfigRejectsDuplicateKeys(t *testing.T) {

	_, err := LoadConfig([]byte(`
models:
  - key: photography
  - key: photography
`))
	if err == nil {
		t.Fatal("duplicate slot keys should be rejected")
	}

}

func TestLoadConfigRejectsMissingKey(t *testing.T) {

	_, err := LoadConfig([]byte(`
models:
  - source: assets/camera.gltf
`))
	if err == nil {
		t.Fatal("a slot without a key should be rejected")
	}

}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {

	if _, err := LoadConfig([]byte("models: [what")); err == nil {
		t.Fatal("malformed YAML should be rejected")
	}

}

func TestApplyDefaultsFillsZeroes(t *testing.T) {

	config := WidgetConfig{
		Models: []ModelSlotConfig{{Key: "solo"}},
	}
	config.applyDefaults()

	if config.Camera.Width <= 0 || config.Camera.Height <= 0 {
		t.Error("viewport size should be defaulted")
	}
	if config.Focus.Duration <= 0 {
		t.Error("focus duration should be defaulted")
	}
	if config.Models[0].Scale != 1 {
		t.Errorf("slot scale should default to 1, got %v", config.Models[0].Scale)
	}

}
