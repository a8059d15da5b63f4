package folio3d

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ModelSlotConfig describes one portfolio model: where it loads from, where
// it sits in the scene, and the color of the accent light that fires when
// it's hovered.
type ModelSlotConfig struct {
	// Key identifies the slot; it's the value handed to the portfolio-opened
	// callback when the slot's model is clicked.
	Key PortfolioKey `yaml:"key"`
	// Source is the filepath of the slot's glTF file. An empty Source leaves
	// the slot unpopulated until a model is registered manually.
	Source string `yaml:"source"`
	// Position is the world position the loaded model's root is slotted into.
	Position [3]float32 `yaml:"position"`
	// Scale uniformly scales the loaded model; 0 means 1.
	Scale float32 `yaml:"scale"`
	// LightColor is the RGB color of the slot's accent point light.
	LightColor [3]float32 `yaml:"lightColor"`
	// LightOffset positions the accent light relative to Position.
	LightOffset [3]float32 `yaml:"lightOffset"`
}

// CameraConfig describes the viewport and orbit of the widget's camera.
type CameraConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// FieldOfView is the vertical field of view, in degrees.
	FieldOfView float32 `yaml:"fieldOfView"`
	// Distance is the orbit radius around the scene center.
	Distance float32 `yaml:"distance"`
	// PolarAngle is the fixed orbit elevation, in radians.
	PolarAngle float32 `yaml:"polarAngle"`
}

// FocusConfig describes the camera move that plays when a model is clicked.
type FocusConfig struct {
	// Offset is added to the clicked model's position to produce the camera's
	// destination.
	Offset [3]float32 `yaml:"offset"`
	// Duration is how long the move takes, in seconds.
	Duration float32 `yaml:"duration"`
}

// WidgetConfig is the full configuration of a Widget. Zero-valued fields are
// replaced with defaults when the config is applied.
type WidgetConfig struct {
	Camera CameraConfig      `yaml:"camera"`
	Models []ModelSlotConfig `yaml:"models"`
	Focus  FocusConfig       `yaml:"focus"`
	// LitEnergy is the accent light energy a hovered slot ramps towards.
	LitEnergy float32 `yaml:"litEnergy"`
	// GroundSize is the width and depth of the floor plane.
	GroundSize float32 `yaml:"groundSize"`
}

// DefaultConfig returns the stock two-slot configuration: a photography model
// on the left and a computer science model on the right, warm and cool accent
// lights, and a gentle three-quarter camera orbit.
func DefaultConfig() WidgetConfig {
	return WidgetConfig{
		Camera: CameraConfig{
			Width:       640,
			Height:      480,
			FieldOfView: 60,
			Distance:    8,
			PolarAngle:  1.1,
		},
		Models: []ModelSlotConfig{
			{
				Key:         KeyPhotography,
				Position:    [3]float32{-2, 0, 0},
				Scale:       1,
				LightColor:  [3]float32{1, 0.8, 0.5},
				LightOffset: [3]float32{-1, 2, 1},
			},
			{
				Key:         KeyComputerScience,
				Position:    [3]float32{2, 0, 0},
				Scale:       1,
				LightColor:  [3]float32{0.5, 0.7, 1},
				LightOffset: [3]float32{1, 2, 1},
			},
		},
		Focus: FocusConfig{
			Offset:   [3]float32{0, 1, 3},
			Duration: 1.5,
		},
		LitEnergy:  1.5,
		GroundSize: 20,
	}
}

// LoadConfig parses YAML configuration data over the defaults, so a config
// file only has to state what it changes.
func LoadConfig(data []byte) (WidgetConfig, error) {

	config := DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse widget config: %w", err)
	}

	if err := config.validate(); err != nil {
		return config, err
	}

	return config, nil

}

// applyDefaults fills any zero-valued fields with their defaults.
func (config *WidgetConfig) applyDefaults() {

	def := DefaultConfig()

	if config.Camera.Width <= 0 {
		config.Camera.Width = def.Camera.Width
	}
	if config.Camera.Height <= 0 {
		config.Camera.Height = def.Camera.Height
	}
	if config.Camera.FieldOfView <= 0 {
		config.Camera.FieldOfView = def.Camera.FieldOfView
	}
	if config.Camera.Distance <= 0 {
		config.Camera.Distance = def.Camera.Distance
	}
	if config.Camera.PolarAngle <= 0 {
		config.Camera.PolarAngle = def.Camera.PolarAngle
	}
	if config.Focus.Duration <= 0 {
		config.Focus.Duration = def.Focus.Duration
	}
	if config.LitEnergy <= 0 {
		config.LitEnergy = def.LitEnergy
	}
	if config.GroundSize <= 0 {
		config.GroundSize = def.GroundSize
	}
	if config.Models == nil {
		config.Models = def.Models
	}

	for i := range config.Models {
		if config.Models[i].Scale == 0 {
			config.Models[i].Scale = 1
		}
	}

}

// validate reports configurations a Widget can't be built from.
func (config *WidgetConfig) validate() error {

	seen := map[PortfolioKey]bool{}

	for _, slot := range config.Models {
		if slot.Key == "" {
			return fmt.Errorf("model slot with source %q has no key", slot.Source)
		}
		if seen[slot.Key] {
			return fmt.Errorf("duplicate model slot key %q", slot.Key)
		}
		seen[slot.Key] = true
	}

	return nil

}
