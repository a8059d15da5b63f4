package folio3d

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// PortfolioKey identifies a portfolio section a model opens when clicked.
type PortfolioKey string

const (
	KeyPhotography     PortfolioKey = "photography"
	KeyComputerScience PortfolioKey = "computerscience"
)

// Widget is an interactive 3D portfolio scene: portfolio models sit on a lit
// floor, hovering one fades its accent light up with a flicker, and clicking
// one glides the camera in and reports the model's key through
// OnPortfolioOpened.
//
// The Widget is driven explicitly: the host latches input with
// SetPointerPosition, SetPointerDown, and Click, then advances the simulation
// with Tick and renders with Draw. All scene mutation happens inside Tick, so
// there is a single writer no matter how input arrives.
type Widget struct {
	Scene  *Scene
	Camera *Camera
	Orbit  *OrbitControls

	// OnPortfolioOpened is called with the clicked model's key when a focus
	// transition completes. It fires exactly once per transition.
	OnPortfolioOpened func(key PortfolioKey)

	config     WidgetConfig
	models     map[PortfolioKey]*LoadableModel
	modelRoots map[INode]PortfolioKey
	hitTargets NodeCollection
	lights     map[PortfolioKey]*lightChannel

	hovered PortfolioKey
	focus   *FocusTransition

	pointerX, pointerY int
	pointerDown        bool
	pendingClick       bool

	elapsed     float32
	disposed    bool
	loadResults chan loadResult
	logger      *log.Logger
}

// NewWidget builds a Widget from the config provided, constructing the scene
// (floor, base lighting, accent lights) and kicking off asynchronous loads
// for every model slot with a source. Models pop into the scene as their
// loads finish.
func NewWidget(config WidgetConfig) (*Widget, error) {

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	widget := &Widget{
		config:      config,
		models:      map[PortfolioKey]*LoadableModel{},
		modelRoots:  map[INode]PortfolioKey{},
		lights:      map[PortfolioKey]*lightChannel{},
		loadResults: make(chan loadResult, len(config.Models)),
		logger:      log.New(os.Stderr, "", log.LstdFlags),
	}

	widget.buildScene()

	for _, slot := range config.Models {
		widget.models[slot.Key] = &LoadableModel{Key: slot.Key, State: LoadPending}
		if slot.Source != "" {
			widget.beginLoad(slot.Key, slot.Source)
		}
	}

	return widget, nil

}

// buildScene assembles the static parts of the scene: the floor, the ambient
// and directional base lighting, the per-slot accent lights, and the orbiting
// camera.
func (widget *Widget) buildScene() {

	widget.Scene = NewScene("Portfolio")

	ground := NewModel("Ground", NewPlaneMesh(widget.config.GroundSize, widget.config.GroundSize))
	ground.Mesh.Material.Color = NewColor(0.25, 0.25, 0.28, 1)
	ground.CastShadow = false
	widget.Scene.Root.AddChildren(ground)

	ambient := NewAmbientLight("Ambient", 1, 1, 1, 0.2)
	widget.Scene.Root.AddChildren(ambient)

	sun := NewDirectionalLight("Sun", 1, 0.98, 0.9, 0.8)
	sun.CastShadow = true
	sunPos := NewVector3(5, 10, 5)
	sun.SetLocalPositionVec(sunPos)
	// The light direction points towards the source, so surfaces facing the
	// sun position get lit.
	sun.SetLocalRotation(NewLookAtMatrix(Vector3{}, sunPos, WorldUp))
	widget.Scene.Root.AddChildren(sun)

	phase := float32(0)

	for _, slot := range widget.config.Models {

		accent := NewPointLight(string(slot.Key)+" accent", slot.LightColor[0], slot.LightColor[1], slot.LightColor[2], 0)
		accent.SetLocalPositionVec(vec3(slot.Position).Add(vec3(slot.LightOffset)))
		widget.Scene.Root.AddChildren(accent)

		// Stagger flicker phases so the two lights never shimmer in sync.
		widget.lights[slot.Key] = newLightChannel(accent, phase)
		phase += 2.1

	}

	widget.Camera = NewCamera(widget.config.Camera.Width, widget.config.Camera.Height)
	widget.Camera.SetFieldOfView(widget.config.Camera.FieldOfView)
	widget.Scene.Root.AddChildren(widget.Camera)

	widget.Orbit = NewOrbitControls(widget.Camera, Vector3{}, widget.config.Camera.Distance, widget.config.Camera.PolarAngle)

}

// RegisterModel inserts a loaded model hierarchy into the slot identified by
// key: the hierarchy is positioned and scaled per the slot's config, its
// materials are normalized for opaque rendering, its Models are flagged as
// shadow casters, and hitboxes are created so raycasts can strike it.
func (widget *Widget) RegisterModel(key PortfolioKey, root INode) {

	slot := widget.slotConfig(key)
	if slot == nil {
		widget.logger.Printf("folio3d: no model slot configured for key %q", key)
		return
	}

	root.SetLocalPositionVec(vec3(slot.Position))
	root.SetLocalScale(slot.Scale, slot.Scale, slot.Scale)

	hitTargets := NodeCollection{}

	for _, model := range root.SearchTree().Models() {
		model.CastShadow = true
		if model.Mesh != nil && model.Mesh.Material != nil {
			model.Mesh.Material.NormalizeForOpaqueRendering()
		}
		hitTargets = append(hitTargets, model.NewHitbox())
	}

	widget.Scene.Root.AddChildren(root)

	loadable, ok := widget.models[key]
	if !ok {
		loadable = &LoadableModel{Key: key}
		widget.models[key] = loadable
	}
	loadable.Root = root
	loadable.State = LoadLoaded
	loadable.hitTargets = hitTargets

	widget.modelRoots[root] = key
	widget.rebuildHitTargets()

}

// rebuildHitTargets gathers the hitboxes of every loaded model into the
// single collection hover raycasts test against.
func (widget *Widget) rebuildHitTargets() {
	widget.hitTargets = widget.hitTargets[:0]
	for _, model := range widget.models {
		if model.State == LoadLoaded {
			widget.hitTargets = append(widget.hitTargets, model.hitTargets...)
		}
	}
}

// slotConfig returns the configuration of the model slot with the key given,
// or nil if no slot carries it.
func (widget *Widget) slotConfig(key PortfolioKey) *ModelSlotConfig {
	for i := range widget.config.Models {
		if widget.config.Models[i].Key == key {
			return &widget.config.Models[i]
		}
	}
	return nil
}

// SetPointerPosition latches the pointer's position in pixels, relative to
// the widget's viewport. The hover state updates on the next Tick.
func (widget *Widget) SetPointerPosition(x, y int) {
	widget.pointerX = x
	widget.pointerY = y
}

// SetPointerDown latches whether the pointer's button is held, which drives
// orbit dragging.
func (widget *Widget) SetPointerDown(down bool) {
	widget.pointerDown = down
}

// Click latches a click for the next Tick. If a loaded model is hovered when
// the tick processes the click, a focus transition starts towards it; clicks
// over empty space, over a pending or failed model, or while a transition is
// already running do nothing.
func (widget *Widget) Click() {
	widget.pendingClick = true
}

// Hovered returns the key of the model currently under the pointer, or an
// empty key if none is.
func (widget *Widget) Hovered() PortfolioKey {
	return widget.hovered
}

// Focus returns the current focus transition, or nil if none has started.
func (widget *Widget) Focus() *FocusTransition {
	return widget.focus
}

// Model returns the slot state for the key given, or nil for an unknown key.
func (widget *Widget) Model(key PortfolioKey) *LoadableModel {
	return widget.models[key]
}

// LightEnergy returns the current energy of the accent light for the slot
// given.
func (widget *Widget) LightEnergy(key PortfolioKey) float32 {
	if channel, ok := widget.lights[key]; ok {
		return channel.light.Energy
	}
	return 0
}

// Tick advances the widget's simulation by dt seconds: finished loads are
// applied, the orbit moves the camera (unless a focus transition owns it),
// the hover state is re-resolved from the latched pointer, accent lights
// ease towards their targets, any latched click is processed, and a running
// focus transition steps forward. Ticking a disposed widget does nothing.
func (widget *Widget) Tick(dt float32) {

	if widget.disposed {
		return
	}

	widget.elapsed += dt

	widget.drainLoadResults()

	// A focus transition owns the camera from the moment it starts until
	// ClearFocus hands it back.
	widget.Orbit.Enabled = widget.focus == nil

	widget.Orbit.SetPointerState(widget.pointerX, widget.pointerDown)
	widget.Orbit.Update(dt)

	widget.updateHover()
	widget.updateLights(dt)

	if widget.pendingClick {
		widget.pendingClick = false
		widget.startFocus()
	}

	widget.updateFocus(dt)

}

// updateHover casts a ray from the camera through the latched pointer
// position and resolves which model slot, if any, owns what it struck. The
// accent light targets are only rewritten when the hover state actually
// changes.
func (widget *Widget) updateHover() {

	newHover := PortfolioKey("")

	hit := widget.Camera.PointerRayTest(PointerRayTestOptions{
		X:           widget.pointerX,
		Y:           widget.pointerY,
		TestAgainst: widget.hitTargets,
	})

	if hit != nil {
		newHover = widget.resolveOwner(hit.Object)
	}

	if newHover == widget.hovered {
		return
	}

	widget.hovered = newHover

	for key, channel := range widget.lights {
		if key == newHover {
			channel.target = widget.config.LitEnergy
		} else {
			channel.target = 0
		}
	}

}

// resolveOwner walks from the struck node up through its ancestors to the
// registered model root containing it, returning that root's slot key. Nodes
// outside any registered model resolve to an empty key.
func (widget *Widget) resolveOwner(node INode) PortfolioKey {
	for n := node; n != nil; n = n.Parent() {
		if key, ok := widget.modelRoots[n]; ok {
			return key
		}
	}
	return ""
}

// updateLights advances every accent light channel.
func (widget *Widget) updateLights(dt float32) {
	for _, channel := range widget.lights {
		channel.update(dt, widget.elapsed)
	}
}

// startFocus begins a focus transition towards the hovered model. Guarded:
// nothing happens without a hovered, fully loaded model, or while a
// transition is already running.
func (widget *Widget) startFocus() {

	if widget.hovered == "" {
		return
	}

	if widget.focus != nil && widget.focus.Status() == FocusRunning {
		return
	}

	model, ok := widget.models[widget.hovered]
	if !ok || model.State != LoadLoaded {
		return
	}

	destination := model.Root.WorldPosition().Add(vec3(widget.config.Focus.Offset))

	widget.focus = newFocusTransition(widget.hovered, widget.Camera.WorldPosition(), destination, widget.config.Focus.Duration)

}

// updateFocus steps a running focus transition, moving the camera along it
// and firing OnPortfolioOpened once when it completes.
func (widget *Widget) updateFocus(dt float32) {

	if widget.focus == nil || widget.focus.Status() != FocusRunning {
		return
	}

	position, finished := widget.focus.Update(dt)

	widget.Camera.SetWorldPositionVec(position)
	widget.Camera.SetLocalRotation(NewLookAtMatrix(widget.focusTarget(), position, WorldUp))

	if finished && !widget.focus.fired {
		widget.focus.fired = true
		if widget.OnPortfolioOpened != nil {
			widget.OnPortfolioOpened(widget.focus.Subject)
		}
	}

}

// focusTarget returns the point the camera looks at during the current focus
// transition: the subject model's position.
func (widget *Widget) focusTarget() Vector3 {
	if model, ok := widget.models[widget.focus.Subject]; ok && model.Root != nil {
		return model.Root.WorldPosition()
	}
	return Vector3{}
}

// ClearFocus discards the current focus transition, if any, and hands the
// camera back to the orbit controls. The orbit snaps the camera back onto
// its ring on the next Tick.
func (widget *Widget) ClearFocus() {
	widget.focus = nil
}

// Resize resizes the widget's viewport. Degenerate sizes (zero or negative
// width or height) are ignored, leaving the previous viewport in place.
func (widget *Widget) Resize(w, h int) {
	if widget.disposed {
		return
	}
	widget.Camera.Resize(w, h)
}

// Draw renders the scene through the widget's camera and composites the
// result onto the screen provided. Drawing a disposed widget does nothing.
func (widget *Widget) Draw(screen *ebiten.Image) {

	if widget.disposed {
		return
	}

	widget.Camera.Clear(widget.Scene.World.ClearColor)
	widget.Camera.RenderScene(widget.Scene)

	screen.DrawImage(widget.Camera.ColorTexture(), nil)

}

// Disposed returns whether the widget has been disposed.
func (widget *Widget) Disposed() bool {
	return widget.disposed
}

// Dispose releases the widget's GPU-side resources: every loaded model's
// material textures and the camera's backing texture. After disposal, Tick,
// Draw, and Resize are no-ops. Calling Dispose more than once is a no-op.
func (widget *Widget) Dispose() {

	if widget.disposed {
		return
	}
	widget.disposed = true

	widget.Scene.Dispose()
	widget.Camera.Dispose()

}

// vec3 converts a 3-element config array into a Vector3.
func vec3(values [3]float32) Vector3 {
	return Vector3{values[0], values[1], values[2]}
}
