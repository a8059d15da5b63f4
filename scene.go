package folio3d

// World contains properties shared by the entire Scene, like the clear color
// rendered behind all geometry.
type World struct {
	Name       string
	ClearColor Color
}

// NewWorld creates a new World with the name provided.
func NewWorld(name string) *World {
	return &World{
		Name:       name,
		ClearColor: NewColor(0.05, 0.05, 0.08, 1),
	}
}

// Scene represents a world of nodes hanging off of a single root. The Scene
// owns every node attached under its root, including model hierarchies
// inserted after loading.
type Scene struct {
	Name  string
	Root  INode
	World *World
}

// NewScene creates a new Scene by the name given.
func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		Root:  NewNode("Root"),
		World: NewWorld(name + " World"),
	}
}

// Get searches the Scene's hierarchy for the first Node with the name
// provided, returning nil if none is found.
func (scene *Scene) Get(name string) INode {
	return scene.Root.SearchTree().ByName(name).First()
}

// Lights returns all active lights in the Scene.
func (scene *Scene) Lights() []ILight {
	lights := []ILight{}
	scene.Root.SearchTree().ByType(NodeTypeLight).ForEach(func(node INode) bool {
		if light, ok := node.(ILight); ok && light.isOn() {
			lights = append(lights, light)
		}
		return true
	})
	return lights
}

// Dispose walks the Scene's hierarchy, releasing the GPU-side resources
// (material textures) of every Model found. Each material is disposed
// exactly once, even when shared between Models.
func (scene *Scene) Dispose() {

	disposed := map[*Material]bool{}

	for _, model := range scene.Root.SearchTree().Models() {
		if model.Mesh == nil || model.Mesh.Material == nil {
			continue
		}
		if !disposed[model.Mesh.Material] {
			disposed[model.Mesh.Material] = true
			model.Mesh.Material.Dispose()
		}
	}

}
