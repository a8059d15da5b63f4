package folio3d

import (
	"github.com/chewxy/math32"
)

// ILight represents an interface fulfilled by objects that emit light,
// returning the color contribution for a surface at a world position with a
// given normal.
type ILight interface {
	INode
	// begin is called once per frame before lighting, allowing the light to
	// cache state shared between surfaces.
	begin()
	// Light returns the R, G, and B contribution of the light for the
	// world-space surface normal and point provided.
	Light(normal, point Vector3) (float32, float32, float32)
	isOn() bool
}

//---------------//

// AmbientLight represents an ambient light that colors the entire Scene.
type AmbientLight struct {
	*Node
	Color Color // Color is the color of the AmbientLight.
	// Energy is the overall energy of the light; technically there's no
	// difference between a brighter color and a higher energy, but this is
	// here for convenience / adherence to glTF / 3D modelers.
	Energy float32
	On     bool // If the light is on and contributing to the scene.
}

// NewAmbientLight returns a new AmbientLight.
func NewAmbientLight(name string, r, g, b, energy float32) *AmbientLight {
	return &AmbientLight{
		Node:   NewNode(name),
		Color:  NewColor(r, g, b, 1),
		Energy: energy,
		On:     true,
	}
}

// Type returns the NodeType for this object.
func (amb *AmbientLight) Type() NodeType {
	return NodeTypeAmbientLight
}

// AddChildren parents the provided children Nodes to the AmbientLight.
func (amb *AmbientLight) AddChildren(children ...INode) {
	amb.addChildren(amb, children...)
}

// Unparent unparents the AmbientLight from its parent, removing it from the
// scenegraph.
func (amb *AmbientLight) Unparent() {
	if amb.parent != nil {
		amb.parent.RemoveChildren(amb)
	}
}

func (amb *AmbientLight) begin() {}

// Light returns the global light level for the ambient light. It doesn't use
// the normal or point arguments; this is just to adhere to the ILight
// interface.
func (amb *AmbientLight) Light(normal, point Vector3) (float32, float32, float32) {
	return amb.Color.R * amb.Energy, amb.Color.G * amb.Energy, amb.Color.B * amb.Energy
}

func (amb *AmbientLight) isOn() bool {
	return amb.On
}

//---------------//

// PointLight represents a point light of infinite point-ness.
type PointLight struct {
	*Node
	// Distance represents the distance after which the light fully
	// attenuates. If this is 0 (the default), it falls off using something
	// akin to the inverse square law.
	Distance float32
	Color    Color // Color is the color of the PointLight.
	// Energy is the overall energy of the light; a zero-energy light
	// contributes nothing while staying in the scene.
	Energy float32
	On     bool // If the light is on and contributing to the scene.
}

// NewPointLight creates a new PointLight.
func NewPointLight(name string, r, g, b, energy float32) *PointLight {
	return &PointLight{
		Node:   NewNode(name),
		Color:  NewColor(r, g, b, 1),
		Energy: energy,
		On:     true,
	}
}

// Type returns the NodeType for this object.
func (point *PointLight) Type() NodeType {
	return NodeTypePointLight
}

// AddChildren parents the provided children Nodes to the PointLight.
func (point *PointLight) AddChildren(children ...INode) {
	point.addChildren(point, children...)
}

// Unparent unparents the PointLight from its parent, removing it from the
// scenegraph.
func (point *PointLight) Unparent() {
	if point.parent != nil {
		point.parent.RemoveChildren(point)
	}
}

func (point *PointLight) begin() {}

// Light returns the R, G, and B contribution of the point light for the
// world-space surface normal and point provided.
func (point *PointLight) Light(normal, surfacePoint Vector3) (float32, float32, float32) {

	lightPos := point.WorldPosition()
	lightVec := lightPos.Sub(surfacePoint).Unit()

	diffuse := normal.Dot(lightVec)
	if diffuse < 0 {
		diffuse = 0
	}

	var diffuseFactor float32
	distance := lightPos.DistanceSquaredTo(surfacePoint)

	if point.Distance == 0 {
		diffuseFactor = diffuse * (1.0 / (1.0 + (0.1 * distance))) * 2
	} else {
		pd := point.Distance * point.Distance
		f := distance / pd
		diffuseFactor = diffuse * math32.Max(math32.Min(1.0-(f*f*f*f), 1), 0)
	}

	return point.Color.R * diffuseFactor * point.Energy,
		point.Color.G * diffuseFactor * point.Energy,
		point.Color.B * diffuseFactor * point.Energy

}

func (point *PointLight) isOn() bool {
	return point.On && point.Energy > 0
}

//---------------//

// DirectionalLight represents a directional light of infinite distance.
type DirectionalLight struct {
	*Node
	Color Color // Color is the color of the DirectionalLight.
	// Energy is the overall energy of the light, assuming 1.0 is standard /
	// "100%" lighting.
	Energy float32
	On     bool // If the light is on and contributing to the scene.
	// CastShadow indicates whether the light is the scene's shadow caster.
	CastShadow bool

	// Cached forward vector so we don't recalculate it for every surface
	// using this light.
	forward Vector3
}

// NewDirectionalLight creates a new DirectionalLight with the specified RGB
// color and energy.
func NewDirectionalLight(name string, r, g, b, energy float32) *DirectionalLight {
	return &DirectionalLight{
		Node:   NewNode(name),
		Color:  NewColor(r, g, b, 1),
		Energy: energy,
		On:     true,
	}
}

// Type returns the NodeType for this object.
func (sun *DirectionalLight) Type() NodeType {
	return NodeTypeDirectionalLight
}

// AddChildren parents the provided children Nodes to the DirectionalLight.
func (sun *DirectionalLight) AddChildren(children ...INode) {
	sun.addChildren(sun, children...)
}

// Unparent unparents the DirectionalLight from its parent, removing it from
// the scenegraph.
func (sun *DirectionalLight) Unparent() {
	if sun.parent != nil {
		sun.parent.RemoveChildren(sun)
	}
}

func (sun *DirectionalLight) begin() {
	sun.forward = sun.LocalRotation().Forward()
}

// Light returns the R, G, and B contribution of the directional light for
// the world-space surface normal provided.
func (sun *DirectionalLight) Light(normal, point Vector3) (float32, float32, float32) {
	diffuseFactor := math32.Max(normal.Dot(sun.forward), 0)
	return sun.Color.R * diffuseFactor * sun.Energy,
		sun.Color.G * diffuseFactor * sun.Energy,
		sun.Color.B * diffuseFactor * sun.Energy
}

func (sun *DirectionalLight) isOn() bool {
	return sun.On
}
