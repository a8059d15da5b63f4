package folio3d

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Material represents the surface appearance of a Mesh: its base color,
// culling and depth behavior, and an optional texture.
type Material struct {
	Name string
	// Color is the material's base color, multiplied into lighting results.
	Color Color
	// BackfaceCulling indicates whether triangles facing away from the
	// camera are skipped when rendering.
	BackfaceCulling bool
	// Transparent indicates whether the material should be rendered with
	// alpha blending; transparent materials don't write depth.
	Transparent bool
	// DepthWrite indicates whether the material's triangles participate in
	// depth sorting against other opaque geometry.
	DepthWrite bool
	// Shadeless materials ignore scene lighting and render at full base color.
	Shadeless bool
	// Texture is an optional base color texture.
	Texture *ebiten.Image

	disposed bool
}

// NewMaterial creates a new Material with sensible defaults: opaque, white,
// backface-culled, and depth-writing.
func NewMaterial(name string) *Material {
	return &Material{
		Name:            name,
		Color:           NewColor(1, 1, 1, 1),
		BackfaceCulling: true,
		DepthWrite:      true,
	}
}

// NormalizeForOpaqueRendering forces the Material into the state expected of
// solid scenery: opaque, front-face culled, and depth-writing. Imported
// materials sometimes arrive flagged transparent or double-sided in ways
// that make meshes invisible from the camera's side; normalizing avoids
// those artifacts.
func (material *Material) NormalizeForOpaqueRendering() {
	material.Transparent = false
	material.BackfaceCulling = true
	material.DepthWrite = true
	material.Color.A = 1
}

// Disposed returns whether the Material's GPU resources have been released.
func (material *Material) Disposed() bool {
	return material.disposed
}

// Dispose releases the Material's texture, if it has one. Calling Dispose
// more than once is a no-op.
func (material *Material) Dispose() {
	if material.disposed {
		return
	}
	material.disposed = true
	if material.Texture != nil {
		material.Texture.Deallocate()
		material.Texture = nil
	}
}
