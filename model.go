package folio3d

// Model represents a renderable Node: a Mesh placed in the scene with a
// color tint and shadow participation flags.
type Model struct {
	*Node
	Mesh *Mesh
	// Color is multiplied into the Model's material color when rendering.
	Color Color
	// CastShadow indicates whether the Model's geometry casts shadows onto
	// other geometry.
	CastShadow bool
	// ReceiveShadow indicates whether other geometry's shadows darken this
	// Model.
	ReceiveShadow bool
}

// NewModel creates a new Model in the position of (0, 0, 0) with the name
// and mesh provided.
func NewModel(name string, mesh *Mesh) *Model {
	return &Model{
		Node:          NewNode(name),
		Mesh:          mesh,
		Color:         NewColor(1, 1, 1, 1),
		CastShadow:    true,
		ReceiveShadow: true,
	}
}

// Type returns the NodeType for this object.
func (model *Model) Type() NodeType {
	return NodeTypeModel
}

// AddChildren parents the provided children Nodes to the Model, inheriting
// its transformations and being under it in the scenegraph hierarchy.
func (model *Model) AddChildren(children ...INode) {
	model.addChildren(model, children...)
}

// Unparent unparents the Model from its parent, removing it from the
// scenegraph.
func (model *Model) Unparent() {
	if model.parent != nil {
		model.parent.RemoveChildren(model)
	}
}

// SearchTree returns a NodeFilter to search through the Model's hierarchy,
// including the Model itself.
func (model *Model) SearchTree() NodeFilter {
	return NodeFilter{start: model}
}

// NewHitbox creates a BoundingAABB sized to the Model's mesh dimensions and
// parents it to the Model, returning it. The hitbox follows the Model's
// transform and is what raycasts actually strike.
func (model *Model) NewHitbox() *BoundingAABB {
	dim := model.Mesh.Dimensions
	size := dim.Size()
	hitbox := NewBoundingAABB(model.name+" hitbox", size.X, size.Y, size.Z)
	hitbox.SetLocalPositionVec(dim.Center())
	model.AddChildren(hitbox)
	return hitbox
}
