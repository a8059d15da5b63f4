package folio3d

import (
	"github.com/chewxy/math32"
)

// BoundingAABB represents a 3D axis-aligned bounding box, used as a hit-test
// target for raycasting. The box is positioned by its Node transform but
// stays axis-aligned; rotation is ignored, while world scale grows the box.
type BoundingAABB struct {
	*Node
	// Dimensions are the local extents of the box, centered on the Node's
	// position.
	Dimensions Dimensions
}

// NewBoundingAABB returns a new BoundingAABB of the width (x), height (y),
// and depth (z) provided.
func NewBoundingAABB(name string, width, height, depth float32) *BoundingAABB {
	return &BoundingAABB{
		Node: NewNode(name),
		Dimensions: Dimensions{
			Min: Vector3{-width / 2, -height / 2, -depth / 2},
			Max: Vector3{width / 2, height / 2, depth / 2},
		},
	}
}

// Type returns the NodeType for this object.
func (box *BoundingAABB) Type() NodeType {
	return NodeTypeBoundingAABB
}

// AddChildren parents the provided children Nodes to the BoundingAABB.
func (box *BoundingAABB) AddChildren(children ...INode) {
	box.addChildren(box, children...)
}

// Unparent unparents the BoundingAABB from its parent, removing it from the
// scenegraph.
func (box *BoundingAABB) Unparent() {
	if box.parent != nil {
		box.parent.RemoveChildren(box)
	}
}

// WorldDimensions returns the box's Dimensions, scaled by the Node's world
// scale (but still centered on local zero).
func (box *BoundingAABB) WorldDimensions() Dimensions {
	scale := box.WorldScale()
	return Dimensions{
		Min: box.Dimensions.Min.MultComp(scale),
		Max: box.Dimensions.Max.MultComp(scale),
	}
}

// PointInside returns whether the world-space point provided lies inside the
// BoundingAABB.
func (box *BoundingAABB) PointInside(point Vector3) bool {
	pos := box.WorldPosition()
	dim := box.WorldDimensions()
	return point.X >= pos.X+dim.Min.X && point.X <= pos.X+dim.Max.X &&
		point.Y >= pos.Y+dim.Min.Y && point.Y <= pos.Y+dim.Max.Y &&
		point.Z >= pos.Z+dim.Min.Z && point.Z <= pos.Z+dim.Max.Z
}

// normalFromContactPoint guesses the normal of the face of the BoundingAABB
// nearest to the world-space contact point provided.
func (box *BoundingAABB) normalFromContactPoint(contact Vector3) Vector3 {

	pos := box.WorldPosition()
	dim := box.WorldDimensions()
	local := contact.Sub(pos)

	// Normalize the local point into the box's half-extents and take the
	// dominant axis.
	nx := local.X / math32.Max(dim.Max.X, 1e-8)
	ny := local.Y / math32.Max(dim.Max.Y, 1e-8)
	nz := local.Z / math32.Max(dim.Max.Z, 1e-8)

	ax, ay, az := math32.Abs(nx), math32.Abs(ny), math32.Abs(nz)

	if ax >= ay && ax >= az {
		return Vector3{math32.Copysign(1, nx), 0, 0}
	} else if ay >= ax && ay >= az {
		return Vector3{0, math32.Copysign(1, ny), 0}
	}
	return Vector3{0, 0, math32.Copysign(1, nz)}

}

// BoundingSphere represents a 3D sphere, used as a hit-test target for
// raycasting.
type BoundingSphere struct {
	*Node
	// Radius is the local radius of the sphere.
	Radius float32
}

// NewBoundingSphere returns a new BoundingSphere of the radius provided.
func NewBoundingSphere(name string, radius float32) *BoundingSphere {
	return &BoundingSphere{
		Node:   NewNode(name),
		Radius: radius,
	}
}

// Type returns the NodeType for this object.
func (sphere *BoundingSphere) Type() NodeType {
	return NodeTypeBoundingSphere
}

// AddChildren parents the provided children Nodes to the BoundingSphere.
func (sphere *BoundingSphere) AddChildren(children ...INode) {
	sphere.addChildren(sphere, children...)
}

// Unparent unparents the BoundingSphere from its parent, removing it from
// the scenegraph.
func (sphere *BoundingSphere) Unparent() {
	if sphere.parent != nil {
		sphere.parent.RemoveChildren(sphere)
	}
}

// WorldRadius returns the sphere's radius, scaled by the largest component
// of the Node's world scale.
func (sphere *BoundingSphere) WorldRadius() float32 {
	scale := sphere.WorldScale()
	return sphere.Radius * math32.Max(math32.Max(math32.Abs(scale.X), math32.Abs(scale.Y)), math32.Abs(scale.Z))
}
