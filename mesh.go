package folio3d

import (
	"github.com/chewxy/math32"
)

// Dimensions represents the minimum and maximum spatial extents of a Mesh or
// bounding volume.
type Dimensions struct {
	Min Vector3
	Max Vector3
}

// NewEmptyDimensions returns a new Dimensions struct with its minimum and
// maximum extents set such that any point grows it.
func NewEmptyDimensions() Dimensions {
	inf := math32.Inf(1)
	return Dimensions{
		Min: Vector3{inf, inf, inf},
		Max: Vector3{-inf, -inf, -inf},
	}
}

// Center returns the center point of the Dimensions.
func (dim Dimensions) Center() Vector3 {
	return dim.Min.Add(dim.Max).Scale(0.5)
}

// Size returns the width (x), height (y), and depth (z) of the Dimensions.
func (dim Dimensions) Size() Vector3 {
	return dim.Max.Sub(dim.Min)
}

// MaxSpan returns the largest span of the Dimensions (width, height, or depth).
func (dim Dimensions) MaxSpan() float32 {
	size := dim.Size()
	return math32.Max(math32.Max(size.X, size.Y), size.Z)
}

// grow expands the Dimensions to include the point provided.
func (dim Dimensions) grow(point Vector3) Dimensions {
	dim.Min.X = math32.Min(dim.Min.X, point.X)
	dim.Min.Y = math32.Min(dim.Min.Y, point.Y)
	dim.Min.Z = math32.Min(dim.Min.Z, point.Z)
	dim.Max.X = math32.Max(dim.Max.X, point.X)
	dim.Max.Y = math32.Max(dim.Max.Y, point.Y)
	dim.Max.Z = math32.Max(dim.Max.Z, point.Z)
	return dim
}

// Triangle represents one triangle in a Mesh, referencing three vertices by
// index.
type Triangle struct {
	ID            int
	VertexIndices [3]int
	Normal        Vector3
	Center        Vector3
}

// Mesh represents a collection of vertices and the triangles formed between
// them. Models reference Meshes; multiple Models can share a single Mesh.
type Mesh struct {
	Name            string
	VertexPositions []Vector3
	Triangles       []*Triangle
	Dimensions      Dimensions
	Material        *Material
}

// NewMesh creates a new Mesh with the name given.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:            name,
		VertexPositions: []Vector3{},
		Triangles:       []*Triangle{},
		Dimensions:      NewEmptyDimensions(),
		Material:        NewMaterial(name),
	}
}

// AddVertices appends the vertex positions provided to the Mesh.
func (mesh *Mesh) AddVertices(positions ...Vector3) {
	mesh.VertexPositions = append(mesh.VertexPositions, positions...)
}

// AddTriangles appends triangles to the Mesh from the vertex indices
// provided, in sets of three. Triangle normals and centers are computed from
// the vertex positions, so the vertices must be added first.
func (mesh *Mesh) AddTriangles(indices ...int) {

	for i := 0; i < len(indices); i += 3 {

		if len(indices) < i+3 {
			break
		}

		tri := &Triangle{
			ID:            len(mesh.Triangles),
			VertexIndices: [3]int{indices[i], indices[i+1], indices[i+2]},
		}
		tri.RecalculateNormal(mesh)
		mesh.Triangles = append(mesh.Triangles, tri)

	}

	mesh.UpdateBounds()

}

// RecalculateNormal recalculates the normal and center of the Triangle from
// the Mesh's vertex positions.
func (tri *Triangle) RecalculateNormal(mesh *Mesh) {

	v0 := mesh.VertexPositions[tri.VertexIndices[0]]
	v1 := mesh.VertexPositions[tri.VertexIndices[1]]
	v2 := mesh.VertexPositions[tri.VertexIndices[2]]

	tri.Normal = v1.Sub(v0).Cross(v2.Sub(v0)).Unit()
	tri.Center = v0.Add(v1).Add(v2).Divide(3)

}

// UpdateBounds updates the Mesh's Dimensions to match its vertex positions.
func (mesh *Mesh) UpdateBounds() {
	mesh.Dimensions = NewEmptyDimensions()
	for _, pos := range mesh.VertexPositions {
		mesh.Dimensions = mesh.Dimensions.grow(pos)
	}
}

// NewPlaneMesh creates a new plane Mesh of the width and depth provided,
// facing up, centered at the origin.
func NewPlaneMesh(width, depth float32) *Mesh {

	mesh := NewMesh("Plane")

	w := width / 2
	d := depth / 2

	mesh.AddVertices(
		Vector3{-w, 0, -d},
		Vector3{w, 0, -d},
		Vector3{w, 0, d},
		Vector3{-w, 0, d},
	)

	mesh.AddTriangles(
		0, 2, 1,
		0, 3, 2,
	)

	return mesh

}

// NewCubeMesh creates a new cube Mesh of unit size, centered at the origin.
func NewCubeMesh() *Mesh {

	mesh := NewMesh("Cube")

	mesh.AddVertices(
		Vector3{-0.5, -0.5, -0.5},
		Vector3{0.5, -0.5, -0.5},
		Vector3{0.5, 0.5, -0.5},
		Vector3{-0.5, 0.5, -0.5},
		Vector3{-0.5, -0.5, 0.5},
		Vector3{0.5, -0.5, 0.5},
		Vector3{0.5, 0.5, 0.5},
		Vector3{-0.5, 0.5, 0.5},
	)

	mesh.AddTriangles(
		2, 1, 0, 0, 3, 2, // Back (-Z)
		4, 5, 6, 6, 7, 4, // Front (+Z)
		0, 1, 5, 5, 4, 0, // Bottom (-Y)
		6, 2, 3, 3, 7, 6, // Top (+Y)
		0, 4, 7, 7, 3, 0, // Left (-X)
		5, 1, 2, 2, 6, 5, // Right (+X)
	)

	return mesh

}
