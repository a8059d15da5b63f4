package folio3d

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, returning
// the hierarchy of the file's default scene as a single root Node with
// Models underneath it, or an error if the process fails.
func LoadGLTFFile(path string) (INode, error) {

	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return LoadGLTFData(bytes.NewReader(fileData))

}

// LoadGLTFData loads a .gltf or .glb file from the reader given, returning
// the hierarchy of the file's default scene as a single root Node with
// Models underneath it, or an error if the process fails.
func LoadGLTFData(data io.Reader) (INode, error) {

	doc := gltf.NewDocument()

	if err := gltf.NewDecoder(data).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}

	materials := make([]*Material, 0, len(doc.Materials))

	for _, gltfMat := range doc.Materials {

		newMat := NewMaterial(gltfMat.Name)

		if pbr := gltfMat.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
			color := *pbr.BaseColorFactor
			newMat.Color.R = float32(color[0])
			newMat.Color.G = float32(color[1])
			newMat.Color.B = float32(color[2])
			newMat.Color.A = float32(color[3])
		}

		newMat.BackfaceCulling = !gltfMat.DoubleSided

		materials = append(materials, newMat)

	}

	meshes := make([]*Mesh, 0, len(doc.Meshes))

	for _, gltfMesh := range doc.Meshes {

		newMesh := NewMesh(gltfMesh.Name)
		materialAssigned := false

		for _, prim := range gltfMesh.Primitives {

			posAccessor, exists := prim.Attributes[gltf.POSITION]
			if !exists {
				continue
			}

			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
			if err != nil {
				return nil, fmt.Errorf("read positions for mesh %q: %w", gltfMesh.Name, err)
			}

			indexOffset := len(newMesh.VertexPositions)

			for _, pos := range vertPos {
				newMesh.AddVertices(Vector3{pos[0], pos[1], pos[2]})
			}

			if prim.Indices == nil {
				continue
			}

			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("read indices for mesh %q: %w", gltfMesh.Name, err)
			}

			newIndices := make([]int, len(indices))
			for i, index := range indices {
				newIndices[i] = int(index) + indexOffset
			}

			newMesh.AddTriangles(newIndices...)

			// Multiple primitives can reference different materials; the
			// first one with a material wins, since folio3d Meshes carry a
			// single Material.
			if prim.Material != nil && !materialAssigned {
				newMesh.Material = materials[*prim.Material]
				materialAssigned = true
			}

		}

		meshes = append(meshes, newMesh)

	}

	objects := make([]INode, 0, len(doc.Nodes))

	for _, node := range doc.Nodes {

		var obj INode

		if node.Mesh != nil {
			obj = NewModel(node.Name, meshes[*node.Mesh])
		} else {
			obj = NewNode(node.Name)
		}

		t := node.TranslationOrDefault()
		obj.SetLocalPosition(float32(t[0]), float32(t[1]), float32(t[2]))

		s := node.ScaleOrDefault()
		obj.SetLocalScale(float32(s[0]), float32(s[1]), float32(s[2]))

		r := node.RotationOrDefault()
		obj.SetLocalRotation(quaternionToMatrix4(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])))

		objects = append(objects, obj)

	}

	// Set up parenting.
	for i, node := range doc.Nodes {
		for _, childIndex := range node.Children {
			objects[i].AddChildren(objects[int(childIndex)])
		}
	}

	root := NewNode("Root")

	if doc.Scene != nil {
		scene := doc.Scenes[*doc.Scene]
		root.SetName(scene.Name)
		for _, nodeIndex := range scene.Nodes {
			root.AddChildren(objects[int(nodeIndex)])
		}
	} else {
		// No default scene; attach every parentless object.
		for _, obj := range objects {
			if obj.Parent() == nil {
				root.AddChildren(obj)
			}
		}
	}

	return root, nil

}

// quaternionToMatrix4 converts a unit quaternion into its rotation Matrix4.
func quaternionToMatrix4(x, y, z, w float32) Matrix4 {

	mat := NewMatrix4()

	mat[0][0] = 1 - 2*(y*y+z*z)
	mat[0][1] = 2 * (x*y + z*w)
	mat[0][2] = 2 * (x*z - y*w)

	mat[1][0] = 2 * (x*y - z*w)
	mat[1][1] = 1 - 2*(x*x+z*z)
	mat[1][2] = 2 * (y*z + x*w)

	mat[2][0] = 2 * (x*z + y*w)
	mat[2][1] = 2 * (y*z - x*w)
	mat[2][2] = 1 - 2*(x*x+y*y)

	return mat

}
