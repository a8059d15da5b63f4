package folio3d

import (
	"bytes"
	"testing"
)

func TestLoadGLTFFile(t *testing.T) {

	root, err := LoadGLTFFile("testdata/triangle.gltf")
	if err != nil {
		t.Fatal(err)
	}

	if root.Name() != "Scene" {
		t.Errorf("root should take the default scene's name, got %q", root.Name())
	}

	children := root.Children()
	if len(children) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(children))
	}

	model, ok := children[0].(*Model)
	if !ok {
		t.Fatalf("node with a mesh should load as a Model, got %T", children[0])
	}

	if model.Name() != "Tri" {
		t.Errorf("model name %q, want Tri", model.Name())
	}
	if !vecApprox(model.LocalPosition(), NewVector3(1, 2, 3), 1e-6) {
		t.Errorf("model translation %v, want (1, 2, 3)", model.LocalPosition())
	}

	if len(model.Mesh.VertexPositions) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(model.Mesh.VertexPositions))
	}
	if len(model.Mesh.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(model.Mesh.Triangles))
	}
	if !vecApprox(model.Mesh.Triangles[0].Normal, WorldBackward, 1e-5) {
		t.Errorf("triangle normal %v, want %v", model.Mesh.Triangles[0].Normal, WorldBackward)
	}

	material := model.Mesh.Material
	if material == nil {
		t.Fatal("primitive material should be assigned to the mesh")
	}
	if material.Name != "Mat" {
		t.Errorf("material name %q, want Mat", material.Name)
	}
	if !approx(material.Color.R, 1, 1e-6) || !approx(material.Color.G, 0, 1e-6) {
		t.Errorf("base color factor not applied: %v", material.Color)
	}
	if material.BackfaceCulling {
		t.Error("a double-sided material should not backface cull")
	}

}

func TestLoadGLTFFileMissing(t *testing.T) {
	if _, err := LoadGLTFFile("testdata/nope.gltf"); err == nil {
		t.Fatal("loading a missing file should error")
	}
}

func TestLoadGLTFDataGarbage(t *testing.T) {
	if _, err := LoadGLTFData(bytes.NewReader([]byte("not a gltf file"))); err == nil {
		t.Fatal("decoding garbage should error")
	}
}
