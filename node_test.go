package folio3d

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNodeWorldTransform(t *testing.T) {

	parent := NewNode("parent")
	parent.SetLocalPosition(10, 0, 0)

	child := NewNode("child")
	child.SetLocalPosition(0, 5, 0)
	parent.AddChildren(child)

	if !vecApprox(child.WorldPosition(), NewVector3(10, 5, 0), 1e-5) {
		t.Errorf("child world position %v, want (10, 5, 0)", child.WorldPosition())
	}

	// Rotating the parent a quarter turn around +Y swings the child with it.
	parent.SetLocalRotation(NewMatrix4Rotate(0, 1, 0, math32.Pi/2))
	child.SetLocalPosition(1, 0, 0)

	if !vecApprox(child.WorldPosition(), NewVector3(10, 0, -1), 1e-5) {
		t.Errorf("rotated child world position %v, want (10, 0, -1)", child.WorldPosition())
	}

}

func TestNodeSetWorldPosition(t *testing.T) {

	parent := NewNode("parent")
	parent.SetLocalPosition(3, 0, 0)

	child := NewNode("child")
	parent.AddChildren(child)

	child.SetWorldPositionVec(NewVector3(5, 2, -1))

	if !vecApprox(child.WorldPosition(), NewVector3(5, 2, -1), 1e-4) {
		t.Errorf("world position %v, want (5, 2, -1)", child.WorldPosition())
	}
	if !vecApprox(child.LocalPosition(), NewVector3(2, 2, -1), 1e-4) {
		t.Errorf("local position %v, want (2, 2, -1)", child.LocalPosition())
	}

}

func TestNodeReparenting(t *testing.T) {

	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")

	a.AddChildren(child)
	if child.Parent() != a || len(a.Children()) != 1 {
		t.Fatal("child should be under a")
	}

	b.AddChildren(child)
	if child.Parent() != b {
		t.Fatal("adding to b should reparent the child")
	}
	if len(a.Children()) != 0 {
		t.Fatal("a should no longer hold the child")
	}

	child.Unparent()
	if child.Parent() != nil || len(b.Children()) != 0 {
		t.Fatal("unparenting should detach the child")
	}

}

func TestSearchTreeFilters(t *testing.T) {

	root := NewNode("root")
	root.AddChildren(NewModel("cube", NewCubeMesh()))

	inner := NewNode("inner")
	inner.AddChildren(NewModel("sphere-ish", NewCubeMesh()))
	root.AddChildren(inner)

	if count := root.SearchTree().ByType(NodeTypeModel).Count(); count != 2 {
		t.Errorf("expected 2 models in the tree, got %d", count)
	}

	if found := root.SearchTree().ByName("sphere-ish").First(); found == nil {
		t.Error("search by name should find nested nodes")
	}

	models := root.SearchTree().Models()
	if len(models) != 2 {
		t.Errorf("Models() should collect both models, got %d", len(models))
	}

}

func TestWorldScalePropagates(t *testing.T) {

	parent := NewNode("parent")
	parent.SetLocalScale(2, 2, 2)

	child := NewNode("child")
	child.SetLocalScale(3, 1, 1)
	parent.AddChildren(child)

	scale := child.WorldScale()
	if !approx(scale.X, 6, 1e-4) || !approx(scale.Y, 2, 1e-4) {
		t.Errorf("world scale %v, want (6, 2, 2)", scale)
	}

}
