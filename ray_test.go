package folio3d

import (
	"testing"
)

func TestRayTestAABB(t *testing.T) {

	box := NewBoundingAABB("box", 2, 2, 2)

	hit := RayTest(RayTestOptions{
		From:        NewVector3(0, 0, 10),
		To:          NewVector3(0, 0, -10),
		TestAgainst: NodeCollection{box},
	})

	if hit == nil {
		t.Fatal("ray straight through the box should hit")
	}
	if hit.Object != box {
		t.Fatal("hit should reference the struck bounding object")
	}
	if !vecApprox(hit.Position, NewVector3(0, 0, 1), 1e-4) {
		t.Errorf("hit position %v, want (0, 0, 1)", hit.Position)
	}
	if !vecApprox(hit.Normal, WorldBackward, 1e-4) {
		t.Errorf("hit normal %v, want %v", hit.Normal, WorldBackward)
	}
	if !approx(hit.Distance(), 9, 1e-3) {
		t.Errorf("hit distance %v, want 9", hit.Distance())
	}

}

func TestRayTestMiss(t *testing.T) {

	box := NewBoundingAABB("box", 2, 2, 2)

	hit := RayTest(RayTestOptions{
		From:        NewVector3(5, 0, 10),
		To:          NewVector3(5, 0, -10),
		TestAgainst: NodeCollection{box},
	})

	if hit != nil {
		t.Fatal("ray passing beside the box should miss")
	}

	if RayTest(RayTestOptions{From: NewVector3(0, 0, 10), To: NewVector3(0, 0, -10)}) != nil {
		t.Fatal("a ray test with nothing to test against should return nil")
	}

}

func TestRayTestSortsByDistance(t *testing.T) {

	near := NewBoundingSphere("near", 1)
	near.SetLocalPosition(0, 0, 5)

	far := NewBoundingSphere("far", 1)
	far.SetLocalPosition(0, 0, -2)

	order := []INode{}

	hit := RayTest(RayTestOptions{
		From:        NewVector3(0, 0, 10),
		To:          NewVector3(0, 0, -10),
		TestAgainst: NodeCollection{far, near},
	}.WithOnHit(func(hit RayHit, index, count int) bool {
		if count != 2 {
			t.Fatalf("expected 2 hits, got %d", count)
		}
		order = append(order, hit.Object)
		return true
	}))

	if hit == nil || hit.Object != near {
		t.Fatal("the returned hit should be the nearest one")
	}
	if len(order) != 2 || order[0] != near || order[1] != far {
		t.Fatalf("hits should iterate nearest first, got %v", order)
	}

}

func TestRayTestOnHitEarlyStop(t *testing.T) {

	near := NewBoundingSphere("near", 1)
	near.SetLocalPosition(0, 0, 5)

	far := NewBoundingSphere("far", 1)
	far.SetLocalPosition(0, 0, -2)

	calls := 0

	RayTest(RayTestOptions{
		From:        NewVector3(0, 0, 10),
		To:          NewVector3(0, 0, -10),
		TestAgainst: NodeCollection{near, far},
	}.WithOnHit(func(hit RayHit, index, count int) bool {
		calls++
		return false
	}))

	if calls != 1 {
		t.Fatalf("returning false from OnHit should stop iteration, got %d calls", calls)
	}

}

func TestPointerRayTest(t *testing.T) {

	camera := NewCamera(640, 480)
	camera.SetLocalPosition(0, 0, 10)

	box := NewBoundingAABB("box", 2, 2, 2)

	hit := camera.PointerRayTest(PointerRayTestOptions{
		X:           320,
		Y:           240,
		TestAgainst: NodeCollection{box},
	})

	if hit == nil {
		t.Fatal("pointer ray through the viewport center should strike the box ahead")
	}
	if !vecApprox(hit.Position, NewVector3(0, 0, 1), 0.01) {
		t.Errorf("hit position %v, want (0, 0, 1)", hit.Position)
	}

	if camera.PointerRayTest(PointerRayTestOptions{X: 0, Y: 0, TestAgainst: NodeCollection{box}}) != nil {
		t.Error("pointer ray through the viewport corner should miss the box")
	}

}

func TestHitboxFollowsModelTransform(t *testing.T) {

	model := NewModel("cube", NewCubeMesh())
	hitbox := model.NewHitbox()

	model.SetLocalPosition(4, 0, 0)

	hit := RayTest(RayTestOptions{
		From:        NewVector3(4, 0, 10),
		To:          NewVector3(4, 0, -10),
		TestAgainst: NodeCollection{hitbox},
	})

	if hit == nil {
		t.Fatal("the hitbox should follow its model's transform")
	}
	if !vecApprox(hit.Position, NewVector3(4, 0, 0.5), 1e-3) {
		t.Errorf("hit position %v, want (4, 0, 0.5)", hit.Position)
	}

}
