package folio3d

import (
	"sort"

	"github.com/chewxy/math32"
)

// RayHit represents the result of a raycast test.
type RayHit struct {
	Object   INode   // Object is the bounding object that was struck by the raycast.
	Position Vector3 // Position is the world position where the object was struck.
	Normal   Vector3 // Normal is the normal of the surface the ray struck.
	from     Vector3 // The starting position of the ray.
}

// Distance returns the distance from the RayHit's originating ray source
// point to the struck position.
func (r RayHit) Distance() float32 {
	return r.from.DistanceTo(r.Position)
}

func boundingSphereRayTest(center Vector3, radius float32, from, to Vector3) (RayHit, bool) {

	m := from.Sub(center)
	vec := to.Sub(from)
	normal := vec.Unit()
	b := m.Dot(normal)
	c := m.Dot(m) - radius*radius

	if c > 0 && b > 0 {
		return RayHit{}, false
	}

	discr := b*b - c

	if discr < 0 {
		return RayHit{}, false
	}

	t := -b - math32.Sqrt(discr)

	if t < 0 {
		t = 0
	}

	if t*t > vec.MagnitudeSquared() {
		return RayHit{}, false
	}

	strikePos := from.Add(normal.Scale(t))

	return RayHit{
		Position: strikePos,
		from:     from,
		Normal:   strikePos.Sub(center).Unit(),
	}, true

}

func boundingAABBRayTest(from, to Vector3, test *BoundingAABB) (RayHit, bool) {

	rayLine := to.Sub(from)
	rayLineUnit := rayLine.Unit()

	pos := test.WorldPosition()
	dim := test.WorldDimensions()

	t1 := (dim.Min.X + pos.X - from.X) / rayLineUnit.X
	t2 := (dim.Max.X + pos.X - from.X) / rayLineUnit.X
	t3 := (dim.Min.Y + pos.Y - from.Y) / rayLineUnit.Y
	t4 := (dim.Max.Y + pos.Y - from.Y) / rayLineUnit.Y
	t5 := (dim.Min.Z + pos.Z - from.Z) / rayLineUnit.Z
	t6 := (dim.Max.Z + pos.Z - from.Z) / rayLineUnit.Z

	tmin := math32.Max(math32.Max(math32.Min(t1, t2), math32.Min(t3, t4)), math32.Min(t5, t6))
	tmax := math32.Min(math32.Min(math32.Max(t1, t2), math32.Max(t3, t4)), math32.Max(t5, t6))

	if math32.IsNaN(tmin) || math32.IsNaN(tmax) {
		return RayHit{}, false
	}

	if tmin < 0 || tmin > tmax {
		return RayHit{}, false
	}

	if tmin*tmin > rayLine.MagnitudeSquared() {
		return RayHit{}, false
	}

	contact := from.Add(rayLineUnit.Scale(tmin))

	return RayHit{
		Object:   test,
		Position: contact,
		Normal:   test.normalFromContactPoint(contact),
		from:     from,
	}, true

}

// RayTestOptions is a struct designed to control what options to use when
// performing a ray test.
type RayTestOptions struct {
	From Vector3 // The position to cast the ray from.
	To   Vector3 // The position to cast the ray to.

	// TestAgainst is used to specify a selection of bounding objects to test
	// against - this can be either a NodeFilter or a NodeCollection.
	TestAgainst NodeIterator

	// OnHit is a callback called for each hit the cast ray returns, sorted
	// by distance from the starting point. index is the index of the hit out
	// of the total number of hits found (count). The returned boolean
	// indicates whether to keep iterating through the found hits, or to stop
	// after the current one.
	OnHit func(hit RayHit, index, count int) bool
}

// WithOnHit sets the callback to be called for each hit the cast ray
// returns, sorted by distance from the starting point.
func (r RayTestOptions) WithOnHit(onHit func(hit RayHit, index, count int) bool) RayTestOptions {
	r.OnHit = onHit
	return r
}

// WithTestAgainst sets the iterator of bounding objects the ray is tested against.
func (r RayTestOptions) WithTestAgainst(iterator NodeIterator) RayTestOptions {
	r.TestAgainst = iterator
	return r
}

// RayTest casts a ray from the options' From world position to its To world
// position, testing against the bounding objects its TestAgainst iterator
// provides. The function returns the closest hit; if nothing was struck, it
// returns nil.
func RayTest(options RayTestOptions) *RayHit {

	hits := []RayHit{}

	if options.TestAgainst == nil {
		return nil
	}

	options.TestAgainst.ForEach(func(node INode) bool {

		node.Transform() // Make sure the transform is updated before the test

		switch test := node.(type) {

		case *BoundingSphere:

			if result, ok := boundingSphereRayTest(test.WorldPosition(), test.WorldRadius(), options.From, options.To); ok {
				result.Object = test
				hits = append(hits, result)
			}

		case *BoundingAABB:

			if result, ok := boundingAABBRayTest(options.From, options.To, test); ok {
				hits = append(hits, result)
			}

		}

		return true

	})

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Position.DistanceSquaredTo(hits[i].from) < hits[j].Position.DistanceSquaredTo(hits[j].from)
	})

	if options.OnHit != nil {
		for i, hit := range hits {
			if !options.OnHit(hit, i, len(hits)) {
				break
			}
		}
	}

	if len(hits) > 0 {
		return &hits[0]
	}
	return nil

}

// PointerRayTestOptions is a struct designed to control what options to use
// when performing a ray test from the Camera through a pointer position
// onscreen.
type PointerRayTestOptions struct {
	// X and Y are the pointer's position in pixels, relative to the camera's
	// backing texture.
	X, Y int
	// Depth is the distance to extend the ray in world units; defaults to
	// the Camera's far plane.
	Depth float32
	// TestAgainst is used to specify a selection of bounding objects to test
	// against - this can be either a NodeFilter or a NodeCollection.
	TestAgainst NodeIterator
	// OnHit is a callback called for each hit the cast ray returns, sorted
	// by distance from the camera's position.
	OnHit func(hit RayHit, index, count int) bool
}

// PointerRayTest casts a ray forward from the pointer's position onscreen,
// testing against the bounding objects found in the PointerRayTestOptions
// struct. Unlike reading the cursor from the windowing system directly, the
// pointer position is passed in explicitly, so the test works with latched
// input state and in headless tests. The function returns the closest hit;
// if nothing was struck, it returns nil.
func (camera *Camera) PointerRayTest(options PointerRayTestOptions) *RayHit {

	if options.Depth <= 0 {
		options.Depth = camera.far
	}

	from := camera.WorldPosition()
	to := camera.ScreenToWorldPixels(options.X, options.Y, options.Depth)

	return RayTest(RayTestOptions{
		From:        from,
		To:          to,
		OnHit:       options.OnHit,
		TestAgainst: options.TestAgainst,
	})

}
