package folio3d

import (
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// whiteImage is the 1x1 texture triangles are rasterized with when a
// material carries no texture of its own. Allocated on first render so
// headless simulation never touches the GPU.
var whiteImage *ebiten.Image

// Camera represents a perspective camera in the scene that can render what
// it sees into its backing color texture. The texture (and any other GPU
// resource) is allocated lazily on first render, so a Camera that is only
// used for raycasting or simulation never allocates one.
type Camera struct {
	*Node

	fieldOfView float32
	near, far   float32
	width       int
	height      int

	resultColorTexture     *ebiten.Image
	cachedProjectionMatrix Matrix4
	updateProjectionMatrix bool
	disposed               bool

	// Scratch buffers reused between renders to avoid reallocating per frame.
	renderTriangles []renderTriangle
	vertexList      []ebiten.Vertex
	indexList       []uint16
}

// NewCamera creates a new Camera with the specified backing texture size, in
// pixels.
func NewCamera(w, h int) *Camera {
	return &Camera{
		Node:                   NewNode("Camera"),
		fieldOfView:            60,
		near:                   0.1,
		far:                    100,
		width:                  w,
		height:                 h,
		updateProjectionMatrix: true,
	}
}

// Type returns the NodeType for this object.
func (camera *Camera) Type() NodeType {
	return NodeTypeCamera
}

// AddChildren parents the provided children Nodes to the Camera.
func (camera *Camera) AddChildren(children ...INode) {
	camera.addChildren(camera, children...)
}

// Unparent unparents the Camera from its parent, removing it from the
// scenegraph.
func (camera *Camera) Unparent() {
	if camera.parent != nil {
		camera.parent.RemoveChildren(camera)
	}
}

// Size returns the width and height of the Camera's backing texture.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// Resize resizes the Camera's backing texture to the width and height
// provided, updating the projection (and so the aspect ratio) to match.
// Degenerate sizes (zero or negative width or height) are ignored.
func (camera *Camera) Resize(w, h int) {

	if w <= 0 || h <= 0 {
		return
	}

	if w == camera.width && h == camera.height {
		return
	}

	camera.width = w
	camera.height = h
	camera.updateProjectionMatrix = true

	if camera.resultColorTexture != nil {
		camera.resultColorTexture.Deallocate()
		camera.resultColorTexture = ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), &ebiten.NewImageOptions{Unmanaged: true})
	}

}

// AspectRatio returns the ratio of the Camera's backing texture width to its
// height.
func (camera *Camera) AspectRatio() float32 {
	return float32(camera.width) / float32(camera.height)
}

// FieldOfView returns the vertical field of view of the Camera, in degrees.
func (camera *Camera) FieldOfView() float32 {
	return camera.fieldOfView
}

// SetFieldOfView sets the vertical field of view of the Camera, in degrees.
func (camera *Camera) SetFieldOfView(fovY float32) {
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// Near returns the near plane distance of the Camera.
func (camera *Camera) Near() float32 {
	return camera.near
}

// Far returns the far plane distance of the Camera.
func (camera *Camera) Far() float32 {
	return camera.far
}

// SetFar sets the far plane distance of the Camera.
func (camera *Camera) SetFar(far float32) {
	camera.far = far
	camera.updateProjectionMatrix = true
}

// ViewMatrix returns the Camera's view matrix.
func (camera *Camera) ViewMatrix() Matrix4 {

	camPos := camera.WorldPosition().Invert()
	transform := NewMatrix4Translate(camPos.X, camPos.Y, camPos.Z)

	// We invert the rotation because the Camera looks down -Z.
	transform = transform.Mult(camera.LocalRotation().Transposed())

	return transform

}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {

	if camera.updateProjectionMatrix {
		camera.cachedProjectionMatrix = NewProjectionPerspective(
			camera.fieldOfView, camera.near, camera.far,
			float32(camera.width), float32(camera.height),
		)
		camera.updateProjectionMatrix = false
	}

	return camera.cachedProjectionMatrix

}

// WorldToScreenPixels transforms a 3D position in the world into a 2D pixel
// position on the Camera's backing texture, with the W result carrying the
// clip-space W (negative or zero when the point is behind the camera).
func (camera *Camera) WorldToScreenPixels(point Vector3) Vector4 {

	vp := camera.ViewMatrix().Mult(camera.Projection())
	out := vp.MultVecW(Vector4{point.X, point.Y, point.Z, 1})

	if out.W != 0 {
		out.X /= out.W
		out.Y /= out.W
	}

	w, h := float32(camera.width), float32(camera.height)
	out.X = (out.X + 1) * w / 2
	out.Y = (1 - out.Y) * h / 2

	return out

}

// ScreenToWorldPixels converts an x and y pixel position on the Camera's
// backing texture to a 3D point in front of the Camera. The depth argument
// controls how far from the Camera the returned point is, in world units.
func (camera *Camera) ScreenToWorldPixels(x, y int, depth float32) Vector3 {

	x = clampInt(x, 0, camera.width)
	y = clampInt(y, 0, camera.height)

	vec := Vector4{
		X: (float32(x)/float32(camera.width) - 0.5) * 2,
		Y: (float32(y)/float32(camera.height) - 0.5) * -2,
		Z: -1,
		W: 1,
	}

	unprojected := camera.ViewMatrix().Mult(camera.Projection()).Inverted().MultVecW(vec)

	unprojected.X /= unprojected.W
	unprojected.Y /= unprojected.W
	unprojected.Z /= unprojected.W

	// The depth isn't transformed reliably through the inverted projection,
	// so we rebuild the point from the camera position and the ray direction.
	camPos := camera.WorldPosition()
	dir := unprojected.Vector3().Sub(camPos).Unit()

	return camPos.Add(dir.Scale(depth))

}

// ColorTexture returns the Camera's final result color texture, allocating
// it if necessary.
func (camera *Camera) ColorTexture() *ebiten.Image {
	if camera.resultColorTexture == nil {
		camera.resultColorTexture = ebiten.NewImageWithOptions(image.Rect(0, 0, camera.width, camera.height), &ebiten.NewImageOptions{Unmanaged: true})
	}
	return camera.resultColorTexture
}

// Clear clears the Camera's backing texture with the clear color provided.
func (camera *Camera) Clear(clearColor Color) {
	r, g, b, a := clearColor.RGBA64()
	camera.ColorTexture().Fill(toNRGBA(r, g, b, a))
}

type renderTriangle struct {
	screen [3]Vector4
	color  Color
	depth  float32
}

// RenderScene renders the provided Scene into the Camera's backing texture:
// visible Models are flat-shaded against the Scene's lights, depth-sorted
// back to front, and rasterized in one batch.
func (camera *Camera) RenderScene(scene *Scene) {

	if camera.disposed {
		return
	}

	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(toNRGBA(1, 1, 1, 1))
	}

	lights := scene.Lights()
	for _, light := range lights {
		light.begin()
	}

	camPos := camera.WorldPosition()
	camera.renderTriangles = camera.renderTriangles[:0]

	for _, model := range scene.Root.SearchTree().Models() {

		if !model.Visible() || model.Mesh == nil {
			continue
		}

		material := model.Mesh.Material
		transform := model.Transform()

		// Normals shouldn't take model translation into account.
		rotation := transform
		rotation.SetRow(3, Vector4{0, 0, 0, 1})

		for _, tri := range model.Mesh.Triangles {

			normal := rotation.MultVec(tri.Normal).Unit()
			center := transform.MultVec(tri.Center)

			if material.BackfaceCulling && normal.Dot(camPos.Sub(center)) <= 0 {
				continue
			}

			shade := material.Color
			if !material.Shadeless {
				var r, g, b float32
				for _, light := range lights {
					lr, lg, lb := light.Light(normal, center)
					r += lr
					g += lg
					b += lb
				}
				shade = Color{
					R: material.Color.R * model.Color.R * r,
					G: material.Color.G * model.Color.G * g,
					B: material.Color.B * model.Color.B * b,
					A: material.Color.A * model.Color.A,
				}.Clamped()
			}

			rt := renderTriangle{color: shade}
			behind := true

			for i, vertIndex := range tri.VertexIndices {
				world := transform.MultVec(model.Mesh.VertexPositions[vertIndex])
				rt.screen[i] = camera.WorldToScreenPixels(world)
				if rt.screen[i].W > camera.near {
					behind = false
				}
			}

			if behind {
				continue
			}

			rt.depth = camPos.DistanceSquaredTo(center)
			camera.renderTriangles = append(camera.renderTriangles, rt)

		}

	}

	// Painter's algorithm; draw the farthest triangles first.
	sort.Slice(camera.renderTriangles, func(i, j int) bool {
		return camera.renderTriangles[i].depth > camera.renderTriangles[j].depth
	})

	camera.vertexList = camera.vertexList[:0]
	camera.indexList = camera.indexList[:0]

	for _, rt := range camera.renderTriangles {
		base := uint16(len(camera.vertexList))
		for i := 0; i < 3; i++ {
			camera.vertexList = append(camera.vertexList, ebiten.Vertex{
				DstX:   rt.screen[i].X,
				DstY:   rt.screen[i].Y,
				SrcX:   0,
				SrcY:   0,
				ColorR: rt.color.R,
				ColorG: rt.color.G,
				ColorB: rt.color.B,
				ColorA: rt.color.A,
			})
		}
		camera.indexList = append(camera.indexList, base, base+1, base+2)
	}

	if len(camera.indexList) > 0 {
		camera.ColorTexture().DrawTriangles(camera.vertexList, camera.indexList, whiteImage, nil)
	}

}

// DebugDrawText draws debug text onto the Camera's backing texture at the
// position given.
func (camera *Camera) DebugDrawText(screen *ebiten.Image, txtStr string, posX, posY int, color Color) {
	text.Draw(screen, txtStr, basicfont.Face7x13, posX, posY, toNRGBA(color.RGBA64()))
}

// Disposed returns whether the Camera's backing texture has been released.
func (camera *Camera) Disposed() bool {
	return camera.disposed
}

// Dispose releases the Camera's backing texture, if one was ever allocated.
// Calling Dispose more than once is a no-op.
func (camera *Camera) Dispose() {
	if camera.disposed {
		return
	}
	camera.disposed = true
	if camera.resultColorTexture != nil {
		camera.resultColorTexture.Deallocate()
		camera.resultColorTexture = nil
	}
}
