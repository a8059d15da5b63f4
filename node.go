package folio3d

// NodeType represents a Node's type. Node types are categorized, and can be
// straightforwardly checked against each other using NodeType.Is().
type NodeType string

const (
	NodeTypeNode   NodeType = "Node"       // NodeTypeNode represents any generic node
	NodeTypeModel  NodeType = "NodeModel"  // NodeTypeModel represents specifically a Model
	NodeTypeCamera NodeType = "NodeCamera" // NodeTypeCamera represents specifically a Camera

	NodeTypeBoundingObject NodeType = "NodeBounding"       // NodeTypeBoundingObject represents any generic bounding object
	NodeTypeBoundingAABB   NodeType = "NodeBoundingAABB"   // NodeTypeBoundingAABB represents specifically a BoundingAABB
	NodeTypeBoundingSphere NodeType = "NodeBoundingSphere" // NodeTypeBoundingSphere represents specifically a BoundingSphere

	NodeTypeLight            NodeType = "NodeLight"            // NodeTypeLight represents any generic light
	NodeTypeAmbientLight     NodeType = "NodeLightAmbient"     // NodeTypeAmbientLight represents specifically an AmbientLight
	NodeTypePointLight       NodeType = "NodeLightPoint"       // NodeTypePointLight represents specifically a PointLight
	NodeTypeDirectionalLight NodeType = "NodeLightDirectional" // NodeTypeDirectionalLight represents specifically a DirectionalLight
)

// Is returns true if a NodeType satisfies another NodeType category. A
// specific node type can be said to satisfy a more general category (i.e.
// NodeTypeBoundingAABB.Is(NodeTypeBoundingObject) returns true).
func (nt NodeType) Is(other NodeType) bool {
	if nt == other {
		return true
	}
	return len(nt) >= len(other) && nt[:len(other)] == other
}

// INode represents an object that exists in 3D space and can be positioned
// relative to an origin point. All nodes in a scene implement INode; Model,
// Camera, lights, and bounding objects all embed Node to do so.
type INode interface {
	// Name returns the object's name.
	Name() string
	// SetName sets the object's name.
	SetName(name string)
	// Type returns the NodeType for this object.
	Type() NodeType

	// Parent returns the Node's parent. If the Node has no parent, this will
	// return nil.
	Parent() INode
	setParent(INode)
	// Unparent unparents the Node from its parent, removing it from the
	// scenegraph.
	Unparent()
	// Root returns the root node in the hierarchy (i.e. the node that has no
	// parent above it).
	Root() INode
	// Children returns the Node's children as a slice.
	Children() []INode
	// AddChildren parents the provided children Nodes to the Node, inheriting
	// its transformations and being under it in the scenegraph hierarchy.
	AddChildren(...INode)
	// RemoveChildren removes the provided children from the Node.
	RemoveChildren(...INode)

	// Transform returns a Matrix4 indicating the global position, rotation,
	// and scale of the object, transforming it by any parents'.
	Transform() Matrix4
	dirtyTransform()

	// LocalPosition returns the object's local position as a Vector3.
	LocalPosition() Vector3
	// SetLocalPosition sets the object's local position.
	SetLocalPosition(x, y, z float32)
	// SetLocalPositionVec sets the object's local position from a Vector3.
	SetLocalPositionVec(position Vector3)
	// LocalScale returns the object's local scale as a Vector3.
	LocalScale() Vector3
	// SetLocalScale sets the object's local scale.
	SetLocalScale(w, h, d float32)
	// LocalRotation returns the object's local rotation Matrix4.
	LocalRotation() Matrix4
	// SetLocalRotation sets the object's local rotation from a Matrix4.
	SetLocalRotation(rotation Matrix4)

	// WorldPosition returns the object's world position as a Vector3.
	WorldPosition() Vector3
	// SetWorldPositionVec sets the object's world position from a Vector3.
	SetWorldPositionVec(position Vector3)

	// Visible returns whether the object is visible.
	Visible() bool
	// SetVisible sets the object's visibility; if recursive is true, the
	// visibility is applied to all children as well.
	SetVisible(visible, recursive bool)

	// SearchTree returns a NodeFilter to search through the Node's hierarchy,
	// including the Node itself.
	SearchTree() NodeFilter
}

var nodeID uint64 = 0

// Node represents a minimal struct that fully implements the INode
// interface. Model, Camera, lights, and bounding objects embed Node into
// their structs to easily implement INode.
type Node struct {
	id               uint64
	name             string
	position         Vector3
	scale            Vector3
	rotation         Matrix4
	visible          bool
	children         []INode
	parent           INode
	cachedTransform  Matrix4
	isTransformDirty bool
}

// NewNode returns a new Node with the name provided.
func NewNode(name string) *Node {

	node := &Node{
		id:               nodeID,
		name:             name,
		scale:            Vector3{1, 1, 1},
		rotation:         NewMatrix4(),
		children:         []INode{},
		visible:          true,
		isTransformDirty: true,
		// Set just in case a transform getter is called before anything is cached
		cachedTransform: NewMatrix4(),
	}

	nodeID++

	return node

}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// SetName sets the object's name.
func (node *Node) SetName(name string) {
	node.name = name
}

// Type returns the NodeType for this object.
func (node *Node) Type() NodeType {
	return NodeTypeNode
}

// Transform returns a Matrix4 indicating the global position, rotation, and
// scale of the object, transforming it by any parents'. If there's no change
// between the previous Transform() call and this one, Transform() returns a
// cached version of the transform for efficiency.
func (node *Node) Transform() Matrix4 {

	// T * R * S * O

	if !node.isTransformDirty {
		return node.cachedTransform
	}

	transform := NewMatrix4Scale(node.scale.X, node.scale.Y, node.scale.Z)
	transform = transform.Mult(node.rotation)
	transform = transform.Mult(NewMatrix4Translate(node.position.X, node.position.Y, node.position.Z))

	if node.parent != nil {
		transform = transform.Mult(node.parent.Transform())
	}

	node.cachedTransform = transform
	node.isTransformDirty = false

	return transform

}

// dirtyTransform sets this Node and all recursive children's transforms as
// dirty, indicating they need to be rebuilt. This is called when modifying
// the transformation properties (position, scale, rotation) of the Node.
func (node *Node) dirtyTransform() {

	node.isTransformDirty = true

	for _, child := range node.children {
		child.dirtyTransform()
	}

}

// LocalPosition returns the object's local position (position relative to
// its parent). If the object has no parent, the position will be relative to
// world origin.
func (node *Node) LocalPosition() Vector3 {
	return node.position
}

// SetLocalPosition sets the object's local position.
func (node *Node) SetLocalPosition(x, y, z float32) {
	node.position = Vector3{x, y, z}
	node.dirtyTransform()
}

// SetLocalPositionVec sets the object's local position from the Vector3 provided.
func (node *Node) SetLocalPositionVec(position Vector3) {
	node.position = position
	node.dirtyTransform()
}

// LocalScale returns the object's local scale.
func (node *Node) LocalScale() Vector3 {
	return node.scale
}

// SetLocalScale sets the object's local scale.
func (node *Node) SetLocalScale(w, h, d float32) {
	node.scale = Vector3{w, h, d}
	node.dirtyTransform()
}

// LocalRotation returns the object's local rotation Matrix4.
func (node *Node) LocalRotation() Matrix4 {
	return node.rotation
}

// SetLocalRotation sets the object's local rotation from the Matrix4 provided.
func (node *Node) SetLocalRotation(rotation Matrix4) {
	node.rotation = rotation
	node.dirtyTransform()
}

// WorldPosition returns the object's world position (position relative to
// the world origin point of {0, 0, 0}).
func (node *Node) WorldPosition() Vector3 {
	// We pull the position from the transform's translation row so we don't
	// have to decompose the matrix.
	return node.Transform().Row(3).Vector3()
}

// WorldScale returns the object's absolute world scale as a Vector3,
// pulled from the lengths of the world transform's basis rows.
func (node *Node) WorldScale() Vector3 {
	transform := node.Transform()
	return Vector3{
		X: transform.Row(0).Vector3().Magnitude(),
		Y: transform.Row(1).Vector3().Magnitude(),
		Z: transform.Row(2).Vector3().Magnitude(),
	}
}

// SetWorldPositionVec sets the object's world position from the Vector3 provided.
func (node *Node) SetWorldPositionVec(position Vector3) {

	if node.parent != nil {
		parentTransform := node.parent.Transform()
		position = parentTransform.Inverted().MultVec(position)
	}

	node.position = position
	node.dirtyTransform()

}

// Parent returns the Node's parent. If the Node has no parent, this will
// return nil.
func (node *Node) Parent() INode {
	return node.parent
}

func (node *Node) setParent(parent INode) {
	node.parent = parent
}

// Unparent unparents the Node from its parent, removing it from the scenegraph.
func (node *Node) Unparent() {
	if node.parent != nil {
		node.parent.RemoveChildren(node)
	}
}

// Root returns the root node in the hierarchy (i.e. the node that has no
// parent above it).
func (node *Node) Root() INode {
	if node.parent == nil {
		return node
	}
	return node.parent.Root()
}

// Children returns the Node's children as a slice copy.
func (node *Node) Children() []INode {
	return append([]INode{}, node.children...)
}

// addChildren exists for nodes that embed Node, so the owning node (rather
// than the embedded Node) becomes the parent.
func (node *Node) addChildren(parent INode, children ...INode) {

	for _, child := range children {
		child.Unparent()
		child.setParent(parent)
		child.dirtyTransform()
		node.children = append(node.children, child)
	}

}

// AddChildren parents the provided children Nodes to the Node, inheriting
// its transformations and being under it in the scenegraph hierarchy. If the
// children are already parented to other Nodes, they are unparented first.
func (node *Node) AddChildren(children ...INode) {
	node.addChildren(node, children...)
}

// RemoveChildren removes the provided children from the Node.
func (node *Node) RemoveChildren(children ...INode) {

	for _, child := range children {

		for i, c := range node.children {
			if c == child {
				child.setParent(nil)
				child.dirtyTransform()
				node.children[i] = nil
				node.children = append(node.children[:i], node.children[i+1:]...)
				break
			}
		}

	}

}

// Visible returns whether the object is visible.
func (node *Node) Visible() bool {
	return node.visible
}

// SetVisible sets the object's visibility; if recursive is true, the
// visibility is applied to all children as well.
func (node *Node) SetVisible(visible, recursive bool) {
	node.visible = visible
	if recursive {
		for _, child := range node.children {
			child.SetVisible(visible, true)
		}
	}
}

// SearchTree returns a NodeFilter to search through the Node's hierarchy,
// including the Node itself.
func (node *Node) SearchTree() NodeFilter {
	return NodeFilter{start: node}
}
