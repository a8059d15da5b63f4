package folio3d

// NodeIterator is an interface that allows iterating over a collection of
// Nodes. NodeFilter and NodeCollection both implement NodeIterator, so
// either can be used where a selection of Nodes is required (raycasting, for
// example).
type NodeIterator interface {
	ForEach(func(node INode) bool)
}

// NodeCollection is a simple slice of Nodes that implements NodeIterator.
type NodeCollection []INode

// ForEach calls the provided function for each Node in the collection. If
// the function returns false, iteration stops.
func (nc NodeCollection) ForEach(callback func(node INode) bool) {
	for _, node := range nc {
		if !callback(node) {
			return
		}
	}
}

// NodeFilter represents a lazy, depth-first search over a node hierarchy.
// Filters narrow the search without allocating intermediate slices; the
// search is executed when ForEach, Nodes, or First is called.
type NodeFilter struct {
	start   INode
	filters []func(INode) bool
}

// ByFunc returns a clone of the NodeFilter, with an additional filter
// function. Only Nodes for which the function returns true are kept.
func (nf NodeFilter) ByFunc(filterFunc func(node INode) bool) NodeFilter {
	nf.filters = append(append([]func(INode) bool{}, nf.filters...), filterFunc)
	return nf
}

// ByName returns a clone of the NodeFilter, filtering to Nodes with the
// exact name provided.
func (nf NodeFilter) ByName(name string) NodeFilter {
	return nf.ByFunc(func(node INode) bool { return node.Name() == name })
}

// ByType returns a clone of the NodeFilter, filtering to Nodes satisfying
// the NodeType category given.
func (nf NodeFilter) ByType(nodeType NodeType) NodeFilter {
	return nf.ByFunc(func(node INode) bool { return node.Type().Is(nodeType) })
}

// ForEach runs the search, calling the provided function for each matching
// Node. If the function returns false, the search stops early.
func (nf NodeFilter) ForEach(callback func(node INode) bool) {
	nf.walk(nf.start, callback)
}

func (nf NodeFilter) walk(node INode, callback func(node INode) bool) bool {

	ok := true
	for _, filter := range nf.filters {
		if !filter(node) {
			ok = false
			break
		}
	}

	if ok && !callback(node) {
		return false
	}

	for _, child := range node.Children() {
		if !nf.walk(child, callback) {
			return false
		}
	}

	return true

}

// Nodes runs the search and returns the matching Nodes as a NodeCollection.
func (nf NodeFilter) Nodes() NodeCollection {
	out := NodeCollection{}
	nf.ForEach(func(node INode) bool {
		out = append(out, node)
		return true
	})
	return out
}

// First runs the search and returns the first matching Node, or nil if none match.
func (nf NodeFilter) First() INode {
	var result INode
	nf.ForEach(func(node INode) bool {
		result = node
		return false
	})
	return result
}

// Count runs the search and returns the number of matching Nodes.
func (nf NodeFilter) Count() int {
	count := 0
	nf.ForEach(func(node INode) bool {
		count++
		return true
	})
	return count
}

// Models runs the search and returns all matching Models.
func (nf NodeFilter) Models() []*Model {
	out := []*Model{}
	nf.ByType(NodeTypeModel).ForEach(func(node INode) bool {
		out = append(out, node.(*Model))
		return true
	})
	return out
}

// BoundingObjects runs the search and returns all matching bounding objects
// (BoundingAABBs and BoundingSpheres) as a NodeCollection, ready for ray
// testing.
func (nf NodeFilter) BoundingObjects() NodeCollection {
	return nf.ByType(NodeTypeBoundingObject).Nodes()
}
