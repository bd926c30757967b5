package alphatree

// VisitFunc is called once per node during a traversal. Returning false
// stops the traversal early.
type VisitFunc func(node int) bool

// WalkPreOrder visits every node reachable from root (itself a raw node
// index, typically one of t.Roots()) in pre-order: a component is
// visited before any of its children. Requires the child list to have
// been built.
func (t *Tree) WalkPreOrder(root int, visit VisitFunc) {
	if t.childOffset == nil {
		contractViolation("WalkPreOrder called without a built child list")
	}
	t.walkPre(uint32(root), visit)
}

func (t *Tree) walkPre(node uint32, visit VisitFunc) bool {
	if !visit(int(node)) {
		return false
	}
	if t.IsLeaf(int(node)) {
		return true
	}
	for _, c := range t.ChildrenOf(int(node) - t.leafCount) {
		if !t.walkPre(c, visit) {
			return false
		}
	}

	return true
}

// WalkPostOrder visits every node reachable from root in post-order:
// every child is visited before its parent. Requires the child list to
// have been built.
func (t *Tree) WalkPostOrder(root int, visit VisitFunc) {
	if t.childOffset == nil {
		contractViolation("WalkPostOrder called without a built child list")
	}
	t.walkPost(uint32(root), visit)
}

func (t *Tree) walkPost(node uint32, visit VisitFunc) bool {
	if !t.IsLeaf(int(node)) {
		for _, c := range t.ChildrenOf(int(node) - t.leafCount) {
			if !t.walkPost(c, visit) {
				return false
			}
		}
	}

	return visit(int(node))
}

// Height returns the number of edges on the longest root-to-leaf path
// reachable from root. A single-node tree (root is itself a leaf with
// no children) has height 0. Requires the child list to have been
// built.
func (t *Tree) Height(root int) int {
	if t.childOffset == nil {
		contractViolation("Height called without a built child list")
	}

	return t.height(uint32(root))
}

func (t *Tree) height(node uint32) int {
	if t.IsLeaf(int(node)) {
		return 0
	}
	best := 0
	for _, c := range t.ChildrenOf(int(node) - t.leafCount) {
		if h := t.height(c) + 1; h > best {
			best = h
		}
	}

	return best
}
