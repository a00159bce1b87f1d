package ordmap

import "iter"

// Branch tells which link of its parent a node hangs from.
type Branch int8

const (
	RootBranch Branch = iota
	LeftBranch
	RightBranch
)

func (b Branch) String() string {
	switch b {
	case LeftBranch:
		return "L"
	case RightBranch:
		return "R"
	}
	return "*"
}

// NodeView is a read-only snapshot of one tree node, used by clients which
// display or analyse the shape of a map.
type NodeView[K any] struct {
	Key      K
	Size     int // keys in the subtree rooted here
	Depth    int // edges from the root
	Branch   Branch
	HasLeft  bool
	HasRight bool
}

// Shape returns an iterator over the nodes of the tree in pre-order (node,
// left subtree, right subtree).
//
// The map must not be modified during iteration.
func (m *OrderedMap[K, V]) Shape() iter.Seq[NodeView[K]] {
	return func(yield func(NodeView[K]) bool) {
		if m.IsEmpty() {
			return
		}
		type frame struct {
			n      *node[K, V]
			depth  int
			branch Branch
		}
		stack := []frame{{n: m.root, branch: RootBranch}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			view := NodeView[K]{
				Key:      f.n.key,
				Size:     f.n.size,
				Depth:    f.depth,
				Branch:   f.branch,
				HasLeft:  f.n.left != nil,
				HasRight: f.n.right != nil,
			}
			if !yield(view) {
				return
			}
			if f.n.right != nil {
				stack = append(stack, frame{n: f.n.right, depth: f.depth + 1, branch: RightBranch})
			}
			if f.n.left != nil {
				stack = append(stack, frame{n: f.n.left, depth: f.depth + 1, branch: LeftBranch})
			}
		}
	}
}
