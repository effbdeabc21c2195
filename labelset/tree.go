package labelset

import "github.com/katalvlaran/paretosp/weight"

// treeNode is one node of the unbalanced binary search tree backing
// the Tree representation, keyed by W1. Add is phrased as
// delete-the-dominated-range-then-insert rather than
// overwrite-in-place. Removing a node with two children moves its
// successor's label into it, so node pointers are not held across a
// removal.
type treeNode[W weight.Integer] struct {
	label               weight.Label[W]
	left, right, parent *treeNode[W]
}

// tree is the ordered-tree representation of a node's label set.
type tree[W weight.Integer] struct {
	root *treeNode[W]
	size int // real labels only, excludes the two sentinels
}

func newTree[W weight.Integer]() *tree[W] {
	t := &tree[W]{}
	t.insert(weight.SentinelLow[W]())
	t.insert(weight.SentinelHigh[W]())

	return t
}

func (t *tree[W]) insert(label weight.Label[W]) *treeNode[W] {
	n := &treeNode[W]{label: label}
	if t.root == nil {
		t.root = n
		return n
	}
	cur := t.root
	for {
		if label.W1 < cur.label.W1 {
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				return n
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				return n
			}
			cur = cur.right
		}
	}
}

// floorLess returns the node with the greatest key strictly less
// than w1; it always exists because of the low sentinel.
func (t *tree[W]) floorLess(w1 W) *treeNode[W] {
	var best *treeNode[W]
	cur := t.root
	for cur != nil {
		if cur.label.W1 < w1 {
			best = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}

	return best
}

// ceilGE returns the node with the smallest key >= w1; it always
// exists because of the high sentinel.
func (t *tree[W]) ceilGE(w1 W) *treeNode[W] {
	var best *treeNode[W]
	cur := t.root
	for cur != nil {
		if cur.label.W1 >= w1 {
			best = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return best
}

// successor returns the in-order next node after n.
func successor[W weight.Integer](n *treeNode[W]) *treeNode[W] {
	if n.right != nil {
		cur := n.right
		for cur.left != nil {
			cur = cur.left
		}
		return cur
	}
	cur, p := n, n.parent
	for p != nil && cur == p.right {
		cur, p = p, p.parent
	}

	return p
}

// remove deletes n from the tree, standard BST delete with parent
// pointer maintenance.
func (t *tree[W]) remove(n *treeNode[W]) {
	switch {
	case n.left != nil && n.right != nil:
		succ := successor(n)
		n.label = succ.label
		t.remove(succ)
	case n.left != nil:
		t.replace(n, n.left)
	case n.right != nil:
		t.replace(n, n.right)
	default:
		t.replace(n, nil)
	}
}

func (t *tree[W]) replace(n, child *treeNode[W]) {
	if child != nil {
		child.parent = n.parent
	}
	switch {
	case n.parent == nil:
		t.root = child
	case n == n.parent.left:
		n.parent.left = child
	default:
		n.parent.right = child
	}
}

func (t *tree[W]) Add(newLabel weight.Label[W]) bool {
	pred := t.floorLess(newLabel.W1)
	if pred.label.W2 <= newLabel.W2 {
		return false
	}
	eq := successor(pred) // first node with key >= newLabel.W1
	if eq.label.W1 == newLabel.W1 && eq.label.W2 <= newLabel.W2 {
		return false
	}

	fnd := eq
	for fnd.label.W2 >= newLabel.W2 {
		fnd = successor(fnd)
	}

	// Remove every real label from eq up to (excluding) fnd, then
	// insert newLabel fresh. The doomed keys are collected first and
	// each is looked up again by its W1 (unique within the set), since
	// a removal may relocate labels between nodes.
	var doomed []W
	for cur := eq; cur != fnd; cur = successor(cur) {
		doomed = append(doomed, cur.label.W1)
	}
	for _, w1 := range doomed {
		t.remove(t.ceilGE(w1))
		t.size--
	}

	t.insert(newLabel)
	t.size++

	return true
}

// PendingDeletions mirrors Add's own computation so the two never
// disagree; see the Set interface doc.
func (t *tree[W]) PendingDeletions(newLabel weight.Label[W]) (deleted []weight.Label[W], dominated bool) {
	pred := t.floorLess(newLabel.W1)
	if pred.label.W2 <= newLabel.W2 {
		return nil, true
	}
	eq := successor(pred)
	if eq.label.W1 == newLabel.W1 && eq.label.W2 <= newLabel.W2 {
		return nil, true
	}
	fnd := eq
	for fnd.label.W2 >= newLabel.W2 {
		fnd = successor(fnd)
	}
	if eq == fnd {
		return nil, false
	}

	var out []weight.Label[W]
	for cur := eq; cur != fnd; cur = successor(cur) {
		out = append(out, cur.label)
	}

	return out, false
}

func (t *tree[W]) All() []weight.Label[W] {
	if t.size == 0 {
		return nil
	}
	out := make([]weight.Label[W], 0, t.size)
	first := t.leftmost()
	// skip the low sentinel
	for n := successor(first); n != nil; n = successor(n) {
		if isSentinel(n.label) {
			continue
		}
		out = append(out, n.label)
	}

	return out
}

func (t *tree[W]) leftmost() *treeNode[W] {
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur
}

func isSentinel[W weight.Integer](l weight.Label[W]) bool {
	return weight.Equal(l, weight.SentinelLow[W]()) || weight.Equal(l, weight.SentinelHigh[W]())
}

func (t *tree[W]) Len() int {
	return t.size
}
