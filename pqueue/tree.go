package pqueue

import "github.com/katalvlaran/paretosp/weight"

// treeNode is one node of the ordered binary search tree backing the
// Tree representation, keyed by the full (W1, W2, Node) order. Unlike
// the sequence representation it carries no sentinels: an unbalanced
// BST has natural leftmost/rightmost bounds without needing dummy
// boundary values.
type treeNode[W weight.Integer] struct {
	label               weight.NodeLabel[W]
	left, right, parent *treeNode[W]
}

type tree[W weight.Integer] struct {
	root *treeNode[W]
	size int
}

func newTree[W weight.Integer]() *tree[W] {
	return &tree[W]{}
}

func (t *tree[W]) insert(label weight.NodeLabel[W]) *treeNode[W] {
	n := &treeNode[W]{label: label}
	if t.root == nil {
		t.root = n
		return n
	}
	cur := t.root
	for {
		if weight.LessNodeLabel(label, cur.label) {
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

// find locates the node carrying exactly label, which must be
// present.
func (t *tree[W]) find(label weight.NodeLabel[W]) *treeNode[W] {
	cur := t.root
	for cur != nil {
		if sameNodeLabel(cur.label, label) {
			return cur
		}
		if weight.LessNodeLabel(label, cur.label) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return nil
}

func successorPQ[W weight.Integer](n *treeNode[W]) *treeNode[W] {
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

func (t *tree[W]) remove(n *treeNode[W]) {
	switch {
	case n.left != nil && n.right != nil:
		succ := successorPQ(n)
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

func (t *tree[W]) leftmost() *treeNode[W] {
	if t.root == nil {
		return nil
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur
}

func (t *tree[W]) Init(seed []weight.NodeLabel[W]) {
	for _, nl := range seed {
		t.insert(nl)
		t.size++
	}
}

func (t *tree[W]) FindParetoMinima() []weight.NodeLabel[W] {
	first := t.leftmost()
	if first == nil {
		return nil
	}

	min := first.label
	var minima []weight.NodeLabel[W]
	for n := first; n != nil; n = successorPQ(n) {
		l := n.label
		if l.Label.W2 < min.Label.W2 || (l.Label.W1 == min.Label.W1 && l.Label.W2 == min.Label.W2) {
			min = l
			minima = append(minima, l)
		}
	}

	return minima
}

func (t *tree[W]) ApplyUpdates(updates []weight.Update[W]) {
	for _, u := range updates {
		switch u.Kind {
		case weight.Delete:
			if n := t.find(u.Payload); n != nil {
				t.remove(n)
				t.size--
			}
		default: // Insert
			t.insert(u.Payload)
			t.size++
		}
	}
}

func (t *tree[W]) Size() int {
	return t.size
}

func (t *tree[W]) Empty() bool {
	return t.size == 0
}
