// file:kata/pkg/x_tree/node.go
package x_tree

import "cmp"

//---------------------
// Node
//---------------------

// Node is one element of a binary search tree. Everything under Left is
// strictly less than Value, everything under Right strictly greater.
// Parents own their children exclusively; there are no cycles.
type Node[T cmp.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T cmp.Ordered](v T) *Node[T] {
	return &Node[T]{Value: v}
}

//---------------------
// Construction
//---------------------

// Insert places v into the tree rooted at root and returns the root
// (a new one when root is nil). Values already present are ignored.
func Insert[T cmp.Ordered](root *Node[T], v T) *Node[T] {
	if root == nil {
		return NewNode(v)
	}

	cur := root
	for {
		switch c := cmp.Compare(v, cur.Value); {
		case c < 0:
			if cur.Left == nil {
				cur.Left = NewNode(v)
				return root
			}
			cur = cur.Left
		case c > 0:
			if cur.Right == nil {
				cur.Right = NewNode(v)
				return root
			}
			cur = cur.Right
		default:
			return root
		}
	}
}

// FromValues builds a tree by inserting values in the given order.
func FromValues[T cmp.Ordered](values ...T) *Node[T] {
	var root *Node[T]
	for _, v := range values {
		root = Insert(root, v)
	}
	return root
}

// Len returns the number of nodes under root.
func Len[T cmp.Ordered](root *Node[T]) int {
	n := 0
	for range All(root) {
		n++
	}
	return n
}
