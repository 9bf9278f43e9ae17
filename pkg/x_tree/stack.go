// file:kata/pkg/x_tree/stack.go
package x_tree

import "cmp"

//---------------------
// Traversal Stack
//---------------------

// nodeStack is the explicit stack used by the iterative walks. Its depth
// never exceeds the tree height.
type nodeStack[T cmp.Ordered] []*Node[T]

func (s *nodeStack[T]) push(n *Node[T]) { *s = append(*s, n) }

func (s *nodeStack[T]) pop() *Node[T] {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*s = old[:len(old)-1]
	return n
}

func (s nodeStack[T]) empty() bool { return len(s) == 0 }

// pushLeft pushes n and its chain of left children, ending at the minimum
// of n's subtree.
func (s *nodeStack[T]) pushLeft(n *Node[T]) {
	for ; n != nil; n = n.Left {
		s.push(n)
	}
}

// pushRight is the mirror of pushLeft.
func (s *nodeStack[T]) pushRight(n *Node[T]) {
	for ; n != nil; n = n.Right {
		s.push(n)
	}
}
