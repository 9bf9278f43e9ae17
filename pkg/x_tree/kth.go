// file:kata/pkg/x_tree/kth.go
package x_tree

import (
	"cmp"
	"iter"

	"github.com/rskv-p/kata/pkg/x_err"
)

//---------------------
// Selection
//---------------------

// KthSmallest returns the k-th smallest value in the tree (k=1 is the
// minimum). It walks in order with an explicit stack, so it runs in
// O(h+k) time and O(h) extra space for a tree of height h.
//
// A k below 1, or above the number of nodes (any k for an empty tree),
// yields an error wrapping x_err.ErrInvalidArgument.
func KthSmallest[T cmp.Ordered](root *Node[T], k int) (T, error) {
	var zero T
	if k <= 0 {
		return zero, x_err.InvalidArgument("k must be >= 1, got %d", k)
	}

	var stack nodeStack[T]
	cur := root
	remaining := k
	for cur != nil || !stack.empty() {
		stack.pushLeft(cur)

		n := stack.pop()
		remaining--
		if remaining == 0 {
			return n.Value, nil
		}
		cur = n.Right
	}

	return zero, x_err.InvalidArgument("k=%d exceeds tree size %d", k, k-remaining)
}

// KthLargest returns the k-th largest value (k=1 is the maximum), walking
// the tree in reverse order. Errors match KthSmallest.
func KthLargest[T cmp.Ordered](root *Node[T], k int) (T, error) {
	var zero T
	if k <= 0 {
		return zero, x_err.InvalidArgument("k must be >= 1, got %d", k)
	}

	var stack nodeStack[T]
	cur := root
	remaining := k
	for cur != nil || !stack.empty() {
		stack.pushRight(cur)

		n := stack.pop()
		remaining--
		if remaining == 0 {
			return n.Value, nil
		}
		cur = n.Left
	}

	return zero, x_err.InvalidArgument("k=%d exceeds tree size %d", k, k-remaining)
}

//---------------------
// Ordered Walk
//---------------------

// All yields the tree's values in ascending order.
func All[T cmp.Ordered](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack nodeStack[T]
		cur := root
		for cur != nil || !stack.empty() {
			stack.pushLeft(cur)
			n := stack.pop()
			if !yield(n.Value) {
				return
			}
			cur = n.Right
		}
	}
}
