// file:kata/pkg/x_tree/dump.go
package x_tree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

type dumpItem[T cmp.Ordered] struct {
	n     *Node[T]
	depth int
	side  string
}

// Dump writes a visual tree representation to w, one node per line,
// children indented under their parent and tagged L or R.
func Dump[T cmp.Ordered](w io.Writer, root *Node[T]) {
	if root == nil {
		fmt.Fprintln(w, "EMPTY")
		return
	}

	stack := []dumpItem[T]{{n: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fmt.Fprintf(w, "%s%s%v\n", dumpPre(it.depth), it.side, it.n.Value)

		// right first so the left child is printed first
		if it.n.Right != nil {
			stack = append(stack, dumpItem[T]{n: it.n.Right, depth: it.depth + 1, side: "R "})
		}
		if it.n.Left != nil {
			stack = append(stack, dumpItem[T]{n: it.n.Left, depth: it.depth + 1, side: "L "})
		}
	}
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "-- "
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__ ")
	return b.String()
}
