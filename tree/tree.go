package tree

import (
	"fmt"
	"strings"
)

// Traverse takes the root of a tree, a bottomup boolean and an
// error-returning function that takes a node as parameter, and
// goes through the tree running the function with every node.
// Traverse calls the function with a node before calling it for
// its left subtree and then its right subtree (pre-order) if
// bottomup is false, and after both subtrees (post-order) if
// bottomup is true.
// If the call to the function returns an error, the traversing is
// aborted and the error is returned. Otherwise, when the traversing
// is over, nil is returned. A nil root is an empty tree and the
// function is never called.
func Traverse(root Node, bottomup bool, f func(Node) error) error {
	if root == nil {
		return nil
	}
	var err error
	if !bottomup {
		err = f(root)
		if err != nil {
			return err
		}
	}
	if d, ok := root.(*Decision); ok {
		err = Traverse(d.Left, bottomup, f)
		if err != nil {
			return err
		}
		err = Traverse(d.Right, bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		err = f(root)
	}
	return err
}

// Walk takes the root of a tree and a function and calls the
// function with every node in pre-order: first the node, then
// its left subtree, then its right subtree. This is the order
// in which trees are persisted and read back.
func Walk(root Node, f func(Node) error) error {
	return Traverse(root, false, f)
}

// Stats summarizes the shape of a tree
type Stats struct {
	Leaves    int
	Decisions int
	Depth     int
}

// StatsFor takes the root of a tree and returns its Stats. The
// depth of a single leaf is 0 and that of an empty tree is -1.
func StatsFor(root Node) Stats {
	s := Stats{Depth: depth(root)}
	Walk(root, func(n Node) error {
		switch n.(type) {
		case *Label:
			s.Leaves++
		case *Decision:
			s.Decisions++
		}
		return nil
	})
	return s
}

func depth(n Node) int {
	d, ok := n.(*Decision)
	if !ok {
		if n == nil {
			return -1
		}
		return 0
	}
	l, r := depth(d.Left), depth(d.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// String takes the root of a tree and returns a diagram of it
// with a line per node.
func String(root Node) string {
	if root == nil {
		return "(empty tree)\n"
	}
	return subtreeString(root)
}

func subtreeString(n Node) string {
	d, ok := n.(*Decision)
	if !ok {
		return fmt.Sprintf("[ %v ]\n", n)
	}
	result := fmt.Sprintf("{ %v }\n|\n", d)
	for i, subtree := range []Node{d.Left, d.Right} {
		for j, line := range strings.Split(subtreeString(subtree), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == 1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
