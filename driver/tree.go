package driver

import (
	"fmt"
	"io"

	"github.com/nihei9/sengen/grammar/symbol"
)

// Node is a node of a derivation tree. A terminal node has no children, and so does a non-terminal
// that was rewritten by an empty alternative.
type Node struct {
	Symbol   symbol.Symbol
	Children []*Node
}

// Leaves returns the terminals under a node from left to right, which make up the derived sentence.
func (n *Node) Leaves() []symbol.Symbol {
	leaves := []symbol.Symbol{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Symbol.IsTerminal() {
			leaves = append(leaves, n.Symbol)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return leaves
}

func PrintTree(w io.Writer, node *Node) {
	printTree(w, node, "", "")
}

func printTree(w io.Writer, node *Node, ruledLine string, childRuledLinePrefix string) {
	if node == nil {
		return
	}

	if node.Symbol.IsTerminal() {
		fmt.Fprintf(w, "%v%#v\n", ruledLine, node.Symbol.Text())
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, node.Symbol)
	}

	num := len(node.Children)
	for i, child := range node.Children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}
