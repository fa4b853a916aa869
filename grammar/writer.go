package grammar

import (
	"fmt"
	"io"
	"strings"
)

// Write writes a grammar in the grammar file format, one block per line. Parsing the output yields
// an equivalent grammar.
func (g *Grammar) Write(w io.Writer) error {
	var b strings.Builder
	for _, lhs := range g.nonTerminals {
		fmt.Fprintf(&b, "{ %v", lhs.Escape())
		for _, prod := range g.lhs2Prods[lhs] {
			for _, sym := range prod.rhs {
				fmt.Fprintf(&b, " %v", sym.Escape())
			}
			fmt.Fprintf(&b, " ;")
		}
		fmt.Fprintf(&b, " }\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
