package grammar

import (
	"fmt"
	"strings"

	"github.com/nihei9/sengen/grammar/symbol"
)

// Production is one alternative of a non-terminal. An empty RHS derives the empty string.
type Production struct {
	lhs symbol.Symbol
	rhs []symbol.Symbol
}

func NewProduction(lhs symbol.Symbol, rhs []symbol.Symbol) (*Production, error) {
	if lhs.IsNil() || !lhs.IsNonTerminal() {
		return nil, fmt.Errorf("LHS must be a non-terminal symbol; LHS: %v, RHS: %v", lhs, rhs)
	}
	for _, sym := range rhs {
		if sym.IsNil() {
			return nil, fmt.Errorf("a symbol of RHS must be a non-nil symbol; LHS: %v, RHS: %v", lhs, rhs)
		}
	}

	return &Production{
		lhs: lhs,
		rhs: rhs,
	}, nil
}

func (p *Production) LHS() symbol.Symbol {
	return p.lhs
}

// RHS returns the symbols of a production. Callers must not modify the returned slice.
func (p *Production) RHS() []symbol.Symbol {
	return p.rhs
}

func (p *Production) Len() int {
	return len(p.rhs)
}

func (p *Production) IsEmpty() bool {
	return len(p.rhs) == 0
}

func (p *Production) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v →", p.lhs)
	if p.IsEmpty() {
		fmt.Fprintf(&b, " ε")
	}
	for _, sym := range p.rhs {
		fmt.Fprintf(&b, " %v", sym.Escape())
	}
	return b.String()
}
