package driver

import (
	"github.com/nihei9/sengen/grammar"
	"github.com/nihei9/sengen/grammar/symbol"
)

// Grammar is what a generator needs to know about a grammar. *grammar.Grammar implements it.
type Grammar interface {
	// StartSymbol returns a non-terminal every derivation begins with.
	StartSymbol() symbol.Symbol

	// Productions returns the alternatives of a non-terminal. When the non-terminal is undefined,
	// the second return value is false.
	Productions(lhs symbol.Symbol) ([]*grammar.Production, bool)
}

var _ Grammar = &grammar.Grammar{}

// grammarImpl holds productions a test or a tool assembles by hand, so it doesn't check anything.
type grammarImpl struct {
	start     symbol.Symbol
	lhs2Prods map[symbol.Symbol][]*grammar.Production
}

// NewGrammar makes a grammar from productions without the checks grammar.GrammarBuilder performs.
// A non-terminal listed in `lhs` with no productions is defined but has no alternatives.
func NewGrammar(start symbol.Symbol, lhs []symbol.Symbol, prods ...*grammar.Production) *grammarImpl {
	lhs2Prods := map[symbol.Symbol][]*grammar.Production{}
	for _, sym := range lhs {
		lhs2Prods[sym] = []*grammar.Production{}
	}
	for _, prod := range prods {
		lhs2Prods[prod.LHS()] = append(lhs2Prods[prod.LHS()], prod)
	}
	return &grammarImpl{
		start:     start,
		lhs2Prods: lhs2Prods,
	}
}

func (g *grammarImpl) StartSymbol() symbol.Symbol {
	return g.start
}

func (g *grammarImpl) Productions(lhs symbol.Symbol) ([]*grammar.Production, bool) {
	prods, ok := g.lhs2Prods[lhs]
	return prods, ok
}
