package grammar

import (
	"io"

	verr "github.com/nihei9/sengen/error"
	"github.com/nihei9/sengen/grammar/symbol"
	"github.com/nihei9/sengen/spec"
)

// Grammar is a parsed grammar. It is never modified after Build returns, so it can be shared between
// any number of generators.
type Grammar struct {
	startSymbol symbol.Symbol

	// nonTerminals holds left-hand sides in the order of their definitions.
	nonTerminals []symbol.Symbol

	lhs2Prods map[symbol.Symbol][]*Production
}

func (g *Grammar) StartSymbol() symbol.Symbol {
	return g.startSymbol
}

func (g *Grammar) NonTerminals() []symbol.Symbol {
	return g.nonTerminals
}

// Productions returns the alternatives of a non-terminal in the order they are defined.
func (g *Grammar) Productions(lhs symbol.Symbol) ([]*Production, bool) {
	if lhs.IsNil() {
		return nil, false
	}
	prods, ok := g.lhs2Prods[lhs]
	return prods, ok
}

func (g *Grammar) ProductionCount() int {
	n := 0
	for _, prods := range g.lhs2Prods {
		n += len(prods)
	}
	return n
}

// Terminals returns distinct terminal symbols in the order they first appear.
func (g *Grammar) Terminals() []symbol.Symbol {
	seen := map[symbol.Symbol]struct{}{}
	terms := []symbol.Symbol{}
	for _, lhs := range g.nonTerminals {
		for _, prod := range g.lhs2Prods[lhs] {
			for _, sym := range prod.rhs {
				if sym.IsNonTerminal() {
					continue
				}
				if _, ok := seen[sym]; ok {
					continue
				}
				seen[sym] = struct{}{}
				terms = append(terms, sym)
			}
		}
	}
	return terms
}

// Unreachable returns non-terminals that no derivation from the start symbol can reach.
func (g *Grammar) Unreachable() []symbol.Symbol {
	reached := map[symbol.Symbol]struct{}{
		g.startSymbol: {},
	}
	queue := []symbol.Symbol{g.startSymbol}
	for len(queue) > 0 {
		lhs := queue[0]
		queue = queue[1:]
		for _, prod := range g.lhs2Prods[lhs] {
			for _, sym := range prod.rhs {
				if !sym.IsNonTerminal() {
					continue
				}
				if _, ok := reached[sym]; ok {
					continue
				}
				reached[sym] = struct{}{}
				queue = append(queue, sym)
			}
		}
	}

	syms := []symbol.Symbol{}
	for _, lhs := range g.nonTerminals {
		if _, ok := reached[lhs]; !ok {
			syms = append(syms, lhs)
		}
	}
	return syms
}

// Parse reads a grammar file and builds a grammar from it.
func Parse(src io.Reader) (*Grammar, error) {
	ast, err := spec.Parse(src)
	if err != nil {
		return nil, err
	}
	b := GrammarBuilder{
		AST: ast,
	}
	return b.Build()
}

type GrammarBuilder struct {
	AST *spec.RootNode

	errs verr.SpecErrors
}

// Build converts an AST into a grammar. When the AST violates any constraint, Build returns all the
// violations as verr.SpecErrors.
func (b *GrammarBuilder) Build() (*Grammar, error) {
	if b.AST == nil || len(b.AST.Blocks) == 0 {
		return nil, verr.SpecErrors{
			&verr.SpecError{
				Cause: semErrNoStartSymbol,
			},
		}
	}

	gram := &Grammar{
		startSymbol:  symbol.Symbol(b.AST.Blocks[0].LHS),
		nonTerminals: []symbol.Symbol{},
		lhs2Prods:    map[symbol.Symbol][]*Production{},
	}

	for _, blk := range b.AST.Blocks {
		lhs := symbol.Symbol(blk.LHS)
		if _, ok := gram.lhs2Prods[lhs]; ok {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDuplicateLHS,
				Detail: blk.LHS,
				Row:    blk.Pos.Row,
				Col:    blk.Pos.Col,
			})
			continue
		}
		if len(blk.Alternatives) == 0 {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrNoAlternative,
				Detail: blk.LHS,
				Row:    blk.Pos.Row,
				Col:    blk.Pos.Col,
			})
		}

		prods := make([]*Production, 0, len(blk.Alternatives))
		for _, alt := range blk.Alternatives {
			rhs := make([]symbol.Symbol, 0, len(alt.Elements))
			for _, elem := range alt.Elements {
				rhs = append(rhs, symbol.Symbol(elem.Text))
			}
			prod, err := NewProduction(lhs, rhs)
			if err != nil {
				return nil, err
			}
			prods = append(prods, prod)
		}
		gram.nonTerminals = append(gram.nonTerminals, lhs)
		gram.lhs2Prods[lhs] = prods
	}

	for _, blk := range b.AST.Blocks {
		for _, alt := range blk.Alternatives {
			for _, elem := range alt.Elements {
				sym := symbol.Symbol(elem.Text)
				if !sym.IsNonTerminal() {
					continue
				}
				if _, ok := gram.lhs2Prods[sym]; ok {
					continue
				}
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrUndefinedSym,
					Detail: elem.Text,
					Row:    elem.Pos.Row,
					Col:    elem.Pos.Col,
				})
			}
		}
	}

	if len(b.errs) > 0 {
		return nil, b.errs
	}

	return gram, nil
}
