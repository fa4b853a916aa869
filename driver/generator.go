package driver

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/nihei9/sengen/grammar"
	"github.com/nihei9/sengen/grammar/symbol"
)

var (
	ErrNoStartSymbol        = errors.New("a grammar has no start symbol")
	ErrUndefinedNonTerminal = errors.New("undefined non-terminal")
	ErrEmptyProductionList  = errors.New("a non-terminal has no alternatives")
	ErrExpansionLimit       = errors.New("the derivation did not terminate within the expansion limit")
)

// GenerationError tells which symbol a derivation got stuck on.
type GenerationError struct {
	Cause  error
	Symbol symbol.Symbol
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%v: %v", e.Cause, e.Symbol)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

type GeneratorOption func(g *Generator) error

// RandSource makes a generator draw alternatives from `src`. Generators sharing a seed produce the
// same derivations.
func RandSource(src rand.Source) GeneratorOption {
	return func(g *Generator) error {
		if src == nil {
			return fmt.Errorf("a random source must be non-nil")
		}
		g.rand = rand.New(src)
		return nil
	}
}

func Seed(seed int64) GeneratorOption {
	return RandSource(rand.NewSource(seed))
}

// MaxExpansions limits the number of non-terminals a single derivation expands. Zero means no limit,
// in which case a grammar that never bottoms out in terminals makes Generate run forever.
func MaxExpansions(n int) GeneratorOption {
	return func(g *Generator) error {
		if n < 0 {
			return fmt.Errorf("an expansion limit must be greater than or equal to 0; got: %v", n)
		}
		g.maxExpansions = n
		return nil
	}
}

// RecordTree makes a generator keep the derivation tree of the latest run. See Generator.Tree.
func RecordTree() GeneratorOption {
	return func(g *Generator) error {
		g.recordTree = true
		return nil
	}
}

type frame struct {
	sym    symbol.Symbol
	parent *Node
}

// Generator derives random sentences from a grammar. A Generator is not safe for concurrent use, but
// multiple generators can share one grammar.
type Generator struct {
	gram          Grammar
	rand          *rand.Rand
	maxExpansions int
	recordTree    bool
	stack         []frame
	expansions    int
	tree          *Node
}

func NewGenerator(gram Grammar, opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		gram:  gram,
		stack: []frame{},
	}

	for _, opt := range opts {
		err := opt(g)
		if err != nil {
			return nil, err
		}
	}

	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g, nil
}

// Generate performs one derivation from the start symbol and passes each terminal to `sink` from
// left to right.
func (g *Generator) Generate(sink Sink) error {
	start := g.gram.StartSymbol()
	if start.IsNil() {
		return ErrNoStartSymbol
	}

	g.expansions = 0
	g.tree = nil
	g.stack = append(g.stack[:0], frame{
		sym: start,
	})
	for len(g.stack) > 0 {
		f := g.pop()

		var node *Node
		if g.recordTree {
			node = &Node{
				Symbol: f.sym,
			}
			if f.parent == nil {
				g.tree = node
			} else {
				f.parent.Children = append(f.parent.Children, node)
			}
		}

		if f.sym.IsTerminal() {
			err := sink.Emit(f.sym)
			if err != nil {
				return err
			}
			continue
		}

		prod, err := g.choose(f.sym)
		if err != nil {
			return err
		}

		// Push the RHS in reverse so that its leftmost symbol is popped first.
		rhs := prod.RHS()
		for i := len(rhs) - 1; i >= 0; i-- {
			g.push(frame{
				sym:    rhs[i],
				parent: node,
			})
		}
	}

	return nil
}

func (g *Generator) choose(lhs symbol.Symbol) (*grammar.Production, error) {
	prods, ok := g.gram.Productions(lhs)
	if !ok {
		return nil, &GenerationError{
			Cause:  ErrUndefinedNonTerminal,
			Symbol: lhs,
		}
	}
	if len(prods) == 0 {
		return nil, &GenerationError{
			Cause:  ErrEmptyProductionList,
			Symbol: lhs,
		}
	}
	if g.maxExpansions > 0 && g.expansions >= g.maxExpansions {
		return nil, &GenerationError{
			Cause:  ErrExpansionLimit,
			Symbol: lhs,
		}
	}
	g.expansions++

	return prods[g.rand.Intn(len(prods))], nil
}

func (g *Generator) push(f frame) {
	g.stack = append(g.stack, f)
}

func (g *Generator) pop() frame {
	f := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
	return f
}

// Expansions returns the number of non-terminals the latest run expanded.
func (g *Generator) Expansions() int {
	return g.expansions
}

// Tree returns the derivation tree of the latest run. It returns nil unless the generator was made
// with the RecordTree option.
func (g *Generator) Tree() *Node {
	return g.tree
}
