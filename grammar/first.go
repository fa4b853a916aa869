package grammar

import (
	"sort"

	"github.com/nihei9/sengen/grammar/symbol"
)

type firstEntry struct {
	symbols map[symbol.Symbol]struct{}
	empty   bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{
		symbols: map[symbol.Symbol]struct{}{},
		empty:   false,
	}
}

func (e *firstEntry) add(sym symbol.Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *firstEntry) addEmpty() bool {
	if !e.empty {
		e.empty = true
		return true
	}
	return false
}

func (e *firstEntry) mergeExceptEmpty(target *firstEntry) bool {
	if target == nil {
		return false
	}
	changed := false
	for sym := range target.symbols {
		added := e.add(sym)
		if added {
			changed = true
		}
	}
	return changed
}

// FirstSet holds, for each non-terminal, the terminals its sentences can begin with.
type FirstSet struct {
	set map[symbol.Symbol]*firstEntry
}

// Find returns the terminals sentences derived from `sym` can begin with, sorted by their texts.
// `empty` reports whether `sym` can derive the empty sentence.
func (fst *FirstSet) Find(sym symbol.Symbol) (terms []symbol.Symbol, empty bool, ok bool) {
	e, ok := fst.set[sym]
	if !ok {
		return nil, false, false
	}
	terms = make([]symbol.Symbol, 0, len(e.symbols))
	for s := range e.symbols {
		terms = append(terms, s)
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i] < terms[j]
	})
	return terms, e.empty, true
}

func (g *Grammar) First() *FirstSet {
	fst := &FirstSet{
		set: map[symbol.Symbol]*firstEntry{},
	}
	for _, lhs := range g.nonTerminals {
		fst.set[lhs] = newFirstEntry()
	}

	for {
		more := false
		for _, lhs := range g.nonTerminals {
			e := fst.set[lhs]
			for _, prod := range g.lhs2Prods[lhs] {
				if genProdFirstEntry(fst, e, prod) {
					more = true
				}
			}
		}
		if !more {
			break
		}
	}
	return fst
}

func genProdFirstEntry(fst *FirstSet, acc *firstEntry, prod *Production) bool {
	if prod.IsEmpty() {
		return acc.addEmpty()
	}

	for _, sym := range prod.rhs {
		if sym.IsTerminal() {
			return acc.add(sym)
		}

		e := fst.set[sym]
		changed := acc.mergeExceptEmpty(e)
		if e == nil || !e.empty {
			return changed
		}
	}
	return acc.addEmpty()
}

// Unproductive returns non-terminals from which no finite sentence can be derived. Generating a
// sentence that reaches one of them never finishes.
func (g *Grammar) Unproductive() []symbol.Symbol {
	productive := map[symbol.Symbol]struct{}{}
	for {
		more := false
		for _, lhs := range g.nonTerminals {
			if _, ok := productive[lhs]; ok {
				continue
			}
			for _, prod := range g.lhs2Prods[lhs] {
				if !isProductive(productive, prod) {
					continue
				}
				productive[lhs] = struct{}{}
				more = true
				break
			}
		}
		if !more {
			break
		}
	}

	syms := []symbol.Symbol{}
	for _, lhs := range g.nonTerminals {
		if _, ok := productive[lhs]; !ok {
			syms = append(syms, lhs)
		}
	}
	return syms
}

func isProductive(productive map[symbol.Symbol]struct{}, prod *Production) bool {
	for _, sym := range prod.rhs {
		if sym.IsTerminal() {
			continue
		}
		if _, ok := productive[sym]; !ok {
			return false
		}
	}
	return true
}
