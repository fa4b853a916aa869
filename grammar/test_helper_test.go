package grammar

import (
	"strings"
	"testing"

	"github.com/nihei9/sengen/grammar/symbol"
)

type testProductionGenerator func(lhs string, rhs ...string) *Production

func newTestProductionGenerator(t *testing.T) testProductionGenerator {
	return func(lhs string, rhs ...string) *Production {
		t.Helper()

		rhsSym := []symbol.Symbol{}
		for _, text := range rhs {
			rhsSym = append(rhsSym, symbol.Symbol(text))
		}
		prod, err := NewProduction(symbol.Symbol(lhs), rhsSym)
		if err != nil {
			t.Fatalf("failed to create a production: %v", err)
		}

		return prod
	}
}

func parseTestGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	gram, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse a grammar: %v", err)
	}
	return gram
}

func testProductions(t *testing.T, prods, expected []*Production) {
	t.Helper()

	if len(prods) != len(expected) {
		t.Fatalf("unexpected production count; want: %v, got: %v", len(expected), len(prods))
	}
	for i, prod := range prods {
		if prod.LHS() != expected[i].LHS() {
			t.Fatalf("unexpected LHS; want: %v, got: %v", expected[i].LHS(), prod.LHS())
		}
		testSymbols(t, prod.RHS(), expected[i].RHS())
	}
}

func testSymbols(t *testing.T, syms, expected []symbol.Symbol) {
	t.Helper()

	if len(syms) != len(expected) {
		t.Fatalf("unexpected symbols; want: %#v, got: %#v", expected, syms)
	}
	for i, sym := range syms {
		if sym != expected[i] {
			t.Fatalf("unexpected symbols; want: %#v, got: %#v", expected, syms)
		}
	}
}
