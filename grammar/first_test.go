package grammar

import (
	"testing"

	"github.com/nihei9/sengen/grammar/symbol"
)

type first struct {
	lhs     string
	symbols []string
	empty   bool
}

func TestGrammar_First(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		first   []first
	}{
		{
			caption: "productions contain only non-empty productions",
			src: `
{ <expr> <expr> + <term> ; <term> ; }
{ <term> <term> * <factor> ; <factor> ; }
{ <factor> ( <expr> ) ; id ; }
`,
			first: []first{
				{lhs: "<expr>", symbols: []string{"(", "id"}},
				{lhs: "<term>", symbols: []string{"(", "id"}},
				{lhs: "<factor>", symbols: []string{"(", "id"}},
			},
		},
		{
			caption: "productions contain the empty start production",
			src:     `{ <s> ; }`,
			first: []first{
				{lhs: "<s>", symbols: []string{}, empty: true},
			},
		},
		{
			caption: "productions contain an empty production",
			src: `
{ <s> <foo> bar ; }
{ <foo> ; }
`,
			first: []first{
				{lhs: "<s>", symbols: []string{"bar"}},
				{lhs: "<foo>", symbols: []string{}, empty: true},
			},
		},
		{
			caption: "a non-terminal can derive the empty sentence through other non-terminals",
			src: `
{ <s> <a> <b> ; }
{ <a> a ; ; }
{ <b> b ; ; }
`,
			first: []first{
				{lhs: "<s>", symbols: []string{"a", "b"}, empty: true},
				{lhs: "<a>", symbols: []string{"a"}, empty: true},
				{lhs: "<b>", symbols: []string{"b"}, empty: true},
			},
		},
		{
			caption: "a newline can begin a sentence",
			src:     `{ <s> \n a ; b ; }`,
			first: []first{
				{lhs: "<s>", symbols: []string{"\n", "b"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram := parseTestGrammar(t, tt.src)
			fst := gram.First()
			for _, ttFirst := range tt.first {
				terms, empty, ok := fst.Find(symbol.Symbol(ttFirst.lhs))
				if !ok {
					t.Fatalf("an entry of FIRST was not found; symbol: %v", ttFirst.lhs)
				}
				if empty != ttFirst.empty {
					t.Errorf("empty is mismatched; symbol: %v\nwant: %v\ngot: %v", ttFirst.lhs, ttFirst.empty, empty)
				}
				expected := []symbol.Symbol{}
				for _, s := range ttFirst.symbols {
					expected = append(expected, symbol.Symbol(s))
				}
				testSymbols(t, terms, expected)
			}
		})
	}

	_, _, ok := parseTestGrammar(t, `{ <s> a ; }`).First().Find("a")
	if ok {
		t.Fatalf("a terminal must not have an entry of FIRST")
	}
}

func TestGrammar_Unproductive(t *testing.T) {
	tests := []struct {
		caption      string
		src          string
		unproductive []symbol.Symbol
	}{
		{
			caption:      "a grammar where every non-terminal bottoms out",
			src:          `{ <s> <a> ; } { <a> a <a> ; a ; }`,
			unproductive: []symbol.Symbol{},
		},
		{
			caption:      "a non-terminal that only refers to itself is unproductive",
			src:          `{ <s> a ; <loop> ; } { <loop> x <loop> ; }`,
			unproductive: []symbol.Symbol{"<loop>"},
		},
		{
			caption:      "unproductiveness propagates through references",
			src:          `{ <s> <a> ; } { <a> <b> ; } { <b> <a> b ; }`,
			unproductive: []symbol.Symbol{"<s>", "<a>", "<b>"},
		},
		{
			caption:      "an empty alternative is productive",
			src:          `{ <s> <s> <s> ; ; }`,
			unproductive: []symbol.Symbol{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram := parseTestGrammar(t, tt.src)
			testSymbols(t, gram.Unproductive(), tt.unproductive)
		})
	}
}
