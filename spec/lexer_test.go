package spec

import (
	"strings"
	"testing"
)

func TestLexer_Run(t *testing.T) {
	word := func(text string, row, col int) *token {
		return &token{
			kind: tokenKindWord,
			text: text,
			pos:  newPosition(row, col),
		}
	}
	marker := func(kind tokenKind, row, col int) *token {
		return &token{
			kind: kind,
			text: string(kind),
			pos:  newPosition(row, col),
		}
	}

	tests := []struct {
		caption string
		src     string
		tokens  []*token
	}{
		{
			caption: "the lexer can recognize all kinds of tokens",
			src:     `{ <s> a \n ; }`,
			tokens: []*token{
				marker(tokenKindBlockOpen, 1, 1),
				word("<s>", 1, 3),
				word("a", 1, 7),
				marker(tokenKindNewline, 1, 9),
				marker(tokenKindSemicolon, 1, 12),
				marker(tokenKindBlockClose, 1, 14),
			},
		},
		{
			caption: "markers are recognized only when they make up a whole word",
			src:     `{a} ;; \\n }{`,
			tokens: []*token{
				word("{a}", 1, 1),
				word(";;", 1, 5),
				word(`\\n`, 1, 8),
				word("}{", 1, 12),
			},
		},
		{
			caption: "runs of blanks, tabs, blank lines, and CRLF only separate tokens",
			src:     "\r\n  {\t\t<s>   x\r\n\r\n\n  ;\t}\r\n",
			tokens: []*token{
				marker(tokenKindBlockOpen, 2, 3),
				word("<s>", 2, 6),
				word("x", 2, 12),
				marker(tokenKindSemicolon, 5, 3),
				marker(tokenKindBlockClose, 5, 5),
			},
		},
		{
			caption: "an empty source produces only the EOF token",
			src:     "",
			tokens:  []*token{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			l, err := newLexer(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			for _, eTok := range tt.tokens {
				tok, err := l.next()
				if err != nil {
					t.Fatal(err)
				}
				testToken(t, eTok, tok)
			}
			tok, err := l.next()
			if err != nil {
				t.Fatal(err)
			}
			if tok.kind != tokenKindEOF {
				t.Fatalf("unexpected token; want: eof, got: %v (%#v)", tok.kind, tok.text)
			}
		})
	}
}

func TestCompileLexSpec(t *testing.T) {
	clspec, err := compileLexSpec()
	if err != nil {
		t.Fatalf("the lexical specification must compile: %v", err)
	}
	if clspec == nil {
		t.Fatalf("a compiled lexical specification must be non-nil")
	}
}

func testToken(t *testing.T, expected, actual *token) {
	t.Helper()

	if actual.kind != expected.kind || actual.text != expected.text {
		t.Fatalf("unexpected token; want: %v (%#v), got: %v (%#v)", expected.kind, expected.text, actual.kind, actual.text)
	}
	if actual.pos != expected.pos {
		t.Fatalf("unexpected position; want: %+v, got: %+v", expected.pos, actual.pos)
	}
}
