package spec

import (
	"fmt"
	"io"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
	verr "github.com/nihei9/sengen/error"
)

type tokenKind string

const (
	tokenKindBlockOpen  = tokenKind("{")
	tokenKindBlockClose = tokenKind("}")
	tokenKindSemicolon  = tokenKind(";")
	tokenKindNewline    = tokenKind(`\n`)
	tokenKindWord       = tokenKind("word")
	tokenKindEOF        = tokenKind("eof")
)

// Markers are recognized only when they make up a whole word, so `{abc` is an ordinary word.
var markers = map[string]tokenKind{
	string(tokenKindBlockOpen):  tokenKindBlockOpen,
	string(tokenKindBlockClose): tokenKindBlockClose,
	string(tokenKindSemicolon):  tokenKindSemicolon,
	string(tokenKindNewline):    tokenKindNewline,
}

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newWordToken(text string, pos Position) *token {
	kind, ok := markers[text]
	if !ok {
		kind = tokenKindWord
	}
	return &token{
		kind: kind,
		text: text,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

const (
	lexKindWhiteSpace = "white_space"
	lexKindNewline    = "newline"
	lexKindWord       = "word"
)

var lexSpec = &mlspec.LexSpec{
	Name: "sengen",
	Entries: []*mlspec.LexEntry{
		{
			Kind:    mlspec.LexKindName(lexKindWhiteSpace),
			Pattern: mlspec.LexPattern(`[\u{0009}\u{000D}\u{0020}]+`),
		},
		{
			Kind:    mlspec.LexKindName(lexKindNewline),
			Pattern: mlspec.LexPattern(`\u{000A}`),
		},
		{
			Kind:    mlspec.LexKindName(lexKindWord),
			Pattern: mlspec.LexPattern(`[^\u{0009}\u{000A}\u{000D}\u{0020}]+`),
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSpec   *mlspec.CompiledLexSpec
	compileSpecErr error
)

func compileLexSpec() (*mlspec.CompiledLexSpec, error) {
	compileOnce.Do(func() {
		clspec, err, cErrs := mlcompiler.Compile(lexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				var b strings.Builder
				writeCompileError(&b, cErrs[0])
				for _, cerr := range cErrs[1:] {
					fmt.Fprintf(&b, "\n")
					writeCompileError(&b, cerr)
				}
				compileSpecErr = fmt.Errorf("failed to compile the lexical specification: %v", b.String())
				return
			}
			compileSpecErr = err
			return
		}
		compiledSpec = clspec
	})
	return compiledSpec, compileSpecErr
}

func writeCompileError(w io.Writer, cErr *mlcompiler.CompileError) {
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}

type lexer struct {
	s       *mlspec.CompiledLexSpec
	d       *mldriver.Lexer
	lastPos Position
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := compileLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

// next returns the next word or marker. Blanks and line breaks only separate tokens.
func (l *lexer) next() (*token, error) {
	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			return newEOFToken(l.lastPos), nil
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		if tok.Invalid {
			return nil, &verr.SpecError{
				Cause:  synErrInvalidToken,
				Detail: fmt.Sprintf("%q", string(tok.Lexeme)),
				Row:    pos.Row,
				Col:    pos.Col,
			}
		}

		switch l.s.KindNames[tok.KindID].String() {
		case lexKindWhiteSpace, lexKindNewline:
			continue
		case lexKindWord:
			l.lastPos = pos
			return newWordToken(strings.TrimSpace(string(tok.Lexeme)), pos), nil
		default:
			return nil, &verr.SpecError{
				Cause:  synErrInvalidToken,
				Detail: fmt.Sprintf("%q", string(tok.Lexeme)),
				Row:    pos.Row,
				Col:    pos.Col,
			}
		}
	}
}
