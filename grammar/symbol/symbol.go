package symbol

type symbolKind string

const (
	symbolKindNonTerminal = symbolKind("non-terminal")
	symbolKindTerminal    = symbolKind("terminal")
)

func (t symbolKind) String() string {
	return string(t)
}

const (
	nonTerminalOpen  = "<"
	nonTerminalClose = ">"

	// EscapedNewline is how a newline symbol is spelled in a grammar file.
	EscapedNewline = `\n`
)

// Symbol is a token of a grammar. Two symbols having the same text are the same symbol, so a Symbol
// can be compared with == and used as a map key directly.
type Symbol string

const (
	SymbolNil = Symbol("")

	// Newline is a terminal symbol emitted as an actual line break.
	Newline = Symbol("\n")
)

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) Text() string {
	return string(s)
}

func (s Symbol) IsNil() bool {
	return s == SymbolNil
}

// IsNonTerminal reports whether a symbol is spelled like `<name>`.
func (s Symbol) IsNonTerminal() bool {
	return s.kind() == symbolKindNonTerminal
}

func (s Symbol) IsTerminal() bool {
	return !s.IsNonTerminal()
}

func (s Symbol) kind() symbolKind {
	text := string(s)
	if len(text) < len(nonTerminalOpen)+len(nonTerminalClose) {
		return symbolKindTerminal
	}
	if text[:len(nonTerminalOpen)] != nonTerminalOpen || text[len(text)-len(nonTerminalClose):] != nonTerminalClose {
		return symbolKindTerminal
	}
	return symbolKindNonTerminal
}

// Escape returns the spelling of a symbol in a grammar file.
func (s Symbol) Escape() string {
	if s == Newline {
		return EscapedNewline
	}
	return string(s)
}
