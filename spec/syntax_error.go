package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	// lexical errors
	synErrInvalidToken = newSyntaxError("invalid token")

	// syntax errors
	synErrNoBlock            = newSyntaxError("a grammar must have at least one block")
	synErrUnbalancedClose    = newSyntaxError("unbalanced closing brace")
	synErrNestedOpen         = newSyntaxError("nested opening brace")
	synErrSemicolonBeforeLHS = newSyntaxError("a semicolon precedes a left-hand side")
	synErrLHSNotNonTerminal  = newSyntaxError("left-hand side must be a non-terminal")
	synErrUnterminatedAlt    = newSyntaxError("an alternative is missing its terminating semicolon")
	synErrUnclosedBlock      = newSyntaxError("unclosed block")
)
