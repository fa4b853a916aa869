package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrUndefinedSym  = newSemanticError("undefined non-terminal")
	semErrDuplicateLHS  = newSemanticError("duplicate definition of a non-terminal")
	semErrNoAlternative = newSemanticError("a non-terminal needs at least one alternative")
	semErrNoStartSymbol = newSemanticError("a grammar needs a start symbol")
)
