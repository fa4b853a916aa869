package main

import (
	"fmt"
	"io"
	"os"

	verr "github.com/nihei9/sengen/error"
	"github.com/nihei9/sengen/grammar"
)

// readGrammar reads a grammar from a file, or from stdin when `path` is empty.
func readGrammar(path string) (gram *grammar.Grammar, retErr error) {
	defer func() {
		if retErr == nil {
			return
		}
		sourceName := path
		if path == "" {
			sourceName = "stdin"
		}
		switch err := retErr.(type) {
		case *verr.SpecError:
			err.FilePath = path
			err.SourceName = sourceName
		case verr.SpecErrors:
			for _, e := range err {
				e.FilePath = path
				e.SourceName = sourceName
			}
		}
	}()

	var src io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	return grammar.Parse(src)
}
