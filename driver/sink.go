package driver

import (
	"io"
	"strings"

	"github.com/nihei9/sengen/grammar/symbol"
)

// Sink receives the terminals of a derivation in order.
type Sink interface {
	Emit(sym symbol.Symbol) error
}

type SinkFunc func(sym symbol.Symbol) error

func (f SinkFunc) Emit(sym symbol.Symbol) error {
	return f(sym)
}

var (
	_ Sink = &SentenceSink{}
	_ Sink = &WriterSink{}
	_ Sink = SinkFunc(nil)
)

// SentenceSink collects terminals in memory.
type SentenceSink struct {
	syms []symbol.Symbol
}

func NewSentenceSink() *SentenceSink {
	return &SentenceSink{
		syms: []symbol.Symbol{},
	}
}

func (s *SentenceSink) Emit(sym symbol.Symbol) error {
	s.syms = append(s.syms, sym)
	return nil
}

func (s *SentenceSink) Symbols() []symbol.Symbol {
	return s.syms
}

// Texts returns the texts of the collected terminals.
func (s *SentenceSink) Texts() []string {
	texts := make([]string, 0, len(s.syms))
	for _, sym := range s.syms {
		texts = append(texts, sym.Text())
	}
	return texts
}

func (s *SentenceSink) String() string {
	return strings.Join(s.Texts(), " ")
}

func (s *SentenceSink) Reset() {
	s.syms = s.syms[:0]
}

// WriterSink writes terminals to an io.Writer, putting a separator between two adjacent terminals.
type WriterSink struct {
	w       io.Writer
	sep     string
	emitted bool
}

func NewWriterSink(w io.Writer, sep string) *WriterSink {
	return &WriterSink{
		w:   w,
		sep: sep,
	}
}

func (s *WriterSink) Emit(sym symbol.Symbol) error {
	if s.emitted {
		_, err := io.WriteString(s.w, s.sep)
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(s.w, sym.Text())
	if err != nil {
		return err
	}
	s.emitted = true
	return nil
}

// Reset makes the next terminal start a new sentence, which isn't preceded by a separator.
func (s *WriterSink) Reset() {
	s.emitted = false
}
