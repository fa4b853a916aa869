package spec

import (
	"io"

	verr "github.com/nihei9/sengen/error"
	"github.com/nihei9/sengen/grammar/symbol"
)

type RootNode struct {
	Blocks []*BlockNode
}

// BlockNode is one `{ <lhs> ... ; ... ; }` definition.
type BlockNode struct {
	LHS          string
	Alternatives []*AlternativeNode
	Pos          Position
}

type AlternativeNode struct {
	Elements []*ElementNode
	Pos      Position
}

type ElementNode struct {
	Text string
	Pos  Position
}

func raiseSyntaxError(synErr *SyntaxError, tok *token) {
	panic(&verr.SpecError{
		Cause:  synErr,
		Detail: tok.text,
		Row:    tok.pos.Row,
		Col:    tok.pos.Col,
	})
}

func Parse(src io.Reader) (*RootNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parserState int

const (
	stateOutside parserState = iota
	stateReadingHead
	stateReadingBody
)

type parser struct {
	lex   *lexer
	state parserState
	block *BlockNode
	alt   *AlternativeNode
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex:   lex,
		state: stateOutside,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{}
	for {
		tok := p.nextToken()
		if tok.kind == tokenKindEOF {
			if p.state != stateOutside {
				raiseSyntaxError(synErrUnclosedBlock, &token{
					text: p.block.LHS,
					pos:  p.block.Pos,
				})
			}
			break
		}

		switch p.state {
		case stateOutside:
			p.readOutside(tok)
		case stateReadingHead:
			p.readHead(tok)
		case stateReadingBody:
			if blk := p.readBody(tok); blk != nil {
				root.Blocks = append(root.Blocks, blk)
			}
		}
	}
	if len(root.Blocks) == 0 {
		raiseSyntaxError(synErrNoBlock, newEOFToken(p.lex.lastPos))
	}
	return root
}

// readOutside skips everything between blocks.
func (p *parser) readOutside(tok *token) {
	switch tok.kind {
	case tokenKindBlockOpen:
		p.block = &BlockNode{
			Pos: tok.pos,
		}
		p.state = stateReadingHead
	case tokenKindBlockClose:
		raiseSyntaxError(synErrUnbalancedClose, tok)
	}
}

func (p *parser) readHead(tok *token) {
	switch tok.kind {
	case tokenKindBlockClose:
		// An empty block defines nothing.
		p.block = nil
		p.state = stateOutside
	case tokenKindBlockOpen:
		raiseSyntaxError(synErrNestedOpen, tok)
	case tokenKindSemicolon:
		raiseSyntaxError(synErrSemicolonBeforeLHS, tok)
	default:
		if tok.kind == tokenKindNewline || !symbol.Symbol(tok.text).IsNonTerminal() {
			raiseSyntaxError(synErrLHSNotNonTerminal, tok)
		}
		p.block.LHS = tok.text
		p.block.Pos = tok.pos
		p.state = stateReadingBody
	}
}

// readBody returns a block when the block gets closed.
func (p *parser) readBody(tok *token) *BlockNode {
	switch tok.kind {
	case tokenKindSemicolon:
		alt := p.alt
		if alt == nil {
			alt = &AlternativeNode{
				Elements: []*ElementNode{},
				Pos:      tok.pos,
			}
		}
		p.block.Alternatives = append(p.block.Alternatives, alt)
		p.alt = nil
	case tokenKindBlockClose:
		if p.alt != nil {
			raiseSyntaxError(synErrUnterminatedAlt, tok)
		}
		blk := p.block
		p.block = nil
		p.state = stateOutside
		return blk
	case tokenKindBlockOpen:
		raiseSyntaxError(synErrNestedOpen, tok)
	case tokenKindNewline:
		p.appendElement(symbol.Newline.Text(), tok.pos)
	default:
		p.appendElement(tok.text, tok.pos)
	}
	return nil
}

func (p *parser) appendElement(text string, pos Position) {
	if p.alt == nil {
		p.alt = &AlternativeNode{
			Pos: pos,
		}
	}
	p.alt.Elements = append(p.alt.Elements, &ElementNode{
		Text: text,
		Pos:  pos,
	})
}

func (p *parser) nextToken() *token {
	tok, err := p.lex.next()
	if err != nil {
		panic(err)
	}
	return tok
}
