package qdsexp

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenOpen
	tokenClose
	tokenAtom
)

type token struct {
	kind tokenKind
	text string
}

type parser struct {
	r *bufio.Reader
}

func newParser(r io.Reader) *parser {
	return &parser{r: bufio.NewReader(r)}
}

func (p *parser) parseAll() ([]Node, error) {
	var nodes []Node
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			return nodes, nil
		case tokenOpen:
			list, err := p.parseList()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, list)
		case tokenAtom:
			nodes = append(nodes, Atom(tok.text))
		case tokenClose:
			return nil, fmt.Errorf("unexpected ')' at top level")
		}
	}
}

// parseList consumes nodes until the matching ')'. The opening '(' has
// already been read.
func (p *parser) parseList() (List, error) {
	var list List
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenClose:
			return list, nil
		case tokenOpen:
			sub, err := p.parseList()
			if err != nil {
				return nil, err
			}
			list = append(list, sub)
		case tokenAtom:
			list = append(list, Atom(tok.text))
		case tokenEOF:
			return nil, fmt.Errorf("unexpected EOF inside list")
		}
	}
}

// next returns the next token, skipping whitespace and # comments.
func (p *parser) next() (token, error) {
	for {
		ch, _, err := p.r.ReadRune()
		if err == io.EOF {
			return token{kind: tokenEOF}, nil
		}
		if err != nil {
			return token{}, err
		}

		switch {
		case unicode.IsSpace(ch):
			continue
		case ch == '#':
			if err := p.skipLine(); err != nil {
				return token{}, err
			}
		case ch == '(':
			return token{kind: tokenOpen}, nil
		case ch == ')':
			return token{kind: tokenClose}, nil
		case ch == '"':
			text, err := p.readQuoted()
			if err != nil {
				return token{}, err
			}
			return token{kind: tokenAtom, text: text}, nil
		default:
			if err := p.r.UnreadRune(); err != nil {
				return token{}, err
			}
			text, err := p.readBare()
			if err != nil {
				return token{}, err
			}
			return token{kind: tokenAtom, text: text}, nil
		}
	}
}

func (p *parser) skipLine() error {
	for {
		ch, _, err := p.r.ReadRune()
		if err == io.EOF || ch == '\n' {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readQuoted reads a string atom after the opening quote, handling
// backslash escapes.
func (p *parser) readQuoted() (string, error) {
	var out []rune
	for {
		ch, _, err := p.r.ReadRune()
		if err == io.EOF {
			return "", fmt.Errorf("unexpected EOF inside quoted string")
		}
		if err != nil {
			return "", err
		}

		switch ch {
		case '"':
			return string(out), nil
		case '\\':
			esc, _, err := p.r.ReadRune()
			if err != nil {
				return "", fmt.Errorf("unexpected EOF after backslash")
			}
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, esc)
			}
		default:
			out = append(out, ch)
		}
	}
}

// readBare reads an unquoted atom up to the next delimiter.
func (p *parser) readBare() (string, error) {
	var out []rune
	for {
		ch, _, err := p.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' || ch == '#' {
			if err := p.r.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		out = append(out, ch)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty atom")
	}
	return string(out), nil
}
