// Package qdsexp provides a lightweight streaming S-expression parser
// for .qds design files. Designs with dense geometry tables can grow
// large, so the parser reads from an io.Reader without buffering the
// whole file.
package qdsexp

import (
	"io"
	"strings"
)

// Node is an S-expression node: either an Atom or a List.
type Node interface {
	// IsAtom reports whether the node is an atomic symbol.
	IsAtom() bool

	// String returns the serialized form of the node.
	String() string
}

// Atom is an atomic symbol: an identifier, number or quoted string.
type Atom string

func (a Atom) IsAtom() bool   { return true }
func (a Atom) String() string { return string(a) }

// List is an ordered sequence of nodes.
type List []Node

func (l List) IsAtom() bool { return false }

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, n := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Head returns the leading atom of the list, or "" when the list is
// empty or starts with a sublist. The head names the node kind in .qds
// files, e.g. (poly ...).
func (l List) Head() string {
	if len(l) == 0 {
		return ""
	}
	if a, ok := l[0].(Atom); ok {
		return string(a)
	}
	return ""
}

// Parse reads all top-level S-expressions from a reader.
func Parse(r io.Reader) ([]Node, error) {
	return newParser(r).parseAll()
}

// ParseString parses all top-level S-expressions from a string.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}
