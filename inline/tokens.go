package inline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/amu/symbols"
)

// Node is a token of the parse tree. Nodes live for a single render call.
//
// Simple nodes are *Value, *Paren, *Unary and *Binary. A *Script attaches
// sub- and superscripts to a simple node, and a *Fraction joins two of those.
type Node interface {
	fmt.Stringer
	isNode()
}

// ValueKind tells where a value came from.
type ValueKind int8

// Kinds of values.
const (
	TextValue   ValueKind = iota // a single character or quoted text
	NumberValue                  // a decimal number
	SymbolValue                  // output of a symbol keyword
	EmojiValue                   // an emoji grapheme cluster
	RawValue                     // a keyword which could not be applied
)

// Value is a run of output text together with the white space following it
// in the input.
type Value struct {
	Text  string
	White string
	Kind  ValueKind
}

// Paren is a bracketed group. Unterminated groups have an empty right
// delimiter.
type Paren struct {
	Left         Value
	Arg          *Expression
	Right        Value
	Unterminated bool // closed by end of input
	core         Node // see coreOf
}

// Unary is an operator applied to a single argument, like 'bb x' or 'sqrt 2'.
type Unary struct {
	Name Value
	Sym  *symbols.Symbol
	Arg  Node
}

// Binary is an operator applied to two arguments, like 'root 3 x'.
type Binary struct {
	Name   Value
	Sym    *symbols.Symbol
	First  Node
	Second Node
}

// Script attaches a subscript, a superscript or both to a base.
// Sub or Sup are nil if not present.
type Script struct {
	Base     Node
	SubWhite string
	Sub      Node
	SupWhite string
	Sup      Node
}

// Fraction is 'numerator / denominator'. White is the white space following
// the slash.
type Fraction struct {
	Numer Node
	White string
	Denom Node
}

// Expression is a sequence of nodes.
type Expression struct {
	Elems []Node
}

func (*Value) isNode()      {}
func (*Paren) isNode()      {}
func (*Unary) isNode()      {}
func (*Binary) isNode()     {}
func (*Script) isNode()     {}
func (*Fraction) isNode()   {}
func (*Expression) isNode() {}

func (v *Value) String() string {
	return fmt.Sprintf("%q", v.Text)
}

func (p *Paren) String() string {
	return fmt.Sprintf("%s%s%s", p.Left.Text, p.Arg, p.Right.Text)
}

func (u *Unary) String() string {
	return fmt.Sprintf("%s[%s]", u.Sym.Input, u.Arg)
}

func (b *Binary) String() string {
	return fmt.Sprintf("%s[%s,%s]", b.Sym.Input, b.First, b.Second)
}

func (s *Script) String() string {
	var sb strings.Builder
	sb.WriteString(s.Base.String())
	if s.Sub != nil {
		sb.WriteString("_")
		sb.WriteString(s.Sub.String())
	}
	if s.Sup != nil {
		sb.WriteString("^")
		sb.WriteString(s.Sup.String())
	}
	return sb.String()
}

func (f *Fraction) String() string {
	return fmt.Sprintf("{%s/%s}", f.Numer, f.Denom)
}

func (e *Expression) String() string {
	parts := make([]string, len(e.Elems))
	for i, n := range e.Elems {
		parts[i] = n.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// coreOf returns the node at the bottom of a chain of groups with a single
// element each, or nil if the chain has a group with more elements or an
// unterminated group. Groups are closed inner-first, so every group's core is
// set once from its child.
func coreOf(e *Expression) Node {
	if len(e.Elems) != 1 {
		return nil
	}
	if p, ok := e.Elems[0].(*Paren); ok {
		return p.core
	}
	return e.Elems[0]
}

// tryValue looks through groups with a single element and returns the text
// of a value at the bottom, together with the white space trailing the whole
// node.
func tryValue(n Node) (text string, white string, ok bool) {
	switch t := n.(type) {
	case *Paren:
		if v, isValue := t.core.(*Value); isValue {
			return v.Text, t.Right.White, true
		}
	case *Value:
		return t.Text, t.White, true
	}
	return "", "", false
}
