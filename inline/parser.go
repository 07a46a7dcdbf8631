package inline

import (
	"github.com/npillmayer/amu/symbols"
)

// The parser folds lexemes into nodes, following the grammar
//
//   Expression   := ( Intermediate [ '/' Intermediate ] )*
//   Intermediate := Simple [ '_' Simple ] [ '^' Simple ]
//   Simple       := value | left Expression [ right ] | unary Simple | binary Simple Simple
//
// It does not recurse. Every construct awaiting input is a frame on a stack:
// bracket groups, and operators waiting for their arguments. Completed simple
// nodes are delivered to the topmost frame, which may complete in turn.
//
// Nothing ever fails. An operator missing its argument is kept as the literal
// keyword, and an infix operator missing an operand is kept as a literal
// character.

type frameKind int8

const (
	groupFrame  frameKind = iota // bracket group or top level
	unaryFrame                   // unary operator waiting for its argument
	binaryFrame                  // binary operator waiting for its arguments
)

// stage tells which script operators the current intermediate of a group
// will accept.
type stage int8

const (
	stBase stage = iota // plain simple: accepts '_' or '^'
	stSub               // has subscript: accepts '^'
	stDone              // accepts neither
)

type frame struct {
	kind frameKind
	// group frames
	left      Value
	elems     []Node
	cur       Node   // intermediate under construction
	stage     stage  // of cur
	op        byte   // pending infix operator, or 0
	opLex     lexeme // lexeme of pending operator
	numer     Node   // numerator, if cur is a denominator
	fracWhite string // white space after the fraction slash
	// operator frames
	name  Value
	sym   *symbols.Symbol
	first Node
}

type parser struct {
	m *machine
}

// parse reads the complete input and returns the top level expression.
func parse(m *machine, input string) *Expression {
	p := parser{m: m}
	m.sc.init(input)
	root := &frame{kind: groupFrame}
	m.frames.Push(root)
	for {
		lx, ok := m.sc.next()
		if !ok {
			break
		}
		p.lexeme(lx)
	}
	p.unwind(false, nil)
	if m.frames.Size() != 1 {
		panic("parser stack not empty at end of input")
	}
	p.flush(root)
	m.frames.Clear()
	tracer().Debugf("parsed input into %d top level nodes", len(root.elems))
	return &Expression{Elems: root.elems}
}

func (p *parser) top() *frame {
	f, ok := p.m.frames.Peek()
	if !ok {
		panic("parser stack underflow")
	}
	return f.(*frame)
}

func (p *parser) pop() *frame {
	f, ok := p.m.frames.Pop()
	if !ok {
		panic("parser stack underflow")
	}
	return f.(*frame)
}

func (p *parser) isRoot() bool {
	return p.m.frames.Size() == 1
}

func (p *parser) lexeme(lx lexeme) {
	switch lx.kind {
	case lexSpace:
		root := p.top()
		root.elems = append(root.elems, &Value{White: lx.white, Kind: TextValue})
	case lexText, lexChar:
		p.deliver(&Value{Text: lx.value, White: lx.white, Kind: TextValue})
	case lexNumber:
		p.deliver(&Value{Text: lx.value, White: lx.white, Kind: NumberValue})
	case lexEmoji:
		p.deliver(&Value{Text: lx.value, White: lx.white, Kind: EmojiValue})
	case lexSymbol:
		p.symbol(lx)
	}
}

func (p *parser) symbol(lx lexeme) {
	sym := lx.sym
	switch sym.Kind {
	case symbols.Const:
		p.deliver(&Value{Text: sym.Output, White: lx.white, Kind: SymbolValue})
	case symbols.Infix:
		p.infix(lx)
	case symbols.Unary:
		p.m.frames.Push(&frame{kind: unaryFrame, name: rawValue(lx), sym: sym})
	case symbols.Binary:
		p.m.frames.Push(&frame{kind: binaryFrame, name: rawValue(lx), sym: sym})
	case symbols.Left:
		left := Value{Text: sym.Output, White: lx.white, Kind: SymbolValue}
		p.m.frames.Push(&frame{kind: groupFrame, left: left})
	case symbols.Right:
		right := &Value{Text: sym.Output, White: lx.white, Kind: SymbolValue}
		p.unwind(true, right)
	}
}

func rawValue(lx lexeme) Value {
	return Value{Text: lx.value, White: lx.white, Kind: RawValue}
}

// infix handles '_', '^' and '/'. If the operator cannot apply here, it is
// an ordinary value.
func (p *parser) infix(lx lexeme) {
	g := p.top()
	literal := &Value{Text: lx.sym.Output, White: lx.white, Kind: SymbolValue}
	if g.kind != groupFrame || g.op != 0 || g.cur == nil {
		p.deliver(literal)
		return
	}
	switch {
	case lx.sym.IsInfix("_") && g.stage == stBase:
	case lx.sym.IsInfix("^") && g.stage != stDone:
	case lx.sym.IsInfix("/") && g.numer == nil:
	default:
		p.deliver(literal)
		return
	}
	g.op, g.opLex = lx.sym.Input[0], lx
}

// deliver hands a completed simple node to the top of the stack. Operator
// frames which become complete are popped and delivered in turn.
func (p *parser) deliver(n Node) {
	for {
		f := p.top()
		switch f.kind {
		case unaryFrame:
			p.pop()
			n = &Unary{Name: f.name, Sym: f.sym, Arg: n}
		case binaryFrame:
			if f.first == nil {
				f.first = n
				return
			}
			p.pop()
			n = &Binary{Name: f.name, Sym: f.sym, First: f.first, Second: n}
		default:
			p.accept(f, n)
			return
		}
	}
}

// accept puts a simple node into a group, resolving a pending infix operator.
func (p *parser) accept(g *frame, n Node) {
	switch g.op {
	case '_':
		g.cur = &Script{Base: g.cur, SubWhite: g.opLex.white, Sub: n}
		g.stage = stSub
	case '^':
		if s, ok := g.cur.(*Script); ok && g.stage == stSub {
			s.SupWhite, s.Sup = g.opLex.white, n
		} else {
			g.cur = &Script{Base: g.cur, SupWhite: g.opLex.white, Sup: n}
		}
		g.stage = stDone
	case '/':
		g.numer, g.fracWhite = g.cur, g.opLex.white
		g.cur, g.stage = n, stBase
	default:
		p.flush(g)
		g.cur, g.stage = n, stBase
	}
	g.op = 0
}

// flush moves the current intermediate (or fraction) of a group to its
// elements. A pending operator is dropped to a literal.
func (p *parser) flush(g *frame) {
	if g.op != 0 {
		lx := g.opLex
		g.op = 0
		p.accept(g, &Value{Text: lx.sym.Output, White: lx.white, Kind: SymbolValue})
	}
	if g.cur == nil {
		return
	}
	if g.numer != nil {
		g.elems = append(g.elems, &Fraction{Numer: g.numer, White: g.fracWhite, Denom: g.cur})
		g.numer = nil
	} else {
		g.elems = append(g.elems, g.cur)
	}
	g.cur, g.stage = nil, stBase
}

// unwind is called for a closing bracket (right != nil) or at the end of
// input. Operators waiting for arguments give up. For a closing bracket,
// the innermost group is closed; at top level the bracket is a literal.
// At the end of input, all open groups are closed.
func (p *parser) unwind(closing bool, right *Value) {
	for {
		f := p.top()
		switch f.kind {
		case unaryFrame:
			p.pop()
			p.deliver(&f.name)
		case binaryFrame:
			p.pop()
			p.deliver(&f.name)
			if f.first != nil {
				p.deliver(f.first)
			}
		default:
			if p.isRoot() {
				if closing {
					p.flush(f)
					f.elems = append(f.elems, right)
				}
				return
			}
			p.flush(f)
			p.pop()
			paren := &Paren{Left: f.left, Arg: &Expression{Elems: f.elems}}
			if closing {
				paren.Right = *right
				paren.core = coreOf(paren.Arg)
			} else {
				paren.Unterminated = true
			}
			p.deliver(paren)
			if closing {
				return
			}
		}
	}
}
