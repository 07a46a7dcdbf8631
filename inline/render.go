package inline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/npillmayer/amu"
	"github.com/npillmayer/amu/emoji"
	"github.com/npillmayer/amu/fraction"
	"github.com/npillmayer/amu/style"
	"github.com/npillmayer/amu/symbols"
)

// The renderer walks a node tree without recursion. Nodes are expanded into
// work items on a stack. Operators which transform the rendering of their
// arguments (fonts, accents, scripts …) capture the arguments into separate
// buffers, then apply a function to the captured text. Groups which are not
// an operator's argument write straight to the current buffer.

type itemKind int8

const (
	itemEmit  itemKind = iota // write text to the current buffer
	itemNode                  // expand a node
	itemOpen                  // open a capture buffer
	itemClose                 // close a capture buffer and push a capture
	itemApply                 // pop captures and write fn(captures)
)

type item struct {
	kind  itemKind
	text  string
	node  Node
	paren *Paren // for itemClose, if the captured node is a group
	n     int    // for itemApply: number of captures
	fn    func([]capture) string
}

// capture is the rendering of an argument, once as is and once without its
// brackets (if brackets are stripped and the argument is a group).
type capture struct {
	full   string
	pruned string
}

type renderer struct {
	cfg amu.Config
	m   *machine
}

func emit(s string) item {
	return item{kind: itemEmit, text: s}
}

func node(n Node) item {
	return item{kind: itemNode, node: n}
}

func apply(n int, fn func([]capture) string) item {
	return item{kind: itemApply, n: n, fn: fn}
}

// push puts items onto the work stack such that items[0] is executed first.
func (r *renderer) push(items ...item) {
	for i := len(items) - 1; i >= 0; i-- {
		r.m.work.Push(items[i])
	}
}

// capture returns the work items to render n into a capture.
func captureOf(n Node) []item {
	if p, ok := n.(*Paren); ok {
		return []item{{kind: itemOpen}, node(p.Arg), {kind: itemClose, paren: p}}
	}
	return []item{{kind: itemOpen}, node(n), {kind: itemClose}}
}

// render renders a single node.
func (r *renderer) render(n Node) string {
	r.m.openBuffer()
	r.push(node(n))
	for !r.m.work.Empty() {
		it, _ := r.m.work.Pop()
		r.step(it.(item))
	}
	out := r.m.closeBuffer()
	if !r.m.buffers.Empty() || !r.m.results.Empty() {
		panic("renderer stacks not empty after rendering")
	}
	return out
}

func (r *renderer) step(it item) {
	switch it.kind {
	case itemEmit:
		r.m.buffer().WriteString(it.text)
	case itemNode:
		r.expand(it.node)
	case itemOpen:
		r.m.openBuffer()
	case itemClose:
		inner := r.m.closeBuffer()
		c := capture{full: inner, pruned: inner}
		if it.paren != nil {
			c.full = r.group(it.paren, inner)
			if r.cfg.StripBrackets && !it.paren.Unterminated {
				c.pruned = it.paren.Left.White + inner + it.paren.Right.White
			} else {
				c.pruned = c.full
			}
		}
		r.m.results.Push(c)
	case itemApply:
		args := make([]capture, it.n)
		for i := it.n - 1; i >= 0; i-- {
			c, ok := r.m.results.Pop()
			if !ok {
				panic("renderer capture stack underflow")
			}
			args[i] = c.(capture)
		}
		r.m.buffer().WriteString(it.fn(args))
	}
}

func (r *renderer) expand(n Node) {
	switch t := n.(type) {
	case *Value:
		r.push(emit(r.value(t)))
	case *Expression:
		items := make([]item, len(t.Elems))
		for i, e := range t.Elems {
			items[i] = node(e)
		}
		r.push(items...)
	case *Paren:
		left, right := t.Left.Text, t.Right.Text
		if r.cfg.StripBrackets && r.substitutedOnly(t) {
			left, right = "", ""
		}
		r.push(emit(left+t.Left.White), node(t.Arg), emit(right+t.Right.White))
	case *Unary:
		r.unary(t)
	case *Binary:
		r.binary(t)
	case *Script:
		r.script(t)
	case *Fraction:
		r.fraction(t)
	default:
		panic("renderer found unknown node type")
	}
}

func (r *renderer) value(v *Value) string {
	if v.Kind == EmojiValue {
		return emoji.Resolve(v.Text, r.cfg.SkinTone) + v.White
	}
	return v.Text + v.White
}

// group renders a bracket group around its rendered content. Brackets are
// stripped if they only group a substituted construct.
func (r *renderer) group(p *Paren, inner string) string {
	strip := r.cfg.StripBrackets && r.substitutedOnly(p)
	d := Delimiters{Open: p.Left.Text, Close: p.Right.Text}
	return Wrap(d, p.Left.White+inner, strip) + p.Right.White
}

// substitutedOnly is true if a group contains nothing but a construct which
// will be replaced by other characters, like a styled span or a vulgar
// fraction.
func (r *renderer) substitutedOnly(p *Paren) bool {
	switch t := p.core.(type) {
	case *Unary:
		switch t.Sym.Op {
		case symbols.Font, symbols.Accent, symbols.AccentAll, symbols.Sqrt, symbols.Enclose:
			return true
		}
	case *Binary:
		switch t.Sym.Op {
		case symbols.Root:
			_, ok := radical(t)
			return ok
		case symbols.Frac:
			f, _, _, _, _ := r.fractionForm(asFraction(t))
			return f != fraction.PlainForm
		}
	case *Fraction:
		f, _, _, _, _ := r.fractionForm(t)
		return f != fraction.PlainForm
	}
	return false
}

// --- Operators -------------------------------------------------------------

func (r *renderer) unary(u *Unary) {
	var fn func(string) string
	switch u.Sym.Op {
	case symbols.Font:
		st := u.Sym.Style
		fn = func(s string) string { return style.MapString(st, s) }
	case symbols.Accent, symbols.AccentAll:
		mark, all := u.Sym.Mark, u.Sym.Op == symbols.AccentAll
		fn = func(s string) string { return trailing(s, func(b string) string { return marks(b, mark, all) }) }
	case symbols.Sqrt:
		fn = func(s string) string {
			return u.Sym.Output + trailing(s, func(b string) string { return marks(b, symbols.Overline, true) })
		}
	case symbols.Text:
		fn = func(s string) string { return s }
	case symbols.Enclose:
		fn = func(s string) string {
			return trailing(s, func(b string) string { return u.Sym.Output + b + u.Sym.Close })
		}
	default:
		r.push(emit(u.Name.Text+u.Name.White), node(u.Arg))
		return
	}
	r.push(append(captureOf(u.Arg), apply(1, func(a []capture) string {
		return fn(a[0].pruned)
	}))...)
}

func (r *renderer) binary(b *Binary) {
	switch b.Sym.Op {
	case symbols.Root:
		if rad, ok := radical(b); ok {
			r.push(append(captureOf(b.Second), apply(1, func(a []capture) string {
				return rad + trailing(a[0].pruned, func(s string) string {
					return marks(s, symbols.Overline, true)
				})
			}))...)
			return
		}
	case symbols.Frac:
		r.fraction(asFraction(b))
		return
	}
	r.push(emit(b.Name.Text+b.Name.White), node(b.First), node(b.Second))
}

func radical(b *Binary) (string, bool) {
	index, _, ok := tryValue(b.First)
	if !ok {
		return "", false
	}
	rad, ok := symbols.Roots[index]
	return rad, ok
}

func asFraction(b *Binary) *Fraction {
	return &Fraction{Numer: b.First, White: b.Name.White, Denom: b.Second}
}

// --- Scripts and fractions -------------------------------------------------

func (r *renderer) script(s *Script) {
	items := []item{node(s.Base)}
	switch {
	case s.Sub != nil && s.Sup != nil:
		items = append(items, captureOf(s.Sub)...)
		items = append(items, captureOf(s.Sup)...)
		items = append(items, apply(2, func(a []capture) string {
			sub, ok1 := style.SubscriptString(a[0].pruned)
			sup, ok2 := style.SuperscriptString(a[1].pruned)
			if ok1 && ok2 {
				return s.SubWhite + sub + s.SupWhite + sup
			}
			tracer().Debugf("cannot set %q/%q as scripts", a[0].pruned, a[1].pruned)
			return "_" + s.SubWhite + a[0].full + "^" + s.SupWhite + a[1].full
		}))
	case s.Sub != nil:
		items = append(items, captureOf(s.Sub)...)
		items = append(items, apply(1, func(a []capture) string {
			return scripted(a[0], "_", s.SubWhite, style.SubscriptString)
		}))
	case s.Sup != nil:
		items = append(items, captureOf(s.Sup)...)
		items = append(items, apply(1, func(a []capture) string {
			return scripted(a[0], "^", s.SupWhite, style.SuperscriptString)
		}))
	}
	r.push(items...)
}

func scripted(c capture, op, white string, mapper func(string) (string, bool)) string {
	if s, ok := mapper(c.pruned); ok {
		return white + s
	}
	tracer().Debugf("cannot set %q as script", c.pruned)
	return op + white + c.full
}

func (r *renderer) fraction(f *Fraction) {
	form, num, den, numWhite, denWhite := r.fractionForm(f)
	switch form {
	case fraction.VulgarForm:
		r.push(emit(fraction.Format(num, den, true, false) + denWhite))
	case fraction.ScriptForm:
		r.push(emit(fraction.Script(num, den, numWhite, f.White) + denWhite))
	default:
		r.push(node(f.Numer), emit("/"+f.White), node(f.Denom))
	}
}

// fractionForm decides how to write a fraction. Vulgar fractions look through
// groups around their operands; script fractions do so only if brackets are
// stripped.
func (r *renderer) fractionForm(f *Fraction) (form fraction.Form, num, den, nw, dw string) {
	if r.cfg.VulgarFracs {
		num, _, ok1 := tryValue(f.Numer)
		den, dw, ok2 := tryValue(f.Denom)
		if ok1 && ok2 && fraction.Choose(num, den, true, false) == fraction.VulgarForm {
			return fraction.VulgarForm, num, den, "", dw
		}
	}
	if r.cfg.ScriptFracs {
		num, nw, ok1 := r.scriptOperand(f.Numer)
		den, dw, ok2 := r.scriptOperand(f.Denom)
		if ok1 && ok2 && fraction.Choose(num, den, false, true) == fraction.ScriptForm {
			return fraction.ScriptForm, num, den, nw, dw
		}
	}
	return fraction.PlainForm, "", "", "", ""
}

func (r *renderer) scriptOperand(n Node) (string, string, bool) {
	if v, ok := n.(*Value); ok {
		return v.Text, v.White, true
	}
	if r.cfg.StripBrackets {
		return tryValue(n)
	}
	return "", "", false
}

// --- Helpers ---------------------------------------------------------------

// trailing applies fn to s without its trailing white space.
func trailing(s string, fn func(string) string) string {
	body := strings.TrimRightFunc(s, unicode.IsSpace)
	return fn(body) + s[len(body):]
}

// marks puts a combining mark after every grapheme of s, or after the middle
// one only.
func marks(s string, mark rune, all bool) string {
	var clusters []string
	g := graphemes.FromString(s)
	for g.Next() {
		clusters = append(clusters, g.Value())
	}
	middle := (len(clusters) - 1) / 2
	var b strings.Builder
	b.Grow(len(s) + len(clusters)*utf8.RuneLen(mark))
	for i, c := range clusters {
		b.WriteString(c)
		if all || i == middle {
			b.WriteRune(mark)
		}
	}
	return b.String()
}
