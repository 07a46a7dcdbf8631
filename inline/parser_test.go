package inline

import (
	"strings"
	"testing"

	"github.com/npillmayer/amu/internal/tracing"
	"github.com/npillmayer/amu/symbols"
)

func parseString(input string) *Expression {
	m := borrowMachine()
	defer m.release()
	return parse(m, input)
}

func TestParseScripts(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	expr := parseString("x_i^2")
	if len(expr.Elems) != 1 {
		t.Fatalf("expected 1 node, have %v", expr)
	}
	s, ok := expr.Elems[0].(*Script)
	if !ok || s.Sub == nil || s.Sup == nil {
		t.Fatalf("expected sub-superscript, have %v", expr.Elems[0])
	}
	if s.Base.(*Value).Text != "x" || s.Sub.(*Value).Text != "i" || s.Sup.(*Value).Text != "2" {
		t.Errorf("unexpected script %v", s)
	}
	// a second subscript does not attach
	expr = parseString("x^2_i")
	if len(expr.Elems) != 3 {
		t.Errorf("expected x^2, _ and i, have %v", expr)
	}
}

func TestParseFraction(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	expr := parseString("a_1/ b^2 c")
	if len(expr.Elems) != 2 {
		t.Fatalf("expected fraction and c, have %v", expr)
	}
	f, ok := expr.Elems[0].(*Fraction)
	if !ok {
		t.Fatalf("expected fraction, have %v", expr.Elems[0])
	}
	if _, ok := f.Numer.(*Script); !ok {
		t.Errorf("expected numerator to be a script, is %v", f.Numer)
	}
	if _, ok := f.Denom.(*Script); !ok {
		t.Errorf("expected denominator to be a script, is %v", f.Denom)
	}
	if f.White != " " {
		t.Errorf("expected white space after slash, is %q", f.White)
	}
	// fractions do not chain
	expr = parseString("1/2/3")
	if len(expr.Elems) != 3 {
		t.Errorf("expected 1/2, / and 3, have %v", expr)
	}
}

func TestParseOperators(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	expr := parseString("hat bb x root 3 y")
	if len(expr.Elems) != 2 {
		t.Fatalf("expected two operators, have %v", expr)
	}
	u, ok := expr.Elems[0].(*Unary)
	if !ok || u.Sym.Input != "hat" {
		t.Fatalf("expected hat, have %v", expr.Elems[0])
	}
	if inner, ok := u.Arg.(*Unary); !ok || inner.Sym.Op != symbols.Font {
		t.Errorf("expected bold argument, have %v", u.Arg)
	}
	b, ok := expr.Elems[1].(*Binary)
	if !ok || b.First.(*Value).Text != "3" || b.Second.(*Value).Text != "y" {
		t.Errorf("expected root 3 y, have %v", expr.Elems[1])
	}
}

func TestParseGroups(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	expr := parseString("(a[b]{:c:})")
	p, ok := expr.Elems[0].(*Paren)
	if !ok || len(expr.Elems) != 1 {
		t.Fatalf("expected a single group, have %v", expr)
	}
	if len(p.Arg.Elems) != 3 || p.Unterminated {
		t.Errorf("expected a, [b] and {:c:} in closed group, have %v", p)
	}
	if inv := p.Arg.Elems[2].(*Paren); inv.Left.Text != "" || inv.Right.Text != "" {
		t.Errorf("expected invisible brackets, have %v", inv)
	}
}

func TestParseDegradation(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	// unterminated group
	expr := parseString("(a+b")
	if p, ok := expr.Elems[0].(*Paren); !ok || !p.Unterminated || p.Right.Text != "" {
		t.Errorf("expected unterminated group, have %v", expr)
	}
	// unmatched closing bracket
	expr = parseString("a)b")
	if len(expr.Elems) != 3 || expr.Elems[1].(*Value).Text != ")" {
		t.Errorf("expected literal ), have %v", expr)
	}
	// unary without argument
	expr = parseString("(sqrt)")
	if v, ok := expr.Elems[0].(*Paren).Arg.Elems[0].(*Value); !ok || v.Text != "sqrt" || v.Kind != RawValue {
		t.Errorf("expected raw sqrt, have %v", expr)
	}
	// binary with a single argument
	expr = parseString("frac 1")
	if len(expr.Elems) != 2 || expr.Elems[0].(*Value).Text != "frac" || expr.Elems[1].(*Value).Text != "1" {
		t.Errorf("expected raw frac and 1, have %v", expr)
	}
	// dangling infix
	expr = parseString("x_")
	if len(expr.Elems) != 2 || expr.Elems[1].(*Value).Text != "_" {
		t.Errorf("expected literal _, have %v", expr)
	}
	expr = parseString("/2")
	if len(expr.Elems) != 2 || expr.Elems[0].(*Value).Text != "/" {
		t.Errorf("expected literal /, have %v", expr)
	}
}

func TestParseLeadingSpace(t *testing.T) {
	expr := parseString("  x")
	if len(expr.Elems) != 2 || expr.Elems[0].(*Value).White != "  " {
		t.Errorf("expected leading white space node, have %v", expr)
	}
	if expr = parseString(""); len(expr.Elems) != 0 {
		t.Errorf("expected empty expression, have %v", expr)
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 100000
	expr := parseString(strings.Repeat("(", depth) + "x")
	n := 0
	for node := expr.Elems[0]; ; n++ {
		p, ok := node.(*Paren)
		if !ok {
			break
		}
		node = p.Arg.Elems[0]
	}
	if n != depth {
		t.Errorf("expected %d nested groups, have %d", depth, n)
	}
}

func TestParseGroupCore(t *testing.T) {
	expr := parseString("(((x)))")
	p := expr.Elems[0].(*Paren)
	if v, ok := p.core.(*Value); !ok || v.Text != "x" {
		t.Errorf("expected x at the bottom of nested groups, have %v", p.core)
	}
	if text, _, ok := tryValue(p); !ok || text != "x" {
		t.Errorf("expected value x through groups, have %q", text)
	}
	if p = parseString("((x y))").Elems[0].(*Paren); p.core != nil {
		t.Errorf("expected no core for a group of two, have %v", p.core)
	}
	p = parseString("((x)").Elems[0].(*Paren)
	if p.core != nil {
		t.Errorf("expected no core for an unterminated group, have %v", p.core)
	}
	if inner := p.Arg.Elems[0].(*Paren); inner.core == nil {
		t.Errorf("expected inner group to have a core")
	}
}
