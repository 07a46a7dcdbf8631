/*
Package symbols holds the static keyword table of AsciiMath and its Unicode
replacements.

Keywords are matched longest-prefix-first: the input "sube" is the single
keyword ⊆, not ⊂ followed by "e". Most keywords have a TeX alias ("subseteq"),
and a keyword may be escaped by a backslash ("\alpha"), which is handled by
the scanner.

Symbols come in kinds. Constants are simply replaced by their output.
Infix symbols ('/', '_', '^') build fractions and scripts but degrade to
constants when they cannot. Unary and binary symbols take one or two
arguments; left and right symbols open and close groups.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package symbols

import (
	"fmt"

	"github.com/npillmayer/amu/internal/tracing"
	"github.com/npillmayer/amu/style"
)

// tracer traces with key 'amu.symbols'.
func tracer() tracing.Trace {
	return tracing.Select("symbols")
}

// Kind is the syntactic kind of a symbol.
type Kind int8

// Kinds of symbols.
const (
	Const  Kind = iota // replaced by its output
	Infix              // '/', '_', '^'
	Unary              // takes one argument
	Binary             // takes two arguments
	Left               // opens a group
	Right              // closes a group
)

func (k Kind) String() string {
	switch k {
	case Const:
		return "const"
	case Infix:
		return "infix"
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "?"
}

// Op tells unary and binary symbols how to render their arguments.
type Op int8

// Operations of unary and binary symbols.
const (
	NoOp      Op = iota
	Font         // style the argument's letters and digits
	Accent       // combining mark on the middle grapheme of the argument
	AccentAll    // combining mark on every grapheme of the argument
	Sqrt         // √ and an overline
	Text         // argument verbatim
	Enclose      // wrap argument in a pair of delimiters, like |x|
	Func         // function name followed by its argument
	Root         // binary: ∛ and friends
	Frac         // binary: fraction
	Stack        // binary: stackrel, overset, underset
)

// Symbol is an entry of the symbol table.
type Symbol struct {
	Input  string      // AsciiMath keyword
	Output string      // replacement text
	Kind   Kind        // syntactic kind
	Op     Op          // for unary and binary symbols
	Style  style.Style // for Op == Font
	Mark   rune        // for Op == Accent, AccentAll, Sqrt
	Close  string      // closing delimiter for Op == Enclose; Output is the opening one
}

func (sym *Symbol) String() string {
	if sym == nil {
		return "<nil symbol>"
	}
	return fmt.Sprintf("%s(%q→%q)", sym.Kind, sym.Input, sym.Output)
}

// IsInfix is true if the symbol is the infix operator op.
func (sym *Symbol) IsInfix(op string) bool {
	return sym != nil && sym.Kind == Infix && sym.Input == op
}

type entry struct {
	input, output string
	aliases       []string
}

func e(input, output string, aliases ...string) entry {
	return entry{input: input, output: output, aliases: aliases}
}

var operations = []entry{
	e("*", "⋅", "cdot"), e("**", "∗", "ast"), e("***", "⋆", "star"),
	e("//", "/"), e("\\\\", "\\", "backslash", "setminus"),
	e("xx", "×", "times"), e("|><", "⋉", "ltimes"), e("><|", "⋊", "rtimes"),
	e("|><|", "⋈", "bowtie"), e("-:", "÷", "div", "divide"), e("@", "∘", "circ"),
	e("o+", "⊕", "oplus"), e("ox", "⊗", "otimes"), e("o.", "⊙", "odot"),
	e("sum", "∑"), e("prod", "∏"), e("^^", "∧", "wedge"), e("^^^", "⋀", "bigwedge"),
	e("vv", "∨", "vee"), e("vvv", "⋁", "bigvee"), e("nn", "∩", "cap"),
	e("nnn", "⋂", "bigcap"), e("uu", "∪", "cup"), e("uuu", "⋃", "bigcup"),
}

var relations = []entry{
	e("!=", "≠", "ne"), e("<=", "≤", "le", "leq"), e(">=", "≥", "ge", "geq"),
	e("lt", "<"), e("gt", ">"), e("mlt", "≪", "ll"), e("mgt", "≫", "gg"),
	e("-<", "≺", "prec"), e("-<=", "⪯", "preceq"), e(">-", "≻", "succ"),
	e(">-=", "⪰", "succeq"), e("in", "∈"), e("!in", "∉", "notin"),
	e("sub", "⊂", "subset"), e("sup", "⊃", "supset"), e("sube", "⊆", "subseteq"),
	e("supe", "⊇", "supseteq"), e("!sub", "⊄"), e("!sup", "⊅"), e("!sube", "⊈"),
	e("!supe", "⊉"), e("-=", "≡", "equiv"), e("~=", "≅", "cong"),
	e("~~", "≈", "approx"), e("~", "∼", "sim"), e("prop", "∝", "propto"),
}

var logical = []entry{
	e("not", "¬", "neg"), e("=>", "⇒", "implies"), e("<=>", "⇔", "iff"),
	e("AA", "∀", "forall"), e("EE", "∃", "exists"), e("_|_", "⊥", "bot"),
	e("TT", "⊤", "top"), e("|--", "⊢", "vdash"), e("|==", "⊨", "models"),
}

var miscellaneous = []entry{
	e("int", "∫"), e("oint", "∮"), e("del", "∂", "partial"), e("grad", "∇", "nabla"),
	e("+-", "±", "pm"), e("-+", "∓", "mp"), e("O/", "∅", "emptyset"),
	e("oo", "∞", "infty"), e("aleph", "ℵ"), e("/_", "∠", "angle"),
	e("/_\\", "△", "triangle"), e("'", "′", "prime"), e("...", "…", "ldots"),
	e("cdots", "⋯"), e("vdots", "⋮"), e("ddots", "⋱"), e("\\ ", " "),
	e("quad", "  "), e("qquad", "    "), e("frown", "⌢"), e("diamond", "⋄"),
	e("square", "□"), e("|__", "⌊", "lfloor"), e("__|", "⌋", "rfloor"),
	e("|~", "⌈", "lceiling", "lceil"), e("~|", "⌉", "rceiling", "rceil"),
	e("CC", "ℂ"), e("NN", "ℕ"), e("QQ", "ℚ"), e("RR", "ℝ"), e("ZZ", "ℤ"),
	e("hbar", "ℏ"),
}

var greek = []entry{
	e("alpha", "α"), e("beta", "β"), e("gamma", "γ"), e("Gamma", "Γ"),
	e("delta", "δ"), e("Delta", "Δ"), e("epsilon", "ε"), e("varepsilon", "ɛ"),
	e("zeta", "ζ"), e("eta", "η"), e("theta", "θ"), e("Theta", "Θ"),
	e("vartheta", "ϑ"), e("iota", "ι"), e("kappa", "κ"), e("lambda", "λ"),
	e("Lambda", "Λ"), e("mu", "μ"), e("nu", "ν"), e("xi", "ξ"), e("Xi", "Ξ"),
	e("pi", "π"), e("Pi", "Π"), e("rho", "ρ"), e("sigma", "σ"), e("Sigma", "Σ"),
	e("tau", "τ"), e("upsilon", "υ"), e("phi", "ϕ"), e("varphi", "φ"),
	e("Phi", "Φ"), e("chi", "χ"), e("psi", "ψ"), e("Psi", "Ψ"),
	e("omega", "ω"), e("Omega", "Ω"),
}

var arrows = []entry{
	e("uarr", "↑", "uparrow"), e("darr", "↓", "downarrow"),
	e("rarr", "→", "rightarrow"), e("->", "→", "to"),
	e(">->", "↣", "rightarrowtail"), e("->>", "↠", "twoheadrightarrow"),
	e(">->>", "⤖", "twoheadrightarrowtail"), e("|->", "↦", "mapsto"),
	e("larr", "←", "leftarrow"), e("harr", "↔", "leftrightarrow"),
	e("rArr", "⇒", "Rightarrow"), e("lArr", "⇐", "Leftarrow"),
	e("hArr", "⇔", "Leftrightarrow"),
}

var lefts = []entry{
	e("(", "("), e("[", "["), e("{", "{"), e("(:", "⟨", "langle"),
	e("<<", "⟨"), e("{:", ""),
}

var rights = []entry{
	e(")", ")"), e("]", "]"), e("}", "}"), e(":)", "⟩", "rangle"),
	e(">>", "⟩"), e(":}", ""),
}

var infixes = []entry{
	e("/", "/"), e("_", "_"), e("^", "^"),
}

type fontEntry struct {
	names []string
	style style.Style
}

var fonts = []fontEntry{
	{[]string{"bb", "mathbf", "bold"}, style.Bold},
	{[]string{"bbb", "mathbb"}, style.DoubleStruck},
	{[]string{"cc", "mathcal"}, style.Script},
	{[]string{"tt", "mathtt"}, style.Monospace},
	{[]string{"fr", "mathfrak"}, style.Fraktur},
	{[]string{"sf", "mathsf"}, style.SansSerif},
	{[]string{"mathit", "italic"}, style.Italic},
	{[]string{"mathbfit"}, style.BoldItalic},
}

type accentEntry struct {
	names []string
	mark  rune
	all   bool
}

var accents = []accentEntry{
	{[]string{"hat"}, '̂', false},
	{[]string{"bar"}, '̄', false},
	{[]string{"overline"}, '̅', true},
	{[]string{"ul", "underline"}, '̲', true},
	{[]string{"vec"}, '⃗', false},
	{[]string{"dot"}, '̇', false},
	{[]string{"ddot"}, '̈', false},
	{[]string{"tilde"}, '̃', false},
}

// Overline is the combining mark roots extend over their radicand.
const Overline = '̅'

var enclosures = [][3]string{
	{"abs", "|", "|"},
	{"floor", "⌊", "⌋"},
	{"ceil", "⌈", "⌉"},
	{"norm", "‖", "‖"},
}

var functions = []string{
	"sin", "cos", "tan", "sec", "csc", "cot", "arcsin", "arccos", "arctan",
	"sinh", "cosh", "tanh", "sech", "csch", "coth", "exp", "log", "ln",
	"det", "gcd", "lcm",
}

// Roots maps the index of a root to its radical sign.
var Roots = map[string]string{
	"2": "√",
	"3": "∛",
	"4": "∜",
}

// table is the global symbol table, set up at package initialization.
var table = buildTable()

func buildTable() *Trie {
	trie := NewTrie()
	enter := func(sym *Symbol, aliases ...string) {
		trie.Insert(sym.Input, sym)
		for _, a := range aliases {
			trie.Insert(a, sym)
		}
	}
	constKind := func(entries []entry, kind Kind) {
		for _, en := range entries {
			enter(&Symbol{Input: en.input, Output: en.output, Kind: kind}, en.aliases...)
		}
	}
	constKind(operations, Const)
	constKind(relations, Const)
	constKind(logical, Const)
	constKind(miscellaneous, Const)
	constKind(greek, Const)
	constKind(arrows, Const)
	constKind(lefts, Left)
	constKind(rights, Right)
	constKind(infixes, Infix)
	for _, f := range fonts {
		sym := &Symbol{Input: f.names[0], Output: f.names[0], Kind: Unary, Op: Font, Style: f.style}
		enter(sym, f.names[1:]...)
	}
	for _, a := range accents {
		op := Accent
		if a.all {
			op = AccentAll
		}
		sym := &Symbol{Input: a.names[0], Output: a.names[0], Kind: Unary, Op: op, Mark: a.mark}
		enter(sym, a.names[1:]...)
	}
	for _, enc := range enclosures {
		enter(&Symbol{Input: enc[0], Output: enc[1], Close: enc[2], Kind: Unary, Op: Enclose})
	}
	for _, f := range functions {
		enter(&Symbol{Input: f, Output: f, Kind: Unary, Op: Func})
	}
	enter(&Symbol{Input: "sqrt", Output: "√", Kind: Unary, Op: Sqrt, Mark: Overline})
	enter(&Symbol{Input: "text", Output: "text", Kind: Unary, Op: Text}, "mbox")
	enter(&Symbol{Input: "root", Output: "root", Kind: Binary, Op: Root, Mark: Overline})
	enter(&Symbol{Input: "frac", Output: "frac", Kind: Binary, Op: Frac})
	enter(&Symbol{Input: "stackrel", Output: "stackrel", Kind: Binary, Op: Stack}, "overset", "underset")
	tracer().Debugf("symbol table has %d keywords", trie.Size())
	return trie
}

// Match returns the symbol for the longest keyword at the start of s,
// and the keyword's length in bytes.
func Match(s string) (*Symbol, int) {
	return table.LongestPrefix(s)
}

// Lookup returns the symbol for a keyword.
func Lookup(keyword string) (*Symbol, bool) {
	return table.Lookup(keyword)
}
