package symbols

import (
	"testing"

	"github.com/npillmayer/amu/internal/tracing"
	"github.com/npillmayer/amu/style"
)

func TestLongestPrefix(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	inputs := [...]string{"^^^^^", "___|", "sube", "subx", "-<=x", "|><|", "|>", "O/x", "alphabet", "->>"}
	keywords := [...]string{"^^^", "_", "sube", "sub", "-<=", "|><|", "", "O/", "alpha", "->>"}
	lengths := [...]int{3, 1, 4, 3, 3, 4, 0, 2, 5, 3}
	for i, s := range inputs {
		sym, n := Match(s)
		if n != lengths[i] {
			t.Errorf("expected match of %q to have length %d, has %d", s, lengths[i], n)
		}
		if keywords[i] == "" {
			if sym != nil {
				t.Errorf("expected no match for %q, have %v", s, sym)
			}
			continue
		}
		want, ok := Lookup(keywords[i])
		if !ok || sym != want {
			t.Errorf("expected %q to match keyword %q, have %v", s, keywords[i], sym)
		}
	}
}

func TestLongestPrefixSplits(t *testing.T) {
	// "___|" reads as "_" followed by "__|"
	s := "___|"
	var parts []string
	for len(s) > 0 {
		sym, n := Match(s)
		if sym == nil {
			t.Fatalf("no symbol at %q", s)
		}
		parts = append(parts, sym.Output)
		s = s[n:]
	}
	if len(parts) != 2 || parts[0] != "_" || parts[1] != "⌋" {
		t.Errorf("expected ___| to split into _ and ⌋, is %v", parts)
	}
}

func TestAliases(t *testing.T) {
	pairs := [...][2]string{
		{"sube", "subseteq"}, {"xx", "times"}, {"->", "to"}, {"bb", "mathbf"},
		{"bb", "bold"}, {"ul", "underline"}, {"text", "mbox"}, {"(:", "langle"},
	}
	for _, p := range pairs {
		a, ok1 := Lookup(p[0])
		b, ok2 := Lookup(p[1])
		if !ok1 || !ok2 || a != b {
			t.Errorf("expected %q to be an alias of %q", p[1], p[0])
		}
	}
}

func TestSymbolKinds(t *testing.T) {
	inputs := [...]string{"alpha", "/", "_", "^", "bb", "sqrt", "root", "frac", "(", ":)", "{:", "abs", "sin"}
	kinds := [...]Kind{Const, Infix, Infix, Infix, Unary, Unary, Binary, Binary, Left, Right, Left, Unary, Unary}
	for i, s := range inputs {
		sym, ok := Lookup(s)
		if !ok {
			t.Errorf("expected keyword %q in symbol table", s)
			continue
		}
		if sym.Kind != kinds[i] {
			t.Errorf("expected %q to be of kind %s, is %s", s, kinds[i], sym.Kind)
		}
	}
	if sym, _ := Lookup("bbb"); sym.Op != Font || sym.Style != style.DoubleStruck {
		t.Errorf("expected bbb to be a double-struck font, is %v", sym)
	}
	if sym, _ := Lookup("ul"); sym.Op != AccentAll || sym.Mark != '̲' {
		t.Errorf("expected ul to underline every grapheme, is %v", sym)
	}
	if sym, _ := Lookup("floor"); sym.Output != "⌊" || sym.Close != "⌋" {
		t.Errorf("expected floor to enclose with ⌊ ⌋, is %v", sym)
	}
	if sym, _ := Lookup("{:"); sym.Output != "" {
		t.Errorf("expected invisible bracket, is %v", sym)
	}
	if !(&Symbol{Input: "/", Kind: Infix}).IsInfix("/") {
		t.Errorf("expected / to be infix")
	}
}

func TestTrie(t *testing.T) {
	trie := NewTrie()
	a := &Symbol{Input: "ab"}
	b := &Symbol{Input: "abcd"}
	trie.Insert("ab", a)
	trie.Insert("abcd", b)
	trie.Insert("", a)
	if trie.Size() != 2 {
		t.Errorf("expected trie size 2, is %d", trie.Size())
	}
	if sym, n := trie.LongestPrefix("abc"); sym != a || n != 2 {
		t.Errorf("expected 'abc' to match 'ab', have %v/%d", sym, n)
	}
	if sym, n := trie.LongestPrefix("abcde"); sym != b || n != 4 {
		t.Errorf("expected 'abcde' to match 'abcd', have %v/%d", sym, n)
	}
	if _, ok := trie.Lookup("abc"); ok {
		t.Errorf("expected 'abc' not to be a keyword")
	}
	it := trie.Iterator()
	if !it.Next('a') || it.Symbol() != nil || !it.Next('b') || it.Symbol() != a {
		t.Errorf("iterator does not walk the trie")
	}
	if it.Next('x') || it.Next('c') {
		t.Errorf("expected iterator to be exhausted")
	}
}
