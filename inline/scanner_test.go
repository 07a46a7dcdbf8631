package inline

import (
	"testing"

	"github.com/npillmayer/amu/internal/tracing"
)

func scanAll(input string) []lexeme {
	sc := newScanner(input)
	var lexemes []lexeme
	for {
		lx, ok := sc.next()
		if !ok {
			return lexemes
		}
		lexemes = append(lexemes, lx)
	}
}

func TestScannerKinds(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	input := ` "ab c" -1.5 sube\alpha x` + "\U0001F44B\U0001F3FD!"
	kinds := [...]lexKind{lexSpace, lexText, lexNumber, lexSymbol, lexSymbol, lexChar, lexEmoji, lexChar}
	values := [...]string{"", "ab c", "-1.5", "sube", "alpha", "x", "\U0001F44B\U0001F3FD", "!"}
	whites := [...]string{" ", " ", " ", "", " ", "", "", ""}
	lexemes := scanAll(input)
	if len(lexemes) != len(kinds) {
		t.Fatalf("expected %d lexemes, have %d: %v", len(kinds), len(lexemes), lexemes)
	}
	for i, lx := range lexemes {
		if lx.kind != kinds[i] || lx.value != values[i] || lx.white != whites[i] {
			t.Errorf("lexeme #%d: expected %d/%q/%q, have %d/%q/%q", i, kinds[i], values[i], whites[i],
				lx.kind, lx.value, lx.white)
		}
	}
	if lexemes[3].sym == nil || lexemes[3].sym.Output != "⊆" {
		t.Errorf("expected sube to be ⊆, is %v", lexemes[3].sym)
	}
}

func TestScanNumber(t *testing.T) {
	inputs := [...]string{"12", "-3", "1.", ".5", "-.5x", "1.2.3", "-", ".", "-x", "a1"}
	lengths := [...]int{2, 2, 2, 2, 3, 3, 0, 0, 0, 0}
	for i, s := range inputs {
		if n := scanNumber(s); n != lengths[i] {
			t.Errorf("expected number length %d for %q, is %d", lengths[i], s, n)
		}
	}
}

func TestScanEscapes(t *testing.T) {
	// backslash followed by white space or backslash does not escape
	lexemes := scanAll(`\ x\\`)
	if len(lexemes) != 3 {
		t.Fatalf("expected 3 lexemes, have %v", lexemes)
	}
	if lexemes[0].kind != lexSymbol || lexemes[0].sym.Output != " " {
		t.Errorf(`expected '\ ' to be a space symbol, is %v`, lexemes[0])
	}
	if lexemes[2].kind != lexSymbol || lexemes[2].sym.Output != `\` {
		t.Errorf(`expected '\\' to be a backslash symbol, is %v`, lexemes[2])
	}
	lexemes = scanAll(`\q`)
	if len(lexemes) != 2 || lexemes[0].kind != lexChar || lexemes[0].value != `\` {
		t.Errorf(`expected '\q' to be two characters, is %v`, lexemes)
	}
}

func TestScanUnterminatedQuote(t *testing.T) {
	lexemes := scanAll(`"ab`)
	if len(lexemes) != 3 || lexemes[0].kind != lexChar || lexemes[0].value != `"` {
		t.Errorf("expected unterminated quote to be a character, is %v", lexemes)
	}
}
