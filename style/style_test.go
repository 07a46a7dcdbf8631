package style

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/amu/internal/tracing"
)

func TestMapSamples(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	styles := [...]Style{Bold, Bold, Italic, Italic, Script, Script, Fraktur, DoubleStruck,
		DoubleStruck, SansSerif, Monospace, BoldItalic}
	chars := [...]rune{'A', '7', 'a', 'h', 'C', 'L', 'R', 'R', '1', 'z', '0', 'Q'}
	mapped := [...]rune{
		0x1D400, // MATHEMATICAL BOLD CAPITAL A
		0x1D7D5, // MATHEMATICAL BOLD DIGIT SEVEN
		0x1D44E, // MATHEMATICAL ITALIC SMALL A
		0x210E,  // PLANCK CONSTANT
		0x1D49E, // MATHEMATICAL SCRIPT CAPITAL C
		0x2112,  // SCRIPT CAPITAL L
		0x211C,  // BLACK-LETTER CAPITAL R
		0x211D,  // DOUBLE-STRUCK CAPITAL R
		0x1D7D9, // MATHEMATICAL DOUBLE-STRUCK DIGIT ONE
		0x1D5D3, // MATHEMATICAL SANS-SERIF SMALL Z
		0x1D7F6, // MATHEMATICAL MONOSPACE DIGIT ZERO
		0x1D478, // MATHEMATICAL BOLD ITALIC CAPITAL Q
	}
	for i, c := range chars {
		if m := Map(styles[i], c); m != mapped[i] {
			t.Errorf("expected %s(%q) to be %#U, is %#U", styles[i], c, mapped[i], m)
		}
	}
}

func TestMapFallback(t *testing.T) {
	// no italic, script or fraktur digits, no styled punctuation
	if r := Map(Italic, '3'); r != '3' {
		t.Errorf("expected italic 3 to fall back to 3, is %#U", r)
	}
	if r := Map(Fraktur, '9'); r != '9' {
		t.Errorf("expected fraktur 9 to fall back to 9, is %#U", r)
	}
	if r := Map(Bold, '+'); r != '+' {
		t.Errorf("expected bold + to fall back to +, is %#U", r)
	}
	if r := Map(Bold, 'é'); r != 'é' {
		t.Errorf("expected bold é to fall back to é, is %#U", r)
	}
	if r := Map(Style(99), 'x'); r != 'x' {
		t.Errorf("expected invalid style to fall back, is %#U", r)
	}
}

// Every style maps every ASCII letter and digit to exactly one rune,
// deterministically, and never into a reserved hole of the math block.
func TestMapExhaustive(t *testing.T) {
	reserved := map[rune]bool{
		0x1D455: true, 0x1D49D: true, 0x1D4A0: true, 0x1D4A1: true, 0x1D4A3: true,
		0x1D4A4: true, 0x1D4A7: true, 0x1D4A8: true, 0x1D4AD: true, 0x1D4BA: true,
		0x1D4BC: true, 0x1D4C4: true, 0x1D506: true, 0x1D50B: true, 0x1D50C: true,
		0x1D515: true, 0x1D51D: true, 0x1D53A: true, 0x1D53F: true, 0x1D545: true,
		0x1D547: true, 0x1D548: true, 0x1D549: true, 0x1D551: true,
	}
	for _, st := range Styles() {
		seen := make(map[rune]rune)
		for _, set := range []string{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", "abcdefghijklmnopqrstuvwxyz", "0123456789"} {
			for _, c := range set {
				m := Map(st, c)
				if m != Map(st, c) {
					t.Errorf("%s: mapping of %q is not deterministic", st, c)
				}
				if reserved[m] {
					t.Errorf("%s: %q mapped to reserved code-point %#U", st, c, m)
				}
				if other, dup := seen[m]; dup && m != c {
					t.Errorf("%s: %q and %q both map to %#U", st, other, c, m)
				}
				seen[m] = c
				if s := MapString(st, string(c)); utf8.RuneCountInString(s) != 1 {
					t.Errorf("%s: expected 1 rune for %q, have %q", st, c, s)
				}
			}
		}
	}
}

func TestMapString(t *testing.T) {
	if s := MapString(Script, "CAL"); s != "\U0001D49E\U0001D49Cℒ" {
		t.Errorf("expected script CAL to be 𝒞𝒜ℒ, is %q", s)
	}
	if s := MapString(Bold, "x+1"); s != "𝐱+𝟏" {
		t.Errorf("expected bold x+1 to be 𝐱+𝟏, is %q", s)
	}
	if s := MapString(Plain, "abc"); s != "abc" {
		t.Errorf("expected plain abc to stay abc, is %q", s)
	}
}

func TestScripts(t *testing.T) {
	if s, ok := SuperscriptString("n+1"); !ok || s != "ⁿ⁺¹" {
		t.Errorf("expected superscript n+1 to be ⁿ⁺¹, is %q", s)
	}
	if s, ok := SubscriptString("i k"); !ok || s != "ᵢ ₖ" {
		t.Errorf("expected subscript 'i k' to be 'ᵢ ₖ', is %q", s)
	}
	if _, ok := SuperscriptString("q"); ok {
		t.Errorf("expected superscript q to be impossible")
	}
	if _, ok := SubscriptString("b"); ok {
		t.Errorf("expected subscript b to be impossible")
	}
	if r, ok := Superscript('φ'); !ok || r != 'ᵠ' {
		t.Errorf("expected superscript phi, is %#U", r)
	}
	if r, ok := Subscript('7'); !ok || r != '₇' {
		t.Errorf("expected subscript 7, is %#U", r)
	}
}

func TestMapStringInvalidUTF8(t *testing.T) {
	if s := MapString(Bold, "a\xffb"); s != "𝐚\xff𝐛" {
		t.Errorf("expected invalid byte to be kept between 𝐚 and 𝐛, is %q", s)
	}
	if s := MapString(Bold, "�"); s != "�" {
		t.Errorf("expected replacement character to stay, is %q", s)
	}
}
