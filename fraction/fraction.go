/*
Package fraction formats fractions of decimal numbers with Unicode code-points.

There are three ways to write a fraction in plain Unicode text:

  ½       a precomposed "vulgar" fraction; exists for a handful of pairs only
  ¹⁷⁄₂₃   superscript numerator, FRACTION SLASH U+2044, subscript denominator
  17/23   just the text

Format chooses between them. Only numerators and denominators consisting of
ASCII digits qualify for the first two forms.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fraction

import (
	"strings"

	"github.com/npillmayer/amu/internal/tracing"
	"github.com/npillmayer/amu/style"
)

// tracer traces with key 'amu.fraction'.
func tracer() tracing.Trace {
	return tracing.Select("fraction")
}

// Slash is U+2044 FRACTION SLASH.
const Slash = '⁄'

var vulgar = map[string]rune{
	"0/3":  '↉',
	"1/10": '⅒',
	"1/9":  '⅑',
	"1/8":  '⅛',
	"1/7":  '⅐',
	"1/6":  '⅙',
	"1/5":  '⅕',
	"1/4":  '¼',
	"1/3":  '⅓',
	"1/2":  '½',
	"2/5":  '⅖',
	"2/3":  '⅔',
	"3/8":  '⅜',
	"3/5":  '⅗',
	"3/4":  '¾',
	"4/5":  '⅘',
	"5/8":  '⅝',
	"5/6":  '⅚',
	"7/8":  '⅞',
}

// Form is the way a fraction gets written.
type Form int8

// Forms of fractions, see package doc.
const (
	PlainForm Form = iota
	VulgarForm
	ScriptForm
)

func (f Form) String() string {
	switch f {
	case VulgarForm:
		return "vulgar"
	case ScriptForm:
		return "script"
	}
	return "plain"
}

// Vulgar returns the precomposed fraction for exactly num/den, if there is one.
// "2/4" is not reduced to "1/2".
func Vulgar(num, den string) (rune, bool) {
	r, ok := vulgar[num+"/"+den]
	return r, ok
}

// IsDigits is true for non-empty strings of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Choose decides on the form Format will use for num/den.
// A precomposed glyph always wins over a script fraction.
func Choose(num, den string, vulgarFracs, scriptFracs bool) Form {
	if !IsDigits(num) || !IsDigits(den) {
		return PlainForm
	}
	if vulgarFracs {
		if _, ok := Vulgar(num, den); ok {
			return VulgarForm
		}
	}
	if scriptFracs {
		return ScriptForm
	}
	return PlainForm
}

// Format writes num/den in the form selected by Choose. Format never drops or
// adds digits: the script form maps digits one by one.
func Format(num, den string, vulgarFracs, scriptFracs bool) string {
	form := Choose(num, den, vulgarFracs, scriptFracs)
	tracer().Debugf("fraction %s/%s as %s", num, den, form)
	switch form {
	case VulgarForm:
		r, _ := Vulgar(num, den)
		return string(r)
	case ScriptForm:
		return Script(num, den, "", "")
	}
	return num + "/" + den
}

// Script writes a script fraction for digit strings num and den. White space
// numWhite goes before the fraction slash, slashWhite after it.
// It panics if num or den contain anything else than digits, as this is a
// programming error.
func Script(num, den, numWhite, slashWhite string) string {
	sup, ok1 := style.SuperscriptString(num)
	sub, ok2 := style.SubscriptString(den)
	if !ok1 || !ok2 || !IsDigits(num) || !IsDigits(den) {
		panic("fraction.Script called for non-digits")
	}
	var b strings.Builder
	b.WriteString(sup)
	b.WriteString(numWhite)
	b.WriteRune(Slash)
	b.WriteString(slashWhite)
	b.WriteString(sub)
	return b.String()
}
