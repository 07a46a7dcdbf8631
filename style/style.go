/*
Package style maps letters and digits to styled alphabets.

Unicode encodes bold, italic, script, fraktur, double-struck, sans-serif and
monospace variants of the Latin letters and of the decimal digits in the
Mathematical Alphanumeric Symbols block (U+1D400–U+1D7FF). Most of the
variants are laid out as contiguous runs of 26 (or 10) code-points, starting
at a per-style offset. A few letters had been encoded earlier in the
Letterlike Symbols block (for example ℎ, ℬ, ℭ, ℂ); their slots in the
Mathematical Alphanumeric block are reserved and must not be used.

Not every style has digits (there are no italic or fraktur digits). Map
returns the input unchanged for every rune without a styled variant, so
it is total over all runes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"strings"
	"unicode/utf8"
)

// Style is a typeface variant for letters and digits.
type Style int8

// Styles supported by Map.
const (
	Plain Style = iota
	Bold
	Italic
	BoldItalic
	Script
	Fraktur
	DoubleStruck
	SansSerif
	Monospace
)

var styleNames = [...]string{"Plain", "Bold", "Italic", "BoldItalic", "Script",
	"Fraktur", "DoubleStruck", "SansSerif", "Monospace"}

func (st Style) String() string {
	if st < Plain || st > Monospace {
		return "Style(?)"
	}
	return styleNames[st]
}

// Styles lists all styles in order.
func Styles() []Style {
	return []Style{Plain, Bold, Italic, BoldItalic, Script, Fraktur, DoubleStruck,
		SansSerif, Monospace}
}

// alphabet holds the start code-points of a style. A zero value for digits
// flags a style without digits.
type alphabet struct {
	upper, lower, digits rune
	holes                map[rune]rune // letters encoded outside the contiguous run
}

var alphabets = [...]alphabet{
	Plain:      {upper: 'A', lower: 'a', digits: '0'},
	Bold:       {upper: 0x1D400, lower: 0x1D41A, digits: 0x1D7CE},
	Italic:     {upper: 0x1D434, lower: 0x1D44E, holes: map[rune]rune{'h': 0x210E}},
	BoldItalic: {upper: 0x1D468, lower: 0x1D482},
	Script: {upper: 0x1D49C, lower: 0x1D4B6, holes: map[rune]rune{
		'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B, 'I': 0x2110,
		'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
		'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
	}},
	Fraktur: {upper: 0x1D504, lower: 0x1D51E, holes: map[rune]rune{
		'C': 0x212D, 'H': 0x210C, 'I': 0x2111, 'R': 0x211C, 'Z': 0x2128,
	}},
	DoubleStruck: {upper: 0x1D538, lower: 0x1D552, digits: 0x1D7D8, holes: map[rune]rune{
		'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119, 'Q': 0x211A,
		'R': 0x211D, 'Z': 0x2124,
	}},
	SansSerif: {upper: 0x1D5A0, lower: 0x1D5BA, digits: 0x1D7E2},
	Monospace: {upper: 0x1D670, lower: 0x1D68A, digits: 0x1D7F6},
}

// Map returns the code-point for r in style st. Runes other than ASCII
// letters and digits, and letters or digits without a variant in st, are
// returned unchanged.
func Map(st Style, r rune) rune {
	if st <= Plain || st > Monospace {
		return r
	}
	a := &alphabets[st]
	if c, ok := a.holes[r]; ok {
		return c
	}
	switch {
	case 'A' <= r && r <= 'Z':
		return a.upper + (r - 'A')
	case 'a' <= r && r <= 'z':
		return a.lower + (r - 'a')
	case '0' <= r && r <= '9':
		if a.digits == 0 {
			return r
		}
		return a.digits + (r - '0')
	}
	return r
}

// MapString applies Map to every rune of s. Bytes which are not valid UTF-8
// are copied unchanged.
func MapString(st Style, s string) string {
	if st == Plain {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && w == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(Map(st, r))
		}
		i += w
	}
	return b.String()
}
