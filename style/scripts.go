package style

import "unicode"

// Unicode has superscript and subscript forms for the digits and for a
// patchy subset of the Latin and Greek letters, mostly from the Phonetic
// Extensions blocks. Letters missing here (superscript q, most subscript
// consonants) simply do not exist.

var superscripts = map[rune]rune{
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ', 'f': 'ᶠ', 'g': 'ᵍ',
	'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ', 'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ', 'n': 'ⁿ',
	'o': 'ᵒ', 'p': 'ᵖ', 'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ', 'u': 'ᵘ', 'v': 'ᵛ',
	'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ',
	'A': 'ᴬ', 'B': 'ᴮ', 'D': 'ᴰ', 'E': 'ᴱ', 'G': 'ᴳ', 'H': 'ᴴ', 'I': 'ᴵ',
	'J': 'ᴶ', 'K': 'ᴷ', 'L': 'ᴸ', 'M': 'ᴹ', 'N': 'ᴺ', 'O': 'ᴼ', 'P': 'ᴾ',
	'R': 'ᴿ', 'T': 'ᵀ', 'U': 'ᵁ', 'V': 'ⱽ', 'W': 'ᵂ',
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'α': 'ᵅ', 'β': 'ᵝ', 'γ': 'ᵞ', 'δ': 'ᵟ', 'ε': 'ᵋ', 'θ': 'ᶿ', 'ι': 'ᶥ',
	'Φ': 'ᶲ', 'φ': 'ᵠ', 'ϕ': 'ᵠ', 'χ': 'ᵡ',
}

var subscripts = map[rune]rune{
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ',
	'n': 'ₙ', 'o': 'ₒ', 'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ',
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'β': 'ᵦ', 'γ': 'ᵧ', 'ρ': 'ᵨ', 'φ': 'ᵩ', 'ϕ': 'ᵩ', 'χ': 'ᵪ',
}

// Superscript returns the superscript form of r, if Unicode has one.
func Superscript(r rune) (rune, bool) {
	s, ok := superscripts[r]
	return s, ok
}

// Subscript returns the subscript form of r, if Unicode has one.
func Subscript(r rune) (rune, bool) {
	s, ok := subscripts[r]
	return s, ok
}

// SuperscriptString maps every rune of s to its superscript form. White space
// is kept as is. If any other rune has no superscript form, it returns false.
func SuperscriptString(s string) (string, bool) {
	return mapAll(s, superscripts)
}

// SubscriptString maps every rune of s to its subscript form. White space
// is kept as is. If any other rune has no subscript form, it returns false.
func SubscriptString(s string) (string, bool) {
	return mapAll(s, subscripts)
}

func mapAll(s string, table map[rune]rune) (string, bool) {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if m, ok := table[r]; ok {
			out = append(out, m)
		} else if unicode.IsSpace(r) {
			out = append(out, r)
		} else {
			return "", false
		}
	}
	return string(out), true
}
