package inline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/npillmayer/amu/emoji"
	"github.com/npillmayer/amu/symbols"
)

// lexKind is the category of a lexeme.
type lexKind int8

const (
	lexText   lexKind = iota // quoted text
	lexNumber                // decimal number
	lexSymbol                // symbol keyword
	lexEmoji                 // emoji grapheme cluster
	lexChar                  // any other single rune
	lexSpace                 // white space at the start of input
)

// lexeme is a unit of input, together with the white space following it.
type lexeme struct {
	kind  lexKind
	value string          // text as read, without quotes or escape
	sym   *symbols.Symbol // for kind lexSymbol
	white string
}

// scanner splits an input string into lexemes. It reads input left to right
// over runes and never backs up.
type scanner struct {
	input string
	pos   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (sc *scanner) init(input string) {
	sc.input = input
	sc.pos = 0
}

// next returns the next lexeme, or false at the end of input.
func (sc *scanner) next() (lexeme, bool) {
	if sc.pos >= len(sc.input) {
		return lexeme{}, false
	}
	if sc.pos == 0 {
		if ws := sc.whitespace(); ws != "" {
			return lexeme{kind: lexSpace, white: ws}, true
		}
	}
	rest := sc.input[sc.pos:]
	var lx lexeme
	if text, n := scanText(rest); n > 0 {
		lx = lexeme{kind: lexText, value: text}
		sc.pos += n
	} else if n := scanNumber(rest); n > 0 {
		lx = lexeme{kind: lexNumber, value: rest[:n]}
		sc.pos += n
	} else if sym, kw, n := scanSymbol(rest); n > 0 {
		lx = lexeme{kind: lexSymbol, value: kw, sym: sym}
		sc.pos += n
	} else if cluster := scanEmoji(rest); cluster != "" {
		lx = lexeme{kind: lexEmoji, value: cluster}
		sc.pos += len(cluster)
	} else {
		_, w := utf8.DecodeRuneInString(rest)
		lx = lexeme{kind: lexChar, value: rest[:w]}
		sc.pos += w
	}
	lx.white = sc.whitespace()
	return lx, true
}

func (sc *scanner) whitespace() string {
	start := sc.pos
	for sc.pos < len(sc.input) {
		r, w := utf8.DecodeRuneInString(sc.input[sc.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		sc.pos += w
	}
	return sc.input[start:sc.pos]
}

// scanText matches "…". An unterminated quote does not match.
func scanText(s string) (string, int) {
	if len(s) == 0 || s[0] != '"' {
		return "", 0
	}
	end := strings.IndexByte(s[1:], '"')
	if end < 0 {
		return "", 0
	}
	return s[1 : end+1], end + 2
}

// scanNumber matches -?(\d+(\.\d*)?|\d*\.\d+) and returns its length in bytes.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	i = digits(s, i)
	if i > start {
		if i < len(s) && s[i] == '.' {
			i = digits(s, i+1)
		}
		return i
	}
	if i < len(s) && s[i] == '.' {
		if j := digits(s, i+1); j > i+1 {
			return j
		}
	}
	return 0
}

func digits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// scanSymbol matches the longest symbol keyword at the start of s. A keyword
// may be escaped by a backslash, as long as the backslash is followed by
// something other than white space or another backslash.
// It returns the symbol, the keyword without escape, and the number of bytes
// consumed.
func scanSymbol(s string) (*symbols.Symbol, string, int) {
	offset := 0
	if len(s) > 1 && s[0] == '\\' {
		r, _ := utf8.DecodeRuneInString(s[1:])
		if r != '\\' && !unicode.IsSpace(r) {
			offset = 1
		}
	}
	sym, n := symbols.Match(s[offset:])
	if sym == nil || n == 0 {
		return nil, "", 0
	}
	return sym, s[offset : offset+n], offset + n
}

// scanEmoji returns the complete grapheme cluster at the start of s, if the
// cluster starts with a pictographic rune or an emoji modifier base.
func scanEmoji(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if !emoji.IsPictographic(r) && !emoji.IsModifierBase(r) {
		return ""
	}
	return graphemes.FromString(s).First()
}
