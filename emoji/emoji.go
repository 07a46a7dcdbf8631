/*
Package emoji implements the Unicode UTS #51 emoji classes needed for skin tone
handling, and resolves skin tones for emoji sequences.

From UTS #51:
Five symbol modifier characters that provide for a range of skin tones for
human emoji were released in Unicode Version 8.0. These characters are based
on the six tones of the Fitzpatrick scale. […] When a human emoji is not
immediately followed by an emoji modifier character, it should use a generic,
non-realistic skin tone.

An emoji modifier follows the emoji modifier base it modifies. In a ZWJ
sequence (like "woman technologist", U+1F469 U+200D U+1F4BB) this means the
modifier is placed after the person, not at the end of the sequence.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

Attention

Emoji classes are set up lazily, on first use. Clients may call

  SetupEmojiClasses()

beforehand to avoid paying the setup cost during the first rendering. */
package emoji

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/amu"
	"github.com/npillmayer/amu/internal/tracing"
)

// tracer traces with key 'amu.emoji'.
func tracer() tracing.Trace {
	return tracing.Select("emoji")
}

// Class is an emoji class, as far as needed for skin tone resolution.
type Class int8

// Emoji classes. A code-point may belong to more than one class in UTS #51;
// ClassForRune reports the most specific one.
const (
	Other        Class = iota // no emoji
	ModifierBase              // Emoji_Modifier_Base
	Modifier                  // Emoji_Modifier (skin tones)
	Component                 // Emoji_Component without modifiers: ZWJ, VS-16, keycaps, tags
	Pictographic              // Extended_Pictographic
)

// VS16 is VARIATION SELECTOR-16, requesting emoji presentation.
const VS16 = '\uFE0F'

// ZWJ is ZERO WIDTH JOINER, gluing emoji into sequences.
const ZWJ = '\u200D'

// ClassForRune is the top-level client function:
// get the emoji class for a Unicode code-point.
// Will return Other if the code-point has no emoji-class.
func ClassForRune(r rune) Class {
	SetupEmojiClasses()
	for class := ModifierBase; class <= Pictographic; class++ {
		if unicode.Is(rangeFromClass[class], r) {
			return class
		}
	}
	return Other
}

// IsModifierBase is true for emoji which support skin tones.
func IsModifierBase(r rune) bool {
	SetupEmojiClasses()
	return unicode.Is(rangeFromClass[ModifierBase], r)
}

// IsModifier is true for the five Fitzpatrick skin tone modifiers.
func IsModifier(r rune) bool {
	return 0x1F3FB <= r && r <= 0x1F3FF
}

// IsPictographic is true for code-points which start an emoji, i.e. modifier
// bases and Extended_Pictographic code-points.
func IsPictographic(r rune) bool {
	c := ClassForRune(r)
	return c == ModifierBase || c == Pictographic
}

// IsToneCapable is true if an emoji sequence contains at least one
// emoji modifier base.
func IsToneCapable(seq string) bool {
	for _, r := range seq {
		if IsModifierBase(r) {
			return true
		}
	}
	return false
}

// Resolve applies a skin tone to an emoji sequence. Every modifier base in seq
// which is not already followed by a modifier gets the modifier for tone
// inserted right after it. A VS-16 directly following the base is replaced
// by the modifier, as a modifier implies emoji presentation.
//
// Sequences without modifier bases and ToneDefault leave seq unchanged.
func Resolve(seq string, tone amu.SkinTone) string {
	mod, ok := tone.Modifier()
	if !ok || !IsToneCapable(seq) {
		return seq
	}
	var b strings.Builder
	b.Grow(len(seq) + 8)
	for i := 0; i < len(seq); {
		r, w := utf8.DecodeRuneInString(seq[i:])
		b.WriteString(seq[i : i+w])
		i += w
		if !IsModifierBase(r) {
			continue
		}
		if i < len(seq) {
			next, nw := utf8.DecodeRuneInString(seq[i:])
			if IsModifier(next) {
				continue // keep an explicit tone
			}
			if next == VS16 {
				i += nw
			}
		}
		b.WriteRune(mod)
	}
	tracer().Debugf("resolved %q with tone %s to %q", seq, tone, b.String())
	return b.String()
}
