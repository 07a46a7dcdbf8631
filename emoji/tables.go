package emoji

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Code-point ranges as pairs of (first, last), taken from emoji-data.txt of
// Unicode 15.0.

var modifierBaseRanges = []rune{
	0x261D, 0x261D, 0x26F9, 0x26F9, 0x270A, 0x270D,
	0x1F385, 0x1F385, 0x1F3C2, 0x1F3C4, 0x1F3C7, 0x1F3C7, 0x1F3CA, 0x1F3CC,
	0x1F442, 0x1F443, 0x1F446, 0x1F450, 0x1F466, 0x1F478, 0x1F47C, 0x1F47C,
	0x1F481, 0x1F483, 0x1F485, 0x1F487, 0x1F48F, 0x1F48F, 0x1F491, 0x1F491,
	0x1F4AA, 0x1F4AA, 0x1F574, 0x1F575, 0x1F57A, 0x1F57A, 0x1F590, 0x1F590,
	0x1F595, 0x1F596, 0x1F645, 0x1F647, 0x1F64B, 0x1F64F, 0x1F6A3, 0x1F6A3,
	0x1F6B4, 0x1F6B6, 0x1F6C0, 0x1F6C0, 0x1F6CC, 0x1F6CC, 0x1F90C, 0x1F90C,
	0x1F90F, 0x1F90F, 0x1F918, 0x1F91F, 0x1F926, 0x1F926, 0x1F930, 0x1F939,
	0x1F93C, 0x1F93E, 0x1F977, 0x1F977, 0x1F9B5, 0x1F9B6, 0x1F9B8, 0x1F9B9,
	0x1F9BB, 0x1F9BB, 0x1F9CD, 0x1F9CF, 0x1F9D1, 0x1F9DD, 0x1FAC3, 0x1FAC5,
	0x1FAF0, 0x1FAF8,
}

var modifierRanges = []rune{
	0x1F3FB, 0x1F3FF,
}

var componentRanges = []rune{
	0x0023, 0x0023, 0x002A, 0x002A, 0x0030, 0x0039, // keycap bases
	0x200D, 0x200D, 0x20E3, 0x20E3, 0xFE0F, 0xFE0F,
	0x1F1E6, 0x1F1FF, // regional indicators
	0x1F9B0, 0x1F9B3, // hair components
	0xE0020, 0xE007F, // tags
}

var pictographicRanges = []rune{
	0x00A9, 0x00A9, 0x00AE, 0x00AE, 0x203C, 0x203C, 0x2049, 0x2049,
	0x2122, 0x2122, 0x2139, 0x2139, 0x231A, 0x231B, 0x2328, 0x2328,
	0x23CF, 0x23CF, 0x23E9, 0x23F3, 0x23F8, 0x23FA, 0x24C2, 0x24C2,
	0x25B6, 0x25B6, 0x25C0, 0x25C0, 0x25FB, 0x25FE,
	0x2600, 0x2605, 0x2607, 0x2612, 0x2614, 0x2685, 0x2690, 0x2705,
	0x2708, 0x2712, 0x2714, 0x2714, 0x2716, 0x2716, 0x271D, 0x271D,
	0x2721, 0x2721, 0x2728, 0x2728, 0x2733, 0x2734, 0x2744, 0x2744,
	0x2747, 0x2747, 0x274C, 0x274C, 0x274E, 0x274E, 0x2753, 0x2755,
	0x2757, 0x2757, 0x2763, 0x2767, 0x2795, 0x2797, 0x27A1, 0x27A1,
	0x27B0, 0x27B0, 0x27BF, 0x27BF, 0x2934, 0x2935, 0x2B05, 0x2B07,
	0x2B1B, 0x2B1C, 0x2B50, 0x2B50, 0x2B55, 0x2B55, 0x3030, 0x3030,
	0x303D, 0x303D, 0x3297, 0x3297, 0x3299, 0x3299,
	0x1F000, 0x1F0FF, 0x1F10D, 0x1F10F, 0x1F12F, 0x1F12F, 0x1F16C, 0x1F171,
	0x1F17E, 0x1F17F, 0x1F18E, 0x1F18E, 0x1F191, 0x1F19A, 0x1F1AD, 0x1F1E5,
	0x1F201, 0x1F20F, 0x1F21A, 0x1F21A, 0x1F22F, 0x1F22F, 0x1F232, 0x1F23A,
	0x1F23C, 0x1F23F, 0x1F249, 0x1F3FA, 0x1F400, 0x1F53D, 0x1F546, 0x1F64F,
	0x1F680, 0x1F6FF, 0x1F774, 0x1F77F, 0x1F7D5, 0x1F7FF, 0x1F80C, 0x1F80F,
	0x1F848, 0x1F84F, 0x1F85A, 0x1F85F, 0x1F888, 0x1F88F, 0x1F8AE, 0x1F8FF,
	0x1F90C, 0x1F93A, 0x1F93C, 0x1F945, 0x1F947, 0x1FAFF, 0x1FC00, 0x1FFFD,
}

var rangeFromClass [Pictographic + 1]*unicode.RangeTable

var setupOnce sync.Once

// SetupEmojiClasses is the top-level preparation function:
// Create code-point classes for emojis.
// (Concurrency-safe).
func SetupEmojiClasses() {
	setupOnce.Do(setupEmojiClasses)
}

func setupEmojiClasses() {
	tracer().Infof("setting up emoji classes")
	rangeFromClass[Other] = &unicode.RangeTable{}
	rangeFromClass[ModifierBase] = fromRanges(modifierBaseRanges)
	rangeFromClass[Modifier] = fromRanges(modifierRanges)
	rangeFromClass[Component] = fromRanges(componentRanges)
	rangeFromClass[Pictographic] = fromRanges(pictographicRanges)
}

// fromRanges expands (first, last) pairs into a range table.
func fromRanges(pairs []rune) *unicode.RangeTable {
	if len(pairs)%2 != 0 {
		panic("emoji: range list must consist of pairs")
	}
	runes := make([]rune, 0, len(pairs))
	for i := 0; i < len(pairs); i += 2 {
		for r := pairs[i]; r <= pairs[i+1]; r++ {
			runes = append(runes, r)
		}
	}
	return rangetable.New(runes...)
}
