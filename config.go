package amu

import (
	"fmt"
	"strings"
)

// Config holds the options for one rendering run. Configs are plain values
// and are not changed by the renderer; every call to a rendering function
// receives its own copy.
type Config struct {
	StripBrackets bool     // omit brackets which only group a substituted expression
	VulgarFracs   bool     // prefer precomposed fractions like ½
	ScriptFracs   bool     // compose other fractions from super- and subscript digits
	SkinTone      SkinTone // modifier for emoji which support skin tones
}

// DefaultConfig returns the configuration an interactive user will most
// likely want: brackets stripped, vulgar and script fractions enabled and
// no skin tone.
//
// The rendering engine itself never assumes any defaults.
func DefaultConfig() Config {
	return Config{
		StripBrackets: true,
		VulgarFracs:   true,
		ScriptFracs:   true,
		SkinTone:      ToneDefault,
	}
}

func (c Config) String() string {
	return fmt.Sprintf("[strip=%v vulgar=%v script=%v tone=%s]",
		c.StripBrackets, c.VulgarFracs, c.ScriptFracs, c.SkinTone)
}

// SkinTone is one of 6 skin tones for emoji, as defined in UTS #51.
type SkinTone int8

// Skin tones. ToneDefault will not modify emoji, all the other ones
// correspond to a Fitzpatrick modifier.
const (
	ToneDefault     SkinTone = iota // no modifier, yellow
	ToneLight                       // U+1F3FB, Fitzpatrick type 1-2
	ToneMediumLight                 // U+1F3FC, Fitzpatrick type 3
	ToneMedium                      // U+1F3FD, Fitzpatrick type 4
	ToneMediumDark                  // U+1F3FE, Fitzpatrick type 5
	ToneDark                        // U+1F3FF, Fitzpatrick type 6
)

var toneNames = [...]string{"Default", "Light", "MediumLight", "Medium", "MediumDark", "Dark"}

func (t SkinTone) String() string {
	if t < ToneDefault || t > ToneDark {
		return fmt.Sprintf("SkinTone(%d)", int8(t))
	}
	return toneNames[t]
}

// Modifier returns the emoji modifier code-point for a skin tone.
// For ToneDefault (or an invalid tone) it returns false.
func (t SkinTone) Modifier() (rune, bool) {
	switch t {
	case ToneLight:
		return 0x1F3FB, true
	case ToneMediumLight:
		return 0x1F3FC, true
	case ToneMedium:
		return 0x1F3FD, true
	case ToneMediumDark:
		return 0x1F3FE, true
	case ToneDark:
		return 0x1F3FF, true
	}
	return 0, false
}

// ParseSkinTone converts a tone name into a SkinTone. Matching ignores case,
// dashes and underscores, so "medium-dark", "MediumDark" and "medium_dark"
// all denote ToneMediumDark. An empty string is ToneDefault.
func ParseSkinTone(s string) (SkinTone, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	if norm == "" {
		return ToneDefault, nil
	}
	for i, name := range toneNames {
		if strings.ToLower(name) == norm {
			return SkinTone(i), nil
		}
	}
	return ToneDefault, fmt.Errorf("unknown skin tone %q", s)
}

// SkinTones lists all skin tones in order.
func SkinTones() []SkinTone {
	return []SkinTone{ToneDefault, ToneLight, ToneMediumLight, ToneMedium, ToneMediumDark, ToneDark}
}
