// Package translit provides a minimal IAST→SLP1 adapter.
//
// This is deliberately thin: a longest-match glyph table, not a general
// transliteration engine — full script conversion is an external
// collaborator's job, not this package's.
package translit

// glyphs maps IAST multi-character and single-character sequences to their
// SLP1 equivalent. Longer keys are tried first so that e.g. "ai" matches
// before "a".
var glyphs = map[string]string{
	"ā": "A", "ī": "I", "ū": "U",
	"ṛ": "f", "ṝ": "F", "ḷ": "x", "ḹ": "X",
	"ai": "E", "au": "O",
	"ṃ": "M", "ḥ": "H", "ṅ": "N",
	"kh": "K", "gh": "G",
	"ch": "C", "jh": "J", "ñ": "Y",
	"ṭ": "w", "ṭh": "W", "ḍ": "q", "ḍh": "Q",
	"th": "T", "dh": "D",
	"ph": "P", "bh": "B",
	"ṇ": "R", "ś": "S", "ṣ": "z", "ḻ": "L",
}

// maxGlyphRunes is the length, in runes, of the longest IAST glyph above.
const maxGlyphRunes = 2

// ToSLP1 converts an IAST string to SLP1 using a longest-match lookup
// against glyphs. Runes with no IAST mapping (plain ASCII letters, digits,
// punctuation, whitespace) pass through unchanged.
func ToSLP1(input string) string {
	chars := []rune(input)
	var out []byte
	i := 0
	for i < len(chars) {
		matched := ""
		matchedLen := 0
		for length := maxGlyphRunes; length >= 1; length-- {
			end := i + length
			if end > len(chars) {
				continue
			}
			candidate := string(chars[i:end])
			if slp1, ok := glyphs[candidate]; ok {
				matched = slp1
				matchedLen = length
				break
			}
		}
		if matchedLen == 0 {
			out = append(out, string(chars[i])...)
			i++
			continue
		}
		out = append(out, matched...)
		i += matchedLen
	}
	return string(out)
}
