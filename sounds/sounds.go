// Package sounds classifies the bytes of an SLP1-encoded Sanskrit string.
//
// SLP1 is a one-byte-per-phoneme ASCII encoding: every class below is a
// closed, fixed set of SLP1 bytes rather than a Unicode property, so plain
// byte membership checks are enough — no rune decoding is needed.
package sounds

// vowels are the SLP1 vowel graphemes, long and short.
const vowels = "aAiIuUfFxXeEoO"

// consonants are every SLP1 consonant grapheme, grouped by place of
// articulation (velar, palatal, retroflex, dental, labial, semivowel,
// sibilant).
const consonants = "kKgGN" + "cCjJY" + "wWqQR" + "tTdDn" + "pPbBm" + "yrlv" + "Szs" + "h"

// voicedConsonants are consonants pronounced with vocal-cord vibration:
// unaspirated/aspirated voiced stops, nasals, semivowels, and h.
const voicedConsonants = "gGN" + "jJY" + "qQR" + "dDn" + "bBm" + "yrlv" + "h"

// wordFinal are the SLP1 bytes that may legally end a Sanskrit word: every
// vowel, visarga, and a small closed set of word-final consonants.
const wordFinal = vowels + "H" + "kNwRtpnmsr"

const anusvara = 'M'
const visarga = 'H'

// IsSanskrit reports whether b is part of the SLP1 alphabet (vowel,
// consonant, anusvara, or visarga). Anything else — whitespace, digits,
// punctuation, non-ASCII bytes — is "non-Sanskrit" and passes through the
// chedaka untouched.
func IsSanskrit(b byte) bool {
	return IsVowel(b) || IsConsonant(b) || b == anusvara || b == visarga
}

// IsVowel reports whether b is an SLP1 vowel grapheme.
func IsVowel(b byte) bool {
	return contains(vowels, b)
}

// IsAc is an alias for IsVowel, matching the "ac" (vowel) pratyahara used
// throughout the sandhi and strict-mode rules.
func IsAc(b byte) bool {
	return IsVowel(b)
}

// IsConsonant reports whether b is an SLP1 consonant grapheme.
func IsConsonant(b byte) bool {
	return contains(consonants, b)
}

// IsGhosha ("voiced") reports whether b is pronounced with voicing: every
// vowel, anusvara, and voiced consonant. Used to decide whether a
// halanta stem's final consonant should itself voice before an ending.
func IsGhosha(b byte) bool {
	if IsVowel(b) || b == anusvara {
		return true
	}
	return contains(voicedConsonants, b)
}

// IsWordFinal reports whether b may legally end a Sanskrit word: a vowel,
// visarga, or one of the small set of permitted final consonants
// (k N w R t p n m s r).
func IsWordFinal(b byte) bool {
	return contains(wordFinal, b)
}

func contains(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}
