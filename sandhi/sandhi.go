// Package sandhi enumerates the (prefix, suffix) pairs a Sanskrit
// substring may represent once reversible phonological fusion across word
// boundaries ("sandhi") is accounted for.
package sandhi

import (
	"strings"

	"github.com/ambuda-org/vidyut-cheda-go/sounds"
)

// Kind distinguishes a no-op prefix split from one that reverses an
// applied sandhi rule.
type Kind int

const (
	// KindPrefix is the trivial split: no sandhi rule was applied.
	KindPrefix Kind = iota
	// KindStandardSandhi reverses one rule from the SandhiMap.
	KindStandardSandhi
)

// Location records why a split ended where it did.
type Location int

const (
	// LocationWithinChunk means more of the current whitespace-delimited
	// chunk remains after Second.
	LocationWithinChunk Location = iota
	// LocationEndOfChunk holds when Second is empty or begins with a
	// non-Sanskrit (whitespace/punctuation) byte.
	LocationEndOfChunk
)

// Split is a candidate (first, second) division of a substring, produced
// by Splitter.SplitAll.
type Split struct {
	First    string
	Second   string
	Kind     Kind
	Location Location
}

func newSplit(first, second string, kind Kind) Split {
	loc := LocationWithinChunk
	if second == "" || !sounds.IsSanskrit(second[0]) {
		loc = LocationEndOfChunk
	}
	return Split{First: first, Second: second, Kind: kind, Location: loc}
}

// IsEndOfChunk reports whether this split's Location is LocationEndOfChunk.
func (s Split) IsEndOfChunk() bool {
	return s.Location == LocationEndOfChunk
}

// IsValid reports whether First ends in a legal word-final phoneme and
// Second does not open with an impossible consonant cluster. It does not
// check recursion — see IsRecursive.
func (s Split) IsValid() bool {
	return IsGoodFirst(s.First) && IsGoodSecond(s.Second)
}

// IsRecursive reports whether this split makes no progress: Second is
// identical to the text it was split from.
func (s Split) IsRecursive(input string) bool {
	return s.Second == input
}

// sparshaAfterSemivowel are the stop consonants that may not immediately
// follow an initial y/r/l/v.
const sparshaAfterSemivowel = "kKgGNcCjJYwWqQRtTdDnpPbBm"

// IsGoodFirst reports whether text ends in a phoneme that may legally end
// a Sanskrit word: a vowel, visarga, or one of k N w R t p n m s r. An
// empty fragment is trivially good (matches the original's treatment of a
// missing final character).
func IsGoodFirst(text string) bool {
	if text == "" {
		return true
	}
	return sounds.IsWordFinal(text[len(text)-1])
}

// IsGoodSecond reports whether text may legally open a Sanskrit word:
// an initial y, r, l, or v must not be immediately followed by a stop
// consonant.
func IsGoodSecond(text string) bool {
	if len(text) < 2 {
		return true
	}
	if !strings.ContainsRune("yrlv", rune(text[0])) {
		return true
	}
	return !strings.ContainsRune(sparshaAfterSemivowel, rune(text[1]))
}

// Splitter produces candidate splits of a substring against a loaded
// SandhiMap.
type Splitter struct {
	rules *Map
}

// NewSplitter wraps an already-loaded Map.
func NewSplitter(rules *Map) *Splitter {
	return &Splitter{rules: rules}
}

// FromCSV loads a tab-separated rule table from path and returns a ready
// Splitter.
func FromCSV(path string) (*Splitter, error) {
	rules, err := ReadRules(path)
	if err != nil {
		return nil, err
	}
	return NewSplitter(rules), nil
}

// SplitAll enumerates every (first, second) candidate of input: for each
// split point, the trivial prefix split and every sandhi-rule reversal
// whose joined form is a prefix of the remaining text. A joined form is
// only matched if it ends before input's last byte, so a rule whose joined
// form would reach the end of input is not reversed. Longer first
// fragments are emitted first, since they are cheaper for a caller to
// rule out early.
func (s *Splitter) SplitAll(input string) []Split {
	n := len(input)
	if n == 0 {
		return nil
	}
	k := s.rules.maxKeyLen

	var out []Split
	for i := n; i >= 1; i-- {
		out = append(out, newSplit(input[:i], input[i:], KindPrefix))

		upper := n
		if i+k+1 < upper {
			upper = i + k + 1
		}
		for j := i; j < upper; j++ {
			combination := input[i:j]
			for _, r := range s.rules.Get(combination) {
				first := input[:i] + r.First
				second := r.Second + input[j:]
				out = append(out, newSplit(first, second, KindStandardSandhi))
			}
		}
	}
	return out
}
