package sandhi

import (
	"testing"
	"unicode/utf8"

	"github.com/ambuda-org/vidyut-cheda-go/sounds"
)

// FuzzSplitAllTrivial checks the invariants of SplitAll against an empty
// rule map, where every split is the trivial prefix split: First+Second
// must reconstruct input exactly, and there must be exactly one split per
// byte offset.
func FuzzSplitAllTrivial(f *testing.F) {
	seeds := []string{"ab", "ceti", "rAma", "a", "", "nara:"}
	for _, s := range seeds {
		f.Add(s)
	}

	splitter := NewSplitter(NewMap())
	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("non-UTF-8 input")
		}

		splits := splitter.SplitAll(input)
		if len(input) == 0 {
			if splits != nil {
				t.Fatalf("SplitAll(%q) = %v, want nil for empty input", input, splits)
			}
			return
		}

		if len(splits) != len(input) {
			t.Fatalf("SplitAll(%q) produced %d splits, want %d (one per byte offset)", input, len(splits), len(input))
		}
		for _, s := range splits {
			if s.Kind != KindPrefix {
				t.Fatalf("SplitAll(%q) with an empty rule map produced a %v split", input, s.Kind)
			}
			if s.First+s.Second != input {
				t.Fatalf("split %+v does not reconstruct %q", s, input)
			}
		}
	})
}

// FuzzSplitLocation checks that every Split's Location matches the rule
// newSplit uses to compute it, regardless of how First/Second were
// produced.
func FuzzSplitLocation(f *testing.F) {
	f.Add("a", "b")
	f.Add("rAma", "")
	f.Add("c", " iti")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, first, second string) {
		s := newSplit(first, second, KindPrefix)

		wantEndOfChunk := second == "" || !sounds.IsSanskrit(second[0])
		if s.IsEndOfChunk() != wantEndOfChunk {
			t.Fatalf("newSplit(%q, %q).IsEndOfChunk() = %v, want %v", first, second, s.IsEndOfChunk(), wantEndOfChunk)
		}
	})
}
