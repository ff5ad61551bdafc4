// Package strictmode hand-filters morphologically valid but contextually
// implausible segmentation candidates before they are scored and pushed
// onto the chedaka's search queue.
package strictmode

import (
	"github.com/ambuda-org/vidyut-cheda-go/kosha"
	"github.com/ambuda-org/vidyut-cheda-go/sandhi"
	"github.com/ambuda-org/vidyut-cheda-go/sounds"
)

// Phrase is the minimal view of a partial search hypothesis the linga-match
// rule needs: the entry of the most recently accepted token, if any.
type Phrase struct {
	LastToken    kosha.PadaEntry
	HasLastToken bool
}

// IsValidWord reports whether entry is an acceptable candidate for split
// given the phrase it would extend. Subanta candidates must pass all three
// hand-coded rules; tinanta candidates are checked against the vowel-hiatus
// rule only; avyaya and unknown candidates always pass.
func IsValidWord(cur Phrase, split sandhi.Split, entry kosha.PadaEntry) bool {
	switch entry.Tag {
	case kosha.POSSubanta:
		s := entry.Subanta
		return ifPurvapadaThenNotChunkEnd(split, s) &&
			ifAcPadaThenNotHal(split, s.IsPurvapada) &&
			ifNotInCompoundThenLingaMatch(cur, s)
	case kosha.POSTinanta:
		return ifAcPadaThenNotHal(split, false)
	default:
		return true
	}
}

// ifPurvapadaThenNotChunkEnd avoids compounds broken by whitespace
// (Darmakzetre vs. Darma kzetre).
func ifPurvapadaThenNotChunkEnd(split sandhi.Split, s kosha.Subanta) bool {
	if s.IsPurvapada {
		return !split.IsEndOfChunk()
	}
	return true
}

// ifAcPadaThenNotHal requires that a vowel-final word is not immediately
// followed by a consonant (iti ca vs. itica), unless the first fragment is
// itself marking a compound member.
func ifAcPadaThenNotHal(split sandhi.Split, isPurvapada bool) bool {
	endsInVowel := split.First != "" && sounds.IsAc(split.First[len(split.First)-1])
	if endsInVowel && !isPurvapada {
		startsInVowel := split.Second != "" && sounds.IsAc(split.Second[0])
		return split.IsEndOfChunk() || startsInVowel
	}
	return true
}

// ifNotInCompoundThenLingaMatch requires a subanta to use an ending that
// matches its stem's declared lingas, unless it is continuing a compound
// (bahuvrihi compounds may shift linga mid-compound).
func ifNotInCompoundThenLingaMatch(cur Phrase, s kosha.Subanta) bool {
	inCompound := false
	if cur.HasLastToken && cur.LastToken.Tag == kosha.POSSubanta {
		inCompound = cur.LastToken.Subanta.IsPurvapada
	}
	if inCompound {
		return true
	}
	if s.Pratipadika.IsKrdanta {
		return true
	}
	return s.Pratipadika.AllowsLinga(s.Linga)
}
