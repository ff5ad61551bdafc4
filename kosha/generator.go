package kosha

import (
	"strings"

	"github.com/ambuda-org/vidyut-cheda-go/sounds"
)

// halantaStopEnding maps a word-final stop consonant to its bare
// (unvoiced, unaspirated) word-final form by place of articulation.
var halantaStopEnding = map[byte]byte{
	'k': 'k', 'K': 'k', 'g': 'k', 'G': 'k',
	'c': 'k', 'C': 'k', 'j': 'k', 'J': 'k',
	'w': 'w', 'W': 'w', 'q': 'w', 'Q': 'w',
	't': 't', 'T': 't', 'd': 't', 'D': 't',
	'p': 'p', 'P': 'p', 'b': 'p', 'B': 'p',
}

// halantaVoicedBefore voices a bare stop before a voiced ending.
var halantaVoicedBefore = map[byte]byte{
	'k': 'g',
	'w': 'q',
	't': 'd',
	'p': 'b',
}

// halantaCandidates are the word-final consonants the halanta family
// applies to: the stops plus nasals, sibilants, and h.
const halantaCandidates = "kKgGNcCjJYwWqQRtTdDnpPbBmSzsh"

// isHalantaCandidate reports whether stem ends in a consonant the halanta
// inflection rules cover.
func isHalantaCandidate(stem string) bool {
	if stem == "" {
		return false
	}
	last := stem[len(stem)-1]
	for i := 0; i < len(halantaCandidates); i++ {
		if halantaCandidates[i] == last {
			return true
		}
	}
	return false
}

// inflectHalantaStem appends sup to stem, replacing stem's final consonant
// with its word-final (and, before a voiced ending, voiced) form.
func inflectHalantaStem(stem, sup string) string {
	if sup != "" && sounds.IsAc(sup[0]) {
		return stem + sup
	}

	n := len(stem)
	prefix := stem[:n-1]
	ending := stem[n-1]

	if mapped, ok := halantaStopEnding[ending]; ok {
		ending = mapped
	}
	if sup != "" && sounds.IsGhosha(sup[0]) {
		if voiced, ok := halantaVoicedBefore[ending]; ok {
			ending = voiced
		}
	}
	return prefix + string([]byte{ending}) + sup
}

// addNominals generates every surface form reachable from stems crossed
// with endings and inserts it into padas, per the stem-ending match
// algorithm: a stem takes an ending if it ends in that ending's declared
// stem_ending; stems with no matching ending fall back to halanta
// inflection via the "_" ending family.
func addNominals(stems map[string][]Pratipadika, endings []endingRule, padas map[string][]PadaEntry) {
	var halantaRules []endingRule
	byStemEnding := make(map[string][]endingRule)
	for _, e := range endings {
		if e.stemEnding == "_" {
			halantaRules = append(halantaRules, e)
			continue
		}
		byStemEnding[e.stemEnding] = append(byStemEnding[e.stemEnding], e)
	}

	for stemText, semantics := range stems {
		matched := false
		for stemEnding, rules := range byStemEnding {
			prefix, ok := strings.CutSuffix(stemText, stemEnding)
			if !ok {
				continue
			}
			matched = true
			for _, rule := range rules {
				surface := prefix + rule.endingText
				for _, stemSemantics := range semantics {
					padas[surface] = append(padas[surface], NewSubanta(Subanta{
						Pratipadika: stemSemantics,
						Linga:       rule.sample.Linga,
						Vacana:      rule.sample.Vacana,
						Vibhakti:    rule.sample.Vibhakti,
					}))
				}
			}
		}

		if !matched && isHalantaCandidate(stemText) {
			for _, rule := range halantaRules {
				surface := inflectHalantaStem(stemText, rule.endingText)
				for _, stemSemantics := range semantics {
					padas[surface] = append(padas[surface], NewSubanta(Subanta{
						Pratipadika: stemSemantics,
						Linga:       rule.sample.Linga,
						Vacana:      rule.sample.Vacana,
						Vibhakti:    rule.sample.Vibhakti,
					}))
				}
			}
		}
	}
}
