// Package scoring composes a lemma unigram model with a bigram transition
// model over a packed 16-bit morphological state to score a partially
// segmented phrase.
package scoring

import "github.com/ambuda-org/vidyut-cheda-go/kosha"

// State is a 16-bit packed Markov state: the upper two bits hold a POS
// tag, the lower 14 bits a POS-specific payload. Two states are equal iff
// their encodings match, which is also how they hash when used as a map
// key (State is a plain comparable uint16 wrapper).
type State uint16

// Initial is the state of an empty phrase: POS tag None, zero payload.
func Initial() State {
	return 0
}

// FromPada packs p's POS tag and morphological payload into a State.
func FromPada(p kosha.PadaEntry) State {
	var payload uint16
	switch p.Tag {
	case kosha.POSSubanta:
		s := p.Subanta
		payload = uint16(s.Linga)<<6 | uint16(s.Vacana)<<4 | uint16(s.Vibhakti)<<1 | b2u16(s.IsPurvapada)
	case kosha.POSTinanta:
		t := p.Tinanta
		payload = uint16(t.Purusha)<<2 | uint16(t.Vacana)
	}
	return State(uint16(posTagBits(p.Tag))<<14 | payload)
}

// posTagBits packs a POS tag into the 2 bits State has for it. None and
// Unknown share the same encoding (0): None only ever appears as the
// initial sentinel before any token is scored, and Unknown only appears
// after one, so the two never need to be distinguished within a single
// State value.
func posTagBits(tag kosha.POSTag) uint16 {
	switch tag {
	case kosha.POSSubanta:
		return 1
	case kosha.POSTinanta:
		return 2
	case kosha.POSAvyaya:
		return 3
	default:
		return 0
	}
}

func b2u16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
