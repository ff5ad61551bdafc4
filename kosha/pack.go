package kosha

import "fmt"

// packKey renders a PadaEntry into a canonical string so structurally equal
// entries (including their slice-valued allowed-linga fields, which Go
// cannot compare with ==) collapse onto the same packed id.
func packKey(e PadaEntry) string {
	switch e.Tag {
	case POSSubanta:
		s := e.Subanta
		return fmt.Sprintf("S|%s|%d|%v|%d|%d|%d|%t",
			s.Pratipadika.Text, s.Pratipadika.IsKrdanta, s.Pratipadika.AllowedLingas,
			s.Linga, s.Vibhakti, s.Vacana, s.IsPurvapada)
	case POSTinanta:
		t := e.Tinanta
		return fmt.Sprintf("T|%s|%d|%d|%d|%d", t.Dhatu.Text, t.Purusha, t.Vacana, t.Lakara, t.PadaPrayoga)
	case POSAvyaya:
		a := e.Avyaya
		return fmt.Sprintf("A|%s|%v", a.Pratipadika.Text, a.Pratipadika.AllowedLingas)
	default:
		return "U"
	}
}

// internAll walks every PadaEntry reachable from padas and assigns each
// distinct one (by packKey) a stable integer id. Called once from New,
// before a Kosha is ever handed to a caller, so the interning table is
// fully built by the time multiple Chedaka.Run calls can share it — Pack
// and Unpack are then pure lookups with no further mutation.
func internAll(padas map[string][]PadaEntry) (packed []PadaEntry, packIndex map[string]int) {
	packIndex = make(map[string]int)
	for _, list := range padas {
		for _, e := range list {
			key := packKey(e)
			if _, ok := packIndex[key]; ok {
				continue
			}
			packIndex[key] = len(packed)
			packed = append(packed, e)
		}
	}
	return packed, packIndex
}

// Pack returns the stable integer id entry was interned under at
// construction time. Packing the same logical entry twice (even across
// separately constructed Subanta values with equal fields) returns the
// same id. Pack never mutates the Kosha, so it is safe to call from
// multiple goroutines sharing one Kosha. An entry Kosha.New never
// produced — a broken invariant in the caller — reports -1.
func (k *Kosha) Pack(entry PadaEntry) int {
	if id, ok := k.packIndex[packKey(entry)]; ok {
		return id
	}
	return -1
}

// Unpack returns the entry previously interned under id. Calling Unpack
// with an id never returned by Pack on this Kosha indicates a broken
// invariant in the caller.
func (k *Kosha) Unpack(id int) (PadaEntry, bool) {
	if id < 0 || id >= len(k.packed) {
		return PadaEntry{}, false
	}
	return k.packed[id], true
}
