package kosha

import "github.com/ambuda-org/vidyut-cheda-go/internal/config"

// Kosha is the built lexicon: a surface-form multimap plus the interning
// table Pack/Unpack use to give search-scoped code a stable integer handle
// on an entry. Immutable once New returns — every field is fully populated
// at construction time and never written to again — so one Kosha may be
// shared, without locking, across concurrent Chedaka.Run calls.
type Kosha struct {
	entries map[string][]PadaEntry

	packed    []PadaEntry
	packIndex map[string]int
}

// New builds a Kosha from the pada, stem, and ending tables found at the
// fixed filenames under paths, generating nominal forms from stems crossed
// with inflectional endings per the construction algorithm.
func New(paths config.DataPaths) (*Kosha, error) {
	padas, err := readPadas(paths.PadaTable())
	if err != nil {
		return nil, err
	}
	stems, err := readStems(paths.StemTable())
	if err != nil {
		return nil, err
	}
	endings, err := readEndings(paths.EndingTable())
	if err != nil {
		return nil, err
	}

	addNominals(stems, endings, padas)

	packed, packIndex := internAll(padas)
	log.Info().
		Int("surface_forms", len(padas)).
		Int("packed_entries", len(packed)).
		Msg("loaded kosha")
	return &Kosha{
		entries:   padas,
		packed:    packed,
		packIndex: packIndex,
	}, nil
}

// GetAll returns every PadaEntry registered under surface, or nil if none
// exist. Lookup never fails.
func (k *Kosha) GetAll(surface string) []PadaEntry {
	return k.entries[surface]
}
