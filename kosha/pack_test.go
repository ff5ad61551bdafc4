package kosha

import "testing"

func newTestKosha(entries ...PadaEntry) *Kosha {
	padas := map[string][]PadaEntry{"fixture": entries}
	packed, packIndex := internAll(padas)
	return &Kosha{entries: padas, packed: packed, packIndex: packIndex}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	entries := []PadaEntry{
		NewAvyaya(Avyaya{Pratipadika: NewBasicPratipadika("tatra")}),
		NewSubanta(Subanta{
			Pratipadika: NewBasicPratipadika("rAma", LingaPum),
			Linga:       LingaPum,
			Vibhakti:    V1,
			Vacana:      VacanaEka,
		}),
		NewTinanta(Tinanta{Dhatu: Dhatu{Text: "gam"}, Purusha: Prathama, Vacana: VacanaEka, Lakara: Lat}),
	}
	k := newTestKosha(entries...)

	var ids []int
	for _, e := range entries {
		ids = append(ids, k.Pack(e))
	}
	for i, e := range entries {
		got, ok := k.Unpack(ids[i])
		if !ok {
			t.Fatalf("Unpack(%d) missing", ids[i])
		}
		if packKey(got) != packKey(e) {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, e)
		}
	}

	if id := k.Pack(entries[1]); id != ids[1] {
		t.Errorf("Pack of an equal entry returned a new id: %d != %d", id, ids[1])
	}
}

// TestPackUnseenEntryReportsSentinel confirms Pack never mutates the Kosha:
// an entry that was never interned at construction time (the Unknown
// sentinel is never stored in the lexicon) is reported, not silently
// added, so two goroutines calling Pack concurrently never race on a write.
func TestPackUnseenEntryReportsSentinel(t *testing.T) {
	k := newTestKosha(NewAvyaya(Avyaya{Pratipadika: NewBasicPratipadika("tatra")}))

	if id := k.Pack(Unknown); id != -1 {
		t.Errorf("Pack(Unknown) = %d, want -1 (never interned)", id)
	}
	if _, ok := k.Unpack(-1); ok {
		t.Error("Unpack(-1) should report ok=false")
	}
}

func TestUnpackOutOfRangeID(t *testing.T) {
	k := newTestKosha(NewAvyaya(Avyaya{Pratipadika: NewBasicPratipadika("tatra")}))
	if _, ok := k.Unpack(99); ok {
		t.Error("Unpack of an id beyond packed should report ok=false")
	}
}
