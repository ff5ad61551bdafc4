package strictmode

import (
	"testing"

	"github.com/ambuda-org/vidyut-cheda-go/kosha"
	"github.com/ambuda-org/vidyut-cheda-go/sandhi"
)

func TestIsValidWordAcceptsAvyaya(t *testing.T) {
	split := sandhi.Split{First: "tatra", Second: "", Location: sandhi.LocationEndOfChunk}
	entry := kosha.NewAvyaya(kosha.Avyaya{Pratipadika: kosha.NewBasicPratipadika("tatra")})

	if !IsValidWord(Phrase{}, split, entry) {
		t.Errorf("expected tatra/Avyaya to be accepted")
	}
}

func TestIsValidWordRejectsSpuriousLocativeSplit(t *testing.T) {
	split := sandhi.Split{First: "grAme", Second: "sa", Location: sandhi.LocationWithinChunk}
	entry := kosha.NewSubanta(kosha.Subanta{
		Pratipadika: kosha.NewBasicPratipadika("grAma", kosha.LingaPum),
		Linga:       kosha.LingaPum,
		Vacana:      kosha.VacanaEka,
		Vibhakti:    kosha.V7,
	})

	if IsValidWord(Phrase{}, split, entry) {
		t.Errorf("expected grAme/sa split to be rejected by the vowel-hiatus rule")
	}
}

func TestIsValidWordRejectsLingaMismatch(t *testing.T) {
	split := sandhi.Split{First: "grAmam", Second: "", Location: sandhi.LocationEndOfChunk}
	entry := kosha.NewSubanta(kosha.Subanta{
		Pratipadika: kosha.NewBasicPratipadika("grAma", kosha.LingaPum),
		Linga:       kosha.LingaStri,
		Vacana:      kosha.VacanaEka,
		Vibhakti:    kosha.V2,
	})

	if IsValidWord(Phrase{}, split, entry) {
		t.Errorf("expected linga mismatch (Pum stem, Stri ending) to be rejected")
	}
}

func TestIsValidWordAllowsLingaMismatchInsideCompound(t *testing.T) {
	split := sandhi.Split{First: "grAmam", Second: "", Location: sandhi.LocationEndOfChunk}
	entry := kosha.NewSubanta(kosha.Subanta{
		Pratipadika: kosha.NewBasicPratipadika("grAma", kosha.LingaPum),
		Linga:       kosha.LingaStri,
		Vacana:      kosha.VacanaEka,
		Vibhakti:    kosha.V2,
	})
	cur := Phrase{
		HasLastToken: true,
		LastToken: kosha.NewSubanta(kosha.Subanta{
			Pratipadika: kosha.NewBasicPratipadika("rAja", kosha.LingaPum),
			IsPurvapada: true,
		}),
	}

	if !IsValidWord(cur, split, entry) {
		t.Errorf("expected linga mismatch to be tolerated inside a compound")
	}
}
