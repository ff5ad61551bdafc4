package kosha

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ambuda-org/vidyut-cheda-go/vidyuterr"
	"github.com/pkg/errors"
)

func splitLingas(field string) []Linga {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	out := make([]Linga, 0, len(parts))
	for _, p := range parts {
		out = append(out, parseLinga(p))
	}
	return out
}

func parseLinga(s string) Linga {
	switch s {
	case "Pum":
		return LingaPum
	case "Stri":
		return LingaStri
	case "Npun":
		return LingaNpun
	default:
		return LingaNone
	}
}

func parseVacana(s string) Vacana {
	switch s {
	case "Eka":
		return VacanaEka
	case "Dvi":
		return VacanaDvi
	case "Bahu":
		return VacanaBahu
	default:
		return VacanaNone
	}
}

func parseVibhakti(s string) Vibhakti {
	switch s {
	case "V1":
		return V1
	case "V2":
		return V2
	case "V3":
		return V3
	case "V4":
		return V4
	case "V5":
		return V5
	case "V6":
		return V6
	case "V7":
		return V7
	case "Sambodhana":
		return Sambodhana
	default:
		return VibhaktiNone
	}
}

func parsePurusha(s string) Purusha {
	switch s {
	case "Prathama":
		return Prathama
	case "Madhyama":
		return Madhyama
	case "Uttama":
		return Uttama
	default:
		return PurushaNone
	}
}

func parseLakara(s string) Lakara {
	switch s {
	case "Lat":
		return Lat
	case "Lit":
		return Lit
	case "Lut":
		return Lut
	case "Lrt":
		return Lrt
	case "Lot":
		return Lot
	case "Lan":
		return Lan
	case "VidhiLin":
		return VidhiLin
	case "AshirLin":
		return AshirLin
	case "Lun":
		return Lun
	case "Lrn":
		return Lrn
	case "Lut2":
		return Lut2
	case "Krdanta":
		return Krdanta
	default:
		return LakaraNone
	}
}

func parsePrayoga(s string) PadaPrayoga {
	switch s {
	case "Kartari":
		return Kartari
	case "Karmani":
		return Karmani
	case "Bhave":
		return Bhave
	default:
		return PrayogaNone
	}
}

func parseBool01(s string) bool {
	return s == "1"
}

func openCSVReader(path string) (*csv.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(vidyuterr.ErrIO, "opening %q: %v", path, err)
	}
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r, f, nil
}

// readPadas loads the surface -> PadaEntry multimap. Each row's first field
// is a tag (subanta|tinanta|avyaya) that determines how the remaining
// fields are interpreted:
//
//	subanta surface stem allowed_lingas linga vacana vibhakti is_purvapada
//	tinanta surface dhatu purusha vacana lakara prayoga
//	avyaya  surface stem allowed_lingas
func readPadas(path string) (map[string][]PadaEntry, error) {
	r, f, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string][]PadaEntry)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidLexicon, "reading %q: %v", path, err)
		}
		if len(row) < 3 {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidLexicon, "%q: short row %v", path, row)
		}

		tag, surface := row[0], row[1]
		var entry PadaEntry
		switch tag {
		case "subanta":
			if len(row) < 8 {
				return nil, errors.Wrapf(vidyuterr.ErrInvalidLexicon, "%q: short subanta row %v", path, row)
			}
			entry = NewSubanta(Subanta{
				Pratipadika: NewBasicPratipadika(row[2], splitLingas(row[3])...),
				Linga:       parseLinga(row[4]),
				Vacana:      parseVacana(row[5]),
				Vibhakti:    parseVibhakti(row[6]),
				IsPurvapada: parseBool01(row[7]),
			})
		case "tinanta":
			if len(row) < 7 {
				return nil, errors.Wrapf(vidyuterr.ErrInvalidLexicon, "%q: short tinanta row %v", path, row)
			}
			entry = NewTinanta(Tinanta{
				Dhatu:       Dhatu{Text: row[2]},
				Purusha:     parsePurusha(row[3]),
				Vacana:      parseVacana(row[4]),
				Lakara:      parseLakara(row[5]),
				PadaPrayoga: parsePrayoga(row[6]),
			})
		case "avyaya":
			lingas := ""
			if len(row) > 3 {
				lingas = row[3]
			}
			entry = NewAvyaya(Avyaya{Pratipadika: NewBasicPratipadika(row[2], splitLingas(lingas)...)})
		default:
			return nil, errors.Wrapf(vidyuterr.ErrInvalidLexicon, "%q: unknown tag %q", path, tag)
		}
		out[surface] = append(out[surface], entry)
	}
	return out, nil
}

// readStems loads the stem -> []Pratipadika multimap: stem allowed_lingas.
func readStems(path string) (map[string][]Pratipadika, error) {
	r, f, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string][]Pratipadika)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidLexicon, "reading %q: %v", path, err)
		}
		if len(row) < 1 {
			continue
		}
		stem := row[0]
		lingas := ""
		if len(row) > 1 {
			lingas = row[1]
		}
		out[stem] = append(out[stem], NewBasicPratipadika(stem, splitLingas(lingas)...))
	}
	return out, nil
}

// endingRule is one row of the ending table: a sample subanta that applies
// to any stem ending in stemEnding, realized by appending endingText.
type endingRule struct {
	stemEnding string
	endingText string
	sample     Subanta
}

// readEndings loads the ending table: ending_text stem_ending linga vacana
// vibhakti. A stemEnding of "_" marks the halanta-inflection fallback
// family rather than a literal suffix match.
func readEndings(path string) ([]endingRule, error) {
	r, f, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []endingRule
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidLexicon, "reading %q: %v", path, err)
		}
		if len(row) < 5 {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidLexicon, "%q: short row %v", path, row)
		}
		out = append(out, endingRule{
			endingText: row[0],
			stemEnding: row[1],
			sample: Subanta{
				Linga:    parseLinga(row[2]),
				Vacana:   parseVacana(row[3]),
				Vibhakti: parseVibhakti(row[4]),
			},
		})
	}
	return out, nil
}
