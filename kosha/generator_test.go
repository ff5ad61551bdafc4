package kosha

import "testing"

func TestInflectHalantaStem(t *testing.T) {
	cases := []struct {
		stem, sup, want string
	}{
		{"vAc", "as", "vAcas"},
		{"vAc", "", "vAk"},
		{"vAc", "ByAm", "vAgByAm"},
		{"vid", "as", "vidas"},
		{"vid", "", "vit"},
		{"vid", "ByAm", "vidByAm"},
		{"kakuB", "as", "kakuBas"},
		{"kakuB", "", "kakup"},
		{"kakuB", "ByAm", "kakubByAm"},
	}
	for _, c := range cases {
		got := inflectHalantaStem(c.stem, c.sup)
		if got != c.want {
			t.Errorf("inflectHalantaStem(%q, %q) = %q, want %q", c.stem, c.sup, got, c.want)
		}
	}
}

func TestAddNominals(t *testing.T) {
	stems := map[string][]Pratipadika{
		"rAma": {NewBasicPratipadika("rAma", LingaPum)},
		"vAc":  {NewBasicPratipadika("vAc", LingaStri)},
	}
	endings := []endingRule{
		{stemEnding: "a", endingText: "as", sample: Subanta{Linga: LingaPum, Vibhakti: V1, Vacana: VacanaEka}},
		{stemEnding: "_", endingText: "as", sample: Subanta{Linga: LingaStri, Vibhakti: V3, Vacana: VacanaBahu}},
		{stemEnding: "_", endingText: "", sample: Subanta{Linga: LingaStri, Vibhakti: V1, Vacana: VacanaEka}},
	}
	padas := make(map[string][]PadaEntry)
	addNominals(stems, endings, padas)

	got, ok := padas["rAmas"]
	if !ok || len(got) != 1 {
		t.Fatalf("padas[rAmas] = %v, want one entry", got)
	}
	if got[0].Subanta.Pratipadika.Text != "rAma" || got[0].Subanta.Vibhakti != V1 {
		t.Errorf("rAmas entry = %+v, want stem rAma vibhakti V1", got[0])
	}

	if _, ok := padas["vAcas"]; !ok {
		t.Errorf("expected halanta-generated vAcas in padas, got %v", padas)
	}
	if _, ok := padas["vAk"]; !ok {
		t.Errorf("expected halanta-generated vAk in padas, got %v", padas)
	}
}
