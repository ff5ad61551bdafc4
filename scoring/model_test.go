package scoring

import (
	"math"
	"testing"

	"github.com/ambuda-org/vidyut-cheda-go/kosha"
)

func TestLogProb(t *testing.T) {
	cases := []struct {
		num   float64
		denom int64
		want  float64
	}{
		{10.0, 10, 0.0},
		{10.0, 100, -1.0},
		{10.0, 1000, -2.0},
	}
	for _, c := range cases {
		got := logProb(c.num, c.denom)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("logProb(%v, %v) = %v, want %v", c.num, c.denom, got, c.want)
		}
	}
}

func TestLemmaModelUnseenKeyFallsBackToEpsilon(t *testing.T) {
	m := &lemmaModel{
		logProbs:    map[lemmaKey]float64{{lemma: "rAma", posTag: kosha.POSSubanta}: -0.0414},
		logPUnknown: -99.0,
	}
	if got := m.logProb("rAma", kosha.POSSubanta); math.Abs(got-(-0.0414)) > 1e-9 {
		t.Errorf("known key logProb = %v, want -0.0414", got)
	}
	if got := m.logProb("nope", kosha.POSSubanta); got != -99.0 {
		t.Errorf("unknown key logProb = %v, want epsilon fallback -99.0", got)
	}
}

func TestTransitionModelUnseenTransitionFallsBackToFloor(t *testing.T) {
	m := &transitionModel{logProbs: map[transitionKey]float64{}, logEpsilon: -5.0}
	if got := m.logProb(Initial(), Initial()); got != -5.0 {
		t.Errorf("unseen transition logProb = %v, want -5.0", got)
	}
}

func TestStateFromPadaStability(t *testing.T) {
	entry := kosha.NewSubanta(kosha.Subanta{
		Linga:    kosha.LingaPum,
		Vacana:   kosha.VacanaEka,
		Vibhakti: kosha.V1,
	})
	s1 := FromPada(entry)
	s2 := FromPada(entry)
	if s1 != s2 {
		t.Errorf("FromPada is not stable: %v != %v", s1, s2)
	}
}

func TestScoreAppliesIntegerRounding(t *testing.T) {
	m := &Model{
		lemmas: &lemmaModel{
			logProbs:    map[lemmaKey]float64{{lemma: "rAma", posTag: kosha.POSSubanta}: -0.0414},
			logPUnknown: -99.0,
		},
		transitions: &transitionModel{logProbs: map[transitionKey]float64{}, logEpsilon: -5.0},
	}
	last := kosha.NewSubanta(kosha.Subanta{Pratipadika: kosha.NewBasicPratipadika("rAma", kosha.LingaPum)})
	got := m.Score(ScorablePhrase{PrevScore: 0, Last: last})
	want := int32(math.Round(100 * (-0.0414 + -5.0)))
	if got != want {
		t.Errorf("Score = %d, want %d", got, want)
	}
}
