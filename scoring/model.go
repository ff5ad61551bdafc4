package scoring

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/ambuda-org/vidyut-cheda-go/internal/config"
	"github.com/ambuda-org/vidyut-cheda-go/kosha"
	"github.com/ambuda-org/vidyut-cheda-go/vidyuterr"
	"github.com/pkg/errors"
)

// epsilon is the Laplace smoothing constant applied to the lemma model: a
// very small factor, since most out-of-vocabulary tokens are segmentation
// errors rather than genuine unseen words.
const epsilon = 1e-100

type lemmaKey struct {
	lemma  string
	posTag kosha.POSTag
}

// lemmaModel holds (lemma, pos) -> log10 probability, Laplace-smoothed.
type lemmaModel struct {
	logProbs    map[lemmaKey]float64
	logPUnknown float64
}

func logProb(num float64, denom int64) float64 {
	return math.Log10(num / float64(denom))
}

func newLemmaModel(path string) (*lemmaModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(vidyuterr.ErrIO, "opening %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	counts := make(map[lemmaKey]int64)
	var n int64
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidModel, "reading %q: %v", path, err)
		}
		count, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidModel, "%q: bad count %q: %v", path, row[2], err)
		}
		key := lemmaKey{lemma: row[0], posTag: parsePOSTag(row[1])}
		counts[key] = count
		n += count
	}

	numKeys := int64(len(counts))
	denom := n + numKeys

	logProbs := make(map[lemmaKey]float64, len(counts))
	for k, c := range counts {
		logProbs[k] = logProb(float64(c)+epsilon, denom)
	}

	return &lemmaModel{
		logProbs:    logProbs,
		logPUnknown: logProb(epsilon, denom),
	}, nil
}

func (m *lemmaModel) logProb(lemma string, posTag kosha.POSTag) float64 {
	if p, ok := m.logProbs[lemmaKey{lemma: lemma, posTag: posTag}]; ok {
		return p
	}
	return m.logPUnknown
}

func parsePOSTag(s string) kosha.POSTag {
	switch s {
	case "Subanta":
		return kosha.POSSubanta
	case "Tinanta":
		return kosha.POSTinanta
	case "Avyaya":
		return kosha.POSAvyaya
	case "Unknown":
		return kosha.POSUnknown
	default:
		return kosha.POSNone
	}
}

type transitionKey struct {
	from, to State
}

// transitionModel holds (state_from, state_to) -> log10 probability.
type transitionModel struct {
	logProbs   map[transitionKey]float64
	logEpsilon float64
}

func newTransitionModel(path string, logEpsilon float64) (*transitionModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(vidyuterr.ErrIO, "opening %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	logProbs := make(map[transitionKey]float64)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidModel, "reading %q: %v", path, err)
		}
		from, err := strconv.ParseUint(row[0], 10, 16)
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidModel, "%q: bad state %q: %v", path, row[0], err)
		}
		to, err := strconv.ParseUint(row[1], 10, 16)
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidModel, "%q: bad state %q: %v", path, row[1], err)
		}
		prob, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidModel, "%q: bad probability %q: %v", path, row[2], err)
		}
		logProbs[transitionKey{from: State(from), to: State(to)}] = math.Log10(prob)
	}

	return &transitionModel{logProbs: logProbs, logEpsilon: logEpsilon}, nil
}

func (m *transitionModel) logProb(prev, cur State) float64 {
	if p, ok := m.logProbs[transitionKey{from: prev, to: cur}]; ok {
		return p
	}
	return m.logEpsilon
}

// Model composes the lemma unigram model with the state bigram transition
// model to score a phrase's most recently added word.
type Model struct {
	lemmas      *lemmaModel
	transitions *transitionModel
}

// New loads a Model from the lemma-count and transition CSVs named in
// paths, using opts.LogEpsilon as the smoothing floor for unseen
// transitions.
func New(paths config.DataPaths, opts config.Options) (*Model, error) {
	lemmas, err := newLemmaModel(paths.LemmaCounts())
	if err != nil {
		return nil, err
	}
	transitions, err := newTransitionModel(paths.Transitions(), opts.LogEpsilon)
	if err != nil {
		return nil, err
	}
	return &Model{lemmas: lemmas, transitions: transitions}, nil
}

// ScorablePhrase is the minimal view of a search phrase Score needs: the
// previous integer score plus the morphological entries of the last one or
// two tokens appended so far.
type ScorablePhrase struct {
	PrevScore int32
	// Prev is the second-to-last token's entry, if any.
	Prev    kosha.PadaEntry
	HasPrev bool
	// Last is the most recently appended token's entry.
	Last kosha.PadaEntry
}

// Score returns phrase.PrevScore plus the integer-encoded log-probability
// contribution of its most recently added word: a lemma unigram term plus
// a bigram transition term from the previous token's state (or the
// Initial state, if Last is the phrase's first word).
//
// The two-step pattern below — a successor Phrase inherits its
// predecessor's score, then that field is immediately recomputed here — is
// carried over from the search loop rather than inlined into a single
// assignment; see the chedaka package for where it's used.
func (m *Model) Score(p ScorablePhrase) int32 {
	prevState := Initial()
	if p.HasPrev {
		prevState = FromPada(p.Prev)
	}
	curState := FromPada(p.Last)

	lemmaLogProb := m.lemmas.logProb(p.Last.Lemma(), p.Last.Tag)
	transitionLogProb := m.transitions.logProb(prevState, curState)

	delta := lemmaLogProb + transitionLogProb
	return p.PrevScore + int32(math.Round(100*delta))
}
