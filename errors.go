// Package vidyutcheda is a best-first, Viterbi-pruned segmentation and
// morphological analysis engine for Sanskrit text encoded in SLP1.
//
// The engine is split across sibling packages — sounds, translit, sandhi,
// kosha, scoring, strictmode, and chedaka — and this root package exists
// only to re-export the handful of types and errors a caller needs to run
// a segmentation: vidyutcheda.New, vidyutcheda.Chedaka, vidyutcheda.Token.
package vidyutcheda

import (
	"github.com/ambuda-org/vidyut-cheda-go/chedaka"
	"github.com/ambuda-org/vidyut-cheda-go/vidyuterr"
)

// Sentinel errors re-exported from vidyuterr so callers of this package
// don't need to import it directly.
// Load-time errors (ErrInvalidRuleTable, ErrInvalidLexicon,
// ErrInvalidModel, ErrIO) are returned wrapped with additional context via
// github.com/pkg/errors; callers should use errors.Is against these
// sentinels rather than comparing errors directly.
var (
	ErrInvalidRuleTable = vidyuterr.ErrInvalidRuleTable
	ErrInvalidLexicon   = vidyuterr.ErrInvalidLexicon
	ErrInvalidModel     = vidyuterr.ErrInvalidModel
	ErrIO               = vidyuterr.ErrIO
	ErrNonAsciiText     = vidyuterr.ErrNonAsciiText
)

// Token is a surface fragment and its morphological analysis.
type Token = chedaka.Token

// Chedaka drives best-first segmentation over a loaded Kosha, SandhiMap,
// and scoring Model.
type Chedaka = chedaka.Chedaka

// New builds a Chedaka from the sandhi rule table, lexicon tables, and
// scoring tables found under dataPath, using the fixed filenames
// internal/config.DataPaths expects.
func New(dataPath string) (*Chedaka, error) {
	return chedaka.New(dataPath)
}
