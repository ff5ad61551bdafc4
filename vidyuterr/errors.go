// Package vidyuterr defines the sentinel error taxonomy shared by every
// subsystem (sandhi, kosha, scoring, chedaka) so callers can errors.Is
// against one stable set of values regardless of which package raised
// them. It exists as its own package, rather than living on the root
// vidyutcheda package, purely to avoid an import cycle: the root package
// re-exports these same values.
package vidyuterr

import "errors"

var (
	// ErrInvalidRuleTable is returned when the sandhi rule table cannot be
	// parsed into a SandhiMap.
	ErrInvalidRuleTable = errors.New("vidyutcheda: invalid rule table")
	// ErrInvalidLexicon is returned when the pada/stem/ending tables
	// cannot be parsed into a Kosha.
	ErrInvalidLexicon = errors.New("vidyutcheda: invalid lexicon")
	// ErrInvalidModel is returned when the scoring CSVs cannot be parsed
	// into a Model.
	ErrInvalidModel = errors.New("vidyutcheda: invalid model")
	// ErrIO wraps an upstream I/O failure encountered while loading data.
	ErrIO = errors.New("vidyutcheda: io error")
	// ErrNonAsciiText is returned by Chedaka.Run when the input text
	// contains a byte outside the ASCII range.
	ErrNonAsciiText = errors.New("vidyutcheda: input contains non-ASCII text")
)
