package sandhi

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ambuda-org/vidyut-cheda-go/vidyuterr"
	"github.com/pkg/errors"
)

// Rule is one (first_tail, second_head) reversal of a fused form.
type Rule struct {
	First  string
	Second string
}

// Map is a multimap keyed by a fused ("joined") form, yielding every
// (first_tail, second_head) pair that could have produced it. Both the
// whitespace-containing and whitespace-stripped forms of a joined key are
// indexed, since a joined form spanning a chunk boundary keeps its space.
type Map struct {
	rules     map[string][]Rule
	maxKeyLen int
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{rules: make(map[string][]Rule)}
}

// Insert adds a (first, second) reversal under key.
func (m *Map) Insert(key string, r Rule) {
	m.rules[key] = append(m.rules[key], r)
	if len(key) > m.maxKeyLen {
		m.maxKeyLen = len(key)
	}
}

// Get returns every reversal registered under key, or nil if none exist.
func (m *Map) Get(key string) []Rule {
	return m.rules[key]
}

// ReadRules parses a tab-separated (first_tail, second_head, joined) rule
// table at path into a Map. The joined column may contain spaces; both
// the spaced and space-stripped forms are indexed as separate keys
// pointing at the same reversal.
func ReadRules(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(vidyuterr.ErrIO, "opening sandhi rule table %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = 3
	r.LazyQuotes = true

	m := NewMap()
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(vidyuterr.ErrInvalidRuleTable, "reading %q: %v", path, err)
		}

		first, second, joined := row[0], row[1], row[2]
		rule := Rule{First: first, Second: second}
		m.Insert(joined, rule)

		noSpaces := strings.ReplaceAll(joined, " ", "")
		if noSpaces != joined {
			m.Insert(noSpaces, rule)
		}
	}
	if len(m.rules) == 0 {
		return nil, errors.Wrapf(vidyuterr.ErrInvalidRuleTable, "%q contains no rules", path)
	}
	log.Info().Str("path", path).Int("keys", len(m.rules)).Int("max_key_len", m.maxKeyLen).Msg("loaded sandhi rule table")
	return m, nil
}
