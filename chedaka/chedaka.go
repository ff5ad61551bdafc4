package chedaka

import (
	"sort"
	"strings"

	"github.com/ambuda-org/vidyut-cheda-go/internal/config"
	"github.com/ambuda-org/vidyut-cheda-go/internal/normalize"
	"github.com/ambuda-org/vidyut-cheda-go/kosha"
	"github.com/ambuda-org/vidyut-cheda-go/sandhi"
	"github.com/ambuda-org/vidyut-cheda-go/scoring"
	"github.com/ambuda-org/vidyut-cheda-go/sounds"
	"github.com/ambuda-org/vidyut-cheda-go/strictmode"
	"github.com/ambuda-org/vidyut-cheda-go/vidyuterr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// log is the package logger; it is a no-op until a caller wires a sink in
// via SetLogger, matching the rest of this module's zerolog convention.
var log = zerolog.Nop()

// SetLogger installs l as the chedaka package's logger.
func SetLogger(l zerolog.Logger) {
	log = l
}

// viterbiBucket is the single state-bucket key the Viterbi cache uses in
// place of a full State partition. An exact pass would key by packed
// scoring.State instead; the single-bucket approximation changes which
// candidates survive pruning but not the score contract, and is kept
// because it is cheaper per pop.
const viterbiBucket = "STATE"

// Chedaka drives best-first segmentation over a loaded sandhi splitter,
// kosha, and scoring model.
type Chedaka struct {
	sandhi *sandhi.Splitter
	kosha  *kosha.Kosha
	model  *scoring.Model
	opts   config.Options
}

// New builds a Chedaka from the sandhi rule table, lexicon tables, and
// scoring tables found under dataPath, using default tuning options.
func New(dataPath string) (*Chedaka, error) {
	return NewWithOptions(dataPath, config.DefaultOptions())
}

// NewWithOptions builds a Chedaka the same way New does, but with caller
// supplied tuning (the transition-model smoothing floor and the search
// queue's beam width).
func NewWithOptions(dataPath string, opts config.Options) (*Chedaka, error) {
	paths := config.NewDataPaths(dataPath)

	splitter, err := sandhi.FromCSV(paths.SandhiRules())
	if err != nil {
		return nil, errors.Wrap(err, "loading sandhi rules")
	}
	lex, err := kosha.New(paths)
	if err != nil {
		return nil, errors.Wrap(err, "loading kosha")
	}
	model, err := scoring.New(paths, opts)
	if err != nil {
		return nil, errors.Wrap(err, "loading scoring model")
	}

	return &Chedaka{sandhi: splitter, kosha: lex, model: model, opts: opts}, nil
}

// Run segments inputText into an ordered list of Tokens. Unknown segments
// preserve their original surface bytes and carry kosha.Unknown as their
// PadaEntry.
func (c *Chedaka) Run(inputText string) ([]Token, error) {
	if !isASCII(inputText) {
		return nil, vidyuterr.ErrNonAsciiText
	}
	normalized := normalize.Text(inputText)
	log.Debug().Str("input", normalized).Msg("starting segmentation")

	pool := NewTokenPool()
	wordCache := make(map[string][]kosha.PadaEntry)
	viterbiCache := make(map[string]map[string]Phrase)

	pq := newQueue()
	seq := 0
	push := func(p Phrase) {
		pq.Push(queueItem{phrase: p, seq: seq})
		seq++
		c.trimToBeamWidth(pq)
	}

	push(newPhrase(normalized))

	for {
		item, ok := pq.Pop()
		if !ok {
			break
		}
		cur := item.phrase
		log.Debug().
			Int("words", len(cur.Tokens)).
			Int("remaining_len", len(cur.Remaining)).
			Int32("score", cur.Score).
			Msg("popped phrase")

		if cur.Remaining == "" {
			break
		}

		if !sounds.IsSanskrit(cur.Remaining[0]) {
			push(c.stepNonSanskrit(cur, pool, viterbiCache))
			continue
		}

		for _, split := range c.sandhi.SplitAll(cur.Remaining) {
			if !split.IsValid() || split.IsRecursive(cur.Remaining) {
				continue
			}

			first, second := split.First, split.Second
			candidates := c.analyzePada(first, split, wordCache)

			for _, entry := range candidates {
				lastToken, hasLast := lastEntry(cur, pool)
				if !strictmode.IsValidWord(strictmode.Phrase{LastToken: lastToken, HasLastToken: hasLast}, split, entry) {
					continue
				}

				next := cur.clone()
				next.Remaining = second
				next.Score = cur.Score
				i := pool.Insert(Token{Text: first, Data: entry})
				next.Tokens = append(next.Tokens, i)
				next.Score = c.model.Score(c.scorableOf(next, pool))

				if rival, ok := viterbiLookup(viterbiCache, next.Remaining); ok && rival.Score >= next.Score {
					continue
				}
				viterbiSet(viterbiCache, next.Remaining, next)
				push(next)
			}
		}
	}

	if solutions, ok := viterbiCache[""]; ok {
		best, ok := bestOf(solutions)
		if ok {
			return extractTokens(best, pool, c.kosha), nil
		}
	}
	return nil, nil
}

// stepNonSanskrit consumes cur.Remaining up to the next space (or to the
// end, if there is none) and emits it as an Unknown token. The decision to
// break on whitespace rather than on every non-Sanskrit byte is deliberate:
// it keeps numeric and punctuation spans intact. A run of leading spaces —
// left over from a prior Sanskrit split, whose second fragment retains the
// word boundary it split on — is consumed without producing an empty
// token.
func (c *Chedaka) stepNonSanskrit(cur Phrase, pool *TokenPool, viterbiCache map[string]map[string]Phrase) Phrase {
	trimmed := strings.TrimLeft(cur.Remaining, " ")
	if trimmed == "" {
		next := cur.clone()
		next.Remaining = ""
		viterbiSet(viterbiCache, next.Remaining, next)
		return next
	}
	first, second, found := cutOnSpace(trimmed)
	if !found {
		first, second = trimmed, ""
	}

	next := cur.clone()
	next.Remaining = second
	next.Score = cur.Score
	i := pool.Insert(Token{Text: first, Data: kosha.Unknown})
	next.Tokens = append(next.Tokens, i)
	next.Score = c.model.Score(c.scorableOf(next, pool))

	viterbiSet(viterbiCache, next.Remaining, next)
	return next
}

// analyzePada memoizes a kosha lookup through cache, appending a
// kosha.Unknown fallback slot when split ends a chunk or the fragment
// itself opens with a non-Sanskrit byte — the typo/junk tolerance the
// segmenter relies on. The cache is keyed by text alone: the list built on
// the first lookup of a text, with or without its Unknown slot, is returned
// for every later split with the same first fragment.
func (c *Chedaka) analyzePada(text string, split sandhi.Split, cache map[string][]kosha.PadaEntry) []kosha.PadaEntry {
	if res, ok := cache[text]; ok {
		return res
	}
	res := append([]kosha.PadaEntry(nil), c.kosha.GetAll(text)...)
	if split.IsEndOfChunk() || (text != "" && !sounds.IsSanskrit(text[0])) {
		res = append(res, kosha.Unknown)
	}
	cache[text] = res
	return res
}

// scorableOf builds the view Model.Score needs from p. p.Score is expected
// to still hold the predecessor's score at this point — Run sets it to
// cur.Score right before calling this, then overwrites it with the
// returned score — matching the source's cur_score-then-overwrite pattern
// rather than inlining a single assignment.
func (c *Chedaka) scorableOf(p Phrase, pool *TokenPool) scoring.ScorablePhrase {
	n := len(p.Tokens)
	last, _ := pool.Get(p.Tokens[n-1])
	sp := scoring.ScorablePhrase{PrevScore: p.Score, Last: last.Data}
	if n >= 2 {
		prev, ok := pool.Get(p.Tokens[n-2])
		if ok {
			sp.Prev = prev.Data
			sp.HasPrev = true
		}
	}
	return sp
}

func lastEntry(p Phrase, pool *TokenPool) (kosha.PadaEntry, bool) {
	if len(p.Tokens) == 0 {
		return kosha.PadaEntry{}, false
	}
	t, ok := pool.Get(p.Tokens[len(p.Tokens)-1])
	if !ok {
		return kosha.PadaEntry{}, false
	}
	return t.Data, true
}

func viterbiLookup(cache map[string]map[string]Phrase, remaining string) (Phrase, bool) {
	bucket, ok := cache[remaining]
	if !ok {
		return Phrase{}, false
	}
	p, ok := bucket[viterbiBucket]
	return p, ok
}

func viterbiSet(cache map[string]map[string]Phrase, remaining string, p Phrase) {
	bucket, ok := cache[remaining]
	if !ok {
		bucket = make(map[string]Phrase)
		cache[remaining] = bucket
	}
	bucket[viterbiBucket] = p
}

func bestOf(bucket map[string]Phrase) (Phrase, bool) {
	var best Phrase
	found := false
	for _, p := range bucket {
		if !found || p.Score > best.Score {
			best = p
			found = true
		}
	}
	return best, found
}

// extractTokens copies best's tokens out of pool, round-tripping each
// recognized entry through kosha.Pack/Unpack to detach it from the
// search-scoped pool before returning it to the caller.
func extractTokens(best Phrase, pool *TokenPool, lex *kosha.Kosha) []Token {
	out := make([]Token, 0, len(best.Tokens))
	for _, i := range best.Tokens {
		t, ok := pool.Get(i)
		if !ok {
			continue
		}
		data := t.Data
		if data.Tag != kosha.POSUnknown {
			id := lex.Pack(data)
			if unpacked, ok := lex.Unpack(id); ok {
				data = unpacked
			}
		}
		out = append(out, Token{Text: t.Text, Data: data})
	}
	return out
}

// trimToBeamWidth bounds the queue to opts.BeamWidth highest-scoring
// partials, closing the resource-safety gap an unbounded queue would leave
// open on adversarial input. A BeamWidth of 0 leaves the queue unbounded.
func (c *Chedaka) trimToBeamWidth(pq interface {
	Size() int
	Clear()
	Values() []queueItem
	Push(...queueItem)
}) {
	if c.opts.BeamWidth <= 0 || pq.Size() <= c.opts.BeamWidth {
		return
	}
	values := pq.Values()
	sort.Slice(values, func(i, j int) bool {
		if values[i].phrase.Score != values[j].phrase.Score {
			return values[i].phrase.Score > values[j].phrase.Score
		}
		return values[i].seq < values[j].seq
	})
	pq.Clear()
	pq.Push(values[:c.opts.BeamWidth]...)
}

func cutOnSpace(s string) (first, second string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
