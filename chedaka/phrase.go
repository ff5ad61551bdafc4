package chedaka

// Phrase is a partial hypothesis in the search: the token-pool indices
// recognized so far, the text still to be consumed, and an integer score
// (100 × log₁₀ probability, so it is hashable and orderable without
// floats).
type Phrase struct {
	Tokens    []int
	Remaining string
	Score     int32
}

func newPhrase(text string) Phrase {
	return Phrase{Remaining: text}
}

// clone returns a Phrase with its own copy of Tokens, so appending to it
// never aliases the predecessor's slice.
func (p Phrase) clone() Phrase {
	tokens := make([]int, len(p.Tokens))
	copy(tokens, p.Tokens)
	return Phrase{Tokens: tokens, Remaining: p.Remaining, Score: p.Score}
}
