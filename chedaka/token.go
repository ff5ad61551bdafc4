// Package chedaka drives best-first search over partial segmentations of
// Sanskrit text, combining a sandhi splitter, a kosha lookup, a scoring
// model, and a strict-mode post-filter into a single Run call.
package chedaka

import "github.com/ambuda-org/vidyut-cheda-go/kosha"

// Token is a recognized surface fragment and its morphological analysis.
type Token struct {
	Text string
	Data kosha.PadaEntry
}

// TokenPool is a grow-only arena of Tokens, indexed by monotonically
// increasing position. Phrase records reference tokens by index rather
// than by value so that cloning a Phrase for the priority queue never
// copies a Token.
type TokenPool struct {
	tokens []Token
}

// NewTokenPool returns an empty pool.
func NewTokenPool() *TokenPool {
	return &TokenPool{}
}

// Insert appends t to the pool and returns its index.
func (p *TokenPool) Insert(t Token) int {
	p.tokens = append(p.tokens, t)
	return len(p.tokens) - 1
}

// Get returns the token at index i, if one exists.
func (p *TokenPool) Get(i int) (Token, bool) {
	if i < 0 || i >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[i], true
}
