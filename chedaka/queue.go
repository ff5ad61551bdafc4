package chedaka

import "github.com/emirpasic/gods/v2/trees/binaryheap"

// queueItem pairs a Phrase with the order it was pushed in, so the queue
// can break score ties deterministically (spec requires reproducible
// output across runs).
type queueItem struct {
	phrase Phrase
	seq    int
}

// newQueue returns a max-priority queue on Phrase.Score, highest first;
// ties are broken in favor of the earlier-pushed item.
func newQueue() *binaryheap.Heap[queueItem] {
	return binaryheap.NewWith(func(a, b queueItem) int {
		if a.phrase.Score != b.phrase.Score {
			return int(b.phrase.Score) - int(a.phrase.Score)
		}
		return a.seq - b.seq
	})
}
