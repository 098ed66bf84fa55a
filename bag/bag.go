// Package bag implements a draw-without-replacement pool that refills
// itself with a fresh permutation once emptied.
package bag

import "math/rand"

type Bag[T any] struct {
	rng    *rand.Rand
	domain []T
	pool   []T
}

// New creates a bag over a copy of domain. The pool stays empty until the
// first draw forces a shuffle.
func New[T any](rng *rand.Rand, domain []T) *Bag[T] {
	if len(domain) == 0 {
		panic("Cannot create a bag over an empty domain")
	}
	d := make([]T, len(domain))
	copy(d, domain)
	return &Bag[T]{rng: rng, domain: d}
}

// Draw removes one value from the pool, reshuffling the whole domain first
// if the pool ran dry. Within one pass over a domain of size N no value
// repeats.
func (b *Bag[T]) Draw() T {
	if len(b.pool) == 0 {
		b.pool = make([]T, len(b.domain))
		copy(b.pool, b.domain)
		b.rng.Shuffle(len(b.pool), func(i, j int) {
			b.pool[i], b.pool[j] = b.pool[j], b.pool[i]
		})
	}
	v := b.pool[len(b.pool)-1]
	b.pool = b.pool[:len(b.pool)-1]
	return v
}

// Remaining reports how many draws are left before the next refill.
func (b *Bag[T]) Remaining() int {
	return len(b.pool)
}
