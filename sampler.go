package dense

import "math/rand"

// Sampler yields fixed-size batches of examples. Sequential sampling walks
// the dataset in order and wraps around, so the cycle length equals the
// dataset size. Shuffled sampling draws every index from rng, so a seeded
// source reproduces the exact batch sequence.
type Sampler struct {
	examples  []*Example
	batchSize int
	shuffle   bool
	rng       *rand.Rand
	idx       int
}

// NewSampler returns a sampler over examples. rng is only consulted when
// shuffle is true and may be nil otherwise.
func NewSampler(examples []*Example, batchSize int, shuffle bool, rng *rand.Rand) *Sampler {
	s := &Sampler{
		examples:  examples,
		batchSize: batchSize,
		shuffle:   shuffle,
		rng:       rng,
	}
	if shuffle {
		s.idx = rng.Intn(len(examples))
	}
	return s
}

// Next returns the next batch.
func (s *Sampler) Next() []*Example {
	batch := make([]*Example, 0, s.batchSize)
	for i := 0; i < s.batchSize; i++ {
		batch = append(batch, s.examples[s.idx])
		if s.shuffle {
			s.idx = s.rng.Intn(len(s.examples))
		} else {
			s.idx = (s.idx + 1) % len(s.examples)
		}
	}
	return batch
}

// Len returns the dataset size, which is also the sequential cycle length.
func (s *Sampler) Len() int {
	return len(s.examples)
}
