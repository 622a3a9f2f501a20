// SPDX-License-Identifier: MIT

package computer

import "math/rand"

// RandomSource yields uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// DefaultSeed is the fixed seed used by NewSeededSource when seed == 0,
// and by New when no WithRandomSource option is given.
const DefaultSeed int64 = 1

// NewSeededSource returns a deterministic source.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewSeededSource(seed int64) RandomSource {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}
