// Package vector - RNG utilities for the sampler.
//
// Two kinds of sources exist:
//   - Seeded, caller-owned streams (rngFromSeed), same seed ⇒ same vectors.
//   - One shared stream seeded from the clock when the process starts and
//     guarded by a mutex, used when the caller supplies no source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Only the shared stream is locked.
package vector

import (
	"math/rand"
	"sync"
	"time"
)

// defaultRNGSeed replaces seed==0 in rngFromSeed.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shared is the process-wide source used by Sample without options.
var shared = struct {
	mu  sync.Mutex
	rng *rand.Rand
}{
	rng: rand.New(rand.NewSource(time.Now().UnixNano())),
}

// drawShared fills v[i] from the shared stream under its lock.
func drawShared(v Vector) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	draw(v, shared.rng)
}

// draw sets v[i] to a uniform integer in [0, 2i].
// Complexity: O(len(v)).
func draw(v Vector, r *rand.Rand) {
	for i := range v {
		v[i] = r.Intn(2*i + 1)
	}
}
