/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: glibc.go
Description: glibc random() variant (TYPE_3, the default 128-byte state).
Additive feedback over a 31-word ring seeded by a Park-Miller multiplier
chain, with the first 310 outputs discarded during warm-up. Outputs drop the
least random bit, so the stream is 31-bit and not state-recoverable.
*/

package prng

const (
	glibcDegree  = 31
	glibcSep     = 3
	glibcWarmup  = 10 * glibcDegree
	glibcModulus = 2147483647
)

// GlibcRand models glibc's random() with the default state size.
type GlibcRand struct {
	table [glibcDegree]uint32
	front int
	rear  int
}

// NewGlibcRand creates an unseeded glibc random() instance.
func NewGlibcRand() *GlibcRand {
	return &GlibcRand{}
}

func (g *GlibcRand) Name() string { return "glibc-rand" }

func (g *GlibcRand) Description() string {
	return "glibc random() additive feedback (TYPE_3, 31-bit outputs)"
}

// Seed mirrors srandom: a Park-Miller chain fills the ring, then ten full
// cycles are discarded. Seed 0 is coerced to 1 as glibc does. The chain is
// computed with Schrage's method on the seed's int32 bit pattern so seeds at
// or above 2^31 reproduce glibc exactly.
func (g *GlibcRand) Seed(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	g.table[0] = seed
	word := int64(int32(seed))
	for i := 1; i < glibcDegree; i++ {
		hi := word / 127773
		lo := word % 127773
		word = 16807*lo - 2836*hi
		if word < 0 {
			word += glibcModulus
		}
		g.table[i] = uint32(word)
	}
	g.front = glibcSep
	g.rear = 0
	for i := 0; i < glibcWarmup; i++ {
		g.Next()
	}
}

// Next adds the rear word into the front word, advances both ring pointers,
// and returns the new front word without its low bit.
func (g *GlibcRand) Next() uint32 {
	g.table[g.front] += g.table[g.rear]
	out := g.table[g.front] >> 1
	g.front++
	if g.front >= glibcDegree {
		g.front = 0
	}
	g.rear++
	if g.rear >= glibcDegree {
		g.rear = 0
	}
	return out
}
