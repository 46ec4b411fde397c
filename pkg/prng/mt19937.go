/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mt19937.go
Description: MT19937-32 reference implementation with tempering inversion.
Provides the shared Mersenne Twister core reused by the Ruby variant and the
untemper routines that make full state recovery possible from 624 consecutive
outputs.
*/

package prng

import "fmt"

const (
	mtStateLen   = 624
	mtPeriod     = 397
	mtMatrixA    = 0x9908b0df
	mtUpperMask  = 0x80000000
	mtLowerMask  = 0x7fffffff
	mtSeedMult   = 1812433253
	mtArraySeed  = 19650218
	mtArrayMultA = 1664525
	mtArrayMultB = 1566083941
)

// mtState is the twister core shared by the mt19937 and ruby-rand variants.
// It holds the 624-word vector and the read position; position mtStateLen
// means the next read twists first.
type mtState struct {
	words [mtStateLen]uint32
	index int
}

// seedClassic applies the Knuth-multiplier initialization used by the C
// reference (init_genrand) and by PHP.
func (m *mtState) seedClassic(seed uint32) {
	m.words[0] = seed
	for i := 1; i < mtStateLen; i++ {
		prev := m.words[i-1]
		m.words[i] = mtSeedMult*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtStateLen
}

// seedArray applies the init_by_array initialization used by Ruby, with the
// seed as a single-word key.
func (m *mtState) seedArray(key []uint32) {
	m.seedClassic(mtArraySeed)
	if len(key) == 0 {
		key = []uint32{0}
	}
	i, j := 1, 0
	k := mtStateLen
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := m.words[i-1]
		m.words[i] = (m.words[i] ^ ((prev ^ (prev >> 30)) * mtArrayMultA)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtStateLen {
			m.words[0] = m.words[mtStateLen-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtStateLen - 1; k > 0; k-- {
		prev := m.words[i-1]
		m.words[i] = (m.words[i] ^ ((prev ^ (prev >> 30)) * mtArrayMultB)) - uint32(i)
		i++
		if i >= mtStateLen {
			m.words[0] = m.words[mtStateLen-1]
			i = 1
		}
	}
	m.words[0] = 0x80000000
	m.index = mtStateLen
}

// twist regenerates the full word vector in place.
func (m *mtState) twist() {
	for i := 0; i < mtStateLen; i++ {
		y := (m.words[i] & mtUpperMask) | (m.words[(i+1)%mtStateLen] & mtLowerMask)
		next := m.words[(i+mtPeriod)%mtStateLen] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		m.words[i] = next
	}
}

// nextWord returns the next raw (untempered) state word.
func (m *mtState) nextWord() uint32 {
	if m.index >= mtStateLen {
		m.twist()
		m.index = 0
	}
	w := m.words[m.index]
	m.index++
	return w
}

// restore installs untempered outputs as the state vector. The position is
// set past the end of the window so the next read twists, continuing the
// sequence exactly where the window left off.
func (m *mtState) restore(window []uint32) {
	for i := 0; i < mtStateLen; i++ {
		m.words[i] = mtUntemper(window[i])
	}
	m.index = mtStateLen
}

// mtTemper applies the MT19937 output transform.
func mtTemper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// mtUntemper inverts the output transform, recovering the raw state word.
func mtUntemper(y uint32) uint32 {
	y = invertXorRshift(y, 18)
	y = invertXorLshiftMask(y, 15, 0xefc60000)
	y = invertXorLshiftMask(y, 7, 0x9d2c5680)
	y = invertXorRshift(y, 11)
	return y
}

// invertXorRshift undoes y = x ^ (x >> s). Each pass fixes the next s bits
// from the top; ceil(32/s) passes recover the whole word.
func invertXorRshift(y uint32, s uint) uint32 {
	x := y
	for i := uint(0); i < 32; i += s {
		x = y ^ (x >> s)
	}
	return x
}

// invertXorLshiftMask undoes y = x ^ ((x << s) & m), fixing s bits per pass
// from the bottom.
func invertXorLshiftMask(y uint32, s uint, m uint32) uint32 {
	x := y
	for i := uint(0); i < 32; i += s {
		x = y ^ ((x << s) & m)
	}
	return x
}

// MT19937 is the 32-bit Mersenne Twister with classic seeding. This is the
// default variant: the reference algorithm behind C++'s std::mt19937 and
// Python's core twister, and the most common target in practice.
type MT19937 struct {
	mtState
}

// NewMT19937 creates an unseeded MT19937 instance.
func NewMT19937() *MT19937 {
	return &MT19937{}
}

func (g *MT19937) Name() string { return "mt19937" }

func (g *MT19937) Description() string {
	return "MT19937-32 Mersenne Twister, classic seeding (C/C++ reference)"
}

// Seed resets the instance using the classic Knuth-multiplier expansion.
func (g *MT19937) Seed(seed uint32) {
	g.seedClassic(seed)
}

// Next returns the next tempered 32-bit output.
func (g *MT19937) Next() uint32 {
	return mtTemper(g.nextWord())
}

// StateLen returns the recovery window length: one full state vector.
func (g *MT19937) StateLen() int { return mtStateLen }

// RecoverState rebuilds the twister state by untempering a window of 624
// consecutive outputs.
func (g *MT19937) RecoverState(window []uint32) error {
	if len(window) < mtStateLen {
		return fmt.Errorf("%w: need %d outputs, got %d", ErrInsufficientWindow, mtStateLen, len(window))
	}
	g.restore(window[:mtStateLen])
	return nil
}
