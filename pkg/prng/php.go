/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: php.go
Description: PHP 5.x mt_rand() variant. Historical PHP carried a deviation in
its reload step: the sign word of each twisted pair is taken from the FIRST
word instead of the second, so its stream diverges from reference MT19937
after the first block. Userland mt_rand() also drops the low bit, returning
31-bit values, which is why this variant cannot be state-recovered.
*/

package prng

// PHPMtRand models PHP 5.x mt_rand() with no arguments.
type PHPMtRand struct {
	words [mtStateLen]uint32
	index int
}

// NewPHPMtRand creates an unseeded PHP mt_rand instance.
func NewPHPMtRand() *PHPMtRand {
	return &PHPMtRand{index: mtStateLen}
}

func (g *PHPMtRand) Name() string { return "php-mt_rand" }

func (g *PHPMtRand) Description() string {
	return "PHP 5.x mt_rand() (deviant twist, 31-bit outputs)"
}

// Seed mirrors php_mt_srand: classic initialization followed by an immediate
// reload, so the first output already comes from a twisted block.
func (g *PHPMtRand) Seed(seed uint32) {
	g.words[0] = seed
	for i := 1; i < mtStateLen; i++ {
		prev := g.words[i-1]
		g.words[i] = mtSeedMult*(prev^(prev>>30)) + uint32(i)
	}
	g.reload()
}

// phpTwist combines a pair the way PHP 5.x did: the matrix conditional keys
// off the low bit of u, not v.
func phpTwist(m, u, v uint32) uint32 {
	t := m ^ (((u & mtUpperMask) | (v & mtLowerMask)) >> 1)
	if u&1 != 0 {
		t ^= mtMatrixA
	}
	return t
}

func (g *PHPMtRand) reload() {
	s := &g.words
	for i := 0; i < mtStateLen-mtPeriod; i++ {
		s[i] = phpTwist(s[i+mtPeriod], s[i], s[i+1])
	}
	for i := mtStateLen - mtPeriod; i < mtStateLen-1; i++ {
		s[i] = phpTwist(s[i+mtPeriod-mtStateLen], s[i], s[i+1])
	}
	s[mtStateLen-1] = phpTwist(s[mtPeriod-1], s[mtStateLen-1], s[0])
	g.index = 0
}

// Next returns the next mt_rand() value: tempered word shifted right by one.
func (g *PHPMtRand) Next() uint32 {
	if g.index >= mtStateLen {
		g.reload()
	}
	y := mtTemper(g.words[g.index])
	g.index++
	return y >> 1
}
