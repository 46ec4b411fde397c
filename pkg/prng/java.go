/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: java.go
Description: java.util.Random variant. 48-bit linear congruential generator;
nextInt() outputs are observed here as the uint32 bit pattern of the signed
Java value. 16 state bits never reach the output, so recovery from a single
stream position is not closed-form and the variant is brute-force only.
*/

package prng

const (
	javaMultiplier = 0x5DEECE66D
	javaIncrement  = 0xB
	javaMask       = (1 << 48) - 1
)

// JavaRandom models java.util.Random constructed from a 32-bit seed.
type JavaRandom struct {
	state uint64
}

// NewJavaRandom creates an unseeded java.util.Random instance.
func NewJavaRandom() *JavaRandom {
	return &JavaRandom{}
}

func (g *JavaRandom) Name() string { return "java-util-random" }

func (g *JavaRandom) Description() string {
	return "java.util.Random 48-bit LCG (nextInt() bit patterns)"
}

// Seed applies Java's initial scramble of the seed into the 48-bit state.
func (g *JavaRandom) Seed(seed uint32) {
	g.state = (uint64(seed) ^ javaMultiplier) & javaMask
}

// Next advances the LCG and returns the high 32 bits, which is nextInt()
// reinterpreted as unsigned.
func (g *JavaRandom) Next() uint32 {
	g.state = (g.state*javaMultiplier + javaIncrement) & javaMask
	return uint32(g.state >> 16)
}
