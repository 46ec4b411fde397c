/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: xorshift.go
Description: Marsaglia xorshift128 variant. Four words of state, full 32-bit
outputs. Every step shifts the state left by one word and appends the output,
so after four outputs the state IS the last four outputs. That makes recovery
a straight copy with a window of four.
*/

package prng

import "fmt"

const (
	xorshiftY = 362436069
	xorshiftZ = 521288629
	xorshiftW = 88675123
)

// Xorshift128 models Marsaglia's xorshift128 with the published constants
// and the seed replacing the first state word.
type Xorshift128 struct {
	x, y, z, w uint32
}

// NewXorshift128 creates an unseeded xorshift128 instance.
func NewXorshift128() *Xorshift128 {
	return &Xorshift128{}
}

func (g *Xorshift128) Name() string { return "xorshift128" }

func (g *Xorshift128) Description() string {
	return "Marsaglia xorshift128 (state equals last four outputs)"
}

func (g *Xorshift128) Seed(seed uint32) {
	g.x = seed
	g.y = xorshiftY
	g.z = xorshiftZ
	g.w = xorshiftW
}

func (g *Xorshift128) Next() uint32 {
	t := g.x ^ (g.x << 11)
	g.x, g.y, g.z = g.y, g.z, g.w
	g.w = g.w ^ (g.w >> 19) ^ t ^ (t >> 8)
	return g.w
}

// StateLen returns the recovery window length: the four state words.
func (g *Xorshift128) StateLen() int { return 4 }

// RecoverState installs four consecutive outputs as the state; the generator
// then continues with the fifth output.
func (g *Xorshift128) RecoverState(window []uint32) error {
	if len(window) < 4 {
		return fmt.Errorf("%w: need 4 outputs, got %d", ErrInsufficientWindow, len(window))
	}
	g.x, g.y, g.z, g.w = window[0], window[1], window[2], window[3]
	return nil
}
