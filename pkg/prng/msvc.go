/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: msvc.go
Description: MSVC rand() variant. The classic Microsoft C runtime LCG with
15-bit outputs. Seventeen state bits are discarded per output, so the variant
is brute-force only.
*/

package prng

// MsvcRand models the MSVC C runtime rand().
type MsvcRand struct {
	state uint32
}

// NewMsvcRand creates an unseeded MSVC rand() instance.
func NewMsvcRand() *MsvcRand {
	return &MsvcRand{}
}

func (g *MsvcRand) Name() string { return "msvc-rand" }

func (g *MsvcRand) Description() string {
	return "MSVC rand() LCG (15-bit outputs)"
}

func (g *MsvcRand) Seed(seed uint32) {
	g.state = seed
}

func (g *MsvcRand) Next() uint32 {
	g.state = g.state*214013 + 2531011
	return (g.state >> 16) & 0x7fff
}
