/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ruby.go
Description: MRI Ruby Random variant. Same MT19937 core as the default
variant but seeded through init_by_array with the seed as a single key word,
the way Ruby feeds integer seeds into its twister. Outputs are full 32-bit
words, so state recovery works exactly as for mt19937.
*/

package prng

import "fmt"

// RubyRand models MRI Ruby's Random for a 32-bit integer seed.
type RubyRand struct {
	mtState
}

// NewRubyRand creates an unseeded Ruby Random instance.
func NewRubyRand() *RubyRand {
	return &RubyRand{}
}

func (g *RubyRand) Name() string { return "ruby-rand" }

func (g *RubyRand) Description() string {
	return "MRI Ruby Random (MT19937 core, init_by_array seeding)"
}

// Seed resets the instance the way Ruby seeds from an integer: the seed
// becomes a one-word init_by_array key.
func (g *RubyRand) Seed(seed uint32) {
	g.seedArray([]uint32{seed})
}

// Next returns the next tempered 32-bit output.
func (g *RubyRand) Next() uint32 {
	return mtTemper(g.nextWord())
}

// StateLen returns the recovery window length: one full state vector.
func (g *RubyRand) StateLen() int { return mtStateLen }

// RecoverState rebuilds the twister state from 624 consecutive outputs.
// Seeding style does not matter once a full window is visible.
func (g *RubyRand) RecoverState(window []uint32) error {
	if len(window) < mtStateLen {
		return fmt.Errorf("%w: need %d outputs, got %d", ErrInsufficientWindow, mtStateLen, len(window))
	}
	g.restore(window[:mtStateLen])
	return nil
}
