/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mt19937_test.go
Description: Known-answer and recovery tests for the Mersenne Twister
variants. Vectors match the C reference implementation (classic seeding) and
Ruby's init_by_array seeding.
*/

package prng

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMT19937KnownAnswers(t *testing.T) {
	tests := []struct {
		seed     uint32
		expected []uint32
	}{
		// std::mt19937 default-constructed stream
		{5489, []uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204, 4161255391, 3922919429, 949333985}},
		{12345, []uint32{3992670690, 3823185381, 1358822685, 561383553, 789925284, 170765737, 878579710, 3549516158}},
		{4357, []uint32{4293858116, 699692587, 1213834231, 4068197670}},
	}
	for _, tc := range tests {
		g := NewMT19937()
		g.Seed(tc.seed)
		for i, want := range tc.expected {
			assert.Equal(t, want, g.Next(), "seed %d output %d", tc.seed, i)
		}
	}
}

func TestRubyRandKnownAnswers(t *testing.T) {
	tests := []struct {
		seed     uint32
		expected []uint32
	}{
		{12345, []uint32{1789368711, 3146859322, 43676229, 3522623596, 3544234957, 3448207591, 1282648386, 3672791226}},
		{1, []uint32{577090037, 2444712010, 3639700191, 3445702192}},
	}
	for _, tc := range tests {
		g := NewRubyRand()
		g.Seed(tc.seed)
		for i, want := range tc.expected {
			assert.Equal(t, want, g.Next(), "seed %d output %d", tc.seed, i)
		}
	}
}

func TestRubySeedingDivergesFromClassic(t *testing.T) {
	classic := NewMT19937()
	classic.Seed(12345)
	ruby := NewRubyRand()
	ruby.Seed(12345)
	assert.NotEqual(t, classic.Next(), ruby.Next())
}

func TestUntemperInvertsTemper(t *testing.T) {
	words := []uint32{0, 1, 0xffffffff, 0x12345678, 0x9abcdef0, 0x80000000, 0x7fffffff}
	for _, w := range words {
		assert.Equal(t, w, mtUntemper(mtTemper(w)), "word %#x", w)
	}

	// sweep a deterministic spread of the word space
	for w := uint32(0); w < 100000; w += 197 {
		v := w * 2654435761 // Knuth hash to scatter the sweep
		require.Equal(t, v, mtUntemper(mtTemper(v)))
	}
}

func TestMT19937StateRecovery(t *testing.T) {
	source := NewMT19937()
	source.Seed(0xcafe)
	window := make([]uint32, mtStateLen)
	for i := range window {
		window[i] = source.Next()
	}

	clone := NewMT19937()
	require.NoError(t, clone.RecoverState(window))

	// the clone must continue exactly where the window ended
	for i := 0; i < 2000; i++ {
		require.Equal(t, source.Next(), clone.Next(), "output %d past the window", i)
	}
}

func TestRubyRandStateRecovery(t *testing.T) {
	source := NewRubyRand()
	source.Seed(31337)
	window := make([]uint32, mtStateLen)
	for i := range window {
		window[i] = source.Next()
	}

	clone := NewRubyRand()
	require.NoError(t, clone.RecoverState(window))
	for i := 0; i < 1000; i++ {
		require.Equal(t, source.Next(), clone.Next(), "output %d past the window", i)
	}
}

func TestMT19937RecoveryMidStream(t *testing.T) {
	// the window does not have to start at output zero
	source := NewMT19937()
	source.Seed(777)
	for i := 0; i < 1000; i++ {
		source.Next()
	}
	window := make([]uint32, mtStateLen)
	for i := range window {
		window[i] = source.Next()
	}

	clone := NewMT19937()
	require.NoError(t, clone.RecoverState(window))
	for i := 0; i < 500; i++ {
		require.Equal(t, source.Next(), clone.Next())
	}
}

func TestMT19937RecoveryInsufficientWindow(t *testing.T) {
	g := NewMT19937()
	err := g.RecoverState(make([]uint32, mtStateLen-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientWindow))

	err = g.RecoverState(nil)
	assert.True(t, errors.Is(err, ErrInsufficientWindow))
}

func TestMT19937StateLen(t *testing.T) {
	assert.Equal(t, 624, NewMT19937().StateLen())
	assert.Equal(t, 624, NewRubyRand().StateLen())
}
