/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer_test.go
Description: Tests for the confidence scorer. Covers exact matches, partial
matches, positional comparison, and the empty-window rule.
*/

package analysis

import (
	"testing"

	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreExactMatch(t *testing.T) {
	s := NewConfidenceScorer()
	seq := []uint32{10, 20, 30, 40, 50}
	assert.Equal(t, 100.0, s.Score(seq, seq))
}

func TestScoreDisjoint(t *testing.T) {
	s := NewConfidenceScorer()
	assert.Equal(t, 0.0, s.Score([]uint32{1, 2, 3}, []uint32{4, 5, 6}))
}

func TestScorePartialMatch(t *testing.T) {
	s := NewConfidenceScorer()
	candidate := []uint32{1, 2, 3, 4}
	observed := []uint32{1, 2, 9, 9}
	assert.Equal(t, 50.0, s.Score(candidate, observed))

	observed = []uint32{1, 9, 9, 9}
	assert.Equal(t, 25.0, s.Score(candidate, observed))
}

func TestScoreEmptyWindows(t *testing.T) {
	s := NewConfidenceScorer()
	assert.Equal(t, 0.0, s.Score(nil, nil))
	assert.Equal(t, 0.0, s.Score([]uint32{1}, nil))
	assert.Equal(t, 0.0, s.Score(nil, []uint32{1}))
}

func TestScoreUsesShorterLength(t *testing.T) {
	s := NewConfidenceScorer()
	// candidate shorter than observed: only the prefix counts
	assert.Equal(t, 100.0, s.Score([]uint32{7, 8}, []uint32{7, 8, 999, 999}))
	// observed shorter than candidate
	assert.Equal(t, 100.0, s.Score([]uint32{7, 8, 999, 999}, []uint32{7, 8}))
}

func TestScoreIsPositional(t *testing.T) {
	s := NewConfidenceScorer()
	// same multiset, shifted by one: positional comparison must punish it
	candidate := []uint32{1, 2, 3, 4, 5}
	observed := []uint32{2, 3, 4, 5, 1}
	assert.Equal(t, 0.0, s.Score(candidate, observed))
}

func TestScoreMatchCountMonotonic(t *testing.T) {
	s := NewConfidenceScorer()
	candidate := []uint32{1, 2, 3}
	observed := []uint32{1, 2, 3}

	base := s.Score(candidate, observed)

	// appending a matching pair never lowers the score
	matched := s.Score(append(candidate, 4), append(observed, 4))
	assert.GreaterOrEqual(t, matched, base)

	// appending a mismatching pair never raises the match count
	mismatched := s.Score(append(candidate, 4), append(observed, 5))
	assert.Less(t, mismatched, base)
	assert.InDelta(t, 75.0, mismatched, 1e-9)
}

func TestMatchesThreshold(t *testing.T) {
	s := NewConfidenceScorer()
	candidate := []uint32{1, 2, 3, 9}
	observed := []uint32{1, 2, 3, 4}

	confidence, ok := s.Matches(candidate, observed, 75.0)
	assert.Equal(t, 75.0, confidence)
	assert.True(t, ok, "confidence exactly at the threshold is included")

	_, ok = s.Matches(candidate, observed, 75.1)
	assert.False(t, ok)
}

func TestScoreAgainstRealGeneratorOutput(t *testing.T) {
	observed, err := prng.Generate("mt19937", 12345, 50)
	require.NoError(t, err)

	s := NewConfidenceScorer()

	right, err := prng.Generate("mt19937", 12345, 50)
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Score(right, observed))

	wrong, err := prng.Generate("mt19937", 12346, 50)
	require.NoError(t, err)
	assert.Less(t, s.Score(wrong, observed), 5.0)
}
