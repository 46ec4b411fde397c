/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: partition_test.go
Description: Tests for seed space partitioning. Covers exact coverage with no
overlaps or gaps, remainder absorption, and degenerate ranges.
*/

package core

import (
	"testing"

	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionCoversRangeExactly(t *testing.T) {
	tests := []struct {
		name    string
		rng     interfaces.SearchRange
		workers int
	}{
		{"even split", interfaces.SearchRange{Lower: 0, Upper: 1000}, 4},
		{"remainder", interfaces.SearchRange{Lower: 0, Upper: 1003}, 4},
		{"one worker", interfaces.SearchRange{Lower: 12000, Upper: 13000}, 1},
		{"offset range", interfaces.SearchRange{Lower: 12000, Upper: 13000}, 7},
		{"single seed", interfaces.SearchRange{Lower: 42, Upper: 43}, 8},
		{"near top of seed space", interfaces.SearchRange{Lower: ^uint32(0) - 100, Upper: ^uint32(0)}, 3},
		{"full space", interfaces.FullRange(), 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			subs := Partition(tc.rng, tc.workers)
			require.NotEmpty(t, subs)
			assert.LessOrEqual(t, len(subs), tc.workers)

			// contiguous, disjoint, gap-free
			assert.Equal(t, tc.rng.Lower, subs[0].Lower)
			var total uint64
			for i, sub := range subs {
				assert.Less(t, sub.Lower, sub.Upper, "sub-range %d must be non-empty", i)
				if i > 0 {
					assert.Equal(t, subs[i-1].Upper, sub.Lower, "sub-range %d must start where %d ends", i, i-1)
				}
				total += sub.Width()
			}
			assert.Equal(t, tc.rng.Upper, subs[len(subs)-1].Upper)
			assert.Equal(t, tc.rng.Width(), total)
		})
	}
}

func TestPartitionLastAbsorbsRemainder(t *testing.T) {
	subs := Partition(interfaces.SearchRange{Lower: 0, Upper: 10}, 3)
	require.Len(t, subs, 3)
	assert.Equal(t, uint64(3), subs[0].Width())
	assert.Equal(t, uint64(3), subs[1].Width())
	assert.Equal(t, uint64(4), subs[2].Width())
}

func TestPartitionNarrowRangeShrinksPool(t *testing.T) {
	// 3 candidates cannot feed 8 workers; never hand out empty sub-ranges
	subs := Partition(interfaces.SearchRange{Lower: 100, Upper: 103}, 8)
	require.Len(t, subs, 3)
	for _, sub := range subs {
		assert.Equal(t, uint64(1), sub.Width())
	}
}

func TestPartitionDegenerateRanges(t *testing.T) {
	assert.Nil(t, Partition(interfaces.SearchRange{Lower: 5, Upper: 5}, 4))
	assert.Nil(t, Partition(interfaces.SearchRange{Lower: 10, Upper: 5}, 4))
	assert.Nil(t, Partition(interfaces.SearchRange{Lower: 0, Upper: 100}, 0))
}
