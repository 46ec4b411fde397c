/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: partition.go
Description: Seed space partitioning for the Akaylee Cracker. Splits a search
range into contiguous, disjoint sub-ranges, one per worker, so no candidate
is evaluated twice and none is skipped.
*/

package core

import (
	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
)

// Partition splits rng into at most workers contiguous sub-ranges. Each
// sub-range gets width/workers candidates; the last one absorbs the
// remainder. An empty range yields no sub-ranges, and a range narrower than
// the pool yields fewer sub-ranges than workers, never empty ones.
func Partition(rng interfaces.SearchRange, workers int) []interfaces.SearchRange {
	width := rng.Width()
	if width == 0 || workers < 1 {
		return nil
	}
	if uint64(workers) > width {
		workers = int(width)
	}

	chunk := width / uint64(workers)
	subs := make([]interfaces.SearchRange, 0, workers)
	lower := uint64(rng.Lower)
	for i := 0; i < workers; i++ {
		upper := lower + chunk
		if i == workers-1 {
			upper = uint64(rng.Upper)
		}
		subs = append(subs, interfaces.SearchRange{
			Lower: uint32(lower),
			Upper: uint32(upper),
		})
		lower = upper
	}
	return subs
}
