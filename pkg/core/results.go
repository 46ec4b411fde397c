/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: results.go
Description: Result collection for the Akaylee Cracker. Thread-safe storage
of matching seeds with deduplication and the canonical reporting order.
*/

package core

import (
	"sort"
	"sync"

	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
)

// ResultSet collects matching seeds from all workers
// Deduplicates by seed and keeps the highest confidence seen
type ResultSet struct {
	bySeed map[uint32]float64 // Seed to best confidence
	mu     sync.Mutex         // Guards concurrent worker writes
}

// NewResultSet creates an empty result collection.
func NewResultSet() *ResultSet {
	return &ResultSet{
		bySeed: make(map[uint32]float64),
	}
}

// Add records a matching seed. Returns true if the entry was new or improved
// the stored confidence.
func (r *ResultSet) Add(seed uint32, confidence float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.bySeed[seed]; exists && existing >= confidence {
		return false
	}
	r.bySeed[seed] = confidence
	return true
}

// Len returns the number of distinct matching seeds.
func (r *ResultSet) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bySeed)
}

// Snapshot returns the results in reporting order: descending confidence,
// ascending seed on ties.
func (r *ResultSet) Snapshot() []interfaces.SeedResult {
	r.mu.Lock()
	results := make([]interfaces.SeedResult, 0, len(r.bySeed))
	for seed, confidence := range r.bySeed {
		results = append(results, interfaces.SeedResult{Seed: seed, Confidence: confidence})
	}
	r.mu.Unlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return results[i].Seed < results[j].Seed
	})
	return results
}
