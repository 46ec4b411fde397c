/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the Akaylee Cracker engine. Defines search modes
and the thread-safe statistics block shared by workers, the monitor, and the
reporting layer.
*/

package core

import (
	"sync/atomic"
	"time"
)

// SearchMode identifies which recovery strategy a session used.
type SearchMode string

const (
	// ModeBruteforce walks a seed range and scores candidate output
	ModeBruteforce SearchMode = "bruteforce"

	// ModeInference rebuilds internal state directly from the outputs
	ModeInference SearchMode = "inference"
)

// CrackerStats tracks overall engine statistics
// Uses atomic operations for thread-safe updates
type CrackerStats struct {
	SeedsEvaluated int64     `json:"seeds_evaluated"`  // Total candidate seeds tested
	MatchesFound   int64     `json:"matches_found"`    // Candidates that cleared the threshold
	StartTime      time.Time `json:"start_time"`       // When the search started
	EndTime        time.Time `json:"end_time"`         // When the search finished
	SeedsPerSecond float64   `json:"seeds_per_second"` // Final evaluation rate
}

// IncrementEvaluated atomically adds tested candidates to the counter
func (s *CrackerStats) IncrementEvaluated(n int64) {
	atomic.AddInt64(&s.SeedsEvaluated, n)
}

// IncrementMatches atomically increments the match counter
func (s *CrackerStats) IncrementMatches() {
	atomic.AddInt64(&s.MatchesFound, 1)
}

// Evaluated returns the current evaluated count
func (s *CrackerStats) Evaluated() int64 {
	return atomic.LoadInt64(&s.SeedsEvaluated)
}

// Matches returns the current match count
func (s *CrackerStats) Matches() int64 {
	return atomic.LoadInt64(&s.MatchesFound)
}

// Elapsed returns the wall time the search has been running
func (s *CrackerStats) Elapsed() time.Duration {
	if s.EndTime.After(s.StartTime) {
		return s.EndTime.Sub(s.StartTime)
	}
	return time.Since(s.StartTime)
}

// finalize stamps the end time and computes the final rate
func (s *CrackerStats) finalize() {
	s.EndTime = time.Now()
	elapsed := s.EndTime.Sub(s.StartTime).Seconds()
	if elapsed > 0 {
		s.SeedsPerSecond = float64(s.Evaluated()) / elapsed
	}
}
