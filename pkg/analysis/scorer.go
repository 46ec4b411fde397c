/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer.go
Description: Confidence scorer for the Akaylee Cracker. Compares candidate
generator output against the observed sequence element by element and turns
the match count into the percentage the engine thresholds on.
*/

package analysis

// ConfidenceScorer measures how closely a candidate output sequence matches
// the observed one. Stateless and safe for concurrent use; every worker can
// share a single instance.
type ConfidenceScorer struct{}

// NewConfidenceScorer creates a new confidence scorer instance.
func NewConfidenceScorer() *ConfidenceScorer {
	return &ConfidenceScorer{}
}

// Score returns the percentage of exactly matching elements, compared
// pairwise from index 0 over the shorter of the two sequences. An empty
// comparison window scores 0: no evidence is not a match.
func (s *ConfidenceScorer) Score(candidate, observed []uint32) float64 {
	compared := len(candidate)
	if len(observed) < compared {
		compared = len(observed)
	}
	if compared == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < compared; i++ {
		if candidate[i] == observed[i] {
			matches++
		}
	}
	return float64(matches) / float64(compared) * 100
}

// Matches reports whether the candidate clears the confidence threshold.
func (s *ConfidenceScorer) Matches(candidate, observed []uint32, minConfidence float64) (float64, bool) {
	confidence := s.Score(candidate, observed)
	return confidence, confidence >= minConfidence
}
