/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: worker.go
Description: Search worker for the Akaylee Cracker. Each worker owns a
private generator instance and a reusable output buffer and walks one
contiguous sub-range of the seed space, scoring every candidate against the
observed outputs.
*/

package core

import (
	"github.com/kleascm/akaylee-cracker/pkg/analysis"
	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/sirupsen/logrus"
)

// Worker evaluates candidate seeds from one sub-range of the search space
// Owns its generator instance so no synchronization is needed on the hot path
type Worker struct {
	ID        int                        // Unique worker identifier
	generator prng.Generator             // Private generator instance
	scorer    *analysis.ConfidenceScorer // Shared stateless scorer
	logger    *logrus.Logger             // Worker logger

	depth         int     // Outputs generated per candidate
	minConfidence float64 // Inclusion threshold in percent
}

// NewWorker creates a new search worker instance.
func NewWorker(id int, generator prng.Generator, scorer *analysis.ConfidenceScorer, logger *logrus.Logger, depth int, minConfidence float64) *Worker {
	return &Worker{
		ID:            id,
		generator:     generator,
		scorer:        scorer,
		logger:        logger,
		depth:         depth,
		minConfidence: minConfidence,
	}
}

// Search walks the sub-range in ascending order. For every candidate it
// seeds the private generator, regenerates the comparison window, scores it,
// and records a result when the threshold is cleared. The worker polls the
// completion flag between candidates, so cancellation takes effect without
// waiting for the sub-range to drain. Counter updates go only to this
// worker's slot.
func (w *Worker) Search(sub interfaces.SearchRange, observed []uint32, progress *Progress, results *ResultSet, onFound func(interfaces.SeedResult)) {
	compare := w.depth
	if len(observed) < compare {
		compare = len(observed)
	}
	if compare == 0 {
		return
	}
	buf := make([]uint32, compare)

	for seed := sub.Lower; seed < sub.Upper; seed++ {
		if progress.IsCompleted() {
			return
		}

		w.generator.Seed(seed)
		for i := range buf {
			buf[i] = w.generator.Next()
		}

		if confidence, ok := w.scorer.Matches(buf, observed, w.minConfidence); ok {
			if results.Add(seed, confidence) {
				w.logger.WithFields(logrus.Fields{
					"worker":     w.ID,
					"seed":       seed,
					"confidence": confidence,
				}).Info("Candidate seed matched")
				if onFound != nil {
					onFound(interfaces.SeedResult{Seed: seed, Confidence: confidence})
				}
			}
		}

		progress.Add(w.ID, 1)
	}
}
