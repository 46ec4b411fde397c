/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: State inference engine for the Akaylee Cracker. Rebuilds the full
internal state of an invertible generator from a contiguous run of observed
outputs, validates the reconstruction against the remaining observations, and
hands back a generator positioned to continue the true sequence.
*/

package inference

import (
	"errors"
	"fmt"

	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/sirupsen/logrus"
)

// ErrInferenceMismatch indicates that a reconstructed state failed to
// reproduce the observations beyond the recovery window. The observations
// were not produced by this variant at this offset, or they are not
// contiguous. Callers should fall back to brute force.
var ErrInferenceMismatch = errors.New("recovered state does not reproduce the remaining observations")

// Result holds a successful inference: the recovered generator and how the
// reconstruction was validated.
type Result struct {
	Generator prng.StateRecoverer // Positioned after the LAST observation
	Variant   string              // Variant the state belongs to
	WindowLen int                 // Outputs consumed to rebuild the state
	Validated int                 // Held-out observations confirmed beyond the window
}

// Engine performs direct state reconstruction. Orders of magnitude faster
// than a seed search when it applies: the work is linear in the window
// length, not in the size of any seed range.
type Engine struct {
	logger *logrus.Logger
}

// NewEngine creates a new state inference engine.
func NewEngine(logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{logger: logger}
}

// Infer rebuilds the named variant's internal state from the observed
// outputs. The first StateLen observations become the recovery window; every
// observation after it is held out and must be reproduced exactly. On
// success the returned generator's Next continues the unknown generator's
// sequence from the point after the last observation.
func (e *Engine) Infer(variant string, observed []uint32) (*Result, error) {
	g, err := prng.New(variant)
	if err != nil {
		return nil, err
	}

	recoverer, ok := g.(prng.StateRecoverer)
	if !ok {
		return nil, fmt.Errorf("%w: %q", prng.ErrRecoveryUnsupported, variant)
	}

	window := recoverer.StateLen()
	if len(observed) < window {
		return nil, fmt.Errorf("%w: variant %q needs %d outputs, got %d",
			prng.ErrInsufficientWindow, variant, window, len(observed))
	}

	if err := recoverer.RecoverState(observed[:window]); err != nil {
		return nil, err
	}

	// Validate against the held-out tail. A single divergence means the
	// reconstruction is wrong, not approximately right: state recovery is
	// exact or it is nothing.
	held := observed[window:]
	for i, want := range held {
		if got := recoverer.Next(); got != want {
			e.logger.WithFields(logrus.Fields{
				"variant":  variant,
				"position": window + i,
				"expected": want,
				"got":      got,
			}).Debug("State validation diverged")
			return nil, fmt.Errorf("%w: diverged at observation %d", ErrInferenceMismatch, window+i)
		}
	}

	e.logger.WithFields(logrus.Fields{
		"variant":   variant,
		"window":    window,
		"validated": len(held),
	}).Info("Internal state recovered")

	return &Result{
		Generator: recoverer,
		Variant:   variant,
		WindowLen: window,
		Validated: len(held),
	}, nil
}

// Continue generates the next n outputs from a recovered state.
func (r *Result) Continue(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.Generator.Next()
	}
	return out
}
