/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Main recovery engine for the Akaylee Cracker. Owns the worker
pool for brute-force seed searches, delegates direct state reconstruction to
the inference engine, and exposes progress, lifecycle flags, and statistics
to reporting consumers.
*/

package core

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-cracker/pkg/analysis"
	"github.com/kleascm/akaylee-cracker/pkg/inference"
	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/sirupsen/logrus"
)

// Sample depth bounds for GenerateFromSeed when the caller does not pick a
// depth. Synthetic fixtures land in [sampleDepthMin, sampleDepthMax).
const (
	sampleDepthMin = 16
	sampleDepthMax = 256
)

// Engine is the seed/state recovery engine. One instance serves one session:
// Initialize validates the configuration once, then Bruteforce and InferState
// take the observed outputs explicitly, so the whole configuration stays
// immutable while workers run.
type Engine struct {
	config *interfaces.CrackerConfig
	stats  *CrackerStats
	logger *logrus.Logger

	// Core components
	scorer   *analysis.ConfidenceScorer
	inferrer *inference.Engine

	// Recovered state from the last successful InferState call
	recovered *inference.Result

	// Live progress of the current or last search
	progress *Progress

	// Synchronization
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// State management
	initialized bool
	searching   bool
	mu          sync.RWMutex

	reporters []interfaces.SearchReporter // Registered reporters for telemetry
}

// NewEngine creates a new recovery engine instance.
func NewEngine() *Engine {
	return &Engine{
		stats:  &CrackerStats{StartTime: time.Now()},
		logger: logrus.New(),
		scorer: analysis.NewConfidenceScorer(),
		// empty tracker so progress reads are valid before Initialize
		progress: NewProgress(1, 0),
	}
}

// Initialize validates the configuration and prepares the engine.
// Stamps a session UUID if the caller did not provide one.
func (e *Engine) Initialize(config *interfaces.CrackerConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if config.SessionID == "" {
		config.SessionID = uuid.New().String()
	}

	e.config = config
	e.setupLogging()
	e.inferrer = inference.NewEngine(e.logger)
	// The session tracker lives as long as the engine: observers that grab
	// it before Bruteforce runs keep watching the live counters and barrier
	e.progress = NewProgress(config.Workers, 0)
	e.initialized = true

	e.logger.WithFields(logrus.Fields{
		"session": config.SessionID,
		"variant": config.Variant,
		"depth":   config.Depth,
		"workers": config.Workers,
	}).Info("Recovery engine initialized")
	return nil
}

// AddReporter registers a SearchReporter for telemetry and live reporting.
func (e *Engine) AddReporter(reporter interfaces.SearchReporter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reporters = append(e.reporters, reporter)
}

// SetLogger replaces the engine logger. Call before Initialize so component
// wiring picks it up.
func (e *Engine) SetLogger(logger *logrus.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if logger != nil {
		e.logger = logger
	}
}

// setupLogging configures the engine logger from the session configuration.
func (e *Engine) setupLogging() {
	level, err := logrus.ParseLevel(e.config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	e.logger.SetLevel(level)

	if e.config.LogFormat == "json" {
		e.logger.SetFormatter(&logrus.JSONFormatter{})
	}
}

// Bruteforce searches rng for seeds whose generated output matches the
// observations. The range is split into one contiguous sub-range per worker;
// results are collected under a single mutex and returned in reporting order
// (descending confidence, ascending seed). A cancelled context returns the
// partial results found so far along with the context's error; an exhausted
// range with no matches returns an empty list and no error.
func (e *Engine) Bruteforce(ctx context.Context, observed []uint32, rng interfaces.SearchRange) ([]interfaces.SeedResult, error) {
	e.mu.Lock()
	if !e.initialized {
		e.mu.Unlock()
		return nil, fmt.Errorf("engine not initialized")
	}
	if e.searching {
		e.mu.Unlock()
		return nil, fmt.Errorf("a search is already running")
	}
	if len(observed) == 0 {
		e.mu.Unlock()
		return nil, interfaces.ErrNoObservations
	}

	subs := Partition(rng, e.config.Workers)
	progress := e.progress
	progress.reset(rng.Width())
	e.stats = &CrackerStats{StartTime: time.Now()}
	e.searching = true

	ctx, e.cancel = context.WithCancel(ctx)
	config := e.config
	reporters := make([]interfaces.SearchReporter, len(e.reporters))
	copy(reporters, e.reporters)
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.searching = false
		e.mu.Unlock()
	}()

	if len(subs) == 0 {
		// inverted or empty range: complete immediately, spawn nothing
		progress.MarkCompleted()
		e.stats.finalize()
		e.logger.WithField("range", rng.String()).Info("Empty search range, nothing to do")
		return []interfaces.SeedResult{}, nil
	}

	e.logger.WithFields(logrus.Fields{
		"variant":        config.Variant,
		"range":          rng.String(),
		"candidates":     rng.Width(),
		"workers":        len(subs),
		"depth":          config.Depth,
		"min_confidence": config.MinConfidence,
	}).Info("Starting brute-force search")

	results := NewResultSet()
	onFound := func(result interfaces.SeedResult) {
		e.stats.IncrementMatches()
		for _, r := range reporters {
			r.OnSeedFound(result)
		}
	}

	for i, sub := range subs {
		generator, err := prng.New(config.Variant)
		if err != nil {
			// Validate already vetted the variant; a miss here is a
			// registry bug, not a user error. Stop and drain whatever part
			// of the pool already launched before reporting it.
			progress.MarkCompleted()
			e.wg.Wait()
			return nil, err
		}
		worker := NewWorker(i, generator, e.scorer, e.logger, config.Depth, config.MinConfidence)

		e.wg.Add(1)
		go func(w *Worker, s interfaces.SearchRange) {
			defer e.wg.Done()
			w.Search(s, observed, progress, results, onFound)
		}(worker, sub)
	}

	// Pool is up: release anyone blocked on the start barrier
	progress.MarkStarted()

	// Relay context cancellation to the completion flag the workers poll
	watchDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			progress.MarkCompleted()
		case <-watchDone:
		}
	}()

	e.wg.Wait()
	close(watchDone)
	progress.MarkCompleted()
	e.stats.IncrementEvaluated(int64(progress.Total()))
	e.stats.finalize()

	final := results.Snapshot()
	for _, r := range reporters {
		r.OnSearchComplete(final, progress.Total())
	}

	e.logger.WithFields(logrus.Fields{
		"matches":   len(final),
		"evaluated": progress.Total(),
		"elapsed":   e.stats.Elapsed().String(),
		"rate":      fmt.Sprintf("%.0f seeds/s", e.stats.SeedsPerSecond),
	}).Info("Brute-force search finished")

	if err := ctx.Err(); err != nil {
		return final, err
	}
	return final, nil
}

// Stop requests cancellation of the running search. Advisory in the sense
// that workers observe it between candidates; partial results remain valid.
func (e *Engine) Stop() {
	e.mu.RLock()
	cancel := e.cancel
	e.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
}

// InferState reconstructs the generator's internal state directly from the
// observations, skipping the seed search entirely. Only valid for variants
// whose output transform is invertible; on success GenerateFromState
// continues the recovered sequence.
func (e *Engine) InferState(observed []uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return fmt.Errorf("engine not initialized")
	}
	if len(observed) == 0 {
		return interfaces.ErrNoObservations
	}

	result, err := e.inferrer.Infer(e.config.Variant, observed)
	if err != nil {
		return err
	}
	e.recovered = result
	return nil
}

// HasRecoveredState reports whether a prior InferState succeeded.
func (e *Engine) HasRecoveredState() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.recovered != nil
}

// RecoveredWindow returns how many observations the last successful
// inference consumed and validated. Zero values when no state is held.
func (e *Engine) RecoveredWindow() (window, validated int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.recovered == nil {
		return 0, 0
	}
	return e.recovered.WindowLen, e.recovered.Validated
}

// GenerateFromState continues the sequence from the recovered internal
// state. Requires a prior successful InferState.
func (e *Engine) GenerateFromState(n int) ([]uint32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.recovered == nil {
		return nil, fmt.Errorf("no recovered state: run InferState first")
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", prng.ErrInvalidDepth, n)
	}
	return e.recovered.Continue(n), nil
}

// GenerateFromSeed produces a sample sequence from the configured variant.
// A depth of 0 picks a pseudo-random sample length; used for building
// synthetic fixtures, not for recovery.
func (e *Engine) GenerateFromSeed(seed uint32, depth int) ([]uint32, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.initialized {
		return nil, fmt.Errorf("engine not initialized")
	}
	if depth == 0 {
		depth = sampleDepthMin + rand.Intn(sampleDepthMax-sampleDepthMin)
	}
	return prng.Generate(e.config.Variant, seed, depth)
}

// Progress returns the tracker for the current or most recent search.
func (e *Engine) Progress() *Progress {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.progress
}

// Started returns the start barrier of the current search. Closed once the
// worker pool is launched; display consumers block here instead of spinning.
func (e *Engine) Started() <-chan struct{} {
	return e.Progress().Started()
}

// IsRunning reports whether a search is actively evaluating candidates.
func (e *Engine) IsRunning() bool {
	return e.Progress().IsRunning()
}

// IsCompleted reports whether the last search finished or was cancelled.
func (e *Engine) IsCompleted() bool {
	return e.Progress().IsCompleted()
}

// GetStats returns a copy of the current engine statistics.
func (e *Engine) GetStats() *CrackerStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	stats := *e.stats
	return &stats
}

// Config returns the active configuration, or nil before Initialize.
func (e *Engine) Config() *interfaces.CrackerConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.config
}
