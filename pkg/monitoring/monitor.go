/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: monitor.go
Description: Search progress monitor for the Akaylee Cracker. Samples the
per-worker progress counters on a ticker and derives the rate, completion
percentage, and ETA consumed by the live CLI display. Pure reader: the
monitor never writes a counter.
*/

package monitoring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kleascm/akaylee-cracker/pkg/core"
	"github.com/sirupsen/logrus"
)

// Sample is one point-in-time view of a running search.
type Sample struct {
	Timestamp time.Time     `json:"timestamp"`
	Evaluated uint64        `json:"evaluated"`       // Candidates tested so far
	Target    uint64        `json:"target"`          // Total candidates in the range
	Percent   float64       `json:"percent"`         // Completion 0..100
	Rate      float64       `json:"rate"`            // Seeds per second since the last sample
	ETA       time.Duration `json:"eta"`             // Projected time remaining at the current rate
	PerWorker []uint64      `json:"per_worker"`      // Counter snapshot, one slot per worker
	Running   bool          `json:"running"`         // Lifecycle flags at sample time
	Completed bool          `json:"completed"`
}

// Monitor periodically samples a Progress tracker and hands each sample to a
// callback. It waits on the tracker's start barrier before the first sample,
// so a display attached early never reads a pool that has not launched.
type Monitor struct {
	progress *core.Progress
	interval time.Duration
	logger   *logrus.Logger

	onSample func(Sample)

	// State
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex

	lastSample    time.Time
	lastEvaluated uint64
}

// NewMonitor creates a monitor for the given progress tracker. The callback
// receives every sample; a nil callback reduces the monitor to periodic
// debug logging.
func NewMonitor(progress *core.Progress, interval time.Duration, logger *logrus.Logger, onSample func(Sample)) *Monitor {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Monitor{
		progress: progress,
		interval: interval,
		logger:   logger,
		onSample: onSample,
	}
}

// Start begins sampling in a background goroutine.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return fmt.Errorf("monitor already running")
	}
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.running = true

	m.wg.Add(1)
	go m.sampleLoop()
	return nil
}

// Stop stops sampling and waits for the loop to drain. A final sample is
// emitted so displays can settle on the true end state.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.cancel()
	m.mu.Unlock()

	m.wg.Wait()
}

// sampleLoop blocks on the start barrier, then samples until cancelled or
// until the search completes.
func (m *Monitor) sampleLoop() {
	defer m.wg.Done()

	select {
	case <-m.progress.Started():
	case <-m.ctx.Done():
		return
	}

	m.mu.Lock()
	m.lastSample = time.Now()
	m.lastEvaluated = m.progress.Total()
	m.mu.Unlock()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			m.emit()
			return
		case <-ticker.C:
			m.emit()
			if m.progress.IsCompleted() {
				return
			}
		}
	}
}

// emit takes one sample and delivers it.
func (m *Monitor) emit() {
	now := time.Now()
	evaluated := m.progress.Total()

	m.mu.Lock()
	window := now.Sub(m.lastSample).Seconds()
	var rate float64
	if window > 0 {
		rate = float64(evaluated-m.lastEvaluated) / window
	}
	m.lastSample = now
	m.lastEvaluated = evaluated
	m.mu.Unlock()

	sample := Sample{
		Timestamp: now,
		Evaluated: evaluated,
		Target:    m.progress.Target(),
		Percent:   m.progress.Percent(),
		Rate:      rate,
		PerWorker: m.progress.Snapshot(),
		Running:   m.progress.IsRunning(),
		Completed: m.progress.IsCompleted(),
	}
	if rate > 0 && sample.Target > sample.Evaluated {
		remaining := float64(sample.Target-sample.Evaluated) / rate
		sample.ETA = time.Duration(remaining * float64(time.Second))
	}

	m.logger.WithFields(logrus.Fields{
		"evaluated": sample.Evaluated,
		"percent":   fmt.Sprintf("%.1f", sample.Percent),
		"rate":      fmt.Sprintf("%.0f/s", sample.Rate),
	}).Debug("Progress sample")

	if m.onSample != nil {
		m.onSample(sample)
	}
}
