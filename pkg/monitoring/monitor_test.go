/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: monitor_test.go
Description: Tests for the progress monitor. Drives a progress tracker by hand
and checks the samples the monitor derives from it.
*/

package monitoring

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kleascm/akaylee-cracker/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCollector gathers callback samples under a lock.
type sampleCollector struct {
	mu      sync.Mutex
	samples []Sample
}

func (c *sampleCollector) add(s Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples = append(c.samples, s)
}

func (c *sampleCollector) all() []Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Sample, len(c.samples))
	copy(out, c.samples)
	return out
}

func TestMonitorSamplesRunningSearch(t *testing.T) {
	progress := core.NewProgress(2, 1000)
	collector := &sampleCollector{}
	monitor := NewMonitor(progress, 10*time.Millisecond, nil, collector.add)

	require.NoError(t, monitor.Start(context.Background()))

	progress.MarkStarted()
	progress.Add(0, 300)
	progress.Add(1, 200)

	time.Sleep(50 * time.Millisecond)
	monitor.Stop()

	samples := collector.all()
	require.NotEmpty(t, samples)

	last := samples[len(samples)-1]
	assert.Equal(t, uint64(500), last.Evaluated)
	assert.Equal(t, uint64(1000), last.Target)
	assert.InDelta(t, 50.0, last.Percent, 0.01)
	assert.Len(t, last.PerWorker, 2)
	assert.Equal(t, uint64(300), last.PerWorker[0])
	assert.Equal(t, uint64(200), last.PerWorker[1])
	assert.True(t, last.Running)
	assert.False(t, last.Completed)
}

func TestMonitorWaitsForStartBarrier(t *testing.T) {
	progress := core.NewProgress(1, 100)
	collector := &sampleCollector{}
	monitor := NewMonitor(progress, 5*time.Millisecond, nil, collector.add)

	require.NoError(t, monitor.Start(context.Background()))

	// the pool has not launched: no samples may flow
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, collector.all())

	progress.MarkStarted()
	time.Sleep(30 * time.Millisecond)
	monitor.Stop()
	assert.NotEmpty(t, collector.all())
}

func TestMonitorStopsOnCompletion(t *testing.T) {
	progress := core.NewProgress(1, 100)
	collector := &sampleCollector{}
	monitor := NewMonitor(progress, 5*time.Millisecond, nil, collector.add)

	require.NoError(t, monitor.Start(context.Background()))

	progress.MarkStarted()
	progress.Add(0, 100)
	progress.MarkCompleted()

	// the loop winds down on its own once completion is visible
	deadline := time.After(time.Second)
	for {
		samples := collector.all()
		if n := len(samples); n > 0 && samples[n-1].Completed {
			assert.Equal(t, uint64(100), samples[n-1].Evaluated)
			break
		}
		select {
		case <-deadline:
			t.Fatal("monitor never observed completion")
		case <-time.After(5 * time.Millisecond):
		}
	}
	monitor.Stop()
}

func TestMonitorDoubleStart(t *testing.T) {
	progress := core.NewProgress(1, 100)
	monitor := NewMonitor(progress, 10*time.Millisecond, nil, nil)

	require.NoError(t, monitor.Start(context.Background()))
	assert.Error(t, monitor.Start(context.Background()))
	monitor.Stop()
}

func TestMonitorStopBeforeBarrier(t *testing.T) {
	progress := core.NewProgress(1, 100)
	monitor := NewMonitor(progress, 10*time.Millisecond, nil, nil)

	require.NoError(t, monitor.Start(context.Background()))
	monitor.Stop() // must not hang on the unreleased barrier
}

func TestMonitorDefaultInterval(t *testing.T) {
	monitor := NewMonitor(core.NewProgress(1, 10), 0, nil, nil)
	assert.Equal(t, 500*time.Millisecond, monitor.interval)
}
