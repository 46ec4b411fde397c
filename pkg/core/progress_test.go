/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: progress_test.go
Description: Tests for the progress tracker and the result collection.
Covers counter snapshots, lifecycle flags, the one-shot start barrier, and
result deduplication with reporting order.
*/

package core

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressCountersSingleWriter(t *testing.T) {
	p := NewProgress(4, 400)

	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				p.Add(id, 1)
			}
		}(worker)
	}
	wg.Wait()

	snap := p.Snapshot()
	require.Len(t, snap, 4)
	for _, count := range snap {
		assert.Equal(t, uint64(100), count)
	}
	assert.Equal(t, uint64(400), p.Total())
	assert.Equal(t, 100.0, p.Percent())
}

func TestProgressLifecycleFlags(t *testing.T) {
	p := NewProgress(2, 10)
	assert.False(t, p.IsRunning())
	assert.False(t, p.IsCompleted())

	p.MarkStarted()
	assert.True(t, p.IsRunning())
	assert.False(t, p.IsCompleted())

	p.MarkCompleted()
	assert.False(t, p.IsRunning())
	assert.True(t, p.IsCompleted())
}

func TestProgressStartBarrierReleasesWaiters(t *testing.T) {
	p := NewProgress(1, 1)

	released := make(chan struct{})
	go func() {
		<-p.Started()
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("barrier released before MarkStarted")
	case <-time.After(20 * time.Millisecond):
	}

	p.MarkStarted()
	// repeated marks must not re-close the channel
	p.MarkStarted()
	p.MarkCompleted()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("barrier never released")
	}
}

func TestProgressCompletionWithoutStartReleasesBarrier(t *testing.T) {
	// an empty range completes without ever starting
	p := NewProgress(1, 0)
	p.MarkCompleted()

	select {
	case <-p.Started():
	case <-time.After(time.Second):
		t.Fatal("barrier not released on completion")
	}
	assert.Equal(t, 100.0, p.Percent(), "zero-width search reports done")
}

func TestResultSetDeduplicates(t *testing.T) {
	r := NewResultSet()
	assert.True(t, r.Add(42, 90))
	assert.True(t, r.Add(42, 95), "higher confidence replaces the entry")
	assert.False(t, r.Add(42, 80), "lower confidence is ignored")
	assert.False(t, r.Add(42, 95), "equal confidence is not an improvement")

	require.Equal(t, 1, r.Len())
	snap := r.Snapshot()
	assert.Equal(t, uint32(42), snap[0].Seed)
	assert.Equal(t, 95.0, snap[0].Confidence)
}

func TestResultSetReportingOrder(t *testing.T) {
	r := NewResultSet()
	r.Add(300, 90)
	r.Add(100, 100)
	r.Add(200, 100)
	r.Add(50, 95)

	snap := r.Snapshot()
	require.Len(t, snap, 4)
	// descending confidence, ascending seed on ties
	assert.Equal(t, uint32(100), snap[0].Seed)
	assert.Equal(t, uint32(200), snap[1].Seed)
	assert.Equal(t, uint32(50), snap[2].Seed)
	assert.Equal(t, uint32(300), snap[3].Seed)
}

func TestResultSetConcurrentAppends(t *testing.T) {
	r := NewResultSet()

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(base uint32) {
			defer wg.Done()
			for i := uint32(0); i < 50; i++ {
				r.Add(base*50+i, 100)
			}
		}(uint32(worker))
	}
	wg.Wait()

	assert.Equal(t, 400, r.Len())
}
