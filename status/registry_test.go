package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetricMapGetCreatesOnce verifies repeated lookups share one pointer
func TestMetricMapGetCreatesOnce(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	a := m.Get(EngineTicks)
	b := m.Get(EngineTicks)
	require.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), b.Load())
	assert.True(t, m.Has(EngineTicks))
	assert.False(t, m.Has(EngineFood))
	assert.Equal(t, 1, m.Count())
}

// TestMetricMapRangeSorted verifies iteration follows key order
func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{EngineRuns, AutopilotPlanned, EngineFood} {
		m.Get(k)
	}

	var seen []string
	m.Range(func(k string, _ *atomic.Int64) { seen = append(seen, k) })

	assert.Equal(t, []string{AutopilotPlanned, EngineFood, EngineRuns}, seen)
	assert.Equal(t, seen, m.Keys())
}

// TestMetricMapConcurrentGet verifies parallel first use yields a single counter
func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get(EngineTicks).Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(3200), m.Get(EngineTicks).Load())
	assert.Equal(t, 1, m.Count())
}

// TestAtomicFloat verifies gauge arithmetic
func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	assert.Zero(t, f.Get())

	f.Set(1.5)
	assert.Equal(t, 4.0, f.Add(2.5))

	var avg AtomicFloat
	assert.Equal(t, 10.0, avg.Smooth(10, 0.5))
	assert.Equal(t, 15.0, avg.Smooth(20, 0.5))
}

// TestRegistrySnapshotAndFields verifies both kinds appear in exports
func TestRegistrySnapshotAndFields(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(EngineFood).Add(7)
	r.Floats.Get(EngineTickRate).Set(12)

	snap := r.Snapshot()
	assert.Equal(t, 7.0, snap[EngineFood])
	assert.Equal(t, 12.0, snap[EngineTickRate])
	assert.Equal(t, 2, r.TotalCount())

	fields := r.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, EngineFood, fields[0].Key)
	assert.Equal(t, EngineTickRate, fields[1].Key)
}
