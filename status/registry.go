// Package status holds process-wide counters and gauges for the game loop
package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Metric names
const (
	EngineTicks     = "engine.ticks"
	EngineFood      = "engine.food"
	EngineRuns      = "engine.runs"
	EngineDeaths    = "engine.deaths"
	EngineVictories = "engine.victories"
	EngineTickRate  = "engine.tick_rate"

	AutopilotPlanned   = "autopilot.planned"
	AutopilotFallbacks = "autopilot.fallbacks"
	AutopilotPathLen   = "autopilot.path_len"
)

// Registry groups counters (Ints) and gauges (Floats)
// Callers cache the pointers returned by Get and update atomics directly
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of registered metrics of both kinds
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies all current values keyed by name
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = float64(v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out[k] = v.Get()
	})
	return out
}

// Fields renders every metric as zap fields in sorted order, counters first
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		fields = append(fields, zap.Float64(k, v.Get()))
	})
	return fields
}
