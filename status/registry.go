// Package status collects session statistics and the latest tick snapshot
// so readers on other goroutines (the spectator API) never touch the engine.
package status

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
)

// Metric keys
const (
	KeyTicks        = "ticks"
	KeyFoodEaten    = "food_eaten"
	KeyBestLength   = "best_length"
	KeyGamesStarted = "games_started"
	KeyGamesOver    = "games_over"
	KeyMeanLength   = "mean_final_length"
	KeyLastCause    = "last_cause"
	KeyMode         = "mode"
)

// Registry is the central metrics facade
// The session goroutine writes; any goroutine may read
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Means  *MetricMap[Mean]
	Labels *MetricMap[Label]

	latest atomic.Pointer[engine.TickResult]

	// Cached pointers for the per-tick path
	ticks     *atomic.Int64
	eaten     *atomic.Int64
	best      *atomic.Int64
	started   *atomic.Int64
	over      *atomic.Int64
	meanLen   *Mean
	lastCause *Label
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	r := &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Means:  NewMetricMap[Mean](),
		Labels: NewMetricMap[Label](),
	}
	r.ticks = r.Ints.Get(KeyTicks)
	r.eaten = r.Ints.Get(KeyFoodEaten)
	r.best = r.Ints.Get(KeyBestLength)
	r.started = r.Ints.Get(KeyGamesStarted)
	r.over = r.Ints.Get(KeyGamesOver)
	r.meanLen = r.Means.Get(KeyMeanLength)
	r.lastCause = r.Labels.Get(KeyLastCause)
	return r
}

// BeginGame records a fresh session and its initial view
func (r *Registry) BeginGame(snap engine.TickResult) {
	r.started.Add(1)
	r.raiseBest(int64(snap.Length))
	r.latest.Store(&snap)
}

// Publish records one tick result
func (r *Registry) Publish(res engine.TickResult) {
	r.ticks.Add(1)
	if res.Ate {
		r.eaten.Add(1)
	}
	r.raiseBest(int64(res.Length))

	if res.GameOver {
		r.over.Add(1)
		r.meanLen.Observe(float64(res.Length))
		r.lastCause.Store(res.Cause.String())
	}
	r.latest.Store(&res)
}

// SetMode records the active driver name
func (r *Registry) SetMode(mode string) {
	r.Labels.Get(KeyMode).Store(mode)
}

// Latest returns the most recent snapshot, false before the first game
func (r *Registry) Latest() (engine.TickResult, bool) {
	p := r.latest.Load()
	if p == nil {
		return engine.TickResult{}, false
	}
	return *p, true
}

// Stats flattens every metric into a key/value map
func (r *Registry) Stats() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) { out[key] = v.Load() })
	r.Means.Range(func(key string, v *Mean) { out[key] = v.Value() })
	r.Labels.Range(func(key string, v *Label) { out[key] = v.Load() })
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Means.Count() + r.Labels.Count()
}

func (r *Registry) raiseBest(n int64) {
	for {
		cur := r.best.Load()
		if n <= cur || r.best.CompareAndSwap(cur, n) {
			return
		}
	}
}
