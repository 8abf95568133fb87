// Package streams is the revenue stream catalog: an ordered, open-ended
// registry of named computation rules. New streams are added by registering a
// function; the orchestrator never hardcodes stream names or positions.
package streams

import (
	"fmt"

	"revenue_model/pkg/core/growth"
	"revenue_model/pkg/core/params"
)

// Func computes one stream's currency amount for a single period.
type Func func(p growth.PopulationSnapshot, b *params.Bundle) float64

// AggregateFunc computes one stream's figure from the whole user trajectory.
// The vehicle variant uses these: its streams scale off the mean or sum of
// the active-user series, not off individual periods.
type AggregateFunc func(traj []growth.PopulationSnapshot, b *params.Bundle) float64

// Registry holds per-period streams in registration order. Registration order
// is the column order of every downstream table and export.
type Registry struct {
	names []string
	funcs map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register adds a named stream. Duplicate names are rejected so no stream can
// be silently double-counted.
func (r *Registry) Register(name string, fn Func) error {
	if _, dup := r.funcs[name]; dup {
		return fmt.Errorf("stream %q already registered", name)
	}
	if fn == nil {
		return fmt.Errorf("stream %q: nil compute function", name)
	}
	r.names = append(r.names, name)
	r.funcs[name] = fn
	return nil
}

// Names returns the stream names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Compute evaluates every registered stream for one period. The returned total
// is the exact sum of the returned amounts; no stream is skipped.
func (r *Registry) Compute(p growth.PopulationSnapshot, b *params.Bundle) (map[string]float64, float64) {
	amounts := make(map[string]float64, len(r.names))
	var total float64
	for _, name := range r.names {
		v := r.funcs[name](p, b)
		amounts[name] = v
		total += v
	}
	return amounts, total
}

// AggregateRegistry holds trajectory-level streams in registration order.
type AggregateRegistry struct {
	names []string
	funcs map[string]AggregateFunc
}

func NewAggregateRegistry() *AggregateRegistry {
	return &AggregateRegistry{funcs: make(map[string]AggregateFunc)}
}

func (r *AggregateRegistry) Register(name string, fn AggregateFunc) error {
	if _, dup := r.funcs[name]; dup {
		return fmt.Errorf("stream %q already registered", name)
	}
	if fn == nil {
		return fmt.Errorf("stream %q: nil compute function", name)
	}
	r.names = append(r.names, name)
	r.funcs[name] = fn
	return nil
}

func (r *AggregateRegistry) Names() []string {
	return append([]string(nil), r.names...)
}

// Compute evaluates every registered stream against the full trajectory.
func (r *AggregateRegistry) Compute(traj []growth.PopulationSnapshot, b *params.Bundle) (map[string]float64, float64) {
	amounts := make(map[string]float64, len(r.names))
	var total float64
	for _, name := range r.names {
		v := r.funcs[name](traj, b)
		amounts[name] = v
		total += v
	}
	return amounts, total
}
