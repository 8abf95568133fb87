package analysis

import (
	"revenue_model/pkg/core/model"
	"revenue_model/pkg/core/params"
)

// DefaultSweepHorizon is the shortened projection horizon used for sweep
// points; sweeps trade horizon length for breadth of values.
const DefaultSweepHorizon = 12

// Point is one sweep entry. A failing value records its error and zero
// results; it never aborts the rest of the sweep.
type Point struct {
	Value        float64 `json:"value"`
	FinalRevenue float64 `json:"final_revenue"`
	PctChange    float64 `json:"pct_change"`
	Err          string  `json:"error,omitempty"`
}

// Sensitivity re-runs the full projection once per candidate value of the
// parameter at the given dotted path, recording the terminal monthly revenue
// and its percentage change versus the period-0 baseline of the same run.
//
// Every point operates on a fresh clone of the bundle, so the caller's
// configuration is untouched regardless of how many values were tested, and
// points could run concurrently without coordination.
func Sensitivity(b params.Bundle, path string, values []float64, horizon int) []Point {
	if horizon <= 0 {
		horizon = DefaultSweepHorizon
	}
	points := make([]Point, 0, len(values))
	for _, v := range values {
		points = append(points, sweepPoint(b.Clone(), path, v, horizon))
	}
	return points
}

func sweepPoint(b params.Bundle, path string, v float64, horizon int) Point {
	p := Point{Value: v}
	if err := b.Set(path, v); err != nil {
		p.Err = err.Error()
		return p
	}
	m, err := model.New(b)
	if err != nil {
		p.Err = err.Error()
		return p
	}
	table, err := m.RunProjection(horizon)
	if err != nil {
		p.Err = err.Error()
		return p
	}
	final := table.Final()
	p.FinalRevenue = final.TotalRevenue
	if base := table.Rows[0].TotalRevenue; base != 0 {
		p.PctChange = (final.TotalRevenue/base - 1) * 100
	}
	return p
}
