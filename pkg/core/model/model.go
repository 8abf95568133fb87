// Package model is the projection orchestrator. A Model owns a validated
// parameter bundle and drives the population recurrence and stream catalogs
// across the horizon into result tables. Models are cheap to construct and
// pure: the same bundle and horizon always produce the same table.
package model

import (
	"fmt"

	"github.com/google/uuid"

	"revenue_model/pkg/core/growth"
	"revenue_model/pkg/core/params"
	"revenue_model/pkg/core/streams"
	"revenue_model/pkg/core/tco"
)

// Annual growth applied to the vehicle variant's aggregate revenue figure.
// Deliberately decoupled from the population recurrence: the trajectory sets
// the year-1 scale, later years compound at this flat business assumption.
const annualRevenueGrowth = 0.15

// Model is the engine facade consumed by the dashboard and CLI collaborators.
type Model struct {
	bundle  params.Bundle
	monthly *streams.Registry
	annual  *streams.AggregateRegistry
}

// New constructs a Model from a validated bundle. Invalid configuration is
// rejected here, naming the offending field; it never defaults to zero.
func New(b params.Bundle) (*Model, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Model{
		bundle:  b.Clone(),
		monthly: streams.PartnershipCatalog(),
		annual:  streams.VehicleCatalog(),
	}, nil
}

// Bundle returns a copy of the model's configuration.
func (m *Model) Bundle() params.Bundle {
	return m.bundle.Clone()
}

// Row is one period of a projection: the population snapshot joined with the
// per-stream revenue amounts of that period.
type Row struct {
	Period       int                `json:"period"`
	TotalUsers   float64            `json:"total_users"`
	ActiveUsers  float64            `json:"active_users"`
	EngagedUsers float64            `json:"engaged_users"`
	Streams      map[string]float64 `json:"streams"`
	TotalRevenue float64            `json:"total_revenue"`
}

// ProjectionTable is the ordered result of a partnership-variant run. Row
// order is period order, ascending from 0; row 0 is the baseline for
// growth-percentage metrics. StreamNames fixes the column order.
type ProjectionTable struct {
	RunID       string   `json:"run_id"`
	StreamNames []string `json:"stream_names"`
	Rows        []Row    `json:"rows"`
	// Degenerate is set when any period's population went negative: a valid
	// output signaling a non-viable growth assumption, not an error.
	Degenerate bool `json:"degenerate"`
}

// Final returns the last row of the table.
func (t *ProjectionTable) Final() Row {
	return t.Rows[len(t.Rows)-1]
}

// RunProjection iterates periods 0..n inclusive, assembling one row per
// period from the population model and the stream catalog.
func (m *Model) RunProjection(periods int) (*ProjectionTable, error) {
	if periods <= 0 {
		return nil, fmt.Errorf("projection periods: must be > 0, got %d", periods)
	}
	traj := growth.Project(m.bundle.UserGrowth, periods)
	table := &ProjectionTable{
		RunID:       uuid.New().String(),
		StreamNames: m.monthly.Names(),
		Rows:        make([]Row, 0, len(traj)),
	}
	for _, snap := range traj {
		amounts, total := m.monthly.Compute(snap, &m.bundle)
		if snap.TotalUsers < 0 {
			table.Degenerate = true
		}
		table.Rows = append(table.Rows, Row{
			Period:       snap.Period,
			TotalUsers:   snap.TotalUsers,
			ActiveUsers:  snap.ActiveUsers,
			EngagedUsers: snap.EngagedUsers,
			Streams:      amounts,
			TotalRevenue: total,
		})
	}
	return table, nil
}

// CalculateTCO produces the vehicle cost schedule for the model's vehicle and
// market assumptions.
func (m *Model) CalculateTCO() (*tco.Result, error) {
	return tco.Calculate(m.bundle.Vehicle, m.bundle.Market)
}

// RevenueResult is the vehicle variant's aggregate revenue projection.
type RevenueResult struct {
	TotalRevenue     float64            `json:"total_revenue"`
	RevenueGrowthPct float64            `json:"revenue_growth_pct"`
	AnnualRevenue    []float64          `json:"annual_revenue"`
	StreamNames      []string           `json:"stream_names"`
	StreamTotals     map[string]float64 `json:"stream_totals"`
}

// CalculateRevenueStreams computes the vehicle variant's revenue figures.
// The monthly engagement-scaled user trajectory over the horizon sets the
// scale of the base annual figure (streams use its mean or sum); subsequent
// ownership years then compound at the flat annual growth assumption rather
// than re-deriving population per year.
func (m *Model) CalculateRevenueStreams(months int) (*RevenueResult, error) {
	if months <= 0 {
		return nil, fmt.Errorf("revenue horizon months: must be > 0, got %d", months)
	}
	traj := growth.Project(m.bundle.UserGrowth, months)
	amounts, base := m.annual.Compute(traj, &m.bundle)

	years := m.bundle.Vehicle.OwnershipYears
	annual := make([]float64, years)
	factor := 1.0
	for y := 0; y < years; y++ {
		annual[y] = base * factor
		factor *= 1 + annualRevenueGrowth
	}

	var total float64
	for _, v := range annual {
		total += v
	}

	growthPct := 0.0
	if years > 1 && annual[0] != 0 {
		growthPct = (annual[years-1]/annual[0] - 1) * 100
	}

	return &RevenueResult{
		TotalRevenue:     total,
		RevenueGrowthPct: growthPct,
		AnnualRevenue:    annual,
		StreamNames:      m.annual.Names(),
		StreamTotals:     amounts,
	}, nil
}
