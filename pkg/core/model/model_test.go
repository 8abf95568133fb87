package model

import (
	"math"
	"testing"

	"revenue_model/pkg/core/growth"
	"revenue_model/pkg/core/params"
)

const epsilon = 1e-6

func mustModel(t *testing.T, b params.Bundle) *Model {
	t.Helper()
	m, err := New(b)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNew_RejectsInvalidBundle(t *testing.T) {
	b := params.Default()
	b.Vehicle.BasePrice = -1
	if _, err := New(b); err == nil {
		t.Fatal("invalid bundle should be rejected at construction")
	}
}

func TestNew_ClonesBundle(t *testing.T) {
	b := params.Default()
	m := mustModel(t, b)
	b.Partnership.ServiceProviders[0] = "mutated"
	if m.Bundle().Partnership.ServiceProviders[0] == "mutated" {
		t.Error("model must hold its own copy of the bundle")
	}
}

func TestRunProjection_RowsMatchPopulationModel(t *testing.T) {
	b := params.Default()
	m := mustModel(t, b)
	table, err := m.RunProjection(12)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 13 {
		t.Fatalf("expected periods 0..12 inclusive, got %d rows", len(table.Rows))
	}
	if table.RunID == "" {
		t.Error("run id should be assigned")
	}

	traj := growth.Project(b.UserGrowth, 12)
	for i, row := range table.Rows {
		if row.Period != i {
			t.Errorf("row %d has period %d", i, row.Period)
		}
		if math.Abs(row.TotalUsers-traj[i].TotalUsers) > epsilon {
			t.Errorf("period %d: total users = %v, want %v", i, row.TotalUsers, traj[i].TotalUsers)
		}
		if math.Abs(row.EngagedUsers-traj[i].EngagedUsers) > epsilon {
			t.Errorf("period %d: engaged users = %v, want %v", i, row.EngagedUsers, traj[i].EngagedUsers)
		}
	}
}

func TestRunProjection_TotalIsExactStreamSum(t *testing.T) {
	m := mustModel(t, params.Default())
	table, err := m.RunProjection(24)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range table.Rows {
		var sum float64
		for _, name := range table.StreamNames {
			sum += row.Streams[name]
		}
		if math.Abs(row.TotalRevenue-sum) > epsilon {
			t.Errorf("period %d: total %v != stream sum %v", row.Period, row.TotalRevenue, sum)
		}
		if len(row.Streams) != len(table.StreamNames) {
			t.Errorf("period %d: %d stream values, want %d", row.Period, len(row.Streams), len(table.StreamNames))
		}
	}
}

func TestRunProjection_DegenerateFlag(t *testing.T) {
	b := params.Default()
	b.UserGrowth.MonthlyGrowthRate = 0
	b.UserGrowth.MonthlyChurnRate = 0.9
	m := mustModel(t, b)
	table, err := m.RunProjection(6)
	if err != nil {
		t.Fatal(err)
	}
	// 90% churn never goes negative (10% survives each period), so the
	// table stays non-degenerate even as it collapses toward zero.
	if table.Degenerate {
		t.Error("collapsing-but-positive population should not be flagged degenerate")
	}

	healthy := mustModel(t, params.Default())
	ht, err := healthy.RunProjection(6)
	if err != nil {
		t.Fatal(err)
	}
	if ht.Degenerate {
		t.Error("default bundle should not be degenerate")
	}
}

func TestRunProjection_InvalidHorizon(t *testing.T) {
	m := mustModel(t, params.Default())
	for _, periods := range []int{0, -3} {
		if _, err := m.RunProjection(periods); err == nil {
			t.Errorf("RunProjection(%d): expected error", periods)
		}
	}
}

func TestFinal(t *testing.T) {
	m := mustModel(t, params.Default())
	table, err := m.RunProjection(5)
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Final(); got.Period != 5 {
		t.Errorf("Final().Period = %d, want 5", got.Period)
	}
}

func TestCalculateRevenueStreams_AnnualGrowth(t *testing.T) {
	m := mustModel(t, params.Default())
	res, err := m.CalculateRevenueStreams(60)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.AnnualRevenue) != 5 {
		t.Fatalf("expected one figure per ownership year, got %d", len(res.AnnualRevenue))
	}
	// Later years compound at a flat 15% on the base figure.
	for y := 1; y < len(res.AnnualRevenue); y++ {
		want := res.AnnualRevenue[y-1] * 1.15
		if math.Abs(res.AnnualRevenue[y]-want) > 1e-6*want {
			t.Errorf("year %d = %v, want %v", y, res.AnnualRevenue[y], want)
		}
	}
	// (1.15^4 - 1) * 100 over five years.
	if math.Abs(res.RevenueGrowthPct-74.900625) > 1e-4 {
		t.Errorf("growth pct = %v, want 74.900625", res.RevenueGrowthPct)
	}
	var sum float64
	for _, v := range res.AnnualRevenue {
		sum += v
	}
	if math.Abs(res.TotalRevenue-sum) > epsilon {
		t.Errorf("total revenue %v != sum of annual figures %v", res.TotalRevenue, sum)
	}
}

func TestCalculateRevenueStreams_BaseFromAggregateCatalog(t *testing.T) {
	m := mustModel(t, params.Default())
	res, err := m.CalculateRevenueStreams(60)
	if err != nil {
		t.Fatal(err)
	}
	var streamSum float64
	for _, name := range res.StreamNames {
		streamSum += res.StreamTotals[name]
	}
	if math.Abs(res.AnnualRevenue[0]-streamSum) > 1e-6*streamSum {
		t.Errorf("year-1 figure %v != stream total %v", res.AnnualRevenue[0], streamSum)
	}
	if _, err := m.CalculateRevenueStreams(0); err == nil {
		t.Error("non-positive horizon should be rejected")
	}
}

func TestCalculateRevenueStreams_EngagementScalesRevenue(t *testing.T) {
	run := func(engagement float64) *RevenueResult {
		b := params.Default()
		b.UserGrowth.EngagementRate = engagement
		res, err := mustModel(t, b).CalculateRevenueStreams(60)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}
	lo := run(0.1)
	hi := run(0.9)

	if math.Abs(hi.TotalRevenue-lo.TotalRevenue) < 1e-6 {
		t.Fatalf("engagement rate must drive vehicle revenue: both gave %v", lo.TotalRevenue)
	}
	// Engagement scales the population-driven streams linearly: 9x the rate
	// means 9x the figure. Only the partner-count fees stay put.
	for _, name := range []string{"service_providers", "data_providers", "user_saas"} {
		if math.Abs(hi.StreamTotals[name]-9*lo.StreamTotals[name]) > 1e-6*hi.StreamTotals[name] {
			t.Errorf("%s: %v at 0.9 engagement, want 9x %v", name, hi.StreamTotals[name], lo.StreamTotals[name])
		}
	}
	if lo.StreamTotals["partnership_fees"] != hi.StreamTotals["partnership_fees"] {
		t.Error("partnership fees should not depend on engagement")
	}
}

func TestCalculateTCO_UsesBundleVehicle(t *testing.T) {
	b := params.Default()
	b.Vehicle = params.Vehicle{Class: params.ClassGasoline, BasePrice: 20000, AnnualMileage: 10000, OwnershipYears: 3}
	b.Market.InflationRate = 0
	m := mustModel(t, b)
	res, err := m.CalculateTCO()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.AnnualSchedules["depreciation"][0]-4000) > epsilon {
		t.Errorf("year-0 depreciation = %v, want 4000", res.AnnualSchedules["depreciation"][0])
	}
}
