package analysis

import (
	"math"
	"reflect"
	"testing"

	"revenue_model/pkg/core/model"
	"revenue_model/pkg/core/params"
)

func TestSensitivity_SweepsGrowthRate(t *testing.T) {
	b := params.Default()
	values := []float64{0.02, 0.08, 0.15}
	points := Sensitivity(b, "user_growth.monthly_growth_rate", values, 12)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Err != "" {
			t.Fatalf("point %d: unexpected error %q", i, p.Err)
		}
		if p.Value != values[i] {
			t.Errorf("point %d: value = %v, want %v", i, p.Value, values[i])
		}
		if p.FinalRevenue <= 0 {
			t.Errorf("point %d: final revenue = %v, want > 0", i, p.FinalRevenue)
		}
	}
	// Higher growth must mean higher terminal revenue.
	if !(points[0].FinalRevenue < points[1].FinalRevenue && points[1].FinalRevenue < points[2].FinalRevenue) {
		t.Errorf("final revenue should increase with growth rate: %v, %v, %v",
			points[0].FinalRevenue, points[1].FinalRevenue, points[2].FinalRevenue)
	}
	if points[2].PctChange <= points[0].PctChange {
		t.Errorf("pct change should increase with growth rate: %v vs %v",
			points[0].PctChange, points[2].PctChange)
	}
}

func TestSensitivity_PointMatchesDirectRun(t *testing.T) {
	b := params.Default()
	points := Sensitivity(b, "user_growth.engagement_rate", []float64{0.5}, 12)

	direct := params.Default()
	if err := direct.Set("user_growth.engagement_rate", 0.5); err != nil {
		t.Fatal(err)
	}
	m, err := model.New(direct)
	if err != nil {
		t.Fatal(err)
	}
	table, err := m.RunProjection(12)
	if err != nil {
		t.Fatal(err)
	}
	want := table.Final().TotalRevenue
	if math.Abs(points[0].FinalRevenue-want) > 1e-6 {
		t.Errorf("sweep point revenue = %v, want %v from direct run", points[0].FinalRevenue, want)
	}
}

func TestSensitivity_CallerBundleUntouched(t *testing.T) {
	b := params.Default()
	before := b.Clone()
	Sensitivity(b, "user_growth.monthly_growth_rate", []float64{0.01, 0.5, 0.99}, 0)
	if !reflect.DeepEqual(b, before) {
		t.Error("sweep mutated the caller's bundle")
	}
}

func TestSensitivity_BadValueDoesNotAbort(t *testing.T) {
	b := params.Default()
	// 1.5 fails fraction validation at model construction; the remaining
	// values must still be evaluated.
	points := Sensitivity(b, "user_growth.monthly_growth_rate", []float64{1.5, 0.05}, 12)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Err == "" {
		t.Error("out-of-range value should record an error")
	}
	if points[0].FinalRevenue != 0 {
		t.Errorf("failed point should have zero results, got %v", points[0].FinalRevenue)
	}
	if points[1].Err != "" || points[1].FinalRevenue <= 0 {
		t.Errorf("valid point after a failure should still compute: %+v", points[1])
	}
}

func TestSensitivity_UnknownPath(t *testing.T) {
	points := Sensitivity(params.Default(), "nope.nothing", []float64{1, 2}, 12)
	for i, p := range points {
		if p.Err == "" {
			t.Errorf("point %d: expected unknown-path error", i)
		}
	}
}

func TestSensitivity_DefaultHorizon(t *testing.T) {
	b := params.Default()
	zero := Sensitivity(b, "user_growth.monthly_growth_rate", []float64{0.08}, 0)
	explicit := Sensitivity(b, "user_growth.monthly_growth_rate", []float64{0.08}, DefaultSweepHorizon)
	if math.Abs(zero[0].FinalRevenue-explicit[0].FinalRevenue) > 1e-9 {
		t.Errorf("horizon 0 should fall back to the default: %v vs %v",
			zero[0].FinalRevenue, explicit[0].FinalRevenue)
	}
}
