// Package tco generates the year-indexed vehicle cost-of-ownership schedules.
package tco

import (
	"fmt"
	"math"

	"revenue_model/pkg/core/params"
)

// Cost categories, in schedule order.
const (
	CategoryDepreciation = "depreciation"
	CategoryFuel         = "fuel_electricity"
	CategoryMaintenance  = "maintenance"
	CategoryInsurance    = "insurance"
	CategoryRegistration = "registration"
)

// Categories lists the cost categories in canonical order.
func Categories() []string {
	return []string{
		CategoryDepreciation,
		CategoryFuel,
		CategoryMaintenance,
		CategoryInsurance,
		CategoryRegistration,
	}
}

type classRates struct {
	depreciation float64
	maintenance  float64 // $/mile, year-0 baseline
	insurance    float64 // fraction of tracked remaining value
	registration float64 // fraction of tracked remaining value
	mpg          float64 // mpg-equivalent for electric
	kwhPerMile   float64
}

var ratesByClass = map[params.VehicleClass]classRates{
	params.ClassElectric: {depreciation: 0.15, maintenance: 0.08, insurance: 0.04, registration: 0.01, mpg: 100, kwhPerMile: 0.3},
	params.ClassHybrid:   {depreciation: 0.18, maintenance: 0.10, insurance: 0.045, registration: 0.012, mpg: 50, kwhPerMile: 0.1},
	params.ClassGasoline: {depreciation: 0.20, maintenance: 0.12, insurance: 0.05, registration: 0.015, mpg: 25},
	params.ClassDiesel:   {depreciation: 0.22, maintenance: 0.15, insurance: 0.055, registration: 0.018, mpg: 30},
}

// Result holds both decompositions of the total: per-category totals and the
// full per-category annual schedules. The two always agree.
type Result struct {
	TotalTCO        float64              `json:"total_tco"`
	TCOPerMile      float64              `json:"tco_per_mile"`
	CategoryTotals  map[string]float64   `json:"category_totals"`
	AnnualSchedules map[string][]float64 `json:"annual_schedules"`
}

// Calculate produces the cost schedule for one vehicle under the given market
// assumptions.
//
// Three remaining-value trackers are intentionally independent: depreciation
// carries a book value reduced by each year's inflated depreciation charge,
// while insurance and registration each decay a separate tracker geometrically
// by the class depreciation rate. Collapsing them into one tracker changes
// every total and must not be done.
func Calculate(v params.Vehicle, m params.Market) (*Result, error) {
	rates, ok := ratesByClass[v.Class]
	if !ok {
		return nil, fmt.Errorf("vehicle.class: unknown vehicle class %q", v.Class)
	}
	if v.OwnershipYears <= 0 {
		return nil, fmt.Errorf("vehicle.ownership_years: must be > 0, got %d", v.OwnershipYears)
	}

	years := v.OwnershipYears
	miles := float64(v.AnnualMileage)

	depreciation := make([]float64, years)
	fuel := make([]float64, years)
	maintenance := make([]float64, years)
	insurance := make([]float64, years)
	registration := make([]float64, years)

	bookValue := v.BasePrice
	insValue := v.BasePrice
	regValue := v.BasePrice

	for y := 0; y < years; y++ {
		factor := math.Pow(1+m.InflationRate, float64(y))

		dep := bookValue * rates.depreciation * factor
		depreciation[y] = dep
		bookValue -= dep

		fuelPrice := m.FuelPrice * factor
		elecRate := m.ElectricityRate * factor
		switch v.Class {
		case params.ClassElectric:
			fuel[y] = miles * rates.kwhPerMile * elecRate
		case params.ClassHybrid:
			// 70/30 gasoline/electric mileage split.
			gas := miles * 0.7 / rates.mpg * fuelPrice
			elec := miles * 0.3 * rates.kwhPerMile * elecRate
			fuel[y] = gas + elec
		default:
			fuel[y] = miles / rates.mpg * fuelPrice
		}

		// Maintenance escalates 10%/year for vehicle aging, on top of inflation.
		maintenance[y] = miles * rates.maintenance * (1 + 0.1*float64(y)) * factor

		insurance[y] = insValue * rates.insurance * factor
		insValue *= 1 - rates.depreciation

		registration[y] = regValue * rates.registration * factor
		regValue *= 1 - rates.depreciation
	}

	schedules := map[string][]float64{
		CategoryDepreciation: depreciation,
		CategoryFuel:         fuel,
		CategoryMaintenance:  maintenance,
		CategoryInsurance:    insurance,
		CategoryRegistration: registration,
	}

	totals := make(map[string]float64, len(schedules))
	var total float64
	for _, cat := range Categories() {
		var sum float64
		for _, c := range schedules[cat] {
			sum += c
		}
		totals[cat] = sum
		total += sum
	}

	return &Result{
		TotalTCO:        total,
		TCOPerMile:      total / (miles * float64(years)),
		CategoryTotals:  totals,
		AnnualSchedules: schedules,
	}, nil
}
