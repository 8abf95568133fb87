// Package analysis derives profit, ROI, break-even timing, recommendations
// and sensitivity sweeps from the projection engine. Every function here
// re-invokes the engine rather than caching state: results are always
// consistent with the bundle they were asked about.
package analysis

import (
	"bytes"
	"encoding/json"
	"math"

	"revenue_model/pkg/core/model"
)

// Horizon (months) used when an analysis needs the full revenue projection.
const defaultRevenueMonths = 60

// ProfitReport joins the two sides of the model.
type ProfitReport struct {
	NetProfit    float64 `json:"net_profit"`
	ROI          float64 `json:"roi"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalTCO     float64 `json:"total_tco"`
}

// NetProfit computes net profit and ROI over the ownership horizon. ROI is
// defined as 0 when total TCO is 0; a zero-cost scenario is a valid input,
// not a division fault.
func NetProfit(m *model.Model) (*ProfitReport, error) {
	cost, err := m.CalculateTCO()
	if err != nil {
		return nil, err
	}
	rev, err := m.CalculateRevenueStreams(defaultRevenueMonths)
	if err != nil {
		return nil, err
	}
	net := rev.TotalRevenue - cost.TotalTCO
	roi := 0.0
	if cost.TotalTCO > 0 {
		roi = net / cost.TotalTCO * 100
	}
	return &ProfitReport{
		NetProfit:    net,
		ROI:          roi,
		TotalRevenue: rev.TotalRevenue,
		TotalTCO:     cost.TotalTCO,
	}, nil
}

// BreakEvenReport holds annualized run rates and the projected break-even
// point. BreakEvenMonths is +Inf when revenue never covers cost: unreachable,
// not an error.
type BreakEvenReport struct {
	AnnualTCO       float64 `json:"annual_tco"`
	AnnualRevenue   float64 `json:"annual_revenue"`
	BreakEvenMonths float64 `json:"break_even_months"`
	Profitable      bool    `json:"profitable"`
}

// MarshalJSON renders an unreachable break-even as null; encoding/json has no
// representation for +Inf.
func (r BreakEvenReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"annual_tco":`)
	if err := writeNum(&buf, r.AnnualTCO); err != nil {
		return nil, err
	}
	buf.WriteString(`,"annual_revenue":`)
	if err := writeNum(&buf, r.AnnualRevenue); err != nil {
		return nil, err
	}
	buf.WriteString(`,"break_even_months":`)
	if math.IsInf(r.BreakEvenMonths, 1) {
		buf.WriteString("null")
	} else if err := writeNum(&buf, r.BreakEvenMonths); err != nil {
		return nil, err
	}
	buf.WriteString(`,"profitable":`)
	if r.Profitable {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func writeNum(buf *bytes.Buffer, v float64) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// BreakEven compares flat annualized run rates of cost and revenue.
func BreakEven(m *model.Model) (*BreakEvenReport, error) {
	cost, err := m.CalculateTCO()
	if err != nil {
		return nil, err
	}
	rev, err := m.CalculateRevenueStreams(defaultRevenueMonths)
	if err != nil {
		return nil, err
	}
	years := float64(m.Bundle().Vehicle.OwnershipYears)
	annualTCO := cost.TotalTCO / years
	annualRev := rev.TotalRevenue / years

	months := math.Inf(1)
	if annualRev > annualTCO {
		months = 12 * annualTCO / annualRev
	}
	return &BreakEvenReport{
		AnnualTCO:       annualTCO,
		AnnualRevenue:   annualRev,
		BreakEvenMonths: months,
		Profitable:      annualRev > annualTCO,
	}, nil
}
