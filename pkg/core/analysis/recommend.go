package analysis

import (
	"revenue_model/pkg/core/model"
	"revenue_model/pkg/core/streams"
)

// Report is the metric surface the recommendation rules see.
type Report struct {
	ROI       float64
	Streams   map[string]float64
	ChurnRate float64
}

// Rule pairs a predicate with its advisory message.
type Rule struct {
	When    func(Report) bool
	Message string
}

// rules is evaluated in order; the order is the emission order and is part of
// the model's contract.
var rules = []Rule{
	{
		When:    func(r Report) bool { return r.ROI < 20 },
		Message: "Increase partner count or expand enterprise solutions for higher ROI.",
	},
	{
		When: func(r Report) bool {
			return r.Streams[streams.StreamVehicleData] > r.Streams[streams.StreamVehicleService]
		},
		Message: "Data partnerships are outperforming service providers. Consider more data integrations.",
	},
	{
		When: func(r Report) bool {
			return r.Streams[streams.StreamVehicleInsurance] < r.Streams[streams.StreamVehicleParts]
		},
		Message: "Expand insurance partnerships for more balanced revenue streams.",
	},
	{
		When:    func(r Report) bool { return r.ChurnRate > 0.02 },
		Message: "Reduce churn with better engagement or loyalty programs.",
	},
}

const balancedMessage = "Current configuration is well balanced. Monitor market trends for new opportunities."

// Recommendations evaluates the fixed rule list against the model's computed
// ratios and returns the triggered messages in rule order, or the single
// balanced message when nothing fires.
func Recommendations(m *model.Model) ([]string, error) {
	profit, err := NetProfit(m)
	if err != nil {
		return nil, err
	}
	rev, err := m.CalculateRevenueStreams(defaultRevenueMonths)
	if err != nil {
		return nil, err
	}
	report := Report{
		ROI:       profit.ROI,
		Streams:   rev.StreamTotals,
		ChurnRate: m.Bundle().UserGrowth.MonthlyChurnRate,
	}
	var out []string
	for _, rule := range rules {
		if rule.When(report) {
			out = append(out, rule.Message)
		}
	}
	if len(out) == 0 {
		out = append(out, balancedMessage)
	}
	return out, nil
}
