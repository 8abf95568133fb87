// Package growth implements the compounding user-population recurrence.
package growth

import "revenue_model/pkg/core/params"

// PopulationSnapshot is one period of the user trajectory. Values stay
// fractional; rounding happens only at presentation boundaries.
type PopulationSnapshot struct {
	Period       int     `json:"period"`
	TotalUsers   float64 `json:"total_users"`
	ActiveUsers  float64 `json:"active_users"`
	EngagedUsers float64 `json:"engaged_users"`
}

// Project evolves the population over periods 0..n inclusive.
//
// Growth and churn are both computed against the same prior-period total:
//
//	total[t] = total[t-1] + total[t-1]*growth - total[t-1]*churn
//
// This is a modeling choice, not an approximation; churn must not compound on
// the already-grown value. There is no activation step, so active == total,
// and engaged = active * engagement_rate. A churn rate that drives the
// population negative is carried through unclamped: it signals a non-viable
// growth assumption and is the caller's to flag.
func Project(cfg params.UserGrowth, n int) []PopulationSnapshot {
	if n < 0 {
		n = 0
	}
	out := make([]PopulationSnapshot, 0, n+1)
	total := float64(cfg.InitialUsers)
	for t := 0; t <= n; t++ {
		if t > 0 {
			prev := total
			total = prev + prev*cfg.MonthlyGrowthRate - prev*cfg.MonthlyChurnRate
		}
		out = append(out, PopulationSnapshot{
			Period:       t,
			TotalUsers:   total,
			ActiveUsers:  total,
			EngagedUsers: total * cfg.EngagementRate,
		})
	}
	return out
}

// Mean returns the average active-user count of a trajectory.
func Mean(snaps []PopulationSnapshot) float64 {
	if len(snaps) == 0 {
		return 0
	}
	return Sum(snaps) / float64(len(snaps))
}

// Sum returns the cumulative active-user count of a trajectory.
func Sum(snaps []PopulationSnapshot) float64 {
	var sum float64
	for _, s := range snaps {
		sum += s.ActiveUsers
	}
	return sum
}

// MeanEngaged returns the average engaged-user count of a trajectory.
func MeanEngaged(snaps []PopulationSnapshot) float64 {
	if len(snaps) == 0 {
		return 0
	}
	return SumEngaged(snaps) / float64(len(snaps))
}

// SumEngaged returns the cumulative engaged-user count of a trajectory.
func SumEngaged(snaps []PopulationSnapshot) float64 {
	var sum float64
	for _, s := range snaps {
		sum += s.EngagedUsers
	}
	return sum
}
