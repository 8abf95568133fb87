package streams

import (
	"revenue_model/pkg/core/growth"
	"revenue_model/pkg/core/params"
)

// Canonical stream names of the partnership (monthly) catalog.
const (
	StreamService   = "service_revenue"
	StreamInsurance = "insurance_revenue"
	StreamParts     = "parts_revenue"
	StreamFinancial = "financial_revenue"
	StreamData      = "data_revenue"
)

// ServiceRevenue: bookings are driven per 1000 engaged users; the platform
// takes a commission on the serviced value.
func ServiceRevenue(p growth.PopulationSnapshot, b *params.Bundle) float64 {
	cfg := b.ServiceProviders
	volume := p.EngagedUsers / 1000 * cfg.BookingsPer1kUsers
	return volume * cfg.AvgServiceValue * cfg.AvgCommissionRate
}

// InsuranceRevenue combines referral commissions on converted engaged users,
// per-claim processing fees driven per 1000 active users, and a retention
// bonus per converted policy.
func InsuranceRevenue(p growth.PopulationSnapshot, b *params.Bundle) float64 {
	cfg := b.Insurance
	conversions := p.EngagedUsers * cfg.ConversionRate
	claims := p.ActiveUsers / 1000 * cfg.ClaimsPer1kUsers
	return conversions*cfg.ReferralCommission +
		claims*cfg.ClaimsProcessingFee +
		conversions*cfg.PolicyRetentionBonus
}

// PartsRevenue: orders driven per 1000 active users, net of returns before the
// commission applies.
func PartsRevenue(p growth.PopulationSnapshot, b *params.Bundle) float64 {
	cfg := b.PartsRetail
	orders := p.ActiveUsers / 1000 * cfg.OrdersPer1kUsers
	netOrders := orders * (1 - cfg.ReturnRate)
	return netOrders * cfg.AvgOrderValue * cfg.CommissionRate
}

// FinancialRevenue scales directly with connected active users: subscription
// fees, transaction fees, and premium upgrades billed as an extra monthly fee.
func FinancialRevenue(p growth.PopulationSnapshot, b *params.Bundle) float64 {
	cfg := b.FinancialServices
	connected := p.ActiveUsers * cfg.ConnectionRate
	return connected*cfg.MonthlyFeePerUser +
		connected*cfg.TransactionsPerUser*cfg.TransactionFee +
		connected*cfg.PremiumUpgradeRate*cfg.MonthlyFeePerUser
}

// DataRevenue: per-user query fees plus per-partner license fees scaled by
// the tier multiplier. Only the data-provider roster's size matters.
func DataRevenue(p growth.PopulationSnapshot, b *params.Bundle) float64 {
	cfg := b.DataServices
	queryRev := p.ActiveUsers * cfg.QueriesPerUser * cfg.PricePerQuery
	licenseRev := float64(len(b.Partnership.DataProviders)) *
		b.Partnership.TierMultiplier() * cfg.LicenseFeePerPartner
	return queryRev + licenseRev
}

// PartnershipCatalog builds the monthly-variant registry in its canonical
// order. The order is load-bearing: it fixes table columns and export layout.
func PartnershipCatalog() *Registry {
	r := NewRegistry()
	// Errors are impossible here: names are unique constants.
	_ = r.Register(StreamService, ServiceRevenue)
	_ = r.Register(StreamInsurance, InsuranceRevenue)
	_ = r.Register(StreamParts, PartsRevenue)
	_ = r.Register(StreamFinancial, FinancialRevenue)
	_ = r.Register(StreamData, DataRevenue)
	return r
}
